package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/slarb/framework/config"
	"github.com/km-arc/slarb/framework/container"
	"github.com/km-arc/slarb/framework/logging"
	"github.com/km-arc/slarb/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads configuration from .env and the environment.
//
// Bound abstracts:
//   - "config"         → *config.Config
//   - "configuration"  → alias of "config"
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func(c *container.Container) any {
		return config.Load(envFiles...)
	})
	app.Alias("config", "configuration")
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider builds the zap logger from the "config" binding.
//
// Bound abstracts:
//   - "log" → *zap.Logger
type LogServiceProvider struct {
	container.BaseProvider
	// Logger, when set, is bound as-is instead of building one from config.
	Logger *zap.Logger
}

func (p *LogServiceProvider) Register(app *container.Container) {
	if p.Logger != nil {
		app.Instance("log", p.Logger)
		return
	}
	app.Singleton("log", func(c *container.Container) any {
		return logging.New(container.Resolve[*config.Config](c, "config").Log)
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound abstracts:
//   - "router" → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		return routing.New(container.Resolve[*zap.Logger](c, "log"))
	})
}
