package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/slarb/framework/config"
	"github.com/km-arc/slarb/framework/container"
	gohttp "github.com/km-arc/slarb/framework/http"
	"github.com/km-arc/slarb/framework/providers"
	"github.com/km-arc/slarb/framework/routing"
	"github.com/km-arc/slarb/framework/slarb"
)

// Version is reported by the CLI and the root route.
const Version = "0.1.0"

// Application is the top-level container. It embeds the Container and the
// ProviderRegistry so callers can Bind, Singleton and Register directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// Option adjusts the core providers before they are registered.
type Option func(*options)

type options struct {
	envFiles []string
	logger   *zap.Logger
}

// WithEnvFiles sets the .env files read by the config provider.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = files }
}

// WithLogger binds log instead of building one from config.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.logger = log }
}

// New creates the application and registers the core providers.
func New(opts ...Option) *Application {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: o.envFiles})
	registry.Register(&providers.LogServiceProvider{Logger: o.logger})
	registry.Register(&providers.RoutingServiceProvider{})
	registry.Register(&providers.SlarbServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Log resolves the application logger.
func (a *Application) Log() *zap.Logger {
	return container.Resolve[*zap.Logger](a.Container, "log")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// Slarb resolves the response builder factory through its alias.
func (a *Application) Slarb() *slarb.Factory {
	return container.Resolve[*slarb.Factory](a.Container, providers.SlarbAlias)
}

// Server builds the http.Server for the configured port and timeouts.
func (a *Application) Server() *http.Server {
	cfg := a.Config()
	return &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      a.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
}

// Run boots the application and serves HTTP until ctx is cancelled, then
// shuts down within the configured timeout.
func (a *Application) Run(ctx context.Context) error {
	srv := a.Server()
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}
	return a.Serve(ctx, srv, ln)
}

// Serve is Run on an existing listener.
func (a *Application) Serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	log := a.Log()

	log.Info("server starting",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("addr", ln.Addr().String()),
		zap.String("version", Version),
	)

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	log.Info("server stopping")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	_ = log.Sync()
	return nil
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }

// Controller is an embeddable base for HTTP controllers.
type Controller struct {
	Log *zap.Logger
}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}

func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w).WithLogger(c.Log)
}
