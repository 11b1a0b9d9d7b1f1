package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/slarb/framework/container"
	"github.com/km-arc/slarb/framework/slarb"
)

// SlarbAlias is the short name the response builder is exposed under.
const SlarbAlias = "Slarb"

// SlarbServiceProvider exposes the response builder constructors. It is
// deferred: nothing is built until "slarb" or "Slarb" is first resolved.
//
// Bound abstracts:
//
//   - "slarb" → *slarb.Factory
//
//   - "Slarb" → alias of "slarb"
//
//     f := container.Resolve[*slarb.Factory](app, "Slarb")
//     res := f.Success().WithData(user).Build()
type SlarbServiceProvider struct {
	container.BaseProvider
}

func (p *SlarbServiceProvider) Register(app *container.Container) {
	app.Singleton("slarb", func(*container.Container) any {
		return slarb.NewFactory()
	})
	app.Alias("slarb", SlarbAlias)
}

func (p *SlarbServiceProvider) Boot(app *container.Container) {
	if log, ok := container.TryResolve[*zap.Logger](app, "log"); ok {
		log.Debug("response builder registered", zap.String("alias", SlarbAlias))
	}
}

func (p *SlarbServiceProvider) Provides() []string { return []string{"slarb", SlarbAlias} }
func (p *SlarbServiceProvider) IsDeferred() bool   { return true }
