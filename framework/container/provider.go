package container

// ServiceProvider registers services into a Container.
//
// Register binds services and must not resolve other bindings. Boot runs
// once every eager provider has registered, so it may resolve anything.
//
//	type SlarbServiceProvider struct{ container.BaseProvider }
//
//	func (p *SlarbServiceProvider) Register(app *container.Container) {
//	    app.Singleton("slarb", func(*container.Container) any { return slarb.NewFactory() })
//	    app.Alias("slarb", "Slarb")
//	}
type ServiceProvider interface {
	Register(app *Container)
	Boot(app *Container)

	// Provides lists the abstracts a deferred provider registers.
	Provides() []string

	// IsDeferred reports whether Register waits until one of Provides() is
	// first resolved.
	IsDeferred() bool
}

// BaseProvider gives no-op Boot, Provides and IsDeferred. Embed it and
// implement Register.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container)  {}
func (p *BaseProvider) Provides() []string { return nil }
func (p *BaseProvider) IsDeferred() bool   { return false }

// ProviderRegistry registers and boots providers against one Container.
// It is meant for single-goroutine bootstrap.
type ProviderRegistry struct {
	app        *Container
	eager      []ServiceProvider
	pending    []ServiceProvider // deferred, loaded before Boot
	registered map[ServiceProvider]bool
	loaded     map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
		loaded:     make(map[ServiceProvider]bool),
	}
}

// Register adds a provider. Eager providers register immediately and, if
// the registry has already booted, boot immediately too. Deferred providers
// get a placeholder binding for each abstract in Provides().
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true

	if provider.IsDeferred() {
		for _, abstract := range provider.Provides() {
			abs := abstract
			r.app.Bind(abs, func(c *Container) any {
				r.load(provider)
				return c.Make(abs)
			})
		}
		return
	}

	provider.Register(r.app)
	r.eager = append(r.eager, provider)

	if r.booted {
		provider.Boot(r.app)
	}
}

// load runs Register for a deferred provider. The provider's Register
// replaces the placeholder bindings. Boot runs now if the registry has
// booted, otherwise it is queued for Boot().
func (r *ProviderRegistry) load(provider ServiceProvider) {
	if r.loaded[provider] {
		return
	}
	r.loaded[provider] = true
	provider.Register(r.app)
	if r.booted {
		provider.Boot(r.app)
		return
	}
	r.pending = append(r.pending, provider)
}

// Boot calls Boot on every eager provider, then on every deferred provider
// already loaded. Later calls are no-ops.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.eager {
		provider.Boot(r.app)
	}
	for _, provider := range r.pending {
		provider.Boot(r.app)
	}
	r.pending = nil
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered eager providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.eager }

// Loaded reports whether a deferred provider has been registered for real.
func (r *ProviderRegistry) Loaded(provider ServiceProvider) bool { return r.loaded[provider] }
