// Package container provides the service container and service provider
// registry used to wire the framework.
//
// # Bindings
//
//	c := container.New()
//	c.Bind("clock", func(*container.Container) any { return time.Now })
//	c.Singleton("log", func(c *container.Container) any {
//	    return logging.New(container.Resolve[*config.Config](c, "config").Log)
//	})
//	c.Instance("config", cfg)
//	c.Alias("slarb", "Slarb")
//
// # Resolving
//
//	log := container.Resolve[*zap.Logger](c, "log")
//	f, ok := container.TryResolve[*slarb.Factory](c, "Slarb")
//
// # Providers
//
// Providers group bindings. Register runs immediately for eager providers;
// Boot runs once registry.Boot() is called. A deferred provider registers
// only when one of its Provides() abstracts is first resolved.
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&providers.SlarbServiceProvider{})
//	registry.Boot()
package container
