package container_test

import (
	"testing"

	"github.com/km-arc/slarb/framework/container"
)

// ── stub providers ────────────────────────────────────────────────────────────

type messagesProvider struct {
	container.BaseProvider
	registerCalls int
	bootCalls     int
}

func (p *messagesProvider) Register(app *container.Container) {
	p.registerCalls++
	app.Singleton("messages.success", func(c *container.Container) any { return "Request Successful" })
}

func (p *messagesProvider) Boot(app *container.Container) {
	p.bootCalls++
}

// lazyFactoryProvider is only registered when "factory" or "Factory" is first made.
type lazyFactoryProvider struct {
	container.BaseProvider
	registerCalls int
	bootCalls     int
}

func (p *lazyFactoryProvider) Register(app *container.Container) {
	p.registerCalls++
	app.Singleton("factory", func(c *container.Container) any { return &struct{ name string }{"factory"} })
	app.Alias("factory", "Factory")
}

func (p *lazyFactoryProvider) Boot(app *container.Container) {
	p.bootCalls++
}

func (p *lazyFactoryProvider) IsDeferred() bool   { return true }
func (p *lazyFactoryProvider) Provides() []string { return []string{"factory", "Factory"} }

// ── eager providers ───────────────────────────────────────────────────────────

func TestRegistry_EagerProvider_RegisterThenBoot(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &messagesProvider{}
	reg.Register(p)

	if p.registerCalls != 1 {
		t.Fatalf("Register() calls: got %d want 1", p.registerCalls)
	}
	if p.bootCalls != 0 {
		t.Error("Boot() must wait for registry.Boot()")
	}

	reg.Boot()
	reg.Boot()

	if p.bootCalls != 1 {
		t.Errorf("Boot() calls: got %d want 1", p.bootCalls)
	}
	if !reg.Booted() {
		t.Error("Booted() should be true after Boot()")
	}
	if got := c.Make("messages.success"); got != "Request Successful" {
		t.Errorf("messages.success: got %v", got)
	}
}

func TestRegistry_DuplicateRegister_Ignored(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())

	p := &messagesProvider{}
	reg.Register(p)
	reg.Register(p)

	if p.registerCalls != 1 {
		t.Errorf("Register() calls: got %d want 1", p.registerCalls)
	}
	if len(reg.Providers()) != 1 {
		t.Errorf("Providers(): got %d want 1", len(reg.Providers()))
	}
}

func TestRegistry_RegisterAfterBoot_BootsImmediately(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	reg.Boot()

	p := &messagesProvider{}
	reg.Register(p)

	if p.bootCalls != 1 {
		t.Error("provider registered after Boot() should be booted immediately")
	}
}

// ── deferred providers ────────────────────────────────────────────────────────

func TestRegistry_DeferredProvider_LoadedOnFirstMake(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &lazyFactoryProvider{}
	reg.Register(p)
	reg.Boot()

	if p.registerCalls != 0 || reg.Loaded(p) {
		t.Fatal("deferred provider must not register before first Make()")
	}
	if !c.Bound("factory") || !c.Bound("Factory") {
		t.Fatal("deferred abstracts should be bound as placeholders")
	}

	first := c.Make("Factory")
	second := c.Make("factory")

	if first != second {
		t.Error("alias and abstract should resolve to the same singleton")
	}
	if p.registerCalls != 1 {
		t.Errorf("Register() calls: got %d want 1", p.registerCalls)
	}
	if p.bootCalls != 1 {
		t.Errorf("Boot() calls: got %d want 1 (registry already booted)", p.bootCalls)
	}
	if !reg.Loaded(p) {
		t.Error("Loaded() should be true after first Make()")
	}
}

func TestRegistry_DeferredProvider_LoadedBeforeBoot(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &lazyFactoryProvider{}
	reg.Register(p)
	c.Make("Factory")

	if p.registerCalls != 1 {
		t.Fatalf("Register() calls: got %d want 1", p.registerCalls)
	}
	if p.bootCalls != 0 {
		t.Fatal("Boot() must wait for registry.Boot()")
	}

	reg.Boot()
	reg.Boot()
	c.Make("factory")

	if p.bootCalls != 1 {
		t.Errorf("Boot() calls: got %d want 1", p.bootCalls)
	}
}

func TestRegistry_DeferredProvider_NotInProviders(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	reg.Register(&messagesProvider{})
	reg.Register(&lazyFactoryProvider{})

	if len(reg.Providers()) != 1 {
		t.Errorf("Providers(): got %d, want 1 (eager only)", len(reg.Providers()))
	}
}

func TestBaseProvider_Defaults(t *testing.T) {
	var p container.BaseProvider
	p.Boot(container.New())

	if p.IsDeferred() {
		t.Error("BaseProvider.IsDeferred() should be false")
	}
	if len(p.Provides()) != 0 {
		t.Error("BaseProvider.Provides() should return empty slice")
	}
}
