package container

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a concrete value from the container.
type Factory func(c *Container) any

type binding struct {
	factory   Factory
	singleton bool
}

// Container is a small IoC container keyed by string abstracts. It holds
// the framework services (config, log, router) and the slarb factory.
type Container struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]*binding

	// abstract → resolved singleton instance
	instances map[string]any

	// alias → abstract
	aliases map[string]string

	afterResolving []func(string, any)
}

// New creates an empty container bound to itself as "container".
func New() *Container {
	c := &Container{
		bindings:  make(map[string]*binding),
		instances: make(map[string]any),
		aliases:   make(map[string]string),
	}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient factory; every Make runs it again.
func (c *Container) Bind(abstract string, factory Factory) {
	c.bind(abstract, factory, false)
}

// Singleton registers a factory whose result is cached after first resolution.
//
//	c.Singleton("log", func(c *container.Container) any {
//	    return logging.New(container.Resolve[*config.Config](c, "config").Log)
//	})
func (c *Container) Singleton(abstract string, factory Factory) {
	c.bind(abstract, factory, true)
}

// Instance registers a pre-built value.
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	c.instances[key] = instance
}

func (c *Container) bind(abstract string, factory Factory, singleton bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	// a rebind drops the cached instance so the new factory wins
	delete(c.instances, key)
	c.bindings[key] = &binding{factory: factory, singleton: singleton}
}

// Alias registers alias as another name for abstract.
//
//	c.Alias("slarb", "Slarb")
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = c.canonical(abstract)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract. It panics when nothing is bound under the name:
// a missing binding is a wiring bug, not a runtime condition.
func (c *Container) Make(abstract string) any {
	c.mu.RLock()
	key := c.canonical(abstract)
	if inst, ok := c.instances[key]; ok {
		c.mu.RUnlock()
		return inst
	}
	b, ok := c.bindings[key]
	c.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("container: no binding registered for [%s]", abstract))
	}

	// factories may register or resolve other bindings, so run unlocked
	instance := b.factory(c)

	if b.singleton {
		c.mu.Lock()
		if existing, ok := c.instances[key]; ok {
			instance = existing
		} else {
			c.instances[key] = instance
		}
		c.mu.Unlock()
	}

	c.fireAfterResolving(key, instance)
	return instance
}

// Bound reports whether abstract has a binding or instance.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	_, hasBinding := c.bindings[key]
	_, hasInstance := c.instances[key]
	return hasBinding || hasInstance
}

// Resolved reports whether abstract holds a cached instance.
func (c *Container) Resolved(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[c.canonical(abstract)]
	return ok
}

// Forget removes the binding and cached instance of abstract.
func (c *Container) Forget(abstract string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	delete(c.instances, key)
}

// Bindings returns the sorted canonical keys of everything registered.
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]struct{}, len(c.bindings)+len(c.instances))
	for k := range c.bindings {
		seen[k] = struct{}{}
	}
	for k := range c.instances {
		seen[k] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// AfterResolving registers a callback fired after every Make.
func (c *Container) AfterResolving(cb func(abstract string, instance any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterResolving = append(c.afterResolving, cb)
}

func (c *Container) fireAfterResolving(abstract string, instance any) {
	c.mu.RLock()
	cbs := c.afterResolving
	c.mu.RUnlock()
	for _, cb := range cbs {
		cb(abstract, instance)
	}
}

// canonical resolves an alias to its key. Caller holds mu.
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve calls Make and type-asserts the result, panicking on a mismatch.
//
//	factory := container.Resolve[*slarb.Factory](c, "Slarb")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}

// TryResolve is Resolve without panics: ok is false when abstract is not
// bound or resolves to another type.
func TryResolve[T any](c *Container, abstract string) (T, bool) {
	var zero T
	if !c.Bound(abstract) {
		return zero, false
	}
	typed, ok := c.Make(abstract).(T)
	return typed, ok
}
