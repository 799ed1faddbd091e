package fab

import "sync"

// Facade is the call surface tests use to request instances.
//
// It holds an explicitly owned registry rather than implying ambient global
// state; the package-level Default facade below is the convenience layer for
// tests that don't want to thread one through.
type Facade struct {
	reg *Registry
}

// NewFacade wraps a registry. A nil registry gets a fresh empty one.
func NewFacade(reg *Registry) *Facade {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Facade{reg: reg}
}

// Registry returns the facade's registry, for scans and direct registration.
func (f *Facade) Registry() *Registry { return f.reg }

// InstanceOf resolves a fabricator for T and produces one instance with the
// given per-call options passed through untouched.
//
// When no fabricator is registered, a transient rule-less default fabricator
// stands in: for struct types always, for other types only when the call
// supplies no constructor args (a non-struct has no canonical construction
// signature to map args onto). Otherwise it fails with ResolutionError.
func InstanceOf[T any](f *Facade, opts ...Option[T]) (*T, error) {
	fb, err := resolveOrDefault(f, newPlan(opts))
	if err != nil {
		return nil, err
	}
	return fb.Fabricate(opts...)
}

// CollectionOf is InstanceOf's collection form: identical resolution,
// delegating to FabricateN with the options passed through untouched.
func CollectionOf[T any](f *Facade, n int, opts ...Option[T]) ([]*T, error) {
	fb, err := resolveOrDefault(f, newPlan(opts))
	if err != nil {
		return nil, err
	}
	return fb.FabricateN(n, opts...)
}

// resolveOrDefault looks T up in the registry and falls back to a transient
// default fabricator when the type can support one for this call shape.
func resolveOrDefault[T any](f *Facade, plan *callPlan[T]) (*Fabricator[T], error) {
	if f == nil || f.reg == nil {
		return nil, ResolutionError{Type: typeName[T](), Reason: ErrNilRegistry.Error()}
	}
	if fb, ok := Resolve[T](f.reg); ok {
		return fb, nil
	}
	if plan.anyArgs() && !isStruct[T]() {
		return nil, ResolutionError{
			Type:   typeName[T](),
			Reason: "no registered fabricator and no construction signature accepts args",
		}
	}
	return New[T](nil), nil
}

// Process-wide default facade, initialized lazily on first use.
var (
	defaultFacade *Facade
	defaultOnce   sync.Once
)

// Default returns the process-wide facade, creating it (with an empty
// registry) on first access.
func Default() *Facade {
	defaultOnce.Do(func() {
		defaultFacade = NewFacade(NewRegistry())
	})
	return defaultFacade
}

// Use re-scans the default facade's registry from the given candidates.
// This is the explicit (re-)population step; see RegisterFabricatorsIn for
// the wholesale-replacement semantics.
func Use(candidates ...any) {
	Default().reg.RegisterFabricatorsIn(candidates...)
}

// MakeInstance is InstanceOf against the default facade.
func MakeInstance[T any](opts ...Option[T]) (*T, error) {
	return InstanceOf(Default(), opts...)
}

// MakeCollection is CollectionOf against the default facade.
func MakeCollection[T any](n int, opts ...Option[T]) ([]*T, error) {
	return CollectionOf[T](Default(), n, opts...)
}

// MustMake returns an instance from the default facade or panics.
// Useful in table-driven test setup where a failure should fail fast.
func MustMake[T any](opts ...Option[T]) *T {
	v, err := MakeInstance(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// ResetDefault discards the default facade so the next access starts fresh.
// This is NOT thread-safe and should only be used in tests.
func ResetDefault() {
	defaultOnce = sync.Once{}
	defaultFacade = nil
}
