package fab

import "reflect"

// Fabricator is a construction-rule provider for one type T.
//
// It owns a single stored rule (default constructor args, default
// initializer, optional delegate) and exposes instance and collection
// construction that layers per-call options on top of those defaults.
// Per-call options never mutate the stored rule.
//
// Concurrency: stored defaults are mutable shared state. Configure a
// fabricator before sharing it across goroutines; concurrent Set* and
// Fabricate* calls on the same instance need external synchronization.
type Fabricator[T any] struct {
	rule rule[T]
}

// New constructs a Fabricator and runs the configure hook exactly once.
//
// The hook receives a Rules view exposing exactly the three default setters.
// Named fabricators embed the result and do all their rule setup there:
//
//	type GadgetFabricator struct{ *fab.Fabricator[Gadget] }
//
//	func NewGadgetFabricator() *GadgetFabricator {
//		return &GadgetFabricator{fab.New(func(r *fab.Rules[Gadget]) {
//			r.SetArgs("steel")
//		})}
//	}
//
// A nil hook yields a rule-less fabricator (pure default construction).
func New[T any](configure func(*Rules[T])) *Fabricator[T] {
	f := &Fabricator[T]{}
	if configure != nil {
		configure(&Rules[T]{f: f})
	}
	return f
}

// SetArgs replaces the stored default constructor arguments, leaving the
// other rule aspects untouched. Returns the fabricator for chaining.
func (f *Fabricator[T]) SetArgs(args ...any) *Fabricator[T] {
	f.rule.args = args
	return f
}

// SetInitializer replaces the stored default initializer, leaving the other
// rule aspects untouched.
func (f *Fabricator[T]) SetInitializer(init Initializer[T]) *Fabricator[T] {
	f.rule.init = init
	return f
}

// SetDelegate replaces the stored construction delegate.
//
// While a delegate is set, stored args/initializer are dormant, not deleted:
// SetDelegate(nil) clears it and they take effect again.
func (f *Fabricator[T]) SetDelegate(delegate Delegate[T]) *Fabricator[T] {
	f.rule.delegate = delegate
	return f
}

// Fabricate produces one instance.
//
// Resolution order: a stored delegate wins outright and its result is
// returned unchanged (args and initializers, stored or overridden, are
// silently ignored). Otherwise the effective args build the instance and the
// effective initializer mutates it in place before return.
//
// Construction failures are wrapped exactly once into a FabricationError;
// a panic inside an initializer or delegate propagates unchanged.
func (f *Fabricator[T]) Fabricate(opts ...Option[T]) (*T, error) {
	return f.fabricateAt(newPlan(opts), 0)
}

// FabricateN produces exactly n instances in index order.
//
// Construction is strictly sequential for reproducibility. Any failure
// aborts the whole call: indices built so far are discarded and no partial
// slice is returned. n == 0 yields an empty, non-nil slice.
func (f *Fabricator[T]) FabricateN(n int, opts ...Option[T]) ([]*T, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	plan := newPlan(opts)
	out := make([]*T, 0, n)
	for i := 0; i < n; i++ {
		v, err := f.fabricateAt(plan, i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// fabricateAt builds one instance for the given collection index (0 for
// single-instance calls), then applies the per-index initializer if any.
func (f *Fabricator[T]) fabricateAt(plan *callPlan[T], index int) (*T, error) {
	v, err := f.buildAt(plan, index)
	if err != nil {
		return nil, err
	}
	if plan.eachInit != nil {
		plan.eachInit(v, index)
	}
	return v, nil
}

// buildAt is the single-instance path: delegate precedence, then effective
// args, then effective initializer.
func (f *Fabricator[T]) buildAt(plan *callPlan[T], index int) (*T, error) {
	if f.rule.delegate != nil {
		return f.rule.delegate(), nil
	}

	args := f.rule.args
	switch {
	case plan.argsFunc != nil:
		args = plan.argsFunc(index)
	case plan.argsSet:
		args = plan.args
	}

	v, err := construct[T](args)
	if err != nil {
		return nil, FabricationError{Type: typeName[T](), Cause: err}
	}

	init := f.rule.init
	if plan.initSet {
		init = plan.init
	}
	if init != nil {
		init(v)
	}
	return v, nil
}

// typeKey and fabricator make *Fabricator[T] (and anything embedding one)
// satisfy the registry's capability check. The key is T itself, so lookups
// are by "type wanted", not by the concrete fabricator type.
func (f *Fabricator[T]) typeKey() reflect.Type { return typeKeyOf[T]() }

func (f *Fabricator[T]) fabricator() any { return f }
