package fab

// Option customizes a single fabrication call. Options never mutate the
// fabricator's stored defaults; they layer on top for that call only.
type Option[T any] func(*callPlan[T])

// callPlan is the per-call override set assembled from options.
//
// argsSet / initSet distinguish "not overridden" from "overridden to empty",
// so a full override never falls back to stored defaults.
type callPlan[T any] struct {
	args    Args
	argsSet bool

	init    Initializer[T]
	initSet bool

	argsFunc func(i int) Args
	eachInit func(v *T, i int)
}

func newPlan[T any](opts []Option[T]) *callPlan[T] {
	plan := &callPlan[T]{}
	for _, opt := range opts {
		if opt != nil {
			opt(plan)
		}
	}
	return plan
}

// anyArgs reports whether the call supplies constructor arguments in any
// form. The facade uses it to decide default-fabricator viability.
func (p *callPlan[T]) anyArgs() bool { return p.argsSet || p.argsFunc != nil }

// WithArgs overrides the constructor arguments for this call.
func WithArgs[T any](args ...any) Option[T] {
	return func(p *callPlan[T]) {
		p.args = args
		p.argsSet = true
	}
}

// WithInitializer overrides the post-construction initializer for this call.
// Passing nil suppresses the stored default initializer entirely.
func WithInitializer[T any](init Initializer[T]) Option[T] {
	return func(p *callPlan[T]) {
		p.init = init
		p.initSet = true
	}
}

// WithArgsFunc supplies per-index constructor arguments. On collection calls
// it is invoked with indices 0..n-1 in order and its result used verbatim;
// on single-instance calls it is invoked with index 0. It wins over both
// stored defaults and WithArgs.
func WithArgsFunc[T any](argsFunc func(i int) Args) Option[T] {
	return func(p *callPlan[T]) { p.argsFunc = argsFunc }
}

// WithEachInitializer supplies a per-index initializer invoked with
// (instance, index) after the instance is built, including on the delegate
// path. On single-instance calls the index is 0.
func WithEachInitializer[T any](eachInit func(v *T, i int)) Option[T] {
	return func(p *callPlan[T]) { p.eachInit = eachInit }
}
