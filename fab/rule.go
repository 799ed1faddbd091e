package fab

// Args is an ordered list of constructor arguments.
//
// For the default strategy they are assigned positionally to the target
// struct's exported fields; a registered delegate makes them dormant.
type Args []any

// Initializer is a post-construction mutation callback. It runs on the
// freshly built instance before it is returned to the caller.
type Initializer[T any] func(*T)

// Delegate is a zero-argument factory. When set on a fabricator it fully
// supersedes argument/initializer based construction: its result is returned
// unchanged and a panic inside it propagates unchanged (the registrant
// authored it).
type Delegate[T any] func() *T

// rule holds a fabricator's stored defaults. The three aspects are
// independent fields: each update replaces only its own aspect, and setting
// the delegate leaves args/initializer stored but dormant.
type rule[T any] struct {
	args     Args
	init     Initializer[T]
	delegate Delegate[T]
}

// Rules is the configuration view handed to the hook passed to New. It is
// the one place a named fabricator is expected to set its defaults; each
// setter forwards to the owning fabricator's corresponding update method.
type Rules[T any] struct {
	f *Fabricator[T]
}

// SetArgs replaces the stored default constructor arguments.
func (r *Rules[T]) SetArgs(args ...any) { r.f.SetArgs(args...) }

// SetInitializer replaces the stored default post-construction initializer.
func (r *Rules[T]) SetInitializer(init Initializer[T]) { r.f.SetInitializer(init) }

// SetDelegate replaces the stored construction delegate.
func (r *Rules[T]) SetDelegate(delegate Delegate[T]) { r.f.SetDelegate(delegate) }
