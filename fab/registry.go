package fab

import (
	"reflect"
	"sort"
	"strings"
)

// entry is the fabrication capability: implemented by *Fabricator[T] and
// therefore by any concrete type embedding one.
type entry interface {
	typeKey() reflect.Type
	fabricator() any
}

// baseName is the excluded simple name of the generic base type.
const baseName = "fabricator"

// Registry maps target types to their registered fabricators.
//
// Population happens once during test setup (RegisterFabricatorsIn or
// Register); lookups are safe for concurrent callers only after that write
// has completed. Concurrent re-scan while other goroutines resolve is
// unsupported.
type Registry struct {
	entries map[reflect.Type]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]any)}
}

// RegisterFabricatorsIn rebuilds the registry wholesale from the given
// candidates. It is a full replacement, not a merge: anything registered
// before and absent from the candidate set becomes unreachable.
//
// A candidate is included iff its simple type name case-insensitively ends
// with "fabricator" without being exactly "fabricator" (that excludes the
// generic base), and it satisfies the fabrication capability for some target
// type T. The registration key is T, not the candidate's own type. The first
// candidate per target type wins; later duplicates are ignored, so the
// outcome is deterministic in candidate order. An empty candidate set yields
// an empty registry.
//
// Returns the registry for chaining.
func (r *Registry) RegisterFabricatorsIn(candidates ...any) *Registry {
	rebuilt := make(map[reflect.Type]any, len(candidates))
	for _, candidate := range candidates {
		e, ok := candidate.(entry)
		if !ok {
			continue
		}
		if !isFabricatorName(simpleTypeName(candidate)) {
			continue
		}
		key := e.typeKey()
		if _, dup := rebuilt[key]; dup {
			continue
		}
		rebuilt[key] = e.fabricator()
	}
	r.entries = rebuilt
	return r
}

// Resolve returns the fabricator registered for T, if any.
// It never errors on a miss; ok is false for a nil or empty registry.
func Resolve[T any](r *Registry) (*Fabricator[T], bool) {
	if r == nil || r.entries == nil {
		return nil, false
	}
	raw, ok := r.entries[typeKeyOf[T]()]
	if !ok {
		return nil, false
	}
	f, ok := raw.(*Fabricator[T])
	return f, ok
}

// Register adds a fabricator for T directly, bypassing the candidate scan.
// It overwrites any previous entry for T. Returns the registry for chaining.
func Register[T any](r *Registry, f *Fabricator[T]) *Registry {
	if r.entries == nil {
		r.entries = make(map[reflect.Type]any)
	}
	r.entries[typeKeyOf[T]()] = f
	return r
}

// Len returns the number of registered target types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Types returns a snapshot of the registered target types, sorted by their
// string form for deterministic diagnostics.
func (r *Registry) Types() []reflect.Type {
	if r == nil || len(r.entries) == 0 {
		return nil
	}
	types := make([]reflect.Type, 0, len(r.entries))
	for t := range r.entries {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })
	return types
}

// Reset clears all entries.
func (r *Registry) Reset() {
	r.entries = make(map[reflect.Type]any)
}

// simpleTypeName returns the candidate's simple (unqualified) type name,
// dereferencing pointers. Unnamed types yield "".
func simpleTypeName(candidate any) string {
	t := reflect.TypeOf(candidate)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// isFabricatorName applies the inclusion rule to a simple type name.
//
// The generic base instantiations ("Fabricator[pkg.T]") fail the suffix
// check on their closing bracket, which is exactly the exclusion the scan
// wants: a bare base fabricator is never mistaken for a concrete rule.
func isFabricatorName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, baseName) && lower != baseName
}
