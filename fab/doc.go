// Package fab constructs test data: ready-to-use instances of your types,
// singly or in collections, built from per-type construction rules.
//
// This package intentionally separates three roles:
//
//   - Fabricator[T]: a construction-rule provider for one type. It stores
//     default constructor args, a default post-construction initializer, and
//     an optional construction delegate; per-call options layer overrides on
//     top without mutating the defaults.
//
//   - Registry: a type-to-fabricator mapping built by scanning a candidate
//     set (RegisterFabricatorsIn) or by direct registration (Register).
//     Scans are wholesale rebuilds, keyed by the target type, with a
//     name-suffix convention for candidate inclusion.
//
//   - Facade: the call surface tests use (InstanceOf / CollectionOf, or the
//     package-level MakeInstance / MakeCollection against the process-wide
//     default). When no fabricator is registered it synthesizes a transient
//     rule-less one, so plain types work with zero setup.
//
// Construction resolution per call:
//
//  1. A stored delegate wins outright; its result is returned unchanged.
//  2. Otherwise the effective args (per-index function, per-call override,
//     or stored default, in that order) build the instance: empty args mean
//     the zero value, non-empty args are assigned positionally to the
//     struct's exported fields in declaration order.
//  3. The effective initializer then mutates the instance in place.
//
// Errors are typed and chain their cause: ConstructionError from the
// argument path, wrapped exactly once into FabricationError at the
// fabricator boundary, and ResolutionError from the facade when no
// fabricator can be found or synthesized. Panics inside author-owned
// callbacks (initializers, delegates) propagate unchanged.
//
// The usage model is single-threaded test setup: populate the registry and
// configure fabricators before fabricating from multiple goroutines.
// Concurrent re-scan while other goroutines resolve is unsupported.
//
// Import
//
//	"github.com/sghaida/fabricate/fab"
package fab
