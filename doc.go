// Package fabricate provides test-data construction helpers for Go.
//
// Given a target type T, it produces ready-to-use instances (singly or in
// collections) for automated tests, using either a default strategy (zero
// value plus positional field assignment) or a registered "fabricator" that
// encodes bespoke construction rules: fixed constructor arguments, a
// post-construction initializer, or a full custom factory function.
//
// The repository is organized as:
//
//   - fab: the library (fabricators, the type registry, and the Fabricate
//     facade used by tests to request instances)
//   - cmd/fabgen: a code generator that scans packages for concrete
//     fabricator types and emits the candidate list the registry consumes.
//   - examples: sample models and fabricators, plus a runnable walkthrough.
//
// The goal is to keep construction explicit and cheap: no mocking, no
// property-based generation, no persistence. Start with the examples
// directory for end-to-end usage style.
package fabricate
