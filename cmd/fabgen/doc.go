// Command fabgen generates the fabricator candidate list for a package.
//
// Test suites register fabricators by handing a candidate set to
// fab.RegisterFabricatorsIn (or fab.Use). Maintaining that list by hand
// drifts as fabricator types come and go; fabgen keeps it mechanical:
//
//   - You define fabricator types in a package, each embedding
//     fab.Fabricator[T] and each with a zero-argument New<Name> constructor
//     that sets its rules.
//   - You add a //go:generate directive in that package:
//
//     //go:generate go run github.com/sghaida/fabricate/cmd/fabgen -pkg . -out ./fabricators.gen.go
//
//   - fabgen scans the package with full type information and emits a
//     Fabricators() []any function returning one constructed candidate per
//     discovered type, in lexical order.
//
// Inclusion rule
//
// A type is a candidate when all of the following hold:
//
//   - exported, non-generic struct type
//   - name ends with "Fabricator" (case-insensitive) and is not exactly
//     "Fabricator" (the generic base never counts as a concrete rule)
//   - embeds fab.Fabricator[T] (directly or via pointer), which is what
//     carries the fabrication capability
//   - a niladic New<Name> constructor exists in the same package returning
//     the type or a pointer to it
//
// Anything else is silently skipped, so helper types living next to your
// fabricators never break generation.
//
// Output is written atomically (temp file + rename): an interrupted run
// never leaves a half-written .gen.go behind.
package main
