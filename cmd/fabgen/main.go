// cmd/fabgen/main.go
package main

import (
	"flag"
	"fmt"
	"go/types"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

// This binary is a code-generation tool.
//
// It scans one Go package for concrete fabricator types and generates a
// candidates file: a single function returning one freshly constructed
// instance per discovered fabricator, ready to hand to
// fab.RegisterFabricatorsIn (or fab.Use).
//
// Key behaviors:
// - Loads the package with full type information (golang.org/x/tools/go/packages)
// - A candidate is an exported, non-generic struct type whose name ends with
//   "Fabricator" (but is not exactly "Fabricator"), embeds fab.Fabricator[T],
//   and has a zero-argument New<Name> constructor in the same package
// - Candidates are emitted in lexical order for reproducible output
// - Writes output atomically (temp file + rename) to avoid partial writes

// Candidate describes one discovered fabricator type.
type Candidate struct {
	// TypeName is the concrete type's name, e.g. "GadgetFabricator".
	TypeName string

	// Constructor is the zero-argument constructor, e.g. "NewGadgetFabricator".
	Constructor string
}

// templateData is the input passed to the Go template.
type templateData struct {
	Package    string
	FuncName   string
	Candidates []Candidate
}

var genTemplate = template.Must(template.New("candidates").Parse(
	`// Code generated by fabgen; DO NOT EDIT.

package {{.Package}}

// {{.FuncName}} returns one candidate instance per fabricator type in this
// package, in lexical order, ready for fab.RegisterFabricatorsIn.
func {{.FuncName}}() []any {
	return []any{
{{- range .Candidates}}
		{{.Constructor}}(),
{{- end}}
	}
}
`))

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("fabgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	pkgPattern := flags.String("pkg", ".", "package pattern to scan (one package)")
	outPath := flags.String("out", "", "output .gen.go file path (inside the scanned package)")
	funcName := flags.String("func", "Fabricators", "name of the generated function")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: fabgen -pkg <pattern> -out <file.gen.go> [-func Fabricators]")
		return 2
	}

	pkg, err := loadPackage(*pkgPattern)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "fabgen:", err)
		return 1
	}

	candidates := discoverCandidates(pkg.Types)
	if len(candidates) == 0 {
		_, _ = fmt.Fprintf(stderr, "fabgen: no fabricator types found in %s\n", pkg.PkgPath)
		return 1
	}

	data := templateData{
		Package:    pkg.Name,
		FuncName:   *funcName,
		Candidates: candidates,
	}

	var out strings.Builder
	must(genTemplate.Execute(&out, data))

	must(writeFileAtomic(filepath.Clean(*outPath), []byte(out.String()), 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// loadPackage loads exactly one package with type information.
func loadPackage(pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages; fabgen scans exactly one", pattern, len(pkgs))
	}

	pkg := pkgs[0]
	var loadErrs []string
	for _, e := range pkg.Errors {
		loadErrs = append(loadErrs, e.Error())
	}
	if len(loadErrs) > 0 {
		return nil, fmt.Errorf("package errors:\n  %s", strings.Join(loadErrs, "\n  "))
	}
	return pkg, nil
}

// discoverCandidates walks the package scope and applies the inclusion rule.
func discoverCandidates(pkg *types.Package) []Candidate {
	scope := pkg.Scope()

	var candidates []Candidate
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() {
			continue
		}
		named, ok := obj.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}
		if !isFabricatorTypeName(name) {
			continue
		}
		if !embedsFabricator(named) {
			continue
		}
		ctor, ok := zeroArgConstructor(scope, name)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{TypeName: name, Constructor: ctor})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].TypeName < candidates[j].TypeName
	})
	return candidates
}

// isFabricatorTypeName applies the naming convention: case-insensitive
// "fabricator" suffix, and not the bare base name itself.
func isFabricatorTypeName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, "fabricator") && lower != "fabricator"
}

// embedsFabricator reports whether the named struct embeds fab.Fabricator[T],
// which is what gives it the fabrication capability at runtime.
func embedsFabricator(named *types.Named) bool {
	structType, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}
	for i := 0; i < structType.NumFields(); i++ {
		field := structType.Field(i)
		if !field.Embedded() {
			continue
		}
		fieldType := field.Type()
		if ptr, isPtr := fieldType.(*types.Pointer); isPtr {
			fieldType = ptr.Elem()
		}
		embedded, isNamed := fieldType.(*types.Named)
		if !isNamed {
			continue
		}
		obj := embedded.Obj()
		if obj.Name() == "Fabricator" && obj.Pkg() != nil && obj.Pkg().Name() == "fab" {
			return true
		}
	}
	return false
}

// zeroArgConstructor finds New<name> in scope: a niladic function returning
// a single value (the candidate or a pointer to it).
func zeroArgConstructor(scope *types.Scope, name string) (string, bool) {
	ctorName := "New" + name
	fn, ok := scope.Lookup(ctorName).(*types.Func)
	if !ok {
		return "", false
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return "", false
	}
	resultType := sig.Results().At(0).Type()
	if ptr, isPtr := resultType.(*types.Pointer); isPtr {
		resultType = ptr.Elem()
	}
	resultNamed, ok := resultType.(*types.Named)
	if !ok || resultNamed.Obj().Name() != name {
		return "", false
	}
	return ctorName, true
}

// writeFileAtomic writes via a temp file in the same directory then renames,
// so a crash never leaves a half-written generated file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".fabgen-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
