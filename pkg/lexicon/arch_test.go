package lexicon_test

import (
	"go/ast"
	"go/parser"
	gotoken "go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/owings1/pytableaux"

// reexportTargets are the lexicon.Sentence/Parameter variant constructors
// (spec's "sum types replace inheritance" design note) that no other
// package may smuggle out under a local alias.
var reexportTargets = map[string]bool{
	"Sentence": true, "Parameter": true,
	"Atomic": true, "Predicated": true, "Quantified": true, "Operated": true,
	"Constant": true, "Variable": true,
}

// TestNoLexiconTypeAliasReexports walks every package outside pkg/lexicon
// and forbids `type X = lexicon.Y` aliases of the variant types above, so a
// Sentence value is always reached through pkg/lexicon itself, never a
// local stand-in name.
func TestNoLexiconTypeAliasReexports(t *testing.T) {
	root := findProjectRoot(t)

	for _, dir := range []string{filepath.Join(root, "pkg"), filepath.Join(root, "internal")} {
		err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			rel, _ := filepath.Rel(root, path)
			if rel == "pkg/lexicon" || strings.HasPrefix(rel, "pkg/lexicon/") {
				return nil
			}
			checkNoLexiconAliases(t, path)
			return nil
		})
		if err != nil {
			t.Fatalf("walk %s: %v", dir, err)
		}
	}
}

func checkNoLexiconAliases(t *testing.T, dir string) {
	t.Helper()

	fset := gotoken.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, nil, 0)
	if err != nil {
		return
	}

	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			localName := lexiconImportName(file)
			if localName == "" {
				continue
			}
			ast.Inspect(file, func(n ast.Node) bool {
				spec, ok := n.(*ast.TypeSpec)
				if !ok || !spec.Assign.IsValid() {
					return true
				}
				sel, ok := spec.Type.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				ident, ok := sel.X.(*ast.Ident)
				if !ok || ident.Name != localName {
					return true
				}
				if reexportTargets[sel.Sel.Name] {
					t.Errorf("%s: type alias %q = %s.%s re-exports a lexicon variant type; import lexicon directly instead",
						fset.Position(spec.Pos()), spec.Name.Name, localName, sel.Sel.Name)
				}
				return true
			})
		}
	}
}

func lexiconImportName(file *ast.File) string {
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		if strings.HasSuffix(path, "pkg/lexicon") {
			if imp.Name != nil {
				return imp.Name.Name
			}
			return "lexicon"
		}
	}
	return ""
}

// TestPkgDoesNotImportInternal enforces a boundary test: library code in
// pkg/* must never depend on the application layer in internal/*.
func TestPkgDoesNotImportInternal(t *testing.T) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports}
	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	base := modulePath + "/"
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			continue
		}
		pkgPath := strings.TrimPrefix(pkg.PkgPath, base)
		for imp := range pkg.Imports {
			if strings.Contains(imp, modulePath+"/internal/") {
				t.Errorf("%s imports internal package %s: pkg/* must never import internal/*",
					pkgPath, strings.TrimPrefix(imp, base))
			}
		}
	}
}

func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find go.mod")
		}
		dir = parent
	}
}
