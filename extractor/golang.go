package extractor

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
)

// Golang extracts tags from Go sources with the standard parser, so the
// pipeline works without an external ctags binary.
type Golang struct{}

// NewGolang creates a Go source extractor.
func NewGolang() *Golang {
	return &Golang{}
}

// Extract parses each matching file under dir and emits one tag line per
// top-level declaration: functions, methods, types, constants and variables.
// Files that fail to parse are skipped; flags are ignored.
func (g *Golang) Extract(ctx context.Context, dir string, suffixes []string, flags []string) ([]string, error) {
	if len(suffixes) == 0 {
		suffixes = []string{".go"}
	}
	sources, err := listSources(dir, suffixes)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources in %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	var lines []string
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		file, err := parser.ParseFile(fset, source, nil, 0)
		if err != nil {
			continue
		}
		relative, err := filepath.Rel(dir, source)
		if err != nil {
			relative = filepath.Base(source)
		}
		relative = filepath.ToSlash(relative)
		for _, decl := range file.Decls {
			lines = append(lines, declarationTags(fset, decl, relative)...)
		}
	}
	return lines, nil
}

func declarationTags(fset *token.FileSet, decl ast.Decl, file string) []string {
	var lines []string
	emit := func(name string, pos token.Pos) {
		if name == "" || name == "_" {
			return
		}
		lines = append(lines, fmt.Sprintf("%s\t%s\t%d", name, file, fset.Position(pos).Line))
	}

	switch actual := decl.(type) {
	case *ast.FuncDecl:
		emit(actual.Name.Name, actual.Pos())
	case *ast.GenDecl:
		for _, spec := range actual.Specs {
			switch spec := spec.(type) {
			case *ast.TypeSpec:
				emit(spec.Name.Name, spec.Pos())
			case *ast.ValueSpec:
				for _, name := range spec.Names {
					emit(name.Name, name.Pos())
				}
			}
		}
	}
	return lines
}
