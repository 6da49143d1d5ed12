package repository

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/viant/tagger"
)

// LoadPackages resolves Go packages matching the patterns, plus their
// transitive imports, into package records. Unlike Load this follows the
// actual import graph rather than module requirements, so it also covers
// intra-module package dependencies.
func (l *Loader) LoadPackages(ctx context.Context, dir string, patterns ...string) ([]*tagger.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	config := &packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps,
		Dir:     dir,
		Context: ctx,
	}
	loaded, err := packages.Load(config, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages in %s: %w", dir, err)
	}
	seen := map[string]*tagger.Package{}
	var result []*tagger.Package
	for _, pkg := range loaded {
		result = append(result, l.convert(pkg, true, seen))
	}
	return result, nil
}

func (l *Loader) convert(pkg *packages.Package, root bool, seen map[string]*tagger.Package) *tagger.Package {
	if existing, ok := seen[pkg.ID]; ok {
		return existing
	}
	location := pkg.PkgPath
	if len(pkg.GoFiles) > 0 {
		location = filepath.Dir(pkg.GoFiles[0])
	}
	result := &tagger.Package{
		Name:     pkg.PkgPath,
		Location: location,
		Relative: root,
	}
	seen[pkg.ID] = result
	for _, imported := range pkg.Imports {
		result.BuildInputs = append(result.BuildInputs, l.convert(imported, false, seen))
	}
	return result
}
