package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"go.uber.org/zap"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/viant/tagger"
)

// Loader builds package records with build inputs from Go module metadata.
// Dependencies are resolved against the local module cache; a requirement
// absent from the cache, or with unreadable metadata, becomes a leaf rather
// than an error, so one bad entry cannot halt tag generation for the tree.
type Loader struct {
	fs     afs.Service
	cache  string
	logger *zap.SugaredLogger
}

// NewLoader creates a module loader. An empty cache falls back to
// GOMODCACHE, then GOPATH/pkg/mod.
func NewLoader(cache string, logger *zap.SugaredLogger) *Loader {
	if cache == "" {
		cache = defaultModuleCache()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Loader{fs: afs.New(), cache: cache, logger: logger}
}

func defaultModuleCache() string {
	if cache := os.Getenv("GOMODCACHE"); cache != "" {
		return cache
	}
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		gopath = filepath.Join(home, "go")
	}
	return filepath.Join(gopath, "pkg", "mod")
}

// Load builds the package record for the module rooted at dir, with its
// direct requirements expanded recursively as build inputs. The root package
// keeps relative entry paths; dependencies get absolute ones.
func (l *Loader) Load(ctx context.Context, dir string) (*tagger.Package, error) {
	data, err := l.fs.DownloadWithURL(ctx, url.Join(dir, "go.mod"))
	if err != nil {
		return nil, fmt.Errorf("failed to read module metadata in %s: %w", dir, err)
	}
	seen := map[string]*tagger.Package{}
	pkg := l.load(ctx, dir, data, true, seen)
	return pkg, nil
}

func (l *Loader) load(ctx context.Context, dir string, data []byte, root bool, seen map[string]*tagger.Package) *tagger.Package {
	pkg := &tagger.Package{
		Name:     filepath.Base(dir),
		Location: dir,
		Relative: root,
	}
	seen[dir] = pkg

	mod, err := modfile.Parse(filepath.Join(dir, "go.mod"), data, nil)
	if err != nil {
		// malformed metadata degrades to a leaf package
		l.logger.Warnf("malformed module metadata in %v: %v", dir, err)
		return pkg
	}
	if mod.Module != nil && mod.Module.Mod.Path != "" {
		pkg.Name = mod.Module.Mod.Path
	}

	for _, require := range mod.Require {
		if require.Indirect {
			continue
		}
		depDir, err := l.cacheDir(require.Mod.Path, require.Mod.Version)
		if err != nil {
			l.logger.Warnf("cannot resolve requirement %v of %v: %v", require.Mod.Path, pkg.Name, err)
			continue
		}
		if existing, ok := seen[depDir]; ok {
			pkg.BuildInputs = append(pkg.BuildInputs, existing)
			continue
		}
		depData, err := l.fs.DownloadWithURL(ctx, url.Join(depDir, "go.mod"))
		if err != nil {
			// requirement not in the cache; skip rather than abort
			l.logger.Warnf("requirement %v of %v not in module cache", require.Mod.Path, pkg.Name)
			continue
		}
		pkg.BuildInputs = append(pkg.BuildInputs, l.load(ctx, depDir, depData, false, seen))
	}
	return pkg
}

// cacheDir resolves a module version to its module cache directory.
func (l *Loader) cacheDir(path, version string) (string, error) {
	escaped, err := module.EscapePath(path)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.cache, escaped+"@"+version), nil
}
