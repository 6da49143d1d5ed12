package tagger

import (
	"context"
	"path"

	"github.com/viant/afs/url"
	"go.uber.org/zap"

	"github.com/viant/tagger/extractor"
	"github.com/viant/tagger/tags"
)

// Stager prepares a package's filtered source tree for extraction and
// returns the directory the extractor should consume.
type Stager interface {
	Stage(ctx context.Context, location string) (string, error)
}

// PackageTagger produces the tag artifact for a single package. Extraction
// failures never propagate: a failed package yields an empty fallback
// artifact and a warning, so one misbehaving dependency cannot block the
// rest of the tree.
type PackageTagger struct {
	extractor extractor.Service
	stager    Stager
	suffixes  []string
	flags     []string
	logger    *zap.SugaredLogger
}

// NewPackageTagger creates a per-package tagger backed by the given extractor.
func NewPackageTagger(service extractor.Service, suffixes []string, flags []string, logger *zap.SugaredLogger) *PackageTagger {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &PackageTagger{
		extractor: service,
		suffixes:  suffixes,
		flags:     flags,
		logger:    logger,
	}
}

// SetStager installs a source filter staging step ahead of extraction.
func (t *PackageTagger) SetStager(stager Stager) {
	t.stager = stager
}

// Tag extracts the package's tag listing. Malformed single-token lines and
// stray header markers are dropped; entry file paths are rewritten per the
// package's relative/prefix policy.
func (t *PackageTagger) Tag(ctx context.Context, pkg *Package) *tags.Artifact {
	dir := pkg.Location
	if t.stager != nil {
		staged, err := t.stager.Stage(ctx, pkg.Location)
		if err != nil {
			t.logger.Warnf("failed to stage sources for %v: %v", pkg.Name, err)
			return tags.Fallback(pkg.Name)
		}
		dir = staged
	}

	lines, err := t.extractor.Extract(ctx, dir, t.suffixes, t.flags)
	if err != nil {
		t.logger.Warnf("tag extraction failed for %v: %v", pkg.Name, err)
		return tags.Fallback(pkg.Name)
	}

	artifact := &tags.Artifact{Package: pkg.Name, Status: tags.StatusSucceeded}
	for _, line := range lines {
		entry, ok := tags.ParseEntry(line)
		if !ok {
			continue
		}
		artifact.Lines = append(artifact.Lines, t.rewrite(pkg, entry).Line())
	}
	return artifact
}

// rewrite applies the package's path policy to an entry's file field:
// dependency entries become absolute under the package location, local
// entries stay relative, optionally under an output prefix.
func (t *PackageTagger) rewrite(pkg *Package, entry *tags.Entry) *tags.Entry {
	if !pkg.Relative {
		entry.File = url.Join(pkg.Location, entry.File)
	} else if pkg.Prefix != "" {
		entry.File = path.Join(pkg.Prefix, entry.File)
	}
	return entry
}
