package repository

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/viant/tagger/extractor"
)

// Filter stages a package's source tree for extraction: only files matching
// the suffix allow-list and outside excluded subtrees are copied into a
// scratch directory. Extractors treat the result as an opaque directory.
type Filter struct {
	fs       afs.Service
	suffixes []string
	excluded map[string]bool
}

// NewFilter creates a source filter for the given suffix allow-list and
// excluded directory names.
func NewFilter(suffixes, excluded []string) *Filter {
	excludedSet := make(map[string]bool)
	for _, name := range excluded {
		excludedSet[name] = true
	}
	return &Filter{
		fs:       afs.New(),
		suffixes: suffixes,
		excluded: excludedSet,
	}
}

// Stage copies the matching files under location into a fresh scratch
// directory, preserving relative layout, and returns that directory.
func (f *Filter) Stage(ctx context.Context, location string) (string, error) {
	dest, err := os.MkdirTemp("", "tagger")
	if err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}
	visitor := func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return !f.excluded[info.Name()], nil
		}
		if !extractor.MatchSuffix(info.Name(), f.suffixes) {
			return true, nil
		}
		destURL := url.Join(dest, parent, info.Name())
		if err := f.fs.Upload(ctx, destURL, file.DefaultFileOsMode, reader); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := f.fs.Walk(ctx, location, visitor); err != nil {
		return "", fmt.Errorf("failed to stage %s: %w", location, err)
	}
	return dest, nil
}
