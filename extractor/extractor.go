// Package extractor produces raw tag listings from directories of source
// files. Implementations either shell out to a ctags binary or parse sources
// natively; callers treat them uniformly through Service.
package extractor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Service extracts tag lines from the source files under dir whose names
// match the suffix allow-list. Flags are implementation-specific pass-through
// options. A failed extraction returns an error; callers decide whether that
// error is fatal.
type Service interface {
	Extract(ctx context.Context, dir string, suffixes []string, flags []string) ([]string, error)
}

// MatchSuffix reports whether a file name matches any of the allowed suffixes.
// An empty allow-list matches nothing.
func MatchSuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// listSources walks dir and returns the files matching the suffix allow-list.
func listSources(dir string, suffixes []string) ([]string, error) {
	var sources []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if MatchSuffix(info.Name(), suffixes) {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sources, nil
}
