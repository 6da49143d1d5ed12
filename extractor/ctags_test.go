package extractor

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// writeTagBinary installs a stand-in tag binary that emits one entry line per
// source argument, echoing the path it was given as the file field.
func writeTagBinary(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stand-in tag binary requires a POSIX shell")
	}
	script := "#!/bin/sh\nshift 2\nfor source in \"$@\"; do printf 'sym\\t%s\\t1\\n' \"$source\"; done\n"
	binary := filepath.Join(t.TempDir(), "tagbin")
	assert.NoError(t, os.WriteFile(binary, []byte(script), 0755))
	return binary
}

func TestCtags_ExtractRelativePaths(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main"), 0644))
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "util"), 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "util", "helper.go"), []byte("package util"), 0644))

	ctags, err := NewCtags(writeTagBinary(t), time.Minute)
	assert.NoError(t, err)

	lines, err := ctags.Extract(context.Background(), dir, []string{".go"}, nil)
	assert.NoError(t, err)
	// file fields stay relative to the package root, never absolute
	assert.ElementsMatch(t, []string{
		"sym\tmain.go\t1",
		"sym\tutil/helper.go\t1",
	}, lines)
}

func TestCtags_ExtractNoSources(t *testing.T) {
	ctags, err := NewCtags(writeTagBinary(t), time.Minute)
	assert.NoError(t, err)

	lines, err := ctags.Extract(context.Background(), t.TempDir(), []string{".go"}, nil)
	assert.NoError(t, err)
	assert.Empty(t, lines)
}

func TestNewCtags_MissingBinary(t *testing.T) {
	_, err := NewCtags(filepath.Join(t.TempDir(), "absent"), time.Minute)
	assert.Error(t, err)
}
