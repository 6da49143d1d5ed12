package tags

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
)

func TestArtifactRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := filepath.Join(t.TempDir(), "pkg.tags")

	artifact := &Artifact{
		Package: "pkg",
		Lines:   []string{"sym\ta.go\t2", "other\tb.go\t5"},
		Status:  StatusSucceeded,
	}
	assert.NoError(t, artifact.Upload(ctx, fs, URL))

	loaded, err := Load(ctx, fs, URL)
	assert.NoError(t, err)
	assert.Equal(t, artifact.Lines, loaded.Lines)
}

func TestLoadStripsHeaders(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := filepath.Join(t.TempDir(), "merged.tags")

	merged := Merge([]*Artifact{
		{Package: "a", Lines: []string{"sym\ta.go\t2"}},
	}, Header{Origin: "/src"})
	assert.NoError(t, merged.Upload(ctx, fs, URL))

	loaded, err := Load(ctx, fs, URL)
	assert.NoError(t, err)
	assert.Equal(t, []string{"sym\ta.go\t2"}, loaded.Lines)
}
