package tagger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
)

func TestLoadConfig(t *testing.T) {
	URL := filepath.Join(t.TempDir(), "tagger.yaml")
	content := `suffixes:
  - .go
  - .s
binary: universal-ctags
flags: "--kinds-go=+p"
chunkLimit: 16
`
	assert.NoError(t, os.WriteFile(URL, []byte(content), 0644))

	config, err := LoadConfig(context.Background(), afs.New(), URL)
	assert.NoError(t, err)
	assert.Equal(t, []string{".go", ".s"}, config.Suffixes)
	assert.Equal(t, "universal-ctags", config.Binary)
	assert.Equal(t, 16, config.ChunkLimit)
	// unset fields keep defaults
	assert.Equal(t, DefaultConfig().Concurrency, config.Concurrency)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(context.Background(), afs.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
