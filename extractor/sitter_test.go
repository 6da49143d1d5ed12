package extractor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJavaScript_Extract(t *testing.T) {
	dir := t.TempDir()
	source := `function render(props) {
  return props.value;
}

class Store {
  load() {}
}

const registry = {};
`
	err := os.WriteFile(filepath.Join(dir, "app.js"), []byte(source), 0644)
	assert.NoError(t, err)

	lines, err := NewJavaScript().Extract(context.Background(), dir, []string{".js", ".jsx"}, nil)
	assert.NoError(t, err)
	assert.Contains(t, lines, "render\tapp.js\t1")
	assert.Contains(t, lines, "Store\tapp.js\t5")
	assert.Contains(t, lines, "load\tapp.js\t6")
	assert.Contains(t, lines, "registry\tapp.js\t9")
}
