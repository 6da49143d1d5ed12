package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Sitter extracts tags from sources via tree-sitter, covering languages the
// Go parser cannot. Declaration node types map to the grammar in use.
type Sitter struct {
	language     *sitter.Language
	declarations map[string]bool
}

// NewSitter creates a tree-sitter extractor for the given grammar and set of
// declaration node types. Each declaration node is expected to carry a "name"
// field child.
func NewSitter(language *sitter.Language, declarations ...string) *Sitter {
	kinds := make(map[string]bool)
	for _, declaration := range declarations {
		kinds[declaration] = true
	}
	return &Sitter{language: language, declarations: kinds}
}

// NewJavaScript creates a tree-sitter extractor for JavaScript sources.
func NewJavaScript() *Sitter {
	return NewSitter(javascript.GetLanguage(),
		"function_declaration",
		"class_declaration",
		"method_definition",
		"variable_declarator",
	)
}

// Extract parses each matching file under dir and emits one tag line per
// named declaration node. Unparseable files are skipped; flags are ignored.
func (s *Sitter) Extract(ctx context.Context, dir string, suffixes []string, flags []string) ([]string, error) {
	sources, err := listSources(dir, suffixes)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources in %s: %w", dir, err)
	}

	var lines []string
	for _, source := range sources {
		src, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", source, err)
		}

		parser := sitter.NewParser()
		parser.SetLanguage(s.language)
		tree, err := parser.ParseCtx(ctx, nil, src)
		if err != nil {
			continue
		}

		relative, err := filepath.Rel(dir, source)
		if err != nil {
			relative = filepath.Base(source)
		}
		relative = filepath.ToSlash(relative)
		lines = append(lines, s.collect(tree.RootNode(), src, relative)...)
	}
	return lines, nil
}

// collect walks the syntax tree and emits tags for declaration nodes.
func (s *Sitter) collect(node *sitter.Node, src []byte, file string) []string {
	var lines []string
	if s.declarations[node.Type()] {
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			name := nameNode.Content(src)
			if name != "" {
				line := int(node.StartPoint().Row) + 1
				lines = append(lines, fmt.Sprintf("%s\t%s\t%d", name, file, line))
			}
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		lines = append(lines, s.collect(node.NamedChild(i), src, file)...)
	}
	return lines
}
