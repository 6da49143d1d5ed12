package tags

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// Status records how a package's tag listing was produced.
type Status string

const (
	// StatusSucceeded indicates the extractor produced the listing.
	StatusSucceeded Status = "succeeded"
	// StatusFallback indicates extraction failed and the artifact carries
	// an empty listing instead of a propagated error.
	StatusFallback Status = "failed-with-fallback"
)

// Artifact is the tag listing produced for one package. Entry lines exclude
// header markers; artifacts are immutable once produced.
type Artifact struct {
	Package string
	Lines   []string
	Status  Status
}

// IsFallback reports whether the artifact stands in for a failed extraction.
func (a *Artifact) IsFallback() bool {
	return a.Status == StatusFallback
}

// Fallback returns an empty artifact for a package whose extraction failed.
func Fallback(pkg string) *Artifact {
	return &Artifact{Package: pkg, Status: StatusFallback}
}

// Load reads a tag file and returns its entry lines, dropping header markers.
func Load(ctx context.Context, fs afs.Service, URL string) (*Artifact, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load tag file %s: %w", URL, err)
	}
	artifact := &Artifact{Package: URL, Status: StatusSucceeded}
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" || IsHeaderLine(line) {
			continue
		}
		artifact.Lines = append(artifact.Lines, line)
	}
	return artifact, nil
}

// Upload writes the artifact's entry lines as a tag file.
func (a *Artifact) Upload(ctx context.Context, fs afs.Service, URL string) error {
	content := strings.Join(a.Lines, "\n")
	if content != "" {
		content += "\n"
	}
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to upload tag file %s: %w", URL, err)
	}
	return nil
}

// Merged is a single tag file combining many artifacts: one canonical header
// block followed by sorted, deduplicated entry lines.
type Merged struct {
	Header Header
	Lines  []string
}

// Artifact converts a merged result back into an artifact so intermediate
// merges can feed later merge rounds.
func (m *Merged) Artifact() *Artifact {
	return &Artifact{Package: ProgramName, Lines: m.Lines, Status: StatusSucceeded}
}

// Content renders the merged tag file.
func (m *Merged) Content() string {
	builder := &strings.Builder{}
	for _, line := range m.Header.Lines() {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	for _, line := range m.Lines {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	return builder.String()
}

// Upload writes the merged tag file, header included.
func (m *Merged) Upload(ctx context.Context, fs afs.Service, URL string) error {
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(m.Content())); err != nil {
		return fmt.Errorf("failed to upload merged tag file %s: %w", URL, err)
	}
	return nil
}
