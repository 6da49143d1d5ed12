package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
)

// DefaultTimeout bounds a single ctags invocation.
const DefaultTimeout = 2 * time.Minute

// Ctags extracts tags by invoking an external ctags binary. A missing binary
// is detected at construction time so the pipeline can abort up front rather
// than fail once per package.
type Ctags struct {
	binary  string
	timeout time.Duration
}

// NewCtags resolves the ctags binary and returns an exec-backed extractor.
func NewCtags(binary string, timeout time.Duration) (*Ctags, error) {
	if binary == "" {
		binary = "ctags"
	}
	resolved, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("ctags binary %q not found: %w", binary, err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Ctags{binary: resolved, timeout: timeout}, nil
}

// ParseFlags splits a user-supplied flag string into arguments, honoring
// shell quoting.
func ParseFlags(flags string) ([]string, error) {
	if strings.TrimSpace(flags) == "" {
		return nil, nil
	}
	args, err := shellquote.Split(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extractor flags %q: %w", flags, err)
	}
	return args, nil
}

// Extract runs the binary over the matching files under dir and returns the
// produced tag lines. Sources are passed relative to dir so emitted entry
// file fields stay relative to the package root, like the native extractors.
// A timeout or nonzero exit is reported as an error so the caller can fall
// back to an empty listing.
func (c *Ctags) Extract(ctx context.Context, dir string, suffixes []string, flags []string) ([]string, error) {
	sources, err := listSources(dir, suffixes)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources in %s: %w", dir, err)
	}
	if len(sources) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := append([]string{"-f", "-"}, flags...)
	for _, source := range sources {
		relative, err := filepath.Rel(dir, source)
		if err != nil {
			relative = source
		}
		args = append(args, filepath.ToSlash(relative))
	}
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("ctags timed out in %s: %w", dir, ctx.Err())
		}
		return nil, fmt.Errorf("ctags failed in %s: %w: %s", dir, err, strings.TrimSpace(stderr.String()))
	}

	var lines []string
	for _, line := range strings.Split(stdout.String(), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
