// Package tagger generates ctags-style tag files for packages and their
// transitive build inputs, merging the per-package listings into one sorted,
// deduplicated index.
package tagger

import (
	"github.com/minio/highwayhash"
)

var identityKey = []byte("4A3F9C0E5D1B78264A3F9C0E5D1B7826")

// Package describes one unit of tagging: a named source tree plus the
// packages it declares as build inputs. Packages are value-like; traversal
// identity is derived from the source location alone, so two records naming
// the same location count as one package.
type Package struct {
	Name        string
	Location    string // canonical source location
	Prefix      string // optional output path prefix for entry file paths
	Relative    bool   // keep entry file paths relative to the package root
	BuildInputs []*Package
}

// Key returns the traversal identity of the package: a 64-bit hash of its
// source location. Structural differences in name or metadata do not change
// the key.
func (p *Package) Key() uint64 {
	return highwayhash.Sum64([]byte(p.Location), identityKey)
}
