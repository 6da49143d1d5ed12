package tagger

// Seen tracks package identities already scheduled within one expansion.
// A fresh set is created per top-level call; it is never shared across
// invocations.
type Seen map[uint64]bool

// Walker expands packages into the set reachable through their declared
// build inputs. Expansion is pure: it inspects metadata only, never fails,
// and a package with no build inputs is simply a leaf.
type Walker struct{}

// NewWalker creates a dependency walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Expand returns every package reachable from the roots exactly once, in
// first-encountered traversal order. When a package is reachable via several
// paths, the first occurrence supplies its metadata.
func (w *Walker) Expand(roots []*Package) []*Package {
	return w.expand(roots, Seen{})
}

// ExpandDependencies returns the packages reachable from the roots excluding
// the roots themselves. The seen set is seeded with the roots so a root
// reached again as a transitive dependency is not re-included.
func (w *Walker) ExpandDependencies(roots []*Package) []*Package {
	seen := Seen{}
	for _, root := range roots {
		if root != nil {
			seen[root.Key()] = true
		}
	}
	var result []*Package
	for _, root := range roots {
		if root == nil {
			continue
		}
		result = append(result, w.expand(root.BuildInputs, seen)...)
	}
	return result
}

// expand performs a depth-first walk threading the seen set through the
// recursion; a cycle contributes nothing on its second visit.
func (w *Walker) expand(packages []*Package, seen Seen) []*Package {
	var result []*Package
	for _, pkg := range packages {
		if pkg == nil {
			continue
		}
		key := pkg.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, pkg)
		result = append(result, w.expand(pkg.BuildInputs, seen)...)
	}
	return result
}
