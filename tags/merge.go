package tags

import "sort"

// Merge combines artifacts into one merged tag file: entry lines from all
// inputs are deduplicated and sorted in byte order, header markers are
// dropped, and the canonical header is attached. The result depends only on
// the set of input lines, not on artifact order.
func Merge(artifacts []*Artifact, header Header) *Merged {
	seen := make(map[string]bool)
	var lines []string
	for _, artifact := range artifacts {
		if artifact == nil {
			continue
		}
		for _, line := range artifact.Lines {
			if line == "" || IsHeaderLine(line) {
				continue
			}
			if seen[line] {
				continue
			}
			seen[line] = true
			lines = append(lines, line)
		}
	}
	sort.Strings(lines)
	return &Merged{Header: header, Lines: lines}
}
