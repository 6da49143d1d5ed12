package tags

import "fmt"

// DefaultChunkLimit bounds how many artifacts a single merge round consumes.
// The merge step historically shelled out with one argument per input file,
// so rounds must stay under the platform argument-length ceiling.
const DefaultChunkLimit = 128

// SafeMerge merges artifacts in rounds of at most chunkLimit inputs each,
// re-merging intermediate results until a single merged file remains. The
// final entry set is identical to Merge over the whole input; chunking only
// changes intermediate file counts. A single input still passes through
// Merge so the output shape is uniform.
func SafeMerge(artifacts []*Artifact, chunkLimit int, header Header) (*Merged, error) {
	if chunkLimit < 1 {
		return nil, fmt.Errorf("chunk limit must be positive, got %d", chunkLimit)
	}
	for len(artifacts) > chunkLimit {
		var intermediates []*Artifact
		for offset := 0; offset < len(artifacts); offset += chunkLimit {
			end := offset + chunkLimit
			if end > len(artifacts) {
				end = len(artifacts)
			}
			merged := Merge(artifacts[offset:end], header)
			intermediates = append(intermediates, merged.Artifact())
		}
		if len(intermediates) >= len(artifacts) {
			// a chunk limit of 1 normalizes inputs without reducing their
			// count; finish with one direct merge to terminate
			artifacts = intermediates
			break
		}
		artifacts = intermediates
	}
	return Merge(artifacts, header), nil
}
