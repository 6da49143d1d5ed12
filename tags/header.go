package tags

import "fmt"

const (
	formatMarker  = "!_TAG_FILE_FORMAT"
	sortedMarker  = "!_TAG_FILE_SORTED"
	programMarker = "!_TAG_PROGRAM_NAME"
	originMarker  = "!_TAG_OUTPUT_ORIGIN"

	// ProgramName identifies the generator in merged headers.
	ProgramName = "tagger"
)

// Header describes the canonical header block prepended to a merged tag file.
// Individual per-package headers are stripped during merge and replaced by
// exactly one of these.
type Header struct {
	Origin string // optional origin path of the merged output
}

// Lines renders the header block in canonical order: format version,
// sorted flag, program name, then the optional origin marker.
func (h Header) Lines() []string {
	lines := []string{
		fmt.Sprintf("%s\t2\t/extended format/", formatMarker),
		fmt.Sprintf("%s\t1\t/0=unsorted, 1=sorted, 2=foldcase/", sortedMarker),
		fmt.Sprintf("%s\t%s\t//", programMarker, ProgramName),
	}
	if h.Origin != "" {
		lines = append(lines, fmt.Sprintf("%s\t%s\t//", originMarker, h.Origin))
	}
	return lines
}
