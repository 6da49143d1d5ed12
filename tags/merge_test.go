package tags

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		artifacts []*Artifact
		want      []string
	}{
		{
			name: "sorted union of two artifacts",
			artifacts: []*Artifact{
				{Package: "a", Lines: []string{"zoo\ta.go\t3", "alpha\ta.go\t1"}},
				{Package: "b", Lines: []string{"mid\tb.go\t9"}},
			},
			want: []string{"alpha\ta.go\t1", "mid\tb.go\t9", "zoo\ta.go\t3"},
		},
		{
			name: "duplicates collapse to one entry",
			artifacts: []*Artifact{
				{Package: "a", Lines: []string{"shared\tlib.go\t4", "only\ta.go\t1"}},
				{Package: "b", Lines: []string{"shared\tlib.go\t4"}},
			},
			want: []string{"only\ta.go\t1", "shared\tlib.go\t4"},
		},
		{
			name: "stray header lines are stripped",
			artifacts: []*Artifact{
				{Package: "a", Lines: []string{"!_TAG_FILE_FORMAT\t2\t/extended format/", "sym\ta.go\t2"}},
			},
			want: []string{"sym\ta.go\t2"},
		},
		{
			name:      "no inputs yields header only",
			artifacts: nil,
			want:      nil,
		},
		{
			name: "fallback artifacts contribute nothing",
			artifacts: []*Artifact{
				Fallback("broken"),
				{Package: "a", Lines: []string{"sym\ta.go\t2"}},
			},
			want: []string{"sym\ta.go\t2"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			merged := Merge(tc.artifacts, Header{})
			assert.Equal(t, tc.want, merged.Lines)
		})
	}
}

func TestMergeCommutativity(t *testing.T) {
	artifacts := []*Artifact{
		{Package: "a", Lines: []string{"a1\ta.go\t1", "a2\ta.go\t2"}},
		{Package: "b", Lines: []string{"b1\tb.go\t1", "a1\ta.go\t1"}},
		{Package: "c", Lines: []string{"c1\tc.go\t1"}},
		{Package: "d", Lines: []string{"d1\td.go\t1", "b1\tb.go\t1"}},
	}
	want := Merge(artifacts, Header{}).Lines

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*Artifact, len(artifacts))
		copy(shuffled, artifacts)
		rnd.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, want, Merge(shuffled, Header{}).Lines)
	}
}

func TestMergedContent(t *testing.T) {
	merged := Merge([]*Artifact{
		{Package: "a", Lines: []string{"sym\ta.go\t2"}},
	}, Header{Origin: "/out"})
	content := merged.Content()
	assert.Equal(t,
		"!_TAG_FILE_FORMAT\t2\t/extended format/\n"+
			"!_TAG_FILE_SORTED\t1\t/0=unsorted, 1=sorted, 2=foldcase/\n"+
			"!_TAG_PROGRAM_NAME\ttagger\t//\n"+
			"!_TAG_OUTPUT_ORIGIN\t/out\t//\n"+
			"sym\ta.go\t2\n",
		content)
}
