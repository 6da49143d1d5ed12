package tagger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sharedTree() (*stubExtractor, []*Package) {
	p2 := &Package{Name: "p2", Location: "/store/p2"}
	p1 := &Package{Name: "p1", Location: "/store/p1", BuildInputs: []*Package{p2}}
	p3 := &Package{Name: "p3", Location: "/store/p3", BuildInputs: []*Package{p2}}
	stub := &stubExtractor{
		lines: map[string][]string{
			"/store/p1": {"one\tp1.go\t1"},
			"/store/p2": {"two\tp2.go\t1"},
			"/store/p3": {"three\tp3.go\t1"},
		},
		failed: map[string]bool{},
	}
	return stub, []*Package{p1, p3}
}

func TestService_IndividualAll(t *testing.T) {
	stub, targets := sharedTree()
	service := New(stub)

	artifacts, err := service.Individual(context.Background(), ModeAll, targets)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(artifacts))

	var packages []string
	for _, artifact := range artifacts {
		packages = append(packages, artifact.Package)
	}
	assert.ElementsMatch(t, []string{"p1", "p2", "p3"}, packages)
	// the shared dependency was extracted exactly once
	count := 0
	for _, call := range stub.calls {
		if call == "/store/p2" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestService_CombinedAll(t *testing.T) {
	stub, targets := sharedTree()
	service := New(stub, WithChunkLimit(2))

	merged, err := service.Combined(context.Background(), ModeAll, targets)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"one\t/store/p1/p1.go\t1",
		"three\t/store/p3/p3.go\t1",
		"two\t/store/p2/p2.go\t1",
	}, merged.Lines)
	assert.Equal(t, "/store/p1", merged.Header.Origin)
}

func TestService_Modes(t *testing.T) {
	stub, targets := sharedTree()
	base := &Package{Name: "base", Location: "/store/base"}
	stub.lines["/store/base"] = []string{"rt\tbase.go\t1"}

	tests := []struct {
		name    string
		mode    Mode
		options []Option
		want    []string
	}{
		{
			name: "deps excludes the targets",
			mode: ModeDeps,
			want: []string{"p2"},
		},
		{
			name: "packages excludes dependencies",
			mode: ModePackages,
			want: []string{"p1", "p3"},
		},
		{
			name:    "all includes the base package",
			mode:    ModeAll,
			options: []Option{WithBasePackage(base)},
			want:    []string{"p1", "p2", "p3", "base"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service := New(stub, tc.options...)
			selected, err := service.Select(tc.mode, targets)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, names(selected))
		})
	}
}

func TestService_UnknownMode(t *testing.T) {
	service := New(&stubExtractor{})
	_, err := service.Individual(context.Background(), Mode("bogus"), nil)
	assert.Error(t, err)
}

func TestService_FailedPackageDoesNotAbortSiblings(t *testing.T) {
	stub, targets := sharedTree()
	stub.failed["/store/p2"] = true
	service := New(stub)

	merged, err := service.Combined(context.Background(), ModeAll, targets)
	assert.NoError(t, err)
	// p2 contributed nothing, the rest survived
	assert.Equal(t, []string{
		"one\t/store/p1/p1.go\t1",
		"three\t/store/p3/p3.go\t1",
	}, merged.Lines)
}

func TestService_Cancellation(t *testing.T) {
	stub, targets := sharedTree()
	service := New(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := service.Combined(ctx, ModeAll, targets)
	assert.Error(t, err)
}
