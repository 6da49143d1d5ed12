package tagger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/viant/tagger/extractor"
	"github.com/viant/tagger/tags"
)

// Mode selects which packages of the dependency tree are tagged.
type Mode string

const (
	// ModeDeps tags only the dependencies of the targets.
	ModeDeps Mode = "deps"
	// ModePackages tags only the targets themselves.
	ModePackages Mode = "packages"
	// ModeAll tags the targets, their dependencies and the base package.
	ModeAll Mode = "all"
)

// Service composes the dependency walker with per-package tagging and the
// chunked merge. Expansion always completes before tagging starts; tagging of
// distinct packages then runs in parallel up to the configured concurrency.
type Service struct {
	walker *Walker
	tagger *PackageTagger
	stager Stager
	config *Config
	base   *Package
	logger *zap.SugaredLogger
}

// New creates a tagging service backed by the given extractor.
func New(service extractor.Service, options ...Option) *Service {
	result := &Service{
		walker: NewWalker(),
		config: DefaultConfig(),
		logger: zap.NewNop().Sugar(),
	}
	for _, option := range options {
		option(result)
	}
	if result.config.Concurrency < 1 {
		result.config.Concurrency = 1
	}
	if result.config.ChunkLimit < 1 {
		result.config.ChunkLimit = tags.DefaultChunkLimit
	}
	flags, err := extractor.ParseFlags(result.config.Flags)
	if err != nil {
		result.logger.Warnf("ignoring unparseable extractor flags: %v", err)
	}
	if result.tagger == nil {
		result.tagger = NewPackageTagger(service, result.config.Suffixes, flags, result.logger)
	}
	if result.stager != nil {
		result.tagger.SetStager(result.stager)
	}
	return result
}

// Select expands the targets into the package set the mode calls for. Each
// package appears exactly once regardless of how many dependency paths reach
// it.
func (s *Service) Select(mode Mode, targets []*Package) ([]*Package, error) {
	switch mode {
	case ModeDeps:
		return s.walker.ExpandDependencies(targets), nil
	case ModePackages:
		seen := Seen{}
		var result []*Package
		for _, target := range targets {
			if target == nil || seen[target.Key()] {
				continue
			}
			seen[target.Key()] = true
			result = append(result, target)
		}
		return result, nil
	case ModeAll:
		roots := targets
		if s.base != nil && s.config.IncludeBase {
			roots = append(append([]*Package{}, targets...), s.base)
		}
		return s.walker.Expand(roots), nil
	}
	return nil, fmt.Errorf("unknown traversal mode %q", mode)
}

// Individual returns one artifact per selected package.
func (s *Service) Individual(ctx context.Context, mode Mode, targets []*Package) ([]*tags.Artifact, error) {
	selected, err := s.Select(mode, targets)
	if err != nil {
		return nil, err
	}
	return s.tagAll(ctx, selected)
}

// Combined returns a single merged artifact covering every selected package.
func (s *Service) Combined(ctx context.Context, mode Mode, targets []*Package) (*tags.Merged, error) {
	artifacts, err := s.Individual(ctx, mode, targets)
	if err != nil {
		return nil, err
	}
	header := tags.Header{}
	if len(targets) > 0 && targets[0] != nil {
		header.Origin = targets[0].Location
	}
	return tags.SafeMerge(artifacts, s.config.ChunkLimit, header)
}

// tagAll tags the already-expanded packages, in parallel. Extraction failures
// surface as fallback artifacts, never errors; only cancellation aborts.
func (s *Service) tagAll(ctx context.Context, packages []*Package) ([]*tags.Artifact, error) {
	artifacts := make([]*tags.Artifact, len(packages))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.config.Concurrency)
	for i, pkg := range packages {
		i, pkg := i, pkg
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			artifacts[i] = s.tagger.Tag(ctx, pkg)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}
