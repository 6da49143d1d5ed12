package tagger

import (
	"go.uber.org/zap"
)

// Option customizes a Service.
type Option func(*Service)

// WithConfig replaces the default tagging config.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBasePackage sets a base/runtime package included in all mode.
func WithBasePackage(pkg *Package) Option {
	return func(s *Service) {
		s.base = pkg
	}
}

// WithChunkLimit bounds how many artifacts one merge round consumes.
func WithChunkLimit(limit int) Option {
	return func(s *Service) {
		s.config.ChunkLimit = limit
	}
}

// WithConcurrency bounds parallel package tagging.
func WithConcurrency(concurrency int) Option {
	return func(s *Service) {
		s.config.Concurrency = concurrency
	}
}

// WithPackageTagger injects a pre-built per-package tagger.
func WithPackageTagger(tagger *PackageTagger) Option {
	return func(s *Service) {
		s.tagger = tagger
	}
}

// WithStager installs a source filter staging step ahead of extraction.
func WithStager(stager Stager) Option {
	return func(s *Service) {
		s.stager = stager
	}
}
