package tagger

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/tagger/tags"
)

// Config holds tagging options.
type Config struct {
	Suffixes    []string `yaml:"suffixes"`    // source file suffix allow-list
	Excluded    []string `yaml:"excluded"`    // directory names skipped when staging
	Binary      string   `yaml:"binary"`      // external ctags binary, empty for native extraction
	Flags       string   `yaml:"flags"`       // pass-through extractor flags
	ChunkLimit  int      `yaml:"chunkLimit"`  // max artifacts per merge round
	Concurrency int      `yaml:"concurrency"` // parallel package taggers
	TimeoutMs   int      `yaml:"timeoutMs"`   // per-package extraction timeout
	Relative    bool     `yaml:"relative"`    // relative entry paths for target packages
	IncludeBase bool     `yaml:"includeBase"` // include the base package in all mode
}

// DefaultConfig returns tagging defaults for Go sources.
func DefaultConfig() *Config {
	return &Config{
		Suffixes:    []string{".go"},
		Excluded:    []string{"vendor", "testdata", "node_modules", ".git"},
		ChunkLimit:  tags.DefaultChunkLimit,
		Concurrency: 4,
		Relative:    true,
		IncludeBase: true,
	}
}

// LoadConfig reads a yaml config, filling unset fields from defaults.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	if config.ChunkLimit < 1 {
		config.ChunkLimit = DefaultConfig().ChunkLimit
	}
	if config.Concurrency < 1 {
		config.Concurrency = DefaultConfig().Concurrency
	}
	return config, nil
}
