package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"go.uber.org/zap"

	"github.com/viant/tagger"
	"github.com/viant/tagger/extractor"
	"github.com/viant/tagger/repository"
)

var (
	flagConfig        string
	flagOutput        string
	flagMode          string
	flagChunkLimit    int
	flagConcurrency   int
	flagBinary        string
	flagFlags         string
	flagAbsolute      bool
	flagIndividualDir string
	flagBase          string
	flagNoBase        bool
	flagModuleCache   string
	flagImportGraph   bool
)

var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "tagger",
	Short: "Generate merged tag files for a package and its dependency tree",
	Long: `tagger generates ctags-style tag files for a project and every package
reachable through its declared dependencies, then merges them into a single
sorted, deduplicated tag index.

Examples:
  # Tag the module in the current directory and its dependency tree
  tagger generate

  # Tag only the dependencies, writing one file per package
  tagger generate --mode deps --individual-dir ./tagfiles

  # Use an external ctags binary with extra flags
  tagger generate --binary universal-ctags --flags "--kinds-go=+p"

  # Print the expanded package set without tagging
  tagger list`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapLogger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = zapLogger.Sugar()
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate tag files for a project and its dependencies",
	RunE:  runGenerate,
	Args:  cobra.MaximumNArgs(1),
}

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "Print the expanded package set without tagging",
	RunE:  runList,
	Args:  cobra.MaximumNArgs(1),
}

func init() {
	for _, cmd := range []*cobra.Command{generateCmd, listCmd} {
		cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "yaml config file")
		cmd.Flags().StringVar(&flagMode, "mode", "all", "traversal mode: deps, packages, all")
		cmd.Flags().StringVar(&flagModuleCache, "module-cache", "", "Go module cache root (default: GOMODCACHE)")
		cmd.Flags().BoolVar(&flagImportGraph, "import-graph", false, "expand the import graph instead of module requirements")
	}
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "tags", "merged output file")
	generateCmd.Flags().StringVar(&flagIndividualDir, "individual-dir", "", "write one tag file per package into this directory instead of merging")
	generateCmd.Flags().IntVar(&flagChunkLimit, "chunk-limit", 0, "max artifacts per merge round")
	generateCmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "parallel package taggers")
	generateCmd.Flags().StringVar(&flagBinary, "binary", "", "external ctags binary (default: native extraction)")
	generateCmd.Flags().StringVar(&flagFlags, "flags", "", "pass-through extractor flags")
	generateCmd.Flags().BoolVar(&flagAbsolute, "absolute", false, "absolute entry paths for target packages")
	generateCmd.Flags().StringVar(&flagBase, "base", "", "base package location included in all mode")
	generateCmd.Flags().BoolVar(&flagNoBase, "no-base", false, "exclude the base package from all mode")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges file config with command-line overrides.
func loadConfig(ctx context.Context) (*tagger.Config, error) {
	config := tagger.DefaultConfig()
	if flagConfig != "" {
		loaded, err := tagger.LoadConfig(ctx, afs.New(), flagConfig)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if flagChunkLimit > 0 {
		config.ChunkLimit = flagChunkLimit
	}
	if flagConcurrency > 0 {
		config.Concurrency = flagConcurrency
	}
	if flagBinary != "" {
		config.Binary = flagBinary
	}
	if flagFlags != "" {
		config.Flags = flagFlags
	}
	if flagAbsolute {
		config.Relative = false
	}
	if flagNoBase {
		config.IncludeBase = false
	}
	return config, nil
}

// newExtractor picks the extraction backend: an external ctags binary when
// configured, native Go parsing otherwise. A configured but missing binary is
// fatal up front.
func newExtractor(config *tagger.Config) (extractor.Service, error) {
	if config.Binary == "" {
		return extractor.NewGolang(), nil
	}
	timeout := time.Duration(config.TimeoutMs) * time.Millisecond
	return extractor.NewCtags(config.Binary, timeout)
}

// expandTargets loads the target packages for the given path.
func expandTargets(ctx context.Context, config *tagger.Config, args []string) ([]*tagger.Package, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	project, err := repository.NewDetector().Detect(ctx, absDir)
	if err != nil {
		return nil, err
	}
	loader := repository.NewLoader(flagModuleCache, logger)
	if flagImportGraph {
		targets, err := loader.LoadPackages(ctx, project.RootPath)
		if err != nil {
			return nil, err
		}
		for _, target := range targets {
			target.Relative = config.Relative
		}
		return targets, nil
	}
	root, err := loader.Load(ctx, project.RootPath)
	if err != nil {
		return nil, err
	}
	root.Relative = config.Relative
	return []*tagger.Package{root}, nil
}

func newService(config *tagger.Config) (*tagger.Service, error) {
	service, err := newExtractor(config)
	if err != nil {
		return nil, err
	}
	options := []tagger.Option{
		tagger.WithConfig(config),
		tagger.WithLogger(logger),
		tagger.WithStager(repository.NewFilter(config.Suffixes, config.Excluded)),
	}
	if flagBase != "" {
		options = append(options, tagger.WithBasePackage(&tagger.Package{
			Name:     filepath.Base(flagBase),
			Location: flagBase,
		}))
	}
	return tagger.New(service, options...), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	targets, err := expandTargets(ctx, config, args)
	if err != nil {
		return err
	}
	service, err := newService(config)
	if err != nil {
		return err
	}
	mode := tagger.Mode(flagMode)

	if flagIndividualDir != "" {
		artifacts, err := service.Individual(ctx, mode, targets)
		if err != nil {
			return err
		}
		fs := afs.New()
		for i, artifact := range artifacts {
			name := fmt.Sprintf("%03d-%s.tags", i, filepath.Base(artifact.Package))
			if err := artifact.Upload(ctx, fs, filepath.Join(flagIndividualDir, name)); err != nil {
				return err
			}
		}
		logger.Infof("wrote %v tag files to %v", len(artifacts), flagIndividualDir)
		return nil
	}

	merged, err := service.Combined(ctx, mode, targets)
	if err != nil {
		return err
	}
	if err := merged.Upload(ctx, afs.New(), flagOutput); err != nil {
		return err
	}
	logger.Infof("wrote %v entries to %v", len(merged.Lines), flagOutput)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	targets, err := expandTargets(ctx, config, args)
	if err != nil {
		return err
	}
	selected, err := tagger.New(extractor.NewGolang()).Select(tagger.Mode(flagMode), targets)
	if err != nil {
		return err
	}
	for _, pkg := range selected {
		fmt.Printf("%s\t%s\n", pkg.Name, pkg.Location)
	}
	return nil
}
