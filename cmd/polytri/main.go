// Command polytri counts the triangulations of a regular polygon in which a
// reference triangle is the unique largest triangle.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/polytri/internal/config"
	"github.com/katalvlaran/polytri/maxtri"
)

// app carries flag values and shared state for one command tree.
type app struct {
	// Global flags
	configPath    string
	verbose       bool
	noCache       bool
	cacheCapacity int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "polytri",
		Short: "Count max-triangle triangulations of regular polygons",
		Long: `polytri counts, for a regular N-gon and a reference triangle on three of its
vertices, the triangulations of the remaining regions in which every triangle
is strictly smaller than the reference triangle.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&a.noCache, "no-cache", false, "disable the symmetry cache")
	pf.IntVar(&a.cacheCapacity, "cache-capacity", 0, "max cached shapes per triangle (0 = unbounded)")

	root.AddCommand(a.countCmd(), a.allCmd(), a.benchCmd())

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("no-cache") {
		cfg.IncludeCache = !a.noCache
	}
	if flags.Changed("cache-capacity") {
		cfg.CacheCapacity = a.cacheCapacity
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Logging.ZapLevel()
	if err != nil {
		return err
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// counterOptions maps the effective config to counter options.
func (a *app) counterOptions() []maxtri.Option {
	return []maxtri.Option{
		maxtri.WithCache(a.cfg.IncludeCache),
		maxtri.WithCacheCapacity(a.cfg.CacheCapacity),
		maxtri.WithLogger(a.logger),
	}
}

// polygonSize returns N from the first argument, or the configured default.
func (a *app) polygonSize(args []string) (int, error) {
	if len(args) == 0 {
		return a.cfg.N, nil
	}

	return parseInt("N", args[0])
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}

	return v, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
