// Package cli implements the mobius command-line interface.
//
// # Commands
//
//   - pearls: generate the inversion fractal and write SVG, PNG, PDF, JSON or DOT
//   - sphere: render the Möbius sphere animation to MP4
//   - presets: list the built-in base circle configurations
//   - cache: inspect or clear the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on the pipeline's debug hooks. Loggers are passed through
// context.Context so helpers deep in a command can report progress.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mobius/pkg/buildinfo"
	"github.com/matzehuels/mobius/pkg/cache"
	"github.com/matzehuels/mobius/pkg/observability"
	"github.com/matzehuels/mobius/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "mobius"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the pipeline
// hooks are routed to the logger as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		registerLogHooks(c.Logger)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Mobius draws Indra's pearls and animates Möbius transformations",
		Long: `Mobius draws the limit set of a circle-inversion group ("Indra's pearls")
and animates a loxodromic Möbius transformation acting on the Riemann sphere.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.pearlsCommand())
	root.AddCommand(c.sphereCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. dir overrides the
// default cache location when non-empty.
func (c *CLI) newRunner(noCache bool, dir string) (*pipeline.Runner, error) {
	cache, err := newCache(noCache, dir)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool, dir string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/mobius/).
func cacheDir() (string, error) {
	return cache.DefaultDir()
}

// registerLogHooks installs hooks that echo pipeline events at debug level.
func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetGeneratorHooks(h)
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
}
