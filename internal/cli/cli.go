// Package cli implements the dotkit command-line interface.
//
// The commands are:
//   - build: turn a YAML, TOML or JSON graph document into DOT text
//   - render: lay out a document or DOT file with Graphviz
//   - serve: run the HTTP render service
//   - cache: inspect and clear the artifact cache
//   - config: show the effective configuration
//   - completion: generate shell completion scripts
//
// All commands accept --config to select a configuration file and
// --verbose (-v) for debug logging.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotkit/pkg/buildinfo"
	"github.com/matzehuels/dotkit/pkg/cache"
	"github.com/matzehuels/dotkit/pkg/config"
	"github.com/matzehuels/dotkit/pkg/engine"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "dotkit"

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

	// Config is loaded before any subcommand runs.
	Config config.Config
	// ConfigPath is the file Config was read from, empty for built-in defaults.
	ConfigPath string

	configFlag string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "dotkit builds Graphviz DOT graphs and renders them",
		Long: `dotkit builds Graphviz DOT graphs from YAML, TOML or JSON documents,
checks every attribute against the elements it may be attached to, and renders
the result with the Graphviz layout engines.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFlag, "config", "", "config file (default $"+config.EnvConfig+" or "+config.DefaultPath()+")")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	cfg, path, err := config.Load(c.configFlag)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.ConfigPath = path
	if path != "" {
		c.Logger.Debug("Loaded config", "path", path)
	}
	return nil
}

// =============================================================================
// Renderer Factory
// =============================================================================

// newRenderer builds the renderer described by the configuration, wrapped in
// the artifact cache unless noCache is set or the backend is "none". The
// returned close function releases the cache.
func (c *CLI) newRenderer(ctx context.Context, noCache bool) (engine.Renderer, func() error, error) {
	cfg := c.Config

	var r engine.Renderer
	if cfg.Engine.Embedded {
		r = engine.NewEmbedded(c.Logger)
	} else {
		r = engine.NewExec(cfg.Engine.Path, cfg.Engine.Timeout.Duration, c.Logger)
	}

	if noCache || cfg.Cache.Backend == cache.BackendNone {
		return r, func() error { return nil }, nil
	}

	store, err := cache.Open(ctx, cfg.CacheOptions())
	if err != nil {
		return nil, nil, err
	}
	return engine.NewCached(r, store, c.keyer(), cfg.Cache.TTL.Duration, c.Logger), store.Close, nil
}

// keyer returns the cache keyer, scoped by the configured namespace.
func (c *CLI) keyer() cache.Keyer {
	k := cache.NewDefaultKeyer()
	if ns := c.Config.Cache.Namespace; ns != "" {
		k = cache.NewScopedKeyer(k, ns+":")
	}
	return k
}

// defaults returns the configured default engine and format.
func (c *CLI) defaults() (engine.Engine, engine.Format, error) {
	e, err := engine.ParseEngine(c.Config.Engine.DefaultEngine)
	if err != nil {
		return "", "", err
	}
	f, err := engine.ParseFormat(c.Config.Engine.DefaultFormat)
	if err != nil {
		return "", "", err
	}
	return e, f, nil
}
