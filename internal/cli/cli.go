// Package cli implements the srcforge command-line interface.
//
// This package provides commands for inspecting a source-distribution build
// tree's package metadata: listing packages, showing a package's files as
// structured data, resolving tarball names and upstream URLs, and serving the
// metadata over HTTP. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/srcforge/srcforge/pkg/buildinfo"
	"github.com/srcforge/srcforge/pkg/config"
	"github.com/srcforge/srcforge/pkg/errors"
	"github.com/srcforge/srcforge/pkg/pkgs"
)

// appName is the application name used for config lookup and display.
const appName = "srcforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string // --config
	rootFlag   string // --root
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "srcforge inspects source-distribution package metadata",
		Long:         `srcforge reads the per-package metadata directories of a source-distribution build tree (type, checksums, version, dependency lists) and exposes them as structured data: on the terminal, or as a read-only HTTP service.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./srcforge.toml)")
	root.PersistentFlags().StringVar(&c.rootFlag, "root", "", "package root directory (overrides config and SRCFORGE_ROOT)")

	// Register all subcommands
	root.AddCommand(c.listCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.tarballCommand())
	root.AddCommand(c.depsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves the effective configuration: config file, environment,
// then the --root flag on top.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.rootFlag != "" {
		cfg.Root = c.rootFlag
	}
	return cfg, nil
}

// registry builds the package registry from the effective configuration.
func (c *CLI) registry() (*pkgs.Registry, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	if err := errors.ValidateRoot(cfg.Root); err != nil {
		return nil, err
	}
	return pkgs.New(cfg.Root, pkgs.WithLogger(c.Logger)), nil
}
