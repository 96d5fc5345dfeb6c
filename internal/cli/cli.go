// Package cli implements the gedcom command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Kaper156/pygedcom/internal/config"
	"github.com/Kaper156/pygedcom/pkg/buildinfo"
	"github.com/Kaper156/pygedcom/pkg/cache"
	"github.com/Kaper156/pygedcom/pkg/errors"
	"github.com/Kaper156/pygedcom/pkg/gedcom"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "gedcom"

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
	Config config.Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level, cfg config.Config) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gedcom",
		Short:        "Gedcom parses and exports GEDCOM genealogy files",
		Long:         `Gedcom is a CLI tool for verifying, parsing, exporting, and visualizing GEDCOM genealogy files, with JSON export, family tree rendering, and an interactive browser.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache builds the configured cache backend. A backend failure degrades to
// the null cache rather than failing the command.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache || c.Config.Cache.Backend == "none" {
		return cache.NewNullCache()
	}
	if c.Config.Cache.Backend == "redis" {
		rc, err := cache.NewRedisCache(c.Config.Cache.RedisURL)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "err", err)
			return cache.NewNullCache()
		}
		return rc
	}
	dir, err := c.Config.Cache.CacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, caching disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheTTL returns the configured artifact expiration.
func (c *CLI) cacheTTL() time.Duration {
	if h := c.Config.Cache.TTLHours; h > 0 {
		return time.Duration(h) * time.Hour
	}
	return cache.DefaultTTL
}

// =============================================================================
// Input/Output Helpers
// =============================================================================

// readSource reads a GEDCOM file and returns its text.
func readSource(path string) (string, error) {
	if err := errors.ValidatePath(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return string(data), nil
}

// loadParser reads and parses a GEDCOM file.
func loadParser(path string) (*gedcom.Parser, string, error) {
	text, err := readSource(path)
	if err != nil {
		return nil, "", err
	}
	p := gedcom.NewParser()
	if err := p.Parse(text); err != nil {
		return nil, "", err
	}
	return p, text, nil
}

// nopCloser wraps an io.Writer with a no-op Close method so os.Stdout can be
// used where an io.WriteCloser is expected.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, or stdout when empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// outputPath derives the output file name from the input when none was given.
func outputPath(output, input, ext string) string {
	if output != "" {
		return output
	}
	base := filepath.Base(input)
	return fmt.Sprintf("%s.%s", base[:len(base)-len(filepath.Ext(base))], ext)
}
