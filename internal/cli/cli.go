// Package cli implements the scout command-line interface.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scout/pkg/buildinfo"
	"github.com/matzehuels/scout/pkg/config"
	"github.com/matzehuels/scout/pkg/document"
	"github.com/matzehuels/scout/pkg/errors"
	"github.com/matzehuels/scout/pkg/observability"
	"github.com/matzehuels/scout/pkg/scout"
	"github.com/matzehuels/scout/pkg/widget"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completions.
const appName = "scout"

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

	out        io.Writer
	errw       io.Writer
	configPath string
	cfg        config.Config
}

// New creates a CLI that prints results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		errw:   logw,
		cfg:    config.Default(),
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
		Short: "Scout infers layout structure and constraints for UI designs",
		Long: `Scout arranges widgets, infers anchor constraints and detects table-like
groups in UI layout documents (JSON or TOML).`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.setup() },
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "engine configuration file (TOML)")

	root.AddCommand(c.arrangeCommand())
	root.AddCommand(c.inferCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.wrapCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.opsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and, at debug level, routes engine events
// to the logger.
func (c *CLI) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if c.Logger.GetLevel() <= log.DebugLevel {
		observability.SetEngineHooks(observability.LogHooks{Logger: c.Logger})
	}
	c.Logger.Debug("config loaded", "path", c.configPath, "margin", cfg.Margin)
	return nil
}

// engine returns an engine built from the loaded configuration.
func (c *CLI) engine() *scout.Engine {
	return scout.New(c.cfg, scout.WithLogger(c.Logger))
}

// =============================================================================
// Document Helpers
// =============================================================================

// loadDocument reads the document at path.
func (c *CLI) loadDocument(path string) (*widget.Widget, error) {
	prog := newProgress(c.Logger)
	root, err := document.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n := 0
	root.Walk(func(*widget.Widget) bool { n++; return true })
	c.Logger.Debug("document loaded", "path", path, "widgets", n)
	prog.debug("Loaded " + path)
	return root, nil
}

// findContainer resolves id inside root; the empty id is root itself.
func findContainer(root *widget.Widget, id string) (*widget.Widget, error) {
	if id == "" {
		return root, nil
	}
	w := root.Find(id)
	if w == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "widget %q not found", id)
	}
	if !w.IsContainer() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "widget %q is not a container", id)
	}
	return w, nil
}

// findWidgets resolves a comma-separated list of IDs.
func findWidgets(root *widget.Widget, ids string) ([]*widget.Widget, error) {
	var out []*widget.Widget
	for _, id := range strings.Split(ids, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		w := root.Find(id)
		if w == nil {
			return nil, errors.New(errors.ErrCodeNotFound, "widget %q not found", id)
		}
		out = append(out, w)
	}
	return out, nil
}

// outputPath returns explicit if set, otherwise input with suffix inserted
// before the extension ("form.json" → "form.arranged.json").
func outputPath(input, explicit, suffix string) string {
	if explicit != "" {
		return explicit
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "." + suffix + ext
}

// countAnchors returns the number of anchors in the tree.
func countAnchors(root *widget.Widget) int {
	n := 0
	root.Walk(func(w *widget.Widget) bool {
		n += len(w.Anchors())
		return true
	})
	return n
}
