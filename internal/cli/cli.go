// Package cli implements the solarsys command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/solarsys/pkg/buildinfo"
	"github.com/matzehuels/solarsys/pkg/present"
	"github.com/matzehuels/solarsys/pkg/solarsys"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "solarsys"

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

	out      io.Writer // command output
	err      io.Writer // logs, spinner
	renderer *lipgloss.Renderer

	flags      flags
	config     Config
	configFile string
}

// flags holds the persistent flag values.
type flags struct {
	verbose bool
	noColor bool
	apiURL  string
	config  string
	output  string
}

// New creates a CLI writing command output to out and logs to errw.
func New(out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(errw, level),
		out:      out,
		err:      errw,
		renderer: lipgloss.NewRenderer(out),
		config:   DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand it lists every body.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Solarsys lists and describes bodies of the solar system",
		Long: `Solarsys queries the public solar-system bodies API.

Without arguments it prints one line per known body. Use "details <name>" to
print everything the API knows about a single body.`,
		Version:           buildinfo.Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE:              c.runList,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.SetErr(c.err)
	c.bindFlags(root)

	root.AddCommand(c.detailsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Factories
// =============================================================================

// newClient creates an API client for the effective configuration.
func (c *CLI) newClient() *solarsys.Client {
	return solarsys.NewClient(
		solarsys.WithBaseURL(c.config.APIURL),
		solarsys.WithUserAgent(buildinfo.UserAgent()),
		solarsys.WithLogger(c.Logger),
	)
}

// newPrinter creates a presenter bound to the command output.
func (c *CLI) newPrinter() *present.Printer {
	return present.New(c.out, present.WithRenderer(c.renderer))
}

// encode writes v in the configured machine-readable format.
func (c *CLI) encode(v any) error {
	if c.config.Output == OutputYAML {
		return c.newPrinter().YAML(v)
	}
	return c.newPrinter().JSON(v)
}
