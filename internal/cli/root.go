package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/solarsys/pkg/observability"
)

// bindFlags registers the persistent flags shared by every command.
// Flag values override the config file; empty values leave it untouched.
func (c *CLI) bindFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.BoolVar(&c.flags.noColor, "no-color", false, "disable colored output")
	pf.StringVar(&c.flags.apiURL, "api-url", "", "bodies collection endpoint (default "+DefaultConfig().APIURL+")")
	pf.StringVar(&c.flags.config, "config", "", "config file (default $XDG_CONFIG_HOME/"+appName+"/config.toml)")
	pf.StringVarP(&c.flags.output, "output", "o", "", "output format: text, json or yaml")
}

// setup runs before every command. It resolves the effective configuration,
// configures logging and color, and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	level := LogInfo
	if c.flags.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}
	c.applyColor(cfg.Color)

	observability.SetHTTPHooks(newLogHTTPHooks(c.Logger))
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	c.Logger.Debug("configuration", "api_url", cfg.APIURL, "color", cfg.Color, "output", cfg.Output, "file", c.configFile)
	return nil
}

// resolveConfig merges defaults, the config file and flags, validates the
// result and stores it as the effective configuration.
func (c *CLI) resolveConfig() (Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return cfg, err
	}
	c.applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	c.config = cfg
	return cfg, nil
}

// applyFlags overrides cfg with every flag the user set.
func (c *CLI) applyFlags(cfg *Config) {
	if c.flags.apiURL != "" {
		cfg.APIURL = c.flags.apiURL
	}
	if c.flags.output != "" {
		cfg.Output = c.flags.output
	}
	if c.flags.noColor {
		cfg.Color = ColorNever
	}
}

// applyColor forces a color profile for command output, logs and the
// package-level styles. ColorAuto keeps terminal detection.
func (c *CLI) applyColor(mode string) {
	var profile termenv.Profile
	switch mode {
	case ColorNever:
		profile = termenv.Ascii
	case ColorAlways:
		profile = termenv.ANSI256
	default:
		return
	}
	c.renderer.SetColorProfile(profile)
	c.Logger.SetColorProfile(profile)
	lipgloss.SetColorProfile(profile)
}
