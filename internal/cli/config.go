package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/solarsys/pkg/solarsys"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the effective configuration: defaults, then the config file,
// then flags.
type Config struct {
	APIURL string `toml:"api_url" json:"api_url" yaml:"api_url"`
	Color  string `toml:"color" json:"color" yaml:"color"`
	Output string `toml:"output" json:"output" yaml:"output"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		APIURL: solarsys.DefaultBaseURL,
		Color:  ColorAuto,
		Output: OutputText,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api_url: %q is not an http(s) URL", c.APIURL)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: %q is not one of auto, always, never", c.Color)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output: %q is not one of text, json, yaml", c.Output)
	}
	return nil
}

// LoadConfig reads a TOML config file on top of DefaultConfig. Keys left
// empty or unset keep their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
	}

	if file.APIURL != "" {
		cfg.APIURL = file.APIURL
	}
	if file.Color != "" {
		cfg.Color = file.Color
	}
	if file.Output != "" {
		cfg.Output = file.Output
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// configPath returns the config file path using XDG standard
// (~/.config/solarsys/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig resolves the config file for this run. A missing file at the
// default location yields defaults; a missing --config file is an error.
func (c *CLI) loadConfig() (Config, error) {
	path := c.flags.config
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			c.Logger.Debug("no config directory", "err", err)
			c.configFile = ""
			return DefaultConfig(), nil
		}
		path = p
	}
	c.configFile = path

	cfg, err := LoadConfig(path)
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		c.configFile = ""
		return cfg, nil
	default:
		return cfg, fmt.Errorf("load config: %w", err)
	}
}

// configCommand creates the config command that prints the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration in effect after applying the config file and flags.

The config file is read from $XDG_CONFIG_HOME/solarsys/config.toml, falling back
to ~/.config/solarsys/config.toml. All keys are optional:

  api_url = "https://api.le-systeme-solaire.net/rest/bodies/"
  color   = "auto"   # auto, always or never
  output  = "text"   # text, json or yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch c.config.Output {
			case OutputJSON, OutputYAML:
				return c.encode(struct {
					File   string `json:"file,omitempty" yaml:"file,omitempty"`
					Config `yaml:",inline"`
				}{c.configFile, c.config})
			}

			source := c.configFile
			if source == "" {
				source = "defaults"
			}
			fmt.Fprintln(c.out, StyleDim.Render("# source: "+source))
			return toml.NewEncoder(c.out).Encode(c.config)
		},
	}
}
