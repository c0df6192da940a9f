package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigPath(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)

		got, err := configPath()
		if err != nil {
			t.Fatalf("configPath() error: %v", err)
		}
		if want := filepath.Join(dir, appName, "config.toml"); got != want {
			t.Errorf("configPath() = %q, want %q", got, want)
		}
	})

	t.Run("home fallback", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		got, err := configPath()
		if err != nil {
			t.Fatalf("configPath() error: %v", err)
		}
		home, _ := os.UserHomeDir()
		if want := filepath.Join(home, ".config", appName, "config.toml"); got != want {
			t.Errorf("configPath() = %q, want %q", got, want)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
api_url = "http://localhost:8080/rest/bodies/"
color = "never"
output = "json"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	want := Config{APIURL: "http://localhost:8080/rest/bodies/", Color: ColorNever, Output: OutputJSON}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `output = "json"`))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	def := DefaultConfig()
	if cfg.APIURL != def.APIURL || cfg.Color != def.Color {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputJSON)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadConfig() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{"syntax", `api_url = `, "parse"},
		{"unknown key", `colour = "never"`, "unknown key"},
		{"bad color", `color = "sometimes"`, "color"},
		{"bad output", `output = "xml"`, "output"},
		{"bad url", `api_url = "ftp://example.com"`, "api_url"},
		{"relative url", `api_url = "/rest/bodies/"`, "api_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("LoadConfig() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}
