package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eriklarko/booleval/src/output"
	"github.com/eriklarko/booleval/src/treeprint"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTableWarningIdentifiers = 18
	DefaultAstWarningNodes         = 10
)

type Config struct {
	RenderStyle             string `yaml:"render-style"`
	TableFormat             string `yaml:"table-format"`
	TableWarningIdentifiers int    `yaml:"table-warning-identifiers"`
	AstWarningNodes         int    `yaml:"ast-warning-nodes"`

	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		RenderStyle:             treeprint.Default.String(),
		TableFormat:             output.FormatBox.String(),
		TableWarningIdentifiers: DefaultTableWarningIdentifiers,
		AstWarningNodes:         DefaultAstWarningNodes,
	}
}

// DefaultPath is config.yaml in the booleval directory of the user's config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find user config directory: %w", err)
	}
	return filepath.Join(dir, "booleval", "config.yaml"), nil
}

// LoadConfig reads the config at path. Keys missing from the file keep their
// default values. The error can be checked with os.IsNotExist when there is
// no file at path.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if _, err := treeprint.ParseStyle(c.RenderStyle); err != nil {
		return err
	}
	if _, err := output.ParseFormat(c.TableFormat); err != nil {
		return err
	}
	if c.TableWarningIdentifiers < 0 {
		return fmt.Errorf("table-warning-identifiers must not be negative, got %d", c.TableWarningIdentifiers)
	}
	if c.AstWarningNodes < 0 {
		return fmt.Errorf("ast-warning-nodes must not be negative, got %d", c.AstWarningNodes)
	}
	return nil
}

// Style returns the configured render style, falling back to the default
// style for names Validate would reject.
func (c *Config) Style() treeprint.Style {
	style, err := treeprint.ParseStyle(c.RenderStyle)
	if err != nil {
		return treeprint.Default
	}
	return style
}

func (c *Config) Format() output.Format {
	format, err := output.ParseFormat(c.TableFormat)
	if err != nil {
		return output.FormatBox
	}
	return format
}

// Write stores the config as YAML at c.Path, creating its directory if needed.
func (c *Config) Write() error {
	if c.Path == "" {
		return fmt.Errorf("config has no path")
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.Path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory for %s: %w", c.Path, err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(c.Path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", c.Path, err)
	}
	return nil
}
