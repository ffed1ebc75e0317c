// Package config loads calvinc settings from calvin.toml or calvin.yaml.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LanguageVersion is the Calvin language version this front end accepts.
const LanguageVersion = "0.3.0"

// DefaultFiles lists the file names Find looks for, in order.
var DefaultFiles = []string{"calvin.toml", "calvin.yaml", "calvin.yml"}

// Config holds the complete calvinc configuration
type Config struct {
	Debug     DebugConfig    `toml:"debug" yaml:"debug"`
	Color     bool           `toml:"color" yaml:"color"`
	Format    string         `toml:"format" yaml:"format"`
	MaxErrors int            `toml:"max_errors" yaml:"max_errors"`
	Language  LanguageConfig `toml:"language" yaml:"language"`
}

// DebugConfig selects debug output
type DebugConfig struct {
	All    bool `toml:"all" yaml:"all"`       // everything below
	Trees  bool `toml:"trees" yaml:"trees"`   // tree before and after reordering
	Scopes bool `toml:"scopes" yaml:"scopes"` // scope tree after analysis
}

// LanguageConfig pins the accepted language version
type LanguageConfig struct {
	Version string `toml:"version" yaml:"version"` // semver constraint, e.g. "^0.3"
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{Color: true}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	cfg := &Config{Color: true}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	default:
		return nil, errors.Errorf("config %s: unsupported format %q", path, ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Find looks for one of DefaultFiles in dir and its parents and returns
// the first path found, or "" if there is none.
func Find(dir string) string {
	for {
		for _, name := range DefaultFiles {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadDefault loads the file named by path, or the first file Find
// locates from the working directory, or falls back to Default.
func LoadDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "locate config")
	}
	if found := Find(wd); found != "" {
		return Load(found)
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = "text"
	}
	if c.MaxErrors == 0 {
		c.MaxErrors = 10
	}
	if c.Debug.All {
		c.Debug.Trees = true
		c.Debug.Scopes = true
	}
}

// Validate checks field values and the language constraint.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json", "paren", "yaml":
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	if c.MaxErrors < 0 {
		return errors.Errorf("max_errors must not be negative, got %d", c.MaxErrors)
	}
	return c.CheckLanguage()
}

// CheckLanguage reports an error if the configured language constraint
// does not admit LanguageVersion. An empty constraint admits everything.
func (c *Config) CheckLanguage() error {
	if c.Language.Version == "" {
		return nil
	}
	con, err := semver.NewConstraint(c.Language.Version)
	if err != nil {
		return errors.Wrapf(err, "language version %q", c.Language.Version)
	}
	v := semver.MustParse(LanguageVersion)
	if !con.Check(v) {
		return errors.Errorf("language version %s does not satisfy %q", LanguageVersion, c.Language.Version)
	}
	return nil
}
