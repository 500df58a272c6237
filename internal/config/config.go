// Package config loads and validates the md2docs CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-md2docs/internal/fileutil"
	"github.com/alnah/go-md2docs/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidColor    = errors.New("invalid hex color")
	ErrInvalidPreset   = errors.New("invalid bullet preset")
)

// Field length limits.
const (
	MaxFontLength   = 100 // Font family name
	MaxColorLength  = 7   // "#rrggbb"
	MaxPresetLength = 60  // Docs bullet preset enum
	MaxDirLength    = 512 // Directory paths
)

// Config holds all configuration for request generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Code   CodeConfig   `yaml:"code"`
	Lists  ListsConfig  `yaml:"lists"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Compact    bool   `yaml:"compact"`    // Emit compact JSON instead of indented
}

// CodeConfig defines code block styling options.
type CodeConfig struct {
	Font       string `yaml:"font"`       // Monospace font family (empty = Consolas)
	Background string `yaml:"background"` // Hex color like "#f2f2f2" (empty = light grey)
}

// ListsConfig defines list bullet presets.
type ListsConfig struct {
	Numbered string `yaml:"numbered"` // NUMBERED_* preset (empty = decimal)
	Bullet   string `yaml:"bullet"`   // BULLET_* preset (empty = disc)
}

// DefaultConfig returns a config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads a config by name or path. A value containing a path
// separator is read directly; a bare name is searched in the working
// directory (with and without .yaml/.yml extension) and then in
// ~/.config/md2docs/.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path, err := resolvePath(nameOrPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePath turns a config name or path into a readable file path.
func resolvePath(nameOrPath string) (string, error) {
	if fileutil.IsFilePath(nameOrPath) {
		return nameOrPath, nil
	}

	candidates := []string{
		nameOrPath,
		nameOrPath + ".yaml",
		nameOrPath + ".yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		base := filepath.Join(home, ".config", "md2docs")
		candidates = append(candidates,
			filepath.Join(base, nameOrPath),
			filepath.Join(base, nameOrPath+".yaml"),
			filepath.Join(base, nameOrPath+".yml"),
		)
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrConfigNotFound, nameOrPath)
}

// Validate checks field lengths and value formats.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxDirLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxDirLength},
		{"code.font", c.Code.Font, MaxFontLength},
		{"code.background", c.Code.Background, MaxColorLength},
		{"lists.numbered", c.Lists.Numbered, MaxPresetLength},
		{"lists.bullet", c.Lists.Bullet, MaxPresetLength},
	}
	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, check.name, len(check.value), check.max)
		}
	}

	if c.Code.Background != "" {
		if _, _, _, err := ParseHexColor(c.Code.Background); err != nil {
			return err
		}
	}
	if err := validatePreset(c.Lists.Numbered, "NUMBERED_"); err != nil {
		return err
	}
	return validatePreset(c.Lists.Bullet, "BULLET_")
}

// validatePreset checks a Docs bullet preset name against the family it
// must belong to. Empty means "use the default" and is always valid.
func validatePreset(preset, prefix string) error {
	if preset == "" {
		return nil
	}
	if !strings.HasPrefix(preset, prefix) {
		return fmt.Errorf("%w: %q (must start with %s)", ErrInvalidPreset, preset, prefix)
	}
	return nil
}

// ParseHexColor parses "#rrggbb" into channels in [0, 1].
func ParseHexColor(s string) (r, g, b float64, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("%w: %q (expected #rrggbb)", ErrInvalidColor, s)
	}
	channels := [3]float64{}
	for i := 0; i < 3; i++ {
		v, parseErr := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if parseErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		channels[i] = float64(v) / 255
	}
	return channels[0], channels[1], channels[2], nil
}
