package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
)

// Supported values for display.format and display.color.
var (
	Formats    = []string{"text", "json", "yaml", "md"}
	ColorModes = []string{"auto", "always", "never"}
	ErrInvalid = errors.New("invalid config")
)

const (
	DefaultFormat      = "text"
	DefaultColor       = "auto"
	DefaultAnimationMS = 900
)

// Config holds the top-level lovetest configuration.
type Config struct {
	User    UserConfig    `toml:"user"`
	Display DisplayConfig `toml:"display"`

	problems []error
}

// UserConfig prefills the "Your name" side of a test.
type UserConfig struct {
	Name string `toml:"name"`
}

// DisplayConfig controls how results are rendered.
type DisplayConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
	// Animate defaults to true when not set in config.
	Animate     *bool `toml:"animate,omitempty"`
	AnimationMS int   `toml:"animation_ms"`
}

// IsAnimated returns whether the result screen animates its progress bar.
func (d DisplayConfig) IsAnimated() bool {
	if d.Animate == nil {
		return true
	}
	return *d.Animate
}

// AnimationDuration returns the configured animation length.
func (d DisplayConfig) AnimationDuration() time.Duration {
	if !d.IsAnimated() || d.AnimationMS <= 0 {
		return 0
	}
	return time.Duration(d.AnimationMS) * time.Millisecond
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	ConfigFile string
}

// GetPaths returns the resolved paths, respecting XDG env vars and
// LOVETEST_CONFIG.
func GetPaths() Paths {
	if f := os.Getenv("LOVETEST_CONFIG"); f != "" {
		return Paths{ConfigDir: filepath.Dir(f), ConfigFile: f}
	}

	home, _ := os.UserHomeDir()
	configDir := filepath.Join(envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config")), "lovetest")

	return Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.toml"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	return os.MkdirAll(p.ConfigDir, 0o755)
}

// Load reads config from disk, returning defaults if not found. Values the
// renderers do not understand are reset to their defaults and reported by
// Problems; only an unreadable or malformed file is an error.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := defaultConfig()

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", paths.ConfigFile, err)
	}
	cfg.problems = cfg.repair()
	return cfg, nil
}

// Problems returns the invalid values Load replaced with defaults.
func (c *Config) Problems() []error {
	return c.problems
}

// Save writes config to disk.
func Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate rejects values the renderers do not understand.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Display.Format) {
		return fmt.Errorf("%w: display.format %q (use one of %v)", ErrInvalid, c.Display.Format, Formats)
	}
	if !slices.Contains(ColorModes, c.Display.Color) {
		return fmt.Errorf("%w: display.color %q (use one of %v)", ErrInvalid, c.Display.Color, ColorModes)
	}
	if c.Display.AnimationMS < 0 {
		return fmt.Errorf("%w: display.animation_ms must not be negative", ErrInvalid)
	}
	return nil
}

// repair resets each invalid display value to its default.
func (c *Config) repair() []error {
	var problems []error
	if !slices.Contains(Formats, c.Display.Format) {
		problems = append(problems, fmt.Errorf("%w: display.format %q, using %q", ErrInvalid, c.Display.Format, DefaultFormat))
		c.Display.Format = DefaultFormat
	}
	if !slices.Contains(ColorModes, c.Display.Color) {
		problems = append(problems, fmt.Errorf("%w: display.color %q, using %q", ErrInvalid, c.Display.Color, DefaultColor))
		c.Display.Color = DefaultColor
	}
	if c.Display.AnimationMS < 0 {
		problems = append(problems, fmt.Errorf("%w: display.animation_ms %d, using %d", ErrInvalid, c.Display.AnimationMS, DefaultAnimationMS))
		c.Display.AnimationMS = DefaultAnimationMS
	}
	return problems
}

// Initialized returns true if a config file exists.
func Initialized() bool {
	paths := GetPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}

func defaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Format:      DefaultFormat,
			Color:       DefaultColor,
			Animate:     BoolPtr(true),
			AnimationMS: DefaultAnimationMS,
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
