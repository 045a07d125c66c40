package config

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString KeyType = "string"
	KeyTypeInt    KeyType = "int"
	KeyTypeBool   KeyType = "bool"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	// Type is the value's data type (string, int, bool).
	Type KeyType
	// Desc is a human-readable description shown in `lovetest config`.
	Desc string
	// DefaultStr is the string representation of the default value.
	DefaultStr string

	get   func(*Config) string
	set   func(cfg *Config, value string) error
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value, returning a descriptive error on type mismatch.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its schema default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

// SchemaKeys is the authoritative registry of all settable config keys.
// Keys use dot-notation matching the TOML section structure.
var SchemaKeys = map[string]*KeyEntry{
	"user.name": {
		Type:       KeyTypeString,
		Desc:       "Name prefilled as \"Your name\"",
		DefaultStr: "",
		get:        func(cfg *Config) string { return cfg.User.Name },
		set:        func(cfg *Config, v string) error { cfg.User.Name = v; return nil },
		unset:      func(cfg *Config) { cfg.User.Name = "" },
	},
	"display.format": {
		Type:       KeyTypeString,
		Desc:       "Default output format (" + strings.Join(Formats, ", ") + ")",
		DefaultStr: DefaultFormat,
		get:        func(cfg *Config) string { return cfg.Display.Format },
		set: func(cfg *Config, v string) error {
			if !slices.Contains(Formats, v) {
				return fmt.Errorf("invalid value %q for display.format (use one of: %s)", v, strings.Join(Formats, ", "))
			}
			cfg.Display.Format = v
			return nil
		},
		unset: func(cfg *Config) { cfg.Display.Format = DefaultFormat },
	},
	"display.color": {
		Type:       KeyTypeString,
		Desc:       "Color output (" + strings.Join(ColorModes, ", ") + ")",
		DefaultStr: DefaultColor,
		get:        func(cfg *Config) string { return cfg.Display.Color },
		set: func(cfg *Config, v string) error {
			if !slices.Contains(ColorModes, v) {
				return fmt.Errorf("invalid value %q for display.color (use one of: %s)", v, strings.Join(ColorModes, ", "))
			}
			cfg.Display.Color = v
			return nil
		},
		unset: func(cfg *Config) { cfg.Display.Color = DefaultColor },
	},
	"display.animate": {
		Type:       KeyTypeBool,
		Desc:       "Animate the score bar in the interactive screen",
		DefaultStr: "true",
		get:        func(cfg *Config) string { return strconv.FormatBool(cfg.Display.IsAnimated()) },
		set: func(cfg *Config, v string) error {
			b, err := ParseBoolValue(v)
			if err != nil {
				return fmt.Errorf("invalid value %q for display.animate: %w", v, err)
			}
			cfg.Display.Animate = BoolPtr(b)
			return nil
		},
		unset: func(cfg *Config) { cfg.Display.Animate = BoolPtr(true) },
	},
	"display.animation_ms": {
		Type:       KeyTypeInt,
		Desc:       "Score bar animation length in milliseconds",
		DefaultStr: strconv.Itoa(DefaultAnimationMS),
		get:        func(cfg *Config) string { return strconv.Itoa(cfg.Display.AnimationMS) },
		set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 0 {
				return fmt.Errorf("invalid value %q for display.animation_ms (use a non-negative integer)", v)
			}
			cfg.Display.AnimationMS = n
			return nil
		},
		unset: func(cfg *Config) { cfg.Display.AnimationMS = DefaultAnimationMS },
	},
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}

// ParseBoolValue accepts common boolean string representations.
// Valid truthy values: true, 1, yes, on.
// Valid falsy values: false, 0, no, off.
func ParseBoolValue(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q (use one of: true/false, 1/0, yes/no, on/off)", s)
	}
}
