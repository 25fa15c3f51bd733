// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultMaxVisible = 5
	DefaultGap        = 1
	DefaultWidth      = 48
	DefaultVolume     = 80
	DefaultPlainTmpl  = "{{.CreatedAt | formatTime}} [{{.Kind}}] {{.Message}}"
)

// Duration is a time.Duration that can be unmarshaled from human-readable strings.
// Supports formats like "2s", "500ms", "1m", or integer milliseconds.
// A value of "0" or 0 means the toast never expires.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	// Try parsing as integer (milliseconds) first
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	// Parse as duration string (e.g., "2s", "500ms", "1m")
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '2s', '500ms', '1m' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Milliseconds returns the duration in milliseconds.
func (d Duration) Milliseconds() int {
	return int(time.Duration(d).Milliseconds())
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Position represents a toast stack position on screen.
type Position string

const (
	PositionTopLeft      Position = "top-left"
	PositionTopRight     Position = "top-right"
	PositionTopCenter    Position = "top-center"
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomRight  Position = "bottom-right"
	PositionBottomCenter Position = "bottom-center"
)

// ValidPositions returns all valid position values.
func ValidPositions() []Position {
	return []Position{
		PositionTopLeft,
		PositionTopRight,
		PositionTopCenter,
		PositionBottomLeft,
		PositionBottomRight,
		PositionBottomCenter,
	}
}

// Config is the toastui configuration.
// Loaded from ~/.config/toastui/config.toml
type Config struct {
	Durations DurationConfig  `toml:"durations"`
	Display   DisplayConfig   `toml:"display"`
	Behavior  BehaviorConfig  `toml:"behavior"`
	Sound     SoundConfig     `toml:"sound"`
	Theme     ThemeConfig     `toml:"theme"`
	Templates TemplatesConfig `toml:"templates"`
	DnD       DnDConfig       `toml:"dnd"`
}

// DurationConfig contains display durations per toast kind.
// Durations can be specified as "2s", "500ms", etc. or as integer milliseconds.
// A value of "0" or 0 means never expire.
type DurationConfig struct {
	Success Duration `toml:"success"` // e.g., "2s" or 2000
	Error   Duration `toml:"error"`   // e.g., "5s" or 5000
	Info    Duration `toml:"info"`    // e.g., "3s" or 3000
	Warning Duration `toml:"warning"` // e.g., "3s" or 3000
}

// DisplayConfig contains display-related settings.
type DisplayConfig struct {
	Position    string `toml:"position"`     // "top-right", "top-left", etc.
	MaxVisible  int    `toml:"max_visible"`  // Maximum simultaneous toasts
	Gap         int    `toml:"gap"`          // Blank rows between stacked toasts
	Width       int    `toml:"width"`        // Toast width in terminal columns
	ShowElapsed bool   `toml:"show_elapsed"` // Show relative age on each toast
}

// BehaviorConfig contains behavior settings.
type BehaviorConfig struct {
	StackDuplicates bool `toml:"stack_duplicates"` // Combine identical toasts
	ShowCount       bool `toml:"show_count"`       // Show "(2)" for stacked duplicates
}

// SoundConfig contains audio cue settings.
type SoundConfig struct {
	Enabled bool      `toml:"enabled"`
	Volume  int       `toml:"volume"` // 0-100
	Cues    CueConfig `toml:"cues"`
}

// CueConfig contains per-kind sound file paths.
type CueConfig struct {
	Success string `toml:"success"`
	Error   string `toml:"error"`
	Info    string `toml:"info"`
	Warning string `toml:"warning"`
}

// ThemeConfig contains theme settings.
type ThemeConfig struct {
	Name string `toml:"name"` // Theme name without .toml extension
}

// TemplatesConfig holds output templates for plain exports.
type TemplatesConfig struct {
	Plain  string            `toml:"plain"`
	Custom map[string]string `toml:"custom"`
}

// DnDConfig contains Do Not Disturb settings.
// Error toasts are always shown regardless of DnD state.
type DnDConfig struct {
	Enabled bool  `toml:"enabled"` // Suppress non-error toasts
	Since   int64 `toml:"since"`   // Unix timestamp of the last state change
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Durations: DurationConfig{
			Success: Duration(2 * time.Second),
			Error:   Duration(5 * time.Second),
			Info:    Duration(3 * time.Second),
			Warning: Duration(3 * time.Second),
		},
		Display: DisplayConfig{
			Position:    string(PositionTopRight),
			MaxVisible:  DefaultMaxVisible,
			Gap:         DefaultGap,
			Width:       DefaultWidth,
			ShowElapsed: true,
		},
		Behavior: BehaviorConfig{
			StackDuplicates: false,
			ShowCount:       true,
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  DefaultVolume,
			Cues:    CueConfig{},
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Templates: TemplatesConfig{
			Plain:  DefaultPlainTmpl,
			Custom: make(map[string]string),
		},
		DnD: DnDConfig{
			Enabled: false,
			Since:   0,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toastui", "config.toml")
}

// ThemesDir returns the directory searched for user theme files.
func ThemesDir() string {
	return filepath.Join(filepath.Dir(ConfigPath()), "themes")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults, then overlay with file contents
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// If path is empty, uses the default config path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write atomically via temp file
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return os.Rename(tmpPath, path)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	// Validate position
	validPos := false
	for _, p := range ValidPositions() {
		if c.Display.Position == string(p) {
			validPos = true
			break
		}
	}
	if !validPos {
		return fmt.Errorf("invalid position %q, must be one of: %v", c.Display.Position, ValidPositions())
	}

	// Validate dimensions
	if c.Display.Width < 20 || c.Display.Width > 200 {
		return fmt.Errorf("width must be between 20 and 200, got %d", c.Display.Width)
	}
	if c.Display.MaxVisible < 1 || c.Display.MaxVisible > 20 {
		return fmt.Errorf("max_visible must be between 1 and 20, got %d", c.Display.MaxVisible)
	}
	if c.Display.Gap < 0 || c.Display.Gap > 5 {
		return fmt.Errorf("gap must be between 0 and 5, got %d", c.Display.Gap)
	}

	// Validate durations
	for name, d := range map[string]Duration{
		"success": c.Durations.Success,
		"error":   c.Durations.Error,
		"info":    c.Durations.Info,
		"warning": c.Durations.Warning,
	} {
		if d < 0 {
			return fmt.Errorf("duration for %s must not be negative, got %s", name, d.Duration())
		}
	}

	// Validate volume
	if c.Sound.Volume < 0 || c.Sound.Volume > 100 {
		return fmt.Errorf("volume must be between 0 and 100, got %d", c.Sound.Volume)
	}

	if c.Theme.Name == "" {
		return errors.New("theme name must not be empty")
	}

	return nil
}

// DurationFor returns the configured display duration for the given kind.
// Unknown kinds fall back to the info duration.
func (c *Config) DurationFor(kind string) time.Duration {
	switch strings.ToLower(kind) {
	case "success":
		return c.Durations.Success.Duration()
	case "error":
		return c.Durations.Error.Duration()
	case "warning":
		return c.Durations.Warning.Duration()
	default:
		return c.Durations.Info.Duration()
	}
}

// SoundFor returns the sound file path for the given kind.
// Expands ~ to home directory.
func (c *Config) SoundFor(kind string) string {
	var path string
	switch strings.ToLower(kind) {
	case "success":
		path = c.Sound.Cues.Success
	case "error":
		path = c.Sound.Cues.Error
	case "warning":
		path = c.Sound.Cues.Warning
	default:
		path = c.Sound.Cues.Info
	}
	return expandPath(path)
}

// SetDnD records a Do Not Disturb state change with the current time.
func (c *Config) SetDnD(enabled bool) {
	c.DnD.Enabled = enabled
	c.DnD.Since = time.Now().Unix()
}

// GetTemplate returns the template for the given name.
// First checks custom templates, then built-in ones.
// Returns empty string if not found.
func (c *Config) GetTemplate(name string) string {
	if tmpl, ok := c.Templates.Custom[name]; ok {
		return tmpl
	}

	switch name {
	case "plain":
		return c.Templates.Plain
	default:
		return ""
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
