package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/vitachoice/toastui/internal/config"
)

// Definition is the on-disk TOML shape of a theme.
// Values omitted from a theme file inherit the bundled default theme.
type Definition struct {
	Border BorderDef `toml:"border"`
	Text   TextDef   `toml:"text"`
	Kinds  KindsDef  `toml:"kinds"`
}

// BorderDef selects the box border drawn around each toast.
type BorderDef struct {
	Style string `toml:"style"` // "rounded", "normal", "thick", "double", "hidden"
}

// TextDef contains colors for toast text. Empty values leave the
// terminal's own colors in place.
type TextDef struct {
	Foreground string `toml:"foreground"` // Message text
	Muted      string `toml:"muted"`      // Timestamps, counts, overflow badge
}

// KindsDef contains per-kind appearance settings.
type KindsDef struct {
	Success KindDef `toml:"success"`
	Error   KindDef `toml:"error"`
	Info    KindDef `toml:"info"`
	Warning KindDef `toml:"warning"`
}

// KindDef describes how toasts of one kind are accented.
type KindDef struct {
	Accent string `toml:"accent"` // Border and icon color
	Icon   string `toml:"icon"`   // Glyph shown before the message
}

// Theme is a parsed theme with metadata. Themes are immutable after
// creation; reloading builds a new Theme.
type Theme struct {
	Name      string    // Theme name (without .toml extension)
	Path      string    // Full path to the theme file (empty for bundled)
	ModTime   time.Time // Last modification time
	IsDefault bool      // True if this is the embedded default theme

	def Definition
}

// parseDefinition parses theme TOML, overlaying it on the bundled
// default so partial theme files inherit the remaining values.
func parseDefinition(data []byte) (Definition, error) {
	def := defaultDefinition()
	if err := toml.Unmarshal(data, &def); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// defaultDefinition returns the bundled default theme's definition.
func defaultDefinition() Definition {
	var def Definition
	raw, _ := GetEmbeddedTheme(DefaultThemeName)
	_ = toml.Unmarshal([]byte(raw), &def)
	return def
}

// NewTheme creates a new Theme by loading a theme file from disk.
func NewTheme(name, path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	def, err := parseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", name, err)
	}

	return &Theme{
		Name:    name,
		Path:    path,
		ModTime: info.ModTime(),
		def:     def,
	}, nil
}

// NewEmbeddedTheme creates a Theme from a bundled theme file.
// Returns whether the name was found.
func NewEmbeddedTheme(name string) (*Theme, bool) {
	raw, found := GetEmbeddedTheme(name)
	if !found {
		return nil, false
	}

	def, err := parseDefinition([]byte(raw))
	if err != nil {
		return nil, false
	}

	return &Theme{
		Name:      name,
		IsDefault: name == DefaultThemeName,
		def:       def,
	}, true
}

// NewDefaultTheme creates the embedded default theme.
func NewDefaultTheme() *Theme {
	t, _ := NewEmbeddedTheme(DefaultThemeName)
	return t
}

// Border returns the lipgloss border for this theme.
func (t *Theme) Border() lipgloss.Border {
	switch t.def.Border.Style {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// Base returns the style for toast message text.
func (t *Theme) Base() lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg := t.def.Text.Foreground; fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	return s
}

// Muted returns the style for secondary text such as timestamps.
func (t *Theme) Muted() lipgloss.Style {
	s := lipgloss.NewStyle()
	if c := t.def.Text.Muted; c != "" {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s
}

// Accent returns the style for the given kind's icon and counters.
func (t *Theme) Accent(kind string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if c := t.kindDef(kind).Accent; c != "" {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s
}

// Icon returns the glyph shown before messages of the given kind.
func (t *Theme) Icon(kind string) string {
	return t.kindDef(kind).Icon
}

// Box returns the bordered box style for a toast of the given kind.
// Width is the inner width in terminal columns; the border adds two.
func (t *Theme) Box(kind string, width int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(t.Border()).
		Padding(0, 1).
		Width(width)
	if c := t.kindDef(kind).Accent; c != "" {
		s = s.BorderForeground(lipgloss.Color(c))
	}
	return s
}

// kindDef returns the per-kind settings, falling back to info for
// unknown kinds.
func (t *Theme) kindDef(kind string) KindDef {
	switch strings.ToLower(kind) {
	case "success":
		return t.def.Kinds.Success
	case "error":
		return t.def.Kinds.Error
	case "warning":
		return t.def.Kinds.Warning
	default:
		return t.def.Kinds.Info
	}
}

// ThemeInfo provides basic theme information for listing.
type ThemeInfo struct {
	Name      string
	Path      string
	IsDefault bool
	IsBundled bool // True if this is a bundled/embedded theme
}

// ListAvailableThemes lists all available themes (bundled + user).
func ListAvailableThemes() ([]ThemeInfo, error) {
	seen := make(map[string]bool)
	var themes []ThemeInfo

	// Add bundled themes first
	for _, name := range ListEmbeddedThemes() {
		if !seen[name] {
			seen[name] = true
			themes = append(themes, ThemeInfo{
				Name:      name,
				Path:      "",
				IsDefault: name == DefaultThemeName,
				IsBundled: true,
			})
		}
	}

	// Add user themes
	themesDir := config.ThemesDir()
	if themesDir == "" {
		return themes, nil
	}

	entries, err := os.ReadDir(themesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return themes, nil
		}
		return themes, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".toml" {
			themeName := strings.TrimSuffix(name, ".toml")
			if !seen[themeName] {
				seen[themeName] = true
				themes = append(themes, ThemeInfo{
					Name: themeName,
					Path: filepath.Join(themesDir, name),
				})
			}
		}
	}

	return themes, nil
}

// CreateThemesDir creates the themes directory if it doesn't exist.
func CreateThemesDir() error {
	themesDir := config.ThemesDir()
	if themesDir == "" {
		return fmt.Errorf("unable to determine themes directory")
	}
	return os.MkdirAll(themesDir, 0755)
}
