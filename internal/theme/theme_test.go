package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinition_InheritsDefaults(t *testing.T) {
	// A partial theme file only overriding one accent
	data := []byte(`
[kinds.error]
accent = "#ff0000"
`)

	def, err := parseDefinition(data)
	require.NoError(t, err)

	// Overridden value
	assert.Equal(t, "#ff0000", def.Kinds.Error.Accent)

	// Inherited from the bundled default theme
	assert.Equal(t, "rounded", def.Border.Style)
	assert.Equal(t, "10", def.Kinds.Success.Accent)
	assert.Equal(t, "✗", def.Kinds.Error.Icon)
}

func TestParseDefinition_Invalid(t *testing.T) {
	_, err := parseDefinition([]byte(`not valid toml [`))
	assert.Error(t, err)
}

func TestNewTheme(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.toml")

	content := `
[border]
style = "double"

[kinds.success]
accent = "#00ff00"
icon = ">"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	theme, err := NewTheme("custom", path)
	require.NoError(t, err)

	assert.Equal(t, "custom", theme.Name)
	assert.Equal(t, path, theme.Path)
	assert.False(t, theme.ModTime.IsZero())
	assert.False(t, theme.IsDefault)
	assert.Equal(t, lipgloss.DoubleBorder(), theme.Border())
	assert.Equal(t, ">", theme.Icon("success"))
}

func TestNewTheme_MissingFile(t *testing.T) {
	_, err := NewTheme("ghost", "/nonexistent/ghost.toml")
	assert.Error(t, err)
}

func TestNewTheme_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[[[`), 0644))

	_, err := NewTheme("broken", path)
	assert.Error(t, err)
}

func TestNewEmbeddedTheme(t *testing.T) {
	theme, found := NewEmbeddedTheme("catppuccin")
	require.True(t, found)
	assert.Equal(t, "catppuccin", theme.Name)
	assert.Empty(t, theme.Path)
	assert.False(t, theme.IsDefault)

	_, found = NewEmbeddedTheme("nonexistent")
	assert.False(t, found)
}

func TestNewDefaultTheme(t *testing.T) {
	theme := NewDefaultTheme()
	require.NotNil(t, theme)
	assert.Equal(t, DefaultThemeName, theme.Name)
	assert.True(t, theme.IsDefault)
	assert.Empty(t, theme.Path)
}

func TestTheme_Border(t *testing.T) {
	tests := []struct {
		style    string
		expected lipgloss.Border
	}{
		{"rounded", lipgloss.RoundedBorder()},
		{"normal", lipgloss.NormalBorder()},
		{"thick", lipgloss.ThickBorder()},
		{"double", lipgloss.DoubleBorder()},
		{"hidden", lipgloss.HiddenBorder()},
		{"", lipgloss.RoundedBorder()},
		{"dotted", lipgloss.RoundedBorder()},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			theme := &Theme{def: Definition{Border: BorderDef{Style: tt.style}}}
			assert.Equal(t, tt.expected, theme.Border())
		})
	}
}

func TestTheme_Icon(t *testing.T) {
	theme := NewDefaultTheme()

	assert.Equal(t, "✓", theme.Icon("success"))
	assert.Equal(t, "✗", theme.Icon("error"))
	assert.Equal(t, "•", theme.Icon("info"))
	assert.Equal(t, "!", theme.Icon("warning"))

	// Unknown kinds fall back to info
	assert.Equal(t, "•", theme.Icon("bogus"))
	assert.Equal(t, "✓", theme.Icon("SUCCESS"))
}

func TestTheme_Accent(t *testing.T) {
	theme := NewDefaultTheme()

	style := theme.Accent("error")
	assert.True(t, style.GetBold())
	assert.Equal(t, lipgloss.Color("9"), style.GetForeground())
}

func TestTheme_Base(t *testing.T) {
	// Default theme leaves the terminal foreground alone
	theme := NewDefaultTheme()
	assert.Equal(t, lipgloss.NoColor{}, theme.Base().GetForeground())

	// Catppuccin sets an explicit foreground
	cat, found := NewEmbeddedTheme("catppuccin")
	require.True(t, found)
	assert.Equal(t, lipgloss.Color("#cdd6f4"), cat.Base().GetForeground())
}

func TestTheme_Muted(t *testing.T) {
	theme := NewDefaultTheme()
	assert.Equal(t, lipgloss.Color("8"), theme.Muted().GetForeground())
}

func TestTheme_Box(t *testing.T) {
	theme := NewDefaultTheme()

	box := theme.Box("info", 40)
	assert.Equal(t, 40, box.GetWidth())

	rendered := box.Render("hello")
	lines := strings.Split(rendered, "\n")

	// Bordered box: top border, content, bottom border
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "╭")
	assert.Contains(t, lines[len(lines)-1], "╰")
}

func TestListAvailableThemes(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	themesDir := filepath.Join(tmpDir, "toastui", "themes")
	require.NoError(t, os.MkdirAll(themesDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(themesDir, "custom.toml"), []byte(`
[kinds.info]
accent = "13"
`), 0644))

	themes, err := ListAvailableThemes()
	require.NoError(t, err)

	byName := make(map[string]ThemeInfo)
	for _, info := range themes {
		byName[info.Name] = info
	}

	require.Contains(t, byName, "default")
	assert.True(t, byName["default"].IsBundled)
	assert.True(t, byName["default"].IsDefault)

	require.Contains(t, byName, "custom")
	assert.False(t, byName["custom"].IsBundled)
	assert.Equal(t, filepath.Join(themesDir, "custom.toml"), byName["custom"].Path)
}

func TestCreateThemesDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	require.NoError(t, CreateThemesDir())

	info, err := os.Stat(filepath.Join(tmpDir, "toastui", "themes"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
