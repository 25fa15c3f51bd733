package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vitachoice/toastui/internal/config"
	"github.com/vitachoice/toastui/internal/toast"
)

// anchors maps a configured position to lipgloss placement values.
func anchors(position string) (lipgloss.Position, lipgloss.Position) {
	switch config.Position(position) {
	case config.PositionTopLeft:
		return lipgloss.Left, lipgloss.Top
	case config.PositionTopCenter:
		return lipgloss.Center, lipgloss.Top
	case config.PositionTopRight:
		return lipgloss.Right, lipgloss.Top
	case config.PositionBottomLeft:
		return lipgloss.Left, lipgloss.Bottom
	case config.PositionBottomCenter:
		return lipgloss.Center, lipgloss.Bottom
	case config.PositionBottomRight:
		return lipgloss.Right, lipgloss.Bottom
	default:
		return lipgloss.Right, lipgloss.Top
	}
}

// renderOverlay renders the toast stack into a width x height area,
// anchored at the configured screen position. Toasts stack top-to-bottom
// in insertion order; beyond max_visible a badge counts the rest.
func (m Model) renderOverlay(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	halign, valign := anchors(m.cfg.Display.Position)

	visible := m.toasts
	hidden := 0
	if limit := m.cfg.Display.MaxVisible; limit > 0 && len(visible) > limit {
		hidden = len(visible) - limit
		visible = visible[:limit]
	}

	if len(visible) == 0 {
		hint := "no active toasts, press s, e, i or w to fire one"
		if m.manager != nil && m.manager.DoNotDisturb() {
			hint += " (do not disturb is on)"
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			m.theme.Muted().Render(hint))
	}

	parts := make([]string, 0, len(visible)*2)
	for i := range visible {
		if i > 0 {
			for g := 0; g < m.cfg.Display.Gap; g++ {
				parts = append(parts, "")
			}
		}
		parts = append(parts, m.renderToast(visible[i]))
	}
	if hidden > 0 {
		parts = append(parts, m.theme.Muted().Render(fmt.Sprintf("+%d more", hidden)))
	}

	stack := lipgloss.JoinVertical(halign, parts...)
	return lipgloss.Place(width, height, halign, valign, stack)
}

// renderToast renders one toast as a themed box: an accented icon and
// the message, then a muted meta line with age, remaining time, and the
// stack count when duplicates were folded in.
func (m Model) renderToast(t toast.Toast) string {
	kind := string(t.Kind)

	header := m.theme.Accent(kind).Render(m.theme.Icon(kind)) + " " + m.theme.Base().Render(t.Message)
	if m.cfg.Behavior.ShowCount && t.StackCount > 1 {
		header += " " + m.theme.Muted().Render(fmt.Sprintf("x%d", t.StackCount))
	}

	meta := m.toastMeta(t)

	content := header
	if meta != "" {
		content += "\n" + m.theme.Muted().Render(meta)
	}

	return m.theme.Box(kind, m.cfg.Display.Width).Render(content)
}

// toastMeta builds the meta line under a toast message.
func (m Model) toastMeta(t toast.Toast) string {
	var parts []string

	if m.cfg.Display.ShowElapsed {
		parts = append(parts, humanize.Time(t.CreatedAt))
	}

	if t.IsPersistent() {
		parts = append(parts, "pinned")
	} else if remaining := t.Remaining(m.now); remaining > 0 {
		parts = append(parts, fmt.Sprintf("%.1fs", remaining.Seconds()))
	}

	return strings.Join(parts, " · ")
}

// renderLog renders the session log pane content, newest entry first,
// honoring the active kind and text filters.
func (m Model) renderLog() string {
	if len(m.log) == 0 {
		return m.theme.Muted().Render("nothing dismissed yet")
	}

	entries := m.logEntries()
	if len(entries) == 0 {
		return m.theme.Muted().Render("no entries match the filter")
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		kind := string(e.toast.Kind)
		b.WriteString(e.toast.CreatedAt.Format("15:04:05"))
		b.WriteString(" ")
		b.WriteString(m.theme.Accent(kind).Render(m.theme.Icon(kind)))
		b.WriteString(" ")
		b.WriteString(e.toast.Message)
		if m.cfg.Behavior.ShowCount && e.toast.StackCount > 1 {
			b.WriteString(m.theme.Muted().Render(fmt.Sprintf(" x%d", e.toast.StackCount)))
		}
		b.WriteString(" ")
		b.WriteString(m.theme.Muted().Render(fmt.Sprintf("· %s %s", e.reason, humanize.Time(e.at))))
	}
	return b.String()
}
