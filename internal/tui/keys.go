package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the playground.
type KeyMap struct {
	// Fire toasts
	Success    key.Binding
	Error      key.Binding
	Info       key.Binding
	Warning    key.Binding
	Persistent key.Binding

	// Payload samples fed through normalization
	HTTPPayload    key.Binding
	FieldPayload   key.Binding
	RequestPayload key.Binding

	// Stack management
	DismissOldest key.Binding
	DismissNewest key.Binding
	ClearAll      key.Binding
	ToggleDnD     key.Binding

	// Panes and modes
	Compose   key.Binding
	ToggleLog key.Binding
	YankLog   key.Binding
	FilterLog key.Binding
	CycleKind key.Binding
	Enter     key.Binding
	Back      key.Binding

	// Global
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Success, k.Error, k.Info, k.Warning},
		{k.Persistent, k.HTTPPayload, k.FieldPayload, k.RequestPayload},
		{k.DismissOldest, k.DismissNewest, k.ClearAll, k.ToggleDnD},
		{k.Compose, k.ToggleLog, k.FilterLog, k.CycleKind},
		{k.YankLog, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Success: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "success toast"),
		),
		Error: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "error toast"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info toast"),
		),
		Warning: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "warning toast"),
		),
		Persistent: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "persistent toast"),
		),
		HTTPPayload: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "http error payload"),
		),
		FieldPayload: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "field error payload"),
		),
		RequestPayload: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "request error payload"),
		),
		DismissOldest: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dismiss oldest"),
		),
		DismissNewest: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "dismiss newest"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear all"),
		),
		ToggleDnD: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle do not disturb"),
		),
		Compose: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compose toast"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "session log"),
		),
		YankLog: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy session as JSON"),
		),
		FilterLog: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter log"),
		),
		CycleKind: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle kind filter"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "fire"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
