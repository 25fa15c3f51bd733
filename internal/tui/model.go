// Package tui provides the BubbleTea-based toast overlay playground.
package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitachoice/toastui/internal/audio"
	"github.com/vitachoice/toastui/internal/config"
	"github.com/vitachoice/toastui/internal/export"
	"github.com/vitachoice/toastui/internal/source"
	"github.com/vitachoice/toastui/internal/theme"
	"github.com/vitachoice/toastui/internal/toast"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeOverlay Mode = iota
	ModeCompose
	ModeLog
	ModeLogFilter
	ModeHelp
)

// logEntry is one dismissed toast in the session log.
type logEntry struct {
	toast  toast.Toast
	at     time.Time
	reason toast.DismissReason
}

// Model is the main playground model.
type Model struct {
	// Configuration
	cfg     *config.Config
	manager *toast.Manager
	theme   *theme.Theme

	// Current mode
	mode Mode

	// Components
	compose   textinput.Model
	logSearch textinput.Model
	logView   viewport.Model
	help      help.Model

	// State
	toasts []toast.Toast
	log    []logEntry
	fired  int
	width  int
	height int
	ready  bool
	now    time.Time

	// Session log filters
	logQuery string
	logKind  toast.Kind

	// Key bindings
	keys KeyMap

	// Status message
	statusMsg string
	statusErr bool

	// Manager event subscription
	events <-chan toast.Event
}

// New creates a new playground model.
func New(cfg *config.Config, manager *toast.Manager, th *theme.Theme) Model {
	compose := textinput.New()
	compose.Placeholder = `message, kind: message, or {"error": "..."}`
	compose.CharLimit = 200

	logSearch := textinput.New()
	logSearch.Prompt = "/"
	logSearch.Placeholder = "filter messages"
	logSearch.CharLimit = 100

	h := help.New()

	m := Model{
		cfg:       cfg,
		manager:   manager,
		theme:     th,
		mode:      ModeOverlay,
		compose:   compose,
		logSearch: logSearch,
		help:      h,
		keys:      DefaultKeyMap(),
		now:       time.Now(),
	}

	if manager != nil {
		m.toasts = manager.Active()
		m.events = manager.Subscribe()
	}

	return m
}

// Init initializes the playground.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.waitForEvent,
		m.tick(),
	)
}

// waitForEvent blocks until the manager publishes a collection change.
func (m Model) waitForEvent() tea.Msg {
	if m.events == nil {
		return nil
	}
	ev, ok := <-m.events
	if !ok {
		return nil
	}
	return eventMsg{event: ev}
}

type eventMsg struct {
	event toast.Event
}

// tick drives the remaining-time indicators between manager events.
func (m Model) tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type tickMsg time.Time

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type copyResultMsg struct {
	err error
}

type configReloadedMsg struct {
	cfg *config.Config
}

type themeChangedMsg struct {
	theme *theme.Theme
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.help.Width = msg.Width
		m.compose.Width = msg.Width - 12
		m.logSearch.Width = msg.Width - 12
		m.logView = viewport.New(msg.Width, msg.Height-2)
		m.logView.SetContent(m.renderLog())

		return m, nil

	case eventMsg:
		m.toasts = m.manager.Active()
		if msg.event.Type == toast.EventRemoved {
			m.log = append(m.log, logEntry{
				toast:  msg.event.Toast,
				at:     time.Now(),
				reason: msg.event.Reason,
			})
			// Newest entries render first, so stay pinned to the top.
			atTop := m.logView.AtTop()
			m.logView.SetContent(m.renderLog())
			if atTop {
				m.logView.GotoTop()
			}
		}
		return m, m.waitForEvent

	case tickMsg:
		m.now = time.Time(msg)
		m.toasts = m.manager.Active()
		return m, m.tick()

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, func() tea.Msg {
				return statusMsg{text: "Copy failed: " + msg.err.Error(), isErr: true}
			}
		}
		return m, func() tea.Msg {
			return statusMsg{text: "Session copied to clipboard", isErr: false}
		}

	case configReloadedMsg:
		m.cfg = msg.cfg
		m.manager.UpdateDurations(kindDurations(msg.cfg))
		return m, func() tea.Msg {
			return statusMsg{text: "Config reloaded", isErr: false}
		}

	case themeChangedMsg:
		m.theme = msg.theme
		return m, func() tea.Msg {
			return statusMsg{text: "Theme reloaded: " + msg.theme.Name, isErr: false}
		}
	}

	// Update child components
	switch m.mode {
	case ModeCompose:
		var cmd tea.Cmd
		m.compose, cmd = m.compose.Update(msg)
		return m, cmd
	case ModeLogFilter:
		var cmd tea.Cmd
		m.logSearch, cmd = m.logSearch.Update(msg)
		return m, cmd
	case ModeLog:
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text-entry modes get raw keys first so typed characters are not
	// swallowed by single-letter bindings.
	if m.mode == ModeCompose {
		return m.handleComposeKey(msg)
	}
	if m.mode == ModeLogFilter {
		return m.handleLogFilterKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		if m.mode == ModeHelp {
			m.mode = ModeOverlay
		} else {
			m.mode = ModeHelp
		}
		return m, nil
	}

	// Mode-specific keys
	switch m.mode {
	case ModeOverlay:
		return m.handleOverlayKey(msg)
	case ModeLog:
		return m.handleLogKey(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Back) {
			m.mode = ModeOverlay
		}
		return m, nil
	}

	return m, nil
}

// handleOverlayKey handles keys in overlay mode.
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Success):
		m.fired++
		m.manager.Show(sampleMessage(toast.KindSuccess, m.fired), toast.KindSuccess, 0)
		return m, nil

	case key.Matches(msg, m.keys.Error):
		m.fired++
		m.manager.Show(sampleMessage(toast.KindError, m.fired), toast.KindError, 0)
		return m, nil

	case key.Matches(msg, m.keys.Info):
		m.fired++
		m.manager.Show(sampleMessage(toast.KindInfo, m.fired), toast.KindInfo, 0)
		return m, nil

	case key.Matches(msg, m.keys.Warning):
		m.fired++
		m.manager.Show(sampleMessage(toast.KindWarning, m.fired), toast.KindWarning, 0)
		return m, nil

	case key.Matches(msg, m.keys.Persistent):
		m.fired++
		m.manager.ShowPersistent(sampleMessage(toast.KindInfo, m.fired), toast.KindInfo)
		return m, nil

	case key.Matches(msg, m.keys.HTTPPayload):
		m.manager.Error(httpErrorPayload())
		return m, nil

	case key.Matches(msg, m.keys.FieldPayload):
		m.manager.Error(fieldErrorPayload())
		return m, nil

	case key.Matches(msg, m.keys.RequestPayload):
		m.manager.Error(requestErrorPayload())
		return m, nil

	case key.Matches(msg, m.keys.DismissOldest):
		if len(m.toasts) > 0 {
			m.manager.Dismiss(m.toasts[0].ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.DismissNewest):
		if len(m.toasts) > 0 {
			m.manager.Dismiss(m.toasts[len(m.toasts)-1].ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearAll):
		cleared := len(m.toasts)
		m.manager.ClearAll()
		if cleared == 0 {
			return m, nil
		}
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Cleared %d toasts", cleared), isErr: false}
		}

	case key.Matches(msg, m.keys.ToggleDnD):
		enabled := !m.manager.DoNotDisturb()
		m.manager.SetDoNotDisturb(enabled)
		text := "Do not disturb off"
		if enabled {
			text = "Do not disturb on, non-error toasts muted"
		}
		return m, func() tea.Msg {
			return statusMsg{text: text, isErr: false}
		}

	case key.Matches(msg, m.keys.Compose):
		m.mode = ModeCompose
		m.compose.SetValue("")
		m.compose.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ToggleLog):
		m.mode = ModeLog
		m.logView.SetContent(m.renderLog())
		m.logView.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.YankLog):
		return m, m.copySessionJSON()
	}

	return m, nil
}

// handleComposeKey handles keys in compose mode.
func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.mode = ModeOverlay
		m.compose.Blur()
		m.compose.SetValue("")
		return m, nil

	case tea.KeyEnter:
		line := strings.TrimSpace(m.compose.Value())
		if line == "" {
			return m, nil
		}
		payload, kind := source.ParseLine(line)
		m.manager.Show(payload, kind, 0)
		m.compose.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

// handleLogKey handles keys in session log mode.
func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.ToggleLog):
		// Esc clears active filters before leaving the log.
		if m.logQuery != "" || m.logKind.Valid() {
			m.logQuery = ""
			m.logKind = ""
			m.logSearch.SetValue("")
			m.logView.SetContent(m.renderLog())
			m.logView.GotoTop()
			return m, func() tea.Msg {
				return statusMsg{text: "Log filters cleared", isErr: false}
			}
		}
		m.mode = ModeOverlay
		return m, nil

	case key.Matches(msg, m.keys.FilterLog):
		m.mode = ModeLogFilter
		m.logSearch.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.CycleKind):
		m.logKind = nextLogKind(m.logKind)
		m.logView.SetContent(m.renderLog())
		m.logView.GotoTop()
		text := "Kind filter off"
		if m.logKind.Valid() {
			text = "Kind filter: " + string(m.logKind)
		}
		return m, func() tea.Msg {
			return statusMsg{text: text, isErr: false}
		}

	case key.Matches(msg, m.keys.YankLog):
		return m, m.copySessionJSON()
	}

	// Pass to viewport
	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

// handleLogFilterKey handles keys while typing a log search term.
func (m Model) handleLogFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.logSearch.SetValue(m.logQuery)
		m.logSearch.Blur()
		m.mode = ModeLog
		return m, nil

	case tea.KeyEnter:
		m.logQuery = strings.TrimSpace(m.logSearch.Value())
		m.logSearch.Blur()
		m.logView.SetContent(m.renderLog())
		m.logView.GotoTop()
		m.mode = ModeLog
		return m, nil
	}

	var cmd tea.Cmd
	m.logSearch, cmd = m.logSearch.Update(msg)
	return m, cmd
}

// nextLogKind advances the session log kind filter, returning to no
// filter after the last kind.
func nextLogKind(k toast.Kind) toast.Kind {
	if !k.Valid() {
		return toast.Kinds[0]
	}
	for i, kind := range toast.Kinds {
		if kind == k {
			if i == len(toast.Kinds)-1 {
				return ""
			}
			return toast.Kinds[i+1]
		}
	}
	return ""
}

// logEntries returns the session log entries that match the active
// filters, newest first.
func (m Model) logEntries() []logEntry {
	toasts := make([]toast.Toast, len(m.log))
	byID := make(map[string]logEntry, len(m.log))
	for i, e := range m.log {
		toasts[i] = e.toast
		byID[e.toast.ID] = e
	}
	if m.logKind.Valid() {
		toasts = toast.FilterByKind(toasts, m.logKind)
	}
	if m.logQuery != "" {
		toasts = toast.Search(toasts, m.logQuery)
	}
	toast.SortNewestFirst(toasts)

	out := make([]logEntry, 0, len(toasts))
	for _, t := range toasts {
		out = append(out, byID[t.ID])
	}
	return out
}

// copySessionJSON copies the session log to the system clipboard as JSON.
func (m Model) copySessionJSON() tea.Cmd {
	toasts := m.SessionToasts()
	return func() tea.Msg {
		var buf bytes.Buffer
		f := export.NewFormatter(export.FormatJSON, export.DefaultFormatterOptions())
		if err := f.Format(&buf, toasts); err != nil {
			return copyResultMsg{err: err}
		}
		return copyResultMsg{err: copyText(buf.String())}
	}
}

// SessionToasts returns every toast of the session, dismissed and still
// active, in creation order.
func (m Model) SessionToasts() []toast.Toast {
	out := make([]toast.Toast, 0, len(m.log)+len(m.toasts))
	for _, e := range m.log {
		out = append(out, e.toast)
	}
	if m.manager != nil {
		out = append(out, m.manager.Active()...)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// kindDurations maps the configured per-kind durations for the manager.
func kindDurations(cfg *config.Config) map[toast.Kind]time.Duration {
	durations := make(map[toast.Kind]time.Duration, len(toast.Kinds))
	for _, k := range toast.Kinds {
		durations[k] = cfg.DurationFor(string(k))
	}
	return durations
}

// sampleMessages feed the fire keys. Rotated so repeated presses read
// like a live session instead of one message stacking forever.
var sampleMessages = map[toast.Kind][]string{
	toast.KindSuccess: {"Workspace synced", "Report exported", "Settings saved", "Upload complete"},
	toast.KindError:   {"Connection lost", "Upload failed", "Session expired", "Disk quota exceeded"},
	toast.KindInfo:    {"Sync scheduled", "New version available", "3 files imported", "Backup running"},
	toast.KindWarning: {"Storage almost full", "Certificate expires soon", "Slow network detected", "Unsaved changes"},
}

func sampleMessage(kind toast.Kind, n int) string {
	pool := sampleMessages[kind]
	if len(pool) == 0 {
		return string(kind)
	}
	return pool[n%len(pool)]
}

// httpErrorPayload mimics a failed HTTP call with a nested response.
func httpErrorPayload() any {
	return map[string]any{
		"response": map[string]any{
			"status": 503,
			"config": map[string]any{"url": "/api/workspaces/42"},
		},
		"message": "Service Unavailable",
	}
}

// fieldErrorPayload mimics a validation result with an error member.
func fieldErrorPayload() any {
	return map[string]any{"error": "amount must be positive"}
}

// requestErrorPayload mimics a failed request summary.
func requestErrorPayload() any {
	return map[string]any{
		"method":   "PUT",
		"endpoint": "/api/reports/7",
		"status":   422,
	}
}

// View renders the playground.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case ModeOverlay:
		return m.viewOverlay()
	case ModeCompose:
		return m.viewCompose()
	case ModeLog:
		return m.viewLog()
	case ModeLogFilter:
		return m.viewLogFilter()
	case ModeHelp:
		return m.viewHelp()
	default:
		return ""
	}
}

func (m Model) viewOverlay() string {
	return m.renderOverlay(m.width, m.height-1) + "\n" + m.statusBar()
}

func (m Model) viewCompose() string {
	body := m.renderOverlay(m.width, m.height-2)
	prompt := m.theme.Accent(string(toast.KindInfo)).Render("compose") + " " + m.compose.View()
	return body + "\n" + prompt + "\n" + m.statusBar()
}

func (m Model) viewLog() string {
	title := m.theme.Base().Bold(true).Render("Session log") + " " +
		m.theme.Muted().Render(fmt.Sprintf("(%d dismissed)", len(m.log)))
	if note := m.logFilterNote(); note != "" {
		title += " " + m.theme.Muted().Render(note)
	}
	return title + "\n" + m.logView.View() + "\n" + m.statusBar()
}

func (m Model) viewLogFilter() string {
	title := m.theme.Base().Bold(true).Render("Session log") + " " +
		m.theme.Muted().Render(fmt.Sprintf("(%d dismissed)", len(m.log)))
	return title + "\n" + m.logView.View() + "\n" + m.logSearch.View()
}

// logFilterNote describes the active log filters for the title line.
func (m Model) logFilterNote() string {
	parts := make([]string, 0, 2)
	if m.logQuery != "" {
		parts = append(parts, fmt.Sprintf("filter: %q", m.logQuery))
	}
	if m.logKind.Valid() {
		parts = append(parts, "kind: "+string(m.logKind))
	}
	if len(parts) == 0 {
		return ""
	}
	return "· " + strings.Join(parts, " · ")
}

func (m Model) viewHelp() string {
	title := m.theme.Base().Bold(true).Render("Keyboard Shortcuts")
	section := m.theme.Muted()
	keyStyle := m.theme.Accent(string(toast.KindSuccess))

	var b strings.Builder
	b.WriteString(title + "\n\n")

	b.WriteString(section.Render("Fire toasts") + "\n")
	b.WriteString(keyStyle.Render("  s/e/i/w") + "   success / error / info / warning\n")
	b.WriteString(keyStyle.Render("  p") + "         persistent info toast\n")
	b.WriteString(keyStyle.Render("  1") + "         error payload with a nested HTTP response\n")
	b.WriteString(keyStyle.Render("  2") + "         error payload with an error field\n")
	b.WriteString(keyStyle.Render("  3") + "         error payload shaped like a request\n")
	b.WriteString(keyStyle.Render("  c") + "         compose a toast (free text or kind: message)\n")
	b.WriteString("\n")

	b.WriteString(section.Render("Manage the stack") + "\n")
	b.WriteString(keyStyle.Render("  d") + "         dismiss oldest\n")
	b.WriteString(keyStyle.Render("  D") + "         dismiss newest\n")
	b.WriteString(keyStyle.Render("  x") + "         clear all\n")
	b.WriteString(keyStyle.Render("  n") + "         toggle do not disturb\n")
	b.WriteString("\n")

	b.WriteString(section.Render("Session") + "\n")
	b.WriteString(keyStyle.Render("  l") + "         session log\n")
	b.WriteString(keyStyle.Render("  /") + "         filter log messages\n")
	b.WriteString(keyStyle.Render("  f") + "         cycle log kind filter\n")
	b.WriteString(keyStyle.Render("  y") + "         copy session as JSON\n")
	b.WriteString("\n")

	b.WriteString(section.Render("General") + "\n")
	b.WriteString(keyStyle.Render("  ?") + "         toggle this help\n")
	b.WriteString(keyStyle.Render("  esc") + "       back\n")
	b.WriteString(keyStyle.Render("  q") + "         quit\n")

	b.WriteString("\n" + section.Render("Press ? or esc to return"))

	return b.String()
}

// statusBar renders the bottom line: a transient status message when one
// is set, the help footer otherwise.
func (m Model) statusBar() string {
	if m.statusMsg != "" {
		style := m.theme.Muted()
		if m.statusErr {
			style = m.theme.Accent(string(toast.KindError))
		}
		return style.Render(m.statusMsg)
	}

	bar := m.help.View(m.keys)
	if m.manager != nil && m.manager.DoNotDisturb() {
		bar = m.theme.Accent(string(toast.KindWarning)).Render("[dnd]") + " " + bar
	}
	return bar
}

// RunOptions configures the playground.
type RunOptions struct {
	Config  *config.Config
	Manager *toast.Manager // created from Config when nil
	Theme   *theme.Theme

	// Source feeds toasts into the manager alongside the keyboard.
	Source source.Source

	// ConfigWatcher and ThemeLoader push live reloads into the running
	// program when set.
	ConfigWatcher *config.Watcher
	ThemeLoader   *theme.Loader

	// Audio plays per-kind cues on shown toasts.
	Audio *audio.Manager

	Logger *slog.Logger

	// ExportFormat writes the session log to ExportWriter on exit
	// ("json", "yaml", or "plain"; empty disables).
	ExportFormat string
	ExportWriter io.Writer
}

// Run starts the playground with the given options and blocks until the
// user quits. When an export format is set, the session log is written
// after the screen is restored.
func Run(opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	manager := opts.Manager
	if manager == nil {
		manager = toast.NewManager(toast.Options{
			Durations:       kindDurations(cfg),
			StackDuplicates: cfg.Behavior.StackDuplicates,
			Logger:          logger,
		})
		manager.SetDoNotDisturb(cfg.DnD.Enabled)
		defer manager.Close()
	}

	th := opts.Theme
	if th == nil {
		th = theme.NewDefaultTheme()
	}

	m := New(cfg, manager, th)
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.Source != nil {
		go func() {
			if err := opts.Source.Run(ctx, manager); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("source stopped", "source", opts.Source.Name(), "error", err)
			}
		}()
	}

	if opts.Audio != nil {
		audioCh := manager.Subscribe()
		defer manager.Unsubscribe(audioCh)
		go func() {
			for ev := range audioCh {
				if ev.Type == toast.EventAdded {
					opts.Audio.PlayForKind(ev.Toast.Kind)
				}
			}
		}()
	}

	if opts.ConfigWatcher != nil {
		opts.ConfigWatcher.SetReloadCallback(func(cfg *config.Config) {
			if opts.Audio != nil {
				opts.Audio.UpdateConfig(cfg)
			}
			p.Send(configReloadedMsg{cfg: cfg})
		})
		opts.ConfigWatcher.SetErrorCallback(func(err error) {
			p.Send(statusMsg{text: "Config change rejected: " + err.Error(), isErr: true})
		})
		if err := opts.ConfigWatcher.Start(); err != nil {
			logger.Warn("config watcher failed to start", "error", err)
		} else {
			defer opts.ConfigWatcher.Stop()
		}
	}

	if opts.ThemeLoader != nil {
		opts.ThemeLoader.SetChangeCallback(func(t *theme.Theme) {
			p.Send(themeChangedMsg{theme: t})
		})
		opts.ThemeLoader.StartHotReload(ctx)
		defer opts.ThemeLoader.StopHotReload()
	}

	final, err := p.Run()
	cancel()
	if err != nil {
		return err
	}

	if opts.ExportFormat != "" {
		fm, ok := final.(Model)
		if !ok {
			return fmt.Errorf("unexpected final model type %T", final)
		}
		w := opts.ExportWriter
		if w == nil {
			w = os.Stdout
		}
		exportOpts := export.DefaultFormatterOptions()
		exportOpts.Template = cfg.GetTemplate("plain")
		formatter := export.NewFormatter(export.FormatType(opts.ExportFormat), exportOpts)
		return formatter.Format(w, fm.SessionToasts())
	}

	return nil
}
