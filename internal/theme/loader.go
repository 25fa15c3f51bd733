package theme

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vitachoice/toastui/internal/config"
)

// Loader handles loading themes with hot-reload support.
type Loader struct {
	mu          sync.RWMutex
	logger      *slog.Logger
	themesDir   string
	currentName string
	theme       *Theme
	watcher     *Watcher
	onChange    func(t *Theme)
}

// NewLoader creates a new theme loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{
		logger:    logger,
		themesDir: config.ThemesDir(),
	}
}

// LoadTheme loads a theme by name.
// Theme resolution order:
//  1. User themes directory (~/.config/toastui/themes/)
//  2. Embedded/bundled themes
//
// This allows users to override bundled themes by placing a file with the same name
// in their themes directory.
func (l *Loader) LoadTheme(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if name == "" {
		name = DefaultThemeName
	}

	// First, check user themes directory
	if l.themesDir != "" {
		themePath := filepath.Join(l.themesDir, name+".toml")
		if _, err := os.Stat(themePath); err == nil {
			theme, err := NewTheme(name, themePath)
			if err != nil {
				l.logger.Warn("failed to load user theme, trying bundled", "theme", name, "error", err)
			} else {
				l.currentName = name
				l.theme = theme
				l.logger.Info("loaded user theme", "name", name, "path", themePath)
				return nil
			}
		}
	}

	// Second, check embedded themes
	if theme, found := NewEmbeddedTheme(name); found {
		l.currentName = name
		l.theme = theme
		l.logger.Info("loaded bundled theme", "name", name)
		return nil
	}

	// Fallback to default theme
	l.logger.Warn("theme not found, using default", "theme", name)
	l.currentName = DefaultThemeName
	l.theme = NewDefaultTheme()
	return nil
}

// GetTheme returns the currently loaded theme.
func (l *Loader) GetTheme() *Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.theme
}

// CurrentTheme returns the name of the currently loaded theme.
func (l *Loader) CurrentTheme() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentName
}

// SetChangeCallback sets the callback invoked with the new theme after
// a hot-reload.
func (l *Loader) SetChangeCallback(callback func(t *Theme)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = callback
}

// Reload reloads the current theme from disk.
func (l *Loader) Reload() error {
	l.mu.RLock()
	name := l.currentName
	l.mu.RUnlock()
	return l.LoadTheme(name)
}

// StartHotReload starts watching the current theme for changes.
// The change callback receives each successfully reloaded theme.
func (l *Loader) StartHotReload(ctx context.Context) {
	l.mu.Lock()
	theme := l.theme
	old := l.watcher
	l.watcher = nil
	l.mu.Unlock()

	// Stop outside the lock: Stop waits for the watch goroutine, which
	// may be inside the change callback taking the loader lock.
	if old != nil {
		old.Stop()
	}

	if theme == nil || theme.Path == "" {
		l.logger.Debug("not starting hot-reload for bundled theme")
		return
	}

	w := NewWatcher(theme, l.logger)
	w.SetChangeCallback(func() {
		if err := l.Reload(); err != nil {
			l.logger.Warn("failed to hot-reload theme", "error", err)
			return
		}

		l.mu.RLock()
		callback := l.onChange
		reloaded := l.theme
		l.mu.RUnlock()

		l.logger.Info("hot-reloaded theme", "name", reloaded.Name)
		if callback != nil {
			callback(reloaded)
		}
	})

	if err := w.Start(ctx); err != nil {
		l.logger.Warn("failed to start theme watcher", "error", err)
		return
	}

	l.mu.Lock()
	l.watcher = w
	l.mu.Unlock()
}

// StopHotReload stops watching the theme for changes.
func (l *Loader) StopHotReload() {
	l.mu.Lock()
	w := l.watcher
	l.watcher = nil
	l.mu.Unlock()

	if w != nil {
		w.Stop()
	}
}

// ListThemes returns a list of available theme names.
// Returns both bundled themes and user themes, with duplicates removed.
func (l *Loader) ListThemes() []string {
	seen := make(map[string]bool)
	var themes []string

	// Add bundled themes first
	for _, name := range ListEmbeddedThemes() {
		if !seen[name] {
			seen[name] = true
			themes = append(themes, name)
		}
	}

	// Add user themes (may include overrides)
	if l.themesDir != "" {
		entries, err := os.ReadDir(l.themesDir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				name := entry.Name()
				if filepath.Ext(name) == ".toml" {
					themeName := strings.TrimSuffix(name, ".toml")
					if !seen[themeName] {
						seen[themeName] = true
						themes = append(themes, themeName)
					}
				}
			}
		} else if !os.IsNotExist(err) {
			l.logger.Debug("failed to read themes directory", "error", err)
		}
	}

	return themes
}
