package audio

import (
	"log/slog"
	"maps"
	"os"
	"sync"

	"github.com/vitachoice/toastui/internal/config"
	"github.com/vitachoice/toastui/internal/toast"
)

// Manager manages sound cue playback with per-kind sounds.
type Manager struct {
	mu     sync.RWMutex
	logger *slog.Logger
	player *Player
	config *config.Config

	// Kind to sound path mapping
	sounds map[toast.Kind]string
}

// NewManager creates a new audio manager.
func NewManager(cfg *config.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		logger: logger,
		player: NewPlayer(logger),
		config: cfg,
		sounds: make(map[toast.Kind]string),
	}

	m.loadSoundConfig()

	return m
}

// loadSoundConfig loads cues from the configuration.
func (m *Manager) loadSoundConfig() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return
	}

	// Config uses 0-100, player uses 0.0-1.0
	if m.config.Sound.Volume > 0 {
		m.player.SetVolume(float64(m.config.Sound.Volume) / 100.0)
	}

	for _, kind := range toast.Kinds {
		path := m.config.SoundFor(string(kind))
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err != nil {
			m.logger.Warn("sound file not found", "kind", kind, "path", path)
			continue
		}

		m.sounds[kind] = path
		m.logger.Debug("loaded sound cue", "kind", kind, "path", path)
	}
}

// Start preloads the configured cues so the first toast plays without
// decode latency.
func (m *Manager) Start() error {
	m.mu.RLock()
	sounds := make(map[toast.Kind]string, len(m.sounds))
	maps.Copy(sounds, m.sounds)
	m.mu.RUnlock()

	for _, path := range sounds {
		if err := m.player.Preload(path); err != nil {
			m.logger.Warn("failed to preload sound", "path", path, "error", err)
		}
	}

	m.logger.Debug("audio manager started", "sounds", len(sounds))
	return nil
}

// Stop shuts down the audio manager.
func (m *Manager) Stop() {
	m.player.Close()
	m.logger.Debug("audio manager stopped")
}

// PlayForKind plays the cue configured for the given toast kind.
func (m *Manager) PlayForKind(kind toast.Kind) error {
	m.mu.RLock()
	enabled := m.config != nil && m.config.Sound.Enabled
	path, ok := m.sounds[kind]
	m.mu.RUnlock()

	if !enabled {
		return nil
	}
	if !ok {
		m.logger.Debug("no sound configured for kind", "kind", kind)
		return nil
	}

	return m.player.Play(path)
}

// PlayFile plays a specific sound file.
func (m *Manager) PlayFile(path string) error {
	m.mu.RLock()
	enabled := m.config != nil && m.config.Sound.Enabled
	m.mu.RUnlock()

	if !enabled {
		return nil
	}
	return m.player.Play(path)
}

// SetVolume sets the playback volume (0.0 to 1.0).
func (m *Manager) SetVolume(volume float64) {
	m.player.SetVolume(volume)
}

// GetVolume returns the current volume.
func (m *Manager) GetVolume() float64 {
	return m.player.GetVolume()
}

// Reload reloads the cue configuration.
func (m *Manager) Reload() {
	m.player.ClearCache()

	m.mu.Lock()
	m.sounds = make(map[toast.Kind]string)
	m.mu.Unlock()

	m.loadSoundConfig()

	if err := m.Start(); err != nil {
		m.logger.Warn("failed to reload sounds", "error", err)
	}
}

// UpdateConfig updates the configuration and reloads cues.
// This is called when the config file is hot-reloaded.
func (m *Manager) UpdateConfig(cfg *config.Config) {
	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()

	m.logger.Debug("audio manager config updated")
	m.Reload()
}
