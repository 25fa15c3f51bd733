package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitachoice/toastui/internal/audio"
	"github.com/vitachoice/toastui/internal/config"
	"github.com/vitachoice/toastui/internal/source"
	"github.com/vitachoice/toastui/internal/theme"
	"github.com/vitachoice/toastui/internal/tui"
)

var demoOpts struct {
	source string
	export string
	theme  string
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive toast playground",
	Long: `Launch the interactive terminal playground for firing and watching toasts.

The playground renders active toasts as an overlay stacked in insertion
order at the configured screen position, with a remaining-time indicator
per toast and a session log of everything dismissed.

Toasts come from the keyboard, from the selected source, or both:
  script   Built-in scripted scenario with delays (default)
  stdin    Read one toast per line from standard input
           ("kind: message", bare text, or a JSON error payload)

Key bindings:
  s/e/i/w     Fire a success/error/info/warning toast
  1/2/3       Fire sample error payloads (HTTP, field, request shaped)
  p           Fire a persistent toast
  d/D         Dismiss oldest/newest toast
  x           Clear all toasts
  n           Toggle Do Not Disturb
  c           Compose a toast (free text or "kind: message")
  l           Toggle the session log pane (/ filters, f cycles kinds)
  y           Copy the session log as JSON to the clipboard
  ?           Show help
  q           Quit`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoOpts.source, "source", "",
		"Toast source (script, stdin; defaults to script)")
	demoCmd.Flags().StringVar(&demoOpts.export, "export", "",
		"Print the session log on exit (json, yaml, plain)")
	demoCmd.Flags().StringVar(&demoOpts.theme, "theme", "",
		"Theme name (overrides the configured theme)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	exportFormat := strings.ToLower(demoOpts.export)
	switch exportFormat {
	case "", "json", "yaml", "plain":
	default:
		return fmt.Errorf("invalid export format %q (use json, yaml, or plain)", demoOpts.export)
	}

	// Create the toast source
	src, err := source.NewSource(demoOpts.source)
	if err != nil {
		logger.Warn("failed to create source", "source", demoOpts.source, "error", err)
		src = nil
	}

	// Load the theme, with hot reload for user theme files
	themeName := demoOpts.theme
	if themeName == "" {
		themeName = cfg.Theme.Name
	}
	themeLoader := theme.NewLoader(logger)
	if err := themeLoader.LoadTheme(themeName); err != nil {
		logger.Warn("failed to load theme, using default", "theme", themeName, "error", err)
	}

	// Audio cues; a disabled sound section makes playback a no-op
	audioManager := audio.NewManager(cfg, logger)
	if err := audioManager.Start(); err != nil {
		logger.Warn("failed to start audio manager", "error", err)
	}
	defer audioManager.Stop()

	// Watch the config file so edits apply without restarting
	configWatcher, err := config.NewWatcher(globalOpts.configPath, cfg, logger)
	if err != nil {
		logger.Warn("failed to create config watcher", "error", err)
		configWatcher = nil
	}

	return tui.Run(tui.RunOptions{
		Config:        getConfig(),
		Theme:         themeLoader.GetTheme(),
		Source:        src,
		ConfigWatcher: configWatcher,
		ThemeLoader:   themeLoader,
		Audio:         audioManager,
		Logger:        logger,
		ExportFormat:  exportFormat,
	})
}
