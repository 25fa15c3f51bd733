package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var dndOpts struct {
	quiet bool // Suppress output, return exit code only
}

// dndCmd represents the dnd command group.
var dndCmd = &cobra.Command{
	Use:   "dnd",
	Short: "Manage Do Not Disturb mode",
	Long: `Manage Do Not Disturb (DnD) mode.

When DnD is enabled, new toasts are recorded in the session log but not
displayed. The state is persisted in the config file, so it applies to
every playground session until changed.

Use 'toastui dnd status' to check the current state.
Use 'toastui dnd on' to enable DnD mode.
Use 'toastui dnd off' to disable DnD mode.
Use 'toastui dnd toggle' to toggle DnD mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to showing status
		return dndStatusRun(cmd, args)
	},
}

// dndOnCmd enables DnD mode.
var dndOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable Do Not Disturb mode",
	Long:  `Enable Do Not Disturb mode. New toasts will be suppressed.`,
	RunE:  dndOnRun,
}

// dndOffCmd disables DnD mode.
var dndOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable Do Not Disturb mode",
	Long:  `Disable Do Not Disturb mode. New toasts will be displayed again.`,
	RunE:  dndOffRun,
}

// dndToggleCmd toggles DnD mode.
var dndToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle Do Not Disturb mode",
	Long:  `Toggle Do Not Disturb mode between enabled and disabled.`,
	RunE:  dndToggleRun,
}

// dndStatusCmd shows DnD status.
var dndStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show Do Not Disturb status",
	Long:  `Show whether Do Not Disturb mode is currently enabled or disabled.`,
	RunE:  dndStatusRun,
}

func init() {
	// Add subcommands
	dndCmd.AddCommand(dndOnCmd)
	dndCmd.AddCommand(dndOffCmd)
	dndCmd.AddCommand(dndToggleCmd)
	dndCmd.AddCommand(dndStatusCmd)

	// Add flags to all subcommands
	for _, cmd := range []*cobra.Command{dndCmd, dndOnCmd, dndOffCmd, dndToggleCmd, dndStatusCmd} {
		cmd.Flags().BoolVarP(&dndOpts.quiet, "quiet", "q", false,
			"Suppress output, return exit code only (0=off, 1=on)")
	}

	// Add to root
	rootCmd.AddCommand(dndCmd)
}

func dndOnRun(cmd *cobra.Command, args []string) error {
	return setDnD(true)
}

func dndOffRun(cmd *cobra.Command, args []string) error {
	return setDnD(false)
}

func dndToggleRun(cmd *cobra.Command, args []string) error {
	return setDnD(!cfg.DnD.Enabled)
}

// setDnD persists the new DnD state and exits with 0=off, 1=on.
func setDnD(enabled bool) error {
	cfg.SetDnD(enabled)
	if err := cfg.Save(globalOpts.configPath); err != nil {
		if !dndOpts.quiet {
			fmt.Fprintf(os.Stderr, "Failed to save config: %v\n", err)
		}
		return err
	}

	if !dndOpts.quiet {
		if enabled {
			fmt.Println("Do Not Disturb: enabled")
		} else {
			fmt.Println("Do Not Disturb: disabled")
		}
	}

	// Exit code 1 means DnD is now on
	if enabled {
		os.Exit(1)
	}
	return nil
}

func dndStatusRun(cmd *cobra.Command, args []string) error {
	if !dndOpts.quiet {
		if cfg.DnD.Enabled {
			fmt.Println("Do Not Disturb: enabled")
		} else {
			fmt.Println("Do Not Disturb: disabled")
		}

		if cfg.DnD.Since > 0 {
			fmt.Printf("  Last change: %s\n", formatTransitionTime(cfg.DnD.Since))
		}
	}

	// Exit code: 0=off, 1=on
	if cfg.DnD.Enabled {
		os.Exit(1)
	}
	return nil
}

// formatTransitionTime formats a unix timestamp as a human-readable relative time.
func formatTransitionTime(timestamp int64) string {
	return humanize.Time(time.Unix(timestamp, 0))
}
