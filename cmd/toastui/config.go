package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/vitachoice/toastui/internal/config"
	"github.com/vitachoice/toastui/internal/theme"
)

var configInitOpts struct {
	force bool
}

// configCmd represents the config command group.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and modify the configuration",
	Long: `Inspect and modify the toastui configuration.

The config file lives at ~/.config/toastui/config.toml (or under
$XDG_CONFIG_HOME). Missing files and missing keys fall back to defaults,
so 'toastui config show' always prints the effective configuration.

Use 'toastui config show' to print the effective configuration.
Use 'toastui config init' to write a config file with the defaults.
Use 'toastui config path' to print the config file path.
Use 'toastui config set' to change a single setting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to showing the effective config
		return configShowRun(cmd, args)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the effective configuration as TOML.

The output merges the config file (if any) with the built-in defaults,
so it reflects exactly what the playground will use.`,
	RunE: configShowRun,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write a config file populated with the default settings.

Refuses to overwrite an existing file unless --force is given. Also
creates the themes directory next to the config file.`,
	RunE: configInitRun,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  configPathRun,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single configuration value",
	Long: `Set a single configuration value and save the config file.

Durations accept a bare integer (milliseconds) or a Go duration string.
The new value is validated before saving; invalid values leave the file
untouched.

Keys:
  durations.success, durations.error, durations.info, durations.warning
  display.position, display.max_visible, display.gap, display.width,
  display.show_elapsed
  behavior.stack_duplicates
  sound.enabled, sound.volume
  theme.name

Examples:
  # Errors stay up for eight seconds
  toastui config set durations.error 8000

  # Same thing, spelled as a duration
  toastui config set durations.error 8s

  # Move the overlay to the bottom right corner
  toastui config set display.position bottom-right

  # Switch to the mono theme
  toastui config set theme.name mono`,
	Args: cobra.ExactArgs(2),
	RunE: configSetRun,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)

	configInitCmd.Flags().BoolVar(&configInitOpts.force, "force", false,
		"Overwrite an existing config file")

	rootCmd.AddCommand(configCmd)
}

func configShowRun(cmd *cobra.Command, args []string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func configInitRun(cmd *cobra.Command, args []string) error {
	path := effectiveConfigPath()
	if path == "" {
		return fmt.Errorf("unable to determine config path")
	}

	if _, err := os.Stat(path); err == nil && !configInitOpts.force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	if err := theme.CreateThemesDir(); err != nil {
		logger.Warn("failed to create themes directory", "error", err)
	}

	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}

func configPathRun(cmd *cobra.Command, args []string) error {
	path := effectiveConfigPath()
	if path == "" {
		return fmt.Errorf("unable to determine config path")
	}
	fmt.Println(path)
	return nil
}

func configSetRun(cmd *cobra.Command, args []string) error {
	key, value := strings.ToLower(args[0]), args[1]

	if err := applyConfigValue(cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := cfg.Save(globalOpts.configPath); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

// applyConfigValue parses value according to the key's type and stores it.
func applyConfigValue(c *config.Config, key, value string) error {
	switch key {
	case "durations.success":
		return c.Durations.Success.UnmarshalText([]byte(value))
	case "durations.error":
		return c.Durations.Error.UnmarshalText([]byte(value))
	case "durations.info":
		return c.Durations.Info.UnmarshalText([]byte(value))
	case "durations.warning":
		return c.Durations.Warning.UnmarshalText([]byte(value))
	case "display.position":
		c.Display.Position = value
		return nil
	case "display.max_visible":
		return setIntValue(&c.Display.MaxVisible, value)
	case "display.gap":
		return setIntValue(&c.Display.Gap, value)
	case "display.width":
		return setIntValue(&c.Display.Width, value)
	case "display.show_elapsed":
		return setBoolValue(&c.Display.ShowElapsed, value)
	case "behavior.stack_duplicates":
		return setBoolValue(&c.Behavior.StackDuplicates, value)
	case "sound.enabled":
		return setBoolValue(&c.Sound.Enabled, value)
	case "sound.volume":
		return setIntValue(&c.Sound.Volume, value)
	case "theme.name":
		c.Theme.Name = value
		return nil
	default:
		return fmt.Errorf("unknown config key %q (see 'toastui config set --help' for the list)", key)
	}
}

func setIntValue(dst *int, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("expected an integer, got %q", value)
	}
	*dst = n
	return nil
}

func setBoolValue(dst *bool, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("expected true or false, got %q", value)
	}
	*dst = b
	return nil
}

// effectiveConfigPath returns the explicit --config path or the default.
func effectiveConfigPath() string {
	if globalOpts.configPath != "" {
		return globalOpts.configPath
	}
	return config.ConfigPath()
}
