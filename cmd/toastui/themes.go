package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitachoice/toastui/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List all available themes.

Bundled themes ship inside the binary. User themes are TOML files in the
themes directory next to the config file and take precedence over a
bundled theme with the same name.

The configured theme is marked with an asterisk. Switch themes with:
  toastui config set theme.name <name>`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	themes, err := theme.ListAvailableThemes()
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}

	for _, t := range themes {
		marker := " "
		if t.Name == cfg.Theme.Name {
			marker = "*"
		}

		origin := "user"
		if t.IsBundled {
			origin = "bundled"
		}

		fmt.Printf("%s %-16s %s\n", marker, t.Name, origin)
	}

	return nil
}
