package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitachoice/toastui/internal/theme"
	"github.com/vitachoice/toastui/internal/toast"
)

var previewOpts struct {
	kind    string
	message string
	payload string
	theme   string
	width   int
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a single toast to stdout",
	Long: `Render one styled toast to stdout without starting the playground.

The message comes from --message, or from --payload: a JSON value run
through the same payload normalization a real toast gets. Useful for
checking how an error response will read, or how a theme looks.

Examples:
  # A plain success toast
  toastui preview --kind success --message "Report exported"

  # See how an HTTP error payload normalizes
  toastui preview --kind error \
    --payload '{"response":{"status":404,"config":{"url":"/api/users"}},"message":"Not Found"}'

  # A field-shaped payload with a different theme
  toastui preview --payload '{"error":"amount must be positive"}' --theme mono`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOpts.kind, "kind", "k", "info",
		"Toast kind (success, error, info, warning)")
	previewCmd.Flags().StringVarP(&previewOpts.message, "message", "m", "",
		"Message to display")
	previewCmd.Flags().StringVarP(&previewOpts.payload, "payload", "p", "",
		"JSON payload to normalize into the message")
	previewCmd.Flags().StringVar(&previewOpts.theme, "theme", "",
		"Theme name (overrides the configured theme)")
	previewCmd.Flags().IntVar(&previewOpts.width, "width", 0,
		"Toast width in columns (defaults to the configured width)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	kind, err := toast.ParseKind(previewOpts.kind)
	if err != nil {
		return err
	}

	message, err := previewMessage()
	if err != nil {
		return err
	}

	themeName := previewOpts.theme
	if themeName == "" {
		themeName = cfg.Theme.Name
	}
	loader := theme.NewLoader(logger)
	if err := loader.LoadTheme(themeName); err != nil {
		logger.Warn("failed to load theme, using default", "theme", themeName, "error", err)
	}
	th := loader.GetTheme()

	width := previewOpts.width
	if width <= 0 {
		width = cfg.Display.Width
	}

	icon := th.Accent(string(kind)).Render(th.Icon(string(kind)))
	body := th.Base().Render(message)
	fmt.Println(th.Box(string(kind), width).Render(icon + " " + body))
	return nil
}

// previewMessage resolves the toast message from the flags, feeding a JSON
// payload through the normalizer used for real toasts.
func previewMessage() (string, error) {
	if previewOpts.payload != "" {
		var payload any
		if err := json.Unmarshal([]byte(previewOpts.payload), &payload); err != nil {
			return "", fmt.Errorf("invalid payload JSON: %w", err)
		}
		return toast.Normalize(payload), nil
	}

	if previewOpts.message == "" {
		return "", fmt.Errorf("must specify --message or --payload")
	}
	return toast.Normalize(previewOpts.message), nil
}
