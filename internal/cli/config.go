package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/oneshot/internal/cli/render"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration a deployment would run with, after merging flags,
ONESHOT_* environment variables, oneshot.yaml, foundry.toml and .env files.

The private key is never printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout())
			return renderer.Render(app.ShowConfig.Run())
		},
	}

	return cmd
}
