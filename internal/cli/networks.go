package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/oneshot/internal/cli/render"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List known networks and probe their chain IDs",
		Long: `List the built-in local networks, the [rpc_endpoints] of foundry.toml and
the networks section of oneshot.yaml.

Every endpoint is asked for its chain ID; unreachable endpoints are reported
but do not fail the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Run use case
			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			// Render output
			renderer := render.NewNetworksRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
