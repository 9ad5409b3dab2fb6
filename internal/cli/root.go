package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/oneshot/internal/app"
	"github.com/trebuchet-org/oneshot/internal/cli/render"
	"github.com/trebuchet-org/oneshot/internal/config"
	"github.com/trebuchet-org/oneshot/internal/domain"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// AppInitializer builds the application from resolved settings
type AppInitializer func(v *viper.Viper) (*app.App, func(), error)

// session holds what a single command invocation must release
type session struct {
	release []func()
}

func (s *session) close() {
	for i := len(s.release) - 1; i >= 0; i-- {
		s.release[i]()
	}
	s.release = nil
}

// Execute runs the CLI and returns the process exit code
func Execute(ctx context.Context) int {
	return execute(ctx, app.InitApp, os.Args[1:], os.Stdout, os.Stderr)
}

func execute(ctx context.Context, initApp AppInitializer, args []string, stdout, stderr io.Writer) int {
	s := &session{}
	defer s.close()

	rootCmd := newRootCmd(initApp, s)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, render.FormatError(err.Error()))
		return 1
	}
	return 0
}

// newRootCmd creates the root command
func newRootCmd(initApp AppInitializer, s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oneshot",
		Short: "Deploy a single compiled contract and print its address",
		Long: `oneshot deploys one instance of a compiled contract with no constructor
arguments, waits for the transaction to be mined and prints

  <label>: <address>

on stdout. Progress and errors go to stderr. The exit code is 0 on success
and 1 on any failure.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			// Without a project marker the working directory is the project
			projectRoot, err := config.FindProjectRoot(cwd)
			if err != nil {
				projectRoot = cwd
			}

			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, cleanup, err := initApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			s.release = append(s.release, cleanup)

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				s.release = append(s.release, cancel)
			}

			cmd.SetContext(ctx)

			return nil
		},
		RunE: runDeploy,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.Bool("debug", false, "Enable debug output")
	flags.Bool("non-interactive", false, "Disable prompts and progress output")
	flags.StringP("network", "n", "", "Network name, chain ID or RPC URL (e.g., localhost, sepolia)")
	flags.String("rpc-url", "", "RPC endpoint, overrides --network")
	flags.Uint64("chain-id", 0, "Expected chain ID of the endpoint")
	flags.String("private-key", "", "Deployer private key (default $PRIVATE_KEY)")
	flags.String("artifacts", "", "Compiled artifacts directory (default artifacts/ or Foundry out/)")

	// Deployment flags
	flags.StringP("contract", "c", "", fmt.Sprintf("Contract to deploy, Name or path:Name (default %s)", config.DefaultContract))
	flags.StringP("label", "l", "", `Prefix of the output line (default "<Contract> deployed to")`)
	flags.Duration("timeout", 0, "Give up waiting after this long, 0 waits forever (default 5m)")
	flags.Uint64("confirmations", 0, "Blocks to wait for after inclusion (default 1)")
	flags.Duration("poll-interval", 0, "Block polling interval while waiting for confirmations (default 2s)")
	flags.Bool("confirm", false, "Ask before broadcasting the deployment")

	rootCmd.AddCommand(NewNetworksCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// runDeploy deploys the configured contract and prints the result line
func runDeploy(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.DeployContract.Run(cmd.Context())
	if err != nil {
		// Past submission the transaction is out of our hands
		if stage, ok := domain.StageOf(err); ok && (stage == domain.StageConfirmation || stage == domain.StageAddressRetrieval) {
			fmt.Fprintln(cmd.ErrOrStderr(), render.FormatWarning("The deployment transaction was broadcast and may still be mined"))
		}
		return err
	}

	app.Progress.Info(render.FormatSuccess(render.Summary(result)))

	renderer := render.NewDeployRenderer(cmd.OutOrStdout(), app.Config.Label)
	return renderer.Render(result)
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
