package cli

import (
	"errors"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/travelbook/internal/buildinfo"
	"github.com/dmitrijs2005/travelbook/internal/config"
)

const (
	appName  = "travelbook"
	appShort = "travelbook keeps a personal list of travel destinations"
	appLong  = `travelbook keeps a personal list of travel destinations.
	Without a subcommand it starts an interactive shell where you can register,
	log in and add, search, edit or delete destinations. Everything is stored
	in a local SQLite file.

	Settings are read from defaults, an optional JSON or YAML file (--config),
	TRAVELBOOK_* environment variables and flags, in that order.`
	appExample = `# Start the interactive shell with a custom database
	travelbook --db ~/trips/travelbook.db

	# Skip the splash delay and keep the session between runs
	travelbook --splash 0s --remember`

	registerShort   = "create an account without starting the shell"
	registerExample = `# Register a user, the password is prompted
	travelbook register --email ann@example.com --name Ann`

	versionShort = "display the travelbook build information"
)

// NewRootCommand builds the travelbook command tree. args are the raw
// command-line arguments, usually os.Args[1:].
func NewRootCommand(args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     appName,
		Short:   heredoc.Doc(appShort),
		Long:    heredoc.Doc(appLong),
		Example: heredoc.Doc(appExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}

	config.AddFlags(cmd.PersistentFlags())
	cmd.AddCommand(
		registerCmd(),
		versionCmd(),
	)
	cmd.SetArgs(args)

	return cmd
}

func registerCmd() *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:     "register",
		Short:   heredoc.Doc(registerShort),
		Example: heredoc.Doc(registerExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return errors.Join(app.RegisterUser(cmd.Context(), email, name), app.Close())
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (case-sensitive)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: heredoc.Doc(versionShort),

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

// loadApp resolves the configuration from the parsed flags of cmd, which
// include the persistent flags inherited from the root.
func loadApp(cmd *cobra.Command) (*App, error) {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return NewApp(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
}
