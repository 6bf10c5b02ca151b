package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the modelprobe CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "modelprobe",
		Short:   "Verify provider API keys and list available models",
		Version: a.version,
		Long: `Modelprobe is a diagnostic tool for OpenAI-compatible model APIs.

It verifies that an API key is valid and enumerates the models the account
is authorized to see, probing the provider's beta and stable API surfaces
independently. A failed probe against one surface never stops the run.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		// Bare invocation behaves like "modelprobe check"
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.modelprobe.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", "", "output format: text, table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	addProbeFlags(rootCmd, a.config)

	rootCmd.SetVersionTemplate("modelprobe {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// addProbeFlags registers the probe flags shared by the root and check
// commands.
func addProbeFlags(cmd *cobra.Command, config *Config) {
	cmd.Flags().StringVar(&config.CredentialEnv, "env", config.CredentialEnv, "environment variable holding the API key")
	cmd.Flags().StringVar(&config.BaseURL, "base-url", config.BaseURL, "base URL of the stable API surface")
	cmd.Flags().StringVar(&config.BetaURL, "beta-url", config.BetaURL, "base URL of the beta API surface")
	cmd.Flags().StringVar(&config.Surface, "surface", config.Surface, "API surface to probe: all, beta, regular")
	cmd.Flags().DurationVar(&config.Timeout, "timeout", config.Timeout, "timeout per endpoint probe")
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// Update config from parsed flags. These flags are defined as
	// persistent flags in createRootCommand, so errors indicate
	// programming errors.
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewCheckCommand())
	rootCmd.AddCommand(a.NewEndpointsCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
