// Package root contains the root command for the application
package root

import (
	"fmt"

	"sshub/ledger-assist/internal/config"
	"sshub/ledger-assist/internal/container"
	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/models"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
	Scope  string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer is built from the configuration before any subcommand runs.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ledger-assist",
		Short: "A CLI tool to read receipts and finance commands into structured records.",
		Long: `ledger-assist turns OCR text from receipts into structured records and
classifies short finance commands such as "add ₹150 for coffee today".

Receipts get a merchant, a date, line items, a total, a confidence score and
suggested spending categories. Commands get an intent and its parameters.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ledger-assist!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if envFile := config.LoadEnv(); envFile != "" {
				Log.Debug("Loaded environment file", logging.Field{Key: logging.FieldInputFile, Value: envFile})
			}

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
				return
			}

			AppContainer, err = container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Failed to initialize application: %v", err)
				return
			}
			Log = AppContainer.GetLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer == nil {
				return
			}
			if err := AppContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to release resources")
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: json, yaml or csv (default: from config)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Scope, "scope", "s", string(models.ScopeGuest), "Data scope: guest or user")
}

// GetContainer returns the application container, or nil before
// PersistentPreRun has run.
func GetContainer() *container.Container {
	return AppContainer
}

// ResolveFormat returns the --format flag, falling back to the configured
// output format.
func ResolveFormat(flag string, cfg *config.Config) (string, error) {
	format := flag
	if format == "" && cfg != nil {
		format = cfg.Output.Format
	}
	if format == "" {
		format = config.FormatJSON
	}
	if err := config.ValidateFormat(format); err != nil {
		return "", fmt.Errorf("invalid --format: %w", err)
	}
	return format, nil
}
