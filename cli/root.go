package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/conmail/conmail/pkg/logger"
)

// RootCmd builds the conmail command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "conmail",
		Short: "Render convention-registration notification emails",
		Long: "conmail renders the MIVS judging email family from embedded plain-text\n" +
			"templates and event configuration. It never sends mail; delivery is the\n" +
			"host application's job.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadEnvFile(cmd); err != nil {
				return err
			}
			logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
			if err != nil {
				return err
			}
			logger.SetupLogger(logLevel, logJSON, logSource)
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")
	root.PersistentFlags().Bool("log-source", false, "include caller information in logs")
	root.PersistentFlags().String("env-file", "", "load environment variables from this file before resolving configuration")

	root.AddCommand(
		ListCmd(),
		RenderCmd(),
		ConfigCmd(),
	)

	return root
}

// loadEnvFile loads a .env style file when requested. A missing explicit file
// is an error; the default of no file is not.
func loadEnvFile(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("env file %q: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %q: %w", path, err)
	}
	return nil
}
