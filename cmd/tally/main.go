package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/expense-tally/internal/cli"
	"github.com/Veraticus/expense-tally/internal/common"
	"github.com/Veraticus/expense-tally/internal/config"
	"github.com/Veraticus/expense-tally/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
	logFile io.Closer
	rootCmd = &cobra.Command{
		Use:   "tally",
		Short: "Record personal expenses and see where the money goes",
		Long: `tally: a small form for recording personal expenses.

Enter a description, an amount and a category; the list and running total
update as you go, and a per-category summary is one keystroke away.
Nothing is saved once the form is closed.`,
		PersistentPreRunE: initConfig,
		RunE:              runForm,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/tally/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().String("preset", "extended", "category preset (standard, extended)")
	rootCmd.PersistentFlags().String("currency", "USD", "ISO 4217 currency code used for display")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag(config.KeyCategoryPreset, rootCmd.PersistentFlags().Lookup("preset"))
	_ = viper.BindPFlag(config.KeyCurrency, rootCmd.PersistentFlags().Lookup("currency"))

	// Add commands
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx := interrupts.HandleInterrupts(context.Background())

	err := rootCmd.ExecuteContext(ctx)
	interrupts.Stop() // Always cleanup

	if interrupts.WasInterrupted() {
		common.LogInfo("interrupted, shutting down", nil)
		closeLogFile()
		os.Exit(130)
	}

	if err != nil {
		printError(os.Stderr, err)
		closeLogFile()
		os.Exit(1)
	}
	closeLogFile()
}

// printError reports err to the user. The full chain goes to the debug log.
func printError(w io.Writer, err error) {
	common.LogDebug("command failed", common.Fields{"error": err.Error()})
	fmt.Fprintln(w, cli.FormatError(common.UserMessage(err)))
}

func closeLogFile() {
	if logFile == nil {
		return
	}
	if err := logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close log file: %v\n", err)
	}
	logFile = nil
}

// bindEnv maps config keys to TALLY_ variables, e.g. display.currency to
// TALLY_DISPLAY_CURRENCY.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("TALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/tally", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	bindEnv(viper.GetViper())

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	closeLogFile()
	f, err := setupLogging(app.Logging, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	if f != nil {
		logFile = f
	}

	return nil
}

// setupLogging routes logs to the configured file, or to fallback. The
// returned file is nil when no file is configured; the caller closes it.
func setupLogging(cfg config.Logging, fallback io.Writer) (*os.File, error) {
	if cfg.File == "" {
		return nil, common.SetupLogger(cfg.Level, cfg.Format, fallback)
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := common.SetupLogger(cfg.Level, cfg.Format, f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// runForm opens the interactive expense form.
func runForm(cmd *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	// The form owns the terminal; keep stray log lines off the screen.
	if app.Logging.File == "" {
		if _, err := setupLogging(app.Logging, io.Discard); err != nil {
			return err
		}
	}

	common.LogInfo("opening expense form", common.Fields{
		"categories":   app.Categories.Len(),
		"clear_fields": app.ClearFields,
	})

	return tui.Run(cmd.Context(),
		tui.WithLedger(newLedger(app)),
		tui.WithFormatter(newFormatter(app)),
		tui.WithClearFields(app.ClearFields),
	)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tally version %s\n", version)
		},
	}
}
