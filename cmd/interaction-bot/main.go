// Command interaction-bot runs the template Discord interaction bot.
//
// Usage:
//
//	export BOT_TOKEN="your-bot-token"
//	interaction-bot run --config config.yaml
//	interaction-bot commands sync
//	interaction-bot commands clear
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oklahomer/go-sarah-interaction/internal/app"
)

var (
	configFiles []string
	envFile     string
)

var rootCmd = &cobra.Command{
	Use:           "interaction-bot",
	Short:         "A Discord bot that answers slash commands, buttons and modals",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBot,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and handle interactions until interrupted",
	RunE:  runBot,
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Manage the application commands registered with Discord",
}

var commandsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Overwrite the registered application commands with the bot's commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := setup()
		if err != nil {
			return err
		}
		return app.SyncCommands(config, logger)
	},
}

var commandsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all registered application commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := setup()
		if err != nil {
			return err
		}
		return app.ClearCommands(config, logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&configFiles, "config", "c", nil, "Comma separated YAML configuration files, later files override earlier ones")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "File to load environment variables from")

	commandsCmd.AddCommand(commandsSyncCmd)
	commandsCmd.AddCommand(commandsClearCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(commandsCmd)
}

func setup() (*app.Configuration, *slog.Logger, error) {
	config, err := app.LoadConfiguration(configFiles, envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := app.NewLogger(os.Stderr, config.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	app.SetupLogging(logger)

	return config, logger, nil
}

func runBot(cmd *cobra.Command, args []string) error {
	config, logger, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, config, logger); err != nil {
		return err
	}

	logger.Info("shut down gracefully")
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
