package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ac_learner/internal/config"

	"github.com/spf13/cobra"
)

var settingsFile string

var rootCmd = &cobra.Command{
	Use:   "aclearn",
	Short: "Learn and replay air-conditioner IR remote codes",
	Long: "aclearn captures the IR codes of an AC remote through a Broadlink RM device,\n" +
		"one per operation mode, fan mode, swing mode and temperature, and stores them\n" +
		"in a JSON config file. Without a subcommand it starts the interactive menu.",
	SilenceUsage: true,
	RunE:         runLearn,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "config", "", "settings file (default configs/config.yml)")
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func loadSettings() (*config.Config, error) {
	cfg, err := config.Load(settingsFile)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return cfg, nil
}
