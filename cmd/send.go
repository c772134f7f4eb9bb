package main

import (
	"os"

	"ac_learner/internal/acconfig"
	"ac_learner/internal/logger"
	"ac_learner/internal/repository"
	"ac_learner/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var sendParams service.SendParams

var sendCmd = &cobra.Command{
	Use:     "send",
	Short:   "Transmit one learned code",
	Example: "  aclearn send --name bedroom --mode cool --fan auto --swing stop --temp 24",
	Args:    cobra.NoArgs,
	RunE:    runSend,
}

func init() {
	f := sendCmd.Flags()
	f.StringVar(&sendParams.Config, "name", "", "config name")
	f.StringVar(&sendParams.OperationMode, "mode", "", "operation mode")
	f.StringVar(&sendParams.FanMode, "fan", "", "fan mode")
	f.StringVar(&sendParams.SwingMode, "swing", "", "swing mode")
	f.StringVar(&sendParams.Temperature, "temp", "", "temperature label, e.g. 24")
	for _, name := range []string{"name", "mode", "fan", "swing", "temp"} {
		_ = sendCmd.MarkFlagRequired(name)
	}
}

func runSend(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, os.Stderr)

	catalog, err := acconfig.NewStore(cfg.Configs.Path).Load()
	if err != nil {
		return err
	}
	conn, err := openDB(cfg.DB, log)
	if err != nil {
		return err
	}
	defer closeDB(conn, log)

	ctx := cmd.Context()
	device, err := connectDevice(ctx, cfg.Device, log)
	if err != nil {
		return err
	}
	defer device.Close()

	services := service.NewService(repository.NewRepository(conn), service.Deps{
		Configs: catalog,
		Device:  device,
		Auth:    service.AuthConfig{SigningKey: cfg.Auth.SigningKey, TokenTTL: cfg.Auth.TokenTTL},
		Log:     log,
	})
	st, err := services.Replay.Send(ctx, sendParams)
	if err != nil {
		return err
	}
	_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Sent %s %s/%s/%s/%s via %s\n",
		st.Config, st.OperationMode, st.FanMode, st.SwingMode, st.Temperature, st.Device)
	return nil
}
