package main

import (
	"context"
	"errors"
	"time"

	_ "ac_learner/docs"
	"ac_learner/internal/acconfig"
	"ac_learner/internal/broadlink"
	"ac_learner/internal/handlers"
	"ac_learner/internal/logger"
	"ac_learner/internal/repository"
	"ac_learner/internal/server"
	"ac_learner/internal/service"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the replay API over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	log := logger.Get(cfg.Log.Level)

	// read-only: the API never writes the config file
	catalog, err := acconfig.NewStore(cfg.Configs.Path).Load()
	if err != nil {
		log.Errorw("config_load_failed", "path", cfg.Configs.Path, "err", err)
		return err
	}

	conn, err := openDB(cfg.DB, log)
	if err != nil {
		return err
	}
	defer closeDB(conn, log)

	ctx := cmd.Context()
	var tx service.Transmitter
	device, err := connectDevice(ctx, cfg.Device, log)
	switch {
	case err == nil:
		tx = device
		defer device.Close()
	case errors.Is(err, broadlink.ErrNoDevice):
		log.Warnw("no IR device found; send requests will fail until restart", "host", cfg.Device.Host)
	default:
		return err
	}

	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Deps{
		Configs: catalog,
		Device:  tx,
		Auth:    service.AuthConfig{SigningKey: cfg.Auth.SigningKey, TokenTTL: cfg.Auth.TokenTTL},
		Log:     log,
	})
	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	errc := make(chan error, 1)
	go func() {
		log.Infow("http_listening", "port", cfg.Port, "configs", catalog.Len())
		errc <- srv.Run(cfg.Port, apiHandler.InitRoutes())
	}()

	select {
	case err := <-errc:
		if err != nil {
			log.Errorw("error starting server", "err", err)
		}
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return err
	}
	return <-errc
}
