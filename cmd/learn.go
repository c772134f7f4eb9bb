package main

import (
	"database/sql"
	"errors"
	"os"

	"ac_learner/internal/acconfig"
	"ac_learner/internal/config"
	"ac_learner/internal/logger"
	"ac_learner/internal/prompt"
	"ac_learner/internal/repository"
	"ac_learner/internal/repository/db"
	"ac_learner/internal/session"

	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Interactive menu to capture, propagate and save IR codes",
	RunE:  runLearn,
}

func runLearn(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	// menus own stdout
	log := logger.New(cfg.Log.Level, os.Stderr)

	store := acconfig.NewStore(cfg.Configs.Path)
	catalog, err := store.Load()
	if err != nil {
		log.Errorw("config_load_failed", "path", store.Path(), "err", err)
		return err
	}
	log.Infow("configs_loaded", "path", store.Path(), "count", catalog.Len())

	conn, err := openDB(cfg.DB, log)
	if err != nil {
		return err
	}
	defer closeDB(conn, log)
	repos := repository.NewRepository(conn)

	ctx := cmd.Context()
	s := session.New(session.Options{
		Catalog:      catalog,
		Store:        store,
		Prompt:       prompt.NewSurvey(),
		Discover:     sessionDiscover(cfg.Device, log),
		Journal:      repos.EventRepo,
		PollInterval: cfg.Device.PollInterval,
		Out:          cmd.OutOrStdout(),
		Log:          log,
	})
	err = s.Run(ctx)
	if errors.Is(err, prompt.ErrAborted) || (err != nil && ctx.Err() != nil) {
		log.Warnw("session_interrupted", "unsaved", true, "err", err)
		return nil
	}
	return err
}

// openDB opens the sqlite journal, falling back to the default file name.
func openDB(cfg config.DBConfig, log *logger.Logger) (*sql.DB, error) {
	path := cfg.Path
	if path == "" {
		log.Infow("db.path not set in config; using default file", "default", "ac_learner.db")
		path = "ac_learner.db"
	}
	conn, err := db.InitDB(path)
	if err != nil {
		log.Errorw("failed to init sqlite", "path", path, "err", err)
		return nil, err
	}
	return conn, nil
}

func closeDB(conn *sql.DB, log *logger.Logger) {
	if err := conn.Close(); err != nil {
		log.Errorw("failed to close sqlite", "err", err)
	}
}
