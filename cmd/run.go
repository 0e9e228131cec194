package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/assessiz/internal/app"
	"github.com/abhisek/assessiz/internal/metrics"
	"github.com/abhisek/assessiz/internal/session"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	b, err := loadBank(cfg, logger)
	if err != nil {
		return err
	}

	opts := app.Options{Bank: b, Logger: logger}
	st, err := openStore(cfg)
	if err != nil {
		logger.Error("history unavailable", zap.Error(err))
		fmt.Fprintln(os.Stderr, "History unavailable:", err)
		fmt.Fprintln(os.Stderr, "Attempts will not be saved.")
	} else {
		defer st.Close()
		opts.Repo = st.AttemptRepo()
	}

	m := metrics.New()
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if cfg.MetricsAddr != "" {
		// Serve logs its own failures.
		go func() { _ = m.Serve(ctx, cfg.MetricsAddr, logger) }()
	}

	opts.Runner = session.NewRunner(b,
		session.WithTimeLimit(cfg.TimeLimit),
		session.WithLogger(logger),
		session.WithObserver(m),
	)

	logger.Info("starting",
		zap.String("version", version),
		zap.Int("assessments", len(b.List())),
		zap.Int("time_limit", cfg.TimeLimit))
	return app.Run(opts)
}
