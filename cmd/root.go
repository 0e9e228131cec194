package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/assessiz/internal/bank"
	"github.com/abhisek/assessiz/internal/config"
	"github.com/abhisek/assessiz/internal/logging"
	"github.com/abhisek/assessiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "assessiz",
	Short: "Timed assessments in the terminal",
	Long:  "Assessiz runs timed cognitive, personality, skills and aptitude assessments and keeps a history of your scores.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides ASSESSIZ_DB env var)")
	pf.String("bank-dir", "", "Directory of extra question bank files")
	pf.String("config", "", "Config file (default $XDG_CONFIG_HOME/assessiz/config.yaml)")
	pf.Int("time-limit", config.DefaultTimeLimit, "Session time limit in seconds")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Log file (default $XDG_STATE_HOME/assessiz/assessiz.log)")
	pf.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings with the command's flags taking priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{
		ConfigFile: cfgFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path from config (--db flag, then
// ASSESSIZ_DB), then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	path := cfg.LogFile
	if path == "" {
		p, err := logging.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: path})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}

// loadBank layers bank files from the configured directory over the
// built-in assessments.
func loadBank(cfg *config.Config, logger *zap.Logger) (*bank.Bank, error) {
	extra, err := bank.LoadDir(cfg.BankDir)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	if len(extra) > 0 {
		logger.Info("bank overrides loaded",
			zap.String("dir", cfg.BankDir),
			zap.Int("assessments", len(extra)))
	}
	return bank.Default().With(extra), nil
}

// openStore opens the attempt history database.
func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
