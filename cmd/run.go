package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/aigua/internal/app"
	"github.com/abhisek/aigua/internal/config"
	"github.com/abhisek/aigua/internal/gateway"
	"github.com/abhisek/aigua/internal/llm"
	"github.com/abhisek/aigua/internal/logging"
	"github.com/abhisek/aigua/internal/session"
	"github.com/abhisek/aigua/internal/store"
)

// loadConfig reads the environment and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg, nil
}

// openStore opens the event log at the resolved path.
func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildGateway configures the LLM provider and wraps it in the gateway.
// A selected provider without credentials is an error.
func buildGateway(ctx context.Context, cmd *cobra.Command, eventRepo store.EventRepo, logger *zap.Logger) (*gateway.Gateway, error) {
	var llmCfg llm.Config
	var err error
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		llmCfg, err = llm.ConfigFromEnv()
		if err != nil {
			return nil, err
		}
		llmCfg.Provider = p
		err = llmCfg.Validate()
	} else {
		llmCfg, err = llm.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	provider, err := llm.NewProvider(ctx, llmCfg, eventRepo, logger)
	if err != nil {
		return nil, err
	}
	return gateway.New(provider, gateway.DefaultConfig(), logger)
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.NewForTUI(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	gw, err := buildGateway(ctx, cmd, st.EventRepo(), logger)
	if err != nil {
		return err
	}

	orch := session.New(uuid.NewString(), gw, session.Options{
		EventRepo: st.EventRepo(),
		Logger:    logger,
	})
	return app.Run(ctx, orch, logger)
}
