package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/aigua/internal/logging"
	"github.com/abhisek/aigua/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve learner sessions over an HTTP JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides AIGUA_HTTP_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.HTTPAddr = addr
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	gw, err := buildGateway(ctx, cmd, st.EventRepo(), logger)
	if err != nil {
		return err
	}

	srv := server.New(cfg.HTTPAddr, server.Deps{
		Gateway:   gw,
		EventRepo: st.EventRepo(),
		DB:        st.DB(),
	}, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return srv.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
