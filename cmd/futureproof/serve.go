package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	_ "github.com/futureproof/careerguide/docs"
	"github.com/futureproof/careerguide/internal/api"
	"github.com/futureproof/careerguide/internal/api/handler"
	"github.com/futureproof/careerguide/internal/core/service"
	"github.com/futureproof/careerguide/internal/infrastructure/catalog"
	"github.com/futureproof/careerguide/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server exposing recommendations, roadmaps, progress, portfolio, mentors and the advisory chat.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	log := logger.Get()
	if servePort != "" {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Dependencies ---
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	kv, closeStore, err := openStore(ctx, cfg.Store, logger.Component("store"))
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := closeStore(closeCtx); err != nil {
			log.Error().Err(err).Msg("closing store")
		}
	}()

	chat, err := newChatService(ctx, cfg.Completion, log)
	if err != nil {
		return err
	}

	svcLog := logger.Component("service")
	progress := service.NewProgressService(kv, svcLog)
	e := api.NewRouter(api.Services{
		Sessions:        service.NewSessionService(sessionSecret(cfg, log), cfg.Session.TTL, svcLog),
		Assessments:     service.NewAssessmentService(kv, cfg.Session.TTL, svcLog),
		Recommendations: service.NewRecommendationService(cat, cfg.Recommendation.Latency, svcLog),
		Roadmaps:        service.NewRoadmapService(cat, progress, svcLog),
		Progress:        progress,
		Portfolio:       service.NewPortfolioService(kv, svcLog),
		Dashboard:       service.NewDashboardService(cat, progress),
		Directory:       service.NewDirectoryService(cat, kv, svcLog),
		Chat:            chat,
		Dependencies:    map[string]handler.Pinger{cfg.Store.Backend: kv},
	}, logger.Component("http"))

	// --- Lifecycle ---
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("port", cfg.Port).
			Str("store", cfg.Store.Backend).
			Str("completion", cfg.Completion.Provider).
			Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
