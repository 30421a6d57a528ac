// @title idscan API
// @version 1.0
// @description Identity document analysis gateway backed by Azure Document Intelligence.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"idscan/internal/analyzer/azure"
	"idscan/internal/config"
	"idscan/internal/handler"
	"idscan/internal/router"
	"idscan/internal/service"
	"idscan/internal/storage/local"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Initialize storage
	store, err := local.NewLocalStore(&cfg.Upload)
	if err != nil {
		return fmt.Errorf("failed to initialize upload store: %w", err)
	}

	// Initialize analyzer and services
	analyzerClient := azure.NewClient(&cfg.Analyzer)
	analysisSvc := service.NewAnalysisService(store, analyzerClient, service.AnalysisConfig{
		PollTimeout:    cfg.Analyzer.PollTimeout,
		CleanupOnError: cfg.Upload.CleanupOnError,
	})

	// Initialize handlers
	analyzeH := handler.NewAnalyzeHandler(analysisSvc, cfg.Server.ExposeErrors)
	healthH := handler.NewHealthHandler(store)

	// Setup router
	r := router.Setup(cfg, analyzeH, healthH)

	// No write timeout: a request lasts as long as the analysis takes.
	srv := &http.Server{
		Addr:        cfg.Server.Port,
		Handler:     r,
		ReadTimeout: cfg.Server.ReadTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server starting on %s (model %s)", cfg.Server.Port, azure.ModelID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
