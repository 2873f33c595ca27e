package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Annomy111/foerder-finder/internal/buildinfo"
	"github.com/Annomy111/foerder-finder/internal/logging"
	"github.com/Annomy111/foerder-finder/internal/proxy"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	logger := logging.NewDefault(slog.LevelInfo)

	cfg, err := proxy.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	server, err := proxy.NewServer(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info(ctx, "proxy listening", "addr", cfg.ListenAddr, "backend", cfg.BackendURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "shutdown failed", "error", err)
	}
}
