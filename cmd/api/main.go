package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sunshare/internal/config"
	"sunshare/internal/logger"
	"sunshare/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLog := logger.New(logger.Config{
		Level:    logger.ParseLevel(cfg.Log.Level),
		IsJSON:   cfg.Log.Format == "json",
		UseColor: true,
	}).With("service_name", "sunshare")

	srv := server.NewServer(context.Background(), cfg, appLog)

	go func() {
		appLog.Info("SunShare server listening", "addr", srv.HTTP.Addr, "backend", srv.Backend)
		if err := srv.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down server gracefully ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("Server Shutdown", "error", err)
	}
	appLog.Info("Server exiting")
}
