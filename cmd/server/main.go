package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/srecha/invoice-core/internal/artefact"
	"github.com/srecha/invoice-core/internal/commands"
	"github.com/srecha/invoice-core/internal/config"
	"github.com/srecha/invoice-core/internal/logger"
	"github.com/srecha/invoice-core/internal/server"
	"github.com/srecha/invoice-core/internal/store"
)

func main() {
	// Missing .env is fine; env vars or defaults take over.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
		ServiceName: "srecha-invoice",
	}); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("starting srecha-invoice core",
		zap.String("environment", cfg.Env),
		zap.String("port", cfg.Port),
		zap.String("data_dir", cfg.DataDir))

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatal("failed to open store", zap.Error(err))
	}
	defer st.Close()
	log.Info("database ready", zap.String("path", st.Path()))

	files := artefact.NewStore(cfg.DataDir)
	dispatcher := commands.NewDispatcher(st, files, log)

	e := server.New(dispatcher).Router()

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
