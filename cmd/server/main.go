package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/stocktrack/internal/config"
	"github.com/mamadbah2/stocktrack/internal/repository/mongodb"
	"github.com/mamadbah2/stocktrack/internal/scheduler"
	"github.com/mamadbah2/stocktrack/internal/server/handlers"
	"github.com/mamadbah2/stocktrack/internal/server/router"
	activitysvc "github.com/mamadbah2/stocktrack/internal/service/activity"
	stocksvc "github.com/mamadbah2/stocktrack/internal/service/stock"
	"github.com/mamadbah2/stocktrack/pkg/clients/webhook"
	"github.com/mamadbah2/stocktrack/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongo"))
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		baseLogger.Fatal("failed to create upload directory", zap.Error(err))
	}

	writer := stocksvc.NewWriter(mongoRepo, cfg.Stock.AtomicCreate, baseLogger.Named("svc.stock.writer"))
	stockSvc := stocksvc.NewService(mongoRepo, mongoRepo, writer, baseLogger.Named("svc.stock"))

	var webhookClient webhook.Client
	if cfg.Activity.WebhookURL != "" {
		webhookClient = webhook.NewClient(cfg.Activity.WebhookURL)
		baseLogger.Info("activity webhook enabled")
	}
	recorder := activitysvc.NewRecorder(mongoRepo, webhookClient, baseLogger.Named("svc.activity"))

	stockHandler := handlers.NewStockHandler(stockSvc, recorder, cfg.Upload.Dir, baseLogger.Named("handlers.stock"))
	engine := router.New(stockHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Upload, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
