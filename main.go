package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/config"
	_ "bakerysite/api-gateway/docs"
	"bakerysite/api-gateway/handlers"
	"bakerysite/api-gateway/internal/catalog"
	"bakerysite/api-gateway/internal/store"
	"bakerysite/api-gateway/internal/store/memstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger := config.NewLogger(cfg.LogLevel)

	contentStore, err := newContentStore(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize content store")
	}

	cat := catalog.New(contentStore, logger, catalog.Options{
		Buckets: catalog.Buckets{
			CVs:            cfg.CVBucket,
			ProductImages:  cfg.ProductImageBucket,
			HeroImages:     cfg.HeroImageBucket,
			CarouselImages: cfg.CarouselImageBucket,
		},
		ReorderWorkers: cfg.ReorderWorkers,
	})
	if !cat.Probe.CheckConnection(context.Background()) {
		logger.Warn("Content store not reachable at startup; serving default records until it is")
	}

	app := handlers.NewRouter(handlers.NewApplicationHandler(cat, logger, cfg))

	go func() {
		logger.WithFields(logrus.Fields{"port": cfg.Port, "driver": cfg.StoreDriver}).Info("Starting API Gateway")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.WithError(err).Fatal("Server stopped")
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down API Gateway...")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		logger.WithError(err).Error("Shutdown did not complete cleanly")
	}
}

func newContentStore(cfg *config.Config, logger *logrus.Logger) (store.ContentStore, error) {
	if cfg.StoreDriver == config.DriverMemory {
		logger.Warn("Using the in-memory content store; data is lost on restart")
		return memstore.New(), nil
	}
	client, err := config.NewSupabaseClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	return store.NewSupabase(client, logger), nil
}
