package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"wastedesk/internal/api"
	"wastedesk/internal/config"
	"wastedesk/internal/console"
	"wastedesk/internal/credstore"
	"wastedesk/internal/dashboard"
	"wastedesk/internal/session"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration; without a config file the defaults apply.
	cfgPath := os.Getenv("WASTEDESK_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Fatal("Failed to load config", zap.Error(err))
		}
		cfg = config.Default()
	}

	creds := credstore.NewStore(cfg.Credentials.File)
	apiClient := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, creds, logger)

	teardown := func() {
		logger.Info("Session state torn down")
	}
	svc := session.NewService(apiClient, creds, teardown, logger)
	sess := session.NewContext(svc, apiClient, logger)
	agg := dashboard.NewAggregator(apiClient, logger)

	log := logrus.New()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := console.New(sess, svc, apiClient, agg, log).Root()
	if err := root.ExecuteContext(ctx); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
