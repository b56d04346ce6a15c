// Package main provides the entry point for the prop parlay server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-parlay/internal/api"
	"github.com/yourusername/prop-parlay/internal/config"
	"github.com/yourusername/prop-parlay/internal/datasource"
	"github.com/yourusername/prop-parlay/internal/engine"
	"github.com/yourusername/prop-parlay/internal/health"
	"github.com/yourusername/prop-parlay/internal/logger"
	"github.com/yourusername/prop-parlay/internal/metrics"
	"github.com/yourusername/prop-parlay/internal/scheduler"
	"github.com/yourusername/prop-parlay/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithDefaults(os.Getenv("PROP_PARLAY_CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	// Validate configuration
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up logging
	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"version":     Version,
	}).Info("Prop Parlay server starting")

	// Initialize metrics registry
	metrics.InitRegistry()

	// Initialize feed client
	feedLogger := log.New(os.Stdout, "stats-feed: ", log.LstdFlags)
	feed, err := datasource.NewFeedSource(cfg, feedLogger)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to create feed source")
	}
	appLog.WithField("base_url", cfg.StatsFeed.BaseURL).Info("Feed client initialized")

	// Initialize grading engine and slate service
	eng := engine.New(appLog)
	slateSvc := service.NewSlateService(feed, eng, cfg.SlateCacheTTL(), cfg.Engine.DefaultStake, appLog)

	// Set up signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start health check server
	var pinger health.FeedPinger
	if p, ok := feed.(health.FeedPinger); ok {
		pinger = p
	}
	healthSrv := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Commit:      GitCommit,
		Port:        fmt.Sprintf("%d", cfg.Health.Port),
		Logger:      appLog,
		Feed:        pinger,
	})
	if err := healthSrv.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}

	// Start the slate refresh scheduler
	if cfg.Scheduler.Enabled {
		sched := scheduler.NewScheduler(slateSvc, appLog)
		if err := sched.ScheduleSlateRefresh(cfg.Scheduler.RefreshSchedule); err != nil {
			appLog.WithError(err).Fatal("Failed to schedule slate refresh")
		}
		if err := sched.Start(); err != nil {
			appLog.WithError(err).Fatal("Failed to start scheduler")
		}
		defer sched.Stop()
		appLog.WithField("schedule", cfg.Scheduler.RefreshSchedule).Info("Slate refresh scheduler started")
	} else {
		appLog.Info("Scheduler disabled; slates graded on demand only")
	}

	// Start the API server
	handler := api.NewSlateHandler(slateSvc, cfg.Engine.MaxStake, appLog)
	router := api.NewRouter(handler, metrics.Handler(), cfg.API, cfg.Metrics)
	srv := api.NewServer(cfg, router, appLog)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()
	healthSrv.SetReady(true)

	appLog.WithFields(logrus.Fields{
		"api_port":    cfg.API.Port,
		"health_port": cfg.Health.Port,
		"metrics":     cfg.Metrics.Enabled,
	}).Info("Prop Parlay server running")

	// Wait for shutdown signal or server failure
	select {
	case err := <-serverErrors:
		appLog.WithError(err).Fatal("API server failed")

	case sig := <-sigChan:
		appLog.WithField("signal", sig).Info("Shutdown signal received")
		healthSrv.SetReady(false)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.API.ShutdownGraceSeconds)*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLog.WithError(err).Error("Graceful shutdown failed")
		}
	}

	appLog.Info("Prop Parlay server shut down successfully")
}
