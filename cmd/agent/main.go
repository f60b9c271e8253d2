package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"video_tagger/internal/agent"
	"video_tagger/internal/agent/page"
	"video_tagger/internal/config"
	"video_tagger/internal/logging"
	"video_tagger/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	startURL := flag.String("url", "", "initial page location")
	duration := flag.Float64("duration", 0, "local player duration in seconds")
	flag.Parse()

	logger := logging.New("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = logging.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conn, err := agent.Dial(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to reach background", "transport", cfg.Agent.Transport, "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	term := newTerminal(os.Stdout, *startURL, *duration)
	pageAgent := page.New(term, term, conn, term, page.Config{
		MountInterval:  cfg.Agent.MountInterval,
		MountAttempts:  cfg.Agent.MountAttempts,
		RequestTimeout: cfg.Agent.RequestTimeout,
	}, logger)

	if cfg.Agent.SyncInterval > 0 {
		sched := scheduler.NewScheduler(pageAgent, cfg.Agent.SyncInterval, cfg.Agent.RequestTimeout, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	changes := make(chan struct{})
	go func() {
		defer close(changes)
		if err := term.readCommands(ctx, os.Stdin, changes); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("reading commands failed", "error", err)
		}
	}()

	logger.Info("starting page agent",
		"url", *startURL,
		"transport", cfg.Agent.Transport,
		"sync_interval", cfg.Agent.SyncInterval,
	)

	if err := pageAgent.Run(ctx, changes); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("page agent error", "error", err)
		os.Exit(1)
	}
}
