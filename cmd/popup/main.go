package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"video_tagger/internal/agent"
	"video_tagger/internal/agent/popup"
	"video_tagger/internal/config"
	"video_tagger/internal/logging"
	"video_tagger/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	tabURL := flag.String("tab-url", "", "URL of the active tab")
	tag := flag.String("tag", "", "tag the active tab's video with this label")
	saveToken := flag.String("save-token", "", "store a new API token")
	flag.Parse()

	logger := logging.New("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = logging.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Agent.RequestTimeout)
	defer cancel()

	credentials, closeStore, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to open credential store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	var messenger agent.Messenger
	if *tag != "" {
		conn, err := agent.Dial(ctx, cfg, logger)
		if err != nil {
			logger.Error("failed to reach background", "transport", cfg.Agent.Transport, "error", err)
			os.Exit(1)
		}
		defer conn.Close()
		messenger = conn
	}

	p := popup.New(credentials, messenger, *tabURL, logger)
	if err := p.Open(ctx); err != nil {
		logger.Error("failed to open popup", "error", err)
		os.Exit(1)
	}

	if *saveToken != "" {
		if err := p.SaveToken(ctx, *saveToken); err != nil {
			logger.Error("failed to save token", "error", err)
			os.Exit(1)
		}
	}

	if *tag != "" {
		closeIn, err := p.Tag(ctx, *tag)
		fmt.Println(p.Status())
		if err != nil {
			os.Exit(1)
		}
		time.Sleep(closeIn)
		return
	}

	fmt.Println(p.Status())
}
