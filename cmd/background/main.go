package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"video_tagger/internal/cache"
	"video_tagger/internal/config"
	"video_tagger/internal/logging"
	"video_tagger/internal/messaging"
	"video_tagger/internal/remote"
	"video_tagger/internal/service"
	"video_tagger/internal/source/bilibili"
	"video_tagger/internal/storage"
	"video_tagger/internal/transport/amqprpc"
	"video_tagger/internal/transport/httpapi"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := logging.New("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = logging.New(cfg.LogLevel)

	if !cfg.RabbitMQ.Enabled && !cfg.HTTP.Enabled {
		logger.Error("no transport enabled; enable rabbitmq or http")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	credentials, closeStore, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to open credential store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	source := bilibili.New(bilibili.Config{
		BaseURL: cfg.Bilibili.BaseURL,
		Timeout: cfg.Bilibili.Timeout,
	}, logger)

	api := remote.New(remote.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, logger)

	videos := cache.NewVideoInfo(source, logger)
	syncService := service.NewSyncService(videos, api, credentials, logger)
	dispatcher := messaging.NewDispatcher(syncService, logger)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.RabbitMQ.Enabled {
		server, err := amqprpc.NewServer(amqprpc.Config{
			URL:       cfg.RabbitMQ.URL,
			QueueName: cfg.RabbitMQ.QueueName,
			Prefetch:  cfg.RabbitMQ.Prefetch,
		}, dispatcher, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer server.Close()

		g.Go(func() error {
			if err := server.Serve(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if cfg.HTTP.Enabled {
		srv := &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           httpapi.NewRouter(dispatcher, logger),
			ReadHeaderTimeout: 10 * time.Second,
		}

		g.Go(func() error {
			logger.Info("http server listening", "addr", cfg.HTTP.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	logger.Info("starting background",
		"storage", cfg.Storage.Driver,
		"rabbitmq", cfg.RabbitMQ.Enabled,
		"http", cfg.HTTP.Enabled,
	)

	if err := g.Wait(); err != nil {
		logger.Error("background stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("background stopped", "cached_videos", videos.Len())
}
