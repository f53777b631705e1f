package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"khabar/config"
	"khabar/di"
	"khabar/driver/news_db"
	"khabar/job"
	"khabar/rest"
	"khabar/utils/logger"
)

func main() {
	log := logger.InitLogger()
	log.Info("starting server")

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := news_db.InitPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	scheduler := job.NewJobScheduler()
	if cfg.GNewsEnabled() {
		scheduler.Add(job.Job{
			Name:     "news-ingestion",
			Interval: cfg.GNews.JobInterval,
			Timeout:  cfg.GNews.JobTimeout,
			Fn: func(ctx context.Context) error {
				container.IngestNewsUsecase.IngestAll(ctx)
				return nil
			},
		})
	} else {
		log.Info("news ingestion disabled, no API key configured")
	}
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}

	scheduler.Shutdown()
	log.Info("server stopped")
}
