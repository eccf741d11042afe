package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sitekit/pkg/config"
	"github.com/dmitrymomot/sitekit/pkg/cookie"
	"github.com/dmitrymomot/sitekit/pkg/httpserver"
	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/redis"
)

func main() {
	var cfg config.App
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithLevel(cfg.LogLevel),
		logger.WithContextExtractors(
			requestIDExtractor(),
			logger.DeviceExtractor(),
			logger.PreferenceExtractor(),
		),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("sitekit stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.App, log *slog.Logger) error {
	if err := cfg.Site.Validate(); err != nil {
		return err
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return err
	}

	classifier, err := cfg.Site.Classifier()
	if err != nil {
		return err
	}

	var (
		client goredis.UniversalClient
		probes []func(context.Context) error
	)
	if cfg.Redis.Enabled() {
		rdb, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn("failed to close redis client", logger.Error(err))
			}
		}()
		client = rdb
		probes = append(probes, redis.Healthcheck(rdb))
	} else if cfg.Site.PreferenceStore == config.StoreRedis {
		return errors.Join(config.ErrRedisRequired, redis.ErrEmptyConnectionURL)
	}

	sw, err := cfg.Site.Switcher(cookies, client, log)
	if err != nil {
		return err
	}

	router := newRouter(routerDeps{
		log:        log,
		classifier: classifier,
		switcher:   sw,
		switchOpts: cfg.Site.MiddlewareOptions(),
		probes:     probes,
	})

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}

func requestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := middleware.GetReqID(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}
}
