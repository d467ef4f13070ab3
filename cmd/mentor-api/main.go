package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/mentor-hub-api/api/swagger"
	"github.com/noah-isme/mentor-hub-api/internal/handler"
	"github.com/noah-isme/mentor-hub-api/internal/repository"
	"github.com/noah-isme/mentor-hub-api/internal/scheduler"
	"github.com/noah-isme/mentor-hub-api/internal/service"
	"github.com/noah-isme/mentor-hub-api/pkg/cache"
	"github.com/noah-isme/mentor-hub-api/pkg/config"
	"github.com/noah-isme/mentor-hub-api/pkg/jobs"
	"github.com/noah-isme/mentor-hub-api/pkg/logger"
)

// @title Mentor Hub API
// @version 1.0.0
// @description Mentor discovery, learning paths and learner settings
// @BasePath /
// @schemes http

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	metrics := service.NewMetricsService()
	catalog := repository.NewCatalogRepository(logr)
	validate := validator.New()

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			redisClient = client
			defer redisClient.Close()
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, "mentorhub", logr)
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.MentorTTL, logr, redisClient != nil)

	inbox := service.NewNotificationService(logr)
	settings := service.NewSettingsService(inbox, validate, logr)

	connections := service.NewConnectionService(catalog, inbox, validate, metrics, logr)
	queue := jobs.New("connections", connections.Deliver, jobs.Config[string]{
		Workers:    cfg.Connections.Workers,
		MaxRetries: cfg.Connections.Retries,
		OnFailure:  connections.Fail,
		Logger:     logr,
	})
	queue.Start(ctx)
	defer queue.Stop()
	connections.Bind(queue)

	search := service.NewSearchService(service.SearchServiceConfig{
		Window:     cfg.Search.DebounceWindow,
		SessionTTL: cfg.Search.SessionTTL,
	}, metrics, logr)
	defer search.Shutdown()

	sched := scheduler.New(scheduler.Params{
		Paths:            catalog,
		Preferences:      settings,
		Inbox:            inbox,
		Sessions:         search,
		ReminderSpec:     cfg.Reminders.Schedule,
		RemindersEnabled: cfg.Reminders.Enabled,
		Logger:           logr,
	})
	if err := sched.Start(ctx); err != nil {
		return err
	}
	defer sched.Stop()

	router := handler.NewRouter(handler.RouterConfig{
		Env:            cfg.Env,
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logr,
		Metrics:        metrics,
	}, handler.Handlers{
		Mentors:       handler.NewMentorHandler(service.NewMentorService(catalog, cacheSvc, metrics, cfg.Cache.MentorTTL, logr), connections),
		LearningPaths: handler.NewLearningPathHandler(service.NewLearningPathService(catalog, logr)),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(service.DashboardServiceParams{
			Repo:   catalog,
			Cache:  cacheSvc,
			Logger: logr,
			Config: service.DashboardServiceConfig{CacheTTL: cfg.Cache.DashboardTTL},
		})),
		Search:        handler.NewSearchHandler(search),
		Settings:      handler.NewSettingsHandler(settings),
		Notifications: handler.NewNotificationHandler(inbox),
		Metrics: handler.NewMetricsHandler(metrics, map[string]handler.ReadinessCheck{
			"redis": func(ctx context.Context) error { return cache.Ping(ctx, redisClient) },
		}),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
