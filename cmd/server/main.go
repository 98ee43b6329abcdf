// Home4Paws backend server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/home4paws/home4paws/internal/application/service"
	"github.com/home4paws/home4paws/internal/config"
	"github.com/home4paws/home4paws/internal/infrastructure/crypto"
	"github.com/home4paws/home4paws/internal/infrastructure/monitoring"
	"github.com/home4paws/home4paws/internal/infrastructure/persistence/gormdb"
	"github.com/home4paws/home4paws/internal/infrastructure/ratelimit"
	"github.com/home4paws/home4paws/internal/infrastructure/storage"
	"github.com/home4paws/home4paws/internal/interfaces/http/handlers"
	"github.com/home4paws/home4paws/internal/interfaces/http/router"
	"github.com/home4paws/home4paws/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "home4paws: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := monitoring.NewZapLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := monitoring.NewMetrics(registry)

	db, err := gormdb.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	hasher := crypto.NewPasswordHasher()
	codec := crypto.NewTokenCodec(cfg.JWT.Secret, cfg.JWT.TTL(), log)

	userRepo := gormdb.NewUserRepository(db, log)
	dogRepo := gormdb.NewDogRepository(db, log)
	appRepo := gormdb.NewApplicationRepository(db, log)
	reportRepo := gormdb.NewReportRepository(db, log)
	surrenderRepo := gormdb.NewSurrenderRepository(db, log)
	contactRepo := gormdb.NewContactMessageRepository(db, log)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	err = gormdb.Seed(seedCtx, &cfg.Seed, userRepo, hasher, log)
	cancelSeed()
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	photos, err := storage.NewPhotoStore(&cfg.Uploads, metrics, log)
	if err != nil {
		return fmt.Errorf("init photo store: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	limiter := ratelimit.NewRedisRateLimiter(redisClient, log)

	authSvc := service.NewAuthService(userRepo, hasher, codec, log)
	userSvc := service.NewUserService(userRepo, hasher, log)
	dogSvc := service.NewDogService(dogRepo, cfg.Cache.ListingTTL(), log)
	appSvc := service.NewApplicationService(appRepo, dogRepo, userRepo, log)
	reportSvc := service.NewReportService(reportRepo, userRepo, photos, log)
	surrenderSvc := service.NewSurrenderService(surrenderRepo, userRepo, photos, log)
	contactSvc := service.NewContactService(contactRepo, userRepo, log)

	engine := router.New(router.Deps{
		Config:   cfg,
		Log:      log,
		Metrics:  metrics,
		Registry: registry,
		Codec:    codec,
		Users:    userRepo,
		Limiter:  limiter,

		Auth:        handlers.NewAuthHandler(authSvc, metrics, log),
		User:        handlers.NewUserHandler(userSvc, log),
		Dog:         handlers.NewDogHandler(dogSvc, log),
		Application: handlers.NewApplicationHandler(appSvc, log),
		Report:      handlers.NewReportHandler(reportSvc, log),
		Surrender:   handlers.NewSurrenderHandler(surrenderSvc, log),
		Contact:     handlers.NewContactHandler(contactSvc, log),
		Admin:       handlers.NewAdminHandler(userSvc, log),
		Health:      handlers.NewHealthHandler(db),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gctx, "server listening", logger.Fields{"addr": server.Addr})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info(context.Background(), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		redisClient.Close()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		return nil
	})

	return g.Wait()
}
