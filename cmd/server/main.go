package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"parkingslots/internal/api"
	"parkingslots/internal/config"
	"parkingslots/internal/logger"
	"parkingslots/internal/metrics"
	"parkingslots/internal/repository"
	"parkingslots/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New("server", cfg.AppEnv)
	if err := cfg.Validate(); err != nil {
		log.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Errorf("Failed to open %s storage: %v", cfg.StorageBackend, err)
		os.Exit(1)
	}
	defer closeRepo()

	registry := prometheus.NewRegistry()
	sink, err := metrics.NewPromSink(registry)
	if err != nil {
		log.Errorf("Failed to register metrics: %v", err)
		os.Exit(1)
	}

	sender := service.NewSenderService(
		service.SendGridConfig{APIKey: cfg.SendGridAPIKey, FromEmail: cfg.SendGridFromEmail, FromName: cfg.SendGridFromName},
		service.TwilioConfig{AccountSID: cfg.TwilioAccountSID, AuthToken: cfg.TwilioAuthToken, FromNumber: cfg.TwilioFromNumber},
		logger.New("sender", cfg.AppEnv),
	)
	slotSvc := service.NewSlotService(repo, sender, sink, logger.New("slots", cfg.AppEnv))
	slotSvc.Init(ctx)

	if !cfg.AdminEnabled() {
		log.Warnf("ADMIN_EMAIL, ADMIN_PASSWORD_HASH or JWT_SECRET not set, slot registration is disabled")
	}
	adminSvc := service.NewAdminAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)

	jobs := service.NewJobService(slotSvc, sink, logger.New("jobs", cfg.AppEnv))
	c := cron.New()
	if _, err := jobs.Schedule(c, cfg.StatsCron); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	c.Start()
	defer c.Stop()

	r := api.NewRouter(slotSvc, adminSvc, []byte(cfg.JWTSecret), registry)
	handler := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(handlers.RecoveryHandler()(r))
	handler = handlers.CombinedLoggingHandler(os.Stdout, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Graceful shutdown failed: %v", err)
		}
	}()

	log.Infof("Server running on port %s (storage: %s)", cfg.Port, cfg.StorageBackend)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("Server stopped: %v", err)
		os.Exit(1)
	}
	sender.Wait()
}

func openRepository(ctx context.Context, cfg config.Config) (repository.SlotRepository, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		return repository.NewFileRepository(cfg.StorageFile), func() {}, nil
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		repo := repository.NewPostgresRepository(db, cfg.StorageKey)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, func() { db.Close() }, nil
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, err
		}
		return repository.NewRedisRepository(rdb, cfg.StorageKey), func() { rdb.Close() }, nil
	default:
		return repository.NewMemoryRepository(), func() {}, nil
	}
}
