// Package main is the entry point for the kaapav-bot HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/ai"
	"github.com/kaapav/kaapav-bot/internal/bot"
	"github.com/kaapav/kaapav-bot/internal/config"
	"github.com/kaapav/kaapav-bot/internal/handler"
	"github.com/kaapav/kaapav-bot/internal/infrastructure/migrate"
	"github.com/kaapav/kaapav-bot/internal/kv"
	"github.com/kaapav/kaapav-bot/internal/logger"
	"github.com/kaapav/kaapav-bot/internal/messenger"
	"github.com/kaapav/kaapav-bot/internal/middleware"
	"github.com/kaapav/kaapav-bot/internal/payment"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/service"
	"github.com/kaapav/kaapav-bot/internal/shipping"
	"github.com/kaapav/kaapav-bot/internal/telemetry"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
	"github.com/kaapav/kaapav-bot/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Database.AutoMigrate {
		runner := migrate.NewRunner(migrate.Config{
			DatabaseURL:    cfg.Database.GetURL(),
			MigrationsPath: cfg.Database.MigrationsPath,
		}, log)
		if err := runner.Up(); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis being down degrades rate limiting and caching but must not keep
	// the webhook from answering.
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unavailable at startup", zap.Error(err))
	}
	store := kv.New(redisClient, cfg.Redis.KeyPrefix, log)

	repo := repository.NewRepository(db)

	queue := telemetry.NewQueue(cfg.Telemetry.QueueSize, cfg.Telemetry.Workers, time.Duration(cfg.Telemetry.Timeout)*time.Second, log)
	queue.Start()

	waClient := whatsapp.NewClient(cfg.WhatsApp, log)
	if !waClient.Configured() {
		log.Warn("WhatsApp credentials missing, outbound messages will fail")
	}
	gateway := messenger.New(waClient, repo, queue, telemetry.Sinks(cfg.Telemetry, log), log)

	payments := payment.NewClient(cfg.Razorpay, log)
	courier := shipping.NewClient(cfg.Shiprocket, log)
	responder := ai.NewResponder(cfg.OpenAI, cfg.Shop.Name, log)

	chatbot := bot.New(bot.Deps{
		Repo:     repo,
		Gateway:  gateway,
		KV:       store,
		AI:       responder,
		Payments: payments,
		Shipping: courier,
		Queue:    queue,
		Shop:     cfg.Shop,
		Logger:   log,
	})

	pool := worker.NewPool(cfg.Worker.Workers, cfg.Worker.QueueSize, log)
	// Queued webhooks must survive the signal so shutdown can drain them.
	pool.Start(context.Background())

	svc := service.NewService(cfg, service.Deps{
		Repo:     repo,
		Gateway:  gateway,
		Redis:    store,
		Sessions: store,
		Payments: payments,
		Shipping: courier,
		Breakers: []service.BreakerReporter{
			waClient.Breaker(),
			payments.Breaker(),
			courier.Breaker(),
		},
		Workers:   pool.Stats,
		Telemetry: queue.Stats,
		Logger:    log,
	})

	h := handler.NewHandler(handler.Options{
		Service: svc,
		Webhook: handler.WebhookConfig{
			VerifyToken: cfg.WhatsApp.VerifyToken,
			AppSecret:   cfg.WhatsApp.AppSecret,
		},
		Processor:   chatbot.Dispatcher,
		Pool:        pool,
		ExposeStack: cfg.Server.IsDevelopment(),
		Logger:      log,
	})
	if cfg.WhatsApp.AppSecret == "" {
		log.Warn("WhatsApp app secret not set, webhook signatures are not verified")
	}

	limiter := middleware.NewRateLimiter(store, cfg.Middleware.RateLimit, cfg.Middleware.RateLimitBurst,
		time.Duration(cfg.Middleware.RateWindow)*time.Second, log)
	go limiter.Run(ctx)

	middlewareConfig := &middleware.Config{
		Logger:         log,
		RequestTimeout: time.Duration(cfg.Middleware.RequestTimeout) * time.Second,
		ExposeStack:    cfg.Server.IsDevelopment(),
	}
	if cfg.Middleware.EnableCORS {
		middlewareConfig.CORS = middleware.DefaultCORSConfig(cfg.Middleware.AllowedOrigins...)
	}

	auth := middleware.Auth(cfg.Auth.APITokens, store, log)
	router := setupRouter(h, limiter, auth)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      middleware.Chain(middlewareConfig)(router),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := svc.Scheduler.Start(); err != nil {
		log.Error("Failed to start scheduler on startup", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", srv.Addr), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
	}

	log.Info("Shutting down server...")
	shutdown(svc, srv, pool, queue, log)
	log.Info("Server exited")
}

// shutdown stops intake first, then drains queued work in dependency order.
func shutdown(svc *service.Service, srv *http.Server, pool *worker.Pool, queue *telemetry.Queue, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if svc.Scheduler.IsRunning() {
		if err := svc.Scheduler.Stop(); err != nil {
			log.Error("Failed to stop scheduler", zap.Error(err))
		}
	}

	if err := svc.Broadcast.Wait(ctx); err != nil {
		log.Warn("Broadcasts still sending at shutdown", zap.Error(err))
	}

	pool.Stop(ctx)
	queue.Stop(ctx)
}
