package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	apiHttp "github.com/lovematch/backend/internal/api/http"
	"github.com/lovematch/backend/internal/cache"
	"github.com/lovematch/backend/internal/config"
	"github.com/lovematch/backend/internal/db"
	"github.com/lovematch/backend/internal/queue/asynqserver"
	"github.com/lovematch/backend/internal/queue/client"
	"github.com/lovematch/backend/internal/repository"
	"github.com/lovematch/backend/internal/server"
	"github.com/lovematch/backend/internal/service"
	"github.com/lovematch/backend/internal/worker"
	"github.com/lovematch/backend/pkg/auth"
	"github.com/lovematch/backend/pkg/email/smtp"
	"github.com/lovematch/backend/pkg/hash"
	"github.com/lovematch/backend/pkg/logger"
	"github.com/lovematch/backend/pkg/otp"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env)

	appLogger.Infow("starting lovematch backend", "env", cfg.Env)
	appLogger.Debugw("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Errorw("mysql connect problem", "error", err)
		os.Exit(1)
	}
	defer func() {
		err = dbMySQL.Close()
		if err != nil {
			appLogger.Errorw("error when closing", "error", err)
		}
	}()
	appLogger.Infow("mysql connection done")

	// Fail fast when redis is unreachable; the janitor queue depends on it.
	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Errorw("redis connect problem", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Errorw("error when closing redis", "error", err)
		}
	}()
	appLogger.Infow("redis connection done")

	hasher := hash.NewBcryptHasher(0)

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Errorw("smtp sender creation failed", "error", err)
		return
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Errorw("auth manager creation err", "error", err)
		return
	}

	otpGenerator := otp.NewGOTPGenerator()

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		OtpGenerator: otpGenerator,
		EmailSender:  emailSender,
		Repos:        repos,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// Janitor queue: delayed purge of registrations that never verified
	queueClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	client.SetClient(queueClient)
	defer func() {
		if err := queueClient.Close(); err != nil {
			appLogger.Errorw("error when closing queue client", "error", err)
		}
	}()

	workers := worker.NewWorkers(worker.Deps{Repos: repos})
	asynqSrv, asynqMux := asynqserver.New(cfg.Cache, workers)
	go func() {
		if err := asynqSrv.Run(asynqMux); err != nil {
			appLogger.Errorw("error occurred while running asynq server", "error", err)
		}
	}()

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorw("error occurred while running http server", "error", err)
		}
	}()
	appLogger.Infow("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Errorw("failed to stop server", "error", err)
	}

	asynqSrv.Shutdown()

	appLogger.Infow("app stopped")
}
