package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"adops/internal/adapter/gitstore"
	httpadapter "adops/internal/adapter/http"
	"adops/internal/adapter/objectstore"
	"adops/internal/adapter/postgres"
	"adops/internal/adapter/redisstore"
	"adops/internal/adapter/token"
	"adops/internal/adapter/usecase"
	"adops/internal/config"
	"adops/internal/core/port"
	"adops/internal/db"
)

// main is the entry point of the adops API. It loads configuration,
// optionally runs database migrations and seeds demo data, connects to
// PostgreSQL, Redis, the trust repository and object storage, then starts
// the HTTP server. On receiving a termination signal it gracefully shuts
// down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", zap.Error(err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", zap.Error(err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", zap.Error(err))
			return
		}
		logger.Info("demo data seeded", zap.Stringer("workspace_id", db.DemoWorkspaceID))
	}

	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", zap.Error(err))
		return
	}
	defer rdb.Close()

	trustStore, err := gitstore.Open(cfg.Trust.RepoDir)
	if err != nil {
		logger.Error("trust repository error", zap.String("dir", cfg.Trust.RepoDir), zap.Error(err))
		return
	}

	// A typed nil would defeat the nil check in the upload usecase.
	var files port.FileStore
	if cfg.Storage.Enabled() {
		store, err := objectstore.NewMinioStore(ctx, cfg.Storage)
		if err != nil {
			logger.Error("object storage error", zap.String("endpoint", cfg.Storage.Endpoint), zap.Error(err))
			return
		}
		files = store
	} else {
		logger.Info("object storage disabled, uploads will not be archived")
	}

	auditSvc := usecase.NewAuditUseCase(postgres.NewAuditRepository(pool), logger)
	services := httpadapter.Services{
		Auth:      usecase.NewAuthUseCase(token.NewJWT(cfg.Auth), redisstore.NewSessionStore(rdb), auditSvc, logger),
		Audit:     auditSvc,
		Campaigns: usecase.NewCampaignUseCase(postgres.NewCampaignRepository(pool)),
		Uploads:   usecase.NewUploadUseCase(postgres.NewUploadRepository(pool), files, auditSvc, cfg.Ingest, logger),
		Posts:     usecase.NewPostUseCase(postgres.NewPostRepository(pool), auditSvc, logger),
		Studio:    usecase.NewStudioUseCase(redisstore.NewPreferenceStore(rdb)),
		Trust:     usecase.NewTrustUseCase(trustStore, auditSvc, logger),
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	handler := httpadapter.NewHandler(services, httpadapter.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RateLimit:      cfg.RateLimit,
		MaxUploadBytes: cfg.Ingest.MaxBytes,
		DB:             sqlDB,
		Redis:          rdb,
	}, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.Uint16("port", cfg.HTTP.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err = <-serverErr:
		logger.Error("server error", zap.Error(err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
		exitCode = 1
		return
	}
	logger.Info("server gracefully stopped")
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(cfg.Log.ZapLevel())
		return zc.Build()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.Log.ZapLevel())
	zc.Encoding = cfg.Log.Encoding()
	if zc.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return zc.Build()
}
