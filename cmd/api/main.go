package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petshop-console/internal/audit"
	"github.com/BruksfildServices01/petshop-console/internal/config"
	"github.com/BruksfildServices01/petshop-console/internal/console"
	dbpkg "github.com/BruksfildServices01/petshop-console/internal/db"
	"github.com/BruksfildServices01/petshop-console/internal/export"
	"github.com/BruksfildServices01/petshop-console/internal/infra/cache"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
	"github.com/BruksfildServices01/petshop-console/internal/infra/repository"
	"github.com/BruksfildServices01/petshop-console/internal/logger"
	"github.com/BruksfildServices01/petshop-console/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.ScheduleLocation()
	if err != nil {
		return err
	}

	// ======================================================
	// BACKEND REST
	// ======================================================
	api, err := petshopapi.New(petshopapi.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Logger:  lg.Named("petshopapi"),
	})
	if err != nil {
		return err
	}

	// ======================================================
	// CACHE (opcional)
	// ======================================================
	var refCache cache.Cache
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedis(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return err
		}
		defer rc.Close()
		refCache = rc
		lg.Info("reference cache on redis", zap.String("addr", cfg.RedisAddr))
	} else if cfg.ReferenceCacheTTL > 0 {
		refCache = cache.NewMemory()
	}

	repo := repository.NewAppointmentAPIRepository(api, refCache, cfg.ReferenceCacheTTL, lg)

	// ======================================================
	// AUDIT
	// ======================================================
	var (
		sink audit.Sink = audit.NewZapSink(lg.Named("audit"))
		db   *gorm.DB
	)
	if cfg.DBUrl != "" {
		db, err = dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		sink = audit.New(db)
	}
	auditDispatcher := audit.NewDispatcher(sink, lg)
	defer auditDispatcher.Close()

	// ======================================================
	// EXPORT (opcional)
	// ======================================================
	var uploader export.Uploader
	if cfg.ExportBucket != "" {
		up, err := export.NewS3Uploader(export.S3Options{
			Bucket:          cfg.ExportBucket,
			Region:          cfg.ExportRegion,
			Endpoint:        cfg.ExportEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		})
		if err != nil {
			return err
		}
		uploader = up
	}

	// ======================================================
	// SESSIONS
	// ======================================================
	registry := console.NewRegistry(cfg.SessionTTL, lg.Named("console"))
	go registry.Run(ctx, time.Minute)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	routes.RegisterRoutes(r, routes.Deps{
		API:           api,
		Repo:          repo,
		Audit:         auditDispatcher,
		Uploader:      uploader,
		Registry:      registry,
		DB:            db,
		References:    repo,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		CORSOrigins:   cfg.CORSOrigins(),
		Location:      loc,
		Logger:        lg,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("server running", zap.String("addr", cfg.Addr()), zap.String("backend", cfg.APIBaseURL))
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

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
