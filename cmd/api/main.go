package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	_ "github.com/ucsb-cslas/cslas-api/api/swagger"
	"github.com/ucsb-cslas/cslas-api/internal/handler"
	"github.com/ucsb-cslas/cslas-api/internal/middleware"
	"github.com/ucsb-cslas/cslas-api/internal/repository"
	"github.com/ucsb-cslas/cslas-api/internal/service"
	"github.com/ucsb-cslas/cslas-api/pkg/config"
	"github.com/ucsb-cslas/cslas-api/pkg/database"
	"github.com/ucsb-cslas/cslas-api/pkg/logger"
	corsmiddleware "github.com/ucsb-cslas/cslas-api/pkg/middleware/cors"
	reqidmiddleware "github.com/ucsb-cslas/cslas-api/pkg/middleware/requestid"
	"github.com/ucsb-cslas/cslas-api/pkg/redisclient"
)

// @title CSLAS API
// @version 1.0.0
// @description Online office hours for CS Learning Assistant Scheduling
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})

	officeHourRepo := repository.NewOnlineOfficeHourRepository(db)
	officeHourSvc := service.NewOnlineOfficeHourService(officeHourRepo, metricsSvc, logr.Named("office_hours"))
	authzSvc := service.NewAuthorizationService(authSvc, repository.NewAdminRepository(db), cfg.Admin.Emails, metricsSvc, logr.Named("authz"))
	exportSvc := service.NewExportService(officeHourSvc, logr.Named("export"))

	opts := handler.RouterOptions{
		OfficeHours:   handler.NewOnlineOfficeHourHandler(officeHourSvc, authzSvc, exportSvc),
		Metrics:       handler.NewMetricsHandler(metricsSvc, database.ReadyCheck(db)),
		Auth:          middleware.JWT(authSvc),
		Logger:        logr.Named("audit"),
		EnableExports: cfg.Exports.Enabled,
		EnableDocs:    cfg.Env != config.EnvProduction,
	}
	if cfg.Audit.Enabled {
		opts.AuditWriter = repository.NewAuditRepository(db)
	}
	if cfg.RateLimit.Enabled {
		rdb, err := redisclient.New(ctx, cfg.Redis)
		if err != nil {
			logr.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rdb.Close() //nolint:errcheck

		limiter := middleware.NewRateLimiter(rdb, middleware.RateLimiterConfig{
			Limit:    cfg.RateLimit.Requests,
			Window:   cfg.RateLimit.Window,
			Prefix:   "cslas:rl",
			FailOpen: cfg.RateLimit.FailOpen,
		}, metricsSvc, logr.Named("ratelimit"))
		opts.RateLimit = limiter.Middleware()
		logr.Info("rate limiting enabled", zap.Int("requests", cfg.RateLimit.Requests), zap.Duration("window", cfg.RateLimit.Window))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	handler.RegisterRoutes(r, opts)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           otelhttp.NewHandler(r, cfg.Tracing.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server shutdown error", zap.Error(err))
	}
	logr.Info("server stopped")
}
