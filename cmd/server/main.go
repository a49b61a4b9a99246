package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"supplydesk/internal/cache"
	"supplydesk/internal/config"
	"supplydesk/internal/db"
	"supplydesk/internal/gateway"
	"supplydesk/internal/logger"
	"supplydesk/internal/metrics"
	"supplydesk/internal/middleware"
	"supplydesk/internal/order"
	"supplydesk/internal/product"
	"supplydesk/internal/user"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const cacheNamespace = "supplydesk"

var (
	initDBFunc        = db.InitDB
	newRedisCacheFunc = cache.NewRedisCache
	startServerFunc   = func(addr string, handler http.Handler) error {
		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		return srv.ListenAndServe()
	}
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + cfg.AppPort
	logger.L().Info("gateway listening", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
	return startServerFunc(addr, newServer(ctx, cfg, database))
}

// newServer wires repositories, services and the gateway handler. The
// limiter sweeper stops when ctx is cancelled.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB) http.Handler {
	if cfg.JWTSecret == "" {
		logger.L().Warn("JWT_SECRET not set, sessions will carry no token")
	}

	userSvc := user.NewService(user.NewRepository(database), cfg.JWTSecret)
	productSvc := product.NewService(product.NewRepository(database), newCatalogCache(ctx, cfg))
	orderSvc := order.NewService(order.NewRepository(database))

	limiter := middleware.NewRateLimiter()
	go limiter.Run(ctx)

	return setupRouter(gateway.NewHandler(userSvc, productSvc, orderSvc, cfg.JWTSecret != ""), cfg.JWTSecret, limiter, metrics.NewActions())
}

// newCatalogCache returns nil when REDIS_ADDR is unset or unreachable; the
// product service then reads straight from Postgres.
func newCatalogCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return nil
	}

	c := newRedisCacheFunc(cfg.RedisAddr, cacheNamespace)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx, c); err != nil {
		logger.L().Warn("redis unreachable, catalog cache disabled",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		if err := cache.Close(c); err != nil {
			logger.L().Warn("closing redis client", zap.Error(err))
		}
		return nil
	}

	logger.L().Info("catalog cache enabled", zap.String("addr", cfg.RedisAddr))
	return c
}

func setupRouter(api http.Handler, jwtSecret string, limiter *middleware.RateLimiter, stats *metrics.Actions) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(logger.RequestIDMiddleware)
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/metrics", gateway.MetricsHandler(stats))

	r.Group(func(r chi.Router) {
		r.Use(logger.LoggingMiddleware)
		r.Use(gateway.Instrument(stats))
		r.Use(middleware.AuthMiddleware(jwtSecret))
		r.Use(limiter.Middleware)
		r.Handle("/api", api)
	})

	return r
}
