package main

import (
	"context"
	"errors"
	"eventHub/internal/config"
	"eventHub/internal/http-server/handlers/event/createEvent"
	"eventHub/internal/http-server/handlers/event/deleteEvent"
	"eventHub/internal/http-server/handlers/event/getEvent"
	"eventHub/internal/http-server/handlers/event/listEvents"
	"eventHub/internal/http-server/handlers/event/updateEvent"
	"eventHub/internal/http-server/handlers/health"
	"eventHub/internal/http-server/handlers/purchase/createPurchase"
	"eventHub/internal/http-server/handlers/purchase/deletePurchase"
	"eventHub/internal/http-server/handlers/purchase/getPurchase"
	"eventHub/internal/http-server/handlers/purchase/listPurchases"
	"eventHub/internal/http-server/handlers/purchase/updatePurchase"
	"eventHub/internal/http-server/middleware/cache"
	"eventHub/internal/http-server/middleware/mwlogger"
	"eventHub/internal/http-server/middleware/mwmetrics"
	"eventHub/internal/lib/logger/handlers/slogpretty"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/lib/schedule"
	"eventHub/internal/queue/rabbitmq"
	"eventHub/internal/services/inventory"
	"eventHub/internal/services/registration"
	"eventHub/internal/storage/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const cachePrefix = "eventhub:catalog"

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting event hub", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if cfg.Database.AutoMigrate {
		if err = storage.Migrate(context.Background()); err != nil {
			log.Error("failed to migrate schema", sl.Err(err))
			os.Exit(1)
		}
	}

	clock := schedule.NewClock(cfg.Location())

	readCache, invalidate, closeCache := setupCache(log, cfg.Redis)

	var publisher registration.Publisher
	if cfg.RabbitMQ.URL != "" {
		p, err := rabbitmq.New(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			log.Error("failed to connect to rabbitmq, purchases will not be announced", sl.Err(err))
		} else {
			defer p.Close()
			publisher = p
		}
	}

	registrar := registration.New(log, storage, publisher, clock)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(mwmetrics.New())
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/events", func(r chi.Router) {
		r.With(readCache).Get("/", listEvents.New(log, storage, clock))
		r.With(invalidate).Post("/", createEvent.New(log, storage))
		r.With(readCache).Get("/{id}", getEvent.New(log, storage))
		r.With(invalidate).Patch("/{id}", updateEvent.New(log, storage))
		r.With(invalidate).Delete("/{id}", deleteEvent.New(log, storage))
	})

	router.Route("/purchases", func(r chi.Router) {
		r.Get("/", listPurchases.New(log, storage))
		r.With(invalidate).Post("/", createPurchase.New(log, registrar))
		r.Get("/{id}", getPurchase.New(log, storage))
		r.Patch("/{id}", updatePurchase.New(log, storage))
		r.Delete("/{id}", deletePurchase.New(log, storage))
	})

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", health.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer stop()

	collector := inventory.NewCollector(log, storage, clock, cfg.Inventory.CollectInterval)
	go collector.Run(ctx)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("application stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	closeCache()

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

// setupCache returns the catalog read and invalidation middlewares. Both are
// no-ops when Redis is disabled or unreachable. Upcoming and past listings
// are never cached.
func setupCache(log *slog.Logger, cfg config.Redis) (read, invalidate func(http.Handler) http.Handler, closeFn func()) {
	passthrough := func(next http.Handler) http.Handler { return next }
	noop := func() {}

	if !cfg.Enabled {
		return passthrough, passthrough, noop
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Error("redis unreachable, catalog cache disabled", sl.Err(err))
		_ = rdb.Close()
		return passthrough, passthrough, noop
	}

	c := cache.New(log, rdb, cachePrefix, cfg.CacheTTL, cache.WithBypass(listEvents.TimeFiltered))

	return c.Read, c.Invalidate, func() {
		if err := rdb.Close(); err != nil {
			log.Error("failed to close redis connection", sl.Err(err))
		}
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
