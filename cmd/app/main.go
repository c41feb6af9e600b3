package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"mentor-booking-service/internal/cache"
	"mentor-booking-service/internal/config"
	availabilityGet "mentor-booking-service/internal/http-server/handlers/availability/get"
	bookingCreate "mentor-booking-service/internal/http-server/handlers/bookings/create"
	menteeGet "mentor-booking-service/internal/http-server/handlers/mentees/get"
	menteeSet "mentor-booking-service/internal/http-server/handlers/mentees/set"
	mentorsGet "mentor-booking-service/internal/http-server/handlers/mentors/get"
	mentorsOptions "mentor-booking-service/internal/http-server/handlers/mentors/options"
	reviewsGet "mentor-booking-service/internal/http-server/handlers/reviews/get"
	svc "mentor-booking-service/internal/service"
	"mentor-booking-service/internal/storage/mock"
	"mentor-booking-service/internal/storage/postgres"
	"mentor-booking-service/internal/upstream"
	"mentor-booking-service/pkg/handlers/slogpretty"
	"mentor-booking-service/pkg/middleware/mwlogger"
	"mentor-booking-service/pkg/sl"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting API", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	var store svc.Store
	if cfg.StoragePath != "" {
		storage, err := postgres.New(cfg.StoragePath)
		if err != nil {
			log.Warn("Failed to init storage, built-in catalog only", sl.Err(err))
		} else {
			store = storage
			defer func() {
				if err := storage.Close(); err != nil {
					log.Error("Failed to close storage", sl.Err(err))
				}
			}()
		}
	} else {
		log.Warn("No storage_path configured, built-in catalog only")
	}

	redisCache, err := cache.NewRedisCache(cfg.RedisAddr)
	if err != nil {
		log.Error("Failed to init redis cache", sl.Err(err))
		os.Exit(1)
	}

	platform := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	service := svc.NewService(
		log,
		store,
		mock.New(),
		platform,
		redisCache,
		cfg.Booking.WindowDays,
		cfg.Booking.AvailabilityCacheTTL,
		cfg.Booking.SessionTTL,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(CORS)

	// Mentor directory
	router.Get("/mentors", mentorsGet.New(log, service))
	router.Get("/mentors/filter-options", mentorsOptions.New(log, service))
	router.Get("/mentors/{mentorId}", mentorsGet.New(log, service))

	// Availability & reviews
	router.Get("/mentors/{mentorId}/availability", availabilityGet.New(log, service))
	router.Get("/mentors/{mentorId}/reviews", reviewsGet.New(log, service))

	// Bookings
	router.Post("/mentors/{mentorId}/bookings", bookingCreate.New(log, service))

	// Mentee onboarding sessions
	router.Post("/mentees", menteeSet.New(log, service))
	router.Get("/mentees/{sessionId}", menteeGet.New(log, service))

	serv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serverErrCh := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", slog.String("addr", cfg.Address))
		if err := serv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		} else {
			serverErrCh <- nil
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErrCh:
		if err != nil {
			log.Error("HTTP server stopped unexpectedly", sl.Err(err))
		} else {
			log.Info("HTTP server stopped gracefully")
		}
	}

	shutdownTimeout := cfg.HTTPServer.ShutdownTimeout

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down HTTP server", slog.String("timeout", shutdownTimeout.String()))

	if err := serv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", sl.Err(err))
	} else {
		log.Info("Server shutdown complete")
	}

	if err := redisCache.Close(); err != nil {
		log.Error("Failed to close redis cache", sl.Err(err))
	}

	log.Info("Shutdown finished, server stopped")

}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
