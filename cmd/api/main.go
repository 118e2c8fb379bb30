package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hotelmercedes/booking-api/internal/config"
	"github.com/hotelmercedes/booking-api/internal/handler"
	"github.com/hotelmercedes/booking-api/internal/middleware"
	"github.com/hotelmercedes/booking-api/internal/repository"
	"github.com/hotelmercedes/booking-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.SessionTTL)
	recoveryService := service.NewRecoveryService(userRepo, cfg.JWTSecret, cfg.ResetTTL)
	reservationService := service.NewReservationService(reservationRepo)
	userService := service.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	recoveryHandler := handler.NewRecoveryHandler(recoveryService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	userHandler := handler.NewUserHandler(userService)

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(metrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Unauthenticated routes, rate-limited against credential guessing.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10, metrics))
		r.Post("/api/v1/register", authHandler.HandleRegister)
		r.Post("/api/v1/login", authHandler.HandleLogin)
		r.Post("/api/v1/recover/find-question", recoveryHandler.HandleFindQuestion)
		r.Post("/api/v1/recover/verify-answer", recoveryHandler.HandleVerifyAnswer)
		r.Post("/api/v1/recover/reset-password", recoveryHandler.HandleResetPassword)
	})

	// Routes requiring a valid session token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/api/v1/reservations", reservationHandler.HandleCreate)
		r.Get("/api/v1/my-reservations", reservationHandler.HandleList)
	})

	// Admin-only routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Use(middleware.RequireAdmin)
		r.Get("/api/v1/users", userHandler.HandleList)
		r.Put("/api/v1/users/{user_id}", userHandler.HandleUpdate)
		r.Delete("/api/v1/users/{user_id}", userHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
