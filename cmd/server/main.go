package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/quizforge/backend/internal/config"
	"github.com/quizforge/backend/internal/database"
	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/logger"
	"github.com/quizforge/backend/internal/middleware"
	"github.com/quizforge/backend/internal/models"
	"github.com/quizforge/backend/internal/quiz"
)

const (
	maxBodyBytes    = 10 << 20
	sweepInterval   = 5 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize storage", zap.String("storage", cfg.Storage), zap.Error(err))
	}
	defer closeStore()

	// Initialize generator and handlers
	var genOpts []generator.Option
	if cfg.Generator.Seed != 0 {
		genOpts = append(genOpts, generator.WithSeed(cfg.Generator.Seed))
	}
	gen := generator.New(nil, genOpts...)
	service := quiz.NewService(store, gen, log, cfg.Tests.MaxQuestions)
	quizHandler := quiz.NewHandler(service, log)

	// Setup router
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.HealthResponse{Status: "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	quizHandler.RegisterRoutes(api)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	go every(ctx, time.Minute, func() {
		if n := limiter.Cleanup(); n > 0 {
			log.Debug("rate limiter visitors evicted", zap.Int("count", n))
		}
	})

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	var handler http.Handler = r
	handler = middleware.MaxBodySize(maxBodyBytes)(handler)
	handler = handlers.CompressHandler(handler)
	handler = middleware.AccessLog(log)(handler)
	handler = limiter.Middleware(handler)
	handler = c.Handler(handler)
	handler = middleware.SecureHeaders(cfg.Env != "production")(handler)
	handler = handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(log)),
		handlers.PrintRecoveryStack(cfg.Env != "production"),
	)(handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("storage", cfg.Storage),
			zap.Int("templates", gen.Bank().Size()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// openStore builds the configured Store. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (quiz.Store, func(), error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := database.Connect(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("database ready")
		return quiz.NewPGStore(db), func() { db.Close() }, nil

	default:
		store := quiz.NewMemoryStore(cfg.Tests.TTL)
		if cfg.Tests.TTL > 0 {
			go every(ctx, sweepInterval, func() {
				if n := store.CleanupExpired(); n > 0 {
					log.Info("expired tests removed", zap.Int("count", n))
				}
			})
		}
		return store, func() {}, nil
	}
}

// every calls fn on each tick of interval until ctx is done.
func every(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}
