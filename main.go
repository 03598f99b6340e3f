package main

import (
	auth "Annulus/internal/auth"
	batch "Annulus/internal/calc/batch"
	importer "Annulus/internal/calc/importer"
	report "Annulus/internal/calc/report"
	zscore "Annulus/internal/calc/zscore"
	config "Annulus/internal/config"
	repo "Annulus/internal/repo"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func CORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs request metadata and timing for each HTTP request.
func RequestLogger(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.New().String()
			w.Header().Set("X-Request-ID", requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info("request",
				"event", "request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"ip", auth.ClientIP(r),
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

func HandleList(router *mux.Router, cfg config.Config, logger *slog.Logger) error {
	router.Use(RequestLogger(logger))

	limiter := auth.NewIPRateLimiter(cfg.RateLimit, cfg.RateBurst)
	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	tools := api.PathPrefix("/tools").Subrouter()
	if cfg.AuthEnabled() {
		users := repo.NewMemoryUserDB()
		if _, err := users.CreateUser(context.Background(), cfg.AdminLogin, cfg.AdminPasswordHash); err != nil {
			return fmt.Errorf("seed admin account: %w", err)
		}
		authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: users, Logger: logger, Secure: cfg.TLSEnabled()}
		api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
		tools.Use(authEnv.AuthMiddleware)
	} else {
		logger.Warn("TOKEN_KEY not set, /api/tools is open")
	}

	zscoreH := &zscore.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	tools.HandleFunc("/zscore/calc", zscoreH.Calc).Methods("POST")
	tools.HandleFunc("/zscore/predict", zscoreH.Predict).Methods("POST")
	tools.HandleFunc("/zscore/score", zscoreH.Score).Methods("POST")
	tools.HandleFunc("/zscore/formulas", zscoreH.Formulas).Methods("GET")
	tools.HandleFunc("/batch/calc", batchH.Calc).Methods("POST")
	tools.HandleFunc("/import/xlsx", importH.Import).Methods("POST")
	tools.HandleFunc("/export/xlsx", importH.Export).Methods("POST")
	tools.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")
	return nil
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	router := mux.NewRouter()
	if err := HandleList(router, cfg, logger); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(cfg.AllowedOrigin, router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	serveErr := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "addr", cfg.Addr, "tls", cfg.TLSEnabled(), "auth", cfg.AuthEnabled())
		var err error
		if cfg.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		return fmt.Errorf("server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	wg.Wait()
	logger.Info("server stopped")
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer closeLog()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}
