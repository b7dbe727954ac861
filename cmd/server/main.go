package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/naijatax/internal/assistant"
	"github.com/mmynk/naijatax/internal/auth"
	"github.com/mmynk/naijatax/internal/cache"
	"github.com/mmynk/naijatax/internal/calculator"
	"github.com/mmynk/naijatax/internal/config"
	"github.com/mmynk/naijatax/internal/middleware"
	"github.com/mmynk/naijatax/internal/service"
	"github.com/mmynk/naijatax/internal/storage/sqlite"
	"github.com/mmynk/naijatax/pkg/api/apiconnect"
	"github.com/mmynk/naijatax/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exited")
}

func run(cfg config.Config) error {
	ctx := context.Background()

	if cfg.JWTSecret == config.DevJWTSecret {
		slog.Warn("JWT_SECRET not set, using the development secret")
	}

	bands := calculator.DefaultBands
	if cfg.BandsPath != "" {
		loaded, err := calculator.LoadBandsFile(cfg.BandsPath)
		if err != nil {
			return fmt.Errorf("failed to load band table: %w", err)
		}
		bands = loaded
	}
	slog.Info("Band table loaded", "bands", len(bands), "path", cfg.BandsPath)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	resultCache, closeCache := newResultCache(ctx, cfg)
	defer closeCache()

	metrics := middleware.NewMetrics()
	engine := service.NewEngine(bands, resultCache, metrics)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	var chat assistant.Assistant = assistant.Offline{}
	if cfg.GeminiAPIKey != "" {
		chat = assistant.NewGemini(cfg.GeminiAPIKey, assistant.WithModel(cfg.GeminiModel))
		slog.Info("Assistant using Gemini", "model", cfg.GeminiModel)
	} else {
		slog.Info("GEMINI_API_KEY not set, assistant running offline")
	}

	// metrics sees every outcome, auth fills the context, logging reports the user
	interceptors := func(authInterceptor connect.UnaryInterceptorFunc) connect.HandlerOption {
		return connect.WithInterceptors(metrics.Interceptor(), authInterceptor, middleware.LoggingInterceptor())
	}
	optional := interceptors(middleware.OptionalAuth(jwtManager))
	required := interceptors(middleware.RequireAuth(jwtManager))

	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		defer limiter.Stop()
	}
	limit := middleware.RateLimit(limiter, metrics.ObserveRateLimited)

	mux := http.NewServeMux()
	register := func(path string, handler http.Handler) {
		mux.Handle(path, limit(handler))
	}

	register(apiconnect.NewTaxServiceHandler(service.NewTaxService(engine, store), optional))
	register(apiconnect.NewHistoryServiceHandler(service.NewHistoryService(engine, store), required))
	register(apiconnect.NewAuthServiceHandler(
		service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store, slog.Default()),
		optional,
	))
	register(apiconnect.NewAssistantServiceHandler(service.NewAssistantService(chat), optional))

	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		return fmt.Errorf("failed to resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)
	mux.Handle("/", staticHandler(staticDir))

	handler := middleware.RequestLogger(middleware.CORS(mux))

	// h2c serves HTTP/2 without TLS, which Connect and gRPC clients need
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		slog.Info("Shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newResultCache prefers Redis when configured and falls back to memory if
// it cannot be reached.
func newResultCache(ctx context.Context, cfg config.Config) (cache.ResultCache, func()) {
	if cfg.RedisAddr != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()

		redisCache, err := cache.NewRedis(pingCtx, cfg.RedisAddr, cfg.CacheTTL)
		if err == nil {
			slog.Info("Result cache using Redis", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
			return redisCache, func() { redisCache.Close() }
		}
		slog.Warn("Redis unavailable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
	}

	slog.Info("Result cache in memory", "max_entries", cfg.CacheMaxEntries)
	return cache.NewMemory(cfg.CacheMaxEntries), func() {}
}

// staticHandler serves the web client, falling back to index.html for
// unknown paths. RPC paths that reach it are not registered procedures.
func staticHandler(staticDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/naijatax.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})
}
