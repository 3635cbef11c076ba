package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/gophtext/internal/crypto"
	"github.com/iudanet/gophtext/internal/server"
	"github.com/iudanet/gophtext/internal/server/handlers"
	"github.com/iudanet/gophtext/internal/server/metrics"
	"github.com/iudanet/gophtext/internal/server/notify"
	"github.com/iudanet/gophtext/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// minSecretLen минимальная длина секрета подписи токенов
const minSecretLen = 32

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", envOrDefault("GOPHTEXT_ADDR", ":8080"), "HTTP listen address")
	dbPath := flag.String("db", envOrDefault("GOPHTEXT_DB", "gophtext-server.db"), "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", os.Getenv("GOPHTEXT_JWT_SECRET"), "Secret for signing access tokens")
	tokenTTL := flag.Duration("token-ttl", 15*time.Minute, "Access token lifetime")
	redisAddr := flag.String("redis-addr", os.Getenv("GOPHTEXT_REDIS_ADDR"), "Redis address for notifications across instances (optional)")
	authRate := flag.Int("auth-rate", 10, "Auth requests per client address per window")
	authWindow := flag.Duration("auth-window", time.Minute, "Auth rate limit window")
	trustProxy := flag.Bool("trust-proxy", false, "Take client address from X-Forwarded-For")
	argonMemory := flag.Uint("argon-memory", uint(crypto.DefaultParams.Memory), "Argon2id memory for access key hashing, KiB")
	argonTime := flag.Uint("argon-time", uint(crypto.DefaultParams.Time), "Argon2id passes for access key hashing")
	logLevel := flag.String("log-level", envOrDefault("GOPHTEXT_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	flag.Parse()

	if *showVersion {
		printVersion()
		return 0
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	if len(*jwtSecret) < minSecretLen {
		logger.Error("jwt secret is too short", "min_length", minSecretLen)
		return 1
	}

	hashParams := crypto.DefaultParams
	hashParams.Memory = uint32(*argonMemory)
	hashParams.Time = uint32(*argonTime)
	if err := hashParams.Validate(); err != nil {
		logger.Error("invalid access key hashing parameters", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open database", "path", *dbPath, "error", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	notifier, err := newNotifier(ctx, *redisAddr, logger)
	if err != nil {
		logger.Error("failed to start notifier", "error", err)
		return 1
	}

	srv := server.New(server.Config{
		Version: Version,
		JWT: handlers.JWTConfig{
			Secret:         []byte(*jwtSecret),
			AccessTokenTTL: *tokenTTL,
		},
		HashParams:     hashParams,
		AuthRateLimit:  *authRate,
		AuthRateWindow: *authWindow,
		TrustProxy:     *trustProxy,
	}, store, notifier, metrics.New(), logger)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", *addr, "version", Version)
		errC <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			_ = notifier.Close()
			return 1
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exitCode := 0
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		exitCode = 1
	}

	// Shutdown не ждет WebSocket соединений; закрытие notifier завершает наблюдателей
	if err := notifier.Close(); err != nil {
		logger.Error("failed to close notifier", "error", err)
	}

	return exitCode
}

// newNotifier выбирает Redis, если задан адрес, иначе рассылку в памяти процесса
func newNotifier(ctx context.Context, redisAddr string, logger *slog.Logger) (notify.Notifier, error) {
	if redisAddr == "" {
		logger.Info("using in-process notifications")
		return notify.NewMemory(), nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := notify.NewRedis(pingCtx, redisAddr, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("using redis notifications", "addr", redisAddr)
	return n, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func printVersion() {
	fmt.Printf("GophText Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
