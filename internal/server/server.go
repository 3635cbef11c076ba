// Package server собирает HTTP API сервера синхронизации документов.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iudanet/gophtext/internal/crypto"
	"github.com/iudanet/gophtext/internal/server/handlers"
	"github.com/iudanet/gophtext/internal/server/metrics"
	"github.com/iudanet/gophtext/internal/server/middleware"
	"github.com/iudanet/gophtext/internal/server/notify"
	"github.com/iudanet/gophtext/internal/server/storage"
)

// Storage объединяет хранилища, нужные серверу
type Storage interface {
	storage.SiteStorage
	storage.OperationStorage
	handlers.Pinger
}

// Config параметры HTTP API
type Config struct {
	Version        string
	JWT            handlers.JWTConfig
	HashParams     crypto.Params
	AuthRateLimit  int           // запросов к /auth на адрес за окно
	AuthRateWindow time.Duration // окно ограничения частоты
	TrustProxy     bool          // брать адрес клиента из X-Forwarded-For
}

// Server HTTP API сервера
type Server struct {
	handler http.Handler
	limiter *middleware.RateLimiter
}

// New создает сервер и регистрирует маршруты
func New(cfg Config, store Storage, notifier notify.Notifier, m *metrics.Metrics, logger *slog.Logger) *Server {
	authHandler := handlers.NewAuthHandler(logger, store, cfg.JWT, cfg.HashParams)
	syncHandler := handlers.NewSyncHandler(logger, store, notifier, m)
	watchHandler := handlers.NewWatchHandler(logger, notifier, m)
	healthHandler := handlers.NewHealthHandler(logger, store, cfg.Version)

	limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow, logger)
	limiter.TrustProxy = cfg.TrustProxy

	router := mux.NewRouter()
	router.Use(middleware.MetricsMiddleware(m))

	router.HandleFunc("/api/v1/health", healthHandler.Health).Methods(http.MethodGet)
	router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	// Регистрация и выдача токенов ограничены по частоте: ключ доступа можно перебирать
	auth := router.PathPrefix("/api/v1/auth").Subrouter()
	auth.Use(limiter.Middleware)
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/token", authHandler.Token).Methods(http.MethodPost)

	docs := router.PathPrefix("/api/v1/documents").Subrouter()
	docs.Use(middleware.AuthMiddleware(logger, cfg.JWT))
	docs.HandleFunc("", syncHandler.ListDocuments).Methods(http.MethodGet)
	docs.HandleFunc("/{id}", syncHandler.GetDocument).Methods(http.MethodGet)
	docs.HandleFunc("/{id}/sync", syncHandler.Sync).Methods(http.MethodPost)
	docs.HandleFunc("/{id}/watch", watchHandler.Watch).Methods(http.MethodGet)

	// Порядок: recovery -> logging -> router
	var handler http.Handler = router
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health", "/metrics"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &Server{
		handler: handler,
		limiter: limiter,
	}
}

// Handler возвращает корневой HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close освобождает фоновые ресурсы сервера
func (s *Server) Close() {
	s.limiter.Stop()
}
