package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/gophtext/internal/server/metrics"
	"github.com/iudanet/gophtext/internal/server/notify"
)

const (
	// writeWait время на запись одного сообщения
	writeWait = 10 * time.Second
	// pongWait время ожидания pong от клиента
	pongWait = 60 * time.Second
	// pingPeriod период отправки ping, меньше pongWait
	pingPeriod = pongWait * 9 / 10
)

// WatchHandler отправляет наблюдателям документа уведомления по WebSocket
type WatchHandler struct {
	logger   *slog.Logger
	notifier notify.Notifier
	metrics  *metrics.Metrics
	upgrader websocket.Upgrader
}

// NewWatchHandler создает handler наблюдения за документом
func NewWatchHandler(logger *slog.Logger, notifier notify.Notifier, m *metrics.Metrics) *WatchHandler {
	return &WatchHandler{
		logger:   logger,
		notifier: notifier,
		metrics:  m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Клиент - CLI, а не браузер; доступ проверяет AuthMiddleware
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Watch обрабатывает GET /api/v1/documents/{id}/watch
func (h *WatchHandler) Watch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	siteID, ok := GetSiteID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	docID, err := documentID(r)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// Подписываемся до upgrade, чтобы вернуть обычную HTTP ошибку при сбое
	messages, unsubscribe, err := h.notifier.Subscribe(ctx, docID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to subscribe", slog.Any("error", err))
		sendError(h.logger, w, "notifications unavailable", http.StatusServiceUnavailable)
		return
	}
	defer unsubscribe()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже отправил ответ с ошибкой
		h.logger.WarnContext(ctx, "websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	h.metrics.Watchers.Inc()
	defer h.metrics.Watchers.Dec()

	h.logger.InfoContext(ctx, "watcher connected",
		slog.String("document_id", docID),
		slog.String("site_id", siteID))

	closed := make(chan struct{})
	go readUntilClose(conn, closed)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				h.closeConn(conn, websocket.CloseGoingAway)
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.WarnContext(ctx, "failed to send notification", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-closed:
			h.logger.InfoContext(ctx, "watcher disconnected",
				slog.String("document_id", docID),
				slog.String("site_id", siteID))
			return
		case <-ctx.Done():
			h.closeConn(conn, websocket.CloseGoingAway)
			return
		}
	}
}

func (h *WatchHandler) closeConn(conn *websocket.Conn, code int) {
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, ""),
		time.Now().Add(writeWait))
}

// readUntilClose читает входящие кадры (клиент ничего не отправляет, кроме pong и close)
// и закрывает closed при разрыве соединения
func readUntilClose(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
