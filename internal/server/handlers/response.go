package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/gophtext/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

// SiteIDKey ключ для хранения site_id в контексте
const SiteIDKey contextKey = "site_id"

// maxRequestBody ограничение размера тела запроса
const maxRequestBody = 8 << 20

// WithSiteID возвращает контекст с идентификатором аутентифицированного сайта
func WithSiteID(ctx context.Context, siteID string) context.Context {
	return context.WithValue(ctx, SiteIDKey, siteID)
}

// GetSiteID извлекает site_id из контекста запроса
func GetSiteID(ctx context.Context) (string, bool) {
	siteID, ok := ctx.Value(SiteIDKey).(string)
	return siteID, ok && siteID != ""
}

// decodeJSON читает тело запроса с ограничением размера
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	return json.NewDecoder(r.Body).Decode(v)
}

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}
