package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iudanet/gophtext/internal/codec"
	"github.com/iudanet/gophtext/internal/crdt"
	"github.com/iudanet/gophtext/internal/server/metrics"
	"github.com/iudanet/gophtext/internal/server/notify"
	"github.com/iudanet/gophtext/internal/server/storage"
	"github.com/iudanet/gophtext/internal/validation"
	"github.com/iudanet/gophtext/pkg/api"
)

// errForeignOperation операция подписана чужим сайтом
var errForeignOperation = errors.New("operation belongs to another site")

// SyncHandler ретранслирует операции документов между сайтами.
// Сервер не редактирует документы: он хранит потоки операций каждого сайта
// и отдает часть, которую клиент еще не видел.
type SyncHandler struct {
	logger   *slog.Logger
	storage  storage.OperationStorage
	notifier notify.Notifier
	metrics  *metrics.Metrics
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, storage storage.OperationStorage, notifier notify.Notifier, m *metrics.Metrics) *SyncHandler {
	return &SyncHandler{
		logger:   logger,
		storage:  storage,
		notifier: notifier,
		metrics:  m,
	}
}

// documentID извлекает и проверяет имя документа из пути
func documentID(r *http.Request) (string, error) {
	id := mux.Vars(r)["id"]
	if err := validation.ValidateDocumentName(id); err != nil {
		return "", err
	}
	return id, nil
}

// Sync обрабатывает POST /api/v1/documents/{id}/sync
// Принимает новые операции сайта и возвращает операции, не покрытые его вектором
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	siteID, ok := GetSiteID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "site id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	docID, err := documentID(r)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.SyncRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode sync request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	ops, err := codec.OperationsFromAPI(req.Operations)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid operations in sync request",
			slog.String("site_id", siteID),
			slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	vector, err := codec.VectorFromAPI(req.Vector)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// Сайт может отправлять только собственные операции
	if err := checkOwnership(ops, crdt.SiteID(siteID)); err != nil {
		h.logger.WarnContext(ctx, "rejected foreign operations",
			slog.String("site_id", siteID),
			slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusForbidden)
		return
	}

	for _, op := range ops {
		h.metrics.OperationsReceived.WithLabelValues(op.Kind.String()).Inc()
	}

	resp, err := h.exchange(r, docID, ops, vector)
	h.metrics.ObserveSync(start, err)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync failed",
			slog.String("document_id", docID),
			slog.String("site_id", siteID),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if resp.Accepted > 0 {
		h.publish(r, api.WatchMessage{
			DocumentID: docID,
			Site:       siteID,
			Operations: resp.Accepted,
			Vector:     resp.Vector,
		})
	}

	h.logger.InfoContext(ctx, "sync completed",
		slog.String("document_id", docID),
		slog.String("site_id", siteID),
		slog.Int("received", len(ops)),
		slog.Int("accepted", resp.Accepted),
		slog.Int("sent", len(resp.Operations)))

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// exchange сохраняет операции сайта и собирает ответ
func (h *SyncHandler) exchange(r *http.Request, docID string, ops []crdt.Operation, vector crdt.VersionVector) (*api.SyncResponse, error) {
	ctx := r.Context()

	accepted := 0
	if len(ops) > 0 {
		saved, err := h.storage.SaveOperations(ctx, docID, ops)
		if err != nil {
			return nil, fmt.Errorf("failed to save operations: %w", err)
		}
		accepted = saved
		h.metrics.OperationsStored.Add(float64(saved))
	}

	missing, err := h.storage.GetOperationsNotCovered(ctx, docID, vector)
	if err != nil {
		return nil, fmt.Errorf("failed to get missing operations: %w", err)
	}
	h.metrics.OperationsSent.Add(float64(len(missing)))

	serverVector, err := h.storage.GetVector(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document vector: %w", err)
	}

	return &api.SyncResponse{
		Vector:     codec.VectorToAPI(serverVector),
		Operations: codec.OperationsToAPI(missing),
		Accepted:   accepted,
	}, nil
}

// publish уведомляет наблюдателей документа. Ошибка не прерывает синхронизацию:
// наблюдатель догонит состояние при следующем уведомлении или синхронизации.
func (h *SyncHandler) publish(r *http.Request, msg api.WatchMessage) {
	if err := h.notifier.Publish(r.Context(), msg); err != nil {
		h.metrics.Notifications.WithLabelValues("error").Inc()
		h.logger.WarnContext(r.Context(), "failed to publish notification",
			slog.String("document_id", msg.DocumentID),
			slog.Any("error", err))
		return
	}
	h.metrics.Notifications.WithLabelValues("published").Inc()
}

// GetDocument обрабатывает GET /api/v1/documents/{id}
// Возвращает текст документа, собранный из всех сохраненных операций
func (h *SyncHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	docID, err := documentID(r)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	ops, err := h.storage.GetOperations(ctx, docID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get operations", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if len(ops) == 0 {
		sendError(h.logger, w, "document not found", http.StatusNotFound)
		return
	}

	vector, err := h.storage.GetVector(ctx, docID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get document vector", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	doc := crdt.New()
	doc.Merge(ops)

	sendJSON(h.logger, w, api.DocumentResponse{
		ID:         docID,
		Text:       doc.String(),
		Vector:     codec.VectorToAPI(vector),
		Operations: len(ops),
	}, http.StatusOK)
}

// ListDocuments обрабатывает GET /api/v1/documents
func (h *SyncHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	docs, err := h.storage.ListDocuments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list documents", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}

	sendJSON(h.logger, w, api.DocumentListResponse{Documents: ids}, http.StatusOK)
}

func checkOwnership(ops []crdt.Operation, site crdt.SiteID) error {
	for i, op := range ops {
		if op.ID.Site != site {
			return fmt.Errorf("operation %d (%s): %w", i, op.ID, errForeignOperation)
		}
	}
	return nil
}
