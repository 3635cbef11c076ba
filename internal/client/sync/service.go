package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff"

	httpClient "github.com/iudanet/gophtext/internal/client/api"
	"github.com/iudanet/gophtext/internal/client/editor"
	"github.com/iudanet/gophtext/internal/client/storage"
	"github.com/iudanet/gophtext/internal/codec"
	"github.com/iudanet/gophtext/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет синхронизацию документа с сервером за один запрос:
	// отправляет локальные операции, которых сервер еще не видел, и применяет недостающие
	Sync(ctx context.Context, name, accessToken string) (*SyncResult, error)

	// GetPendingCount возвращает количество локальных операций, ожидающих отправки
	GetPendingCount(ctx context.Context, name string) (int, error)
}

// RetryPolicy задает параметры повторов при сетевых ошибках
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	MaxRetries      uint64
}

// DefaultRetryPolicy политика повторов по умолчанию
var DefaultRetryPolicy = RetryPolicy{
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     5 * time.Second,
	MaxElapsedTime:  30 * time.Second,
	MaxRetries:      5,
}

// service handles synchronization between client and server
type service struct {
	apiClient       httpClient.ClientAPI
	editor          editor.Service
	metadataStorage storage.MetadataStorage
	logger          *slog.Logger
	retry           RetryPolicy
}

// NewService creates a new sync service
func NewService(apiClient httpClient.ClientAPI, editorService editor.Service, metadataStorage storage.MetadataStorage, retry RetryPolicy, logger *slog.Logger) Service {
	return &service{
		apiClient:       apiClient,
		editor:          editorService,
		metadataStorage: metadataStorage,
		retry:           retry,
		logger:          logger,
	}
}

// SyncResult contains sync operation results
type SyncResult struct {
	Pushed     int // количество отправленных на сервер операций
	Accepted   int // количество операций, впервые принятых сервером
	Pulled     int // количество полученных с сервера операций
	Inserted   int // новые атомы после слияния
	Deleted    int // атомы, впервые помеченные удаленными
	Duplicates int // уже известные операции
	Attempts   int // количество попыток запроса
}

// Sync performs synchronization of one document with server
// 1. Collects local operations not covered by the last known server vector
// 2. Sends them together with the local vector
// 3. Merges operations the server returns and saves the server vector
func (s *service) Sync(ctx context.Context, name, accessToken string) (*SyncResult, error) {
	s.logger.Info("Starting synchronization", "document", name)

	serverVector, err := s.metadataStorage.GetServerVector(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get server vector: %w", err)
	}

	pending, err := s.editor.Diff(ctx, name, serverVector)
	if err != nil {
		return nil, fmt.Errorf("failed to collect local operations: %w", err)
	}

	localVector, err := s.editor.Vector(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get local vector: %w", err)
	}

	req := api.SyncRequest{
		Vector:     codec.VectorToAPI(localVector),
		Operations: codec.OperationsToAPI(pending),
	}

	s.logger.Info("Collected local changes", "document", name, "count", len(pending))

	result := &SyncResult{Pushed: len(pending)}

	// Пакет повторяется целиком: сервер и Merge идемпотентны
	var resp *api.SyncResponse
	operation := func() error {
		result.Attempts++

		var err error
		resp, err = s.apiClient.Sync(ctx, accessToken, name, req)
		if err == nil {
			return nil
		}

		if httpClient.IsClientError(err) {
			return backoff.Permanent(err)
		}

		s.logger.Warn("Sync attempt failed", "document", name, "attempt", result.Attempts, "error", err)
		return err
	}

	if err := backoff.Retry(operation, s.newBackOff(ctx)); err != nil {
		return nil, fmt.Errorf("sync request failed after %d attempt(s): %w", result.Attempts, err)
	}

	ops, err := codec.OperationsFromAPI(resp.Operations)
	if err != nil {
		return nil, fmt.Errorf("invalid server response: %w", err)
	}

	newServerVector, err := codec.VectorFromAPI(resp.Vector)
	if err != nil {
		return nil, fmt.Errorf("invalid server response: %w", err)
	}

	merged, err := s.editor.ApplyRemote(ctx, name, ops)
	if err != nil {
		return nil, fmt.Errorf("failed to apply server operations: %w", err)
	}

	result.Accepted = resp.Accepted
	result.Pulled = len(ops)
	result.Inserted = merged.Inserted
	result.Deleted = merged.Deleted
	result.Duplicates = merged.Duplicates

	// Сервер уже видел все отправленные операции
	serverVector.Merge(newServerVector)
	if err := s.metadataStorage.SaveServerVector(ctx, name, serverVector); err != nil {
		// Следующая синхронизация отправит часть операций повторно, это безопасно
		s.logger.Warn("Failed to save server vector", "document", name, "error", err)
	}

	s.logger.Info("Synchronization completed",
		"document", name,
		"pushed", result.Pushed,
		"accepted", result.Accepted,
		"pulled", result.Pulled,
		"inserted", result.Inserted,
		"deleted", result.Deleted,
		"attempts", result.Attempts)

	return result, nil
}

// GetPendingCount возвращает количество локальных операций, ожидающих отправки
func (s *service) GetPendingCount(ctx context.Context, name string) (int, error) {
	serverVector, err := s.metadataStorage.GetServerVector(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to get server vector: %w", err)
	}

	pending, err := s.editor.Diff(ctx, name, serverVector)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending operations: %w", err)
	}

	return len(pending), nil
}

func (s *service) newBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if s.retry.InitialInterval > 0 {
		exp.InitialInterval = s.retry.InitialInterval
	}
	if s.retry.MaxInterval > 0 {
		exp.MaxInterval = s.retry.MaxInterval
	}
	exp.MaxElapsedTime = s.retry.MaxElapsedTime

	var b backoff.BackOff = exp
	if s.retry.MaxRetries > 0 {
		b = backoff.WithMaxRetries(b, s.retry.MaxRetries)
	}
	return backoff.WithContext(b, ctx)
}
