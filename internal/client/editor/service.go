// Package editor управляет локальными репликами документов: загружает их из
// хранилища, применяет локальные правки и удаленные операции и сохраняет результат.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/iudanet/gophtext/internal/client/storage"
	"github.com/iudanet/gophtext/internal/crdt"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для клиентского сервиса редактирования
type Service interface {
	// Create создает пустой документ, принадлежащий site
	Create(ctx context.Context, name string, site crdt.SiteID) error
	// List возвращает имена локальных документов
	List(ctx context.Context) ([]string, error)

	Insert(ctx context.Context, name string, index int, text string) ([]crdt.Operation, error)
	Delete(ctx context.Context, name string, index, length int) ([]crdt.Operation, error)
	Text(ctx context.Context, name string) (string, error)
	Vector(ctx context.Context, name string) (crdt.VersionVector, error)

	// Diff возвращает локальные операции, не покрытые вектором peer
	Diff(ctx context.Context, name string, peer crdt.VersionVector) ([]crdt.Operation, error)
	// ApplyRemote применяет и сохраняет операции, полученные от других сайтов
	ApplyRemote(ctx context.Context, name string, ops []crdt.Operation) (crdt.MergeResult, error)
}

// service хранит открытые документы в памяти; доступ к ним сериализован мьютексом
type service struct {
	documents storage.DocumentStorage
	logger    *slog.Logger
	open      map[string]*crdt.Document
	mu        sync.Mutex
}

// NewService creates a new editor service
func NewService(documents storage.DocumentStorage, logger *slog.Logger) Service {
	return &service{
		documents: documents,
		logger:    logger,
		open:      make(map[string]*crdt.Document),
	}
}

// Create создает пустой документ
func (s *service) Create(ctx context.Context, name string, site crdt.SiteID) error {
	if site == "" {
		site = crdt.NewSiteID()
	}

	if err := s.documents.CreateDocument(ctx, name, site); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	s.mu.Lock()
	s.open[name] = crdt.New(site)
	s.mu.Unlock()

	s.logger.Debug("Document created", "document", name, "site", site)
	return nil
}

// List возвращает имена локальных документов
func (s *service) List(ctx context.Context) ([]string, error) {
	names, err := s.documents.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return names, nil
}

// Insert вставляет текст и сохраняет созданные операции
func (s *service) Insert(ctx context.Context, name string, index int, text string) ([]crdt.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}

	ops := doc.Insert(index, text)
	if err := s.persistLocal(ctx, name, ops); err != nil {
		return nil, err
	}
	if len(ops) < utf8.RuneCountInString(text) {
		return ops, fmt.Errorf("document %q: %w", name, crdt.ErrClockExhausted)
	}

	return ops, nil
}

// Delete удаляет length шагов цепочки начиная с index и сохраняет созданные операции
func (s *service) Delete(ctx context.Context, name string, index, length int) ([]crdt.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}

	if doc.Exhausted() && length > 0 {
		return nil, fmt.Errorf("document %q: %w", name, crdt.ErrClockExhausted)
	}

	ops := doc.Delete(index, length)
	if err := s.persistLocal(ctx, name, ops); err != nil {
		return nil, err
	}

	return ops, nil
}

// Text возвращает видимый текст документа
func (s *service) Text(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, name)
	if err != nil {
		return "", err
	}
	return doc.String(), nil
}

// Vector возвращает копию вектора версий документа
func (s *service) Vector(ctx context.Context, name string) (crdt.VersionVector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}
	return doc.Vector(), nil
}

// Diff возвращает локальные операции, не покрытые вектором peer
func (s *service) Diff(ctx context.Context, name string, peer crdt.VersionVector) ([]crdt.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}
	return doc.DiffSlice(peer), nil
}

// ApplyRemote применяет пакет удаленных операций и сохраняет его.
// Собственные операции сайта, вернувшиеся от сервера, уже лежат в локальном журнале
// и повторно не сохраняются.
func (s *service) ApplyRemote(ctx context.Context, name string, ops []crdt.Operation) (crdt.MergeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, name)
	if err != nil {
		return crdt.MergeResult{}, err
	}

	result := doc.Merge(ops)

	remote := make([]crdt.Operation, 0, len(ops))
	for _, op := range ops {
		if op.ID.Site != doc.Site() {
			remote = append(remote, op)
		}
	}

	if len(remote) > 0 {
		if err := s.documents.SaveRemoteOperations(ctx, name, remote); err != nil {
			// Документ в памяти уже содержит операции: сбрасываем его,
			// чтобы следующее чтение отразило сохраненное состояние
			delete(s.open, name)
			return crdt.MergeResult{}, fmt.Errorf("failed to save remote operations: %w", err)
		}
	}

	s.logger.Debug("Remote operations applied",
		"document", name,
		"inserted", result.Inserted,
		"deleted", result.Deleted,
		"duplicates", result.Duplicates,
		"ignored", result.Ignored)

	return result, nil
}

// load возвращает открытый документ или восстанавливает его из хранилища.
// Вызывается под s.mu.
func (s *service) load(ctx context.Context, name string) (*crdt.Document, error) {
	if doc, ok := s.open[name]; ok {
		return doc, nil
	}

	site, err := s.documents.GetDocumentSite(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %q: %w", name, err)
	}

	local, remote, err := s.documents.LoadOperations(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load operations of %q: %w", name, err)
	}

	doc := crdt.Restore(site, local, remote)
	s.open[name] = doc

	s.logger.Debug("Document restored",
		"document", name,
		"site", site,
		"local_operations", len(local),
		"remote_operations", len(remote))

	return doc, nil
}

// persistLocal сохраняет новые локальные операции. Вызывается под s.mu.
func (s *service) persistLocal(ctx context.Context, name string, ops []crdt.Operation) error {
	if len(ops) == 0 {
		return nil
	}

	if err := s.documents.AppendLocalOperations(ctx, name, ops); err != nil {
		// Операции не сохранены: документ будет перечитан из хранилища
		delete(s.open, name)
		return fmt.Errorf("failed to save local operations: %w", err)
	}

	return nil
}
