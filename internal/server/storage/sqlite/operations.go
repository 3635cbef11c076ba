package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/gophtext/internal/codec"
	"github.com/iudanet/gophtext/internal/crdt"
	"github.com/iudanet/gophtext/internal/models"
	"github.com/iudanet/gophtext/pkg/api"
)

// SaveOperations stores operations of a document, skipping already stored ones
func (s *Storage) SaveOperations(ctx context.Context, documentID string, ops []crdt.Operation) (int, error) {
	if len(ops) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op после Commit
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO operations (document_id, site_id, counter, kind, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UnixMilli()
	saved := 0
	for _, op := range ops {
		payload, err := json.Marshal(codec.OperationToAPI(op))
		if err != nil {
			return 0, fmt.Errorf("failed to encode operation %s: %w", op.ID, err)
		}

		res, err := stmt.ExecContext(ctx,
			documentID,
			string(op.ID.Site),
			int64(op.ID.Counter),
			op.Kind.String(),
			string(payload),
			now,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert operation %s: %w", op.ID, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected: %w", err)
		}
		saved += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

// GetOperations returns all operations of a document in arrival order
func (s *Storage) GetOperations(ctx context.Context, documentID string) ([]crdt.Operation, error) {
	return s.GetOperationsNotCovered(ctx, documentID, nil)
}

// GetOperationsNotCovered returns operations the owner of vector has not seen yet
func (s *Storage) GetOperationsNotCovered(ctx context.Context, documentID string, vector crdt.VersionVector) ([]crdt.Operation, error) {
	query := `
		SELECT site_id, counter, payload
		FROM operations
		WHERE document_id = ?
		ORDER BY seq ASC
	`

	rows, err := s.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	ops := make([]crdt.Operation, 0)
	for rows.Next() {
		var (
			site    string
			counter int64
			payload string
		)
		if err := rows.Scan(&site, &counter, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}

		// Фильтр по вектору до декодирования payload
		if uint64(counter) <= vector.Get(crdt.SiteID(site)) {
			continue
		}

		var wire api.Operation
		if err := json.Unmarshal([]byte(payload), &wire); err != nil {
			return nil, fmt.Errorf("failed to decode operation %s:%d: %w", site, counter, err)
		}
		op, err := codec.OperationFromAPI(wire)
		if err != nil {
			return nil, fmt.Errorf("stored operation %s:%d: %w", site, counter, err)
		}
		ops = append(ops, op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operations: %w", err)
	}

	return ops, nil
}

// GetVector returns the highest stored counter of every site in the document
func (s *Storage) GetVector(ctx context.Context, documentID string) (crdt.VersionVector, error) {
	query := `
		SELECT site_id, MAX(counter)
		FROM operations
		WHERE document_id = ?
		GROUP BY site_id
	`

	rows, err := s.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vector: %w", err)
	}
	defer rows.Close()

	vector := crdt.VersionVector{}
	for rows.Next() {
		var (
			site    string
			counter int64
		)
		if err := rows.Scan(&site, &counter); err != nil {
			return nil, fmt.Errorf("failed to scan vector entry: %w", err)
		}
		vector[crdt.SiteID(site)] = uint64(counter)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vector: %w", err)
	}

	return vector, nil
}

// ListDocuments returns summaries of all documents ordered by id
func (s *Storage) ListDocuments(ctx context.Context) ([]models.DocumentInfo, error) {
	query := `
		SELECT document_id, COUNT(*), MAX(created_at)
		FROM operations
		GROUP BY document_id
		ORDER BY document_id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := make([]models.DocumentInfo, 0)
	for rows.Next() {
		var (
			doc       models.DocumentInfo
			updatedAt int64
		)
		if err := rows.Scan(&doc.ID, &doc.Operations, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.UpdatedAt = time.UnixMilli(updatedAt)
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}
