package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophtext/internal/client/storage"
	"github.com/iudanet/gophtext/internal/crdt"
)

var keySession = []byte("session")

// Токен считается истекшим за tokenExpiryLeeway до срока
const tokenExpiryLeeway = 30 * time.Second

// authBucket открывает bucket сессии в транзакции tx.
func authBucket(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	b := tx.Bucket(bucketAuth)
	if b == nil {
		return nil, fmt.Errorf("bucket %q not found", bucketAuth)
	}
	return b, nil
}

// SaveAuth stores the site session, replacing the previous one
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if _, err := crdt.ParseSiteID(auth.SiteID); err != nil {
		return fmt.Errorf("refusing to save session: %w", err)
	}

	data, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := authBucket(tx)
		if err != nil {
			return err
		}
		return b.Put(keySession, data)
	})
}

// GetAuth returns the stored site session
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var auth storage.AuthData
	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := authBucket(tx)
		if err != nil {
			return err
		}
		raw := b.Get(keySession)
		if raw == nil {
			return storage.ErrAuthNotFound
		}
		if err := json.Unmarshal(raw, &auth); err != nil {
			return fmt.Errorf("failed to decode session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &auth, nil
}

// DeleteAuth drops the session; documents and their operations stay
func (s *Storage) DeleteAuth(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := authBucket(tx)
		if err != nil {
			return err
		}
		if b.Get(keySession) == nil {
			return storage.ErrAuthNotFound
		}
		return b.Delete(keySession)
	})
}

// IsAuthenticated reports whether a session with a live token is stored
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		return false, nil
	case err != nil:
		return false, err
	}

	return sessionAlive(auth, time.Now()), nil
}

func sessionAlive(auth *storage.AuthData, now time.Time) bool {
	if auth.AccessToken == "" {
		return false
	}
	return now.Add(tokenExpiryLeeway).Before(time.Unix(auth.ExpiresAt, 0))
}
