package storage

import (
	"context"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing authentication data on client.
// A client authenticates as a site: the site id is both the login and the
// replica identifier used for new documents.
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing the previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	// Returns ErrAuthNotFound if no auth data exists
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if valid authentication exists (not expired)
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents authentication information in storage
type AuthData struct {
	SiteID      string `json:"site_id"`      // идентификатор сайта (8 hex символов)
	AccessToken string `json:"access_token"` // JWT, выданный сервером
	ServerURL   string `json:"server_url"`   // сервер, выдавший токен
	ExpiresAt   int64  `json:"expires_at"`   // unix time истечения токена
}
