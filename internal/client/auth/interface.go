package auth

import (
	"context"

	"github.com/iudanet/gophtext/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines authentication operations of a site.
// A site registers once with an access key and later exchanges the
// site id and the key for a short-lived access token stored locally.
type Service interface {
	// Register регистрирует на сервере новый сайт со случайным идентификатором
	Register(ctx context.Context, accessKey string) (*RegisterResult, error)

	// Login получает access token и сохраняет его в локальном хранилище
	Login(ctx context.Context, siteID, accessKey string) (*LoginResult, error)

	// Logout удаляет локальные данные авторизации
	Logout(ctx context.Context) error

	// GetAuth возвращает сохраненные данные авторизации
	GetAuth(ctx context.Context) (*storage.AuthData, error)

	// IsAuthenticated checks if a non-expired token is stored
	IsAuthenticated(ctx context.Context) (bool, error)

	// AccessToken возвращает действующий токен
	// Returns ErrNotAuthenticated or ErrTokenExpired
	AccessToken(ctx context.Context) (string, error)
}
