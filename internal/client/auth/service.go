package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/gophtext/internal/client/api"
	"github.com/iudanet/gophtext/internal/client/storage"
	"github.com/iudanet/gophtext/internal/crdt"
	"github.com/iudanet/gophtext/internal/validation"
	pkgapi "github.com/iudanet/gophtext/pkg/api"
)

var (
	// ErrNotAuthenticated возвращается, если клиент еще не выполнил login
	ErrNotAuthenticated = errors.New("not authenticated, run 'login' first")
	// ErrTokenExpired возвращается, если срок действия токена истек
	ErrTokenExpired = errors.New("access token expired, run 'login' again")
)

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	SiteID  string
	Message string
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	SiteID    string
	ExpiresAt time.Time
}

type service struct {
	apiClient api.ClientAPI
	authStore storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
	serverURL string
}

var _ Service = (*service)(nil)

// NewService создает новый сервис авторизации
func NewService(apiClient api.ClientAPI, authStore storage.AuthStorage, serverURL string, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		authStore: authStore,
		serverURL: serverURL,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *service) Register(ctx context.Context, accessKey string) (*RegisterResult, error) {
	if err := validation.ValidateAccessKey(accessKey); err != nil {
		return nil, fmt.Errorf("invalid access key: %w", err)
	}

	site := crdt.NewSiteID()
	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		SiteID:    string(site),
		AccessKey: accessKey,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("site registered", "site_id", resp.SiteID)

	return &RegisterResult{
		SiteID:  resp.SiteID,
		Message: resp.Message,
	}, nil
}

func (s *service) Login(ctx context.Context, siteID, accessKey string) (*LoginResult, error) {
	if _, err := crdt.ParseSiteID(siteID); err != nil {
		return nil, fmt.Errorf("invalid site id: %w", err)
	}
	if err := validation.ValidateAccessKey(accessKey); err != nil {
		return nil, fmt.Errorf("invalid access key: %w", err)
	}

	resp, err := s.apiClient.Token(ctx, pkgapi.TokenRequest{
		SiteID:    siteID,
		AccessKey: accessKey,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	expiresAt := s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	authData := &storage.AuthData{
		SiteID:      siteID,
		AccessToken: resp.AccessToken,
		ServerURL:   s.serverURL,
		ExpiresAt:   expiresAt.Unix(),
	}
	if err := s.authStore.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Debug("access token saved", "site_id", siteID, "expires_at", expiresAt)

	return &LoginResult{
		SiteID:    siteID,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.authStore.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to delete auth data: %w", err)
	}
	return nil
}

func (s *service) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	authData, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	return authData, nil
}

func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.authStore.IsAuthenticated(ctx)
}

func (s *service) AccessToken(ctx context.Context) (string, error) {
	authData, err := s.GetAuth(ctx)
	if err != nil {
		return "", err
	}

	if authData.ServerURL != "" && s.serverURL != "" && authData.ServerURL != s.serverURL {
		s.logger.Warn("stored token was issued by another server",
			"token_server", authData.ServerURL,
			"server", s.serverURL)
	}

	if !s.now().Before(time.Unix(authData.ExpiresAt, 0)) {
		return "", ErrTokenExpired
	}

	return authData.AccessToken, nil
}
