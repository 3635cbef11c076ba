package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/gophtext/internal/crdt"
	"github.com/iudanet/gophtext/internal/crypto"
	"github.com/iudanet/gophtext/internal/models"
	"github.com/iudanet/gophtext/internal/server/storage"
	"github.com/iudanet/gophtext/internal/validation"
	"github.com/iudanet/gophtext/pkg/api"
)

// AuthHandler обрабатывает регистрацию сайтов и выдачу токенов
type AuthHandler struct {
	logger      *slog.Logger
	siteStorage storage.SiteStorage
	jwtConfig   JWTConfig
	hashParams  crypto.Params
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, siteStorage storage.SiteStorage, jwtConfig JWTConfig, hashParams crypto.Params) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		siteStorage: siteStorage,
		jwtConfig:   jwtConfig,
		hashParams:  hashParams,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового сайта (реплики)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	siteID, err := crdt.ParseSiteID(req.SiteID)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validation.ValidateAccessKey(req.AccessKey); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	keyHash, keySalt, err := crypto.HashAccessKey(req.AccessKey, string(siteID), h.hashParams)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash access key", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	site := &models.Site{
		ID:        string(siteID),
		KeyHash:   keyHash,
		KeySalt:   keySalt,
		CreatedAt: time.Now(),
	}

	if err := h.siteStorage.CreateSite(ctx, site); err != nil {
		if errors.Is(err, storage.ErrSiteAlreadyExists) {
			h.logger.WarnContext(ctx, "site already exists", slog.String("site_id", site.ID))
			sendError(h.logger, w, "site id already registered", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create site", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "site registered", slog.String("site_id", site.ID))

	sendJSON(h.logger, w, api.RegisterResponse{
		SiteID:  site.ID,
		Message: "Site registered successfully",
	}, http.StatusCreated)
}

// Token обрабатывает POST /api/v1/auth/token
// Обмен ключа доступа сайта на access token
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.TokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode token request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	siteID, err := crdt.ParseSiteID(req.SiteID)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.AccessKey == "" {
		sendError(h.logger, w, "access_key is required", http.StatusBadRequest)
		return
	}

	site, err := h.siteStorage.GetSite(ctx, string(siteID))
	if err != nil {
		if errors.Is(err, storage.ErrSiteNotFound) {
			h.logger.WarnContext(ctx, "token request for unknown site", slog.String("site_id", string(siteID)))
			sendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get site", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	err = crypto.VerifyAccessKey(req.AccessKey, site.ID, site.KeyHash, site.KeySalt, h.hashParams)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidAccessKey) {
			h.logger.WarnContext(ctx, "invalid access key", slog.String("site_id", site.ID))
			sendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to verify access key", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, site.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "access token issued", slog.String("site_id", site.ID))

	sendJSON(h.logger, w, api.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}
