package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/gophtext/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Идентификатор сайта из токена кладется в контекст запроса.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header", "path", r.URL.Path)
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, tokenString, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				// Сам заголовок не логируем: он может содержать токен
				logger.Warn("Invalid Authorization header format", "path", r.URL.Path)
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, tokenString)
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			logger.Debug("Site authenticated", "site_id", claims.SiteID)

			next.ServeHTTP(w, r.WithContext(handlers.WithSiteID(r.Context(), claims.SiteID)))
		})
	}
}
