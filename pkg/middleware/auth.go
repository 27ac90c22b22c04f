package middleware

import (
	"net/http"
	"strings"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookieName is where the session token lives on the browser side.
const SessionCookieName = "tour_session"

// extractToken reads the session token from the httpOnly cookie, falling
// back to an Authorization Bearer header for non-browser clients.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// AuthSession validates the session token and loads the user into context.
func AuthSession(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			user, err := userRepo.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Error(err),
					zap.String("user_id", session.UserID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole enforces the role policy set by AuthSession. Superadmin
// passes every gate; admin passes admin gates only.
func RequireRole(required entity.UserRole, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			if !role.AtLeast(required) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Insufficient role for route",
					zap.String("user_id", userID.String()),
					zap.String("role", string(role)),
					zap.String("required", string(required)),
					zap.String("path", r.URL.Path))
				if required == entity.RoleSuperadmin {
					utils.ResponseForbidden(w, "Superadmin access required")
					return
				}
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			// Admin responses must never be cached by intermediaries.
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")

			next.ServeHTTP(w, r)
		})
	}
}
