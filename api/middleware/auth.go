package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/motorhaus-io/motorhaus-backend/api/responses"
	pkgauth "github.com/motorhaus-io/motorhaus-backend/pkg/auth"
	"github.com/motorhaus-io/motorhaus-backend/pkg/config"
	pkgerrors "github.com/motorhaus-io/motorhaus-backend/pkg/errors"
	"github.com/motorhaus-io/motorhaus-backend/pkg/logger"
)

// bearerToken strips an optional case-insensitive "Bearer " prefix from the
// Authorization header.
func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}

// Auth validates the bearer token and seeds the request context with the
// authenticated user id and role.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}
			if claims.UserID == 0 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing subject"))
				return
			}

			role := claims.Role.String()
			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
			ctx = context.WithValue(ctx, ctxRole, role)
			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":    strconv.FormatUint(uint64(claims.UserID), 10),
					"actor_role": role,
				})
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
