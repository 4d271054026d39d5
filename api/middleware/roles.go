package middleware

import (
	"net/http"

	"github.com/motorhaus-io/motorhaus-backend/api/responses"
	pkgerrors "github.com/motorhaus-io/motorhaus-backend/pkg/errors"
	"github.com/motorhaus-io/motorhaus-backend/pkg/logger"
)

// RequireRole rejects callers whose context role does not match. It runs
// after Auth, so an empty role also lands here as forbidden.
func RequireRole(role string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if actor := RoleFromContext(r.Context()); actor != role {
				forbidden := pkgerrors.New(pkgerrors.CodeForbidden, "role required")
				responses.WriteError(r.Context(), logg, w, forbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
