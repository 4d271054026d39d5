package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/motorhaus-io/motorhaus-backend/pkg/auth"
	"github.com/motorhaus-io/motorhaus-backend/pkg/config"
	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
)

var testJWT = config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60}

func mintTestToken(t *testing.T, userID uint, role enums.UserRole) string {
	t.Helper()
	token, err := auth.MintAccessToken(testJWT, time.Now().UTC(), auth.AccessTokenPayload{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serveAuth(t *testing.T, authz string, inner http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	resp := httptest.NewRecorder()
	Auth(testJWT, nil)(inner).ServeHTTP(resp, req)
	return resp
}

func TestAuthRejectsMissingToken(t *testing.T) {
	if resp := serveAuth(t, "", okHandler()); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	if resp := serveAuth(t, "Bearer invalid", okHandler()); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthSeedsContextFromValidToken(t *testing.T) {
	token := mintTestToken(t, 42, enums.UserRoleAdmin)

	var gotUser uint
	var gotRole string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	resp := serveAuth(t, "Bearer "+token, inner)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if gotUser != 42 {
		t.Fatalf("expected user 42 in context, got %d", gotUser)
	}
	if gotRole != enums.UserRoleAdmin.String() {
		t.Fatalf("expected role admin got %s", gotRole)
	}
}

func serveWithRole(t *testing.T, required, actual string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRole(req.Context(), actual))
	resp := httptest.NewRecorder()
	RequireRole(required, nil)(okHandler()).ServeHTTP(resp, req)
	return resp
}

func TestRequireRoleBlocksMismatch(t *testing.T) {
	resp := serveWithRole(t, enums.UserRoleAdmin.String(), enums.UserRoleCustomer.String())
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestRequireRoleAllowsMatch(t *testing.T) {
	resp := serveWithRole(t, enums.UserRoleAdmin.String(), enums.UserRoleAdmin.String())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
