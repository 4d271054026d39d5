package middleware

import "context"

type contextKey string

const (
	ctxUserID contextKey = "user_id"
	ctxRole   contextKey = "actor_role"
)

// UserIDFromContext returns the authenticated user's id, or zero when the
// request never passed through Auth.
func UserIDFromContext(ctx context.Context) uint {
	if ctx == nil {
		return 0
	}
	v, _ := ctx.Value(ctxUserID).(uint)
	return v
}

// RoleFromContext returns the authenticated user's role, or empty.
func RoleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(ctxRole).(string)
	return v
}

func WithUserID(ctx context.Context, userID uint) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserID, userID)
}

func WithRole(ctx context.Context, role string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxRole, role)
}
