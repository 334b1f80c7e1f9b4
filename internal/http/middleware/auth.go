package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/admin"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/response"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/security"
)

type contextKey string

const (
	ContextAdminIDKey contextKey = "admin_id"
	ContextRoleKey    contextKey = "role"
)

type AuthMiddleware struct {
	jwt *security.JWTProvider
}

func NewAuthMiddleware(jwt *security.JWTProvider) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

// Authenticate requires a valid bearer token and an admin role; every
// back-office route sits behind it. On a JSON surface the login redirect
// becomes a plain 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		claims, err := m.jwt.Parse(parts[1])
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid token", err))
			return
		}
		adminID, err := common.ParseUUID(claims.UserID)
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid user id", err))
			return
		}
		role := admin.Role(strings.ToLower(strings.TrimSpace(claims.Role)))
		if role != admin.RoleAdmin {
			response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
			return
		}
		ctx := context.WithValue(r.Context(), ContextAdminIDKey, adminID)
		ctx = context.WithValue(ctx, ContextRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AdminIDFromContext(ctx context.Context) (common.UUID, bool) {
	id, ok := ctx.Value(ContextAdminIDKey).(common.UUID)
	return id, ok
}
