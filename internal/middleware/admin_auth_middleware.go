package middleware

import (
	"context"
	"crypto/rsa"
	"net/http"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

// AdminAuthMiddleware validates a JWT and ensures it carries the "admin"
// role. Moderation transitions are admin-only; everyone else gets 403.
func AdminAuthMiddleware(pub *rsa.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sub, claims, ok := authenticate(w, r, pub)
			if !ok {
				return
			}

			role, _ := claims["role"].(string)
			if role != "admin" {
				utils.RespondErrorWithCode(
					w, http.StatusForbidden, utils.ErrCodeForbidden, "Insufficient permissions", nil,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
