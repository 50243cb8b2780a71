package middleware

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

type contextKey string

const (
	ContextKeyUserID    = contextKey("userID")
	ContextKeyUserEmail = contextKey("userEmail")

	// Cookie name follows the __Host- prefix rule (no Domain attribute allowed)
	AccessTokenCookieName = "__Host-accessToken"
)

// AuthMiddleware protects endpoints that need a signed-in visitor. The JWT
// is read from the AccessTokenCookieName cookie (web) or from
// Authorization: Bearer (everything else). Missing or invalid tokens get 401.
func AuthMiddleware(pub *rsa.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sub, claims, ok := authenticate(w, r, pub)
			if !ok {
				return
			}
			ctx := context.WithValue(r.Context(), ContextKeyUserID, sub)
			if email, ok := claims["email"].(string); ok && email != "" {
				ctx = context.WithValue(ctx, ContextKeyUserEmail, email)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticate validates the request's token and returns the subject plus
// the full claim set. On failure it has already written the error response.
func authenticate(w http.ResponseWriter, r *http.Request, pub *rsa.PublicKey) (string, jwt.MapClaims, bool) {
	tokenStr, err := extractAccessToken(r)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
		)
		return "", nil, false
	}

	tok, vErr := ValidateToken(tokenStr, pub)
	if vErr != nil || !tok.Valid {
		if errors.Is(vErr, jwt.ErrTokenExpired) {
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
			)
			return "", nil, false
		}
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
		)
		return "", nil, false
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid claims", nil,
		)
		return "", nil, false
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing subject", nil,
		)
		return "", nil, false
	}
	return sub, claims, true
}

// helper: read the token from the cookie if present, else from Bearer
func extractAccessToken(r *http.Request) (string, error) {
	if c, err := r.Cookie(AccessTokenCookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing access token")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}
