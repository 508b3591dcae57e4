package common

import (
	"context"
	"net/http"
	"strings"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/apperr"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	usernameKey
)

// TokenValidator is satisfied by *TokenManager.
type TokenValidator interface {
	ValidToken(tokenString string) (*Claims, error)
}

// AuthMiddleware requires a Bearer session token and injects the caller's
// identity into the request context.
func AuthMiddleware(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				RespondError(w, apperr.Unauthenticated("authorization required"))
				return
			}

			// header = Bearer <token>
			parts := strings.Fields(header)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				RespondError(w, apperr.Unauthenticated("invalid auth header"))
				return
			}

			claims, err := tokens.ValidToken(parts[1])
			if err != nil {
				RespondError(w, apperr.Unauthenticated("invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), claims.UserID, claims.Username)))
		})
	}
}

func WithIdentity(ctx context.Context, userID uint64, username string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, usernameKey, username)
}

func UserIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(userIDKey).(uint64)
	return id, ok && id != 0
}

func UsernameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey).(string)
	return name
}
