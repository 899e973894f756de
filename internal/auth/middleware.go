package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

// Middleware returns a mux middleware that validates bearer tokens and puts
// the resulting claims in the request context
func Middleware(service interfaces.AuthService, log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, types.NewAuthenticationError("Missing authorization header"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, types.NewAuthenticationError("Invalid authorization header format"))
				return
			}

			claims, err := service.ValidateToken(parts[1])
			if err != nil {
				log.WithError(err).Warn("Token validation failed")
				writeError(w, types.NewAuthenticationError("Invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts user claims from a request context
func ClaimsFromContext(ctx context.Context) (*types.UserClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*types.UserClaims)
	return claims, ok
}
