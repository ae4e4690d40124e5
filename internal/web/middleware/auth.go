// Package middleware provides HTTP middleware for the web server.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/candeia/chants/internal/logging"
)

type contextKey string

const ownerKey contextKey = "owner_uid"

// TokenResolver maps a bearer token to the account identity it
// authenticates. Implemented by store.Store, optionally fronted by
// store.TokenCache.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (uuid.UUID, error)
}

// BearerAuth validates the Authorization header and stores the resolved
// owner identity in the request context. Requests without a valid token are
// rejected with 401 before reaching any handler; handlers therefore always
// run with a known owner.
func BearerAuth(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "missing Authorization header")
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				unauthorized(w, "Authorization header must use the Bearer scheme")
				return
			}

			token := strings.TrimPrefix(header, prefix)
			if token == "" {
				unauthorized(w, "empty bearer token")
				return
			}

			owner, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				logging.FromContext(r.Context()).Warn("auth: token rejected",
					"path", r.URL.Path,
					"method", r.Method,
					"remote_addr", r.RemoteAddr,
				)
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), ownerKey, owner)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerFromContext returns the authenticated account identity stored by
// BearerAuth. The second return is false on requests that never passed
// through the middleware.
func OwnerFromContext(ctx context.Context) (uuid.UUID, bool) {
	owner, ok := ctx.Value(ownerKey).(uuid.UUID)
	return owner, ok && owner != uuid.Nil
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"error":%q,"code":"AUTH001"}`, msg)
}
