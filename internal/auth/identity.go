// Package auth carries the already-authenticated caller identity through the
// request context. Authentication itself happens upstream; the core only
// consumes the role flags, e.g. for audit logging on status mutations.
package auth

import (
	"context"
	"net/http"
	"strconv"
)

type Identity struct {
	CustomerID int
	IsAdmin    bool
	IsManager  bool
}

type contextKey struct{}

// Middleware lifts the identity headers set by the upstream auth layer into
// the request context. Absent headers yield a zero identity.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := Identity{}
		if v := r.Header.Get("X-Customer-Id"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				ident.CustomerID = id
			}
		}
		ident.IsAdmin = r.Header.Get("X-Is-Admin") == "true"
		ident.IsManager = r.Header.Get("X-Is-Manager") == "true"

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
	})
}

func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, ident)
}

func FromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(contextKey{}).(Identity)
	return ident, ok
}
