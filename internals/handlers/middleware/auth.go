package middleware

import (
	"context"
	"net/http"
	"strings"

	"FounderX/internals/apperrors"
	"FounderX/internals/security"
)

type TokenVerifier interface {
	Verify(token string) (security.Claims, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

type claimsKey struct{}

// Bearer requires "Authorization: Bearer <token>" and stores the verified
// claims in the request context.
func Bearer(verifier TokenVerifier, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, apperrors.ErrTokenMissing())
				return
			}

			scheme, raw, ok := strings.Cut(h, " ")
			raw = strings.TrimSpace(raw)
			if !ok || !strings.EqualFold(scheme, "Bearer") || raw == "" {
				writeErr(w, r, apperrors.ErrTokenInvalid())
				return
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (security.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(security.Claims)
	return c, ok
}
