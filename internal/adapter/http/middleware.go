package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"campaign-dashboard/internal/core/port"
)

type claimsKey struct{}

// authenticate rejects requests without a valid bearer token. The verified
// claims are stored in the request context.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			token = ""
		}
		claims, err := h.auth.Authenticate(r.Context(), strings.TrimSpace(token))
		if err != nil {
			h.writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "Please authenticate"})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	})
}

// claimsFrom returns the claims stored by authenticate.
func claimsFrom(ctx context.Context) (port.TokenClaims, bool) {
	c, ok := ctx.Value(claimsKey{}).(port.TokenClaims)
	return c, ok
}
