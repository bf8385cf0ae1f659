package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lromero/guestdesk/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// WeddingIDKey is the context key for the wedding scope of the request
	WeddingIDKey ContextKey = "wedding_id"
)

// WeddingScope resolves the wedding a request operates on from the
// X-Wedding-ID header. Every admin and RSVP operation is scoped to exactly
// one wedding; ids from other weddings are treated as not found further down.
func WeddingScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		weddingIDStr := r.Header.Get("X-Wedding-ID")
		if weddingIDStr == "" {
			// Single-tenant deployments omit the header
			ctx := context.WithValue(r.Context(), WeddingIDKey, int64(1))
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		weddingID, err := strconv.ParseInt(weddingIDStr, 10, 64)
		if err != nil || weddingID < 1 {
			response.BadRequest(w, "Invalid X-Wedding-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), WeddingIDKey, weddingID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetWeddingID extracts the wedding scope from the request context
func GetWeddingID(ctx context.Context) (int64, bool) {
	weddingID, ok := ctx.Value(WeddingIDKey).(int64)
	return weddingID, ok
}
