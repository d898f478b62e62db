package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/nvalerio/wearsync/internal/xslog"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns each request an id and injects an enriched logger
// into the request context.
func RequestID(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.New().String()
			w.Header().Set(requestIDHeader, id)
			ctx := xslog.IntoContext(r.Context(), base.With(xslog.RequestID(id)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
