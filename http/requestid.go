package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/topfive/backend/logger"
)

// requestIDMiddleware tags every request with a uuid, both on the response
// and on the logger carried in the request context.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		ctx := logger.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
