package http

import (
	"net/http"
	"runtime/debug"

	"github.com/topfive/backend/logger"
)

// recoverMiddleware turns a panic into the rendered fault page. The panic
// detail stays in the server log; the client only ever sees the 500 page.
func (s *HttpServer) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log := logger.FromContext(r.Context())
				log.Error("panic serving request",
					"panic", rec,
					"path", r.URL.Path,
					"stack", string(debug.Stack()))
				s.internalError(w, r)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
