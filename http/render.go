package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/topfive/backend/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// renderPage executes the named template into a buffer first so a render
// failure can still produce a clean 500 instead of a half-written page.
func (s *HttpServer) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("render template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (s *HttpServer) notFound(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusNotFound, "404.html", nil)
}

func (s *HttpServer) internalError(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusInternalServerError, "500.html", nil)
}
