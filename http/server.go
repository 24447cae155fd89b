package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/topfive/backend/conf"
	"github.com/topfive/backend/subm"
)

type HttpServer struct {
	store  *subm.Store
	flash  *flashCodec
	cfg    conf.Config
	router *chi.Mux
	srv    *http.Server
}

func NewHttpServer(store *subm.Store, cfg conf.Config) *HttpServer {
	router := chi.NewRouter()

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := httplog.NewLogger("topfive", httplog.Options{
		LogLevel:         logLevel,
		Concise:          true,
		MessageFieldName: "message",
	})

	server := &HttpServer{
		store:  store,
		flash:  newFlashCodec([]byte(cfg.SecretKey)),
		cfg:    cfg,
		router: router,
	}

	router.Use(requestIDMiddleware)
	router.Use(httplog.RequestLogger(logger))
	router.Use(metricsMiddleware)
	router.Use(server.recoverMiddleware)

	server.routes()

	return server
}

func (s *HttpServer) routes() {
	r := s.router

	limiter := newRateLimiter(1, 10) // 1 req/s sustained, bursts of 10 per IP

	r.Get("/", s.getHome)
	r.With(limiter.middleware).Post("/", s.postSubmission)
	r.With(limiter.middleware).Post("/clear", s.postClear)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.NotFound(s.notFound)
}

func (s *HttpServer) Start(address string) error {
	s.srv = &http.Server{Addr: address, Handler: s.router}
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *HttpServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Handler exposes the routed mux, mainly for tests.
func (s *HttpServer) Handler() http.Handler {
	return s.router
}
