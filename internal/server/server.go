package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/PouchSim_Go/internal/database"
	"github.com/osse101/PouchSim_Go/internal/handler"
	"github.com/osse101/PouchSim_Go/internal/logger"
	"github.com/osse101/PouchSim_Go/internal/metrics"
	"github.com/osse101/PouchSim_Go/internal/session"
	"github.com/osse101/PouchSim_Go/internal/sse"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	Environment    string
}

// Server is the HTTP front of the session service
type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer builds the router. dbPool may be nil when snapshots are disabled.
func NewServer(opts Options, dbPool database.Pool, sessionService session.Service, catalog handler.ItemCatalog, hub *sse.Hub) *Server {
	r := NewRouter(opts, dbPool, sessionService, catalog, hub)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// NewRouter wires middleware and routes
func NewRouter(opts Options, dbPool database.Pool, sessionService session.Service, catalog handler.ItemCatalog, hub *sse.Hub) chi.Router {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	r.Use(requestIDMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	if opts.APIKey != "" {
		r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	} else {
		logger.Warn(LogMsgAuthDisabled)
	}
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.Version, opts.Environment, len(catalog.Items())))
	r.Handle("/metrics", promhttp.Handler())

	sessions := handler.NewSessionHandler(sessionService)
	snapshots := handler.NewSnapshotHandler(sessionService)
	items := handler.NewItemHandler(catalog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessions.HandleCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", sessions.HandleGet)
				r.Delete("/", sessions.HandleDelete)
				r.Post("/commands", sessions.HandleApply)
				r.Post("/undo", sessions.HandleUndo)
				r.Post("/branch", sessions.HandleBranch)
				r.Get("/display", sessions.HandleDisplay)
				r.Post("/snapshots", snapshots.HandleSave)
			})
		})

		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/", snapshots.HandleList)
			r.Post("/{name}/restore", snapshots.HandleRestore)
			r.Delete("/{name}", snapshots.HandleDelete)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", items.HandleList)
			r.Get("/{id}", items.HandleGet)
		})

		r.Get("/events", sse.Handler(hub))
	})

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// requestIDMiddleware tags the context and the response with a request ID.
// A caller supplied X-Request-ID is reused.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		log := logger.FromContext(r.Context())

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start blocks serving HTTP until Stop is called
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
