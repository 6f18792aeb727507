package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"ollamaapi/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Generate(ctx context.Context, req types.GenerateRequest) (types.GenerateResponse, error)
	Chat(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error)
	ListModels(ctx context.Context) ([]types.ModelInfo, error)
	Pull(ctx context.Context, name string) error
	Health(ctx context.Context) error
	Status(ctx context.Context) types.StatusResponse
	DefaultModel() string
}

// Server holds the HTTP layer's dependencies. It has no mutable state.
type Server struct {
	svc     Service
	log     zerolog.Logger
	baseCtx context.Context
	maxBody int64
}

// New constructs a Server for svc.
func New(svc Service, opts Options) *Server {
	opts = opts.withDefaults()
	return &Server{
		svc:     svc,
		log:     opts.Logger.With().Str("component", "http").Logger(),
		baseCtx: opts.BaseContext,
		maxBody: opts.MaxBodyBytes,
	}
}

// NewMux builds the routed handler for svc.
func NewMux(svc Service, opts Options) http.Handler {
	return New(svc, opts).Routes(opts.CORS)
}

// Routes returns the chi router with all middleware and endpoints.
func (s *Server) Routes(c CORSOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(hlog.NewHandler(s.log))
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog())
	r.Use(recoverer)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if len(c.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: c.AllowedOrigins,
			AllowedMethods: c.AllowedMethods,
			AllowedHeaders: c.AllowedHeaders,
			ExposedHeaders: []string{requestIDHeader},
		}))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)
	r.Route("/api", func(r chi.Router) {
		r.Get("/models", s.handleModels)
		r.Post("/generate", s.handleGenerate)
		r.Post("/chat", s.handleChat)
		r.Post("/pull", s.handlePull)
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	MountSwagger(r)

	return r
}
