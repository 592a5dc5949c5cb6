package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jaminalder/cookies-and-milk/internal/app"
)

// Server wires the game routes onto a chi router.
type Server struct {
	r   *chi.Mux
	srv *http.Server
	log zerolog.Logger
}

// Option configures a Server.
type Option func(*config)

type config struct {
	log      zerolog.Logger
	gatherer prometheus.Gatherer
}

// WithLogger sets the access logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithMetrics exposes g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(c *config) { c.gatherer = g }
}

// NewServer wires routes and middleware around the shared game.
func NewServer(s *app.Service, opts ...Option) *Server {
	cfg := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(cfg.log))
	r.Use(chimw.Recoverer)

	h := &handlers{svc: s, log: cfg.log}
	r.Get("/health", h.health)
	r.Route("/12", func(r chi.Router) {
		r.Get("/board", h.board)
		r.Post("/reset", h.reset)
		r.Post("/place/{team}/{column}", h.place)
		r.Get("/random-board", h.random)
	})
	if cfg.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}))
	}

	return &Server{
		r: r,
		srv: &http.Server{
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: cfg.log,
	}
}

// Handler returns the router, mostly for tests.
func (s *Server) Handler() http.Handler { return s.r }

// Start serves on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called. A shutdown is
// not reported as an error.
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
