package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/stakelabs/staking-ledger/internal/config"
	"github.com/stakelabs/staking-ledger/internal/observability/tracing"
	"github.com/stakelabs/staking-ledger/internal/services"
)

// Server is the HTTP entry point of the staking module: the three named
// transition endpoints plus read-only ledger queries.
type Server struct {
	httpServer *http.Server
	service    *services.Service
}

func New(cfg *config.Config, service *services.Service) *Server {
	srv := &Server{service: service}

	router := chi.NewRouter()
	router.Use(tracingMiddleware)
	srv.setupRoutes(router)

	srv.httpServer = &http.Server{
		Addr:         cfg.API.Address(),
		Handler:      router,
		WriteTimeout: cfg.API.WriteTimeout,
		ReadTimeout:  cfg.API.ReadTimeout,
		IdleTimeout:  cfg.API.IdleTimeout,
	}
	return srv
}

func (s *Server) setupRoutes(router *chi.Mux) {
	router.Get("/healthcheck", s.handleHealthcheck)

	router.Route("/v1", func(r chi.Router) {
		r.Post("/stake", s.handleStake)
		r.Post("/unstake", s.handleUnstake)
		r.Post("/claim", s.handleClaim)
		r.Get("/stake/{owner}", s.handleGetStake)
		r.Get("/stake/{owner}/transitions", s.handleGetTransitions)
		r.Get("/transitions/{id}", s.handleGetTransition)
		r.Get("/totals", s.handleGetTotals)
	})
}

func (s *Server) Start() error {
	log.Info().Str("address", s.httpServer.Addr).Msg("Starting staking ledger server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// tracingMiddleware stamps every request context with a trace id so all
// log lines of one transition correlate.
func tracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(tracing.InjectTraceID(r.Context())))
	})
}
