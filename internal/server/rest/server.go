// Package rest exposes the vault over HTTP: public registration and sign-in
// endpoints plus token-guarded credential and network routes.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/drivenpass/internal/logging"
	"github.com/dmitrijs2005/drivenpass/internal/server/credentials"
	"github.com/dmitrijs2005/drivenpass/internal/server/networks"
	"github.com/dmitrijs2005/drivenpass/internal/server/sessions"
	"github.com/dmitrijs2005/drivenpass/internal/server/users"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 10 * time.Second
	idleTimeout     = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	address     string
	logger      logging.Logger
	users       *users.Service
	credentials *credentials.Service
	networks    *networks.Service
	sessionRepo sessions.Repository
	jwtSecret   []byte
}

func NewServer(
	address string,
	logger logging.Logger,
	us *users.Service,
	cs *credentials.Service,
	ns *networks.Service,
	sessionRepo sessions.Repository,
	secretKey string,
) *Server {
	return &Server{
		address:     address,
		logger:      logger.With("module", "rest_server"),
		users:       us,
		credentials: cs,
		networks:    ns,
		sessionRepo: sessionRepo,
		jwtSecret:   []byte(secretKey),
	}
}

// Router assembles the route tree. Registration and sign-in are public;
// everything under /credentials and /networks requires a live session.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Post("/users", s.handleRegister)
	r.Post("/auth/sign-in", s.handleSignIn)

	r.Route("/credentials", func(r chi.Router) {
		r.Use(s.authenticator)
		r.Get("/", s.handleListCredentials)
		r.Post("/", s.handleCreateCredential)
		r.Get("/{id}", s.handleGetCredential)
		r.Delete("/{id}", s.handleDeleteCredential)
	})

	r.Route("/networks", func(r chi.Router) {
		r.Use(s.authenticator)
		r.Get("/", s.handleListNetworks)
		r.Post("/", s.handleCreateNetwork)
		r.Get("/{id}", s.handleGetNetwork)
		r.Delete("/{id}", s.handleDeleteNetwork)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.Router(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
