package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/rios0rios0/workbench/internal/domain/commands"
	"github.com/rios0rios0/workbench/internal/domain/entities"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Dependencies are the commands the gateway exposes over HTTP.
type Dependencies struct {
	dig.In

	Settings         *entities.Settings
	Exec             commands.Exec
	WriteFiles       commands.WriteFiles
	GitHubAuth       commands.GitHubAuth
	SetCredential    commands.SetCredential
	Clone            commands.Clone
	Sync             commands.Sync
	ListRepositories commands.ListRepositories
	Chat             commands.Chat
}

// Server is the HTTP gateway. Each request runs on its own goroutine; the only
// state shared between requests is the credential store behind the commands.
type Server struct {
	deps   Dependencies
	router chi.Router
}

// NewServer creates the gateway and registers every route.
func NewServer(deps Dependencies) *Server {
	s := &Server{deps: deps}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(withRequestLogging)
	r.Use(withCORS(deps.Settings.Server.AllowedOrigins))

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/execute", s.handleExecute)
		r.Post("/write_files", s.handleWriteFiles)

		r.Get("/auth/github", s.handleAuthorize)
		r.Get("/github/callback", s.handleCallback)
		r.Get("/github/repos", s.handleListRepositories)

		r.Post("/git_auth", s.handleGitAuth)
		r.Post("/git_clone", s.handleGitClone)
		r.Post("/git_operation", s.handleGitOperation)

		r.Post("/chat", s.handleChat)
	})

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.deps.Settings.Server.Address,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
