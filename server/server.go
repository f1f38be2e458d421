// Package server is the browser presentation of the game: a JSON API to read
// the table and send actions, a websocket pushing the table after every
// change, and a QR code pointing phones at the page.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/luca-patrignani/solitaire/domain/solitaire"
)

//go:embed static
var static embed.FS

// Server owns the single game served to browsers. Every access to the game
// goes through mu.
type Server struct {
	mu        sync.Mutex
	game      *solitaire.Game
	games     int
	seed      []byte
	publicURL string
	hub       *Hub
	logger    *slog.Logger
}

type settings struct {
	seed      []byte
	publicURL string
}

type option func(settings) settings

// WithSeed makes the served games reproducible.
func WithSeed(seed []byte) option {
	return func(s settings) settings {
		s.seed = seed
		return s
	}
}

// WithPublicURL sets the address encoded in the QR code. By default it is
// derived from the request.
func WithPublicURL(url string) option {
	return func(s settings) settings {
		s.publicURL = url
		return s
	}
}

func New(logger *slog.Logger, opts ...option) *Server {
	s := settings{}
	for _, opt := range opts {
		s = opt(s)
	}
	srv := &Server{
		seed:      s.seed,
		publicURL: s.publicURL,
		logger:    logger,
		hub:       NewHub(logger),
	}
	srv.game = srv.newGame()
	return srv
}

// newGame builds the next game. With a seed, game n uses seed#n so that a
// new game is a new deal while staying reproducible.
func (s *Server) newGame() *solitaire.Game {
	s.games++
	hook := solitaire.WithPhaseHook(func(old, new solitaire.Phase) {
		s.logger.Debug("phase change", "from", old, "to", new)
	})
	if s.seed == nil {
		return solitaire.NewGame(hook)
	}
	seed := fmt.Sprintf("%s#%d", s.seed, s.games)
	return solitaire.NewGame(solitaire.WithSeed([]byte(seed)), hook)
}

// Router returns the HTTP routes of the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/action", s.handleAction)
		r.Post("/new", s.handleNew)
		r.Get("/qr", s.handleQR)
	})
	r.Get("/ws", s.handleWS)

	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/*", http.FileServer(http.FS(sub)))
	return r
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go s.hub.Run(hubCtx)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.ListenAndServe()
	}()
	s.logger.Info("serving solitaire", "addr", addr)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
