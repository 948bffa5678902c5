// Package httpapi serves the gym engine over HTTP and websocket.
package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/gym-chess-go/internal/config"
	"github.com/lgbarn/gym-chess-go/internal/gym"
)

const apiPrefix = "/api"

// Server routes requests to a gym.Engine.
type Server struct {
	cfg      *config.Config
	engine   *gym.Engine
	router   *mux.Router
	upgrader websocket.Upgrader
}

// NewServer creates a server with its routes registered.
func NewServer(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	s := &Server{
		cfg:    cfg,
		engine: gym.NewEngine(cfg),
		router: mux.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	s.router.NotFoundHandler = s.accessLog(http.HandlerFunc(notFoundHandler))
	s.router.MethodNotAllowedHandler = s.accessLog(http.HandlerFunc(methodNotAllowedHandler))
	s.router.Use(s.accessLog)

	// Routes stay on the root router so method mismatches reach
	// MethodNotAllowedHandler.
	s.router.HandleFunc(apiPrefix+"/initial", s.initialHandler).Methods(http.MethodGet)
	for _, op := range []string{OpNextState, OpMoves, OpCastleMoves, OpUpdateState, OpMinimax} {
		s.router.HandleFunc(apiPrefix+"/"+op, s.opHandler(op)).Methods(http.MethodPost)
	}
	s.router.HandleFunc("/ws", s.wsHandler)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until the server fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
	s.logf(1, "listening on %s\n", s.cfg.Server.Addr)
	return srv.ListenAndServe()
}

// accessLog writes Apache common log lines to the log stream.
func (s *Server) accessLog(next http.Handler) http.Handler {
	if s.cfg.Verbosity < 1 || s.cfg.LogFile == nil {
		return next
	}
	return handlers.LoggingHandler(s.cfg.LogFile, next)
}

func (s *Server) logf(level int, format string, args ...interface{}) {
	if s.cfg.Verbosity >= level && s.cfg.LogFile != nil {
		fmt.Fprintf(s.cfg.LogFile, format, args...)
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method " + r.Method + " not allowed"})
}
