package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mrz1836/addrgen/internal/config"
)

// readHeaderTimeout bounds slow header writers regardless of configuration.
const readHeaderTimeout = 5 * time.Second

// Server is the HTTP API server.
type Server struct {
	cfg     config.ServerConfig
	handler http.Handler
	log     *config.Logger

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a server for handler with the listen address and
// timeouts from cfg.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *config.Logger) *Server {
	if logger == nil {
		logger = config.NullLogger()
	}
	return &Server{cfg: cfg, handler: handler, log: logger}
}

// Start binds the listen address and serves in the background. Bind errors
// are returned; errors after that are logged.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer != nil {
		return fmt.Errorf("server already started on %s", s.listener.Addr())
	}

	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Listen, err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.cfg.ReadTimeout(),
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      s.cfg.WriteTimeout(),
		IdleTimeout:       s.cfg.IdleTimeout(),
		ErrorLog:          log.New(s.log.Writer(config.LogLevelError), "", 0),
	}

	s.log.Info("api server listening on %s", ln.Addr())
	go func(srv *http.Server) {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("api server error: %v", err)
		}
	}(s.httpServer)

	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts the server down, waiting for in-flight requests
// until ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.httpServer = nil
	s.listener = nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	s.log.Info("shutting down api server")
	return srv.Shutdown(ctx)
}

// Run starts the server and blocks until ctx is canceled, then stops it
// allowing grace for in-flight requests.
func (s *Server) Run(ctx context.Context, grace time.Duration) error {
	if err := s.Start(); err != nil {
		return err
	}
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	return s.Stop(stopCtx)
}
