// Package server wires the planner runtime and HTTP lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aislehq/aisle/internal/platform/config"
	"github.com/aislehq/aisle/internal/platform/timeouts"
	"github.com/aislehq/aisle/internal/services/planner/api/httpapi"
	"github.com/aislehq/aisle/internal/services/planner/domain"
	plannersqlite "github.com/aislehq/aisle/internal/services/planner/storage/sqlite"
)

type serverEnv struct {
	DBPath      string `env:"AISLE_PLANNER_DB_PATH"`
	TokenSecret string `env:"AISLE_PLANNER_TOKEN_SECRET"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "planner.db")
	}
	return cfg
}

// Server hosts the planner JSON API and storage lifecycle.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	store      *plannersqlite.Store
}

// New creates a configured planner server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured planner server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env := loadServerEnv()
	if strings.TrimSpace(env.TokenSecret) == "" {
		_ = listener.Close()
		return nil, errors.New("AISLE_PLANNER_TOKEN_SECRET is required")
	}
	store, err := openPlannerStore(env.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}
	signer, err := domain.NewTokenSigner([]byte(env.TokenSecret))
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, err
	}

	httpServer := &http.Server{
		Handler:           httpapi.New(domain.NewService(store, signer)),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{
		listener:   listener,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a planner server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the HTTP server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("planner server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		_ = s.httpServer.Shutdown(shutdownCtx)
		err := <-serveErr
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve planner api: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve planner api: %w", err)
	}
}

// Close releases the listener and storage.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close planner store: %v", err)
		}
	}
}

func openPlannerStore(path string) (*plannersqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := plannersqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open planner sqlite store: %w", err)
	}
	return store, nil
}
