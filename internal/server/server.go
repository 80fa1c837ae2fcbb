package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// ShutdownTimeout bounds how long in-flight requests get to finish
const ShutdownTimeout = 5 * time.Second

// Server represents the HTTP server
type Server struct {
	http *http.Server
	log  logrus.FieldLogger
}

// New creates a new server instance serving handler on addr
func New(addr string, handler http.Handler, log logrus.FieldLogger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Start listens on the configured address and blocks until the server stops.
// It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until the server stops
func (s *Server) Serve(ln net.Listener) error {
	s.log.WithField("addr", ln.Addr().String()).Info("Server listening")
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Run starts the server and shuts it down on SIGINT/SIGTERM
func (s *Server) Run() error {
	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		s.log.WithField("signal", sig.String()).Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return err
	}
	return <-errChan
}
