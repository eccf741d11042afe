package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// Server runs an http.Server until its context is cancelled or the process
// receives SIGINT or SIGTERM, then shuts it down gracefully.
type Server struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	ready    chan struct{}
	stopOnce sync.Once
}

func New(opts ...Option) *Server {
	s := &Server{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		logger:          slog.New(slog.DiscardHandler),
		ready:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ready is closed once the server is accepting connections.
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Addr returns the bound address after Ready, or the configured one before.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Run serves handler and blocks until shutdown completes. A nil handler
// responds 404 to everything.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	s.listener = ln
	s.srv = &http.Server{
		Handler:      handler,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		IdleTimeout:  s.idleTimeout,
	}
	srv := s.srv
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	s.logger.Info("http server started", logger.Component("httpserver"), slog.String("addr", ln.Addr().String()))
	close(s.ready)

	var serveErr error
	select {
	case <-ctx.Done():
		if err := s.Shutdown(context.Background()); err != nil {
			return err
		}
		serveErr = <-errCh
	case serveErr = <-errCh:
	}

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, serveErr)
	}
	return nil
}

// Shutdown stops a running server gracefully. Repeated calls and calls
// before Run are no-ops.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
		s.logger.Info("http server stopped", logger.Component("httpserver"), logger.Error(err))
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
