package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"receivecopy/internal/app/server/api"
	"receivecopy/internal/domain/receive"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server - HTTP API журнала
type Server struct {
	http *http.Server
	log  *slog.Logger
}

func New(address string, service receive.Servicer, log *slog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              address,
			Handler:           api.New(service, log),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: log.With("component", "http_server"),
	}
}

// Run слушает адрес до отмены ctx, затем мягко останавливает сервер.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Сервер запущен", "address", ln.Addr().String())
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("Остановка сервера...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("Сервер остановлен")
	return nil
}
