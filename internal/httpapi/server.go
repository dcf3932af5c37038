// Package httpapi serves the Prove API over HTTP: a chi.Mux wrapped in
// middleware, run inside an errgroup alongside graceful shutdown, as a
// stateless JSON API with no session store.
package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/CAFxX/httpcompression"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/owings1/pytableaux/pkg/service"
)

// Server is the Prove API HTTP server.
type Server struct {
	svc    *service.Service
	addr   string
	logger *slog.Logger
}

// NewServer constructs a Server bound to addr. A nil logger defaults to a
// discard logger.
func NewServer(addr string, svc *service.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{svc: svc, addr: addr, logger: logger}
}

// Serve runs the server and blocks until ctx is cancelled or the listener
// fails.
func (s *Server) Serve(ctx context.Context) error {
	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(middleware.Logger, middleware.Recoverer, middleware.RequestID)

	compress, err := httpcompression.Adapter()
	if err != nil {
		return fmt.Errorf("httpapi: build compression adapter: %w", err)
	}
	r.Use(compress)

	Mount(r, s.svc)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: r,
		BaseContext: func(net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("starting Prove API server", "addr", s.addr)

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("httpapi: serve: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
