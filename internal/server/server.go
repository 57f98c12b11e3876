package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"web-summarizer/internal/domain"

	"github.com/rs/cors"
)

const (
	SummarizePath = "/summarize"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
	maxRequestBytes   = 1 << 20
)

// Runner executes one summary request.
type Runner interface {
	Run(ctx context.Context, requestID string, req domain.SummaryRequest) (domain.SummaryResult, error)
}

type Server struct {
	runner         Runner
	allowedOrigins []string
	log            *slog.Logger
}

func New(runner Runner, allowedOrigins []string, log *slog.Logger) *Server {
	return &Server{
		runner:         runner,
		allowedOrigins: allowedOrigins,
		log:            log,
	}
}

// Handler returns the routed endpoint wrapped in the CORS policy. The policy
// allows credentials from every configured origin and is not meant for
// production as-is.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+SummarizePath, s.handleSummarize)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"*"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.InfoContext(ctx, "Server is started",
		"addr", addr,
		"allowedOrigins", s.allowedOrigins)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.log.InfoContext(ctx, "Server is stopped",
		"addr", addr)

	return nil
}
