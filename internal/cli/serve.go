package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/molcanvas"
	httpAdapter "github.com/aretw0/molcanvas/pkg/adapters/http"
	"github.com/aretw0/molcanvas/pkg/adapters/memory"
	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/host"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// DefaultCanvas is the bounding box of the canvas mounted by Serve.
var DefaultCanvas = domain.BoundingBox{Right: 800, Bottom: 600}

// NewServeHandler mounts an editor on in-memory elements and returns it with
// the HTTP harness that drives it.
func NewServeHandler(logger *slog.Logger, box domain.BoundingBox) (*molcanvas.Editor, http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	streams := httpAdapter.NewStreamManager()

	ed := molcanvas.New(
		molcanvas.WithLogger(logger),
		molcanvas.WithMetrics(reg),
		molcanvas.WithLifecycleHooks(streams.Hooks()),
		molcanvas.WithLifecycleHooks(debugHooks(logger)),
	)
	els := host.Elements{Canvas: memory.NewElement(box), Log: memory.NewElement(domain.BoundingBox{})}
	if err := ed.Attach(els, &domain.Configuration{Tool: "select"}); err != nil {
		return nil, nil, err
	}

	handler := httpAdapter.NewHandler(ed,
		httpAdapter.WithStreams(streams),
		httpAdapter.WithGatherer(reg),
		httpAdapter.WithVersion(strings.TrimSpace(molcanvas.Version)),
		httpAdapter.WithLogger(logger),
	)
	return ed, handler, nil
}

// Serve runs the HTTP harness on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	ed, handler, err := NewServeHandler(logger, DefaultCanvas)
	if err != nil {
		return fmt.Errorf("failed to mount editor: %w", err)
	}
	defer ed.Detach()

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting molcanvas server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Start shutdown")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
			return srv.Close()
		}
		logger.Info("Server stopped gracefully")
		return nil
	}
}
