package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/raysh454/fhscan/internal/app"
	"github.com/raysh454/fhscan/internal/logging"
	"github.com/raysh454/fhscan/internal/server"
)

func newServeCommand(e *env) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				e.cfg.Server.ListenAddr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return e.withApp(cmd, func(a *app.Application) error {
				srv, err := server.NewServer(server.Config{
					ListenAddr:     e.cfg.Server.ListenAddr,
					AllowedOrigins: e.cfg.Server.AllowedOrigins,
					Logger:         e.logger,
				}, a.Orch)
				if err != nil {
					return err
				}
				return serve(ctx, srv.HTTPServer(), e.logger)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.listen_addr)")
	return cmd
}

// serve runs hs until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, hs *http.Server, logger logging.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("api listening", logging.Field{Key: "addr", Value: hs.Addr})
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("api shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	return hs.Shutdown(shutdownCtx)
}
