package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kaper156/pygedcom/internal/api"
)

// shutdownTimeout bounds graceful shutdown after the context is cancelled.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

Endpoints:
  GET  /healthz       liveness probe
  POST /v1/verify     structural validation of the request body
  POST /v1/parse      record statistics of the request body
  POST /v1/export     export (?format=json|gedcom&empty_fields=true|false)

Examples:
  gedcom serve
  gedcom serve --addr :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			ac := c.newCache(noCache)
			defer ac.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           api.NewServer(c.Logger, ac),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
				c.Logger.Info("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					return err
				}
				if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the export cache")

	return cmd
}
