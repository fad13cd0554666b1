package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/srcforge/srcforge/internal/api"
	pkgerrors "github.com/srcforge/srcforge/pkg/errors"
	"github.com/srcforge/srcforge/pkg/pkgs"
)

// shutdownTimeout bounds graceful shutdown on interrupt.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve package metadata over HTTP",
		Long: `Serve the package metadata as a read-only JSON API.

Endpoints:
  GET /healthz                    liveness probe
  GET /packages                   all packages (name, type, version)
  GET /packages/{name}            full metadata for one package
  GET /packages/{name}/tarball    resolved tarball filename and upstream URL

The listen address comes from the config file's [server] section and can be
overridden with --addr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := pkgerrors.ValidateRoot(cfg.Root); err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			reg := pkgs.New(cfg.Root, pkgs.WithLogger(c.Logger))
			server := &http.Server{
				Addr:    cfg.Server.Addr,
				Handler: api.New(reg, c.Logger).Router(),
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Infof("Serving package metadata for %s on %s", cfg.Root, cfg.Server.Addr)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
				c.Logger.Info("Shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := server.Shutdown(ctx); err != nil {
					return err
				}
				if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")

	return cmd
}
