package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/telos/internal/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// newServer builds the HTTP API over the App's services.
func newServer(app *App, addr string) *server.Server {
	cfg := app.config()
	if addr == "" {
		addr = cfg.Server.Addr
	}
	return server.New(server.Config{
		Addr:           addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Log:            app.Log,
		Services: server.Services{
			Drivers:   app.Drivers,
			Projects:  app.Projects,
			Resources: app.Resources,
			Tasks:     app.Tasks,
			Alignment: app.Alignment,
			Leveling:  app.Leveling,
			Scenario:  app.Scenario,
			Export:    app.Export,
		},
	})
}

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over a JSON/CSV HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := newServer(app, addr)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config server.addr)")
	return cmd
}
