package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathplanner/internal/httpapi"
)

const shutdownGrace = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API and landing page over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer d.Close()

		handler, err := httpapi.NewRouter(httpapi.Options{Tutor: d.tutor, Log: d.log})
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              d.cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			d.log.WithField("addr", srv.Addr).Info("listening")
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		d.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MATHPLANNER_ADDR, default :5000)")
}
