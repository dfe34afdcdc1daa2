package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/items/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local development item service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := mustGetStringFlag(cmd, "addr")
			data := mustGetStringFlag(cmd, "data")

			log := slog.Default()
			store, err := server.Open(data)
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:    addr,
				Handler: server.New(store, log).Handler(),
			}

			errc := make(chan error, 1)
			go func() {
				log.Info("listening", "addr", addr, "data", data)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errc <- err
				}
			}()

			exit := make(chan os.Signal, 1) // buffered so the notifier is not blocked
			signal.Notify(exit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errc:
				return err
			case sig := <-exit:
				log.Info("signal caught", "sig", sig)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(ctx)
		},
	}
	cmd.Flags().String("addr", "localhost:8080", "Address to listen on")
	cmd.Flags().String("data", "items.json", "Path of the JSON data file (empty for in-memory)")
	return cmd
}
