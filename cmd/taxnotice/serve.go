package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MalithGihan/taxnotice-service/internal/account"
	"github.com/MalithGihan/taxnotice-service/internal/server"
	"github.com/MalithGihan/taxnotice-service/internal/store"
)

func serveCmd(load loader) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			p, err := newPipeline(ctx, cfg, log)
			if err != nil {
				return err
			}
			st, err := store.New(cfg.DataRoot)
			if err != nil {
				return err
			}
			srv := server.New(server.Options{
				Pipeline:       p,
				Accounts:       account.NewService(st, account.DefaultHasher(), log.With("component", "account")),
				Logger:         log.With("component", "http"),
				Provider:       cfg.Model.Provider,
				MaxUploadBytes: cfg.MaxUploadBytes(),
				AllowedOrigins: cfg.AllowedOrigins,
			})

			hs := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           srv,
				ReadHeaderTimeout: 10 * time.Second,
				// uploads plus one model call
				WriteTimeout: cfg.Model.Timeout + 30*time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				log.Info("taxnotice-service listening", "port", cfg.Port, "provider", cfg.Model.Provider, "template", p.TemplateVersion())
				errc <- hs.ListenAndServe()
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := hs.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}
