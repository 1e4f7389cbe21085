package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sceneplan/internal/httpapi"
)

type serveOptions struct {
	Addr string
}

func newServeCommand() *cobra.Command {
	opts := serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "Listen address")
	_ = viper.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func runServe(cmd *cobra.Command, opts serveOptions) error {
	addr := resolveString(cmd, opts.Addr, "addr", "addr")
	if addr == "" {
		addr = ":8080"
	}
	service := newAppService(cmd)
	server := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewServer(service).Handler(log.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	log.Info().Str("addr", addr).Msg("http api listening")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("http server failed").
				WithCause(err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("http server shutdown failed").
			WithCause(err)
	}
	return nil
}
