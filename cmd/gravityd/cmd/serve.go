package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/client"
	"github.com/GPTx-global/gravity/relayer/config"
	"github.com/GPTx-global/gravity/relayer/log"
	"github.com/GPTx-global/gravity/server"
)

const (
	FlagListenAddress = "listen-address"
	FlagLogToFile     = "log-to-file"
)

// ServeCmd serves the read-only HTTP API until interrupted.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx := client.GetContext(cmd)

			addr := config.ListenAddress()
			if cmd.Flags().Changed(FlagListenAddress) {
				addr, _ = cmd.Flags().GetString(FlagListenAddress)
			}

			if toFile, _ := cmd.Flags().GetBool(FlagLogToFile); toFile {
				level, format := logSettings(cmd)
				if _, err := log.ResetLogger(clientCtx.Home, level, format); err != nil {
					return err
				}
			}

			gravityApp, err := clientCtx.OpenApp()
			if err != nil {
				return err
			}
			defer gravityApp.Close()

			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(log.Logger(), gravityApp, config.AllowedOrigins())
			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Serve(listener)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down API")
			if err := srv.Shutdown(context.Background()); err != nil {
				return err
			}
			return <-errCh
		},
	}

	cmd.Flags().String(FlagListenAddress, "", "Override api.listen_address of config.toml")
	cmd.Flags().Bool(FlagLogToFile, false, "Write logs to <home>/logs instead of stderr")
	return cmd
}
