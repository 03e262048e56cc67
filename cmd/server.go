package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brk3/quit/internal/server"
)

func newServerCmd(a *app) *cobra.Command {
	serverCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve habits over a local JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.listenAddr != "" {
				a.cfg.ListenAddr = a.listenAddr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New(a.cfg, a.store).Run(ctx)
		},
	}
	serverCmd.Flags().StringVar(&a.listenAddr, "addr", "", "listen address (overrides listen_addr)")
	return serverCmd
}
