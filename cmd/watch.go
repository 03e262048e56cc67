package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brk3/quit/internal/tui"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live view of every tracked habit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), a.store, a.cfg.RefreshInterval)
		},
	}
}
