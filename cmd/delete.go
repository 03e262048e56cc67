package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	deleteCmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Stop tracking a habit",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deleteHabit(cmd, a, args[0], yes)
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")
	return deleteCmd
}

func deleteHabit(cmd *cobra.Command, a *app, id string, yes bool) error {
	h, ok := a.store.Get(id)
	if !ok {
		cmd.Printf("No habit with id %s\n", id)
		return nil
	}
	if !yes {
		return fmt.Errorf("refusing to delete %s without --yes", h.Name)
	}
	removed, err := a.store.Remove(id)
	if err != nil {
		return err
	}
	if !removed {
		cmd.Printf("No habit with id %s\n", id)
		return nil
	}
	cmd.Printf("Stopped tracking %s %s\n", h.Icon, h.Name)
	return nil
}
