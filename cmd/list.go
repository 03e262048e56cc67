package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/brk3/quit/internal/tui"
)

type listOutput struct {
	Habits    any `json:"habits"`
	TotalDays int `json:"total_days"`
}

func newListCmd(a *app) *cobra.Command {
	var asJSON bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked habits",
		Long:  `The "list" command shows every tracked habit and the time since you quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd, a, asJSON)
		},
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of cards")
	return listCmd
}

func list(cmd *cobra.Command, a *app, asJSON bool) error {
	now := a.now()
	progress := a.store.Progress(now)
	total := a.store.TotalDaysAcrossAll(now)

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(listOutput{Habits: progress, TotalDays: total})
	}

	cmd.Println(tui.RenderHeader(len(progress), total))
	cmd.Println()
	if len(progress) == 0 {
		cmd.Println(tui.RenderEmpty())
		return nil
	}
	for _, p := range progress {
		cmd.Println(tui.RenderCard(p, false))
		cmd.Println(p.Habit.ID)
	}
	return nil
}
