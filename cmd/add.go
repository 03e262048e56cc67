package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/brk3/quit/internal/elapsed"
	"github.com/brk3/quit/internal/tracker"
	"github.com/brk3/quit/pkg/habit"
)

func newAddCmd(a *app) *cobra.Command {
	var icon, date string

	addCmd := &cobra.Command{
		Use:   "add <habit>",
		Short: "Start tracking a habit you quit",
		Long: `The "add" command starts tracking a habit. Pick one of the types listed by
"quit options" or name your own, and give the day you quit (default today).`,
		Example: `  quit add smoking --date 2024-01-01
  quit add "Late night snacks" --icon 🌙`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return add(cmd, a, strings.Join(args, " "), icon, date)
		},
	}
	addCmd.Flags().StringVar(&icon, "icon", "", "icon for a custom habit")
	addCmd.Flags().StringVar(&date, "date", "", "quit date as YYYY-MM-DD (default today)")
	return addCmd
}

func add(cmd *cobra.Command, a *app, name, icon, date string) error {
	flow := tracker.NewAddFlow(a.store, a.now)
	flow.Begin()

	if opt, ok := habit.LookupOption(name); ok {
		name = opt.Name
		if icon == "" {
			icon = opt.Icon
		}
	}
	if err := flow.Select(name, icon); err != nil {
		return err
	}

	quit := flow.Today()
	if date != "" {
		d, err := habit.ParseDate(date)
		if err != nil {
			flow.Cancel()
			return err
		}
		quit = d
	}

	h, err := flow.Confirm(quit)
	if err != nil {
		flow.Cancel()
		return err
	}

	e := elapsed.ForHabit(h, a.now())
	cmd.Printf("Tracking %s %s (id %s), %d days free. %s\n", h.Icon, h.Name, h.ID, e.Days, elapsed.Message(e.TotalDays))
	return nil
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "options",
		Short:       "List the built-in habit types",
		Annotations: map[string]string{skipStoreAnnotation: ""},
		Run: func(cmd *cobra.Command, args []string) {
			for _, o := range habit.Options {
				cmd.Printf("%s  %s\n", o.Icon, o.Name)
			}
		},
	}
}
