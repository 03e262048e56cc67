package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/brk3/quit/pkg/habit"
)

func newSelectForm(fm *addFormModel) *huh.Form {
	opts := make([]huh.Option[int], 0, len(habit.Options))
	for i, o := range habit.Options {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s  %s", o.Icon, o.Name), i))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("WHAT ARE YOU QUITTING?").
				Options(opts...).
				Value(&fm.Option),
		),
	)
}

func newDateForm(fm *addFormModel, o habit.Option, today habit.Date) *huh.Form {
	fm.Date = today.String()
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s QUITTING %s", o.Icon, o.Name)).
				Description("When did you quit (or when are you starting)?").
				Placeholder(habit.DateLayout).
				Value(&fm.Date).
				Validate(func(s string) error {
					d, err := habit.ParseDate(s)
					if err != nil {
						return err
					}
					if d.After(today) {
						return fmt.Errorf("date cannot be after %s", today)
					}
					return nil
				}),
		),
	)
}
