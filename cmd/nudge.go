package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brk3/quit/internal/apiclient"
	"github.com/brk3/quit/internal/nudge"
	"github.com/brk3/quit/internal/nudge/resend"
)

func newNudgeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nudge",
		Short: "Email the milestones reached today",
		// the store is only opened when no API is configured
		Annotations: map[string]string{skipStoreAnnotation: ""},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return a.cfg.ValidateNudge()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n := &resend.ResendNotifier{
				ApiKey: a.cfg.Nudge.ResendAPIKey,
				Email:  a.cfg.Nudge.Email,
				From:   a.cfg.Nudge.From,
			}
			q, err := a.querier()
			if err != nil {
				return err
			}
			count, err := nudge.Nudge(cmd.Context(), q, n)
			if err != nil {
				return err
			}
			cmd.Printf("Sent %d milestone(s)\n", count)
			return nil
		},
	}
}

// querier reads from the API when one is configured, otherwise from the
// local store.
func (a *app) querier() (nudge.Querier, error) {
	if a.cfg.APIBaseURL != "" {
		return apiclient.New(a.cfg.APIBaseURL), nil
	}
	if err := a.openStore(); err != nil {
		return nil, err
	}
	return nudge.LocalQuerier{Store: a.store, Now: a.now}, nil
}
