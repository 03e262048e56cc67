package resend

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"

	"github.com/brk3/quit/internal/nudge"
)

type ResendNotifier struct {
	ApiKey string
	Email  string
	From   string
}

const htmlTemplate = `
<p>New milestones today:</p>
<ul>
{{range .}}
  <li>{{.Icon}} <strong>{{.Name}}</strong>: {{.Days}} days free. {{.Message}}</li>
{{end}}
</ul>
`

var tmpl = template.Must(template.New("email").Parse(htmlTemplate))

func Render(reached []nudge.Reached) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, reached); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func Subject(reached []nudge.Reached) string {
	if len(reached) == 1 {
		return fmt.Sprintf("%d days free of %s", reached[0].Days, reached[0].Name)
	}
	return fmt.Sprintf("%d new milestones", len(reached))
}

func (r *ResendNotifier) SendMilestones(reached []nudge.Reached) error {
	html, err := Render(reached)
	if err != nil {
		return err
	}

	client := resend.NewClient(r.ApiKey)
	params := &resend.SendEmailRequest{
		From:    r.From,
		To:      []string{r.Email},
		Subject: Subject(reached),
		Html:    html,
	}

	_, err = client.Emails.Send(params)
	return err
}

var _ nudge.Notifier = (*ResendNotifier)(nil)
