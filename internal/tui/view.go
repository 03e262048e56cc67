package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brk3/quit/internal/elapsed"
	"github.com/brk3/quit/pkg/habit"
)

func (m *Model) totalDays() int {
	total := 0
	for _, h := range m.habits {
		total += m.elapsed[h.ID].Days
	}
	return total
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(RenderHeader(len(m.habits), m.totalDays()))
	b.WriteString("\n\n")

	switch m.mode {
	case modeSelectType, modeConfirmDate:
		b.WriteString(m.form.View())
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("esc cancel"))
		return b.String()
	}

	if len(m.habits) == 0 {
		b.WriteString(RenderEmpty())
		b.WriteString("\n\n")
		b.WriteString(subtitleStyle.Render("press a to START YOUR RECOVERY"))
	} else {
		cards := make([]string, 0, len(m.habits))
		for i, h := range m.habits {
			e := m.elapsed[h.ID]
			cards = append(cards, RenderCard(habit.Progress{
				Habit:   h,
				Elapsed: e,
				Message: elapsed.Message(e.TotalDays),
			}, i == m.cursor))
		}
		b.WriteString(RenderGrid(cards, m.width))
	}
	b.WriteString("\n")

	if m.mode == modeConfirmDelete {
		name := strings.ToUpper(m.habits[m.cursor].Name)
		b.WriteString(errorStyle.Render("DELETE " + name + "? y/n"))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().MarginTop(1).Render(m.help.View(m.keys)))
	return b.String()
}
