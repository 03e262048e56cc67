package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brk3/quit/pkg/habit"
)

// RenderCard draws one habit the way the live view shows it.
func RenderCard(p habit.Progress, selected bool) string {
	e := p.Elapsed

	unit := "DAYS"
	if e.Days == 1 {
		unit = "DAY"
	}

	head := fmt.Sprintf("%s %s", p.Habit.Icon, nameStyle.Render(strings.ToUpper(p.Habit.Name)))
	clock := fmt.Sprintf("%02d HRS  %02d MIN  %s SEC",
		e.Hours, e.Minutes, nameStyle.Render(fmt.Sprintf("%02d", e.Seconds)))

	body := lipgloss.JoinVertical(lipgloss.Left,
		head,
		subtitleStyle.Render("QUIT: "+p.Habit.QuitDate.String()),
		"",
		daysStyle.Render(strconv.Itoa(e.Days)),
		centeredStyle.Foreground(lime).Render(unit+" FREE"),
		"",
		centeredStyle.Render(clock),
		"",
		messageStyle.Render(p.Message),
	)

	if selected {
		return selectedCardStyle.Render(body)
	}
	return cardStyle.Render(body)
}

// RenderHeader draws the title and, when anything is tracked, the total.
func RenderHeader(count, totalDays int) string {
	title := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("QUIT."),
		subtitleStyle.Render("TRACK YOUR FREEDOM. OWN YOUR RECOVERY."),
	)
	if count == 0 {
		return title
	}
	total := lipgloss.JoinVertical(lipgloss.Right,
		subtitleStyle.Render("TOTAL DAYS RECLAIMED"),
		titleStyle.Render(strconv.Itoa(totalDays)),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "    ", total)
}

func RenderEmpty() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Today is Day One."),
		subtitleStyle.Render("Every second you don't give in is a victory."),
		subtitleStyle.Render("Start tracking your fight."),
	)
}

// RenderGrid lays cards out in rows that fit within width.
func RenderGrid(cards []string, width int) string {
	perRow := 1
	if width > 0 {
		perRow = max(1, width/(cardWidth+2))
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
