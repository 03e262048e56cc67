package tui

import "github.com/charmbracelet/lipgloss"

var (
	lime = lipgloss.Color("154")
	dim  = lipgloss.Color("240")

	titleStyle = lipgloss.NewStyle().
			Foreground(lime).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(dim)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lime).
			Padding(0, 2).
			Width(cardWidth)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("231"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lime).
			Bold(true)

	daysStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true).
			Width(cardWidth - 4).
			Align(lipgloss.Center)

	centeredStyle = lipgloss.NewStyle().
			Width(cardWidth - 4).
			Align(lipgloss.Center)

	messageStyle = centeredStyle.
			Foreground(lipgloss.Color("250"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

const cardWidth = 40
