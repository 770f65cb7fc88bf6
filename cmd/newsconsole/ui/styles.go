package ui

import "github.com/charmbracelet/lipgloss"

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("240"))
	activeTabStyle = tabStyle.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#25A065")).
				Render

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF0000")).
				Render

	labelStyle = lipgloss.NewStyle().Bold(true)
)

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "APPROVED":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#25A065"))
	case "REJECTED":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
}
