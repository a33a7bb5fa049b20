package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpGroups names the FullHelp groups, in order.
var helpGroups = []string{"Poems", "Scrolling", "Reader"}

// renderHelp draws the full key map as a centered modal.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := styles.WarningText.Width(12)

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n" + styles.Number.Render(strings.Repeat("─", 30)) + "\n")

	for i, group := range m.keys.FullHelp() {
		b.WriteString("\n")
		if i < len(helpGroups) {
			b.WriteString(styles.AccentText.Render(helpGroups[i]) + "\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key) + styles.Text.Render(h.Desc) + "\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		modal.Render(strings.TrimSuffix(b.String(), "\n")))
}
