package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Lipgloss colors matching DarkTheme.
var (
	accentColor  = lipgloss.Color("39")
	borderColor  = lipgloss.Color("245")
	successColor = lipgloss.Color("82")
)

// RenderTable renders a bordered table. highlight is the zero-based index of
// a data row to emphasise, or -1 for none. Styling is dropped entirely when
// the active theme has no colors.
func RenderTable(headers []string, rows [][]string, highlight int) string {
	colored := Colored()
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case !colored:
				return cell
			case row == table.HeaderRow:
				return cell.Bold(true).Foreground(accentColor)
			case row == highlight:
				return cell.Foreground(successColor)
			default:
				return cell
			}
		})
	if colored {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(borderColor))
	}
	return t.Render()
}
