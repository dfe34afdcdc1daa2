package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	name := it.item.Name
	created := ""
	if !it.item.CreatedAt.IsZero() {
		created = mutedStyle.Render(it.item.CreatedAt.Format("Jan 02 2006"))
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	line := name
	if created != "" {
		line = fmt.Sprintf("%s  %s", name, created)
	}
	fmt.Fprintln(w, prefix+line)
}

func (m Model) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}

	var content string
	switch m.status {
	case StatusLoading, StatusIdle:
		content = m.spin.View() + " Loading items..."
	case StatusFailed:
		content = errorStyle.Render(m.banner) + "\n" +
			mutedStyle.Render("Press r to retry, q to quit.")
	default:
		m.list.SetSize(w-4, listHeight(h, m.adding || m.edit != nil))
		content = m.list.View()
		if len(m.items) == 0 {
			content += "\n" + mutedStyle.Render("No items yet. Press a to add one.")
		}
		if m.banner != "" {
			content += "\n" + errorStyle.Render(m.banner)
		}
		if m.adding || m.edit != nil {
			content += "\n" + m.inputBar()
		}
	}
	return panelString(content)
}

func (m Model) inputBar() string {
	bar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	title := "Add item"
	if m.edit != nil {
		title = "Rename item"
	}
	return bar.Render(title + "\n" + m.input.View())
}

func listHeight(total int, inputOpen bool) int {
	h := total - 4
	if inputOpen {
		h = total - 7
	}
	if h < 1 {
		h = 1
	}
	return h
}

// helpers for View
func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
