package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

func (m model) viewMenu() string {
	status := "Idle"
	if m.busy {
		status = m.spinner.View() + " Busy: " + m.busyLabel
	}

	logLine := "Logs: " + m.logPath
	if m.logPath == "" {
		logLine = "Logs: (disabled)"
	}

	latest := m.lastLogLine
	if latest == "" {
		latest = "(no log output yet)"
	}
	latest = fitLine(latest, m.windowWidth)

	lastError := ""
	if m.lastError != "" {
		lastError = "\n\nLast error: " + m.lastError
	}

	header := headerView("CHEATDECK", status, latest)
	tips := "enter=select  q=quit"
	if len(m.menuStack) > 0 {
		tips = "enter=select  esc=back  q=quit"
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n\nTips: %s", header, m.menu.View(), logLine, lastError, tips)
}

func (m model) viewCheats() string {
	title := m.panel.rom.Title
	count := m.panel.cheats.Len()
	status := fmt.Sprintf("%d cheat(s)", count)
	if m.busy {
		status = m.spinner.View() + " " + m.busyLabel
	}
	header := headerView(title, status, fitLine(m.panel.status, m.windowWidth))

	body := m.panel.rows.View()
	if count == 0 {
		body = "  (no cheats yet - press a to add one)"
	}

	tips := "space/enter=toggle  a=add  d=remove  c=copy code  l=launch emulator  esc=back"
	if m.windowWidth > 0 {
		tips = wordwrap.String(tips, m.windowWidth)
	}
	return fmt.Sprintf("%s\n\n%s\n\nTips: %s", header, body, tips)
}

func (m model) viewAddCheat() string {
	var b strings.Builder
	b.WriteString("Add cheat to " + m.panel.rom.Title + " (esc to cancel)\n\n")
	labels := []string{"Description", "Code"}
	for i, input := range m.addForm.inputs {
		cursor := " "
		if m.addForm.focusIndex == i {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, labels[i], input.View()))
	}
	if m.addForm.errMsg != "" {
		b.WriteString("\nError: " + m.addForm.errMsg + "\n")
	}
	b.WriteString("\nTab/Up/Down to move, Enter on the code field to save")
	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder
	b.WriteString("Edit configuration (esc to cancel)\n\n")
	for i, input := range m.configForm.inputs {
		field := m.configForm.fields[i]
		cursor := " "
		if m.configForm.focusIndex == i {
			cursor = ">"
		}
		required := ""
		if field.required {
			required = "*"
		}
		b.WriteString(fmt.Sprintf("%s %s%s: %s\n", cursor, field.label, required, input.View()))
	}
	if m.configForm.errMsg != "" {
		b.WriteString("\nError: " + m.configForm.errMsg + "\n")
	}
	b.WriteString("\nTab/Up/Down to move, Enter to save")
	return b.String()
}

func (m model) viewLogScreen() string {
	if m.logPath == "" {
		return "Logs are disabled."
	}
	return "Logs are written to:\n\n" + m.logPath + "\n\nOpen the file to view full output."
}

func headerView(title, status, latest string) string {
	badge := lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("60")).
		Foreground(lipgloss.Color("230")).
		Bold(true).
		Render(title)

	statusStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("229"))

	latestStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("230"))

	firstLine := lipgloss.JoinHorizontal(lipgloss.Left, badge, statusStyle.Render(status))
	secondLine := latestStyle.Render(latest)
	return lipgloss.JoinVertical(lipgloss.Left, firstLine, secondLine)
}
