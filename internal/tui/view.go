package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/choreboard/internal/constants"
	"github.com/example/choreboard/internal/dates"
	"github.com/example/choreboard/internal/money"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.formState() && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	switch m.state {
	case constants.StateConfirmReject:
		return m.viewConfirm(
			"Reject this completion?",
			"The completion and its notes are deleted. This cannot be undone.",
		)
	case constants.StateConfirmPayout:
		return m.viewConfirm(
			fmt.Sprintf("Mark %d user(s) as paid?", len(m.payoutIDs)),
			m.payoutSummary(),
		)
	}

	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.loadErr.Error()))
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render("Retrying on the next refresh. Press q to quit."))
		return docStyle.Render(b.String())
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
		return docStyle.Render(b.String())
	}

	switch m.state {
	case constants.StateUserSelect:
		b.WriteString(m.userSelect.View())
	case constants.StateWeek:
		b.WriteString(m.gridModel.View())
	case constants.StateDetail:
		b.WriteString(m.detailModel.View())
	case constants.StateReview:
		b.WriteString(m.reviewModel.View())
	case constants.StateManage:
		b.WriteString(m.manageModel.View())
	case constants.StatePayouts:
		b.WriteString(m.payoutModel.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m))

	return docStyle.Render(b.String())
}

// viewHeader renders the app title, the week range on week-scoped surfaces,
// and the admin tab row.
func (m Model) viewHeader() string {
	title := lipgloss.NewStyle().Bold(true).Render(constants.AppName)

	parts := []string{title}

	if m.user != nil && (m.state == constants.StateWeek || m.state == constants.StateDetail) {
		parts = append(parts, subtleStyle.Render(m.user.Name))
	}
	if m.state == constants.StateWeek || m.state == constants.StateReview || m.state == constants.StateDetail {
		weekLabel := fmt.Sprintf("%s – %s", dates.FormatDisplay(m.week.Start), dates.FormatDisplay(m.week.End))
		parts = append(parts, subtleStyle.Render(weekLabel))
	}

	header := strings.Join(parts, "  ")

	if m.isAdmin() && m.user != nil && m.state != constants.StateUserSelect {
		header += "\n" + m.viewTabs()
	}
	return header
}

func (m Model) viewTabs() string {
	labels := []string{"Week", "Review", "Chores", "Payouts"}
	tabs := make([]string, len(tabOrder))
	for i, s := range tabOrder {
		active := s == m.state ||
			(s == constants.StateWeek && m.state == constants.StateDetail && m.previousState == constants.StateWeek) ||
			(s == constants.StateReview && m.state == constants.StateDetail && m.previousState == constants.StateReview)
		if active {
			tabs[i] = activeTabStyle.Render(labels[i])
		} else {
			tabs[i] = inactiveTabStyle.Render(labels[i])
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirm(question, warning string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(1, 2)

	content := lipgloss.JoinVertical(lipgloss.Left,
		dangerStyle.Render(question),
		"",
		warning,
		"",
		subtleStyle.Render("[y] yes  [n] no"),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box.Render(content))
	}
	return box.Render(content)
}

func (m Model) payoutSummary() string {
	selected := make(map[int]bool, len(m.payoutIDs))
	for _, id := range m.payoutIDs {
		selected[id] = true
	}
	var lines []string
	var cents int
	for _, t := range m.totals {
		if selected[t.User.ID] {
			lines = append(lines, fmt.Sprintf("%s  %s", t.User.Name, money.FormatCents(t.AmountCents)))
			cents += t.AmountCents
		}
	}
	lines = append(lines, "", "Total: "+money.FormatCents(cents))
	return strings.Join(lines, "\n")
}
