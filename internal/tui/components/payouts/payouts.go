// Package payouts is the admin payout surface: each user's approved-but-
// unpaid total, a selection set, and the irreversible mark-as-paid batch
// action (always confirmed by the shell first).
package payouts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/example/choreboard/internal/models"
	"github.com/example/choreboard/internal/money"
)

// RequestPayoutMsg asks the shell to confirm and run the payout for the
// selected users.
type RequestPayoutMsg struct {
	UserIDs []int
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	Pay    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Pay:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "mark paid")),
	}
}

type Model struct {
	totals   []models.UnpaidTotal
	selected map[int]bool
	cursor   int
	keys     KeyMap
}

func New(totals []models.UnpaidTotal) Model {
	return Model{
		totals:   totals,
		selected: make(map[int]bool),
		keys:     DefaultKeyMap(),
	}
}

// SetTotals swaps in a fresh aggregate. Selection is reset: the totals may
// have changed underneath it.
func (m *Model) SetTotals(totals []models.UnpaidTotal) {
	m.totals = totals
	m.selected = make(map[int]bool)
	if m.cursor >= len(totals) {
		m.cursor = 0
	}
}

// SelectedIDs returns the user ids currently marked for payout.
func (m Model) SelectedIDs() []int {
	ids := make([]int, 0, len(m.selected))
	for _, t := range m.totals {
		if m.selected[t.User.ID] {
			ids = append(ids, t.User.ID)
		}
	}
	return ids
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.totals) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.totals)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		id := m.totals[m.cursor].User.ID
		m.selected[id] = !m.selected[id]
	case key.Matches(keyMsg, m.keys.All):
		for _, t := range m.totals {
			m.selected[t.User.ID] = true
		}
	case key.Matches(keyMsg, m.keys.Pay):
		ids := m.SelectedIDs()
		if len(ids) > 0 {
			return m, func() tea.Msg { return RequestPayoutMsg{UserIDs: ids} }
		}
	}
	return m, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	amountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m Model) View() string {
	if len(m.totals) == 0 {
		return "\n  Nothing owed. All approved completions are paid out."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Unpaid totals"))
	b.WriteString("\n\n")

	var selectedCents int
	for i, t := range m.totals {
		mark := "[ ]"
		if m.selected[t.User.ID] {
			mark = "[x]"
			selectedCents += t.AmountCents
		}
		line := fmt.Sprintf("%s %-20s %s", mark, nameStyle.Render(t.User.Name), amountStyle.Render(money.FormatCents(t.AmountCents)))
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if ids := m.SelectedIDs(); len(ids) > 0 {
		b.WriteString(fmt.Sprintf("Selected: %d user(s), %s\n", len(ids), money.FormatCents(selectedCents)))
	}
	b.WriteString(hintStyle.Render("[space] select  [a] all  [enter] mark paid"))
	return b.String()
}
