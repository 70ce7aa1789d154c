// Package review is the admin completion-review surface: the displayed
// week's completions partitioned into pending and approved groups, with
// counts and selection into the detail view.
package review

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/example/choreboard/internal/models"
	"github.com/example/choreboard/internal/money"
	"github.com/example/choreboard/internal/week"
)

// SelectCompletionMsg opens the detail view for the chosen completion.
type SelectCompletionMsg struct {
	Completion models.ChoreCompletion
}

type Item struct {
	Completion models.ChoreCompletion
}

func (i Item) Title() string {
	c := i.Completion
	name := "?"
	if c.Chore != nil {
		name = c.Chore.Name
	}
	user := "?"
	if c.User != nil {
		user = c.User.Name
	}
	return fmt.Sprintf("%s — %s", name, user)
}

func (i Item) Description() string {
	c := i.Completion
	desc := fmt.Sprintf("%s  %s", c.CompletedDate, money.FormatCents(c.AmountCents))
	if n := len(c.Notes); n > 0 {
		desc += fmt.Sprintf("  (%d notes)", n)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Title() }

type KeyMap struct {
	Switch key.Binding
	Select key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Switch: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "switch group")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

type Model struct {
	pending       list.Model
	approved      list.Model
	keys          KeyMap
	showingPending bool
	width         int
	height        int
}

func New(completions []models.ChoreCompletion, width, height int) Model {
	m := Model{
		pending:        newList("Pending", width, height),
		approved:       newList("Approved", width, height),
		keys:           DefaultKeyMap(),
		showingPending: true,
		width:          width,
		height:         height,
	}
	m.SetCompletions(completions)
	return m
}

func newList(title string, width, height int) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowHelp(false)
	return l
}

// SetCompletions re-partitions the week's completions. Pure recompute on
// every refresh, never an incremental update.
func (m *Model) SetCompletions(completions []models.ChoreCompletion) {
	pending, approved := week.Partition(completions)
	m.pending.SetItems(toItems(pending))
	m.approved.SetItems(toItems(approved))
	m.pending.Title = fmt.Sprintf("Pending (%d)", len(pending))
	m.approved.Title = fmt.Sprintf("Approved (%d)", len(approved))
}

func toItems(completions []models.ChoreCompletion) []list.Item {
	items := make([]list.Item, len(completions))
	for i, c := range completions {
		items[i] = Item{Completion: c}
	}
	return items
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.pending.SetSize(width, height)
	m.approved.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Filtering reports whether the active list's filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.active().FilterState() == list.Filtering
}

func (m Model) active() *list.Model {
	if m.showingPending {
		return &m.pending
	}
	return &m.approved
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.active().FilterState() != list.Filtering {
		switch {
		case key.Matches(keyMsg, m.keys.Switch):
			m.showingPending = !m.showingPending
			return m, nil
		case key.Matches(keyMsg, m.keys.Select):
			if i, ok := m.active().SelectedItem().(Item); ok {
				return m, func() tea.Msg { return SelectCompletionMsg{Completion: i.Completion} }
			}
			return m, nil
		}
	}

	if m.showingPending {
		m.pending, cmd = m.pending.Update(msg)
	} else {
		m.approved, cmd = m.approved.Update(msg)
	}
	return m, cmd
}

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

func (m Model) View() string {
	view := m.active().View()
	return lipgloss.JoinVertical(lipgloss.Left, view, hintStyle.Render("[g] switch between pending/approved"))
}
