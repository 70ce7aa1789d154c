// Package manage is the admin chore-management surface: every chore with
// its schedule, amount, and assigned users, plus intents to create/edit
// chores, create users, and change assignments. Forms live in the shell.
package manage

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/choreboard/internal/models"
	"github.com/example/choreboard/internal/money"
)

// AddChoreMsg opens the create-chore form.
type AddChoreMsg struct{}

// EditChoreMsg opens the edit form for the chosen chore.
type EditChoreMsg struct {
	Chore models.Chore
}

// AddUserMsg opens the create-user form.
type AddUserMsg struct{}

// AssignMsg opens the assignment picker for the chosen chore.
type AssignMsg struct {
	Chore models.Chore
}

type Item struct {
	Chore models.Chore
}

func (i Item) Title() string {
	title := i.Chore.Name
	if !i.Chore.Active {
		title = "[INACTIVE] " + title
	}
	return title
}

func (i Item) Description() string {
	c := i.Chore
	amount := money.FormatCents(c.AmountCents)
	if c.PaymentType == models.PaymentWeekly {
		amount += "/wk"
	}
	assigned := "unassigned"
	if n := len(c.AssignedUsers); n > 0 {
		names := make([]string, n)
		for j, u := range c.AssignedUsers {
			names[j] = u.Name
		}
		assigned = strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s  %s  %s", amount, c.RequiredDays.String(), assigned)
}

func (i Item) FilterValue() string { return i.Chore.Name }

type KeyMap struct {
	AddChore key.Binding
	Edit     key.Binding
	AddUser  key.Binding
	Assign   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddChore: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add chore")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit chore")),
		AddUser:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "add user")),
		Assign:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "assignments")),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(chores []models.Chore, width, height int) Model {
	l := list.New(toItems(chores), list.NewDefaultDelegate(), width, height)
	l.Title = "Chores"
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.AddChore, keys.Edit, keys.AddUser, keys.Assign}
	}

	return Model{list: l, keys: keys}
}

func toItems(chores []models.Chore) []list.Item {
	items := make([]list.Item, len(chores))
	for i, c := range chores {
		items[i] = Item{Chore: c}
	}
	return items
}

func (m *Model) SetChores(chores []models.Chore) {
	m.list.SetItems(toItems(chores))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the list filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(keyMsg, m.keys.AddChore):
			return m, func() tea.Msg { return AddChoreMsg{} }
		case key.Matches(keyMsg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditChoreMsg{Chore: i.Chore} }
			}
		case key.Matches(keyMsg, m.keys.AddUser):
			return m, func() tea.Msg { return AddUserMsg{} }
		case key.Matches(keyMsg, m.keys.Assign):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return AssignMsg{Chore: i.Chore} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No chores yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}
