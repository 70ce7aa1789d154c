// Package userselect is the profile picker shown on launch: choose which
// household member's weekly grid to view.
package userselect

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"

	"github.com/example/choreboard/internal/models"
)

// ChooseMsg reports the selected user.
type ChooseMsg struct {
	User models.User
}

type Item struct {
	User models.User
}

func (i Item) Title() string { return i.User.Name }

func (i Item) Description() string {
	return "joined " + i.User.CreatedAt.Format("Jan 2006")
}

func (i Item) FilterValue() string { return i.User.Name }

type Model struct {
	list list.Model
}

func New(users []models.User, width, height int) Model {
	items := make([]list.Item, len(users))
	for i, u := range users {
		items[i] = Item{User: u}
	}
	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Who's doing chores?"
	l.SetShowHelp(false)
	return Model{list: l}
}

func (m *Model) SetUsers(users []models.User) {
	items := make([]list.Item, len(users))
	for i, u := range users {
		items[i] = Item{User: u}
	}
	m.list.SetItems(items)
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
		if key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ChooseMsg{User: i.User} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No users yet.\n  An admin can add one from the management view."
	}
	return m.list.View()
}
