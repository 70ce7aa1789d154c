// Package detail renders a single completion: status, chore, user, amount,
// and the notes the viewer is allowed to see, plus the admin approve/reject
// controls.
package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/example/choreboard/internal/models"
	"github.com/example/choreboard/internal/money"
)

// ApproveMsg asks for the completion to be approved. Admin only.
type ApproveMsg struct {
	CompletionUUID string
}

// RequestRejectMsg asks the shell to run the reject confirmation. Admin
// only; rejection is a hard delete and always confirmed first.
type RequestRejectMsg struct {
	CompletionUUID string
}

// RequestNoteMsg asks the shell to open the add-note form.
type RequestNoteMsg struct {
	CompletionID int
}

// CloseMsg dismisses the detail view.
type CloseMsg struct{}

type KeyMap struct {
	Approve key.Binding
	Reject  key.Binding
	Note    key.Binding
	Close   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Approve: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
		Reject:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reject")),
		Note:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "add note")),
		Close:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
	}
}

type Model struct {
	completion models.ChoreCompletion
	isAdmin    bool
	keys       KeyMap
}

func New(completion models.ChoreCompletion, isAdmin bool) Model {
	return Model{completion: completion, isAdmin: isAdmin, keys: DefaultKeyMap()}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Approve):
		// control hidden once approved; admins only
		if m.isAdmin && !m.completion.Approved {
			uuid := m.completion.UUID
			return m, func() tea.Msg { return ApproveMsg{CompletionUUID: uuid} }
		}
	case key.Matches(keyMsg, m.keys.Reject):
		if m.isAdmin && !m.completion.Approved {
			uuid := m.completion.UUID
			return m, func() tea.Msg { return RequestRejectMsg{CompletionUUID: uuid} }
		}
	case key.Matches(keyMsg, m.keys.Note):
		id := m.completion.ID
		return m, func() tea.Msg { return RequestNoteMsg{CompletionID: id} }
	case key.Matches(keyMsg, m.keys.Close):
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	amountStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	adminTagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noteMetaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

func (m Model) View() string {
	var b strings.Builder
	c := m.completion

	b.WriteString(labelStyle.Render("Status: "))
	if c.Approved {
		b.WriteString(approvedStyle.Render("Approved"))
	} else {
		b.WriteString(pendingStyle.Render("Pending approval"))
	}
	b.WriteString("\n")

	if c.Chore != nil {
		b.WriteString(labelStyle.Render("Chore:  "))
		b.WriteString(valueStyle.Render(c.Chore.Name))
		b.WriteString("\n")
	}
	if c.User != nil {
		b.WriteString(labelStyle.Render("User:   "))
		b.WriteString(valueStyle.Render(c.User.Name))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("Date:   "))
	b.WriteString(valueStyle.Render(c.CompletedDate))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Amount: "))
	b.WriteString(amountStyle.Render(money.FormatCents(c.AmountCents)))
	b.WriteString("\n")

	notes := c.VisibleNotes(m.isAdmin)
	if len(notes) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("Notes (%d):", len(notes))))
		b.WriteString("\n")
		for _, n := range notes {
			b.WriteString("  ")
			b.WriteString(valueStyle.Render(n.Note))
			if m.isAdmin && !n.VisibleToUser {
				b.WriteString(" ")
				b.WriteString(adminTagStyle.Render("[admin only]"))
			}
			b.WriteString("\n  ")
			b.WriteString(noteMetaStyle.Render(fmt.Sprintf("%s, %s", strings.ToLower(string(n.AuthorType)), n.CreatedAt.Format("Jan 2 15:04"))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	hints := []string{"[m] add note", "[esc] close"}
	if m.isAdmin && !c.Approved {
		hints = append([]string{"[a] approve", "[x] reject"}, hints...)
	}
	b.WriteString(labelStyle.Render(strings.Join(hints, "  ")))

	return b.String()
}
