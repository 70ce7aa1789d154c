// Package grid renders the weekly chore grid: one row per assigned chore,
// one column per day of the displayed week. Cell states come fully derived
// from the week package; this component only draws them and forwards
// selection intent.
package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/example/choreboard/internal/dates"
	"github.com/example/choreboard/internal/models"
	"github.com/example/choreboard/internal/money"
	"github.com/example/choreboard/internal/week"
)

// CompleteChoreMsg asks for a completion to be created for an open cell.
type CompleteChoreMsg struct {
	ChoreID int
	Date    time.Time
}

// SelectCompletionMsg opens the detail view for an own completion.
type SelectCompletionMsg struct {
	Completion models.ChoreCompletion
}

// narrowWidth is the terminal width below which the grid collapses to a
// single-day view with day navigation.
const narrowWidth = 72

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	PrevDay key.Binding
	NextDay key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous chore")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next chore")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Enter:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "complete/open")),
		PrevDay: key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "previous day")),
		NextDay: key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "next day")),
	}
}

type Model struct {
	grid    week.Grid
	keys    KeyMap
	cursorR int
	cursorD int
	width   int
	height  int
}

func New(g week.Grid, width, height int) Model {
	m := Model{grid: g, keys: DefaultKeyMap(), width: width, height: height}
	m.clampCursor()
	return m
}

// SetGrid swaps in a freshly derived grid, keeping the cursor in bounds.
func (m *Model) SetGrid(g week.Grid) {
	sameWeek := dates.SameDay(m.grid.Week.Start, g.Week.Start)
	m.grid = g
	if !sameWeek {
		m.cursorD = 0
	}
	m.clampCursor()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) clampCursor() {
	if m.cursorR >= len(m.grid.Rows) {
		m.cursorR = len(m.grid.Rows) - 1
	}
	if m.cursorR < 0 {
		m.cursorR = 0
	}
	if m.cursorD < 0 {
		m.cursorD = 0
	}
	if m.cursorD > len(m.grid.Week.Days)-1 {
		m.cursorD = len(m.grid.Week.Days) - 1
	}
}

func (m Model) narrow() bool {
	return m.width > 0 && m.width < narrowWidth
}

// Selected returns the cell under the cursor, or false when the grid is
// empty.
func (m Model) Selected() (week.Cell, bool) {
	if len(m.grid.Rows) == 0 {
		return week.Cell{}, false
	}
	return m.grid.Rows[m.cursorR].Cells[m.cursorD], true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.grid.Rows) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursorR--
	case key.Matches(keyMsg, m.keys.Down):
		m.cursorR++
	case key.Matches(keyMsg, m.keys.Left), key.Matches(keyMsg, m.keys.PrevDay):
		m.cursorD--
	case key.Matches(keyMsg, m.keys.Right), key.Matches(keyMsg, m.keys.NextDay):
		m.cursorD++
	case key.Matches(keyMsg, m.keys.Enter):
		cell, ok := m.Selected()
		if !ok {
			return m, nil
		}
		chore := m.grid.Rows[m.cursorR].Chore
		switch cell.State {
		case week.CellOpen:
			return m, func() tea.Msg {
				return CompleteChoreMsg{ChoreID: chore.ID, Date: cell.Date}
			}
		case week.CellApproved, week.CellPending:
			completion := *cell.Completion
			return m, func() tea.Msg {
				return SelectCompletionMsg{Completion: completion}
			}
		}
		// not-scheduled and done-by-other cells have no affordance
	}
	m.clampCursor()
	return m, nil
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	todayStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	choreNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	amountStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	approvedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	otherStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	openStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	noteStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	cursorStyle    = lipgloss.NewStyle().Background(lipgloss.Color("236"))
)

func glyph(c week.Cell) string {
	switch c.State {
	case week.CellApproved:
		return approvedStyle.Render("✓")
	case week.CellPending:
		return pendingStyle.Render("?")
	case week.CellDoneByOther:
		return otherStyle.Render("✓")
	case week.CellOpen:
		return openStyle.Render("·")
	default:
		return " "
	}
}

func (m Model) View() string {
	if len(m.grid.Rows) == 0 {
		return "\n  No chores assigned for this week."
	}
	if m.narrow() {
		return m.viewDay()
	}
	return m.viewWeek()
}

const (
	choreColWidth = 24
	dayColWidth   = 6
)

// viewWeek renders the full seven-column table.
func (m Model) viewWeek() string {
	var b strings.Builder

	today := time.Now()
	header := make([]string, 0, 8)
	header = append(header, headerStyle.Render(pad("Chore", choreColWidth)))
	for _, day := range m.grid.Week.Days {
		label := fmt.Sprintf("%s %d", day.Format("Mon"), day.Day())
		style := headerStyle
		if dates.SameDay(day, today) {
			style = todayStyle
		}
		header = append(header, style.Render(pad(label, dayColWidth)))
	}
	b.WriteString(strings.Join(header, " "))
	b.WriteString("\n")

	for r, row := range m.grid.Rows {
		cols := make([]string, 0, 8)
		cols = append(cols, m.choreLabel(row.Chore))
		for d, cell := range row.Cells {
			content := glyph(cell)
			if cell.NoteCount > 0 {
				content += noteStyle.Render(fmt.Sprintf("%d", cell.NoteCount))
			}
			content = pad(content, dayColWidth)
			if r == m.cursorR && d == m.cursorD {
				content = cursorStyle.Render(content)
			}
			cols = append(cols, content)
		}
		b.WriteString(strings.Join(cols, " "))
		b.WriteString("\n")
	}
	return b.String()
}

// viewDay renders the single-day layout for narrow terminals: chore cards
// with one cell each, plus the day being viewed.
func (m Model) viewDay() string {
	var b strings.Builder
	day := m.grid.Week.Days[m.cursorD]

	label := dates.FormatDisplay(day)
	if dates.SameDay(day, time.Now()) {
		label += " (today)"
	}
	b.WriteString(headerStyle.Render(label))
	b.WriteString("\n\n")

	for r, row := range m.grid.Rows {
		cell := row.Cells[m.cursorD]
		line := fmt.Sprintf("%s %s", glyph(cell), m.choreLabel(row.Chore))
		if cell.NoteCount > 0 {
			line += noteStyle.Render(fmt.Sprintf(" (%d notes)", cell.NoteCount))
		}
		if r == m.cursorR {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) choreLabel(chore models.Chore) string {
	amount := money.FormatCents(chore.AmountCents)
	if chore.PaymentType == models.PaymentWeekly {
		amount += "/wk"
	}
	name := chore.Name
	if len(name) > choreColWidth-len(amount)-2 {
		name = name[:choreColWidth-len(amount)-3] + "…"
	}
	return choreNameStyle.Render(pad(name+" "+amountStyle.Render(amount), choreColWidth))
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
