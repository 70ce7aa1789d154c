package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/example/choreboard/internal/constants"
	"github.com/example/choreboard/internal/dates"
	"github.com/example/choreboard/internal/models"
	"github.com/example/choreboard/internal/money"
	"github.com/example/choreboard/internal/tui/components/detail"
	"github.com/example/choreboard/internal/tui/components/grid"
	"github.com/example/choreboard/internal/tui/components/manage"
	"github.com/example/choreboard/internal/tui/components/payouts"
	"github.com/example/choreboard/internal/tui/components/review"
	"github.com/example/choreboard/internal/tui/components/userselect"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadUsersCmd(), m.pollCmd())
}

// tabOrder is the admin surface cycle. Non-admin sessions stay on the grid.
var tabOrder = []constants.SessionState{
	constants.StateWeek,
	constants.StateReview,
	constants.StateManage,
	constants.StatePayouts,
}

func (m Model) formState() bool {
	switch m.state {
	case constants.StateAddNote, constants.StateAddChore, constants.StateEditChore,
		constants.StateAddUser, constants.StateAssign:
		return true
	}
	return false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentH := msg.Height - 6
		if contentH < 1 {
			contentH = 1
		}
		m.userSelect.SetSize(msg.Width, contentH)
		m.gridModel.SetSize(msg.Width, contentH)
		m.reviewModel.SetSize(msg.Width, contentH)
		m.manageModel.SetSize(msg.Width, contentH)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case usersLoadedMsg:
		m.users = msg.users
		m.userSelect.SetUsers(msg.users)
		m.loading = false
		m.loadErr = nil
		return m, nil

	case weekDataMsg:
		m.chores = msg.chores
		m.mine = msg.mine
		m.rebuildGrid()
		m.loading = false
		m.loadErr = nil
		return m, nil

	case everyoneLoadedMsg:
		m.everyone = msg.completions
		m.rebuildGrid()
		m.reviewModel.SetCompletions(msg.completions)
		return m, nil

	case totalsLoadedMsg:
		m.totals = msg.totals
		m.payoutModel.SetTotals(msg.totals)
		m.loading = false
		m.loadErr = nil
		return m, nil

	case manageDataMsg:
		m.allList = msg.chores
		m.allUsers = msg.users
		m.manageModel.SetChores(msg.chores)
		m.loading = false
		m.loadErr = nil
		return m, nil

	case loadErrMsg:
		m.loadErr = msg.err
		m.loading = false
		return m, nil

	case mutationDoneMsg:
		return m, m.refetchAfter(msg)

	case pollTickMsg:
		cmds := []tea.Cmd{m.pollCmd()}
		if m.user != nil {
			cmds = append(cmds, m.loadEveryoneCmd())
		}
		return m, tea.Batch(cmds...)

	// component intents
	case userselect.ChooseMsg:
		user := msg.User
		m.user = &user
		m.state = constants.StateWeek
		m.loading = true
		return m, tea.Batch(m.loadWeekCmd(), m.loadEveryoneCmd())

	case grid.CompleteChoreMsg:
		return m, m.completeChoreCmd(msg.ChoreID, msg.Date)

	case grid.SelectCompletionMsg:
		return m.openDetail(msg.Completion), nil

	case review.SelectCompletionMsg:
		return m.openDetail(msg.Completion), nil

	case detail.ApproveMsg:
		m.state = m.previousState
		return m, m.approveCmd(msg.CompletionUUID)

	case detail.RequestRejectMsg:
		m.rejectUUID = msg.CompletionUUID
		m.state = constants.StateConfirmReject
		return m, nil

	case detail.RequestNoteMsg:
		m.noteTargetID = msg.CompletionID
		m.noteForm = &NoteFormModel{}
		m.form = newNoteForm(m.noteForm, m.isAdmin())
		m.state = constants.StateAddNote
		return m, m.form.Init()

	case detail.CloseMsg:
		m.state = m.previousState
		return m, nil

	case manage.AddChoreMsg:
		m.choreForm = &ChoreFormModel{PaymentType: models.PaymentDaily, Active: true}
		m.form = newChoreForm(m.choreForm, false)
		m.editingChore = nil
		m.state = constants.StateAddChore
		return m, m.form.Init()

	case manage.EditChoreMsg:
		chore := msg.Chore
		m.choreForm = &ChoreFormModel{
			Name:        chore.Name,
			Description: chore.Description,
			Amount:      formatAmountField(chore.AmountCents),
			PaymentType: chore.PaymentType,
			Days:        chore.RequiredDays.Weekdays(),
			Active:      chore.Active,
		}
		m.form = newChoreForm(m.choreForm, true)
		m.editingChore = &chore
		m.state = constants.StateEditChore
		return m, m.form.Init()

	case manage.AddUserMsg:
		m.userForm = &UserFormModel{}
		m.form = newUserForm(m.userForm)
		m.state = constants.StateAddUser
		return m, m.form.Init()

	case manage.AssignMsg:
		chore := msg.Chore
		ids := make([]int, len(chore.AssignedUsers))
		for i, u := range chore.AssignedUsers {
			ids[i] = u.ID
		}
		m.assignForm = &AssignFormModel{UserIDs: ids}
		m.form = newAssignForm(m.assignForm, chore, m.allUsers)
		m.editingChore = &chore
		m.state = constants.StateAssign
		return m, m.form.Init()

	case payouts.RequestPayoutMsg:
		m.payoutIDs = msg.UserIDs
		m.state = constants.StateConfirmPayout
		return m, nil
	}

	if m.formState() {
		return m.updateForm(msg)
	}

	switch m.state {
	case constants.StateConfirmReject:
		return m.updateConfirmReject(msg)
	case constants.StateConfirmPayout:
		return m.updateConfirmPayout(msg)
	}

	return m.updateBrowse(msg)
}

// openDetail snapshots the surface underneath so esc and approve/reject land
// back on it.
func (m Model) openDetail(c models.ChoreCompletion) Model {
	m.detailModel = detail.New(c, m.isAdmin())
	m.previousState = m.state
	m.state = constants.StateDetail
	return m
}

// refetchAfter maps a finished mutation to the reads it invalidates.
func (m Model) refetchAfter(msg mutationDoneMsg) tea.Cmd {
	if !msg.ok {
		return nil
	}
	var cmds []tea.Cmd
	if msg.refetchWeek && m.user != nil {
		cmds = append(cmds, m.loadWeekCmd())
	}
	if msg.refetchOthers {
		cmds = append(cmds, m.loadEveryoneCmd())
	}
	if msg.refetchTotals {
		cmds = append(cmds, m.loadTotalsCmd())
	}
	if msg.refetchManage {
		cmds = append(cmds, m.loadManageCmd())
	}
	if msg.refetchUsers {
		cmds = append(cmds, m.loadUsersCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		return m.closeForm(), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		submit := m.submitFormCmd()
		return m.closeForm(), submit
	case huh.StateAborted:
		return m.closeForm(), nil
	}
	return m, cmd
}

// submitFormCmd turns the completed form's values into the matching
// mutation command. Must be called before closeForm clears the pointers.
func (m Model) submitFormCmd() tea.Cmd {
	switch m.state {
	case constants.StateAddChore, constants.StateEditChore:
		f := m.choreForm
		cents, err := money.ParseDollars(f.Amount)
		if err != nil {
			// the form validated this already
			cents = 0
		}
		in := models.ChoreInput{
			Name:         strings.TrimSpace(f.Name),
			Description:  strings.TrimSpace(f.Description),
			PaymentType:  f.PaymentType,
			AmountCents:  cents,
			RequiredDays: models.RequiredDaysFrom(f.Days...),
			Active:       f.Active,
		}
		if m.admin != nil {
			in.CreatedByAdminID = m.admin.ID
		}
		if m.state == constants.StateEditChore && m.editingChore != nil {
			in.UUID = m.editingChore.UUID
			return m.updateChoreCmd(in)
		}
		return m.createChoreCmd(in, nil)

	case constants.StateAddUser:
		return m.createUserCmd(models.UserInput{Name: strings.TrimSpace(m.userForm.Name)})

	case constants.StateAddNote:
		f := m.noteForm
		if m.isAdmin() {
			return m.addNoteCmd(models.AdminNote(m.noteTargetID, f.Text, m.admin.ID, !f.AdminOnly))
		}
		if m.user == nil {
			return nil
		}
		return m.addNoteCmd(models.UserNote(m.noteTargetID, f.Text, m.user.ID))

	case constants.StateAssign:
		if m.editingChore == nil {
			return nil
		}
		return m.setAssignmentsCmd(*m.editingChore, m.assignForm.UserIDs)
	}
	return nil
}

// closeForm drops the active form and returns to the surface it was opened
// from: the note form goes back to the surface beneath the detail view,
// manage forms land back on the manage list.
func (m Model) closeForm() Model {
	switch m.state {
	case constants.StateAddNote:
		m.state = m.previousState
	default:
		m.state = constants.StateManage
	}
	m.form = nil
	m.choreForm = nil
	m.userForm = nil
	m.noteForm = nil
	m.assignForm = nil
	m.editingChore = nil
	return m
}

func (m Model) updateConfirmReject(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		uuid := m.rejectUUID
		m.rejectUUID = ""
		m.state = m.previousState
		return m, m.rejectCmd(uuid)
	case "n", "N", "esc":
		m.rejectUUID = ""
		m.state = constants.StateDetail
	}
	return m, nil
}

func (m Model) updateConfirmPayout(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		ids := m.payoutIDs
		m.payoutIDs = nil
		m.state = constants.StatePayouts
		return m, m.payoutCmd(ids)
	case "n", "N", "esc":
		m.payoutIDs = nil
		m.state = constants.StatePayouts
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd, handled := m.handleBrowseKey(keyMsg); handled {
			return model, cmd
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateUserSelect:
		m.userSelect, cmd = m.userSelect.Update(msg)
	case constants.StateWeek:
		m.gridModel, cmd = m.gridModel.Update(msg)
	case constants.StateDetail:
		m.detailModel, cmd = m.detailModel.Update(msg)
	case constants.StateReview:
		m.reviewModel, cmd = m.reviewModel.Update(msg)
	case constants.StateManage:
		m.manageModel, cmd = m.manageModel.Update(msg)
	case constants.StatePayouts:
		m.payoutModel, cmd = m.payoutModel.Update(msg)
	}
	return m, cmd
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	// lists own plain-letter keys while filtering
	filtering := m.listFiltering()

	switch {
	case key.Matches(msg, m.keys.Quit) && !filtering && m.state != constants.StateDetail:
		m.quitting = true
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Help) && !filtering:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil, true

	case key.Matches(msg, m.keys.Tab) && m.isAdmin() && m.user != nil && !filtering:
		return m.cycleTab(1)

	case key.Matches(msg, m.keys.ShiftTab) && m.isAdmin() && m.user != nil:
		return m.cycleTab(-1)

	case key.Matches(msg, m.keys.Back) && m.state == constants.StateWeek:
		// back to the profile picker
		m.user = nil
		m.state = constants.StateUserSelect
		return m, nil, true

	case (key.Matches(msg, m.keys.PrevWeek) || key.Matches(msg, m.keys.NextWeek) || key.Matches(msg, m.keys.ThisWeek)) &&
		!filtering && (m.state == constants.StateWeek || m.state == constants.StateReview):
		switch {
		case key.Matches(msg, m.keys.PrevWeek):
			m.week = m.week.Previous()
		case key.Matches(msg, m.keys.NextWeek):
			m.week = m.week.Next()
		default:
			m.week = dates.WeekOf(time.Now())
		}
		m.loading = true
		cmds := []tea.Cmd{m.loadEveryoneCmd()}
		if m.user != nil {
			cmds = append(cmds, m.loadWeekCmd())
		}
		return m, tea.Batch(cmds...), true
	}

	return m, nil, false
}

func (m Model) listFiltering() bool {
	switch m.state {
	case constants.StateUserSelect:
		return m.userSelect.Filtering()
	case constants.StateReview:
		return m.reviewModel.Filtering()
	case constants.StateManage:
		return m.manageModel.Filtering()
	}
	return false
}

func (m Model) cycleTab(dir int) (tea.Model, tea.Cmd, bool) {
	cur := 0
	for i, s := range tabOrder {
		if s == m.state {
			cur = i
			break
		}
	}
	next := tabOrder[(cur+dir+len(tabOrder))%len(tabOrder)]
	m.state = next

	switch next {
	case constants.StateReview:
		return m, m.loadEveryoneCmd(), true
	case constants.StateManage:
		m.loading = true
		return m, m.loadManageCmd(), true
	case constants.StatePayouts:
		m.loading = true
		return m, m.loadTotalsCmd(), true
	}
	return m, nil, true
}

func formatAmountField(cents int) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
