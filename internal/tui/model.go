// Package tui is the interactive shell: profile selection, the weekly chore
// grid, the completion detail view, and the admin review/management/payout
// surfaces. All data lives in this model and is replaced wholesale on every
// refetch; components render slices of it and emit intent messages.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/huh"

	"github.com/example/choreboard/internal/constants"
	"github.com/example/choreboard/internal/dates"
	"github.com/example/choreboard/internal/models"
	"github.com/example/choreboard/internal/service"
	"github.com/example/choreboard/internal/tui/components/detail"
	"github.com/example/choreboard/internal/tui/components/grid"
	"github.com/example/choreboard/internal/tui/components/manage"
	"github.com/example/choreboard/internal/tui/components/payouts"
	"github.com/example/choreboard/internal/tui/components/review"
	"github.com/example/choreboard/internal/tui/components/userselect"
	"github.com/example/choreboard/internal/week"
)

type ChoreFormModel struct {
	Name        string
	Description string
	Amount      string
	PaymentType models.PaymentType
	Days        []time.Weekday
	Active      bool
}

type UserFormModel struct {
	Name string
}

type NoteFormModel struct {
	Text      string
	AdminOnly bool
}

type AssignFormModel struct {
	UserIDs []int
}

type Model struct {
	services *service.Services
	poll     time.Duration

	// identity: admin is nil for a plain user session; user is the profile
	// whose grid is being viewed
	admin *models.Admin
	user  *models.User

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	spinner       spinner.Model
	loading       bool
	loadErr       error

	// last server snapshots; replaced wholesale on refetch
	users    []models.User
	chores   []models.Chore
	mine     []models.ChoreCompletion
	everyone []models.ChoreCompletion
	totals   []models.UnpaidTotal
	allUsers []models.User
	allList  []models.Chore

	week dates.Week

	userSelect  userselect.Model
	gridModel   grid.Model
	detailModel detail.Model
	reviewModel review.Model
	payoutModel payouts.Model
	manageModel manage.Model

	form         *huh.Form
	choreForm    *ChoreFormModel
	userForm     *UserFormModel
	noteForm     *NoteFormModel
	assignForm   *AssignFormModel
	editingChore *models.Chore
	noteTargetID int
	rejectUUID   string
	payoutIDs    []int

	quitting bool
	width    int
	height   int
}

// NewModel builds the shell. admin is nil when the session is not an admin;
// admin-only surfaces are then unreachable.
func NewModel(services *service.Services, admin *models.Admin, pollSeconds int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		services:    services,
		poll:        time.Duration(pollSeconds) * time.Second,
		admin:       admin,
		state:       constants.StateUserSelect,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		loading:     true,
		week:        dates.WeekOf(time.Now()),
		userSelect:  userselect.New(nil, 0, 0),
		gridModel:   grid.New(week.Grid{}, 0, 0),
		reviewModel: review.New(nil, 0, 0),
		payoutModel: payouts.New(nil),
		manageModel: manage.New(nil, 0, 0),
	}
}

func (m Model) isAdmin() bool {
	return m.admin != nil
}

// rebuildGrid re-derives the weekly grid from the current snapshots. Called
// whenever either weekly query lands.
func (m *Model) rebuildGrid() {
	rows := week.MergeChores(m.chores, m.mine)
	m.gridModel.SetGrid(week.BuildGrid(rows, m.everyone, m.week))
}
