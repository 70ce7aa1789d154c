package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/choreboard/internal/logger"
	"github.com/example/choreboard/internal/models"
)

// Messages carrying fresh server snapshots. Mutations never patch local
// state: they complete, then the affected queries are refetched.

type usersLoadedMsg struct {
	users []models.User
}

type weekDataMsg struct {
	chores []models.Chore
	mine   []models.ChoreCompletion
}

type everyoneLoadedMsg struct {
	completions []models.ChoreCompletion
}

type totalsLoadedMsg struct {
	totals []models.UnpaidTotal
}

type manageDataMsg struct {
	chores []models.Chore
	users  []models.User
}

type loadErrMsg struct {
	err error
}

// mutationDoneMsg reports a completed mutation and which reads to refresh.
// Failed mutations are logged and absorbed: the UI stays as it was.
type mutationDoneMsg struct {
	ok             bool
	refetchWeek    bool
	refetchOthers  bool
	refetchTotals  bool
	refetchManage  bool
	refetchUsers   bool
}

type pollTickMsg struct{}

func (m Model) loadUsersCmd() tea.Cmd {
	services := m.services
	return func() tea.Msg {
		users, err := services.Users.List(context.Background())
		if err != nil {
			return loadErrMsg{err: err}
		}
		return usersLoadedMsg{users: users}
	}
}

// loadWeekCmd fetches the viewed user's chores and completions for the
// displayed week. The all-users query runs as its own command, concurrently
// and unsequenced.
func (m Model) loadWeekCmd() tea.Cmd {
	services := m.services
	userID := m.user.ID
	weekStart := m.week.Start
	return func() tea.Msg {
		ctx := context.Background()
		chores, err := services.Chores.ForUser(ctx, userID)
		if err != nil {
			return loadErrMsg{err: err}
		}
		mine, err := services.Completions.ForUserWeek(ctx, userID, weekStart)
		if err != nil {
			return loadErrMsg{err: err}
		}
		return weekDataMsg{chores: chores, mine: mine}
	}
}

func (m Model) loadEveryoneCmd() tea.Cmd {
	services := m.services
	weekStart := m.week.Start
	return func() tea.Msg {
		completions, err := services.Completions.AllForWeek(context.Background(), weekStart)
		if err != nil {
			return loadErrMsg{err: err}
		}
		return everyoneLoadedMsg{completions: completions}
	}
}

func (m Model) loadTotalsCmd() tea.Cmd {
	services := m.services
	return func() tea.Msg {
		totals, err := services.Payouts.UnpaidTotals(context.Background())
		if err != nil {
			return loadErrMsg{err: err}
		}
		return totalsLoadedMsg{totals: totals}
	}
}

func (m Model) loadManageCmd() tea.Cmd {
	services := m.services
	return func() tea.Msg {
		ctx := context.Background()
		chores, err := services.Chores.All(ctx)
		if err != nil {
			return loadErrMsg{err: err}
		}
		users, err := services.Users.List(ctx)
		if err != nil {
			return loadErrMsg{err: err}
		}
		return manageDataMsg{chores: chores, users: users}
	}
}

func (m Model) completeChoreCmd(choreID int, date time.Time) tea.Cmd {
	services := m.services
	userID := m.user.ID
	return func() tea.Msg {
		_, err := services.Completions.Complete(context.Background(), userID, choreID, date)
		if err != nil {
			logger.Error("completing chore failed", "chore_id", choreID, "error", err)
			return mutationDoneMsg{}
		}
		// a new completion can flip other users' done-by-other cells
		return mutationDoneMsg{ok: true, refetchWeek: true, refetchOthers: true}
	}
}

func (m Model) approveCmd(completionUUID string) tea.Cmd {
	services := m.services
	adminID := m.admin.ID
	return func() tea.Msg {
		if err := services.Completions.Approve(context.Background(), completionUUID, adminID); err != nil {
			logger.Error("approving completion failed", "uuid", completionUUID, "error", err)
			return mutationDoneMsg{}
		}
		return mutationDoneMsg{ok: true, refetchWeek: true, refetchOthers: true}
	}
}

func (m Model) rejectCmd(completionUUID string) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		if err := services.Completions.Reject(context.Background(), completionUUID); err != nil {
			logger.Error("rejecting completion failed", "uuid", completionUUID, "error", err)
			return mutationDoneMsg{}
		}
		return mutationDoneMsg{ok: true, refetchWeek: true, refetchOthers: true}
	}
}

func (m Model) addNoteCmd(in models.ChoreCompletionNoteInput) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		if err := services.Completions.AddNote(context.Background(), in); err != nil {
			logger.Error("adding note failed", "completion_id", in.ChoreCompletionID, "error", err)
			return mutationDoneMsg{}
		}
		return mutationDoneMsg{ok: true, refetchWeek: true, refetchOthers: true}
	}
}

func (m Model) createChoreCmd(in models.ChoreInput, assignUserIDs []int) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		if _, err := services.Chores.Create(context.Background(), in, assignUserIDs); err != nil {
			logger.Error("creating chore failed", "name", in.Name, "error", err)
			return mutationDoneMsg{}
		}
		return mutationDoneMsg{ok: true, refetchManage: true}
	}
}

func (m Model) updateChoreCmd(in models.ChoreInput) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		if _, err := services.Chores.Update(context.Background(), in); err != nil {
			logger.Error("updating chore failed", "uuid", in.UUID, "error", err)
			return mutationDoneMsg{}
		}
		return mutationDoneMsg{ok: true, refetchManage: true}
	}
}

func (m Model) createUserCmd(in models.UserInput) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		if _, err := services.Users.Create(context.Background(), in); err != nil {
			logger.Error("creating user failed", "name", in.Name, "error", err)
			return mutationDoneMsg{}
		}
		return mutationDoneMsg{ok: true, refetchManage: true, refetchUsers: true}
	}
}

// setAssignmentsCmd reconciles a chore's assignment set against the picker
// result: assign what's newly selected, unassign what was dropped.
func (m Model) setAssignmentsCmd(chore models.Chore, selected []int) tea.Cmd {
	services := m.services
	current := make(map[int]bool, len(chore.AssignedUsers))
	for _, u := range chore.AssignedUsers {
		current[u.ID] = true
	}
	wanted := make(map[int]bool, len(selected))
	for _, id := range selected {
		wanted[id] = true
	}
	return func() tea.Msg {
		ctx := context.Background()
		for id := range wanted {
			if !current[id] {
				if err := services.Chores.Assign(ctx, chore.ID, id); err != nil {
					logger.Error("assigning user failed", "chore_id", chore.ID, "user_id", id, "error", err)
					return mutationDoneMsg{}
				}
			}
		}
		for id := range current {
			if !wanted[id] {
				if err := services.Chores.Unassign(ctx, chore.ID, id); err != nil {
					logger.Error("unassigning user failed", "chore_id", chore.ID, "user_id", id, "error", err)
					return mutationDoneMsg{}
				}
			}
		}
		return mutationDoneMsg{ok: true, refetchManage: true}
	}
}

func (m Model) payoutCmd(userIDs []int) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		if err := services.Payouts.MarkPaid(context.Background(), userIDs); err != nil {
			logger.Error("marking completions paid failed", "users", len(userIDs), "error", err)
			return mutationDoneMsg{}
		}
		return mutationDoneMsg{ok: true, refetchTotals: true}
	}
}

// pollCmd keeps the all-users view eventually consistent with completions
// from other devices. Stale responses may transiently overwrite newer data
// after rapid week navigation; accepted staleness window.
func (m Model) pollCmd() tea.Cmd {
	return tea.Tick(m.poll, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}
