// Package week derives the interactive state of the weekly chore grid from
// data already fetched from the server. Everything here is a pure function
// of its inputs; the grid is rebuilt from scratch on every data refresh
// rather than patched incrementally.
package week

import (
	"time"

	"github.com/example/choreboard/internal/constants"
	"github.com/example/choreboard/internal/dates"
	"github.com/example/choreboard/internal/models"
)

// CellState is the derived state of one (chore, calendar-day) grid cell.
type CellState int

const (
	// CellNotScheduled: the chore's schedule excludes this weekday. No
	// affordance, regardless of any completion data present.
	CellNotScheduled CellState = iota
	// CellApproved: the viewed user completed the chore that day and an
	// admin approved it. Clickable to open detail.
	CellApproved
	// CellPending: the viewed user completed the chore that day; approval
	// outstanding. Clickable to open detail.
	CellPending
	// CellDoneByOther: someone else completed the chore that day. The chore
	// is covered; the cell is a non-interactive placeholder.
	CellDoneByOther
	// CellOpen: scheduled, uncompleted. Clicking issues a create-completion
	// for this chore and day.
	CellOpen
)

// Interactive reports whether the cell responds to selection.
func (s CellState) Interactive() bool {
	return s == CellApproved || s == CellPending || s == CellOpen
}

// Cell is one grid cell: its derived state plus the completion backing it,
// when one exists.
type Cell struct {
	Date       time.Time
	State      CellState
	Completion *models.ChoreCompletion // set for CellApproved and CellPending
	NoteCount  int
}

// Row is one chore's seven cells for the displayed week.
type Row struct {
	Chore models.Chore
	Cells [constants.DaysPerWeek]Cell
}

// Grid is the fully derived weekly view for one user.
type Grid struct {
	Week dates.Week
	Rows []Row
}

// DeriveCell computes the state of a single (chore, date) cell. The step
// ordering is authoritative: schedule exclusion wins over everything, and
// the viewed user's own completion wins over done-by-other. When the source
// data carries several own completions for the same day, the first in
// source order wins.
func DeriveCell(chore models.Chore, date time.Time, mine []models.ChoreCompletion, everyone []models.ChoreCompletion) Cell {
	cell := Cell{Date: date}

	if !chore.RequiredDays.ScheduledOn(date.Weekday()) {
		cell.State = CellNotScheduled
		return cell
	}

	for i := range mine {
		c := &mine[i]
		if c.ChoreID == chore.ID && dates.SameDayAsString(date, c.CompletedDate) {
			if c.Approved {
				cell.State = CellApproved
			} else {
				cell.State = CellPending
			}
			cell.Completion = c
			cell.NoteCount = len(c.Notes)
			return cell
		}
	}

	for i := range everyone {
		c := &everyone[i]
		if c.ChoreID == chore.ID && dates.SameDayAsString(date, c.CompletedDate) {
			cell.State = CellDoneByOther
			return cell
		}
	}

	cell.State = CellOpen
	return cell
}

// BuildGrid derives the whole weekly grid for the viewed user. rows carries
// the user's assigned chores with that user's completions; everyone is the
// all-users completion set for the same week, consulted only for the
// done-by-other check.
func BuildGrid(rows []models.WeeklyChoreData, everyone []models.ChoreCompletion, w dates.Week) Grid {
	g := Grid{Week: w, Rows: make([]Row, len(rows))}
	for i, data := range rows {
		row := Row{Chore: data.Chore}
		for d, day := range w.Days {
			row.Cells[d] = DeriveCell(data.Chore, day, data.Completions, everyone)
		}
		g.Rows[i] = row
	}
	return g
}

// MergeChores pairs each chore with its completions from the per-user weekly
// query, preserving chore order. Completions for chores no longer assigned
// are dropped, matching the server-filtered chore list.
func MergeChores(chores []models.Chore, completions []models.ChoreCompletion) []models.WeeklyChoreData {
	byChore := make(map[int][]models.ChoreCompletion)
	for _, c := range completions {
		byChore[c.ChoreID] = append(byChore[c.ChoreID], c)
	}
	rows := make([]models.WeeklyChoreData, len(chores))
	for i, chore := range chores {
		rows[i] = models.WeeklyChoreData{Chore: chore, Completions: byChore[chore.ID]}
	}
	return rows
}

// Partition splits a week's completions into pending and approved groups for
// the review surface. Order within each group follows source order.
func Partition(completions []models.ChoreCompletion) (pending, approved []models.ChoreCompletion) {
	for _, c := range completions {
		if c.Approved {
			approved = append(approved, c)
		} else {
			pending = append(pending, c)
		}
	}
	return pending, approved
}
