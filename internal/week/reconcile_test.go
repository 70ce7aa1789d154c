package week

import (
	"testing"
	"time"

	"github.com/example/choreboard/internal/dates"
	"github.com/example/choreboard/internal/models"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := dates.ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q) failed: %v", s, err)
	}
	return day
}

// tueFri is Tuesday+Friday as a schedule mask (bit 2 + bit 5).
const tueFri = models.RequiredDays(36)

func TestDeriveCell_ScheduleExclusionWinsOverCompletion(t *testing.T) {
	chore := models.Chore{ID: 1, Name: "Dishes", RequiredDays: tueFri}

	// Wednesday, not in the mask, but a completion exists for it anyway
	wed := mustDay(t, "2024-06-12")
	mine := []models.ChoreCompletion{
		{ID: 10, ChoreID: 1, UserID: 5, CompletedDate: "2024-06-12", Approved: true},
	}

	cell := DeriveCell(chore, wed, mine, mine)
	if cell.State != CellNotScheduled {
		t.Errorf("expected CellNotScheduled, got %v", cell.State)
	}
	if cell.Completion != nil {
		t.Error("not-scheduled cell must not carry a completion")
	}
}

func TestDeriveCell_OwnCompletionStates(t *testing.T) {
	chore := models.Chore{ID: 1, RequiredDays: tueFri}
	tue := mustDay(t, "2024-06-11")

	tests := []struct {
		name      string
		approved  bool
		notes     int
		wantState CellState
	}{
		{"pending", false, 0, CellPending},
		{"approved", true, 0, CellApproved},
		{"pending with notes", false, 2, CellPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.ChoreCompletion{ID: 10, ChoreID: 1, UserID: 5, CompletedDate: "2024-06-11", Approved: tt.approved}
			for i := 0; i < tt.notes; i++ {
				c.Notes = append(c.Notes, models.ChoreCompletionNote{ID: i + 1})
			}
			mine := []models.ChoreCompletion{c}

			cell := DeriveCell(chore, tue, mine, mine)
			if cell.State != tt.wantState {
				t.Errorf("expected state %v, got %v", tt.wantState, cell.State)
			}
			if cell.Completion == nil || cell.Completion.ID != 10 {
				t.Error("cell must reference the backing completion")
			}
			if cell.NoteCount != tt.notes {
				t.Errorf("expected %d notes, got %d", tt.notes, cell.NoteCount)
			}
		})
	}
}

func TestDeriveCell_OwnCompletionWinsOverDoneByOther(t *testing.T) {
	chore := models.Chore{ID: 1, RequiredDays: tueFri}
	tue := mustDay(t, "2024-06-11")

	mine := []models.ChoreCompletion{
		{ID: 10, ChoreID: 1, UserID: 5, CompletedDate: "2024-06-11"},
	}
	everyone := []models.ChoreCompletion{
		{ID: 11, ChoreID: 1, UserID: 6, CompletedDate: "2024-06-11", Approved: true},
		{ID: 10, ChoreID: 1, UserID: 5, CompletedDate: "2024-06-11"},
	}

	cell := DeriveCell(chore, tue, mine, everyone)
	if cell.State != CellPending {
		t.Errorf("own pending completion must win over done-by-other, got %v", cell.State)
	}
}

func TestDeriveCell_DoneByOther(t *testing.T) {
	chore := models.Chore{ID: 1, RequiredDays: tueFri}
	tue := mustDay(t, "2024-06-11")

	everyone := []models.ChoreCompletion{
		{ID: 11, ChoreID: 1, UserID: 6, CompletedDate: "2024-06-11"},
	}

	cell := DeriveCell(chore, tue, nil, everyone)
	if cell.State != CellDoneByOther {
		t.Errorf("expected CellDoneByOther, got %v", cell.State)
	}
	if cell.State.Interactive() {
		t.Error("done-by-other cells must not be interactive")
	}
}

func TestDeriveCell_OpenWhenScheduledAndUntouched(t *testing.T) {
	chore := models.Chore{ID: 1, RequiredDays: tueFri}
	fri := mustDay(t, "2024-06-14")

	// completions exist for other chores and other days only
	everyone := []models.ChoreCompletion{
		{ID: 20, ChoreID: 2, UserID: 6, CompletedDate: "2024-06-14"},
		{ID: 21, ChoreID: 1, UserID: 6, CompletedDate: "2024-06-11"},
	}

	cell := DeriveCell(chore, fri, nil, everyone)
	if cell.State != CellOpen {
		t.Errorf("expected CellOpen, got %v", cell.State)
	}
	if !cell.State.Interactive() {
		t.Error("open cells must be interactive")
	}
}

func TestDeriveCell_FirstOwnCompletionWins(t *testing.T) {
	chore := models.Chore{ID: 1, RequiredDays: tueFri}
	tue := mustDay(t, "2024-06-11")

	// duplicate rows for the same (chore, user, day): source order decides
	mine := []models.ChoreCompletion{
		{ID: 10, ChoreID: 1, UserID: 5, CompletedDate: "2024-06-11", Approved: false},
		{ID: 11, ChoreID: 1, UserID: 5, CompletedDate: "2024-06-11", Approved: true},
	}

	cell := DeriveCell(chore, tue, mine, mine)
	if cell.State != CellPending {
		t.Errorf("expected first completion (pending) to win, got %v", cell.State)
	}
	if cell.Completion == nil || cell.Completion.ID != 10 {
		t.Error("cell must reference the first completion in source order")
	}
}

func TestDeriveCell_MatchesTimestampedDates(t *testing.T) {
	chore := models.Chore{ID: 1, RequiredDays: tueFri}
	tue := mustDay(t, "2024-06-11")

	// some server responses carry a full timestamp in the date column
	mine := []models.ChoreCompletion{
		{ID: 10, ChoreID: 1, UserID: 5, CompletedDate: "2024-06-11T00:00:00", Approved: true},
	}

	cell := DeriveCell(chore, tue, mine, mine)
	if cell.State != CellApproved {
		t.Errorf("expected CellApproved for timestamped date, got %v", cell.State)
	}
}

func TestDeriveCell_Idempotent(t *testing.T) {
	chore := models.Chore{ID: 1, RequiredDays: tueFri}
	tue := mustDay(t, "2024-06-11")
	mine := []models.ChoreCompletion{
		{ID: 10, ChoreID: 1, UserID: 5, CompletedDate: "2024-06-11"},
	}

	first := DeriveCell(chore, tue, mine, mine)
	second := DeriveCell(chore, tue, mine, mine)
	if first.State != second.State || first.NoteCount != second.NoteCount {
		t.Error("deriving the same inputs twice must give the same cell")
	}
}

func TestBuildGrid_WeekScenario(t *testing.T) {
	// Week of Sunday 2024-06-09 through Saturday 2024-06-15
	w := dates.WeekOf(mustDay(t, "2024-06-12"))

	chore := models.Chore{ID: 1, Name: "Trash", RequiredDays: tueFri}
	rows := []models.WeeklyChoreData{
		{
			Chore: chore,
			Completions: []models.ChoreCompletion{
				{ID: 10, ChoreID: 1, UserID: 5, CompletedDate: "2024-06-11", Approved: true},
			},
		},
	}

	grid := BuildGrid(rows, nil, w)
	if len(grid.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(grid.Rows))
	}

	want := [7]CellState{
		CellNotScheduled, // Sun
		CellNotScheduled, // Mon
		CellApproved,     // Tue
		CellNotScheduled, // Wed
		CellNotScheduled, // Thu
		CellOpen,         // Fri
		CellNotScheduled, // Sat
	}
	for d, cell := range grid.Rows[0].Cells {
		if cell.State != want[d] {
			t.Errorf("day %d: expected %v, got %v", d, want[d], cell.State)
		}
		if !dates.SameDay(cell.Date, w.Days[d]) {
			t.Errorf("day %d: cell date %v does not match week day %v", d, cell.Date, w.Days[d])
		}
	}
}

func TestMergeChores(t *testing.T) {
	chores := []models.Chore{
		{ID: 1, Name: "Dishes"},
		{ID: 2, Name: "Trash"},
	}
	completions := []models.ChoreCompletion{
		{ID: 10, ChoreID: 2, CompletedDate: "2024-06-11"},
		{ID: 11, ChoreID: 1, CompletedDate: "2024-06-11"},
		{ID: 12, ChoreID: 99, CompletedDate: "2024-06-11"}, // no longer assigned
	}

	rows := MergeChores(chores, completions)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Chore.ID != 1 || rows[1].Chore.ID != 2 {
		t.Error("row order must follow chore order")
	}
	if len(rows[0].Completions) != 1 || rows[0].Completions[0].ID != 11 {
		t.Error("dishes row must carry only its own completion")
	}
	if len(rows[1].Completions) != 1 || rows[1].Completions[0].ID != 10 {
		t.Error("trash row must carry only its own completion")
	}
}

func TestPartition(t *testing.T) {
	completions := []models.ChoreCompletion{
		{ID: 1, Approved: false},
		{ID: 2, Approved: true},
		{ID: 3, Approved: false},
	}

	pending, approved := Partition(completions)
	if len(pending) != 2 || len(approved) != 1 {
		t.Fatalf("expected 2 pending / 1 approved, got %d / %d", len(pending), len(approved))
	}
	if pending[0].ID != 1 || pending[1].ID != 3 {
		t.Error("pending group must preserve source order")
	}

	// approving one moves it across the partition on the next derive
	completions[2].Approved = true
	pending, approved = Partition(completions)
	if len(pending) != 1 || len(approved) != 2 {
		t.Errorf("after approval expected 1 pending / 2 approved, got %d / %d", len(pending), len(approved))
	}
}
