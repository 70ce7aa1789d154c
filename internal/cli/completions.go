package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/choreboard/internal/dates"
	"github.com/example/choreboard/internal/models"
	"github.com/example/choreboard/internal/money"
	"github.com/example/choreboard/internal/week"
)

func resolveDay(s string) (time.Time, error) {
	if s == "" {
		return dates.StartOfDay(time.Now()), nil
	}
	return dates.ParseDay(s)
}

// findCompletion matches a completion by UUID within the week containing day.
func findCompletion(ctx context.Context, c *Context, uuid string, day time.Time) (models.ChoreCompletion, error) {
	completions, err := c.Services.Completions.AllForWeek(ctx, dates.WeekStart(day))
	if err != nil {
		return models.ChoreCompletion{}, err
	}
	for _, completion := range completions {
		if completion.UUID == uuid {
			return completion, nil
		}
	}
	return models.ChoreCompletion{}, fmt.Errorf("no completion %s in the week of %s", uuid, dates.FormatDay(day))
}

type WeekCmd struct {
	User string `arg:"" help:"User name or id."`
	Date string `help:"Any day in the week to show (YYYY-MM-DD). Defaults to today."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	bg := context.Background()
	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}
	user, err := lookupUser(bg, ctx.Services, c.User)
	if err != nil {
		return err
	}

	w := dates.WeekOf(day)
	chores, err := ctx.Services.Chores.ForUser(bg, user.ID)
	if err != nil {
		return err
	}
	mine, err := ctx.Services.Completions.ForUserWeek(bg, user.ID, w.Start)
	if err != nil {
		return err
	}
	everyone, err := ctx.Services.Completions.AllForWeek(bg, w.Start)
	if err != nil {
		return err
	}

	grid := week.BuildGrid(week.MergeChores(chores, mine), everyone, w)
	fmt.Printf("%s: %s – %s\n\n", user.Name, dates.FormatDay(w.Start), dates.FormatDay(w.End))

	if len(grid.Rows) == 0 {
		fmt.Println("No active chores assigned")
		return nil
	}

	fmt.Printf("%-24s", "")
	for _, d := range w.Days {
		fmt.Printf(" %-4s", d.Format("Mon")[:3])
	}
	fmt.Println()

	for _, row := range grid.Rows {
		name := row.Chore.Name
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		fmt.Printf("%-24s", name)
		for _, cell := range row.Cells {
			fmt.Printf(" %-4s", cellGlyph(cell))
		}
		fmt.Println()
	}

	fmt.Println("\n  x done (approved)   ? awaiting approval   ~ done by someone else   . open")
	return nil
}

func cellGlyph(c week.Cell) string {
	switch c.State {
	case week.CellApproved:
		return "x"
	case week.CellPending:
		return "?"
	case week.CellDoneByOther:
		return "~"
	case week.CellOpen:
		return "."
	default:
		return ""
	}
}

type CompleteCmd struct {
	User  string `arg:"" help:"User name or id."`
	Chore string `arg:"" help:"Chore name, id, or uuid."`
	Date  string `help:"Completion date (YYYY-MM-DD). Defaults to today."`
}

func (c *CompleteCmd) Run(ctx *Context) error {
	bg := context.Background()
	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}
	user, err := lookupUser(bg, ctx.Services, c.User)
	if err != nil {
		return err
	}
	chore, err := lookupChore(bg, ctx.Services, c.Chore)
	if err != nil {
		return err
	}
	if !chore.RequiredDays.ScheduledOn(day.Weekday()) {
		return fmt.Errorf("%s is not scheduled on %s", chore.Name, day.Weekday())
	}

	completion, err := ctx.Services.Completions.Complete(bg, user.ID, chore.ID, day)
	if err != nil {
		return err
	}
	fmt.Printf("Marked %s done for %s on %s (awaiting approval, %s)\n",
		chore.Name, user.Name, completion.CompletedDate, money.FormatCents(completion.AmountCents))
	return nil
}

type ReviewCmd struct {
	Date     string `help:"Any day in the week to review (YYYY-MM-DD). Defaults to today."`
	Approved bool   `help:"Show approved completions instead of pending ones."`
}

func (c *ReviewCmd) Run(ctx *Context) error {
	bg := context.Background()
	if _, err := ctx.Admin(bg); err != nil {
		return err
	}
	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}

	completions, err := ctx.Services.Completions.AllForWeek(bg, dates.WeekStart(day))
	if err != nil {
		return err
	}
	pending, approved := week.Partition(completions)

	group := pending
	label := "Pending"
	if c.Approved {
		group = approved
		label = "Approved"
	}

	if len(group) == 0 {
		fmt.Printf("%s: none\n", label)
		return nil
	}

	fmt.Printf("%s (%d):\n", label, len(group))
	for _, completion := range group {
		choreName := "?"
		if completion.Chore != nil {
			choreName = completion.Chore.Name
		}
		userName := "?"
		if completion.User != nil {
			userName = completion.User.Name
		}
		notes := ""
		if n := len(completion.Notes); n > 0 {
			notes = fmt.Sprintf("  (%d notes)", n)
		}
		fmt.Printf("  %s  %s - %s  %s  %s%s\n",
			completion.UUID, choreName, userName, completion.CompletedDate,
			money.FormatCents(completion.AmountCents), notes)
	}
	return nil
}

type ApproveCmd struct {
	UUID string `arg:"" help:"Completion uuid (from review)."`
	Date string `help:"Any day in the completion's week (YYYY-MM-DD). Defaults to today."`
}

func (c *ApproveCmd) Run(ctx *Context) error {
	bg := context.Background()
	admin, err := ctx.Admin(bg)
	if err != nil {
		return err
	}
	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}
	completion, err := findCompletion(bg, ctx, c.UUID, day)
	if err != nil {
		return err
	}
	if completion.Approved {
		fmt.Println("Already approved")
		return nil
	}

	if err := ctx.Services.Completions.Approve(bg, completion.UUID, admin.ID); err != nil {
		return err
	}
	fmt.Printf("Approved %s\n", completion.UUID)
	return nil
}

type RejectCmd struct {
	UUID string `arg:"" help:"Completion uuid (from review)."`
	Date string `help:"Any day in the completion's week (YYYY-MM-DD). Defaults to today."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *RejectCmd) Run(ctx *Context) error {
	bg := context.Background()
	if _, err := ctx.Admin(bg); err != nil {
		return err
	}
	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}
	completion, err := findCompletion(bg, ctx, c.UUID, day)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("Reject and delete completion %s? The completion and its notes are removed. [y/N] ", completion.UUID)
		var answer string
		fmt.Scanln(&answer)
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := ctx.Services.Completions.Reject(bg, completion.UUID); err != nil {
		return err
	}
	fmt.Printf("Rejected %s\n", completion.UUID)
	return nil
}

type NoteCmd struct {
	UUID      string `arg:"" help:"Completion uuid (from review or week)."`
	Text      string `arg:"" help:"Note text."`
	As        string `help:"Add the note as this user (name or id) instead of as the admin."`
	AdminOnly bool   `help:"Hide the note from non-admin viewers. Admin notes only."`
	Date      string `help:"Any day in the completion's week (YYYY-MM-DD). Defaults to today."`
}

func (c *NoteCmd) Run(ctx *Context) error {
	bg := context.Background()
	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}
	completion, err := findCompletion(bg, ctx, c.UUID, day)
	if err != nil {
		return err
	}

	var in models.ChoreCompletionNoteInput
	if c.As != "" {
		user, err := lookupUser(bg, ctx.Services, c.As)
		if err != nil {
			return err
		}
		if c.AdminOnly {
			return fmt.Errorf("user notes are always visible; --admin-only needs an admin session")
		}
		in = models.UserNote(completion.ID, c.Text, user.ID)
	} else {
		admin, err := ctx.Admin(bg)
		if err != nil {
			return err
		}
		in = models.AdminNote(completion.ID, c.Text, admin.ID, !c.AdminOnly)
	}

	if err := ctx.Services.Completions.AddNote(bg, in); err != nil {
		return err
	}
	fmt.Println("Note added")
	return nil
}
