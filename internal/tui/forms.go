package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/example/choreboard/internal/models"
	"github.com/example/choreboard/internal/money"
)

func weekdayOptions(selected []time.Weekday) []huh.Option[time.Weekday] {
	chosen := make(map[time.Weekday]bool, len(selected))
	for _, d := range selected {
		chosen[d] = true
	}
	days := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	opts := make([]huh.Option[time.Weekday], len(days))
	for i, d := range days {
		opts[i] = huh.NewOption(d.String(), d).Selected(chosen[d])
	}
	return opts
}

// newChoreForm builds the create/edit chore form. f must be pre-filled for
// edits; the form writes back into it.
func newChoreForm(f *ChoreFormModel, editing bool) *huh.Form {
	title := "New chore"
	if editing {
		title = "Edit chore"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Name").
				Value(&f.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Description("Description (optional)").
				Value(&f.Description),
			huh.NewInput().
				Description("Amount, e.g. 1.50").
				Value(&f.Amount).
				Validate(func(s string) error {
					cents, err := money.ParseDollars(s)
					if err != nil {
						return err
					}
					if cents < 0 {
						return fmt.Errorf("amount cannot be negative")
					}
					return nil
				}),
			huh.NewSelect[models.PaymentType]().
				Title("Payment").
				Options(
					huh.NewOption("Per day completed", models.PaymentDaily),
					huh.NewOption("Weekly, all scheduled days required", models.PaymentWeekly),
				).
				Value(&f.PaymentType),
			huh.NewMultiSelect[time.Weekday]().
				Title("Scheduled days").
				Options(weekdayOptions(f.Days)...).
				Value(&f.Days).
				Validate(func(days []time.Weekday) error {
					if len(days) == 0 {
						return fmt.Errorf("pick at least one day")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Active?").
				Affirmative("Yes").
				Negative("No").
				Value(&f.Active),
		),
	)
}

func newUserForm(f *UserFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New user").
				Description("Name").
				Value(&f.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
		),
	)
}

// newNoteForm builds the add-note form. The admin-only toggle is only shown
// to admins; user notes are always visible to everyone.
func newNoteForm(f *NoteFormModel, isAdmin bool) *huh.Form {
	fields := []huh.Field{
		huh.NewText().
			Title("Add note").
			Value(&f.Text),
	}
	if isAdmin {
		fields = append(fields,
			huh.NewConfirm().
				Title("Visible only to admins?").
				Affirmative("Admins only").
				Negative("Everyone").
				Value(&f.AdminOnly),
		)
	}
	return huh.NewForm(huh.NewGroup(fields...))
}

func newAssignForm(f *AssignFormModel, chore models.Chore, users []models.User) *huh.Form {
	assigned := make(map[int]bool, len(chore.AssignedUsers))
	for _, u := range chore.AssignedUsers {
		assigned[u.ID] = true
	}
	opts := make([]huh.Option[int], len(users))
	for i, u := range users {
		opts[i] = huh.NewOption(u.Name, u.ID).Selected(assigned[u.ID])
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Assign: " + chore.Name).
				Options(opts...).
				Value(&f.UserIDs),
		),
	)
}
