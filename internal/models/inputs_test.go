package models

import (
	"strings"
	"testing"
)

func TestUserInputValidate(t *testing.T) {
	if err := (UserInput{Name: "Ada"}).Validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
	if err := (UserInput{Name: "   "}).Validate(); err == nil {
		t.Error("whitespace-only name accepted")
	}
}

func TestChoreInputValidate(t *testing.T) {
	valid := ChoreInput{
		Name:             "Dishes",
		PaymentType:      PaymentDaily,
		AmountCents:      150,
		RequiredDays:     36,
		Active:           true,
		CreatedByAdminID: 1,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ChoreInput)
	}{
		{"empty name", func(in *ChoreInput) { in.Name = " " }},
		{"negative amount", func(in *ChoreInput) { in.AmountCents = -1 }},
		{"bad payment type", func(in *ChoreInput) { in.PaymentType = "hourly" }},
		{"no scheduled days", func(in *ChoreInput) { in.RequiredDays = 0 }},
		{"missing admin", func(in *ChoreInput) { in.CreatedByAdminID = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := in.Validate(); err == nil {
				t.Error("invalid input accepted")
			}
		})
	}

	// zero-cent chores are allowed
	free := valid
	free.AmountCents = 0
	if err := free.Validate(); err != nil {
		t.Errorf("zero amount rejected: %v", err)
	}
}

func TestChoreCompletionInputValidate(t *testing.T) {
	valid := ChoreCompletionInput{ChoreID: 1, UserID: 2, CompletedDate: "2024-06-11"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	for _, in := range []ChoreCompletionInput{
		{UserID: 2, CompletedDate: "2024-06-11"},
		{ChoreID: 1, CompletedDate: "2024-06-11"},
		{ChoreID: 1, UserID: 2},
	} {
		if err := in.Validate(); err == nil {
			t.Errorf("invalid input accepted: %+v", in)
		}
	}
}

func TestNoteInputValidate(t *testing.T) {
	userID := 5
	adminID := 3

	t.Run("user note", func(t *testing.T) {
		in := UserNote(10, "  looks great  ", userID)
		if err := in.Validate(); err != nil {
			t.Fatalf("valid user note rejected: %v", err)
		}
		if in.Note != "looks great" {
			t.Errorf("note text not trimmed: %q", in.Note)
		}
		if !in.VisibleToUser {
			t.Error("user notes must be visible to users")
		}
	})

	t.Run("user note hidden from users", func(t *testing.T) {
		in := UserNote(10, "hi", userID)
		in.VisibleToUser = false
		if err := in.Validate(); err == nil {
			t.Error("user-authored hidden note accepted")
		}
	})

	t.Run("admin note either visibility", func(t *testing.T) {
		for _, visible := range []bool{true, false} {
			in := AdminNote(10, "redo this", adminID, visible)
			if err := in.Validate(); err != nil {
				t.Errorf("admin note (visible=%v) rejected: %v", visible, err)
			}
		}
	})

	t.Run("empty after trim", func(t *testing.T) {
		in := UserNote(10, "   \n\t ", userID)
		if err := in.Validate(); err == nil {
			t.Error("whitespace-only note accepted")
		}
	})

	t.Run("both authors set", func(t *testing.T) {
		in := UserNote(10, "hi", userID)
		in.AuthorAdminID = &adminID
		if err := in.Validate(); err == nil {
			t.Error("note with both author ids accepted")
		}
	})

	t.Run("missing completion id", func(t *testing.T) {
		in := UserNote(0, "hi", userID)
		if err := in.Validate(); err == nil {
			t.Error("note without completion id accepted")
		}
	})
}

func TestVisibleNotes(t *testing.T) {
	c := ChoreCompletion{
		Notes: []ChoreCompletionNote{
			{ID: 1, Note: "public", VisibleToUser: true},
			{ID: 2, Note: "admin only", VisibleToUser: false},
			{ID: 3, Note: strings.Repeat("x", 10), VisibleToUser: true},
		},
	}

	if got := c.VisibleNotes(false); len(got) != 2 {
		t.Errorf("non-admin sees %d notes, want 2", len(got))
	}
	if got := c.VisibleNotes(true); len(got) != 3 {
		t.Errorf("admin sees %d notes, want 3", len(got))
	}
}
