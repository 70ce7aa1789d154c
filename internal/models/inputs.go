package models

import (
	"fmt"
	"strings"
)

// Input records are the mutation payloads. Each one is an explicit tagged
// struct validated client-side before dispatch; invalid inputs never reach
// the server.

// UserInput is the payload for createUser.
type UserInput struct {
	Name      string `json:"name"`
	ImagePath string `json:"imagePath,omitempty"`
}

func (in UserInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("user name is required")
	}
	return nil
}

// ChoreInput is the payload for createChore and updateChore. UUID is empty
// on create and required on update.
type ChoreInput struct {
	UUID             string       `json:"uuid,omitempty"`
	Name             string       `json:"name"`
	Description      string       `json:"description,omitempty"`
	PaymentType      PaymentType  `json:"paymentType"`
	AmountCents      int          `json:"amountCents"`
	RequiredDays     RequiredDays `json:"requiredDays"`
	Active           bool         `json:"active"`
	CreatedByAdminID int          `json:"createdByAdminId"`
}

func (in ChoreInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("chore name is required")
	}
	if in.AmountCents < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if in.PaymentType != PaymentDaily && in.PaymentType != PaymentWeekly {
		return fmt.Errorf("payment type must be %s or %s", PaymentDaily, PaymentWeekly)
	}
	if in.RequiredDays == 0 {
		return fmt.Errorf("at least one scheduled day is required")
	}
	if in.CreatedByAdminID <= 0 {
		return fmt.Errorf("creating admin id is required")
	}
	return nil
}

// ChoreCompletionInput is the payload for createChoreCompletion.
// CompletedDate is a local calendar day formatted YYYY-MM-DD.
type ChoreCompletionInput struct {
	ChoreID       int    `json:"choreId"`
	UserID        int    `json:"userId"`
	CompletedDate string `json:"completedDate"`
}

func (in ChoreCompletionInput) Validate() error {
	if in.ChoreID <= 0 {
		return fmt.Errorf("chore id is required")
	}
	if in.UserID <= 0 {
		return fmt.Errorf("user id is required")
	}
	if in.CompletedDate == "" {
		return fmt.Errorf("completed date is required")
	}
	return nil
}

// ChoreCompletionNoteInput is the payload for createChoreCompletionNote.
// Exactly one of AuthorUserID/AuthorAdminID must be set, matching
// AuthorType. Notes authored by users are always visible to users.
type ChoreCompletionNoteInput struct {
	ChoreCompletionID int        `json:"choreCompletionId"`
	Note              string     `json:"noteText"`
	AuthorType        AuthorType `json:"authorType"`
	AuthorUserID      *int       `json:"authorUserId,omitempty"`
	AuthorAdminID     *int       `json:"authorAdminId,omitempty"`
	VisibleToUser     bool       `json:"visibleToUser"`
}

func (in ChoreCompletionNoteInput) Validate() error {
	if in.ChoreCompletionID <= 0 {
		return fmt.Errorf("completion id is required")
	}
	if strings.TrimSpace(in.Note) == "" {
		return fmt.Errorf("note text is required")
	}
	switch in.AuthorType {
	case AuthorUser:
		if in.AuthorUserID == nil || in.AuthorAdminID != nil {
			return fmt.Errorf("user-authored note requires exactly authorUserId")
		}
		if !in.VisibleToUser {
			return fmt.Errorf("user-authored notes must be visible to users")
		}
	case AuthorAdmin:
		if in.AuthorAdminID == nil || in.AuthorUserID != nil {
			return fmt.Errorf("admin-authored note requires exactly authorAdminId")
		}
	default:
		return fmt.Errorf("unknown author type %q", in.AuthorType)
	}
	return nil
}

// UserNote builds a user-authored note input. Visibility is forced on;
// users cannot write admin-only notes.
func UserNote(completionID int, text string, userID int) ChoreCompletionNoteInput {
	return ChoreCompletionNoteInput{
		ChoreCompletionID: completionID,
		Note:              strings.TrimSpace(text),
		AuthorType:        AuthorUser,
		AuthorUserID:      &userID,
		VisibleToUser:     true,
	}
}

// AdminNote builds an admin-authored note input with explicit visibility.
func AdminNote(completionID int, text string, adminID int, visibleToUser bool) ChoreCompletionNoteInput {
	return ChoreCompletionNoteInput{
		ChoreCompletionID: completionID,
		Note:              strings.TrimSpace(text),
		AuthorType:        AuthorAdmin,
		AuthorAdminID:     &adminID,
		VisibleToUser:     visibleToUser,
	}
}
