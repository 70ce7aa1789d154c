package models

import "time"

// PaymentType determines whether a chore pays per completed day or per week
type PaymentType string

// AuthorType identifies which kind of principal wrote a completion note
type AuthorType string

const (
	PaymentDaily  PaymentType = "DAILY"
	PaymentWeekly PaymentType = "WEEKLY"

	AuthorUser  AuthorType = "USER"
	AuthorAdmin AuthorType = "ADMIN"
)

// User is a household member who executes chores. Identity key for chore
// assignment and completion attribution.
type User struct {
	ID        int       `json:"id"`
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	ImagePath string    `json:"imagePath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Admin is a managing principal, distinct from User. Admins manage chores,
// approve completions, and run payouts.
type Admin struct {
	ID          int       `json:"id"`
	OIDCSubject string    `json:"oidcSubject"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Chore is a recurring task definition. The weekly schedule is the
// RequiredDays bitmask; AssignedUsers is the many-to-many assignment set and
// is only populated by the admin listing.
type Chore struct {
	ID               int          `json:"id"`
	UUID             string       `json:"uuid"`
	Name             string       `json:"name"`
	Description      string       `json:"description,omitempty"`
	AmountCents      int          `json:"amountCents"`
	PaymentType      PaymentType  `json:"paymentType"`
	RequiredDays     RequiredDays `json:"requiredDays"`
	Active           bool         `json:"active"`
	CreatedByAdminID int          `json:"createdByAdminId"`
	CreatedAt        time.Time    `json:"createdAt"`
	AssignedUsers    []User       `json:"assignedUsers,omitempty"`
}

// ChoreCompletion records that a user performed a chore on a calendar day.
// CompletedDate is a local calendar day string (YYYY-MM-DD), not a timestamp.
// AmountCents is captured at completion time and does not track later edits
// to the chore's amount.
type ChoreCompletion struct {
	ID                int                   `json:"id"`
	UUID              string                `json:"uuid"`
	ChoreID           int                   `json:"choreId"`
	UserID            int                   `json:"userId"`
	CompletedDate     string                `json:"completedDate"`
	Approved          bool                  `json:"approved"`
	ApprovedAt        *time.Time            `json:"approvedAt,omitempty"`
	ApprovedByAdminID *int                  `json:"approvedByAdminId,omitempty"`
	AmountCents       int                   `json:"amountCents"`
	PaidOutAt         *time.Time            `json:"paidOutAt,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
	Chore             *Chore                `json:"chore,omitempty"`
	User              *User                 `json:"user,omitempty"`
	Notes             []ChoreCompletionNote `json:"notes,omitempty"`
}

// ChoreCompletionNote is free text attached to a completion by either an
// admin or a user. Exactly one of AuthorUserID/AuthorAdminID is set,
// matching AuthorType.
type ChoreCompletionNote struct {
	ID                int        `json:"id"`
	UUID              string     `json:"uuid"`
	ChoreCompletionID int        `json:"choreCompletionId"`
	Note              string     `json:"noteText"`
	AuthorType        AuthorType `json:"authorType"`
	AuthorUserID      *int       `json:"authorUserId,omitempty"`
	AuthorAdminID     *int       `json:"authorAdminId,omitempty"`
	VisibleToUser     bool       `json:"visibleToUser"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// VisibleTo reports whether a viewer may see this note. Admin-only notes are
// never shown to non-admin viewers.
func (n ChoreCompletionNote) VisibleTo(isAdmin bool) bool {
	return isAdmin || n.VisibleToUser
}

// VisibleNotes filters a completion's notes down to what the viewer may see.
func (c ChoreCompletion) VisibleNotes(isAdmin bool) []ChoreCompletionNote {
	if isAdmin {
		return c.Notes
	}
	visible := make([]ChoreCompletionNote, 0, len(c.Notes))
	for _, n := range c.Notes {
		if n.VisibleTo(isAdmin) {
			visible = append(visible, n)
		}
	}
	return visible
}

// UnpaidTotal is a server-derived aggregate: a user and the summed cents of
// their approved-but-unpaid completions.
type UnpaidTotal struct {
	User        User `json:"user"`
	AmountCents int  `json:"amountCents"`
}

// WeeklyChoreData pairs a chore with the viewed user's completions for the
// displayed week. One row of the weekly grid.
type WeeklyChoreData struct {
	Chore       Chore
	Completions []ChoreCompletion
}
