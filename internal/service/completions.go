package service

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/example/choreboard/internal/dates"
	"github.com/example/choreboard/internal/graphql"
	"github.com/example/choreboard/internal/models"
)

// CompletionService covers completion creation, the two weekly completion
// reads, and the admin approve/reject/note workflow.
type CompletionService struct {
	gql    *graphql.Client
	logger *log.Logger
}

// ForUserWeek fetches one user's completions for the week starting at
// weekStart.
func (s *CompletionService) ForUserWeek(ctx context.Context, userID int, weekStart time.Time) ([]models.ChoreCompletion, error) {
	vars := map[string]any{
		"userId":        userID,
		"weekStartDate": dates.FormatDay(weekStart),
	}
	var completions []models.ChoreCompletion
	err := s.gql.Do(ctx, graphql.GetWeeklyChores, vars, "getWeeklyChoreCompletions", &completions)
	return completions, err
}

// AllForWeek fetches every user's completions for the week starting at
// weekStart. This is the cross-user set behind the done-by-other check and
// the admin review surface.
func (s *CompletionService) AllForWeek(ctx context.Context, weekStart time.Time) ([]models.ChoreCompletion, error) {
	vars := map[string]any{"weekStartDate": dates.FormatDay(weekStart)}
	var completions []models.ChoreCompletion
	err := s.gql.Do(ctx, graphql.GetAllWeeklyCompletions, vars, "getAllWeeklyCompletions", &completions)
	return completions, err
}

// Complete records that a user performed a chore on a calendar day. The
// caller refetches both weekly queries on success: a new completion can flip
// other users' done-by-other cells.
func (s *CompletionService) Complete(ctx context.Context, userID, choreID int, day time.Time) (models.ChoreCompletion, error) {
	in := models.ChoreCompletionInput{
		ChoreID:       choreID,
		UserID:        userID,
		CompletedDate: dates.FormatDay(day),
	}
	var completion models.ChoreCompletion
	if err := in.Validate(); err != nil {
		return completion, err
	}
	err := s.gql.Do(ctx, graphql.CreateChoreCompletion, map[string]any{"completion": in}, "createChoreCompletion", &completion)
	return completion, err
}

// Approve marks a completion valid for payout. Admin only; the server
// stamps approvedAt and approvedByAdminId.
func (s *CompletionService) Approve(ctx context.Context, completionUUID string, adminID int) error {
	vars := map[string]any{"completionUuid": completionUUID, "adminId": adminID}
	var completion models.ChoreCompletion
	return s.gql.Do(ctx, graphql.ApproveChoreCompletion, vars, "approveChoreCompletion", &completion)
}

// Reject permanently deletes a completion and its notes. Irreversible; the
// presentation layer confirms with the admin before calling this.
func (s *CompletionService) Reject(ctx context.Context, completionUUID string) error {
	vars := map[string]any{"completionUuid": completionUUID}
	return s.gql.Do(ctx, graphql.DeleteChoreCompletion, vars, "", nil)
}

// AddNote attaches a note to a completion. Empty or whitespace-only text is
// a no-op: nothing is dispatched.
func (s *CompletionService) AddNote(ctx context.Context, in models.ChoreCompletionNoteInput) error {
	if strings.TrimSpace(in.Note) == "" {
		s.logger.Debug("skipping empty note", "completion_id", in.ChoreCompletionID)
		return nil
	}
	if err := in.Validate(); err != nil {
		return err
	}
	var note models.ChoreCompletionNote
	return s.gql.Do(ctx, graphql.AddChoreNote, map[string]any{"note": in}, "createChoreCompletionNote", &note)
}
