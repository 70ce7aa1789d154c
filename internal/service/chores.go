package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/choreboard/internal/graphql"
	"github.com/example/choreboard/internal/models"
)

// ChoreService covers chore listing and the admin chore-management surface.
type ChoreService struct {
	gql *graphql.Client
}

// ForUser fetches the active chores assigned to a user. The server does the
// active+assigned filtering.
func (s *ChoreService) ForUser(ctx context.Context, userID int) ([]models.Chore, error) {
	var chores []models.Chore
	err := s.gql.Do(ctx, graphql.GetUserChores, map[string]any{"userId": userID}, "listChores", &chores)
	return chores, err
}

// All fetches every chore with its assigned users, for the admin view.
func (s *ChoreService) All(ctx context.Context) ([]models.Chore, error) {
	var chores []models.Chore
	err := s.gql.Do(ctx, graphql.GetAllChores, nil, "listChores", &chores)
	return chores, err
}

// Create adds a chore and assigns the given users to it. A client-generated
// uuid is filled in when the input carries none. Assignment failures abort
// the remaining assigns; the chore itself stays created.
func (s *ChoreService) Create(ctx context.Context, in models.ChoreInput, assignUserIDs []int) (models.Chore, error) {
	var chore models.Chore
	if in.UUID == "" {
		in.UUID = uuid.NewString()
	}
	if err := in.Validate(); err != nil {
		return chore, err
	}
	if err := s.gql.Do(ctx, graphql.CreateChore, map[string]any{"chore": in}, "createChore", &chore); err != nil {
		return chore, err
	}
	for _, userID := range assignUserIDs {
		if err := s.Assign(ctx, chore.ID, userID); err != nil {
			return chore, err
		}
	}
	return chore, nil
}

// Update edits an existing chore, keyed by uuid.
func (s *ChoreService) Update(ctx context.Context, in models.ChoreInput) (models.Chore, error) {
	var chore models.Chore
	if err := in.Validate(); err != nil {
		return chore, err
	}
	err := s.gql.Do(ctx, graphql.UpdateChore, map[string]any{"chore": in}, "updateChore", &chore)
	return chore, err
}

// Assign adds a user to a chore's assignment set.
func (s *ChoreService) Assign(ctx context.Context, choreID, userID int) error {
	vars := map[string]any{"choreId": choreID, "userId": userID}
	return s.gql.Do(ctx, graphql.AssignChoreToUser, vars, "", nil)
}

// Unassign removes a user from a chore's assignment set.
func (s *ChoreService) Unassign(ctx context.Context, choreID, userID int) error {
	vars := map[string]any{"choreId": choreID, "userId": userID}
	return s.gql.Do(ctx, graphql.UnassignUserFromChore, vars, "", nil)
}
