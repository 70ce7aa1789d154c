package service

import (
	"context"

	"github.com/example/choreboard/internal/graphql"
	"github.com/example/choreboard/internal/models"
)

// UserService covers the user listing and creation surface.
type UserService struct {
	gql *graphql.Client
}

// List fetches every household user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.gql.Do(ctx, graphql.GetAllUsers, nil, "listUsers", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get fetches a single user by uuid.
func (s *UserService) Get(ctx context.Context, userUUID string) (models.User, error) {
	var user models.User
	err := s.gql.Do(ctx, graphql.GetUser, map[string]any{"userUuid": userUUID}, "getUser", &user)
	return user, err
}

// Create adds a new user. The caller refetches the user list on success.
func (s *UserService) Create(ctx context.Context, in models.UserInput) (models.User, error) {
	var user models.User
	if err := in.Validate(); err != nil {
		return user, err
	}
	err := s.gql.Do(ctx, graphql.CreateUser, map[string]any{"user": in}, "createUser", &user)
	return user, err
}
