// Package cli holds the kong command implementations. Every command talks
// to the server through the service façades; nothing is cached locally.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/choreboard/internal/models"
	"github.com/example/choreboard/internal/service"
)

type Context struct {
	Services    *service.Services
	PollSeconds int

	admin      *models.Admin
	adminKnown bool
}

// Admin returns the authenticated admin for this session, or
// service.ErrNotAdmin when the stored cookie is missing, expired, or
// belongs to no admin. The lookup runs at most once per invocation.
func (c *Context) Admin(ctx context.Context) (*models.Admin, error) {
	if c.adminKnown {
		if c.admin == nil {
			return nil, service.ErrNotAdmin
		}
		return c.admin, nil
	}
	c.adminKnown = true

	admin, err := c.Services.Session.Me(ctx)
	if err != nil {
		return nil, err
	}
	c.admin = &admin
	return c.admin, nil
}

// OptionalAdmin is Admin without the error: nil when not an admin session.
func (c *Context) OptionalAdmin(ctx context.Context) *models.Admin {
	admin, err := c.Admin(ctx)
	if err != nil {
		return nil
	}
	return admin
}

// lookupUser resolves a user reference that may be a numeric id or a
// case-insensitive name.
func lookupUser(ctx context.Context, svc *service.Services, ref string) (models.User, error) {
	users, err := svc.Users.List(ctx)
	if err != nil {
		return models.User{}, err
	}

	if id, err := strconv.Atoi(ref); err == nil {
		for _, u := range users {
			if u.ID == id {
				return u, nil
			}
		}
	}
	for _, u := range users {
		if strings.EqualFold(u.Name, ref) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("no user matching %q", ref)
}

// lookupChore resolves a chore reference that may be a numeric id, a UUID,
// or a case-insensitive name.
func lookupChore(ctx context.Context, svc *service.Services, ref string) (models.Chore, error) {
	chores, err := svc.Chores.All(ctx)
	if err != nil {
		return models.Chore{}, err
	}

	if id, err := strconv.Atoi(ref); err == nil {
		for _, c := range chores {
			if c.ID == id {
				return c, nil
			}
		}
	}
	for _, c := range chores {
		if c.UUID == ref || strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}
	return models.Chore{}, fmt.Errorf("no chore matching %q", ref)
}

func parseRequiredDays(s string) (models.RequiredDays, error) {
	days, ok := models.ParseRequiredDays(s)
	if !ok {
		return 0, fmt.Errorf("invalid weekday list %q (expected e.g. mon,wed,fri)", s)
	}
	return days, nil
}
