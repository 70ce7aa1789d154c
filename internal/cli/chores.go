package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/choreboard/internal/models"
	"github.com/example/choreboard/internal/money"
)

type ChoreListCmd struct {
	All bool `help:"Include inactive chores."`
}

func (c *ChoreListCmd) Run(ctx *Context) error {
	bg := context.Background()
	chores, err := ctx.Services.Chores.All(bg)
	if err != nil {
		return err
	}
	if len(chores) == 0 {
		fmt.Println("No chores found")
		return nil
	}

	fmt.Println("Chores:")
	for _, chore := range chores {
		if !c.All && !chore.Active {
			continue
		}

		status := "active"
		if !chore.Active {
			status = "inactive"
		}
		amount := money.FormatCents(chore.AmountCents)
		if chore.PaymentType == models.PaymentWeekly {
			amount += "/wk"
		}
		fmt.Printf("  [%s] %d  %s - %s on %s\n", status, chore.ID, chore.Name, amount, chore.RequiredDays)

		if n := len(chore.AssignedUsers); n > 0 {
			names := make([]string, n)
			for i, u := range chore.AssignedUsers {
				names[i] = u.Name
			}
			fmt.Printf("      Assigned: %s\n", strings.Join(names, ", "))
		}
	}
	return nil
}

type ChoreAddCmd struct {
	Name        string `arg:"" help:"Chore name."`
	Amount      string `short:"a" help:"Payment amount, e.g. 1.50." required:""`
	Days        string `short:"d" help:"Comma-separated scheduled weekdays, e.g. mon,wed,fri." required:""`
	Weekly      bool   `short:"w" help:"Pay once per fully-completed week instead of per day."`
	Description string `help:"Optional description."`
	Assign      string `help:"Comma-separated users (name or id) to assign."`
}

func (c *ChoreAddCmd) Run(ctx *Context) error {
	bg := context.Background()
	admin, err := ctx.Admin(bg)
	if err != nil {
		return err
	}

	cents, err := money.ParseDollars(c.Amount)
	if err != nil {
		return err
	}
	days, err := parseRequiredDays(c.Days)
	if err != nil {
		return err
	}

	paymentType := models.PaymentDaily
	if c.Weekly {
		paymentType = models.PaymentWeekly
	}

	var assignIDs []int
	if c.Assign != "" {
		for _, ref := range strings.Split(c.Assign, ",") {
			user, err := lookupUser(bg, ctx.Services, strings.TrimSpace(ref))
			if err != nil {
				return err
			}
			assignIDs = append(assignIDs, user.ID)
		}
	}

	chore, err := ctx.Services.Chores.Create(bg, models.ChoreInput{
		Name:             c.Name,
		Description:      c.Description,
		PaymentType:      paymentType,
		AmountCents:      cents,
		RequiredDays:     days,
		Active:           true,
		CreatedByAdminID: admin.ID,
	}, assignIDs)
	if err != nil {
		return err
	}

	fmt.Printf("Added chore: %s (ID: %d)\n", chore.Name, chore.ID)
	return nil
}

type ChoreEditCmd struct {
	Chore       string  `arg:"" help:"Chore name, id, or uuid."`
	Name        *string `help:"New name."`
	Amount      *string `short:"a" help:"New amount, e.g. 1.50."`
	Days        *string `short:"d" help:"New scheduled weekdays, e.g. mon,wed,fri."`
	Weekly      *bool   `short:"w" help:"Weekly payment instead of per day."`
	Description *string `help:"New description."`
	Active      *bool   `help:"Activate or deactivate."`
}

func (c *ChoreEditCmd) Run(ctx *Context) error {
	bg := context.Background()
	admin, err := ctx.Admin(bg)
	if err != nil {
		return err
	}

	chore, err := lookupChore(bg, ctx.Services, c.Chore)
	if err != nil {
		return err
	}

	in := models.ChoreInput{
		UUID:             chore.UUID,
		Name:             chore.Name,
		Description:      chore.Description,
		PaymentType:      chore.PaymentType,
		AmountCents:      chore.AmountCents,
		RequiredDays:     chore.RequiredDays,
		Active:           chore.Active,
		CreatedByAdminID: admin.ID,
	}

	if c.Name != nil {
		in.Name = *c.Name
	}
	if c.Description != nil {
		in.Description = *c.Description
	}
	if c.Amount != nil {
		cents, err := money.ParseDollars(*c.Amount)
		if err != nil {
			return err
		}
		in.AmountCents = cents
	}
	if c.Days != nil {
		days, err := parseRequiredDays(*c.Days)
		if err != nil {
			return err
		}
		in.RequiredDays = days
	}
	if c.Weekly != nil {
		in.PaymentType = models.PaymentDaily
		if *c.Weekly {
			in.PaymentType = models.PaymentWeekly
		}
	}
	if c.Active != nil {
		in.Active = *c.Active
	}

	updated, err := ctx.Services.Chores.Update(bg, in)
	if err != nil {
		return err
	}
	fmt.Printf("Updated chore: %s\n", updated.Name)
	return nil
}

type ChoreAssignCmd struct {
	Chore string `arg:"" help:"Chore name, id, or uuid."`
	User  string `arg:"" help:"User name or id."`
}

func (c *ChoreAssignCmd) Run(ctx *Context) error {
	bg := context.Background()
	if _, err := ctx.Admin(bg); err != nil {
		return err
	}

	chore, err := lookupChore(bg, ctx.Services, c.Chore)
	if err != nil {
		return err
	}
	user, err := lookupUser(bg, ctx.Services, c.User)
	if err != nil {
		return err
	}
	if err := ctx.Services.Chores.Assign(bg, chore.ID, user.ID); err != nil {
		return err
	}
	fmt.Printf("Assigned %s to %s\n", chore.Name, user.Name)
	return nil
}

type ChoreUnassignCmd struct {
	Chore string `arg:"" help:"Chore name, id, or uuid."`
	User  string `arg:"" help:"User name or id."`
}

func (c *ChoreUnassignCmd) Run(ctx *Context) error {
	bg := context.Background()
	if _, err := ctx.Admin(bg); err != nil {
		return err
	}

	chore, err := lookupChore(bg, ctx.Services, c.Chore)
	if err != nil {
		return err
	}
	user, err := lookupUser(bg, ctx.Services, c.User)
	if err != nil {
		return err
	}
	if err := ctx.Services.Chores.Unassign(bg, chore.ID, user.ID); err != nil {
		return err
	}
	fmt.Printf("Unassigned %s from %s\n", chore.Name, user.Name)
	return nil
}
