package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/choreboard/internal/money"
)

type PayoutListCmd struct{}

func (c *PayoutListCmd) Run(ctx *Context) error {
	bg := context.Background()
	if _, err := ctx.Admin(bg); err != nil {
		return err
	}

	totals, err := ctx.Services.Payouts.UnpaidTotals(bg)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		fmt.Println("Nothing owed. All approved completions are paid out.")
		return nil
	}

	fmt.Println("Unpaid totals:")
	var sum int
	for _, t := range totals {
		fmt.Printf("  %-20s %s\n", t.User.Name, money.FormatCents(t.AmountCents))
		sum += t.AmountCents
	}
	fmt.Printf("  %-20s %s\n", "Total", money.FormatCents(sum))
	return nil
}

type PayoutPayCmd struct {
	Users []string `arg:"" help:"Users (name or id) to mark as paid."`
	Yes   bool     `short:"y" help:"Skip the confirmation prompt."`
}

func (c *PayoutPayCmd) Run(ctx *Context) error {
	bg := context.Background()
	if _, err := ctx.Admin(bg); err != nil {
		return err
	}

	totals, err := ctx.Services.Payouts.UnpaidTotals(bg)
	if err != nil {
		return err
	}
	owed := make(map[int]int, len(totals))
	for _, t := range totals {
		owed[t.User.ID] = t.AmountCents
	}

	var ids []int
	var names []string
	var cents int
	for _, ref := range c.Users {
		user, err := lookupUser(bg, ctx.Services, ref)
		if err != nil {
			return err
		}
		amount, ok := owed[user.ID]
		if !ok {
			return fmt.Errorf("%s has no approved unpaid completions", user.Name)
		}
		ids = append(ids, user.ID)
		names = append(names, user.Name)
		cents += amount
	}

	if !c.Yes {
		fmt.Printf("Mark %s as paid (%s total)? This cannot be undone. [y/N] ",
			strings.Join(names, ", "), money.FormatCents(cents))
		var answer string
		fmt.Scanln(&answer)
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := ctx.Services.Payouts.MarkPaid(bg, ids); err != nil {
		return err
	}
	fmt.Printf("Marked %d user(s) paid, %s total\n", len(ids), money.FormatCents(cents))
	return nil
}
