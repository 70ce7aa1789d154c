package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/example/choreboard/internal/cli"
	"github.com/example/choreboard/internal/config"
	"github.com/example/choreboard/internal/constants"
	"github.com/example/choreboard/internal/errors"
	"github.com/example/choreboard/internal/keyring"
	"github.com/example/choreboard/internal/logger"
	"github.com/example/choreboard/internal/service"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Server  string `help:"Server URL. Overrides the config file."`
	Debug   bool   `help:"Enable debug logging."`

	Tui  cli.TuiCmd `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Auth struct {
		Login  cli.AuthLoginCmd  `cmd:"" help:"Store a session cookie."`
		Logout cli.AuthLogoutCmd `cmd:"" help:"Clear the stored session."`
		Whoami cli.AuthWhoamiCmd `cmd:"" help:"Show the authenticated admin."`
	} `cmd:"" help:"Manage the admin session."`
	User struct {
		List cli.UserListCmd `cmd:"" help:"List users."`
		Show cli.UserShowCmd `cmd:"" help:"Show one user."`
		Add  cli.UserAddCmd  `cmd:"" help:"Add a user."`
		Image struct {
			Set    cli.UserImageSetCmd    `cmd:"" help:"Upload a profile image."`
			Remove cli.UserImageRemoveCmd `cmd:"" help:"Remove the profile image."`
		} `cmd:"" help:"Manage profile images."`
	} `cmd:"" help:"Manage users."`
	Chore struct {
		List     cli.ChoreListCmd     `cmd:"" help:"List chores."`
		Add      cli.ChoreAddCmd      `cmd:"" help:"Add a chore."`
		Edit     cli.ChoreEditCmd     `cmd:"" help:"Edit a chore."`
		Assign   cli.ChoreAssignCmd   `cmd:"" help:"Assign a chore to a user."`
		Unassign cli.ChoreUnassignCmd `cmd:"" help:"Unassign a chore from a user."`
	} `cmd:"" help:"Manage chores."`
	Week     cli.WeekCmd     `cmd:"" help:"Show a user's weekly chore grid."`
	Complete cli.CompleteCmd `cmd:"" help:"Mark a chore done for a user."`
	Review   cli.ReviewCmd   `cmd:"" help:"List a week's completions for review."`
	Approve  cli.ApproveCmd  `cmd:"" help:"Approve a completion."`
	Reject   cli.RejectCmd   `cmd:"" help:"Reject and delete a completion."`
	Note     cli.NoteCmd     `cmd:"" help:"Add a note to a completion."`
	Payout   struct {
		List cli.PayoutListCmd `cmd:"" help:"Show approved-but-unpaid totals."`
		Pay  cli.PayoutPayCmd  `cmd:"" help:"Mark users' approved completions as paid."`
	} `cmd:"" help:"Manage payouts."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal client for the household chore board"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Server != "" {
		cfg.ServerURL = CLI.Server
	}
	if CLI.Debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		errors.Fatal(err)
	}

	if dir, err := config.Dir(); err == nil {
		if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: dir}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
		}
	}

	cookie, err := keyring.GetSessionCookie()
	if err != nil && !stderrors.Is(err, keyring.ErrNotFound) {
		logger.Warn("keyring unavailable, continuing without a session", "error", err)
	}

	appCtx := &cli.Context{
		Services:    service.New(cfg.ServerURL, cookie, logger.Get()),
		PollSeconds: cfg.PollSeconds,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
