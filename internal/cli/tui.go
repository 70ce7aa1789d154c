package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/choreboard/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	admin := ctx.OptionalAdmin(context.Background())

	p := tea.NewProgram(tui.NewModel(ctx.Services, admin, ctx.PollSeconds), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
