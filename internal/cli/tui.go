package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitdash/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	if err := tui.Run(ctx.Habits, ctx.Engine, ctx.Settings, ctx.Notifier); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	return nil
}
