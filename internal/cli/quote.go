package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitdash/internal/quotes"
)

type QuoteCmd struct{}

func (c *QuoteCmd) Run(ctx *Context) error {
	q := quotes.OfDay(time.Now())
	fmt.Printf("%q\n    - %s\n", q.Text, q.Author)
	return nil
}
