package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jaminalder/cookies-and-milk/internal/app"
	"github.com/jaminalder/cookies-and-milk/internal/domain"
)

// RandomCmd prints the first N random boards of a freshly started game.
type RandomCmd struct {
	Count int    `short:"n" default:"1" help:"Number of boards to print"`
	Seed  uint64 `default:"2024" hidden:"" help:"Generator seed"`
}

func (c *RandomCmd) Run(cli *CLI) error {
	return c.print(os.Stdout)
}

func (c *RandomCmd) print(w io.Writer) error {
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	svc := app.NewService(app.WithSeed(c.Seed))
	for i := 0; i < c.Count; i++ {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, domain.Render(svc.Random())); err != nil {
			return err
		}
	}
	return nil
}
