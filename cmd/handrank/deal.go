package main

import (
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/poker"
)

// DealCmd deals a random hand and replays it street by street.
type DealCmd struct {
	Players int   `short:"n" default:"2" help:"Number of players"`
	Seed    int64 `help:"Random seed for a reproducible deal (0 picks one)"`
}

func (c *DealCmd) Run(g *Globals) error {
	if c.Players < 1 || c.Players > 23 {
		return fmt.Errorf("players must be between 1 and 23, got %d", c.Players)
	}
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	eval, err := g.evaluator(cfg, logger)
	if err != nil {
		return err
	}

	seed := randutil.Resolve(c.Seed, quartz.NewReal())
	logger.Info("Dealing", "players", c.Players, "seed", seed)
	deck := poker.NewDeck(randutil.New(seed))

	board, err := deck.Draw(5)
	if err != nil {
		return err
	}
	hands := make([][]poker.Card, c.Players)
	for i := range hands {
		if hands[i], err = deck.Draw(2); err != nil {
			return err
		}
	}

	streets, err := eval.HandSummary(board, hands)
	if err != nil {
		return err
	}
	g.printer(cfg).Streets(streets)
	return nil
}
