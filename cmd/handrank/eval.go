package main

import (
	"fmt"

	"github.com/lox/handrank/poker"
)

// EvalCmd ranks a single hand.
type EvalCmd struct {
	Board string `short:"b" help:"Community cards, e.g. '2h 2s Jc'"`
	Hand  string `arg:"" help:"Hole cards, e.g. 'Qs Th'"`
	Best  bool   `help:"Also show the best five-card hand"`
}

func (c *EvalCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	eval, err := g.evaluator(cfg, logger)
	if err != nil {
		return err
	}

	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	hand, err := poker.ParseCards(c.Hand)
	if err != nil {
		return fmt.Errorf("hand: %w", err)
	}

	hr, err := eval.Evaluate(board, hand)
	if err != nil {
		return err
	}

	p := g.printer(cfg)
	p.Evaluation(board, hand, hr)
	if c.Best {
		best, _, err := eval.BestHand(append(append([]poker.Card{}, board...), hand...))
		if err != nil {
			return err
		}
		fmt.Printf("best  %s\n", p.Cards(best))
	}
	return nil
}
