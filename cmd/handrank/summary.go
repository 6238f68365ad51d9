package main

import (
	"fmt"

	"github.com/lox/handrank/poker"
)

// SummaryCmd ranks several hands against a shared board.
type SummaryCmd struct {
	Board   string   `short:"b" required:"" help:"Community cards, e.g. 'Td 7s 8h'"`
	Hands   []string `arg:"" help:"Hole cards per player, e.g. 'AcKd' 'QhJs'"`
	Streets bool     `short:"s" help:"Show flop, turn and river separately (needs a five-card board)"`
}

func (c *SummaryCmd) Run(g *Globals) error {
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
	hands := make([][]poker.Card, len(c.Hands))
	for i, s := range c.Hands {
		if hands[i], err = poker.ParseCards(s); err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
	}

	p := g.printer(cfg)
	if c.Streets {
		streets, err := eval.HandSummary(board, hands)
		if err != nil {
			return err
		}
		p.Streets(streets)
		return nil
	}

	results, err := eval.Summarize(board, hands)
	if err != nil {
		return err
	}
	p.Results(board, results, poker.Winners(results))
	return nil
}
