package main

import (
	"github.com/coder/quartz"

	"github.com/lox/handrank/internal/verify"
)

// VerifyCmd enumerates every five-card hand.
type VerifyCmd struct {
	Workers int `short:"w" help:"Worker goroutines (defaults to verify.workers)"`
}

func (c *VerifyCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	eval, err := g.evaluator(cfg, logger)
	if err != nil {
		return err
	}
	workers := c.Workers
	if workers == 0 {
		workers = cfg.Verify.Workers
	}

	ctx := SetupSignalHandler(logger)
	logger.Info("Verifying", "hands", verify.TotalHands, "workers", workers)

	report, err := verify.New(eval, workers, quartz.NewReal(), logger).Run(ctx)
	if err != nil {
		return err
	}
	checkErr := report.Check()
	g.printer(cfg).VerifyReport(report, checkErr)
	return checkErr
}
