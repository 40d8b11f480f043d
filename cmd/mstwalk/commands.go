package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/mstwalk/builder"
	"github.com/katalvlaran/mstwalk/experiment"
)

type runCmd struct {
	Input    string `short:"i" placeholder:"FILE" type:"existingfile" help:"Edge list to read (default stdin)"`
	Complete bool   `help:"Require every vertex pair to be present"`
}

func (c *runCmd) Run(app *appContext) error {
	in := app.stdin
	if c.Input != "" {
		f, err := os.Open(c.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	n, edges, err := builder.ReadEdgeList(in)
	if err != nil {
		return err
	}
	if err := builder.Validate(n, edges, c.Complete); err != nil {
		return err
	}
	app.log.Info("edge list loaded", zap.Int("n", n), zap.Int("edges", len(edges)))

	runner, err := experiment.NewRunner(app.cfg, app.log)
	if err != nil {
		return err
	}
	rep, err := runner.Run(n, edges)
	if err != nil {
		return err
	}

	return experiment.WriteReports(app.stdout, app.format, []*experiment.Report{rep})
}

type benchCmd struct {
	Sizes []int `default:"10,50,100" help:"Graph sizes to sweep"`
}

func (c *benchCmd) Run(app *appContext) error {
	runner, err := experiment.NewRunner(app.cfg, app.log)
	if err != nil {
		return err
	}
	reports, err := runner.Sweep(app.ctx, c.Sizes, experiment.RandomPointsGenerator)
	if werr := experiment.WriteReports(app.stdout, app.format, reports); werr != nil && err == nil {
		err = werr
	}

	return err
}

type generateCmd struct {
	N      int    `short:"n" required:"" help:"Number of vertices"`
	Output string `short:"o" placeholder:"FILE" help:"Output file (default stdout)"`
}

func (c *generateCmd) Run(app *appContext) error {
	edges, err := experiment.RandomPointsGenerator(c.N, app.cfg.Seed)
	if err != nil {
		return err
	}

	var out io.Writer = app.stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := builder.WriteEdgeList(out, c.N, edges); err != nil {
		return fmt.Errorf("write edge list: %w", err)
	}
	app.log.Debug("edge list generated", zap.Int("n", c.N), zap.Int("edges", len(edges)))

	return nil
}
