// Command mstwalk compares minimum spanning tree algorithms and graph walk
// heuristics on weighted undirected graphs.
//
// Subcommands:
//
//	run       read an edge list and report MSTs and walks
//	bench     sweep synthetic random-point graphs over several sizes
//	generate  write a synthetic complete edge list
//
// Reports go to stdout, logs to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstwalk/core"
	"github.com/katalvlaran/mstwalk/experiment"
)

// CLI is the mstwalk command line: global flags plus the run, bench and
// generate subcommands.
type CLI struct {
	Format   string `enum:"text,yaml" default:"text" env:"MSTWALK_FORMAT" help:"Report format (text, yaml)"`
	LogLevel string `name:"log-level" default:"info" env:"MSTWALK_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	Dev      bool   `env:"MSTWALK_DEV" help:"Use human-readable development logging"`

	Config   string `placeholder:"FILE" type:"existingfile" env:"MSTWALK_CONFIG" help:"YAML experiment config"`
	Seed     int64  `env:"MSTWALK_SEED" help:"Random walk seed; 0 keeps the configured seed"`
	Start    int    `env:"MSTWALK_START" help:"Start vertex and Prim root; 0 keeps the configured start"`
	MaxSteps int    `name:"max-steps" default:"-1" env:"MSTWALK_MAX_STEPS" help:"Step bound per walk; -1 keeps the configured bound, 0 is unbounded"`
	Lookup   string `env:"MSTWALK_LOOKUP" help:"Prim weight lookup (adjacency, dense)"`
	Trace    bool   `env:"MSTWALK_TRACE" help:"Include per-step traces in reports"`

	Run      runCmd      `cmd:"" help:"Read an edge list and report MSTs and walks"`
	Bench    benchCmd    `cmd:"" help:"Sweep synthetic graphs over several sizes"`
	Generate generateCmd `cmd:"" help:"Write a synthetic complete edge list"`
}

// appContext is bound into every subcommand's Run.
type appContext struct {
	ctx    context.Context
	log    *zap.Logger
	cfg    experiment.Config
	format string
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("mstwalk"),
		kong.Description("Compare Prim, Kruskal and graph walk heuristics."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := newApp(ctx, &cli, os.Stdin, os.Stdout)
	kctx.FatalIfErrorf(err)
	defer func() { _ = app.log.Sync() }()

	if err := kctx.Run(app); err != nil {
		app.log.Error("command failed", zap.String("command", kctx.Command()), zap.Error(err))
		kctx.Exit(1)
	}
}

// newApp builds the logger and the effective experiment config.
func newApp(ctx context.Context, cli *CLI, stdin io.Reader, stdout io.Writer) (*appContext, error) {
	logger, err := newLogger(cli.LogLevel, cli.Dev)
	if err != nil {
		return nil, err
	}
	cfg, err := cli.experimentConfig()
	if err != nil {
		return nil, err
	}

	return &appContext{
		ctx:    ctx,
		log:    logger,
		cfg:    cfg,
		format: cli.Format,
		stdin:  stdin,
		stdout: stdout,
	}, nil
}

// newLogger returns a production JSON logger, or a console logger in dev mode.
func newLogger(level string, dev bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if dev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = lvl

	return zc.Build()
}

// experimentConfig layers the config file and the flags over the defaults.
func (cli *CLI) experimentConfig() (experiment.Config, error) {
	cfg := experiment.DefaultConfig()
	if cli.Config != "" {
		f, err := os.Open(cli.Config)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if cfg, err = experiment.LoadConfig(f); err != nil {
			return cfg, fmt.Errorf("%s: %w", cli.Config, err)
		}
	}
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}
	if cli.Start != 0 {
		cfg.Start = core.Vertex(cli.Start)
	}
	if cli.MaxSteps >= 0 {
		cfg.MaxSteps = cli.MaxSteps
	}
	if cli.Lookup != "" {
		cfg.Lookup = cli.Lookup
	}
	if cli.Trace {
		cfg.Trace = true
	}

	return cfg, cfg.Validate()
}
