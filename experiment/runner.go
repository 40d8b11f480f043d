package experiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstwalk/builder"
	"github.com/katalvlaran/mstwalk/core"
	"github.com/katalvlaran/mstwalk/prim_kruskal"
	"github.com/katalvlaran/mstwalk/walk"
)

// ErrWeightMismatch is returned when Prim and Kruskal disagree on the total
// weight of a connected graph.
var ErrWeightMismatch = errors.New("experiment: prim and kruskal weights differ")

// Structure names used in reports.
const (
	StructureRaw     = "raw"
	StructurePrim    = prim_kruskal.MethodPrim
	StructureKruskal = prim_kruskal.MethodKruskal
)

// weightTolerance is the relative tolerance of the MST cross-check.
const weightTolerance = 1e-9

// Generator produces the edge list of a synthetic graph on n vertices.
type Generator func(n int, seed int64) ([]core.Edge, error)

// RandomPointsGenerator builds K_n over uniform random points, seeded per size.
func RandomPointsGenerator(n int, seed int64) ([]core.Edge, error) {
	return builder.Complete(n, builder.WithRandomPoints(), builder.WithSeed(walk.DeriveSeed(seed, uint64(n))))
}

// Runner executes experiments with a fixed Config.
type Runner struct {
	cfg    Config
	lookup prim_kruskal.WeightLookup
	log    *zap.Logger
}

// NewRunner validates cfg and returns a Runner. A nil logger is replaced by a
// no-op logger.
func NewRunner(cfg Config, logger *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lookup, err := prim_kruskal.ParseWeightLookup(cfg.Lookup)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{cfg: cfg, lookup: lookup, log: logger}, nil
}

// Config returns the runner's configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// structure is one adjacency source for the walks.
type structure struct {
	name   string
	raw    *core.AdjacencyList // insertion order
	sorted *core.AdjacencyList // weight-sorted, for the greedy walk
}

func newStructure(name string, n int, edges []core.Edge) structure {
	return structure{
		name:   name,
		raw:    core.BuildAdjacency(n, edges, false),
		sorted: core.BuildAdjacency(n, edges, true),
	}
}

// Run executes the full comparison on one graph. Input validation errors and
// MST disagreement are returned as errors; a disconnected graph is not.
func (r *Runner) Run(n int, edges []core.Edge) (*Report, error) {
	if err := builder.Validate(n, edges, false); err != nil {
		return nil, err
	}
	if !r.cfg.Start.Valid(n) {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", walk.ErrStartOutOfRange, r.cfg.Start, n)
	}
	rep := &Report{RunID: uuid.New().String(), N: n, Edges: len(edges), Seed: r.cfg.Seed, Connected: true}
	log := r.log.With(zap.String("run_id", rep.RunID), zap.Int("n", n), zap.Int("edges", len(edges)))

	structures := []structure{newStructure(StructureRaw, n, edges)}

	var weights []float64
	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		opts := prim_kruskal.MSTOptions{Method: method, Root: r.cfg.Start, Lookup: r.lookup}
		begin := time.Now()
		res, err := prim_kruskal.Compute(n, edges, opts)
		elapsed := time.Since(begin)

		out := MSTOutcome{Algorithm: method, Elapsed: elapsed}
		switch {
		case errors.Is(err, prim_kruskal.ErrDisconnected):
			log.Warn("graph is disconnected", zap.String("algorithm", method), zap.Error(err))
			rep.Connected = false
		case err != nil:
			return nil, err
		default:
			if verr := res.Validate(n); verr != nil {
				return nil, verr
			}
			out.Connected = true
			out.TotalWeight = res.TotalWeight
			out.TreeEdges = len(res.Edges)
			weights = append(weights, res.TotalWeight)
			structures = append(structures, newStructure(method, n, res.Edges))
			log.Info("mst computed",
				zap.String("algorithm", method),
				zap.Float64("weight", res.TotalWeight),
				zap.Duration("elapsed", elapsed))
		}
		rep.MST = append(rep.MST, out)
	}
	if len(weights) == 2 && !withinTolerance(weights[0], weights[1]) {
		return nil, fmt.Errorf("%w: %g vs %g", ErrWeightMismatch, weights[0], weights[1])
	}
	if !rep.Connected {
		// Tree walks need a spanning tree.
		structures = structures[:1]
	}

	for i, s := range structures {
		for _, name := range walk.Strategies {
			out, err := r.walk(s, name, uint64(i), rep.Connected)
			if err != nil {
				return nil, err
			}
			if out.Skipped == "" {
				log.Debug("walk finished",
					zap.String("structure", out.Structure),
					zap.String("walk", out.Walk),
					zap.Int("steps", out.Steps),
					zap.Float64("weight", out.TotalWeight),
					zap.Int("visited", out.Visited),
					zap.Duration("elapsed", out.Elapsed))
			}
			rep.Walks = append(rep.Walks, out)
		}
	}

	return rep, nil
}

// walk runs one strategy on one structure. stream selects the random walk's
// RNG stream so each structure gets an independent, reproducible sequence.
func (r *Runner) walk(s structure, name string, stream uint64, connected bool) (Outcome, error) {
	out := Outcome{Structure: s.name, Walk: name}
	if name == walk.StrategyRandom && !connected && r.cfg.MaxSteps == 0 {
		out.Skipped = "disconnected graph and no step bound"
		return out, nil
	}

	adj := s.raw
	if name == walk.StrategyGreedy {
		adj = s.sorted
	}
	picker, err := walk.NewPicker(name, walk.DeriveRand(r.cfg.Seed, stream))
	if err != nil {
		return Outcome{}, err
	}
	opts := []walk.Option{walk.WithMaxSteps(r.cfg.MaxSteps)}
	if r.cfg.Trace {
		opts = append(opts, walk.WithTrace())
	}

	begin := time.Now()
	res, err := walk.Run(adj, r.cfg.Start, picker, opts...)
	out.Elapsed = time.Since(begin)
	if err != nil {
		return Outcome{}, err
	}
	out.Steps = res.Steps
	out.TotalWeight = res.TotalWeight
	out.Visited = res.Visited
	out.Requested = res.Requested
	out.Complete = res.Complete()
	out.Stopped = res.Stopped.String()
	out.Trace = res.Trace

	return out, nil
}

// Sweep runs gen and Run for each size in order. It stops early when ctx is
// done and returns the reports finished so far with ctx.Err().
func (r *Runner) Sweep(ctx context.Context, sizes []int, gen Generator) ([]*Report, error) {
	if gen == nil {
		gen = RandomPointsGenerator
	}
	reports := make([]*Report, 0, len(sizes))
	for _, n := range sizes {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		edges, err := gen(n, r.cfg.Seed)
		if err != nil {
			return reports, fmt.Errorf("generate n=%d: %w", n, err)
		}
		rep, err := r.Run(n, edges)
		if err != nil {
			return reports, fmt.Errorf("run n=%d: %w", n, err)
		}
		r.log.Info("size finished", zap.Int("n", n), zap.Bool("connected", rep.Connected))
		reports = append(reports, rep)
	}

	return reports, nil
}

func withinTolerance(a, b float64) bool {
	return math.Abs(a-b) <= weightTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
