// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bicover/bcgraph"
	"github.com/katalvlaran/bicover/bounds"
	"github.com/katalvlaran/bicover/formulation"
	"github.com/katalvlaran/bicover/mip"
)

// Sentinel errors carried by Error reports.
var (
	// ErrConfig indicates an unusable configuration or graph input.
	ErrConfig = errors.New("run: bad configuration")

	// ErrInfeasible indicates a model with no cover inside the candidate
	// budget (possible only under a MaxCandidates cap below bc(g)).
	ErrInfeasible = errors.New("run: model infeasible")

	// ErrSolver indicates a backend failure mid-solve.
	ErrSolver = errors.New("run: solver failure")
)

// State is a position in the run state machine.
type State string

const (
	StateConfigured  State = "configured"
	StateBounded     State = "bounded"
	StateBuilt       State = "built"
	StateWarmStarted State = "warm_started"
	StateSolving     State = "solving"

	// Terminal states.
	StateOptimal             State = "optimal"
	StateTimedOutFeasible    State = "timed_out_feasible"
	StateTimedOutNoIncumbent State = "timed_out_no_incumbent"
	StateInfeasible          State = "infeasible"
	StateError               State = "error"
)

// Report is one row of the batch report.
type Report struct {
	Name      string
	Model     string
	LB        int
	UB        int
	Status    State
	Objective float64
	Gap       float64
	WallTime  time.Duration

	// Cover is the certificate behind Objective; nil when no incumbent
	// exists.
	Cover bcgraph.Cover

	// Err is set for StateError and StateInfeasible, nil otherwise.
	Err error
}

// Driver executes runs against injected collaborators. LoadGraph and
// NewSolver are per-run factories; a Driver itself holds no per-run state
// and may execute runs concurrently.
type Driver struct {
	LoadGraph func(path string) (*bcgraph.Graph, error)
	NewSolver func() mip.Solver
	Log       *zap.Logger
}

// NewDriver wires a Driver; a nil logger is replaced by a no-op one.
func NewDriver(load func(string) (*bcgraph.Graph, error), newSolver func() mip.Solver, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}

	return &Driver{LoadGraph: load, NewSolver: newSolver, Log: log}
}

// Execute walks one configuration through the state machine and returns its
// report row. Failures terminate the run, never the process.
func (d *Driver) Execute(ctx context.Context, cfg Config) Report {
	started := time.Now()
	log := d.Log.With(zap.String("run", cfg.Name), zap.String("model", cfg.Model))
	log.Info("run starting", zap.String("state", string(StateConfigured)))

	rep := Report{Name: cfg.Name, Model: cfg.Model}
	fail := func(err error) Report {
		rep.Status = StateError
		rep.Err = err
		rep.WallTime = time.Since(started)
		log.Error("run failed", zap.Error(err))

		return rep
	}

	lbm, err := bounds.ParseLBMethod(cfg.LBMethod)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrConfig, err))
	}
	ubm, err := bounds.ParseUBMethod(cfg.UBMethod)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrConfig, err))
	}
	kind, err := formulation.ParseKind(cfg.Model)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrConfig, err))
	}

	g, err := d.LoadGraph(cfg.Graph)
	if err != nil {
		return fail(fmt.Errorf("%w: graph %q: %v", ErrConfig, cfg.Graph, err))
	}

	pair, cover, err := bounds.Compute(g, lbm, ubm)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrConfig, err))
	}
	rep.LB, rep.UB = pair.Lower, pair.Upper
	log.Info("bounds computed", zap.String("state", string(StateBounded)),
		zap.Int("lb", pair.Lower), zap.Int("ub", pair.Upper))

	if g.NumEdges() == 0 {
		rep.Status = StateOptimal
		rep.Cover = bcgraph.Cover{}
		rep.WallTime = time.Since(started)
		log.Info("run finished", zap.String("state", string(StateOptimal)),
			zap.Float64("objective", 0))

		return rep
	}

	k := pair.Upper
	if cfg.MaxCandidates > 0 && k > cfg.MaxCandidates {
		k = cfg.MaxCandidates
	}

	s := d.NewSolver()
	m, err := formulation.Build(g, s, formulation.Options{
		Kind:         kind,
		Candidates:   k,
		OmitValidity: cfg.UseCallback,
	})
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrConfig, err))
	}
	log.Info("model built", zap.String("state", string(StateBuilt)),
		zap.Int("candidates", k), zap.Int("variables", m.NumVars()))

	if cfg.EdgeFix {
		m.FixEdges(bounds.IndependentEdgeSet(g))
	}
	if cfg.ConflictInequalities {
		m.ConflictRows(bounds.ConflictingPairs(g))
	}
	if cfg.CommonNeighborInequalities {
		if err = m.CommonNeighborRows(); err != nil {
			log.Warn("common-neighbor rows skipped", zap.Error(err))
		}
	}
	if cfg.UseCallback {
		m.EnableSeparation()
	}
	if cfg.WarmStart && !cfg.EdgeFix && len(cover) <= k {
		if err = m.WarmStart(cover); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrConfig, err))
		}
		log.Info("incumbent injected", zap.String("state", string(StateWarmStarted)),
			zap.Int("cover", len(cover)))
	}

	log.Info("solving", zap.String("state", string(StateSolving)),
		zap.Float64("time_limit_sec", cfg.TimeLimit))
	res, err := s.Optimize(ctx, cfg.timeLimit())
	rep.WallTime = time.Since(started)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrSolver, err))
	}

	switch res.Status {
	case mip.StatusOptimal:
		rep.Status = StateOptimal
		rep.Objective = res.Objective
		rep.Cover = m.ExtractCover(res.Values)
	case mip.StatusSubOptimal:
		if res.HasValues {
			rep.Status = StateTimedOutFeasible
			rep.Objective = res.Objective
			rep.Gap = res.Gap
			rep.Cover = m.ExtractCover(res.Values)
		} else {
			rep.Status = StateTimedOutNoIncumbent
			rep.Gap = res.Gap
		}
	case mip.StatusInfeasible:
		rep.Status = StateInfeasible
		rep.Err = ErrInfeasible
	default:
		return fail(fmt.Errorf("%w: unexpected status %q", ErrSolver, res.Status))
	}
	log.Info("run finished", zap.String("state", string(rep.Status)),
		zap.Float64("objective", rep.Objective),
		zap.Duration("wall_time", rep.WallTime))

	return rep
}
