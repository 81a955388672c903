// Package engine - the facade tying snapshots, policy and the search core
// together for one request at a time.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/admix/coords"
	"github.com/katalvlaran/admix/differential"
	"github.com/katalvlaran/admix/model"
)

// Sentinel errors returned by the engine facade.
var (
	// ErrUnknownSample indicates a saved-sample name absent from the
	// samples snapshot.
	ErrUnknownSample = errors.New("engine: unknown sample name")

	// ErrUnknownPopulation indicates a population name absent from the
	// reference snapshot.
	ErrUnknownPopulation = errors.New("engine: unknown population name")

	// ErrBadTargetKind indicates a TargetSpec with an undefined Kind.
	ErrBadTargetKind = errors.New("engine: invalid target kind")

	// ErrNoReferences indicates that nearest-K auto-selection was requested
	// against an empty reference snapshot.
	ErrNoReferences = errors.New("engine: reference table is empty")
)

// Request describes one modeling request.
//
// Pool policy: when Populations or Samples name anything, the pool is built
// explicitly from those names (populations first, then samples, first
// occurrence of a name winning); otherwise the NearestK closest reference
// populations to the resolved target are auto-selected.
//
// Orders defaults to the full 2..Config.MaxOrder range when empty.
type Request struct {
	Target      TargetSpec // what to model
	Populations []string   // explicit reference-population sources
	Samples     []string   // explicit saved-sample sources
	NearestK    int        // auto-selection pool size; 0 ⇒ Config.NearestK
	Orders      []int      // model orders; empty ⇒ 2..Config.MaxOrder
}

// Neighbor is one entry of a closest-populations leaderboard.
type Neighbor struct {
	Name     string
	Distance float64
}

// Engine owns the table snapshots and configuration. All methods are safe
// for concurrent use: snapshots are replaced atomically and every request
// works on the snapshot it loaded first.
type Engine struct {
	cfg     Config
	log     *zap.Logger
	refs    atomic.Pointer[Table]
	samples atomic.Pointer[Table]
}

// New validates cfg and returns an Engine with empty snapshots. A nil
// logger disables logging.
func New(cfg Config, logger *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{cfg: cfg, log: logger}
	e.refs.Store(NewTable(nil))
	e.samples.Store(NewTable(nil))

	return e, nil
}

// SwapReferences atomically replaces the reference-population snapshot.
// A nil table installs an empty snapshot. In-flight requests keep the
// snapshot they already loaded.
func (e *Engine) SwapReferences(t *Table) {
	if t == nil {
		t = NewTable(nil)
	}
	e.refs.Store(t)
	TableSwapsTotal.WithLabelValues("references").Inc()
	e.log.Info("reference table swapped", zap.Int("size", t.Len()))
}

// SwapSamples atomically replaces the saved-samples snapshot.
func (e *Engine) SwapSamples(t *Table) {
	if t == nil {
		t = NewTable(nil)
	}
	e.samples.Store(t)
	TableSwapsTotal.WithLabelValues("samples").Inc()
	e.log.Info("sample table swapped", zap.Int("size", t.Len()))
}

// Model resolves the request target, assembles the candidate pool per the
// request's policy, and runs the combinatorial model search.
//
// Structural failures (unknown names, pool too small, bad orders) error out
// before any solving; numeric degeneracies surface inside the Report.
func (e *Engine) Model(ctx context.Context, req Request) (model.Report, error) {
	start := time.Now()

	report, err := e.model(ctx, req)
	if err != nil {
		SearchesTotal.WithLabelValues("error").Inc()
		e.log.Warn("model search failed",
			zap.String("target", req.Target.label()),
			zap.Error(err),
		)

		return model.Report{}, err
	}

	elapsed := time.Since(start)
	SearchesTotal.WithLabelValues("ok").Inc()
	SolverInvocationsTotal.Add(float64(report.Solves))
	SearchDurationSeconds.Observe(elapsed.Seconds())
	for _, best := range report.Bests {
		if best.Degenerate {
			DegenerateFitsTotal.Inc()
		}
	}
	e.log.Info("model search finished",
		zap.String("target", req.Target.label()),
		zap.Int("orders", len(report.Bests)),
		zap.Int("solves", report.Solves),
		zap.Duration("elapsed", elapsed),
	)

	return report, nil
}

// model is the uninstrumented body of Model.
func (e *Engine) model(ctx context.Context, req Request) (model.Report, error) {
	target, err := e.resolve(req.Target)
	if err != nil {
		return model.Report{}, err
	}

	pool, err := e.buildPool(req, target)
	if err != nil {
		return model.Report{}, err
	}

	orders := req.Orders
	if len(orders) == 0 {
		for k := model.MinOrder; k <= e.cfg.MaxOrder; k++ {
			orders = append(orders, k)
		}
	}

	return model.Search(ctx, target, pool, model.Options{
		Orders:  orders,
		Workers: e.cfg.Workers,
		RCond:   e.cfg.RCond,
	})
}

// buildPool applies the request's pool policy against the current snapshots.
func (e *Engine) buildPool(req Request, target coords.Vector) (*model.Pool, error) {
	// Explicit pool: named populations and samples, in listed order.
	if len(req.Populations)+len(req.Samples) > 0 {
		var (
			refs    = e.refs.Load()
			samples = e.samples.Load()
			points  = make([]coords.NamedPoint, 0, len(req.Populations)+len(req.Samples))
		)
		for _, name := range req.Populations {
			pt, ok := refs.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("population %q: %w", name, ErrUnknownPopulation)
			}
			points = append(points, pt)
		}
		for _, name := range req.Samples {
			pt, ok := samples.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("sample %q: %w", name, ErrUnknownSample)
			}
			points = append(points, pt)
		}

		return model.NewPool(points), nil
	}

	// Auto-selection: nearest-K pre-filter over the reference universe.
	refs := e.refs.Load()
	if refs.Len() == 0 {
		return nil, ErrNoReferences
	}
	k := req.NearestK
	if k <= 0 {
		k = e.cfg.NearestK
	}

	return model.NearestK(target, refs.Points(), k), nil
}

// Closest returns the n reference populations nearest to the resolved
// target, ascending by distance with ties kept in table order. n <= 0
// returns the whole leaderboard. This is the direct-distance path serving
// "distance" and "leaderboard" style lookups; it never invokes the solver.
//
// Complexity: O(u·Dim + u log u) over universe size u.
func (e *Engine) Closest(spec TargetSpec, n int) ([]Neighbor, error) {
	target, err := e.resolve(spec)
	if err != nil {
		return nil, err
	}

	points := e.refs.Load().Points()
	out := make([]Neighbor, len(points))
	for i, pt := range points {
		out[i] = Neighbor{Name: pt.Name, Distance: coords.Distance(target, pt.Vec)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })

	if n > 0 && n < len(out) {
		out = out[:n]
	}

	return out, nil
}

// Distance resolves both specs and returns the Euclidean distance between
// them.
func (e *Engine) Distance(a, b TargetSpec) (float64, error) {
	va, err := e.resolve(a)
	if err != nil {
		return 0, err
	}
	vb, err := e.resolve(b)
	if err != nil {
		return 0, err
	}

	return coords.Distance(va, vb), nil
}

// Differential resolves both targets and ranks the reference universe by
// which side each population is relatively closer to. topN <= 0 falls back
// to Config.TopN.
func (e *Engine) Differential(a, b TargetSpec, topN int) (differential.Result, error) {
	va, err := e.resolve(a)
	if err != nil {
		return differential.Result{}, err
	}
	vb, err := e.resolve(b)
	if err != nil {
		return differential.Result{}, err
	}
	if topN <= 0 {
		topN = e.cfg.TopN
	}

	return differential.Rank(va, vb, e.refs.Load().Points(), differential.Options{TopN: topN}), nil
}
