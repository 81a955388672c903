// Package model - the combinatorial search and per-order reduction.
//
// Design principles:
//   - Fail fast: all request validation happens before the first solve.
//   - Determinism: winners are folded as (residual, enumeration rank) pairs;
//     the fold is associative and commutative, so the parallel schedule can
//     never change the result.
//   - Degrade, don't abort: a degenerate fit is a candidate like any other.
//     The solver itself cannot fail once inputs are validated.
package model

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/admix/coords"
	"github.com/katalvlaran/admix/mixture"
)

// Search computes, for every requested model order k, the k-subset of pool
// whose solved mixture minimizes the residual distance to target, and
// assembles the per-order winners into a Report (ascending by order).
//
// Contract:
//   - pool must be non-nil and at least as large as the largest requested
//     order (ErrPoolTooSmall otherwise - checked before any solving).
//   - opts.Orders must be non-empty with every order >= MinOrder.
//   - Exact residual ties are broken by lexicographic combination order over
//     pool indices: the earlier combination wins, reproducibly.
//   - Cancellation: ctx aborts the search between solves; the ctx error is
//     returned and no partial Report is produced.
//
// Complexity: Σₖ C(n,k) solver invocations over pool size n, spread across
// opts.Workers goroutines; O(n + workers·k) memory.
func Search(ctx context.Context, target coords.Vector, pool *Pool, opts Options) (Report, error) {
	// Stage 1: request validation (no solving past this block on error).
	if pool == nil {
		return Report{}, ErrNilPool
	}
	orders, err := canonicalOrders(opts.Orders)
	if err != nil {
		return Report{}, err
	}
	maxOrder := orders[len(orders)-1]
	if pool.Len() < maxOrder {
		return Report{}, fmt.Errorf("pool of %d cannot form %d-way models: %w",
			pool.Len(), maxOrder, ErrPoolTooSmall)
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	solverOpts := mixture.Options{RCond: opts.RCond}

	// Stage 2: search each order independently, ascending.
	report := Report{Bests: make([]Best, 0, len(orders))}
	var (
		best   Best
		solves int
	)
	for _, k := range orders {
		best, solves, err = searchOrder(ctx, target, pool, k, workers, solverOpts)
		if err != nil {
			return Report{}, err
		}
		report.Bests = append(report.Bests, best)
		report.Solves += solves
	}

	return report, nil
}

// canonicalOrders validates and canonicalizes the requested order set:
// sorted ascending, deduplicated, every order >= MinOrder.
//
// Complexity: O(m log m) for m requested orders.
func canonicalOrders(orders []int) ([]int, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	out := make([]int, len(orders))
	copy(out, orders)
	sort.Ints(out)

	var (
		kept = out[:0] // dedupe in place over the copy
		prev = 0       // previous accepted order (orders are >= 2)
	)
	for _, k := range out {
		if k < MinOrder {
			return nil, fmt.Errorf("order %d: %w", k, ErrBadOrder)
		}
		if k == prev {
			continue
		}
		kept = append(kept, k)
		prev = k
	}

	return kept, nil
}

// job is one combination handed from the enumerator to a solver worker.
// seq is the combination's rank in lexicographic enumeration order; it is
// the deterministic tie-break key.
type job struct {
	seq int
	idx []int // ascending pool indices, owned by the job
}

// orderBest is a worker-local fold state: the minimal (residual, seq) pair
// seen so far plus the number of solves performed.
type orderBest struct {
	seq    int            // enumeration rank of the best combination
	idx    []int          // pool indices of the best combination
	res    mixture.Result // its solved fit
	solves int            // combinations solved by this worker
	found  bool           // whether any combination was folded yet
}

// better reports whether (residual, seq) of candidate beats the current
// fold state. The comparison is a strict total order over candidates, which
// makes the reduction associative and commutative.
func (b *orderBest) better(residual float64, seq int) bool {
	if !b.found {
		return true
	}
	if residual != b.res.Residual {
		return residual < b.res.Residual
	}

	return seq < b.seq
}

// searchOrder runs the full C(n,k) enumeration for a single order: one
// producer goroutine streams combinations into a channel, `workers` solver
// goroutines fold their local minima, and a final deterministic merge picks
// the global winner.
func searchOrder(ctx context.Context, target coords.Vector, pool *Pool, k, workers int, solverOpts mixture.Options) (Best, int, error) {
	var (
		jobs   = make(chan job, workers*2)
		locals = make([]orderBest, workers)
	)
	g, gctx := errgroup.WithContext(ctx)

	// Producer: lazy lexicographic enumeration, cancelled cooperatively.
	g.Go(func() error {
		defer close(jobs)

		var (
			gen = newCombGen(pool.Len(), k)
			seq = 0
			cp  []int
		)
		for idx, ok := gen.next(); ok; idx, ok = gen.next() {
			cp = make([]int, k)
			copy(cp, idx) // the generator reuses its buffer
			select {
			case jobs <- job{seq: seq, idx: cp}:
			case <-gctx.Done():
				return gctx.Err()
			}
			seq++
		}

		return nil
	})

	// Workers: independent solves, worker-local folds, no synchronization.
	for w := 0; w < workers; w++ {
		local := &locals[w]
		g.Go(func() error {
			sources := make([]coords.Vector, k) // per-worker scratch
			for jb := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				for i, pi := range jb.idx {
					sources[i] = pool.At(pi).Vec
				}
				res, err := mixture.Solve(target, sources, solverOpts)
				if err != nil {
					// Unreachable after validation (k >= MinOrder), but a
					// solver error must still stop the search, not vanish.
					return err
				}
				local.solves++
				if local.better(res.Residual, jb.seq) {
					local.seq = jb.seq
					local.idx = jb.idx
					local.res = res
					local.found = true
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Best{}, 0, err
	}

	// Merge: same fold over the worker-local minima, in any order.
	var (
		winner orderBest
		solves int
	)
	for w := range locals {
		solves += locals[w].solves
		if !locals[w].found {
			continue
		}
		if winner.better(locals[w].res.Residual, locals[w].seq) {
			winner = locals[w]
			winner.found = true
		}
	}

	// Assemble the Best for this order. Validation guarantees at least one
	// combination exists, so winner.found always holds here.
	names := make([]string, k)
	for i, pi := range winner.idx {
		names[i] = pool.At(pi).Name
	}

	return Best{
		Order:       k,
		Names:       names,
		Proportions: winner.res.Proportions,
		Residual:    winner.res.Residual,
		Degenerate:  winner.res.Degenerate,
	}, solves, nil
}
