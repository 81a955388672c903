package engine_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/admix/coords"
	"github.com/katalvlaran/admix/engine"
	"github.com/katalvlaran/admix/model"
)

// newEngine builds an engine with a small reference universe on the first
// coordinate axes and one saved sample.
func newEngine(t *testing.T) *engine.Engine {
	t.Helper()

	eng, err := engine.New(engine.DefaultConfig(), nil)
	require.NoError(t, err)

	eng.SwapReferences(engine.NewTable([]coords.NamedPoint{
		np(t, "Steppe", 1),
		np(t, "Farmer", 0, 1),
		np(t, "Forager", 0, 0, 1),
		np(t, "Levant", 0, 0, 0, 1),
	}))
	eng.SwapSamples(engine.NewTable([]coords.NamedPoint{
		np(t, "me", 0.5, 0.5),
	}))

	return eng
}

// TestNew_RejectsBadConfig verifies config validation at construction.
func TestNew_RejectsBadConfig(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.TopN = -1

	_, err := engine.New(cfg, nil)
	assert.ErrorIs(t, err, engine.ErrInvalidTopN)
}

// TestModel_ExplicitPool runs the everyday request: model a saved sample on
// two named reference populations.
func TestModel_ExplicitPool(t *testing.T) {
	eng := newEngine(t)

	report, err := eng.Model(context.Background(), engine.Request{
		Target:      engine.ByName("me"),
		Populations: []string{"Steppe", "Farmer"},
		Orders:      []int{2},
	})
	require.NoError(t, err)
	require.Len(t, report.Bests, 1)

	best := report.Bests[0]
	assert.Equal(t, []string{"Steppe", "Farmer"}, best.Names)
	assert.InDelta(t, 0.5, best.Proportions[0], 1e-9)
	assert.InDelta(t, 0.5, best.Proportions[1], 1e-9)
	assert.InDelta(t, 0.0, best.Residual, 1e-9)
}

// TestModel_SampleAsSource verifies that saved samples can serve as model
// sources alongside populations.
func TestModel_SampleAsSource(t *testing.T) {
	eng := newEngine(t)

	report, err := eng.Model(context.Background(), engine.Request{
		Target:      engine.ByPopulation("Steppe"),
		Populations: []string{"Farmer"},
		Samples:     []string{"me"},
		Orders:      []int{2},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Farmer", "me"}, report.Bests[0].Names)
}

// TestModel_NearestKAutoSelection verifies the Mode B policy: no explicit
// names means the pool is the nearest-K references to the target.
func TestModel_NearestKAutoSelection(t *testing.T) {
	eng := newEngine(t)

	var target coords.Vector
	target[0], target[1] = 0.6, 0.4

	report, err := eng.Model(context.Background(), engine.Request{
		Target:   engine.Inline(target),
		NearestK: 3,
		Orders:   []int{2, 3},
	})
	require.NoError(t, err)
	require.Len(t, report.Bests, 2)

	// The 2-way winner must use the two nearest axes.
	best2, ok := report.Order(2)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"Steppe", "Farmer"}, best2.Names)
}

// TestModel_UnknownNames verifies the structural error paths.
func TestModel_UnknownNames(t *testing.T) {
	eng := newEngine(t)
	ctx := context.Background()

	_, err := eng.Model(ctx, engine.Request{
		Target: engine.ByName("nobody"),
		Orders: []int{2},
	})
	assert.ErrorIs(t, err, engine.ErrUnknownSample)

	_, err = eng.Model(ctx, engine.Request{
		Target:      engine.ByName("me"),
		Populations: []string{"Atlantis"},
		Orders:      []int{2},
	})
	assert.ErrorIs(t, err, engine.ErrUnknownPopulation)

	_, err = eng.Model(ctx, engine.Request{
		Target:  engine.ByName("me"),
		Samples: []string{"ghost"},
		Orders:  []int{2},
	})
	assert.ErrorIs(t, err, engine.ErrUnknownSample)
}

// TestModel_PoolTooSmallPropagates verifies the fail-fast contract through
// the facade: one explicit source cannot form a 2-way model.
func TestModel_PoolTooSmallPropagates(t *testing.T) {
	eng := newEngine(t)

	_, err := eng.Model(context.Background(), engine.Request{
		Target:      engine.ByName("me"),
		Populations: []string{"Steppe"},
		Orders:      []int{2},
	})
	assert.ErrorIs(t, err, model.ErrPoolTooSmall)
}

// TestModel_EmptyReferences verifies nearest-K against an empty snapshot.
func TestModel_EmptyReferences(t *testing.T) {
	eng, err := engine.New(engine.DefaultConfig(), nil)
	require.NoError(t, err)

	_, err = eng.Model(context.Background(), engine.Request{
		Target: engine.Inline(coords.Vector{}),
		Orders: []int{2},
	})
	assert.ErrorIs(t, err, engine.ErrNoReferences)
}

// TestSwap_SnapshotIsolation verifies that swapping in a new reference table
// does not disturb values resolved from the old snapshot.
func TestSwap_SnapshotIsolation(t *testing.T) {
	eng := newEngine(t)

	before, err := eng.Distance(engine.ByPopulation("Steppe"), engine.ByName("me"))
	require.NoError(t, err)

	// Replace the universe wholesale; the old lookup name is gone.
	eng.SwapReferences(engine.NewTable([]coords.NamedPoint{np(t, "Other", 2)}))

	_, err = eng.Distance(engine.ByPopulation("Steppe"), engine.ByName("me"))
	assert.ErrorIs(t, err, engine.ErrUnknownPopulation, "new snapshot in effect")

	// The previously computed value was taken from a consistent snapshot.
	assert.InDelta(t, math.Sqrt(0.25+0.25), before, 1e-12)
}

// TestClosest_Leaderboard verifies the direct-distance leaderboard order and
// truncation.
func TestClosest_Leaderboard(t *testing.T) {
	eng := newEngine(t)

	var target coords.Vector
	target[0] = 0.9 // nearly on the Steppe axis

	all, err := eng.Closest(engine.Inline(target), 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Steppe", all[0].Name)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i].Distance, all[i-1].Distance)
	}

	top2, err := eng.Closest(engine.Inline(target), 2)
	require.NoError(t, err)
	assert.Len(t, top2, 2)
}

// TestDifferential_Facade verifies resolution plus ranking through the
// engine, including the TopN fallback to config.
func TestDifferential_Facade(t *testing.T) {
	eng := newEngine(t)

	res, err := eng.Differential(engine.ByPopulation("Steppe"), engine.ByPopulation("Farmer"), 0)
	require.NoError(t, err)

	// Steppe itself is maximally Steppe-leaning; Farmer mirrors it.
	require.NotEmpty(t, res.CloserToA)
	assert.Equal(t, "Steppe", res.CloserToA[0].Name)
	require.NotEmpty(t, res.CloserToB)
	assert.Equal(t, "Farmer", res.CloserToB[0].Name)

	_, err = eng.Differential(engine.ByPopulation("Steppe"), engine.ByName("ghost"), 0)
	assert.ErrorIs(t, err, engine.ErrUnknownSample)
}

// TestDistance_Facade verifies the two-spec distance helper.
func TestDistance_Facade(t *testing.T) {
	eng := newEngine(t)

	d, err := eng.Distance(engine.ByPopulation("Steppe"), engine.ByPopulation("Farmer"))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, d, 1e-12)
}
