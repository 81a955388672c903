package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/admix/engine"
)

// TestDefaultConfig_Valid verifies the canonical defaults pass validation.
func TestDefaultConfig_Valid(t *testing.T) {
	cfg := engine.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 25, cfg.NearestK)
	assert.Equal(t, 6, cfg.MaxOrder)
	assert.Equal(t, 15, cfg.TopN)
}

// TestConfig_ValidateSentinels checks each violation maps to its sentinel.
func TestConfig_ValidateSentinels(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.MaxOrder = 1
	assert.ErrorIs(t, cfg.Validate(), engine.ErrInvalidMaxOrder)

	cfg = engine.DefaultConfig()
	cfg.MaxOrder = 7
	assert.ErrorIs(t, cfg.Validate(), engine.ErrInvalidMaxOrder)

	cfg = engine.DefaultConfig()
	cfg.NearestK = 3 // below MaxOrder: auto pools could never form 6-way models
	assert.ErrorIs(t, cfg.Validate(), engine.ErrInvalidNearestK)

	cfg = engine.DefaultConfig()
	cfg.Workers = -1
	assert.ErrorIs(t, cfg.Validate(), engine.ErrInvalidWorkers)

	cfg = engine.DefaultConfig()
	cfg.TopN = 0
	assert.ErrorIs(t, cfg.Validate(), engine.ErrInvalidTopN)
}

// TestFromEnv_Defaults verifies that an empty environment yields the
// canonical defaults.
func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := engine.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfig(), cfg)
}

// TestFromEnv_Overrides verifies ADMIX_* variables are honored.
func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ADMIX_NEAREST_K", "12")
	t.Setenv("ADMIX_MAX_ORDER", "4")
	t.Setenv("ADMIX_WORKERS", "2")
	t.Setenv("ADMIX_TOP_N", "10")

	cfg, err := engine.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.NearestK)
	assert.Equal(t, 4, cfg.MaxOrder)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 10, cfg.TopN)
}

// TestFromEnv_InvalidCombination verifies that validation runs on env input.
func TestFromEnv_InvalidCombination(t *testing.T) {
	t.Setenv("ADMIX_NEAREST_K", "3") // below the default max order of 6

	_, err := engine.FromEnv()
	assert.ErrorIs(t, err, engine.ErrInvalidNearestK)
}
