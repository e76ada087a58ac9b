package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/axisroll/internal/config"
	"github.com/banshee-data/axisroll/internal/monitoring"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	m.Run()
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestRun_SmallScenario(t *testing.T) {
	cfg := &config.RunConfig{
		Extents:     []int{2, 3, 1},
		Shifts:      []int{1},
		PreviewRows: intPtr(0),
	}

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf, cfg))

	want := "[[['000']\n  ['010']\n  ['020']]\n\n [['100']\n  ['110']\n  ['120']]]\n" +
		strings.Repeat("=", 60) + "\n" +
		"[[['020']\n  ['000']\n  ['010']]\n\n [['120']\n  ['100']\n  ['110']]]\n"
	assert.Equal(t, want, buf.String())
}

func TestRun_ReferenceSequentialMatchesParallel(t *testing.T) {
	var seq, par bytes.Buffer
	require.NoError(t, run(context.Background(), &seq, &config.RunConfig{}))
	require.NoError(t, run(context.Background(), &par, &config.RunConfig{
		Parallel: boolPtr(true),
		Workers:  intPtr(3),
	}))
	assert.Equal(t, seq.String(), par.String())

	assert.Equal(t, 1, strings.Count(seq.String(), strings.Repeat("=", 60)))
	assert.Contains(t, seq.String(), "['000' '001' '072' '073' '074' '005' '016' '017' '018']")
}

func TestRun_ShapeMismatch(t *testing.T) {
	cfg := &config.RunConfig{
		Extents: []int{2, 3, 2},
		Shifts:  []int{1},
	}

	var buf bytes.Buffer
	err := run(context.Background(), &buf, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Empty(t, buf.String())
}

func TestApplyFlags(t *testing.T) {
	origWorkers, origParallel, origLattice, origPreview := *workers, *parallel, *lattice, *previewRows
	t.Cleanup(func() {
		*workers, *parallel, *lattice, *previewRows = origWorkers, origParallel, origLattice, origPreview
	})

	t.Run("workers applies without parallel flag", func(t *testing.T) {
		*workers = 5
		cfg := &config.RunConfig{Parallel: boolPtr(true)}

		applyFlags(cfg, map[string]bool{"workers": true})
		assert.True(t, cfg.GetParallel())
		assert.Equal(t, 5, cfg.GetWorkers())
	})

	t.Run("unset flags keep config values", func(t *testing.T) {
		*workers, *parallel, *previewRows = 9, false, 1
		cfg := &config.RunConfig{Parallel: boolPtr(true), Workers: intPtr(2), PreviewRows: intPtr(4)}

		applyFlags(cfg, map[string]bool{})
		assert.True(t, cfg.GetParallel())
		assert.Equal(t, 2, cfg.GetWorkers())
		assert.Equal(t, 4, cfg.GetPreviewRows())
	})

	t.Run("set flags override config", func(t *testing.T) {
		*parallel, *lattice, *previewRows = false, true, 0
		cfg := &config.RunConfig{Parallel: boolPtr(true), PreviewRows: intPtr(4)}

		applyFlags(cfg, map[string]bool{"parallel": true, "lattice": true, "preview": true})
		assert.False(t, cfg.GetParallel())
		assert.True(t, cfg.GetLattice())
		assert.Equal(t, 0, cfg.GetPreviewRows())
	})
}

func TestRun_LatticeSequentialMatchesParallel(t *testing.T) {
	var seq, par bytes.Buffer
	require.NoError(t, run(context.Background(), &seq, &config.RunConfig{
		Lattice:     boolPtr(true),
		PreviewRows: intPtr(0),
	}))
	require.NoError(t, run(context.Background(), &par, &config.RunConfig{
		Lattice:     boolPtr(true),
		PreviewRows: intPtr(0),
		Parallel:    boolPtr(true),
		Workers:     intPtr(2),
	}))
	assert.Equal(t, seq.String(), par.String())

	// Row 0 after the roll: each population k comes from row -ys[k] mod 7
	// and column -xs[k] mod 8.
	assert.Contains(t, seq.String(), "['000' '601' '672' '073' '174' '105' '116' '017' '618']")
}
