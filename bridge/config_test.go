package bridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glasseam/grid"
)

func resolve(t *testing.T, opts []Option) Options {
	t.Helper()
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func TestLoadOptions_FullDocument(t *testing.T) {
	doc := `
min_area_ratio: 0.1
coverage_threshold: 0.6
use_pgd: false
n_skew: 3
use_frr: true
frr_bins: 16
frr_depth: 2
max_edge_distance: 50
workers: 4
use_delaunay: false
angular_sectors: 8
occlusion_factor: 1.5
use_exact: true
exact_threshold: 12
widen_radius: 1
required_points:
  - {x: 1, y: 2}
  - {x: 7, y: 2}
spawn: {x: 0, y: 0}
`
	opts, err := LoadOptions(strings.NewReader(doc))
	require.NoError(t, err)

	cfg := resolve(t, opts)
	require.NoError(t, cfg.err)
	require.Equal(t, 0.1, cfg.MinAreaRatio)
	require.Equal(t, 0.6, cfg.CoverageThreshold)
	require.False(t, cfg.UsePGD)
	require.Equal(t, 3, cfg.NSkew)
	require.True(t, cfg.UseFRR)
	require.Equal(t, 16, cfg.FRRBins)
	require.Equal(t, 2, cfg.FRRDepth)
	require.Equal(t, 50.0, cfg.MaxEdgeDistance)
	require.Equal(t, 4, cfg.Workers)
	require.False(t, cfg.UseDelaunay)
	require.Equal(t, 8, cfg.AngularSectors)
	require.Equal(t, 1.5, cfg.OcclusionFactor)
	require.True(t, cfg.UseExact)
	require.Equal(t, 12, cfg.ExactThreshold)
	require.Equal(t, 1, cfg.WidenRadius)
	require.Equal(t, []grid.Point{grid.Pt(1, 2), grid.Pt(7, 2)}, cfg.RequiredPoints)
	require.NotNil(t, cfg.Spawn)
	require.Equal(t, grid.Pt(0, 0), *cfg.Spawn)
}

func TestLoadOptions_AbsentKeysKeepDefaults(t *testing.T) {
	opts, err := LoadOptions(strings.NewReader("coverage_threshold: 0.5\n"))
	require.NoError(t, err)

	cfg := resolve(t, opts)
	def := DefaultOptions()
	require.Equal(t, 0.5, cfg.CoverageThreshold)
	require.Equal(t, def.MinAreaRatio, cfg.MinAreaRatio)
	require.Equal(t, def.NSkew, cfg.NSkew)
	require.Equal(t, def.AngularSectors, cfg.AngularSectors)
	require.Nil(t, cfg.Spawn)
}

func TestLoadOptions_UnknownKeyRejected(t *testing.T) {
	_, err := LoadOptions(strings.NewReader("coverge_threshold: 0.5\n"))
	require.Error(t, err)
}

func TestLoadOptions_OutOfRangeSurfacesOnResolve(t *testing.T) {
	opts, err := LoadOptions(strings.NewReader("n_skew: 99\n"))
	require.NoError(t, err, "range checking happens at resolution, not parse")

	cfg := resolve(t, opts)
	require.ErrorIs(t, cfg.err, ErrOptionViolation)
}

func TestLoadOptions_MalformedDocument(t *testing.T) {
	_, err := LoadOptions(strings.NewReader("coverage_threshold: [broken\n"))
	require.Error(t, err)
}
