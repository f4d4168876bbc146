package bridge

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/glasseam/carve"
	"github.com/katalvlaran/glasseam/edgecost"
	"github.com/katalvlaran/glasseam/grid"
	"github.com/katalvlaran/glasseam/optimize"
	"github.com/katalvlaran/glasseam/prune"
	"github.com/katalvlaran/glasseam/region"
)

// Bridge runs one full bridging pass over g: extract regions, estimate and
// prune candidate tunnels, select the coverage tree, carve it.
//
// Returns:
//   - (Result, nil) on full success;
//   - (Result, wrapped ErrCoverageUnmet) when the threshold is unreachable —
//     the best-effort tree is carved and reported;
//   - (Result{}, err) for every other failure, with g unmodified.
//
// Side effects: stage 5 mutates g in place; all earlier stages only read it.
func Bridge(g grid.MutableGrid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 1) Region extraction.
	lab, regions, err := region.Extract(g, region.WithMinAreaRatio(cfg.MinAreaRatio))
	if err != nil {
		return Result{}, fmt.Errorf("bridge: %w", err)
	}
	if len(regions) == 0 {
		return Result{}, ErrNoRegions
	}
	if cfg.OnRegions != nil {
		cfg.OnRegions(regions)
	}

	terminals, err := resolveTerminals(g, lab, regions, cfg)
	if err != nil {
		return Result{}, err
	}

	// A lone terminal that already satisfies the threshold needs no tunnels;
	// stages 2–4 are skipped entirely.
	if len(terminals) == 1 && regions[terminals[0]].Weight >= cfg.CoverageThreshold {
		return Result{
			Coverage:     regions[terminals[0]].Weight,
			ThresholdMet: true,
			Regions:      len(regions),
		}, nil
	}

	// 2) Candidate edge estimation.
	candidates, err := edgecost.Estimate(g, lab, regions,
		edgecost.WithPGD(cfg.UsePGD),
		edgecost.WithNSkew(cfg.NSkew),
		edgecost.WithMaxPGDIterations(cfg.MaxPGDIterations),
		edgecost.WithFRR(cfg.UseFRR),
		edgecost.WithConeHalfAngle(cfg.ConeHalfAngle),
		edgecost.WithFRRBins(cfg.FRRBins),
		edgecost.WithFRRDepth(cfg.FRRDepth),
		edgecost.WithMaxEdgeDistance(cfg.MaxEdgeDistance),
		edgecost.WithWorkers(cfg.Workers))
	if err != nil {
		return Result{}, fmt.Errorf("bridge: %w", err)
	}
	if cfg.OnCandidates != nil {
		cfg.OnCandidates(candidates)
	}

	// 3) Geometric pruning.
	pruned, err := prune.Prune(regions, candidates,
		prune.WithDelaunay(cfg.UseDelaunay),
		prune.WithAngularSectors(cfg.AngularSectors),
		prune.WithOcclusionFactor(cfg.OcclusionFactor))
	if err != nil {
		return Result{}, fmt.Errorf("bridge: %w", err)
	}
	if cfg.OnPruned != nil {
		cfg.OnPruned(pruned)
	}

	// 4) Tree selection.
	sel, err := optimize.Optimize(regions, pruned,
		optimize.WithTerminals(terminals...),
		optimize.WithCoverageThreshold(cfg.CoverageThreshold),
		optimize.WithExact(cfg.UseExact),
		optimize.WithExactThreshold(cfg.ExactThreshold))
	if err != nil && !errors.Is(err, optimize.ErrCoverageUnmet) {
		return Result{}, fmt.Errorf("bridge: %w", err)
	}
	if cfg.OnSelection != nil {
		cfg.OnSelection(sel)
	}

	// 5) Carving. On unmet coverage the best-effort tree is still applied.
	paths := carve.Carve(g, sel.Edges, cfg.WidenRadius)
	segments := make([]Segment, len(sel.Edges))
	for i, e := range sel.Edges {
		segments[i] = Segment{
			FromRegion: e.A,
			ToRegion:   e.B,
			FromPoint:  e.PointA,
			ToPoint:    e.PointB,
			Cost:       e.Cost,
			Cells:      paths[i],
		}
	}

	res := Result{
		Segments:     segments,
		Coverage:     sel.Coverage,
		ThresholdMet: sel.ThresholdMet,
		Regions:      len(regions),
	}
	if err != nil {
		return res, fmt.Errorf("bridge: %w", err)
	}

	return res, nil
}

// resolveTerminals maps the required points and spawn to distinct region
// indices, in first-appearance order. With no points configured the
// heaviest region (lowest index on ties) is the default terminal.
func resolveTerminals(g grid.Grid, lab *region.Labeling, regions []region.Region, cfg Options) ([]int, error) {
	pts := append([]grid.Point(nil), cfg.RequiredPoints...)
	if cfg.Spawn != nil {
		pts = append(pts, *cfg.Spawn)
	}
	if len(pts) == 0 {
		return []int{heaviestRegion(regions)}, nil
	}

	var terminals []int
	for _, p := range pts {
		if !g.IsPassable(p.X, p.Y) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrRequiredPointBlocked, p.X, p.Y)
		}
		id := lab.At(p.X, p.Y)
		if id == region.NoRegion {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrRequiredRegionDropped, p.X, p.Y)
		}
		seen := false
		for _, t := range terminals {
			if t == id {
				seen = true
				break
			}
		}
		if !seen {
			terminals = append(terminals, id)
		}
	}

	return terminals, nil
}

// heaviestRegion returns the index of the region with the largest weight;
// ties go to the lower index.
func heaviestRegion(regions []region.Region) int {
	best := 0
	for i := 1; i < len(regions); i++ {
		if regions[i].Weight > regions[best].Weight {
			best = i
		}
	}

	return best
}
