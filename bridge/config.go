package bridge

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/glasseam/grid"
)

// filePoint is the YAML shape of a grid coordinate.
type filePoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// fileParams mirrors the pipeline parameter table. Pointer fields
// distinguish "absent, keep the default" from an explicit zero.
type fileParams struct {
	MinAreaRatio      *float64 `yaml:"min_area_ratio"`
	CoverageThreshold *float64 `yaml:"coverage_threshold"`

	UsePGD           *bool    `yaml:"use_pgd"`
	NSkew            *int     `yaml:"n_skew"`
	MaxPGDIterations *int     `yaml:"max_pgd_iterations"`
	UseFRR           *bool    `yaml:"use_frr"`
	ConeHalfAngle    *float64 `yaml:"cone_half_angle"`
	FRRBins          *int     `yaml:"frr_bins"`
	FRRDepth         *int     `yaml:"frr_depth"`
	MaxEdgeDistance  *float64 `yaml:"max_edge_distance"`
	Workers          *int     `yaml:"workers"`

	UseDelaunay     *bool    `yaml:"use_delaunay"`
	AngularSectors  *int     `yaml:"angular_sectors"`
	OcclusionFactor *float64 `yaml:"occlusion_factor"`

	UseExact       *bool `yaml:"use_exact"`
	ExactThreshold *int  `yaml:"exact_threshold"`

	RequiredPoints []filePoint `yaml:"required_points"`
	Spawn          *filePoint  `yaml:"spawn"`

	WidenRadius *int `yaml:"widen_radius"`
}

// LoadOptions parses a YAML parameter document into pipeline options.
// Absent keys keep their defaults; unknown keys are rejected. Value range
// validation happens when Bridge resolves the returned options, exactly as
// for options built in code.
func LoadOptions(r io.Reader) ([]Option, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p fileParams
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("bridge: parse config: %w", err)
	}

	var opts []Option
	if p.MinAreaRatio != nil {
		opts = append(opts, WithMinAreaRatio(*p.MinAreaRatio))
	}
	if p.CoverageThreshold != nil {
		opts = append(opts, WithCoverageThreshold(*p.CoverageThreshold))
	}
	if p.UsePGD != nil {
		opts = append(opts, WithPGD(*p.UsePGD))
	}
	if p.NSkew != nil {
		opts = append(opts, WithNSkew(*p.NSkew))
	}
	if p.MaxPGDIterations != nil {
		opts = append(opts, WithMaxPGDIterations(*p.MaxPGDIterations))
	}
	if p.UseFRR != nil {
		opts = append(opts, WithFRR(*p.UseFRR))
	}
	if p.ConeHalfAngle != nil {
		opts = append(opts, WithConeHalfAngle(*p.ConeHalfAngle))
	}
	if p.FRRBins != nil {
		opts = append(opts, WithFRRBins(*p.FRRBins))
	}
	if p.FRRDepth != nil {
		opts = append(opts, WithFRRDepth(*p.FRRDepth))
	}
	if p.MaxEdgeDistance != nil {
		opts = append(opts, WithMaxEdgeDistance(*p.MaxEdgeDistance))
	}
	if p.Workers != nil {
		opts = append(opts, WithWorkers(*p.Workers))
	}
	if p.UseDelaunay != nil {
		opts = append(opts, WithDelaunay(*p.UseDelaunay))
	}
	if p.AngularSectors != nil {
		opts = append(opts, WithAngularSectors(*p.AngularSectors))
	}
	if p.OcclusionFactor != nil {
		opts = append(opts, WithOcclusionFactor(*p.OcclusionFactor))
	}
	if p.UseExact != nil {
		opts = append(opts, WithExact(*p.UseExact))
	}
	if p.ExactThreshold != nil {
		opts = append(opts, WithExactThreshold(*p.ExactThreshold))
	}
	if len(p.RequiredPoints) > 0 {
		pts := make([]grid.Point, len(p.RequiredPoints))
		for i, fp := range p.RequiredPoints {
			pts[i] = grid.Pt(fp.X, fp.Y)
		}
		opts = append(opts, WithRequiredPoints(pts...))
	}
	if p.Spawn != nil {
		opts = append(opts, WithSpawn(grid.Pt(p.Spawn.X, p.Spawn.Y)))
	}
	if p.WidenRadius != nil {
		opts = append(opts, WithWidenRadius(*p.WidenRadius))
	}

	return opts, nil
}
