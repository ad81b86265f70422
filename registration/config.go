package registration

import "github.com/pkg/errors"

// Algorithm selects which scan-registration family a Config drives (spec
// §4.2, §6).
type Algorithm int

const (
	// GICP is Generalized ICP: point-to-point iterative closest point with
	// per-correspondence weighting.
	GICP Algorithm = iota
	// NDT is the Normal Distributions Transform: voxelized probability-
	// density alignment. This module approximates NDT's voxel-grid
	// conditioning with a pre-alignment downsample at cfg.Resolution
	// (Align substitutes cfg.Resolution for cfg.PointCloudDensity when
	// Algorithm is NDT), followed by the same point-to-point solver GICP
	// uses — see DESIGN.md for why no native PCL-style NDT implementation
	// is wired.
	NDT
)

func (a Algorithm) String() string {
	switch a {
	case GICP:
		return "gicp"
	case NDT:
		return "ndt"
	default:
		return "unknown"
	}
}

// Config holds one alignment pass's parameters, reproducing spec §6's
// per-sensor configuration table. A Registrar (below) holds two Configs —
// one coarse, one fine — matching spec §4.2's two-pass alignment.
type Config struct {
	// PointCloudDensity is the voxel leaf size applied to both clouds
	// before alignment; 0 disables preprocessing.
	PointCloudDensity float64

	// MaxCorrespondenceDistance ignores correspondences farther than this.
	MaxCorrespondenceDistance float64
	// MaximumIterations bounds the outer registration loop.
	MaximumIterations int
	// MaxFitnessScore is the acceptance threshold; higher is more permissive.
	MaxFitnessScore float64
	// TransformationEpsilon is the convergence criterion on transform delta.
	TransformationEpsilon float64
	// EuclideanFitnessEpsilon is the convergence criterion on residual.
	EuclideanFitnessEpsilon float64

	// CorrespondenceRandomness is GICP's neighbors-per-correspondence count.
	CorrespondenceRandomness int
	// MaximumOptimizerIterations is GICP's inner optimizer iteration bound.
	MaximumOptimizerIterations int
	// RotationEpsilon is GICP's convergence criterion on rotation.
	RotationEpsilon float64

	// OutlierRatio is NDT's expected fraction of unmatched points.
	OutlierRatio float64
	// StepSize is NDT's Newton line-search step size.
	StepSize float64
	// Resolution is NDT's voxel grid resolution.
	Resolution float64

	Algorithm Algorithm

	// CovarianceScale scales the identity covariance placed on accepted edges.
	CovarianceScale float64
}

// Validate performs the sanity checks a malformed Config would otherwise
// fail on silently mid-alignment (in the teacher's style of small
// constructor-time checks, e.g. spatialmath.NewBox's dimension checks).
func (c Config) Validate() error {
	if c.MaxCorrespondenceDistance <= 0 {
		return errors.New("registration: max correspondence distance must be positive")
	}
	if c.MaximumIterations <= 0 {
		return errors.New("registration: maximum iterations must be positive")
	}
	if c.MaxFitnessScore <= 0 {
		return errors.New("registration: max fitness score must be positive")
	}
	if c.CovarianceScale <= 0 {
		return errors.New("registration: covariance scale must be positive")
	}
	return nil
}

// DefaultGICPConfig returns a reasonable GICP parameter set for callers that
// do not need to tune every field.
func DefaultGICPConfig() Config {
	return Config{
		MaxCorrespondenceDistance:  0.5,
		MaximumIterations:          50,
		MaxFitnessScore:            0.05,
		TransformationEpsilon:      1e-6,
		EuclideanFitnessEpsilon:    1e-6,
		CorrespondenceRandomness:   20,
		MaximumOptimizerIterations: 20,
		RotationEpsilon:            2e-3,
		Algorithm:                  GICP,
		CovarianceScale:            1e-4,
	}
}

// DefaultNDTConfig returns a reasonable NDT parameter set.
func DefaultNDTConfig() Config {
	return Config{
		MaxCorrespondenceDistance: 1.0,
		MaximumIterations:         35,
		MaxFitnessScore:           0.1,
		TransformationEpsilon:     1e-6,
		EuclideanFitnessEpsilon:   1e-6,
		OutlierRatio:              0.55,
		StepSize:                  0.1,
		Resolution:                1.0,
		Algorithm:                 NDT,
		CovarianceScale:           1e-4,
	}
}
