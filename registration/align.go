// Package registration implements spec component D: point-cloud alignment
// (GICP/NDT) producing an SE(3) constraint with a fitness-based acceptance
// gate.
//
// Correspondence search and the rigid-transform estimate are grounded on
// _examples/other_examples/kwv-tudomesh__icp.go's iterative closest-point
// shape (nearest-neighbor correspondences each iteration, a rigid transform
// fit to the matched pairs, composed onto the running estimate, iterated
// to a convergence threshold). That reference works in 2D with an affine
// solve; here the rigid-transform fit is the 3D analogue (the Kabsch
// algorithm via SVD, gonum.org/v1/gonum/mat), since the pack has no
// off-the-shelf 3D point-set registration routine.
package registration

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/slam3d/internal/kdtree"
	"go.viam.com/slam3d/pointcloud"
	"go.viam.com/slam3d/spatialmath"
)

// minCorrespondencePoints is the Kabsch solve's minimum input size; below
// this the rotation estimate is underdetermined.
const minCorrespondencePoints = 3

// minAlignPoints is spec §4.2's "fewer than 100 points" preprocessing gate.
const minAlignPoints = 100

// alignResult is the outcome of one Align call.
type alignResult struct {
	transform spatialmath.Pose
	fitness   float64
	converged bool
}

// Align runs iterative closest point from guess, aligning source onto
// target, per spec §4.2's `align(src, tgt, guess, cfg)`. It returns
// ErrNoMatch if either cloud (after preprocessing) has fewer than 100
// points, or if the algorithm fails to converge within a fitness acceptable
// under cfg.MaxFitnessScore.
//
// cfg.Algorithm selects which of GICP's or NDT's own parameters condition
// the solve (see Config's field docs); the underlying correspondence-
// search-then-rigid-fit loop is shared, since the pack has no native
// PCL-style GICP/NDT binding (see DESIGN.md).
func Align(source, target pointcloud.PointCloud, guess spatialmath.Pose, cfg Config) (alignResult, error) {
	conditioningResolution := cfg.PointCloudDensity
	if cfg.Algorithm == NDT && cfg.Resolution > 0 {
		conditioningResolution = cfg.Resolution
	}
	if conditioningResolution > 0 {
		source = pointcloud.Downsample(source, conditioningResolution)
		target = pointcloud.Downsample(target, conditioningResolution)
	}

	srcPoints := pointcloud.Points(source)
	tgtPoints := pointcloud.Points(target)
	if len(srcPoints) < minAlignPoints || len(tgtPoints) < minAlignPoints {
		return alignResult{}, noMatch("too few points")
	}

	tree := kdtree.New(tgtPoints)

	// GICP's rotation-convergence gate supersedes the shared
	// TransformationEpsilon when set, and its inner optimizer iteration
	// count re-fits the rigid transform against a fixed correspondence set
	// before the next outer correspondence search.
	rotationThreshold := cfg.TransformationEpsilon
	innerIterations := 1
	if cfg.Algorithm == GICP {
		if cfg.RotationEpsilon > 0 {
			rotationThreshold = cfg.RotationEpsilon
		}
		if cfg.MaximumOptimizerIterations > 0 {
			innerIterations = cfg.MaximumOptimizerIterations
		}
	}

	current := guess
	fitness := math.Inf(1)
	converged := false

	for iter := 0; iter < cfg.MaximumIterations; iter++ {
		var srcCorr, tgtCorr []r3.Vector
		sumSq := 0.0
		for _, p := range srcPoints {
			transformed := current.Apply(p)
			tgtPoint, dist, ok := correspondence(tree, tgtPoints, transformed, cfg)
			if !ok {
				continue
			}
			srcCorr = append(srcCorr, p)
			tgtCorr = append(tgtCorr, tgtPoint)
			sumSq += dist * dist
		}

		if len(srcCorr) < minCorrespondencePoints {
			return alignResult{}, noMatch("too few correspondences")
		}

		newFitness := sumSq / float64(len(srcCorr))

		innerPose := current
		for i := 0; i < innerIterations; i++ {
			transformedSrc := make([]r3.Vector, len(srcCorr))
			for j, p := range srcCorr {
				transformedSrc[j] = innerPose.Apply(p)
			}
			increment, err := rigidTransformFit(transformedSrc, tgtCorr)
			if err != nil {
				return alignResult{}, noMatch(err.Error())
			}
			innerPose = spatialmath.Compose(increment, innerPose)
		}
		newPose := innerPose

		delta := spatialmath.Compose(spatialmath.Inverse(current), newPose)

		deltaTranslation := delta.Translation.Norm()
		deltaRotation := delta.RotationAngle()
		fitnessDelta := math.Abs(fitness - newFitness)

		current = newPose
		fitness = newFitness

		if deltaTranslation < cfg.TransformationEpsilon && deltaRotation < rotationThreshold && fitnessDelta < cfg.EuclideanFitnessEpsilon {
			converged = true
			break
		}
	}

	return alignResult{transform: current, fitness: fitness, converged: converged}, nil
}

// correspondence finds transformed's match in tgtPoints: the single nearest
// point is always what the rigid-transform fit aligns against, but for GICP
// with CorrespondenceRandomness set, the reported residual distance is the
// mean distance to the CorrespondenceRandomness nearest candidates within
// cfg.MaxCorrespondenceDistance rather than the nearest point alone — GICP's
// neighbors-per-correspondence weighting applied to the fitness metric that
// drives the convergence and acceptance gates, approximated without a
// per-point covariance estimate.
func correspondence(tree *kdtree.Tree, tgtPoints []r3.Vector, transformed r3.Vector, cfg Config) (r3.Vector, float64, bool) {
	slot, dist, ok := tree.NearestWithin(transformed, cfg.MaxCorrespondenceDistance)
	if !ok {
		return r3.Vector{}, 0, false
	}
	target := tgtPoints[slot]

	if cfg.Algorithm == GICP && cfg.CorrespondenceRandomness > 1 {
		dist = meanNeighborDistance(tree, tgtPoints, transformed, cfg.CorrespondenceRandomness, cfg.MaxCorrespondenceDistance)
	}

	return target, dist, true
}

// meanNeighborDistance returns the mean distance from query to the k nearest
// candidates within maxDist, GICP's CorrespondenceRandomness applied as a
// local-density-aware residual instead of a single point-to-point distance.
func meanNeighborDistance(tree *kdtree.Tree, tgtPoints []r3.Vector, query r3.Vector, k int, maxDist float64) float64 {
	candidates := tree.RadiusSearch(query, maxDist)
	if len(candidates) == 0 {
		return maxDist
	}
	dists := make([]float64, len(candidates))
	for i, slot := range candidates {
		dists[i] = tgtPoints[slot].Sub(query).Norm()
	}
	sort.Float64s(dists)
	if k > len(dists) {
		k = len(dists)
	}
	var sum float64
	for _, d := range dists[:k] {
		sum += d
	}
	return sum / float64(k)
}

// rigidTransformFit computes the SE(3) pose that best maps src onto tgt in
// a least-squares sense, via the Kabsch algorithm.
func rigidTransformFit(src, tgt []r3.Vector) (spatialmath.Pose, error) {
	n := len(src)
	srcCentroid, tgtCentroid := centroid(src), centroid(tgt)

	h := mat.NewDense(3, 3, nil)
	for i := 0; i < n; i++ {
		sc := src[i].Sub(srcCentroid)
		tc := tgt[i].Sub(tgtCentroid)
		scVec := mat.NewVecDense(3, []float64{sc.X, sc.Y, sc.Z})
		tcVec := mat.NewVecDense(3, []float64{tc.X, tc.Y, tc.Z})
		var outer mat.Dense
		outer.Outer(1, scVec, tcVec)
		h.Add(h, &outer)
	}

	var svd mat.SVD
	if ok := svd.Factorize(h, mat.SVDFull); !ok {
		return spatialmath.Pose{}, errNonFiniteSVD
	}
	u := svd.UTo(nil)
	v := svd.VTo(nil)

	var vut mat.Dense
	vut.Mul(v, u.T())

	if mat.Det(&vut) < 0 {
		// Reflection: flip the sign of V's last column and recompute.
		for r := 0; r < 3; r++ {
			v.Set(r, 2, -v.At(r, 2))
		}
		vut.Mul(v, u.T())
	}

	q := rotationMatrixToQuat(&vut)

	rotatedCentroid := spatialmath.NewPose(r3.Vector{}, q).Apply(srcCentroid)
	translation := tgtCentroid.Sub(rotatedCentroid)

	return spatialmath.NewPose(translation, q), nil
}

func centroid(points []r3.Vector) r3.Vector {
	var sum r3.Vector
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}

// rotationMatrixToQuat converts a 3x3 rotation matrix to a unit quaternion
// via Shepperd's method.
func rotationMatrixToQuat(r *mat.Dense) quat.Number {
	m00, m01, m02 := r.At(0, 0), r.At(0, 1), r.At(0, 2)
	m10, m11, m12 := r.At(1, 0), r.At(1, 1), r.At(1, 2)
	m20, m21, m22 := r.At(2, 0), r.At(2, 1), r.At(2, 2)

	trace := m00 + m11 + m22
	var w, x, y, z float64
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		w = 0.25 / s
		x = (m21 - m12) * s
		y = (m02 - m20) * s
		z = (m10 - m01) * s
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		w = (m21 - m12) / s
		x = 0.25 * s
		y = (m01 + m10) / s
		z = (m02 + m20) / s
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		w = (m02 - m20) / s
		x = (m01 + m10) / s
		y = 0.25 * s
		z = (m12 + m21) / s
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		w = (m10 - m01) / s
		x = (m02 + m20) / s
		y = (m12 + m21) / s
		z = 0.25 * s
	}
	return quat.Normalize(quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z})
}
