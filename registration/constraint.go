package registration

import (
	"go.viam.com/slam3d/measurement"
	"go.viam.com/slam3d/spatialmath"
)

// Constraint is the SE(3) edge payload create_constraint produces: a
// transform mapping source's pose onto target's pose, with the covariance
// to attach to the resulting graph edge (spec §3, §4.2 step 5).
type Constraint struct {
	Transform  spatialmath.Pose
	Covariance spatialmath.Covariance
}

// Registrar runs create_constraint for one sensor, using Coarse parameters
// for loop candidates and Fine parameters for every alignment's refinement
// pass (spec §4.2).
type Registrar struct {
	Coarse Config
	Fine   Config
}

// CreateConstraint implements spec §4.2's create_constraint(source_meas,
// target_meas, odom_guess, is_loop):
//
//  1. compute the guess in sensor frame,
//  2. if isLoop, coarse-align and replace the guess with the result,
//  3. fine-align from the guess,
//  4. transform the result back to robot frame,
//  5. return the transform with a scaled identity covariance.
//
// Fails with measurement.ErrBadMeasurementType if either measurement does
// not carry a point cloud, or with ErrNoMatch if alignment does not
// converge within the fine config's fitness threshold.
func (r *Registrar) CreateConstraint(source, target *measurement.Measurement, odomGuess spatialmath.Pose, isLoop bool) (Constraint, error) {
	sourceCloud, err := source.PointCloud()
	if err != nil {
		return Constraint{}, err
	}
	targetCloud, err := target.PointCloud()
	if err != nil {
		return Constraint{}, err
	}

	sourcePose := source.SensorPose()
	targetPose := target.SensorPose()

	// Step 1: sensor-frame guess g = source.sensor_pose⁻¹ · odom_guess · target.sensor_pose.
	guess := spatialmath.Compose(spatialmath.Compose(spatialmath.Inverse(sourcePose), odomGuess), targetPose)

	if isLoop {
		// Step 2: coarse alignment replaces the guess. Align(a, b, ...) returns
		// the transform mapping a onto b, so passing source first yields a
		// source->target transform directly, matching guess's convention.
		coarse, err := Align(sourceCloud, targetCloud, guess, r.Coarse)
		if err != nil {
			return Constraint{}, err
		}
		if !coarse.converged || coarse.fitness > r.Coarse.MaxFitnessScore {
			return Constraint{}, noMatch("coarse alignment did not converge")
		}
		guess = coarse.transform
	}

	// Step 3: fine alignment from the guess.
	fine, err := Align(sourceCloud, targetCloud, guess, r.Fine)
	if err != nil {
		return Constraint{}, err
	}
	if !fine.converged || fine.fitness > r.Fine.MaxFitnessScore {
		return Constraint{}, noMatch("fine alignment did not converge")
	}

	// Step 4: back to robot frame, T = source.sensor_pose · g_fine · target.sensor_pose⁻¹.
	transform := spatialmath.Compose(spatialmath.Compose(sourcePose, fine.transform), spatialmath.Inverse(targetPose))

	// Step 5.
	return Constraint{
		Transform:  transform,
		Covariance: spatialmath.IdentityCovariance(r.Fine.CovarianceScale),
	}, nil
}
