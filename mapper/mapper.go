// Package mapper implements spec components G and H: the incremental
// insertion policy, odometry edges, loop-closure candidate selection, and
// the boundary to an external solver.
//
// Grounded on original_source/src/GraphMapper.cpp's add_reading control
// flow (empty-graph bootstrap, minimum-distance gate, sequential match,
// odometry edge, neighbor-index rebuild and loop-candidate sweep) and on
// the teacher's borrowed-collaborator idiom for injected dependencies
// (services/slam/fake/slam.go's Sensor-shaped fakes).
package mapper

import (
	"time"

	"go.viam.com/slam3d/logging"
	"go.viam.com/slam3d/measurement"
	"go.viam.com/slam3d/odometry"
	"go.viam.com/slam3d/posegraph"
	"go.viam.com/slam3d/solver"
	"go.viam.com/slam3d/spatialindex"
	"go.viam.com/slam3d/spatialmath"
)

// defaultOdometryCovarianceScale is the placeholder covariance magnitude
// attached to odometry-derived edges (spec §4.5 step 7: "a default
// covariance").
const defaultOdometryCovarianceScale = 1e-3

// Mapper is spec component G, the pose-graph mapper orchestrator. Its
// public API is not reentrant; callers serialize access (spec §5).
type Mapper struct {
	graph   *posegraph.Graph
	sensors map[string]Sensor
	odom    odometry.Source
	solver  solver.Solver
	logger  logging.Logger
	options Options

	lastVertexID      uint64
	lastOdometricPose spatialmath.Pose
	odomInitialized   bool
}

// New returns an empty Mapper. logger is a borrowed collaborator (spec §5);
// it must not be nil.
func New(logger logging.Logger, options Options) *Mapper {
	return &Mapper{
		graph:   posegraph.New(),
		sensors: make(map[string]Sensor),
		logger:  logger,
		options: options,
	}
}

// RegisterSensor makes s available to add_reading for measurements tagged
// with s.Name().
func (m *Mapper) RegisterSensor(s Sensor) {
	m.sensors[s.Name()] = s
}

// SetOdometry attaches an odometry source. A nil source (the default)
// means odometry is treated as unavailable throughout add_reading.
func (m *Mapper) SetOdometry(o odometry.Source) {
	m.odom = o
}

// SetSolver attaches a backend solver. A nil solver (the default) makes
// Optimize fail with ErrNoSolver.
func (m *Mapper) SetSolver(s solver.Solver) {
	m.solver = s
}

// Graph exposes the underlying pose graph for read-only queries (map
// building, dot export, tests).
func (m *Mapper) Graph() *posegraph.Graph {
	return m.graph
}

// AddReading implements spec §4.5's add_reading policy. It returns false
// without modifying the graph if the sensor is unregistered or the
// minimum-distance gate rejects the candidate insertion.
func (m *Mapper) AddReading(meas *measurement.Measurement) bool {
	sensor, ok := m.sensors[meas.SensorName()]
	if !ok {
		return false
	}

	if m.graph.VertexCount() == 0 {
		v := m.graph.AddVertex(meas, spatialmath.Identity())
		m.lastVertexID = v.ID
		if odomNow, err := m.poseAt(meas.Timestamp()); err == nil {
			m.lastOdometricPose = odomNow
			m.odomInitialized = true
		}
		return true
	}

	last, ok := m.graph.GetVertex(m.lastVertexID)
	if !ok {
		return false
	}

	odomNow, odomAvailable := m.poseAtOK(meas.Timestamp())

	var odomDelta spatialmath.Pose
	if odomAvailable && m.odomInitialized {
		odomDelta = spatialmath.Compose(spatialmath.Inverse(m.lastOdometricPose), odomNow)
	} else {
		odomDelta = spatialmath.Identity()
	}

	if odomDelta.Translation.Norm() < m.options.MinTranslation && odomDelta.RotationAngle() < m.options.MinRotation {
		return false
	}

	corrected := spatialmath.Compose(last.CorrectedPose, odomDelta)

	if constraint, err := sensor.CreateConstraint(last.Measurement, meas, odomDelta, false); err == nil {
		corrected = spatialmath.Compose(last.CorrectedPose, constraint.Transform)
	} else {
		m.logger.Debugw("sequential match rejected", "sensor", meas.SensorName(), "err", err)
	}

	v := m.graph.AddVertex(meas, corrected)
	previousID := last.ID
	m.lastVertexID = v.ID

	if m.options.AddOdometryEdges {
		if _, err := m.graph.AddEdge(previousID, v.ID, odomDelta, spatialmath.IdentityCovariance(defaultOdometryCovarianceScale), meas.SensorName(), "odometry"); err != nil {
			m.logger.Errorw("failed to add odometry edge", "err", err)
		}
	}

	index := spatialindex.Build(m.graph, meas.SensorName())
	candidates := index.Query(corrected.Translation, m.options.NeighborRadius, v.ID, previousID)
	for _, candidateID := range candidates {
		candidate, ok := m.graph.GetVertex(candidateID)
		if !ok {
			continue
		}
		guess := spatialmath.Compose(spatialmath.Inverse(candidate.CorrectedPose), corrected)
		constraint, err := sensor.CreateConstraint(candidate.Measurement, meas, guess, true)
		if err != nil {
			m.logger.Debugw("loop candidate rejected", "sensor", meas.SensorName(), "candidate", candidateID, "err", err)
			continue
		}
		if _, err := m.graph.AddEdge(candidateID, v.ID, constraint.Transform, constraint.Covariance, meas.SensorName(), "loop_closure"); err != nil {
			m.logger.Errorw("failed to add loop closure edge", "err", err)
		}
	}

	if odomAvailable {
		m.lastOdometricPose = odomNow
		m.odomInitialized = true
	}

	return true
}

// AddExternalReading implements spec §4.5's add_external_reading: it
// inserts meas at pose t, or if a vertex with meas's uuid already exists,
// leaves the graph untouched and returns the existing vertex (spec §4.3
// duplicate-uuid guarantee). It never updates odometry state, last_vertex,
// or the neighbor index.
func (m *Mapper) AddExternalReading(meas *measurement.Measurement, pose spatialmath.Pose) *posegraph.Vertex {
	if v, ok := m.graph.GetVertexByUUID(meas.ID()); ok {
		return v
	}
	return m.graph.AddVertex(meas, pose)
}

// CurrentPose implements spec §4.5's current_pose(): the last local
// vertex's corrected pose, extrapolated by odometry motion since that
// vertex was inserted, when odometry is available.
func (m *Mapper) CurrentPose() (spatialmath.Pose, error) {
	last, ok := m.graph.GetVertex(m.lastVertexID)
	if !ok {
		return spatialmath.Pose{}, posegraph.ErrBadElementType
	}
	if odomNow, err := m.poseAt(time.Now()); err == nil && m.odomInitialized {
		delta := spatialmath.Compose(spatialmath.Inverse(m.lastOdometricPose), odomNow)
		return spatialmath.Compose(last.CorrectedPose, delta), nil
	}
	return last.CorrectedPose, nil
}

// Optimize implements spec §4.5's optimize(): stream the graph to the
// attached solver, run it, and apply the result back onto the graph's
// vertices in-place. Returns ErrNoSolver if no solver is attached; the
// neighbor index is stale after a successful call (spec §4.4).
func (m *Mapper) Optimize() (bool, error) {
	if m.solver == nil {
		return false, ErrNoSolver
	}

	first, ok := m.graph.FirstVertex()
	if !ok {
		return true, nil
	}

	for _, v := range m.graph.Vertices() {
		m.solver.AddVertex(v.ID, v.CorrectedPose)
	}
	m.solver.AddFixed(first.ID)

	for _, e := range m.graph.Edges() {
		information, err := e.Covariance.Information()
		if err != nil {
			m.logger.Errorw("edge covariance not invertible, skipping", "err", err)
			continue
		}
		m.solver.AddEdge(e.SourceID, e.TargetID, e.Transform, information)
	}

	if !m.solver.Compute() {
		return false, nil
	}

	for _, v := range m.graph.Vertices() {
		pose, err := m.solver.VertexPose(v.ID)
		if err != nil {
			m.logger.Errorw("solver missing vertex pose after compute", "vertex", v.ID, "err", err)
			continue
		}
		v.CorrectedPose = pose
	}

	return true, nil
}

func (m *Mapper) poseAt(t time.Time) (spatialmath.Pose, error) {
	if m.odom == nil {
		return spatialmath.Pose{}, odometry.ErrUnavailable
	}
	pose, err := m.odom.PoseAt(t)
	if err != nil {
		return spatialmath.Pose{}, err
	}
	return pose, nil
}

func (m *Mapper) poseAtOK(t time.Time) (spatialmath.Pose, bool) {
	pose, err := m.poseAt(t)
	if err != nil {
		if m.odom != nil {
			m.logger.Debugw("odometry unavailable, skipping odometry-dependent steps", "err", err)
		}
		return spatialmath.Pose{}, false
	}
	return pose, true
}
