package spatialmath

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Covariance is a 6x6 symmetric positive-semidefinite matrix over the
// (translation x, y, z, rotation x, y, z) tangent space of an edge
// constraint (spec §3). It is stored directly on EdgeObject and inverted to
// an information matrix only at the edge-to-solver boundary (spec §3,
// §4.2 step 5), the same boundary original_source's G2oSolver.cpp draws
// between Mapper-side covariances and g2o's information-matrix API.
type Covariance struct {
	m *mat.SymDense
}

// NewCovariance wraps a 6x6 symmetric matrix. Panics if m is not 6x6; this
// is a programmer error at every call site in this module, never a runtime
// condition driven by sensor data.
func NewCovariance(m *mat.SymDense) Covariance {
	if m.SymmetricDim() != 6 {
		panic("spatialmath: covariance must be 6x6")
	}
	return Covariance{m: m}
}

// IdentityCovariance returns scale*I_6, the placeholder covariance emitted
// by registration.CreateConstraint (spec §4.2 step 5, §9 "Covariance
// handling").
func IdentityCovariance(scale float64) Covariance {
	data := make([]float64, 36)
	for i := 0; i < 6; i++ {
		data[i*6+i] = scale
	}
	return Covariance{m: mat.NewSymDense(6, data)}
}

// Matrix returns the underlying 6x6 symmetric matrix. Callers must not
// mutate the returned matrix.
func (c Covariance) Matrix() *mat.SymDense {
	return c.m
}

// Information returns the inverse of the covariance matrix, the form the
// Solver interface's AddEdge expects (spec §3: "inverted to information at
// the edge -> solver boundary").
func (c Covariance) Information() (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(c.m); err != nil {
		return nil, errors.Wrap(err, "covariance is not invertible")
	}
	return &inv, nil
}
