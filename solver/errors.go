package solver

import "github.com/pkg/errors"

// ErrUnknownVertex is returned by VertexPose for an id the solver was never
// given via AddVertex.
var ErrUnknownVertex = errors.New("solver: unknown vertex id")
