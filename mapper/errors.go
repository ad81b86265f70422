package mapper

import "github.com/pkg/errors"

// ErrNoSolver is spec.md's NoSolver: Optimize was called with no solver
// attached (spec §7).
var ErrNoSolver = errors.New("mapper: optimize called with no solver attached")
