package posegraph

import "github.com/pkg/errors"

// ErrBadElementType is spec.md's BadElementType: an internal graph
// consistency violation — an edge referencing a vertex id that does not
// exist. Per spec §7, this "must not occur if invariants hold" and
// indicates a bug in the caller (e.g. mapper) rather than a recoverable
// runtime condition.
var ErrBadElementType = errors.New("posegraph: edge references a vertex id that does not exist")
