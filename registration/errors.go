package registration

import "github.com/pkg/errors"

// ErrNoMatch is spec.md's NoMatch(reason): registration rejected a pair of
// clouds (insufficient points, non-convergence, or fitness above
// threshold). Callers wrap it with the reason via errors.Wrap so
// errors.Is(err, ErrNoMatch) still holds (spec §7).
var ErrNoMatch = errors.New("registration: no match")

func noMatch(reason string) error {
	return errors.Wrap(ErrNoMatch, reason)
}

// errNonFiniteSVD guards rigidTransformFit's SVD factorization, which can
// fail to converge on a degenerate (rank-deficient or non-finite)
// correspondence set.
var errNonFiniteSVD = errors.New("registration: rigid transform SVD did not converge")
