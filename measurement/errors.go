package measurement

import "github.com/pkg/errors"

// ErrBadMeasurementType is spec.md's BadMeasurementType: a measurement was
// passed to a routine whose sensor-specific accessor does not match the
// measurement's actual kind (spec §7).
var ErrBadMeasurementType = errors.New("measurement: wrong type for this operation")
