package logging

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

// NewTestLogger returns a Logger that writes Debug+ logs through t.Log, in
// the same spirit as go.viam.com/rdk/logging.NewTestLogger.
func NewTestLogger(tb testing.TB) Logger {
	return &zapLogger{sugar: zaptest.NewLogger(tb).Sugar()}
}
