// Package logging provides the module wide logger factory.
package logging

import (
	"github.com/pion/logging"
)

var loggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns a leveled logger for the given scope.
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}
