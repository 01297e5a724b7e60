// Package log holds the process-wide zap logger.
package log

import "go.uber.org/zap"

var Logger = zap.NewNop()

// Init replaces the no-op default. dev switches to the human-readable
// development encoder.
func Init(dev bool) {
	var err error
	if dev {
		Logger, err = zap.NewDevelopment()
	} else {
		Logger, err = zap.NewProduction()
	}
	if err != nil {
		Logger = zap.NewNop()
	}
}
