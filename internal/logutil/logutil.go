// Package logutil provides the structured logger used throughout rtinstall.
package logutil

import (
	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

// New returns a logger scoped to component, in the same
// logrus.WithFields(logrus.Fields{trace.Component: ...}) shape used
// throughout the engine this package was modeled on.
func New(component string) logrus.FieldLogger {
	return logrus.WithFields(logrus.Fields{
		trace.Component: component,
	})
}

// Default returns the root logger with no component field set.
func Default() logrus.FieldLogger {
	return logrus.StandardLogger()
}
