// Package logsink defines the leveled logging capability the pipeline
// packages depend on, plus a logrus-backed default implementation.
//
// internal/duplicate depends only on the Sink interface, and internal/walker
// on a narrower Warnf-only interface that a Sink satisfies; internal/hashpool
// logs nothing and reports errors in its results. This mirrors a plain errCh
// chan error pattern but upgraded to a leveled sink so a caller that wants
// structured fields (path, phase, size) on every warning can supply one.
package logsink

import (
	"github.com/sirupsen/logrus"
)

// Sink is the logging capability the pipeline packages require. Warnf
// reports a recoverable per-entry problem (permission denied, a stat
// failure); Infof reports pipeline progress milestones (phase transitions,
// summary counts); Debugf reports detail useful only when diagnosing a run.
type Sink interface {
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}

// Discard is a Sink that drops every message. Useful in tests and as an
// explicit opt-out from logging.
type Discard struct{}

func (Discard) Warnf(string, ...any)  {}
func (Discard) Infof(string, ...any)  {}
func (Discard) Debugf(string, ...any) {}

// Logrus adapts a *logrus.Logger to the Sink interface, optionally binding a
// set of structured fields (phase, path) to every message it emits.
type Logrus struct {
	logger *logrus.Logger
	fields logrus.Fields
}

// New returns a Logrus sink writing through logger. A nil logger gets
// logrus.StandardLogger().
func New(logger *logrus.Logger) *Logrus {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Logrus{logger: logger}
}

// With returns a copy of the sink that attaches the given fields to every
// subsequent message, without mutating the receiver.
func (l *Logrus) With(fields logrus.Fields) *Logrus {
	merged := make(logrus.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logrus{logger: l.logger, fields: merged}
}

func (l *Logrus) entry() *logrus.Entry {
	return l.logger.WithFields(l.fields)
}

func (l *Logrus) Warnf(format string, args ...any)  { l.entry().Warnf(format, args...) }
func (l *Logrus) Infof(format string, args ...any)  { l.entry().Infof(format, args...) }
func (l *Logrus) Debugf(format string, args ...any) { l.entry().Debugf(format, args...) }
