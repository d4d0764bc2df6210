// Package diag provides the logging seam the geometry core calls into.
//
// Every package in this module takes a Diagnostics by reference rather
// than reaching for a package-level logger, so tests can assert on the
// records a build emits instead of scraping stdout.
package diag

import (
	"fmt"
	"log/slog"
)

// Diagnostics is the logging interface threaded through the core. It
// mirrors the four severities the original construction tool used
// (SG_DEBUG, SG_INFO, SG_WARN, SG_ALERT).
type Diagnostics interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Alert(msg string, args ...any)
}

// Slog adapts a *slog.Logger to Diagnostics. Alert is logged at
// slog.LevelError since slog has no higher built-in level.
type Slog struct {
	L *slog.Logger
}

// NewSlog returns a Diagnostics backed by the given logger, or the
// default slog logger if l is nil.
func NewSlog(l *slog.Logger) Slog {
	if l == nil {
		l = slog.Default()
	}
	return Slog{L: l}
}

func (s Slog) Debug(msg string, args ...any) { s.L.Debug(msg, args...) }
func (s Slog) Info(msg string, args ...any)  { s.L.Info(msg, args...) }
func (s Slog) Warn(msg string, args ...any)  { s.L.Warn(msg, args...) }
func (s Slog) Alert(msg string, args ...any) { s.L.Error(msg, args...) }

// Recording is a Diagnostics that keeps every record in memory, for
// tests that need to assert on emitted diagnostics rather than just
// watching stdout.
type Recording struct {
	Records []Record
}

// Record is a single captured diagnostic line.
type Record struct {
	Level Level
	Msg   string
}

// Level identifies which of the four Diagnostics methods was called.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelAlert
)

func (r *Recording) Debug(msg string, args ...any) { r.append(LevelDebug, msg, args) }
func (r *Recording) Info(msg string, args ...any)  { r.append(LevelInfo, msg, args) }
func (r *Recording) Warn(msg string, args ...any)  { r.append(LevelWarn, msg, args) }
func (r *Recording) Alert(msg string, args ...any) { r.append(LevelAlert, msg, args) }

func (r *Recording) append(level Level, msg string, args []any) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg+" %v", append([]any{}, args)[0])
		if len(args) > 1 {
			msg = fmt.Sprintf("%s %v", msg, args[1:])
		}
	}
	r.Records = append(r.Records, Record{Level: level, Msg: msg})
}

// CountAtLeast returns the number of records at or above the given level.
func (r *Recording) CountAtLeast(level Level) int {
	n := 0
	for _, rec := range r.Records {
		if rec.Level >= level {
			n++
		}
	}
	return n
}
