// SPDX-License-Identifier: MIT

// Package logger defines a small leveled logger with DEBUG, INFO, WARN and
// ERROR prints for the command-line tools.
package logger

import (
	"io"
	"log"
)

// Aggregate bundles one log.Logger per level. DEBUG lines are dropped unless
// the Aggregate was built verbose.
type Aggregate struct {
	DebugLogger *log.Logger
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger
	verbose     bool
}

// New returns an Aggregate writing every level to out.
func New(out io.Writer, verbose bool) *Aggregate {
	return &Aggregate{
		DebugLogger: log.New(out, "DEBUG: ", log.LstdFlags),
		InfoLogger:  log.New(out, "INFO: ", log.LstdFlags),
		WarnLogger:  log.New(out, "WARN: ", log.LstdFlags),
		ErrorLogger: log.New(out, "ERROR: ", log.LstdFlags),
		verbose:     verbose,
	}
}

// Discard returns an Aggregate that prints nothing.
func Discard() *Aggregate {
	return New(io.Discard, false)
}

// Verbose reports whether DEBUG lines are printed.
func (l *Aggregate) Verbose() bool { return l.verbose }

// Debug prints a DEBUG log when verbose.
func (l *Aggregate) Debug(s string, v ...interface{}) {
	if l.verbose {
		l.DebugLogger.Printf(s, v...)
	}
}

// Info prints an INFO log
func (l *Aggregate) Info(s string, v ...interface{}) {
	l.InfoLogger.Printf(s, v...)
}

// Warn prints a WARN log
func (l *Aggregate) Warn(s string, v ...interface{}) {
	l.WarnLogger.Printf(s, v...)
}

// Error prints an ERROR log
func (l *Aggregate) Error(s string, v ...interface{}) {
	l.ErrorLogger.Printf(s, v...)
}
