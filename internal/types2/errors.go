// Package types2 implements scope and type-class analysis for Calvin.
package types2

import (
	"fmt"

	"github.com/you-not-fish/calvin/internal/syntax"
)

// Severity classifies a diagnostic.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is a semantic error or warning.
type Diagnostic struct {
	Pos      syntax.Pos
	Severity Severity
	Msg      string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Msg)
}

// ErrorHandler is a function called for each diagnostic.
type ErrorHandler func(d *Diagnostic)

// errorf reports a semantic error at the given position.
func (c *Checker) errorf(pos syntax.Pos, format string, args ...interface{}) {
	c.report(pos, Error, fmt.Sprintf(format, args...))
}

// warnf reports a semantic warning at the given position.
func (c *Checker) warnf(pos syntax.Pos, format string, args ...interface{}) {
	c.report(pos, Warning, fmt.Sprintf(format, args...))
}

func (c *Checker) report(pos syntax.Pos, sev Severity, msg string) {
	d := &Diagnostic{Pos: pos, Severity: sev, Msg: msg}
	c.diags = append(c.diags, d)

	if sev == Error {
		c.errors++
		c.log.Errorf("%s", msg)
	} else {
		c.warnings++
		c.log.Warnf("%s", msg)
	}

	if c.conf.Error != nil {
		c.conf.Error(d)
	}
}
