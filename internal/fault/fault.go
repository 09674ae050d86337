// Package fault shows recovering from an arithmetic failure with guaranteed
// cleanup, and reporting reads of undefined names through a callback.
//
// Integer division by zero in Go is a run-time panic, not a returned error.
// Divide checks for it up front; Try recovers the panic for code that does
// not, so both paths end up as ErrDivisionByZero.
package fault

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrDivisionByZero is reported for any integer division by zero.
var ErrDivisionByZero = errors.New("division by zero")

// WarningCode is the code passed to a Hook for a read of an undefined name.
const WarningCode = 2

// Divide returns a / b, or ErrDivisionByZero when b is zero.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, fmt.Errorf("divide %d by %d: %w", a, b, ErrDivisionByZero)
	}
	return a / b, nil
}

// Try runs body and passes any failure to catch. A panic raised by body is
// recovered and converted to an error first. finally runs after catch on
// every path. catch and finally may be nil. The error handed to catch, if
// any, is also returned.
func Try(body func() error, catch func(error), finally func()) (err error) {
	if finally != nil {
		defer finally()
	}
	err = protect(body)
	if err != nil && catch != nil {
		catch(err)
	}
	return err
}

func protect(body func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fromPanic(r)
		}
	}()
	return body()
}

func fromPanic(r any) error {
	if re, ok := r.(runtime.Error); ok {
		if strings.Contains(re.Error(), "integer divide by zero") {
			return fmt.Errorf("%v: %w", re, ErrDivisionByZero)
		}
		return fmt.Errorf("runtime panic: %w", re)
	}
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}

// Hook receives a code and message for a recoverable problem.
type Hook func(code int, message string)

// Scope is a set of named values. Reading a name that was never set reports
// through the hook and yields no value instead of failing.
type Scope struct {
	vars map[string]any
	hook Hook
}

// NewScope creates an empty scope that reports to hook. A nil hook discards
// reports.
func NewScope(hook Hook) *Scope {
	return &Scope{vars: make(map[string]any), hook: hook}
}

// Set binds name to v.
func (s *Scope) Set(name string, v any) {
	s.vars[name] = v
}

// Lookup returns the value bound to name. A missing name calls the hook with
// WarningCode and returns false.
func (s *Scope) Lookup(name string) (any, bool) {
	v, ok := s.vars[name]
	if !ok && s.hook != nil {
		s.hook(WarningCode, fmt.Sprintf("Undefined variable: %s", name))
	}
	return v, ok
}
