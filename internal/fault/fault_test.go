package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivide(t *testing.T) {
	got, err := Divide(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = Divide(10, 0)
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Contains(t, err.Error(), "divide 10 by 0")
}

func TestTry_RecoversDivisionPanic(t *testing.T) {
	var events []string
	zero := 0

	err := Try(
		func() error {
			quotient := 10 / zero
			events = append(events, fmt.Sprint(quotient))
			return nil
		},
		func(err error) { events = append(events, "catch") },
		func() { events = append(events, "finally") },
	)

	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, []string{"catch", "finally"}, events)
}

func TestTry_ReturnedError(t *testing.T) {
	var caught error
	finallyRan := false

	err := Try(
		func() error {
			_, err := Divide(1, 0)
			return err
		},
		func(err error) { caught = err },
		func() { finallyRan = true },
	)

	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, err, caught)
	assert.True(t, finallyRan)
}

func TestTry_SuccessStillRunsFinally(t *testing.T) {
	catchRan := false
	finallyRan := false

	err := Try(
		func() error { return nil },
		func(error) { catchRan = true },
		func() { finallyRan = true },
	)

	require.NoError(t, err)
	assert.False(t, catchRan)
	assert.True(t, finallyRan)
}

func TestTry_OtherPanics(t *testing.T) {
	sentinel := errors.New("boom")

	err := Try(func() error { panic(sentinel) }, nil, nil)
	require.ErrorIs(t, err, sentinel)

	err = Try(func() error { panic("plain") }, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "panic: plain", err.Error())

	err = Try(func() error {
		var s []int
		return fmt.Errorf("unreachable %d", s[3])
	}, nil, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDivisionByZero)
	assert.Contains(t, err.Error(), "runtime panic")
}

func TestScope_LookupReportsUndefined(t *testing.T) {
	type report struct {
		code int
		msg  string
	}
	var reports []report
	s := NewScope(func(code int, msg string) {
		reports = append(reports, report{code, msg})
	})
	s.Set("name", "John")

	v, ok := s.Lookup("name")
	assert.True(t, ok)
	assert.Equal(t, "John", v)
	assert.Empty(t, reports)

	v, ok = s.Lookup("undefinedVariable")
	assert.False(t, ok)
	assert.Nil(t, v)
	require.Len(t, reports, 1)
	assert.Equal(t, WarningCode, reports[0].code)
	assert.Equal(t, "Undefined variable: undefinedVariable", reports[0].msg)
}

func TestScope_NilHook(t *testing.T) {
	s := NewScope(nil)
	_, ok := s.Lookup("missing")
	assert.False(t, ok)
}
