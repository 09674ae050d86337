package lesson

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/roach88/primer/internal/config"
)

func printer(text string) func(context.Context, *Env) error {
	return func(_ context.Context, env *Env) error {
		env.Println(text)
		return nil
	}
}

func TestRunner_RunsInOrderWithHeaders(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRunner(buf, nil, StaticRunID("run-1"))

	id, err := r.Run(context.Background(), config.Default(), []Lesson{
		{Name: "a", Title: "First", Run: printer("one")},
		{Name: "b", Title: "Second", Run: printer("two")},
	})

	require.NoError(t, err)
	assert.Equal(t, "run-1", id)
	assert.Equal(t, "━━━ 1. First ━━━\none\n\n━━━ 2. Second ━━━\ntwo\n", buf.String())
}

func TestRunner_StopsAtFirstError(t *testing.T) {
	buf := &bytes.Buffer{}
	boom := errors.New("boom")
	ran := false

	_, err := NewRunner(buf, nil, StaticRunID("run-1")).Run(context.Background(), config.Default(), []Lesson{
		{Name: "bad", Title: "Bad", Run: func(context.Context, *Env) error { return boom }},
		{Name: "after", Title: "After", Run: func(context.Context, *Env) error { ran = true; return nil }},
	})

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "lesson bad")
	assert.False(t, ran)
}

func TestRunner_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(&bytes.Buffer{}, nil, StaticRunID("run-1")).Run(ctx, config.Default(), []Lesson{
		{Name: "a", Title: "A", Run: printer("one")},
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunner_LogsCarryRunID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := NewRunner(&bytes.Buffer{}, zap.New(core), StaticRunID("run-42"))

	_, err := r.Run(context.Background(), config.Default(), []Lesson{
		{Name: "a", Title: "A", Run: func(_ context.Context, env *Env) error {
			env.Logger.Info("inside")
			assert.Equal(t, "run-42", env.RunID)
			return nil
		}},
	})
	require.NoError(t, err)

	inside := logs.FilterMessage("inside").All()
	require.Len(t, inside, 1)
	fields := inside[0].ContextMap()
	assert.Equal(t, "run-42", fields["run_id"])
	assert.Equal(t, "a", fields["lesson"])
	assert.Equal(t, 1, logs.FilterMessage("tour finished").Len())
}

func TestSelect(t *testing.T) {
	catalogue := []Lesson{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	all, err := Select(catalogue, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	picked, err := Select(catalogue, []string{"c", " a"})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, "a", picked[0].Name)
	assert.Equal(t, "c", picked[1].Name)

	_, err = Select(catalogue, []string{"a", "zzz"})
	require.ErrorIs(t, err, ErrUnknownLesson)
	assert.Contains(t, err.Error(), `"zzz"`)
}

func TestEnvHelpers(t *testing.T) {
	buf := &bytes.Buffer{}
	env := &Env{Out: buf}
	env.Println("a", 1)
	env.Printf("%s-%d\n", "b", 2)
	env.Lines([]string{"c", "d"})
	assert.Equal(t, "a 1\nb-2\nc\nd\n", buf.String())
}
