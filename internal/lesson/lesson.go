package lesson

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/roach88/primer/internal/config"
)

// ErrUnknownLesson is returned by Select for a name not in the catalogue.
var ErrUnknownLesson = errors.New("unknown lesson")

// Lesson is one self-contained demonstration.
type Lesson struct {
	Name  string
	Title string
	Run   func(ctx context.Context, env *Env) error
}

// Env is what a lesson gets to work with.
type Env struct {
	Out    io.Writer
	Logger *zap.Logger
	Config config.Config
	RunID  string
}

// Println writes one line to Out.
func (e *Env) Println(a ...any) {
	fmt.Fprintln(e.Out, a...)
}

// Printf writes formatted text to Out.
func (e *Env) Printf(format string, a ...any) {
	fmt.Fprintf(e.Out, format, a...)
}

// Lines writes each line followed by a newline.
func (e *Env) Lines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(e.Out, line)
	}
}

// Select returns the lessons named in names, in catalogue order. An empty
// names list selects the whole catalogue.
func Select(catalogue []Lesson, names []string) ([]Lesson, error) {
	if len(names) == 0 {
		return catalogue, nil
	}

	known := make(map[string]bool, len(catalogue))
	for _, l := range catalogue {
		known[l.Name] = true
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if !known[n] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLesson, n)
		}
		want[n] = true
	}

	var selected []Lesson
	for _, l := range catalogue {
		if want[l.Name] {
			selected = append(selected, l)
		}
	}
	return selected, nil
}

// Runner executes lessons in order.
type Runner struct {
	out    io.Writer
	logger *zap.Logger
	ids    RunIDFunc
	header lipgloss.Style
}

// NewRunner creates a Runner writing lesson output to out. Headers are
// styled only when out is a color-capable terminal. A nil ids defaults to
// UUIDv7 run IDs.
func NewRunner(out io.Writer, logger *zap.Logger, ids RunIDFunc) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ids == nil {
		ids = NewRunID
	}
	renderer := lipgloss.NewRenderer(out)
	return &Runner{
		out:    out,
		logger: logger,
		ids:    ids,
		header: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
	}
}

// Run executes lessons top to bottom and returns the run ID. It stops at the
// first lesson error or when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, cfg config.Config, lessons []Lesson) (string, error) {
	id := r.ids()
	logger := r.logger.With(zap.String("run_id", id))
	logger.Info("tour starting", zap.Int("lessons", len(lessons)))

	env := &Env{Out: r.out, Logger: logger, Config: cfg, RunID: id}

	for i, l := range lessons {
		if err := ctx.Err(); err != nil {
			return id, err
		}
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, r.header.Render(fmt.Sprintf("━━━ %d. %s ━━━", i+1, l.Title)))

		logger.Debug("lesson started", zap.String("lesson", l.Name))
		env.Logger = logger.With(zap.String("lesson", l.Name))
		if err := l.Run(ctx, env); err != nil {
			logger.Error("lesson failed", zap.String("lesson", l.Name), zap.Error(err))
			return id, fmt.Errorf("lesson %s: %w", l.Name, err)
		}
	}

	logger.Info("tour finished")
	return id, nil
}
