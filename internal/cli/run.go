package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/primer/internal/config"
	"github.com/roach88/primer/internal/lesson"
	"github.com/roach88/primer/internal/store"
	"github.com/roach88/primer/internal/tour"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Only    []string
	WorkDir string
	Driver  string

	// IDs overrides run ID generation (tests). Nil means lesson.NewRunID.
	IDs lesson.RunIDFunc
}

// RunSummary is the JSON payload of a successful run.
type RunSummary struct {
	Lessons    []string `json:"lessons"`
	Transcript string   `json:"transcript"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the tour",
		Long: `Run every lesson of the tour in order, or just the ones named with --only.

The file and database lessons write into a work directory. Without --work-dir
(or work_dir in the config file) a temporary directory is created and removed
when the run ends.

Example:
  primer run
  primer run --only functions,json
  primer run --work-dir ./scratch --driver sqlite`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(opts, cmd)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Only, "only", nil, "comma-separated lesson names to run")
	cmd.Flags().StringVar(&opts.WorkDir, "work-dir", "", "directory for files the tour creates")
	cmd.Flags().StringVar(&opts.Driver, "driver", "", "database driver (sqlite3|sqlite)")

	return cmd
}

func runTour(opts *RunOptions, cmd *cobra.Command) error {
	logger := opts.logger()
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := opts.resolveConfig()
	if err != nil {
		return fail(formatter, ErrCodeConfig, err)
	}

	lessons, err := lesson.Select(tour.Catalogue(), opts.Only)
	if err != nil {
		return fail(formatter, ErrCodeLesson, WrapExitError(ExitCommandError, "invalid --only", err))
	}

	if cfg.WorkDir == "" {
		dir, err := os.MkdirTemp("", "primer-*")
		if err != nil {
			return fail(formatter, ErrCodeLesson, WrapExitError(ExitCommandError, "failed to create work dir", err))
		}
		defer func() {
			if err := os.RemoveAll(dir); err != nil {
				logger.Warn("failed to remove work dir", zap.String("dir", dir), zap.Error(err))
			}
		}()
		cfg.WorkDir = dir
	}
	formatter.VerboseLog("work dir: %s", cfg.WorkDir)

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// JSON output carries the transcript inside the response instead of
	// streaming it.
	var out io.Writer = cmd.OutOrStdout()
	transcript := &bytes.Buffer{}
	if opts.Format == "json" {
		out = transcript
	}

	runID, err := lesson.NewRunner(out, logger, opts.IDs).Run(ctx, cfg, lessons)
	formatter.RunID = runID
	if err != nil {
		var ce *store.ConnectError
		if errors.As(err, &ce) {
			logger.Error("database connection failed", zap.Stringer("credentials", ce.Credentials), zap.Error(ce.Err))
			return fail(formatter, ErrCodeConnect, ConnectionFailed(ce.Err))
		}
		return fail(formatter, ErrCodeLesson, WrapExitError(ExitFailure, "tour aborted", err))
	}

	if opts.Format == "json" {
		names := make([]string, len(lessons))
		for i, l := range lessons {
			names[i] = l.Name
		}
		return formatter.Success(RunSummary{Lessons: names, Transcript: transcript.String()})
	}
	return nil
}

// resolveConfig loads the config file and applies flag overrides.
func (o *RunOptions) resolveConfig() (config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if o.WorkDir == "" && o.Driver == "" {
		return cfg, nil
	}
	if o.WorkDir != "" {
		cfg.WorkDir = o.WorkDir
	}
	if o.Driver != "" {
		cfg.Database.Driver = o.Driver
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "invalid flags", err)
	}
	return cfg, nil
}

// fail reports err in JSON mode and returns it for the exit code. Text mode
// leaves printing to main.
func fail(f *OutputFormatter, code string, err error) error {
	if f.Format == "json" {
		_ = f.Error(code, err.Error(), nil)
	}
	return err
}
