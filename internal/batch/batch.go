package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// JobError wraps the failure of a single job in a batch.
type JobError struct {
	Name string
	Path string
	Err  error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %s (%s): %v", e.Name, e.Path, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

var _ error = (*JobError)(nil)

// Task is one unit of work. Do returns the number of bytes written to Path.
type Task struct {
	Name string
	Path string
	Do   func(ctx context.Context) (int64, error)
}

// Result records the outcome of a Task.
type Result struct {
	Name string
	Path string
	Size int64
	Err  error
}

func (r Result) OK() bool {
	return r.Err == nil
}

type Results []Result

// Failed returns the results that carry an error.
func (rs Results) Failed() Results {
	var failed Results
	for _, r := range rs {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Err joins every job error, or returns nil if all jobs succeeded.
func (rs Results) Err() error {
	var errs []error
	for _, r := range rs {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

// Run executes tasks in order. A failing task is recorded and the next one
// still runs. Once ctx is done, remaining tasks are marked with ctx.Err()
// without being started.
func Run(ctx context.Context, tasks []Task) Results {
	results := make(Results, 0, len(tasks))
	for _, task := range tasks {
		result := Result{Name: task.Name, Path: task.Path}

		if err := ctx.Err(); err != nil {
			result.Err = &JobError{Name: task.Name, Path: task.Path, Err: err}
			results = append(results, result)
			continue
		}

		size, err := task.Do(ctx)
		if err != nil {
			result.Err = &JobError{Name: task.Name, Path: task.Path, Err: err}
			slog.ErrorContext(
				ctx,
				"failed to generate asset",
				slog.String("name", task.Name),
				slog.String("path", task.Path),
				slog.Any("error", err),
			)
		} else {
			result.Size = size
			slog.InfoContext(
				ctx,
				"generated asset",
				slog.String("name", task.Name),
				slog.String("path", task.Path),
				slog.Int64("bytes", size),
			)
		}
		results = append(results, result)
	}
	return results
}
