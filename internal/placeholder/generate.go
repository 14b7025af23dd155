package placeholder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glizzus/assetgen/internal/batch"
)

// Track is a placeholder file to generate.
type Track struct {
	Filename string
	Seconds  float64
}

// SizeMismatchError is returned when a built file does not have the size
// its duration implies.
type SizeMismatchError struct {
	Path     string
	Expected int64
	Actual   int64
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s is %d bytes, expected %d", e.Path, e.Actual, e.Expected)
}

var _ error = (*SizeMismatchError)(nil)

// Generate creates dir if needed and builds every track into it, in order.
// Each file is checked for existence and size after it is written. A failing
// track is reported in the results and does not stop the rest.
func Generate(ctx context.Context, dir string, tracks []Track) (batch.Results, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tasks := make([]batch.Task, 0, len(tracks))
	for _, track := range tracks {
		path := filepath.Join(dir, track.Filename)
		tasks = append(tasks, batch.Task{
			Name: track.Filename,
			Path: path,
			Do: func(context.Context) (int64, error) {
				if err := Build(path, track.Seconds); err != nil {
					return 0, err
				}
				return verify(path, Size(track.Seconds))
			},
		})
	}

	return batch.Run(ctx, tasks), nil
}

func verify(path string, expected int64) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Size() != expected {
		return info.Size(), &SizeMismatchError{Path: path, Expected: expected, Actual: info.Size()}
	}
	return info.Size(), nil
}
