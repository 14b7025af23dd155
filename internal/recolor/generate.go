package recolor

import (
	"context"
	"fmt"

	"github.com/glizzus/assetgen/internal/batch"
)

// Variation is one sprite sheet derived from the base image.
type Variation struct {
	Name   string
	Output string
	Rules  Table
}

// Generate decodes the base image once and writes one recolored copy per
// variation. A variation that fails to save is reported in the results and
// the remaining ones still run.
func Generate(ctx context.Context, basePath string, variations []Variation) (batch.Results, error) {
	base, err := Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load base sprite sheet: %w", err)
	}

	tasks := make([]batch.Task, 0, len(variations))
	for _, v := range variations {
		tasks = append(tasks, batch.Task{
			Name: v.Name,
			Path: v.Output,
			Do: func(context.Context) (int64, error) {
				return Save(v.Output, Remap(base, v.Rules))
			},
		})
	}
	return batch.Run(ctx, tasks), nil
}
