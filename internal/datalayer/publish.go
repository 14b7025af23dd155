package datalayer

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/glizzus/assetgen/internal/batch"
)

var contentTypes = map[string]string{
	".mp3": "audio/mpeg",
	".png": "image/png",
	".bmp": "image/bmp",
}

// ContentType guesses a MIME type from the file extension.
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Publish uploads the file of every successful result to storage under
// prefix/<file name>. Failed results are skipped. Upload failures are
// reported per file and do not stop the remaining uploads.
func Publish(ctx context.Context, storage BlobStorage, prefix string, results batch.Results) batch.Results {
	var tasks []batch.Task
	for _, r := range results {
		if !r.OK() {
			continue
		}
		key := path.Join(prefix, filepath.Base(r.Path))
		tasks = append(tasks, batch.Task{
			Name: key,
			Path: r.Path,
			Do: func(ctx context.Context) (int64, error) {
				return upload(ctx, storage, key, r.Path)
			},
		})
	}
	return batch.Run(ctx, tasks)
}

func upload(ctx context.Context, storage BlobStorage, key, file string) (int64, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", file, err)
	}

	err = storage.Put(ctx, key, f, PutOptions{
		Size:        info.Size(),
		ContentType: ContentType(file),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return info.Size(), nil
}
