package presenters

import (
	"fmt"
	"io"

	"github.com/glizzus/assetgen/internal/batch"
	"github.com/glizzus/assetgen/internal/placeholder"
)

const (
	okMark   = "✓"
	failMark = "✗"
)

// WriteResults prints one line per batch result, in order.
func WriteResults(w io.Writer, results batch.Results) error {
	for _, r := range results {
		var err error
		if r.OK() {
			_, err = fmt.Fprintf(w, "%s %s (%s)\n", okMark, r.Path, formatKB(r.Size))
		} else {
			err = WriteFailure(w, r.Path, r.Err)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func WriteFailure(w io.Writer, path string, cause error) error {
	_, err := fmt.Fprintf(w, "%s %s: %v\n", failMark, path, cause)
	return err
}

// WriteSummary prints an inspected file followed by each distinct frame
// header it contains.
func WriteSummary(w io.Writer, path string, s *placeholder.Summary) error {
	if _, err := fmt.Fprintf(w, "%s %s: ID3v2.%d, %d frames, %s\n",
		okMark, path, s.TagVersion, s.Frames, s.Duration); err != nil {
		return err
	}
	for _, h := range s.Headers {
		if _, err := fmt.Fprintf(w, "    header %#08x\n", h.Pack()); err != nil {
			return err
		}
	}
	return nil
}

func formatKB(size int64) string {
	return fmt.Sprintf("%.1f KB", float64(size)/1024)
}
