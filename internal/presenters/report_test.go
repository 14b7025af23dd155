package presenters_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/glizzus/assetgen/internal/batch"
	"github.com/glizzus/assetgen/internal/mpeg"
	"github.com/glizzus/assetgen/internal/placeholder"
	"github.com/glizzus/assetgen/internal/presenters"
	"github.com/google/go-cmp/cmp"
)

func TestWriteResults(t *testing.T) {
	tests := []struct {
		name  string
		input batch.Results
		want  string
	}{
		{
			name:  "no results",
			input: nil,
			want:  "",
		},
		{
			name: "mixed results",
			input: batch.Results{
				{Name: "a.mp3", Path: "out/a.mp3", Size: 3255529},
				{Name: "b.mp3", Path: "out/b.mp3", Err: errors.New("disk full")},
				{Name: "c.mp3", Path: "out/c.mp3", Size: 10},
			},
			want: "✓ out/a.mp3 (3179.2 KB)\n" +
				"✗ out/b.mp3: disk full\n" +
				"✓ out/c.mp3 (0.0 KB)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := presenters.WriteResults(&buf, tt.input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("WriteResults() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteSummary(t *testing.T) {
	summary := &placeholder.Summary{
		TagVersion: 3,
		Frames:     38,
		Headers:    []mpeg.FrameHeader{mpeg.DefaultHeader(9, 0)},
		Duration:   992653 * time.Microsecond,
	}

	var buf bytes.Buffer
	if err := presenters.WriteSummary(&buf, "a.mp3", summary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "✓ a.mp3: ID3v2.3, 38 frames, 992.653ms\n" +
		"    header 0xfffb90c0\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteSummary() mismatch (-want +got):\n%s", diff)
	}
}
