package placeholder_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/glizzus/assetgen/internal/batch"
	"github.com/glizzus/assetgen/internal/placeholder"
)

func TestGenerateCreatesDirectoryAndFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "audio")
	tracks := []placeholder.Track{
		{Filename: "electric-dreams.mp3", Seconds: 3},
		{Filename: "midnight-groove.mp3", Seconds: 1.5},
	}

	results, err := placeholder.Generate(t.Context(), dir, tracks)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if err := results.Err(); err != nil {
		t.Fatalf("expected all tracks to succeed, got %v", err)
	}
	if len(results) != len(tracks) {
		t.Fatalf("expected %d results, got %d", len(tracks), len(results))
	}

	for i, track := range tracks {
		r := results[i]
		wantPath := filepath.Join(dir, track.Filename)
		if r.Name != track.Filename || r.Path != wantPath {
			t.Errorf("result %d = %+v, want name %q path %q", i, r, track.Filename, wantPath)
		}
		if want := placeholder.Size(track.Seconds); r.Size != want {
			t.Errorf("result %d size = %d, want %d", i, r.Size, want)
		}
		if _, err := os.Stat(wantPath); err != nil {
			t.Errorf("expected %s to exist: %v", wantPath, err)
		}
	}
}

func TestGenerateContinuesAfterFailedTrack(t *testing.T) {
	dir := t.TempDir()
	tracks := []placeholder.Track{
		{Filename: "cosmic-voyage.mp3", Seconds: 1},
		{Filename: filepath.Join("missing", "urban-pulse.mp3"), Seconds: 1},
		{Filename: "sunset-boulevard.mp3", Seconds: 1},
	}

	results, err := placeholder.Generate(t.Context(), dir, tracks)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if !results[0].OK() || !results[2].OK() {
		t.Errorf("expected tracks around the failure to succeed, got %+v", results)
	}
	if results[1].OK() {
		t.Fatalf("expected track in missing directory to fail")
	}

	var jobErr *batch.JobError
	if !errors.As(results.Err(), &jobErr) || jobErr.Name != tracks[1].Filename {
		t.Errorf("expected JobError for %q, got %v", tracks[1].Filename, results.Err())
	}
	if _, err := os.Stat(filepath.Join(dir, "sunset-boulevard.mp3")); err != nil {
		t.Errorf("expected track after the failure to be written: %v", err)
	}
}

func TestGenerateUnusableDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	_, err := placeholder.Generate(t.Context(), filepath.Join(file, "audio"), nil)
	if err == nil {
		t.Fatal("expected error when the output directory cannot be created")
	}
}
