package mpeg_test

import (
	"testing"

	"github.com/glizzus/assetgen/internal/mpeg"
)

func TestDefaultProfileFrameSize(t *testing.T) {
	p := mpeg.DefaultProfile
	if got := p.ComputedFrameSize(); got != p.FrameSize {
		t.Errorf("ComputedFrameSize() = %d, want stored FrameSize %d", got, p.FrameSize)
	}
	if got := mpeg.BitrateKbps(p.BitrateIndex); got != p.BitrateKbps {
		t.Errorf("BitrateKbps(%d) = %d, want %d", p.BitrateIndex, got, p.BitrateKbps)
	}
	if got := mpeg.SampleRateHz(p.SampleRateIndex); got != p.SampleRate {
		t.Errorf("SampleRateHz(%d) = %d, want %d", p.SampleRateIndex, got, p.SampleRate)
	}
}

func TestFrameCount(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    int
	}{
		{name: "zero", seconds: 0, want: 0},
		{name: "negative", seconds: -5, want: 0},
		{name: "shorter than a frame", seconds: 0.01, want: 0},
		{name: "one frame", seconds: 0.026, want: 1},
		{name: "one second", seconds: 1, want: 38},
		{name: "electric dreams", seconds: 203, want: 7807},
		{name: "cosmic voyage", seconds: 247, want: 9500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mpeg.DefaultProfile.FrameCount(tt.seconds); got != tt.want {
				t.Errorf("FrameCount(%v) = %d, want %d", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestLookupTablesOutOfRange(t *testing.T) {
	if got := mpeg.BitrateKbps(16); got != 0 {
		t.Errorf("BitrateKbps(16) = %d, want 0", got)
	}
	if got := mpeg.SampleRateHz(3); got != 0 {
		t.Errorf("SampleRateHz(3) = %d, want 0", got)
	}
}
