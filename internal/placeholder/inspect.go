package placeholder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/bogem/id3v2/v2"
	"github.com/glizzus/assetgen/internal/mpeg"
)

var (
	ErrBadSync          = errors.New("frame header is missing sync bits")
	ErrUnsupportedFrame = errors.New("unsupported bitrate or sample rate")
)

// Summary describes a parsed placeholder stream.
type Summary struct {
	TagVersion byte
	Frames     int
	// Headers lists each distinct frame header in the order first seen.
	Headers  []mpeg.FrameHeader
	Duration time.Duration
}

// Inspect parses a stream written by WriteTo: an ID3v2 tag header followed by
// MPEG-1 Layer III frames. It returns an error on the first frame that has no
// sync bits, an unsupported bitrate or sample rate, or is truncated.
func Inspect(r io.Reader) (*Summary, error) {
	var tagHeader [len(ContainerHeader)]byte
	if _, err := io.ReadFull(r, tagHeader[:]); err != nil {
		return nil, fmt.Errorf("failed to read tag header: %w", err)
	}
	tag, err := id3v2.ParseReader(bytes.NewReader(tagHeader[:]), id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to parse tag header: %w", err)
	}

	summary := &Summary{TagVersion: tag.Version()}
	var samples, sampleRate int

	for {
		var raw [mpeg.HeaderSize]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("frame %d: failed to read header: %w", summary.Frames, err)
		}

		header := mpeg.UnpackBytes(raw[:])
		if !header.HasSync() {
			return nil, fmt.Errorf("frame %d: %w", summary.Frames, ErrBadSync)
		}

		bitrate := mpeg.BitrateKbps(header.BitrateIndex)
		rate := mpeg.SampleRateHz(header.SampleRateIndex)
		if bitrate == 0 || rate == 0 {
			return nil, fmt.Errorf("frame %d: %w", summary.Frames, ErrUnsupportedFrame)
		}

		frameSize := 144 * bitrate * 1000 / rate
		if header.Padding {
			frameSize++
		}
		if _, err := io.CopyN(io.Discard, r, int64(frameSize-mpeg.HeaderSize)); err != nil {
			return nil, fmt.Errorf("frame %d: failed to read payload: %w", summary.Frames, err)
		}

		if !slices.Contains(summary.Headers, header) {
			summary.Headers = append(summary.Headers, header)
		}
		summary.Frames++
		samples += profile.SamplesPerFrame
		sampleRate = rate
	}

	if sampleRate > 0 {
		summary.Duration = time.Duration(samples) * time.Second / time.Duration(sampleRate)
	}
	return summary, nil
}
