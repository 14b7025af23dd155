package mpeg

// MPEG-1 Layer III bitrates in kbps, indexed by the bitrate field.
// Index 0 is "free format" and 15 is invalid.
var layerIIIBitrates = [16]int{
	0, 32, 40, 48, 56, 64, 80, 96,
	112, 128, 160, 192, 224, 256, 320, 0,
}

// MPEG-1 sample rates in Hz, indexed by the sample rate field.
var mpeg1SampleRates = [4]int{44100, 48000, 32000, 0}

// BitrateKbps returns the MPEG-1 Layer III bitrate for index, or 0 if the
// index is free format, invalid or out of range.
func BitrateKbps(index uint8) int {
	if int(index) >= len(layerIIIBitrates) {
		return 0
	}
	return layerIIIBitrates[index]
}

// SampleRateHz returns the MPEG-1 sample rate for index, or 0 if reserved.
func SampleRateHz(index uint8) int {
	if int(index) >= len(mpeg1SampleRates) {
		return 0
	}
	return mpeg1SampleRates[index]
}

// Profile describes the fixed encoding parameters of a placeholder file.
//
// FrameSize and FrameDuration are stored rather than derived. Changing the
// bitrate or sample rate requires updating them too; ComputedFrameSize gives
// the value FrameSize must agree with.
type Profile struct {
	BitrateKbps     int
	SampleRate      int
	BitrateIndex    uint8
	SampleRateIndex uint8
	SamplesPerFrame int
	FrameSize       int
	// FrameDuration is in seconds.
	FrameDuration float64
}

// DefaultProfile is 128 kbps, 44.1 kHz, mono.
var DefaultProfile = Profile{
	BitrateKbps:     128,
	SampleRate:      44100,
	BitrateIndex:    9,
	SampleRateIndex: 0,
	SamplesPerFrame: 1152,
	FrameSize:       417,
	FrameDuration:   0.026,
}

// Header returns the frame header for this profile.
func (p Profile) Header() FrameHeader {
	return DefaultHeader(p.BitrateIndex, p.SampleRateIndex)
}

// ComputedFrameSize is floor(144 * bitrate / sampleRate) for an unpadded
// Layer III frame.
func (p Profile) ComputedFrameSize() int {
	if p.SampleRate == 0 {
		return 0
	}
	return 144 * p.BitrateKbps * 1000 / p.SampleRate
}

// FrameCount returns floor(seconds / FrameDuration). Non-positive durations
// yield zero frames.
func (p Profile) FrameCount(seconds float64) int {
	if seconds <= 0 || p.FrameDuration <= 0 {
		return 0
	}
	return int(seconds / p.FrameDuration)
}
