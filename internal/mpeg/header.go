package mpeg

import "encoding/binary"

// HeaderSize is the size in bytes of an encoded frame header.
const HeaderSize = 4

// SyncWord has all eleven frame sync bits set.
const SyncWord = 0x7FF

type Version uint8

const (
	VersionMPEG25 Version = iota
	VersionReserved
	VersionMPEG2
	VersionMPEG1
)

type Layer uint8

const (
	LayerReserved Layer = iota
	LayerIII
	LayerII
	LayerI
)

type ChannelMode uint8

const (
	Stereo ChannelMode = iota
	JointStereo
	DualChannel
	Mono
)

// FrameHeader holds the fields of a single frame header.
type FrameHeader struct {
	Sync             uint16
	Version          Version
	Layer            Layer
	ProtectionAbsent bool
	BitrateIndex     uint8
	SampleRateIndex  uint8
	Padding          bool
	Private          bool
	ChannelMode      ChannelMode
	ModeExtension    uint8
	Copyright        bool
	Original         bool
	Emphasis         uint8
}

// DefaultHeader returns the header used for placeholder files:
// MPEG-1 Layer III, no CRC, mono, with the given bitrate and sample rate indices.
func DefaultHeader(bitrateIndex, sampleRateIndex uint8) FrameHeader {
	return FrameHeader{
		Sync:             SyncWord,
		Version:          VersionMPEG1,
		Layer:            LayerIII,
		ProtectionAbsent: true,
		BitrateIndex:     bitrateIndex,
		SampleRateIndex:  sampleRateIndex,
		ChannelMode:      Mono,
	}
}

// Pack shifts each field into its bit position and ORs them together.
func (h FrameHeader) Pack() uint32 {
	return uint32(h.Sync)<<21 |
		uint32(h.Version)<<19 |
		uint32(h.Layer)<<17 |
		btou(h.ProtectionAbsent)<<16 |
		uint32(h.BitrateIndex)<<12 |
		uint32(h.SampleRateIndex)<<10 |
		btou(h.Padding)<<9 |
		btou(h.Private)<<8 |
		uint32(h.ChannelMode)<<6 |
		uint32(h.ModeExtension)<<4 |
		btou(h.Copyright)<<3 |
		btou(h.Original)<<2 |
		uint32(h.Emphasis)
}

// Bytes returns the packed header in big-endian order.
func (h FrameHeader) Bytes() [HeaderSize]byte {
	var b [HeaderSize]byte
	binary.BigEndian.PutUint32(b[:], h.Pack())
	return b
}

// HasSync reports whether all sync bits are set.
func (h FrameHeader) HasSync() bool {
	return h.Sync == SyncWord
}

// Unpack decodes a packed header word.
func Unpack(word uint32) FrameHeader {
	return FrameHeader{
		Sync:             uint16(word >> 21 & 0x7FF),
		Version:          Version(word >> 19 & 0x3),
		Layer:            Layer(word >> 17 & 0x3),
		ProtectionAbsent: word>>16&0x1 == 1,
		BitrateIndex:     uint8(word >> 12 & 0xF),
		SampleRateIndex:  uint8(word >> 10 & 0x3),
		Padding:          word>>9&0x1 == 1,
		Private:          word>>8&0x1 == 1,
		ChannelMode:      ChannelMode(word >> 6 & 0x3),
		ModeExtension:    uint8(word >> 4 & 0x3),
		Copyright:        word>>3&0x1 == 1,
		Original:         word>>2&0x1 == 1,
		Emphasis:         uint8(word & 0x3),
	}
}

// UnpackBytes decodes the first four bytes of b. It panics if b is shorter.
func UnpackBytes(b []byte) FrameHeader {
	return Unpack(binary.BigEndian.Uint32(b[:HeaderSize]))
}

// EncodeHeader packs the default placeholder header for the given indices.
func EncodeHeader(bitrateIndex, sampleRateIndex uint8) [HeaderSize]byte {
	return DefaultHeader(bitrateIndex, sampleRateIndex).Bytes()
}

func btou(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
