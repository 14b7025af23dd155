// Package mpeg packs and unpacks MPEG audio frame headers.
//
// A frame header is a 32-bit big-endian word. From the most significant bit:
//
//	sync(11) version(2) layer(2) protection(1) bitrate(4) samplerate(2)
//	padding(1) private(1) channel(2) modeext(2) copyright(1) original(1) emphasis(2)
//
// Packing does not validate field widths. A value wider than its field spills
// into the neighbouring fields, so callers must pass valid indices.
package mpeg
