// Package placeholder writes silent MP3 files used as stand-ins for music
// tracks until real audio is available.
//
// A placeholder is an empty ID3v2.3 tag followed by identical 128 kbps,
// 44.1 kHz, mono Layer III frames whose payload is all zeros. Decoders accept
// the stream and play silence for roughly the requested duration.
package placeholder
