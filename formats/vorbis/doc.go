// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding as an upstream source
// for WAV encoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams into PCM samples.
//
// # Decoding Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// Vorbis decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: as in the stream (mono or stereo typically)
//   - Sample rate: as in the stream (commonly 44.1kHz or 48kHz)
//
// For stereo files, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// # Limitations
//
//   - Vorbis writing is not supported (decoding only)
package vorbis
