// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding as an upstream source for WAV
// encoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. Only
// PCM 16-bit content is supported.
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedAiffLayout: unsupported AIFF file structure
package aiff
