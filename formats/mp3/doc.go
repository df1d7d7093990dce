// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding as an upstream source for WAV
// encoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams into
// PCM samples.
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
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
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (go-mp3 always produces stereo)
//   - Sample rate: depends on the MP3 stream (typically 44.1kHz or 48kHz)
//
// To get a mono WAV, collect the source into an audio.Buffer and call
// Downmix before encoding.
//
// # Limitations
//
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo
package mp3
