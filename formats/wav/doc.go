// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV (RIFF) PCM 16-bit encoding and decoding.
//
// The encoder is the core of this module: it turns decoded PCM held in an
// audio.Buffer into a complete, byte-exact WAV file. Decoding uses the
// github.com/go-audio/wav library.
//
// # Encoding
//
// Use Encode to produce a WAV file from planar float32 PCM:
//
//	buf := audio.NewBuffer(44100, 2, frames)
//	// ... fill buf.Data[0] and buf.Data[1] with samples in [-1, 1]
//	data, err := wav.Encode(buf)
//	if err != nil {
//	    // structurally invalid buffer
//	}
//	os.WriteFile("output.wav", data, 0o644)
//
// The output layout is the canonical 44-byte header (RIFF, fmt, data chunks)
// followed by interleaved little-endian 16-bit samples. Samples are clamped
// to [-1, 1] and quantized with an asymmetric scale so that -1.0 reaches
// -32768 and +1.0 reaches 32767.
//
// For audio that is already quantized, WritePCM16 streams interleaved int16
// samples to any io.Writer:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	wav.WritePCM16(file, 8000, 1, samples)
//
// # Decoding
//
// Use the Decoder to read PCM 16-bit WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides interleaved samples as
// float32 values in the range [-1.0, 1.0].
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit integer PCM is supported
//   - ErrUnsupportedWavLayout: unsupported WAV file structure
//   - ErrPartialFrame: WritePCM16 was given a sample count that does not
//     divide into whole frames
//
// Encode reports structurally invalid buffers with the audio package
// sentinels (audio.ErrNoChannels, audio.ErrUnevenChannels,
// audio.ErrInvalidSampleRate).
//
// # Concurrency
//
// Encode is a pure function: it reads only its input and writes only to its
// own freshly allocated output, so independent encodes may run concurrently
// without coordination. Encoding time grows with frames times channels;
// callers with latency-sensitive threads should run large encodes elsewhere.
package wav
