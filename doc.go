// SPDX-License-Identifier: EPL-2.0

// Package towav converts decoded audio into uncompressed PCM WAV files.
//
// The core of the module is a pure encoder: given multi-channel float32 PCM
// in an audio.Buffer it produces a byte-exact RIFF/PCM WAV file (44-byte
// header, 16-bit signed little-endian samples, frame-major channel-minor
// interleaving). Decoding compressed formats is delegated to upstream
// decoder packages that the encoder treats as opaque PCM producers.
//
// # Supported Input Formats
//
// The module ships decoders for:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// The simplest way to convert a file is FromReader:
//
//	file, _ := os.Open("audio.mp3")
//	data, err := towav.FromReader(file, "mp3")
//	if err != nil {
//	    // "decoding mp3: ..." or "encoding wav: ..."
//	}
//	os.WriteFile("audio.wav", data, 0o644)
//
// # Conversion Pipeline
//
// For more control, build the pipeline from its parts:
//
//	// Decode
//	decoder := mp3.Decoder{}
//	src, _ := decoder.Decode(file)
//
//	// Collect into a planar buffer
//	buf, _ := audio.ReadAll(src, 4096)
//
//	// Optionally downmix to mono
//	mono, _ := buf.Downmix()
//
//	// Encode
//	data, _ := wav.Encode(mono)
//
// # Encoding Guarantees
//
// The encoder is deterministic and side-effect-free: identical buffers yield
// byte-identical files, input is never mutated, and independent encodes are
// safe to run concurrently. Samples are clamped to [-1, 1] and quantized so
// the full signed 16-bit range is used (-1.0 maps to -32768, +1.0 to 32767).
//
// # Error Handling
//
// Structurally invalid buffers fail fast with sentinel errors from the audio
// package rather than producing malformed files. FromReader keeps decode
// failures and encode failures distinguishable so user-facing diagnostics
// stay actionable.
//
// See the individual subpackages for more detailed documentation.
package towav
