// SPDX-License-Identifier: EPL-2.0

package towav

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/towav/audio"
	"github.com/ik5/towav/formats/aiff"
	"github.com/ik5/towav/formats/mp3"
	"github.com/ik5/towav/formats/vorbis"
	"github.com/ik5/towav/formats/wav"
)

// ErrUnknownFormat is returned by FromReader when no decoder is registered
// for the requested format.
var ErrUnknownFormat = errors.New("unknown audio format")

// defaultRegistry holds the decoders this module ships with, keyed by the
// usual file extensions.
var defaultRegistry = audio.NewRegistry()

func init() {
	defaultRegistry.Register("wav", wav.Decoder{})
	defaultRegistry.Register("mp3", mp3.Decoder{})
	defaultRegistry.Register("ogg", vorbis.Decoder{})
	defaultRegistry.Register("aiff", aiff.Decoder{})
	defaultRegistry.Register("aif", aiff.Decoder{})
}

// DecoderFor returns the built-in decoder registered for format (e.g., "wav",
// "mp3", "ogg", "aiff").
func DecoderFor(format string) (audio.Decoder, bool) {
	return defaultRegistry.Get(format)
}

// FromSource drains src and encodes everything it produced as a 16-bit PCM
// WAV file.
//
// The pipeline is:
//  1. Read interleaved float32 samples from src until io.EOF
//  2. Deinterleave them into a planar audio.Buffer
//  3. Encode the buffer with wav.Encode
//
// bufferSize is the read chunk size in samples (e.g., 4096); larger buffers
// may be more efficient but use more memory.
//
// Encoding is CPU-bound in the total sample count; callers on
// latency-sensitive paths should run it on a background goroutine.
func FromSource(src audio.Source, bufferSize int) ([]byte, error) {
	buf, err := audio.ReadAll(src, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	data, err := wav.Encode(buf)
	if err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}

	return data, nil
}

// FromReader decodes r with the built-in decoder for format and returns the
// audio re-encoded as a 16-bit PCM WAV file.
//
// Decode failures and encode failures are wrapped distinctly ("decoding
// <format>" vs "encoding wav") so callers can surface actionable diagnostics.
func FromReader(r io.Reader, format string) ([]byte, error) {
	dec, ok := DecoderFor(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	defer src.Close()

	return FromSource(src, 4096)
}
