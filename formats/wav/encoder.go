// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/towav/audio"
	"github.com/ik5/towav/utils"
)

const (
	headerSize     = 44
	bytesPerSample = 2
)

// writeHeader fills dst[:headerSize] with a canonical RIFF/PCM WAV header,
// little-endian throughout. dst must be at least headerSize bytes.
func writeHeader(dst []byte, sampleRate, channels, frames int) {
	dataSize := uint32(frames * channels * bytesPerSample)
	byteRate := uint32(sampleRate * channels * bytesPerSample)
	blockAlign := uint16(channels * bytesPerSample)

	// RIFF header (12 bytes)
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], 36+dataSize)
	copy(dst[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(dst[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(dst[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], byteRate)
	binary.LittleEndian.PutUint16(dst[32:34], blockAlign)
	binary.LittleEndian.PutUint16(dst[34:36], 16) // bits per sample

	// data chunk header (8 bytes)
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}

// Encode converts a planar float32 PCM buffer into a complete 16-bit PCM WAV
// file and returns its bytes. The output is always 44 + frames*channels*2
// bytes; a buffer with zero frames yields a valid header-only file.
//
// Samples are clamped to [-1, 1], quantized with utils.Float32ToInt16, and
// interleaved frame-major, channel-minor as the WAV data chunk requires.
//
// Encode does not mutate buf and performs no I/O, so it is safe to call
// concurrently on independent buffers. Structurally invalid buffers fail with
// one of the audio package sentinel errors.
func Encode(buf *audio.Buffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	channels := buf.Channels()
	frames := buf.Frames()

	out := make([]byte, headerSize+frames*channels*bytesPerSample)
	writeHeader(out, buf.SampleRate, channels, frames)

	pos := headerSize
	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			v := utils.Float32ToInt16(buf.Data[c][f])
			binary.LittleEndian.PutUint16(out[pos:pos+bytesPerSample], uint16(v))
			pos += bytesPerSample
		}
	}

	return out, nil
}

// WritePCM16 writes a 16-bit PCM WAV at sampleRate to w. samples must be
// interleaved int16 PCM holding a whole number of frames.
// This uses an optimized implementation for minimal allocations.
func WritePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 {
		return audio.ErrNoChannels
	}
	if sampleRate < 1 {
		return audio.ErrInvalidSampleRate
	}
	if len(samples)%channels != 0 {
		return ErrPartialFrame
	}

	header := make([]byte, headerSize)
	writeHeader(header, sampleRate, channels, len(samples)/channels)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write data in chunks to bound the conversion buffer for large files
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*bytesPerSample)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*bytesPerSample]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
