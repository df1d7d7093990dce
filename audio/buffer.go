// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer holds decoded PCM as planar float32 data: one sample slice per
// channel, all of equal length. Samples are nominally in [-1, 1] but may
// overshoot slightly; consumers are expected to clamp.
//
// A Buffer is plain data with no lifecycle. It is read-only to encoders.
type Buffer struct {
	// SampleRate of the PCM data in Hz.
	SampleRate int
	// Data holds one slice of samples per channel, channel 0 first.
	Data [][]float32
}

// NewBuffer allocates a zeroed Buffer with the given shape.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &Buffer{
		SampleRate: sampleRate,
		Data:       data,
	}
}

// Channels reports the number of channel planes.
func (b *Buffer) Channels() int { return len(b.Data) }

// Frames reports the number of samples per channel.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Validate checks the structural invariants: at least one channel, a positive
// sample rate, and equal-length channel planes. Zero frames is valid.
func (b *Buffer) Validate() error {
	if len(b.Data) == 0 {
		return ErrNoChannels
	}

	if b.SampleRate < 1 {
		return ErrInvalidSampleRate
	}

	frames := len(b.Data[0])
	for _, ch := range b.Data[1:] {
		if len(ch) != frames {
			return ErrUnevenChannels
		}
	}

	return nil
}

// Downmix averages all channels into a new single-channel Buffer at the same
// sample rate. A mono buffer is copied as-is.
func (b *Buffer) Downmix() (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	channels := b.Channels()
	frames := b.Frames()
	out := NewBuffer(b.SampleRate, 1, frames)

	if channels == 1 {
		copy(out.Data[0], b.Data[0])
		return out, nil
	}

	scale := float32(1.0) / float32(channels)
	for f := 0; f < frames; f++ {
		sum := float32(0)
		for c := 0; c < channels; c++ {
			sum += b.Data[c][f]
		}
		out.Data[0][f] = sum * scale
	}

	return out, nil
}

// ReadAll drains src into a planar Buffer, deinterleaving frames into
// per-channel planes. bufferSize is the read chunk size in samples; it is
// rounded down to a whole number of frames, with a sane default when too
// small.
func ReadAll(src Source, bufferSize int) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	if bufferSize < channels {
		bufferSize = 4096 * channels
	}
	bufferSize -= bufferSize % channels

	b := &Buffer{
		SampleRate: src.SampleRate(),
		Data:       make([][]float32, channels),
	}
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		frames := n / channels
		for f := 0; f < frames; f++ {
			for c := 0; c < channels; c++ {
				b.Data[c] = append(b.Data[c], buf[f*channels+c])
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	// Channels of an empty stream still need non-nil planes
	for c := range b.Data {
		if b.Data[c] == nil {
			b.Data[c] = []float32{}
		}
	}

	return b, nil
}
