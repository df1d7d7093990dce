// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource generates deterministic audio data for tests. It implements the
// audio.Source interface (without importing it, so it stays dependency-free).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // frames to generate (samples per channel)
	generated   int // frames generated so far
	waveform    func(frame int, channel int) float32
}

// NewMockSource creates a mock source producing totalFrames frames, with
// sample values taken from waveform.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return 0.0
	})
}

// NewConstantSource creates a mock source with the same value on every channel.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return value
	})
}

// NewSineSource creates a mock source that generates a sine wave on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalFrames - m.generated
	framesToWrite := min(framesRequested, framesAvailable)

	for frame := 0; frame < framesToWrite; frame++ {
		frameIndex := m.generated + frame
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(frameIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalFrames {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
