// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/towav/audio"
)

// oggReader is the subset of oggvorbis.Reader used by source, to allow testing.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis reads directly into a float32 slice and returns the number
	// of values written; only whole frames are produced
	usable := len(dst) - len(dst)%s.channels
	if usable == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:usable])
	if n == 0 && err != nil {
		return 0, err
	}

	return n, err
}

type Decoder struct{}

// Decode wraps an Ogg Vorbis stream as an audio.Source.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
