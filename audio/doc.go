// SPDX-License-Identifier: EPL-2.0

// Package audio defines the PCM primitives shared by the towav module.
//
// It contains the upstream contract (Source, Decoder, Registry) that format
// packages implement, and the planar Buffer the WAV encoder consumes.
//
// # Source Interface
//
// The Source interface is the boundary to upstream decoders:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Decoders produce interleaved float32 samples in [-1.0, 1.0]. ReadSamples
// returns io.EOF with n == 0 once the stream is finished.
//
// # Buffer
//
// Buffer is planar PCM: one float32 slice per channel, all the same length.
// It is the input shape the wav encoder works on. ReadAll drains any Source
// into a Buffer, deinterleaving frames into channel planes:
//
//	src, _ := decoder.Decode(file)
//	buf, err := audio.ReadAll(src, 4096)
//
// Downmix averages all channels into a mono Buffer when single-channel
// output is wanted:
//
//	mono, err := buf.Downmix()
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Upstream decoders may overshoot this range slightly; consumers such as the
// wav encoder clamp before quantizing.
//
// # Error Handling
//
// Structural problems with buffers are reported with sentinel errors
// (ErrNoChannels, ErrUnevenChannels, ErrInvalidSampleRate) that callers can
// match with errors.Is. Streaming functions return io.EOF at end of data:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
