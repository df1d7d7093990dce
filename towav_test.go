// SPDX-License-Identifier: EPL-2.0

package towav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/ik5/towav/audio"
	"github.com/ik5/towav/formats/wav"
	"github.com/ik5/towav/internal/audiotest"
)

func TestFromSource_Stereo(t *testing.T) {
	t.Parallel()

	// One second of stereo audio at 44.1kHz
	src := audiotest.NewSineSource(44100, 2, 44100, 440.0)

	data, err := FromSource(src, 4096)
	if err != nil {
		t.Fatalf("FromSource() error = %v", err)
	}

	if want := 44 + 44100*2*2; len(data) != want {
		t.Errorf("len(FromSource()) = %d, want %d", len(data), want)
	}

	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}

	if channels := binary.LittleEndian.Uint16(data[22:24]); channels != 2 {
		t.Errorf("num channels = %d, want 2", channels)
	}

	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != 44100 {
		t.Errorf("sample rate = %d, want 44100", rate)
	}
}

func TestFromSource_ConstantValue(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 100, 0.5)

	data, err := FromSource(src, 4096)
	if err != nil {
		t.Fatalf("FromSource() error = %v", err)
	}

	// 0.5 quantizes to 16383 (truncated from 16383.5)
	for i := 0; i < 100; i++ {
		offset := 44 + i*2
		got := int16(binary.LittleEndian.Uint16(data[offset : offset+2]))
		if got != 16383 {
			t.Fatalf("sample[%d] = %d, want 16383", i, got)
		}
	}
}

func TestFromSource_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 0)

	data, err := FromSource(src, 4096)
	if err != nil {
		t.Fatalf("FromSource() error = %v", err)
	}

	if len(data) != 44 {
		t.Errorf("len(FromSource()) = %d, want 44 (header only)", len(data))
	}
}

func TestFromReader_WavRoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1000, -1000, 16000, -16000, 32767, -32768, 7}
	wavData := new(bytes.Buffer)
	if err := wav.WritePCM16(wavData, 16000, 2, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	data, err := FromReader(bytes.NewReader(wavData.Bytes()), "wav")
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}

	if want := 44 + len(samples)*2; len(data) != want {
		t.Fatalf("len(FromReader()) = %d, want %d", len(data), want)
	}

	// Positive samples lose up to 1 LSB across the float round trip because
	// quantization truncates; negatives survive exactly
	for i, original := range samples {
		offset := 44 + i*2
		got := int16(binary.LittleEndian.Uint16(data[offset : offset+2]))
		diff := int(got) - int(original)
		if diff < -1 || diff > 1 {
			t.Errorf("sample[%d] = %d, want %d ±1", i, got, original)
		}
	}
}

func TestFromReader_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := FromReader(bytes.NewReader([]byte{1, 2, 3}), "flac")

	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("FromReader() error = %v, want ErrUnknownFormat", err)
	}
}

func TestFromReader_DecodeFailureIsDistinct(t *testing.T) {
	t.Parallel()

	_, err := FromReader(bytes.NewReader([]byte("not audio at all")), "wav")
	if err == nil {
		t.Fatal("FromReader() error = nil, want decode error")
	}

	if !strings.Contains(err.Error(), "decoding wav") {
		t.Errorf("FromReader() error = %q, want it to identify the decode stage", err)
	}

	if strings.Contains(err.Error(), "encoding wav") {
		t.Errorf("FromReader() error = %q, must not report an encode failure", err)
	}
}

func TestDecoderFor_BuiltinFormats(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"wav", "mp3", "ogg", "aiff", "aif"} {
		if _, ok := DecoderFor(format); !ok {
			t.Errorf("DecoderFor(%q) = false, want a built-in decoder", format)
		}
	}

	if _, ok := DecoderFor("flac"); ok {
		t.Error("DecoderFor(\"flac\") = true, want false")
	}
}

func TestFromSource_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := FromSource(audiotest.NewSineSource(8000, 2, 800, 100.0), 512)
	if err != nil {
		t.Fatalf("FromSource() error = %v", err)
	}

	second, err := FromSource(audiotest.NewSineSource(8000, 2, 800, 100.0), 512)
	if err != nil {
		t.Fatalf("FromSource() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("FromSource() output differs for identical sources")
	}
}

func TestFromSource_DownmixedPipeline(t *testing.T) {
	t.Parallel()

	// Opposite-phase channels cancel to silence when downmixed
	src := audiotest.NewMockSource(8000, 2, 100, func(frame, channel int) float32 {
		if channel == 0 {
			return 0.5
		}
		return -0.5
	})

	buf, err := audio.ReadAll(src, 4096)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	mono, err := buf.Downmix()
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	data, err := wav.Encode(mono)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if want := 44 + 100*2; len(data) != want {
		t.Fatalf("len(Encode()) = %d, want %d", len(data), want)
	}

	for i := 0; i < 100; i++ {
		offset := 44 + i*2
		if got := int16(binary.LittleEndian.Uint16(data[offset : offset+2])); got != 0 {
			t.Fatalf("sample[%d] = %d, want 0 (cancelled)", i, got)
		}
	}
}

// BenchmarkFromSource benchmarks the full drain-and-encode pipeline
func BenchmarkFromSource(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src := audiotest.NewSineSource(44100, 2, 44100, 440.0)
		_, _ = FromSource(src, 4096)
	}
}
