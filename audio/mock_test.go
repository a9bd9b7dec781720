package audio

import (
	"io"
	"math"
)

// mockSource generates deterministic audio for tests.
type mockSource struct {
	sampleRate   int
	channels     int
	totalFrames  int // frames to generate
	generated    int // frames generated so far
	waveform     func(frame, channel int) float32
}

func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func newSilentSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return 0.0
	})
}

func newSineSource(sampleRate, channels, totalFrames int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func newConstantSource(sampleRate, channels, totalFrames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *mockSource) Reset() {
	m.generated = 0
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.totalFrames - m.generated; frames > remaining {
		frames = remaining
	}

	for f := 0; f < frames; f++ {
		idx := m.generated + f
		for ch := 0; ch < m.channels; ch++ {
			dst[f*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += frames
	written := frames * m.channels

	if m.generated >= m.totalFrames {
		return written, io.EOF
	}

	return written, nil
}
