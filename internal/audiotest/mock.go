// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides mock audio sources for tests and examples.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates deterministic audio data. It satisfies the
// audio.Source interface (without importing it, to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // frames to generate
	generated   int // frames generated so far
	waveform    func(frame, channel int) float32
}

// NewMockSource creates a source producing totalFrames frames where each
// sample value comes from waveform(frameIndex, channel).
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a source of all-zero samples.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a source producing a sine tone at frequency Hz.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a source of a fixed sample value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
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
