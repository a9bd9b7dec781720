package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/daveio/ambio-systems/audio"
)

// pcmSource streams samples out of a WAV data chunk. Supports unsigned
// 8-bit and signed 16-bit little-endian PCM.
type pcmSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	bits       int
	buf        []byte
}

func (s *pcmSource) SampleRate() int { return s.sampleRate }
func (s *pcmSource) Channels() int   { return s.channels }
func (s *pcmSource) Close() error    { return nil }
func (s *pcmSource) BufSize() int    { return cap(s.buf) / (s.bits / 8) }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	bytesPerSample := s.bits / 8
	needed := len(dst) * bytesPerSample

	if cap(s.buf) < needed {
		s.buf = make([]byte, needed)
	}
	s.buf = s.buf[:needed]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / bytesPerSample
	if samples == 0 {
		return 0, io.EOF
	}

	switch s.bits {
	case 8:
		// Unsigned, midscale 0x80
		for i := 0; i < samples; i++ {
			dst[i] = (float32(s.buf[i]) - 128.0) / 128.0
		}
	case 16:
		for i := 0; i < samples; i++ {
			v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
			dst[i] = float32(v) / 32768.0
		}
	}

	return samples, nil
}

type Decoder struct{}

// Decode parses the canonical 44-byte WAV header layout: a RIFF chunk
// followed directly by "fmt " and "data" subchunks. Extra chunks before the
// data chunk are rejected rather than skipped.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	header := make([]byte, HeaderSize)

	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if !bytes.Equal(header[0:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	if !bytes.Equal(header[12:16], []byte("fmt ")) {
		return nil, ErrUnsupportedWavLayout
	}

	audioFormat := binary.LittleEndian.Uint16(header[20:22])
	channels := int(binary.LittleEndian.Uint16(header[22:24]))
	sampleRate := int(binary.LittleEndian.Uint32(header[24:28]))
	bits := int(binary.LittleEndian.Uint16(header[34:36]))

	if audioFormat != 1 {
		return nil, ErrUnsupportedWavLayout
	}

	if bits != 8 && bits != 16 {
		return nil, ErrUnsupportedBitDepth
	}

	if !bytes.Equal(header[36:40], []byte("data")) {
		return nil, ErrUnsupportedWavChunks
	}

	return &pcmSource{
		r:          r,
		sampleRate: sampleRate,
		channels:   channels,
		bits:       bits,
		buf:        make([]byte, 4096),
	}, nil
}
