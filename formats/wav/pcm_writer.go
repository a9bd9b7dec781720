// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the length of the canonical RIFF/fmt/data PCM header.
const HeaderSize = 44

// Format describes an uncompressed PCM stream for header synthesis.
type Format struct {
	SampleRate    int
	BitsPerSample int
	Channels      int
}

// ByteRate is the number of data bytes consumed per second of playback.
func (f Format) ByteRate() int {
	return f.SampleRate * f.Channels * f.BitsPerSample / 8
}

// BlockAlign is the number of bytes in one frame across all channels.
func (f Format) BlockAlign() int {
	return f.Channels * f.BitsPerSample / 8
}

// EncodeHeader serializes the canonical 44-byte WAV header for a PCM stream
// of dataSize payload bytes. The declared RIFF chunk size is always
// 4 + (8 + 16) + (8 + dataSize), so the header stays consistent with the
// payload that follows it, including for dataSize 0. The payload itself is
// never touched.
func EncodeHeader(f Format, dataSize uint32) []byte {
	h := make([]byte, HeaderSize)

	// RIFF chunk
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], 36+dataSize)
	copy(h[8:12], "WAVE")

	// fmt subchunk, fixed 16-byte body for uncompressed PCM
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(h[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(h[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(h[34:36], uint16(f.BitsPerSample))

	// data subchunk
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}

// WriteWAV8 writes a mono unsigned 8-bit PCM WAV at sampleRate. data is the
// raw sample payload (one byte per sample, 0x80 = silence), written verbatim
// after the header.
func WriteWAV8(w io.Writer, sampleRate int, data []byte) error {
	f := Format{SampleRate: sampleRate, BitsPerSample: 8, Channels: 1}

	if _, err := w.Write(EncodeHeader(f, uint32(len(data)))); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(data) == 0 {
		return nil
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteWAV16 writes a mono signed 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	f := Format{SampleRate: sampleRate, BitsPerSample: 16, Channels: 1}

	if _, err := w.Write(EncodeHeader(f, uint32(len(samples)*2))); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Serialize in chunks to bound the scratch buffer on large clips
	const chunkFrames = 8192
	buf := make([]byte, min(len(samples), chunkFrames)*2)

	for i := 0; i < len(samples); i += chunkFrames {
		chunk := samples[i:min(i+chunkFrames, len(samples))]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
