// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE containers for the ambio tooling.
//
// The package covers the two canonical PCM encodings the project uses:
// unsigned 8-bit (the firmware's embedded format) and signed 16-bit
// little-endian.
//
// # Writing WAV Files
//
// WriteWAV8 wraps raw firmware audio bytes in a complete container:
//
//	data := []byte{0x80, 0x90, 0x80, 0x70} // unsigned 8-bit samples
//	file, _ := os.Create("startup.wav")
//	err := wav.WriteWAV8(file, 44100, data)
//
// WriteWAV16 does the same for 16-bit samples. Both delegate header
// synthesis to EncodeHeader, which works for any non-negative payload
// length, including zero: the header always declares exactly the sizes of
// the bytes that follow.
//
// # Header Layout
//
// EncodeHeader emits the fixed 44-byte layout, little-endian throughout:
//
//	RIFF chunk  (12 bytes): "RIFF", total size - 8, "WAVE"
//	fmt  chunk  (24 bytes): "fmt ", 16, PCM=1, channels, sample rate,
//	                        byte rate, block align, bits per sample
//	data chunk  ( 8 bytes): "data", payload size
//
// # Decoding
//
// The Decoder handles files using that same canonical layout:
//
//	src, err := wav.Decoder{}.Decode(file)
//	// src yields float32 samples in [-1, 1]
//
// Files with additional chunks between fmt and data are rejected with
// ErrUnsupportedWavChunks; this package trades chunk walking for a layout
// it can verify byte-for-byte.
//
// # Verification
//
// Probe parses a header through github.com/go-audio/wav, an independent
// conformant reader, and reports the format plus data length. The extract
// tool uses it to cross-check its own output.
package wav
