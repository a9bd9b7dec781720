// SPDX-License-Identifier: EPL-2.0

package ambio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/daveio/ambio-systems/audio"
	"github.com/daveio/ambio-systems/carray"
	"github.com/daveio/ambio-systems/formats/aiff"
	"github.com/daveio/ambio-systems/formats/mp3"
	"github.com/daveio/ambio-systems/formats/vorbis"
	"github.com/daveio/ambio-systems/formats/wav"
)

// bufferSize is the per-read frame budget of the embedding pipeline.
const bufferSize = 4096

// DefaultRegistry returns a registry with every bundled decoder registered
// under its usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// EmbedAudio decodes the stream r as the format named by ext, converts it
// to the firmware's fixed sample format (8-bit unsigned PCM, mono,
// 44.1 kHz) and renders the result as a C uint8_t array declaration named
// arrayName. The declaration reads back byte-for-byte through ExtractWAV.
//
// ext follows file-extension conventions, with or without the leading dot;
// audio.ErrUnknownFormat (wrapped) reports an extension nothing is
// registered for.
func EmbedAudio(r io.Reader, ext, arrayName string) ([]byte, error) {
	dec, ok := DefaultRegistry().Lookup(ext)
	if !ok {
		return nil, fmt.Errorf("%s: %w", ext, audio.ErrUnknownFormat)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ext, err)
	}
	defer src.Close()

	data, _, err := audio.CollectPCM8(src, StartupSampleRate, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var buf bytes.Buffer
	if err := carray.Write(&buf, arrayName, data); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf.Bytes(), nil
}
