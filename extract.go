// SPDX-License-Identifier: EPL-2.0

package ambio

import (
	"bytes"
	"fmt"

	"github.com/daveio/ambio-systems/carray"
	"github.com/daveio/ambio-systems/formats/wav"
)

// Fixed format of the firmware's embedded startup clip.
const (
	StartupArrayName     = "wav_8bit_44100"
	StartupSampleRate    = 44100
	StartupBitsPerSample = 8
	StartupChannels      = 1
)

// ExtractWAV locates the uint8_t array arrayName in the C++ source text src
// and returns its bytes wrapped in a canonical 44-byte WAV header, declared
// as 8-bit unsigned PCM, mono, 44.1 kHz. The array bytes are copied into
// the data chunk unchanged.
//
// Running ExtractWAV twice over the same source yields byte-identical
// output. It returns carray.ErrArrayNotFound (wrapped) when the array is
// missing; no partial output is produced in that case.
func ExtractWAV(src []byte, arrayName string) ([]byte, error) {
	data, err := carray.Extract(src, arrayName)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var buf bytes.Buffer
	buf.Grow(wav.HeaderSize + len(data))

	if err := wav.WriteWAV8(&buf, StartupSampleRate, data); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf.Bytes(), nil
}
