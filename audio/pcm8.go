// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/daveio/ambio-systems/utils"
)

// CollectPCM8 drains src through a resample -> mono pipeline and returns
// the result as unsigned 8-bit PCM bytes at targetRate (0x80 = silence).
//
// The pipeline:
//  1. Resamples the source to targetRate using cubic interpolation
//  2. Averages all channels down to mono
//  3. Quantizes each float32 sample to one unsigned byte
//
// bufferSize controls the read granularity (4096 is a good default).
// Returns the collected bytes and the output sample rate.
func CollectPCM8(src Source, targetRate, bufferSize int) ([]byte, int, error) {
	resampler := NewResampler(src, targetRate)
	mono := NewMonoMixer(resampler)

	// Assume roughly a second of audio up front; grows as needed
	pcm := make([]byte, 0, targetRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm = append(pcm, utils.Float32ToUint8(buf[i]))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm, targetRate, nil
}
