package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
)

// Probe reads a WAV header with the go-audio reference decoder and reports
// the format descriptor and the data chunk length in bytes. It is the
// independent cross-check used to verify files this package writes.
func Probe(r io.ReadSeeker) (Format, uint32, error) {
	dec := gowav.NewDecoder(r)

	if !dec.IsValidFile() {
		return Format{}, 0, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return Format{}, 0, fmt.Errorf("%w", err)
	}

	f := Format{
		SampleRate:    int(dec.SampleRate),
		BitsPerSample: int(dec.BitDepth),
		Channels:      int(dec.NumChans),
	}

	return f, uint32(dec.PCMLen()), nil
}
