// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/daveio/ambio-systems/utils"
)

// Resampler converts src to a target sample rate using Catmull-Rom cubic
// interpolation over a sliding four-frame window. Channel count is
// preserved. When downsampling, a one-pole low-pass smooths the input to
// tame aliasing.
type Resampler struct {
	src      Source
	dstRate  float64
	step     float64 // source frames consumed per output frame
	channels int

	// Sliding window: win[0]=t-1, win[1]=t0, win[2]=t+1, win[3]=t+2.
	// Interpolation happens between win[1] and win[2].
	win    [4][]float32
	pos    float64
	primed bool
	eof    bool

	srcBuf []float32

	filterState []float32
	filterAlpha float32
	useFilter   bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     float64(dstRate),
		step:        step,
		channels:    channels,
		srcBuf:      make([]float32, 4096),
		filterState: make([]float32, channels),
		// One-pole low-pass with a fixed coefficient; only engaged when
		// the source rate exceeds the target rate
		useFilter:   step > 1.0,
		filterAlpha: 0.5,
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// prime fills the interpolation window with the first source frames.
// Short sources pad the window by repeating the last frame read.
func (r *Resampler) prime() error {
	last := -1

	for i := 0; i < len(r.win) && !r.eof; i++ {
		n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
		if n > 0 {
			copy(r.win[i], r.srcBuf[:n])
			last = i

			// Seed the filter so the first frames carry no warm-up transient
			if i == 0 && r.useFilter {
				copy(r.filterState, r.srcBuf[:n])
			}
		}

		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if last < 0 {
		return io.EOF
	}

	for i := last + 1; i < len(r.win); i++ {
		copy(r.win[i], r.win[last])
	}

	r.primed = true

	return nil
}

// fetchNext slides the window forward by one source frame. After the shift
// win[3] still holds the previous tail frame, so an exhausted source keeps
// interpolating against a duplicated edge until pos runs past it.
func (r *Resampler) fetchNext() error {
	if r.eof {
		return io.EOF
	}

	copy(r.win[0], r.win[1])
	copy(r.win[1], r.win[2])
	copy(r.win[2], r.win[3])

	n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
	if n > 0 {
		copy(r.win[3], r.srcBuf[:n])

		if r.useFilter {
			for c := 0; c < r.channels; c++ {
				r.win[3][c] = r.filterAlpha*r.win[3][c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = r.win[3][c]
			}
		}
	}

	if err == io.EOF {
		r.eof = true
		if n == 0 {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}

			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0

			if err := r.fetchNext(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}

					return written * r.channels, io.EOF
				}

				return written * r.channels, err
			}
		}

		x := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
