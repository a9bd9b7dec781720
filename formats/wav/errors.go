package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = errors.New("only PCM 8-bit and 16-bit supported")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
)
