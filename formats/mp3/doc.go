// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio into the ambio processing pipeline.
//
// Decoding is delegated to github.com/hajimehoshi/go-mp3, which emits
// 16-bit stereo PCM regardless of the source layout; this package converts
// that stream to normalized float32 samples.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // not a decodable MP3 stream
//	}
//	pcm, rate, err := audio.CollectPCM8(src, 44100, 4096)
//
// The returned Source reports two channels; downstream stages (MonoMixer)
// handle the downmix.
package mp3
