// SPDX-License-Identifier: EPL-2.0

// Package ambio moves startup audio between firmware source and WAV files.
//
// The ambio firmware plays a short clip at boot from a uint8_t array
// compiled into its C++ source. The array holds raw 8-bit unsigned PCM at
// 44.1 kHz, mono, with no container around it. This package and its
// subpackages handle both directions of that arrangement:
//
//   - ExtractWAV pulls the array out of source text and wraps it in a
//     canonical WAV header, producing a file any audio tool can play.
//   - EmbedAudio goes the other way: it decodes a WAV, MP3, Ogg Vorbis or
//     AIFF stream, resamples and downmixes it to the firmware's fixed
//     format, and renders the result as a C array declaration.
//
// The command line front ends live under cmd/extractwav and cmd/wav2c.
// The pieces compose from the subpackages: carray reads and writes the C
// source representation, formats/... decode container formats into
// audio.Source streams, and the audio package converts any such stream to
// the firmware's sample format.
package ambio
