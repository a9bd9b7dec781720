// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into the ambio processing
// pipeline, delegating to github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//
// The underlying reader already produces normalized float32 samples, so
// this package only adapts its reads to the Source interface, keeping
// output aligned to whole frames.
package vorbis
