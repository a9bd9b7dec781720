// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio into the ambio processing pipeline,
// delegating to github.com/go-audio/aiff.
//
// Only PCM 16-bit files are supported. go-audio requires seekable input,
// so non-seekable readers are buffered in memory before decoding.
//
//	src, err := aiff.Decoder{}.Decode(file)
package aiff
