// SPDX-License-Identifier: EPL-2.0

// Package carray converts between byte slices and C byte-array source text.
//
// The ambio firmware embeds its startup audio as a fixed-size uint8_t array
// in C++ source. Extract pulls such an array back out of source text:
//
//	src, _ := os.ReadFile("src/main.cpp")
//	data, err := carray.Extract(src, "wav_8bit_44100")
//	if errors.Is(err, carray.ErrArrayNotFound) {
//	    // the declaration is missing
//	}
//
// Extraction is structural: only initializer tokens shaped exactly like
// two-digit hex literals (0x00 through 0xff, case-insensitive) are decoded.
// Anything else between the braces — malformed literals, comments,
// whitespace, trailing commas — is skipped without error. The one failure
// mode is the declaration itself being absent.
//
// Write is the inverse, rendering bytes as a declaration the firmware can
// compile and Extract can read back:
//
//	carray.Write(f, "wav_8bit_44100", data)
package carray
