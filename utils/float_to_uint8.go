// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToUint8 converts a normalized sample in [-1, 1] to unsigned 8-bit
// PCM, where 0x80 is silence. Out-of-range input is clamped.
func Float32ToUint8(x float32) uint8 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Map [-1, 1] onto [0, 255] with rounding
	v := int32((x+1)*127.5 + 0.5)
	if v > 255 {
		v = 255
	}

	return uint8(v)
}
