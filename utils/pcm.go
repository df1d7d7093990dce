// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 quantizes a float32 sample in [-1, 1] to a signed 16-bit
// PCM value. Out-of-range input is clamped first.
//
// The scale is asymmetric: negative samples are scaled by 32768 and
// non-negative samples by 32767, so -1.0 maps to -32768 and +1.0 maps to
// 32767. The full two's-complement range is reachable without overflowing
// at +1.0. The scaled value is truncated toward zero, not rounded.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}

	return int16(x * 32767.0)
}
