// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNoChannels        = errors.New("buffer has no channels")
	ErrUnevenChannels    = errors.New("channel lengths differ")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
