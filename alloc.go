package bigint

// SPDX-License-Identifier: Apache-2.0

import "fmt"

var errCapacityOverflowMsg = "bigint: requested capacity %d overflows the maximum representable digit count"

// maxDigits bounds the number of digits a single Int may hold: it is chosen
// so that length*digitBits never overflows an int on any platform this
// library targets.
const maxDigits = 1 << 40

// growCapacity returns a slice with at least the requested capacity,
// preserving the live digits of buf. It panics with an allocation-style
// error if the request is negative or absurdly large, since that can only
// mean caller-side corruption rather than a recoverable condition.
func growCapacity(buf []digit, capacity int) []digit {
	if capacity < 0 || capacity > maxDigits {
		panic(fmt.Errorf(errCapacityOverflowMsg, capacity))
	}

	if cap(buf) >= capacity {
		return buf
	}

	grown := make([]digit, len(buf), capacity)
	copy(grown, buf)
	return grown
}

// withLength returns buf resized to exactly n digits, zero-extending any
// newly exposed slots and growing the backing array if needed. Existing
// digits below n are preserved; this is used by the multiplication
// accumulator, which relies on N4's promise that freshly-zeroed slots never
// carry stale data.
func withLength(buf []digit, n int) []digit {
	buf = growCapacity(buf, n)
	old := len(buf)
	buf = buf[:n]
	for i := old; i < n; i++ {
		buf[i] = 0
	}

	return buf
}
