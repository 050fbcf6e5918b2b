package bigint

// SPDX-License-Identifier: Apache-2.0

import "math/bits"

// cmpMag compares two magnitudes (digit slices, least-significant digit
// first, already normalized), returning -1, 0, or 1. The longer magnitude
// is always greater; equal-length magnitudes are compared digit by digit
// from most- to least-significant, stopping at the first difference.
func cmpMag(a, b []digit) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}

	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	return 0
}

// addMag computes |a| + |b|. The result has max(len(a), len(b)) digits,
// plus one more if a carry escapes the top column.
func addMag(a, b []digit) []digit {
	if len(a) < len(b) {
		a, b = b, a
	}

	result := make([]digit, len(a))
	var carry digit
	for i := 0; i < len(b); i++ {
		result[i], carry = addWW(a[i], b[i], carry)
	}
	for i := len(b); i < len(a); i++ {
		result[i], carry = addWW(a[i], 0, carry)
	}
	if carry != 0 {
		result = append(result, carry)
	}

	return result
}

// subMag computes |m| - |s| under the precondition |m| >= |s|. Because m is
// the larger magnitude, the final borrow is always 0 and is discarded; an
// explicit "add base" step on the subtrahend side is unnecessary thanks to
// unsigned wraparound in subWW.
func subMag(m, s []digit) []digit {
	result := make([]digit, len(m))
	var borrow digit
	for i := 0; i < len(s); i++ {
		result[i], borrow = subWW(m[i], s[i], borrow)
	}
	for i := len(s); i < len(m); i++ {
		result[i], borrow = subWW(m[i], 0, borrow)
	}

	return normalizeMag(result)
}

// incMag adds one to a magnitude, growing its length by one if the carry
// escapes the top digit.
func incMag(a []digit) []digit {
	result := make([]digit, len(a))
	copy(result, a)

	var carry digit = 1
	for i := 0; i < len(result) && carry != 0; i++ {
		result[i], carry = addWW(result[i], 0, carry)
	}
	if carry != 0 {
		result = append(result, carry)
	}

	return result
}

// decMag subtracts one from a nonzero magnitude and re-normalizes.
func decMag(a []digit) []digit {
	result := make([]digit, len(a))
	copy(result, a)

	var borrow digit = 1
	for i := 0; i < len(result) && borrow != 0; i++ {
		result[i], borrow = subWW(result[i], 0, borrow)
	}

	return normalizeMag(result)
}

// normalizeMag drops trailing (most-significant) zero digits, re-establishing
// invariant N1. A magnitude of all zeros normalizes to nil.
func normalizeMag(a []digit) []digit {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}

	return a[:n]
}

// leadingZeroCountMag returns the number of high-order zero bits in the most
// significant digit of a nonempty, normalized magnitude.
func leadingZeroCountMag(a []digit) int {
	if len(a) == 0 {
		return digitBits
	}

	return bits.LeadingZeros64(a[len(a)-1])
}

// trailingZeroCountMag returns the number of low-order zero bits across the
// whole magnitude: digitBits for every all-zero low digit, plus the
// trailing zero bits of the first nonzero digit. The magnitude must be
// nonzero.
func trailingZeroCountMag(a []digit) int {
	count := 0
	for _, d := range a {
		if d == 0 {
			count += digitBits
			continue
		}

		return count + bits.TrailingZeros64(d)
	}

	return count
}

// isPow2Mag reports whether a normalized, nonempty magnitude is an exact
// power of two: every digit below the top is zero, and the top digit has
// exactly one bit set.
func isPow2Mag(a []digit) bool {
	if len(a) == 0 {
		return false
	}

	for i := 0; i < len(a)-1; i++ {
		if a[i] != 0 {
			return false
		}
	}

	top := a[len(a)-1]
	return top&(top-1) == 0
}
