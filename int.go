package bigint

// SPDX-License-Identifier: Apache-2.0

// Int is an arbitrary-precision signed integer, stored as a sign flag plus
// a magnitude of digits, least-significant digit first. The zero value is
// a valid representation of zero (N2: zero is never negative).
//
// Int values are not safe for concurrent use: each Int is exclusively
// owned by one actor at a time, the same way every other value in this
// package is (see cache.go for the one process-wide exception).
type Int struct {
	digits []digit
	neg    bool
}

// Sign returns -1, 0, or 1 according to whether x is negative, zero, or
// positive.
func (x *Int) Sign() int {
	if len(x.digits) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return len(x.digits) == 0
}

// IsNegative reports whether x is strictly less than zero.
func (x *Int) IsNegative() bool {
	return x.neg && len(x.digits) != 0
}

// IsPow2 reports whether x is a positive power of two.
func (x *Int) IsPow2() bool {
	return !x.neg && isPow2Mag(x.digits)
}

// setMag installs a normalized magnitude and sign, enforcing N2 (zero is
// never negative).
func (x *Int) setMag(mag []digit, neg bool) *Int {
	mag = normalizeMag(mag)
	x.digits = mag
	x.neg = neg && len(mag) != 0
	return x
}

// Cmp compares x and y, returning -1, 0, or 1. Comparison is a total order
// consistent with integer order: differing signs decide immediately,
// equal signs defer to the magnitude comparison (reversed when both are
// negative).
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.Sign() != y.Sign():
		if x.Sign() < y.Sign() {
			return -1
		}
		return 1
	case x.Sign() == 0:
		return 0
	case !x.neg:
		return cmpMag(x.digits, y.digits)
	default:
		return -cmpMag(x.digits, y.digits)
	}
}
