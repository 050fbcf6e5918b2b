package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/bigint/constraint"
)

// FromInt constructs an Int from any signed machine integer type. The
// magnitude of the minimum value of T is computed without negating it
// directly, since negating a two's-complement minimum overflows the type.
func FromInt[T constraint.SignedInteger](v T) *Int {
	return fromInt64(int64(v))
}

// FromUint constructs an Int from any unsigned machine integer type.
func FromUint[T constraint.UnsignedInteger](v T) *Int {
	return fromUint64(uint64(v))
}

func fromInt64(v int64) *Int {
	if v == 0 {
		return &Int{}
	}

	neg := v < 0
	var mag uint64
	if neg {
		// -(v+1)+1 never overflows, even when v is math.MinInt64: v+1 is
		// representable, -(v+1) is representable (it is at most
		// math.MaxInt64), and adding 1 back as a uint64 cannot overflow.
		mag = uint64(-(v + 1)) + 1
	} else {
		mag = uint64(v)
	}

	return (&Int{}).setMag([]digit{mag}, neg)
}

func fromUint64(v uint64) *Int {
	if v == 0 {
		return &Int{}
	}

	return (&Int{}).setMag([]digit{v}, false)
}

// toInt64 reports the int64 value of x and whether it fit without
// saturating.
func (x *Int) toInt64() (v int64, ok bool) {
	if len(x.digits) == 0 {
		return 0, true
	}
	if len(x.digits) > 1 {
		if x.neg {
			return minInt64, false
		}
		return maxInt64, false
	}

	d := x.digits[0]
	if !x.neg {
		if d > uint64(maxInt64) {
			return maxInt64, false
		}
		return int64(d), true
	}

	// Magnitude of math.MinInt64 is 1<<63, which does not fit in an
	// int64 directly, so it is handled as a special case.
	if d > minInt64Mag {
		return minInt64, false
	}
	if d == minInt64Mag {
		return minInt64, true
	}
	return -int64(d), true
}

// toUint64 reports the uint64 value of x and whether it fit without
// saturating. Negative values never fit; they saturate to 0.
func (x *Int) toUint64() (v uint64, ok bool) {
	if len(x.digits) == 0 {
		return 0, true
	}
	if x.neg {
		return 0, false
	}
	if len(x.digits) > 1 {
		return maxUint64, false
	}

	return x.digits[0], true
}

const (
	maxInt64    int64  = 1<<63 - 1
	minInt64    int64  = -1 << 63
	minInt64Mag uint64 = 1 << 63
	maxUint64   uint64 = ^uint64(0)
)

// ToInt converts x to any signed machine integer type T, saturating to
// T's minimum or maximum and reporting an OutOfRange error if x does not
// fit.
func ToInt[T constraint.SignedInteger](x *Int) (T, error) {
	var zero T
	size := numBits(zero)
	minT, maxT := minIntValue[size], maxIntValue[size]

	v, ok := x.toInt64()
	if !ok || v < minT || v > maxT {
		if x.neg {
			return T(minT), newError(OutOfRange, "bigint: value does not fit in %T", zero)
		}
		return T(maxT), newError(OutOfRange, "bigint: value does not fit in %T", zero)
	}

	return T(v), nil
}

// ToUint converts x to any unsigned machine integer type T, saturating to
// 0 or T's maximum and reporting an OutOfRange error if x does not fit.
func ToUint[T constraint.UnsignedInteger](x *Int) (T, error) {
	var zero T
	maxT := maxUintValue[numBits(zero)]

	v, ok := x.toUint64()
	if !ok || v > maxT {
		if x.neg {
			return 0, newError(OutOfRange, "bigint: value does not fit in %T", zero)
		}
		return T(maxT), newError(OutOfRange, "bigint: value does not fit in %T", zero)
	}

	return T(v), nil
}

// Dup returns a duplicate of x, allocated independently so that mutating
// the copy never affects x.
func (x *Int) Dup() *Int {
	mag := make([]digit, len(x.digits))
	copy(mag, x.digits)
	return &Int{digits: mag, neg: x.neg}
}

// Set assigns the value of y to x (growing x's capacity if needed) and
// returns x, so that x and y are thereafter independent values with equal
// magnitude and sign.
func (x *Int) Set(y *Int) *Int {
	buf := growCapacity(x.digits[:0], len(y.digits))
	buf = buf[:len(y.digits)]
	copy(buf, y.digits)

	x.digits = buf
	x.neg = y.neg && len(buf) != 0
	return x
}
