package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"math"
	goreflect "reflect"

	"github.com/bantling/bigint/constraint"
)

// numBits reports the bit width of the concrete type of val. Grounded on
// conv.NumBits in the teacher repo, which uses the same reflect-based size
// lookup to range-check generic integer conversions.
func numBits[T constraint.SignedInteger | constraint.UnsignedInteger](val T) int {
	return int(goreflect.ValueOf(val).Type().Size() * 8)
}

var (
	minIntValue = map[int]int64{
		8:  math.MinInt8,
		16: math.MinInt16,
		32: math.MinInt32,
		64: math.MinInt64,
	}

	maxIntValue = map[int]int64{
		8:  math.MaxInt8,
		16: math.MaxInt16,
		32: math.MaxInt32,
		64: math.MaxInt64,
	}

	maxUintValue = map[int]uint64{
		8:  math.MaxUint8,
		16: math.MaxUint16,
		32: math.MaxUint32,
		64: math.MaxUint64,
	}
)
