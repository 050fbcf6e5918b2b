package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivModDivideByZero_(t *testing.T) {
	_, _, err := new(Int).DivMod(FromInt(5), FromInt(0))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestDivModDivisorOne_(t *testing.T) {
	q, r, err := new(Int).DivMod(FromInt(-42), FromInt(1))
	assert.NoError(t, err)
	assert.Equal(t, 0, q.Cmp(FromInt(-42)))
	assert.True(t, r.IsZero())
}

func TestDivModEqualMagnitude_(t *testing.T) {
	q, r, err := new(Int).DivMod(FromInt(12), FromInt(-12))
	assert.NoError(t, err)
	assert.Equal(t, 0, q.Cmp(FromInt(-1)))
	assert.True(t, r.IsZero())
}

func TestDivModNumeratorSmaller_(t *testing.T) {
	q, r, err := new(Int).DivMod(FromInt(3), FromInt(9))
	assert.NoError(t, err)
	assert.True(t, q.IsZero())
	assert.Equal(t, 0, r.Cmp(FromInt(3)))
}

func TestDivModPow2_(t *testing.T) {
	// spec scenario: div(-7, 2) -> quotient -3, remainder -1
	q, r, err := new(Int).DivMod(FromInt(-7), FromInt(2))
	assert.NoError(t, err)
	assert.Equal(t, 0, q.Cmp(FromInt(-3)))
	assert.Equal(t, 0, r.Cmp(FromInt(-1)))
}

func TestDivModGeneral_(t *testing.T) {
	q, r, err := new(Int).DivMod(FromInt(100), FromInt(7))
	assert.NoError(t, err)
	assert.Equal(t, 0, q.Cmp(FromInt(14)))
	assert.Equal(t, 0, r.Cmp(FromInt(2)))

	q, r, err = new(Int).DivMod(FromInt(-100), FromInt(7))
	assert.NoError(t, err)
	assert.Equal(t, 0, q.Cmp(FromInt(-14)))
	assert.Equal(t, 0, r.Cmp(FromInt(-2)))
}

func TestDivModMultiDigit_(t *testing.T) {
	x := FromInt(123456789012345)
	y := FromInt(98765)
	q, r, err := new(Int).DivMod(x, y)
	assert.NoError(t, err)

	// verify via the defining relation: x == q*y + r
	check := new(Int).Add(new(Int).Mul(q, y), r)
	assert.Equal(t, 0, check.Cmp(x))
}

// TestDivModNumeratorSpansTwoDigits_ divides a numerator that does not fit
// in a single digit by a small divisor, so the general path in divModMag
// processes a multi-digit running remainder rather than degenerating to a
// single subtraction.
func TestDivModNumeratorSpansTwoDigits_(t *testing.T) {
	x := new(Int).Add(new(Int).Lsh(FromInt(1), 64), FromInt(1)) // 2^64 + 1
	y := FromInt(3)

	q, r, err := new(Int).DivMod(x, y)
	assert.NoError(t, err)

	check := new(Int).Add(new(Int).Mul(q, y), r)
	assert.Equal(t, 0, check.Cmp(x))
	assert.True(t, r.Cmp(FromInt(3)) < 0)
	assert.Equal(t, 0, r.Cmp(FromInt(2)))
}

func TestModWrapsDivMod_(t *testing.T) {
	r, err := new(Int).Mod(FromInt(17), FromInt(5))
	assert.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(FromInt(2)))

	_, err = new(Int).Mod(FromInt(1), FromInt(0))
	assert.ErrorIs(t, err, ErrDivideByZero)
}
