package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd_(t *testing.T) {
	assert.Equal(t, 0, new(Int).Add(FromInt(3), FromInt(4)).Cmp(FromInt(7)))
	assert.Equal(t, 0, new(Int).Add(FromInt(-3), FromInt(-4)).Cmp(FromInt(-7)))
	assert.Equal(t, 0, new(Int).Add(FromInt(3), FromInt(-4)).Cmp(FromInt(-1)))
	assert.Equal(t, 0, new(Int).Add(FromInt(-3), FromInt(4)).Cmp(FromInt(1)))
	assert.True(t, new(Int).Add(FromInt(5), FromInt(-5)).IsZero())
	assert.False(t, new(Int).Add(FromInt(5), FromInt(-5)).IsNegative())

	// x + 0 = x (additive identity)
	x := FromInt(123)
	assert.Equal(t, 0, new(Int).Add(x, FromInt(0)).Cmp(x))

	// Aliasing: z == x
	z := FromInt(3)
	z.Add(z, FromInt(4))
	assert.Equal(t, 0, z.Cmp(FromInt(7)))
}

func TestSub_(t *testing.T) {
	assert.Equal(t, 0, new(Int).Sub(FromInt(7), FromInt(4)).Cmp(FromInt(3)))
	assert.Equal(t, 0, new(Int).Sub(FromInt(4), FromInt(7)).Cmp(FromInt(-3)))
	assert.Equal(t, 0, new(Int).Sub(FromInt(-4), FromInt(-7)).Cmp(FromInt(3)))
	assert.True(t, new(Int).Sub(FromInt(4), FromInt(4)).IsZero())

	// Aliasing: z == y
	y := FromInt(4)
	y.Sub(FromInt(7), y)
	assert.Equal(t, 0, y.Cmp(FromInt(3)))
}

func TestAddCommutativeAssociative_(t *testing.T) {
	a, b, c := FromInt(11), FromInt(-23), FromInt(37)

	ab := new(Int).Add(a, b)
	ba := new(Int).Add(b, a)
	assert.Equal(t, 0, ab.Cmp(ba))

	abc1 := new(Int).Add(new(Int).Add(a, b), c)
	abc2 := new(Int).Add(a, new(Int).Add(b, c))
	assert.Equal(t, 0, abc1.Cmp(abc2))
}
