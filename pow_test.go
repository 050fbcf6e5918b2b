package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowNegativeExponent_(t *testing.T) {
	_, err := new(Int).Pow(FromInt(5), FromInt(-1))
	assert.ErrorIs(t, err, ErrNegativeExponent)
}

func TestPowExponentZero_(t *testing.T) {
	res, err := new(Int).Pow(FromInt(0), FromInt(0))
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Cmp(FromInt(1)))

	res, err = new(Int).Pow(FromInt(-7), FromInt(0))
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Cmp(FromInt(1)))
}

func TestPowBaseZero_(t *testing.T) {
	res, err := new(Int).Pow(FromInt(0), FromInt(5))
	assert.NoError(t, err)
	assert.True(t, res.IsZero())
}

func TestPowNegativeBaseEvenExponent_(t *testing.T) {
	// spec scenario: pow(-2, 10) = 1024
	res, err := new(Int).Pow(FromInt(-2), FromInt(10))
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Cmp(FromInt(1024)))
}

func TestPowNegativeBaseOddExponent_(t *testing.T) {
	// spec scenario: pow(-2, 11) = -2048
	res, err := new(Int).Pow(FromInt(-2), FromInt(11))
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Cmp(FromInt(-2048)))
}

func TestPowGeneral_(t *testing.T) {
	res, err := new(Int).Pow(FromInt(3), FromInt(5))
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Cmp(FromInt(243)))
}
