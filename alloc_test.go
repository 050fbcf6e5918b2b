package bigint

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/bantling/bigint/funcs"
	"github.com/stretchr/testify/assert"
)

func TestGrowCapacity_(t *testing.T) {
	buf := []digit{1, 2, 3}
	grown := growCapacity(buf, 2)
	assert.Equal(t, 3, len(grown))
	assert.Equal(t, []digit{1, 2, 3}, grown)

	grown = growCapacity(buf, 10)
	assert.GreaterOrEqual(t, cap(grown), 10)
	assert.Equal(t, []digit{1, 2, 3}, grown)

	funcs.TryTo(
		func() {
			growCapacity(buf, -1)
			assert.Fail(t, "growCapacity must panic on a negative request")
		},
		func(err any) { assert.Contains(t, err.(error).Error(), "overflows") },
	)
}

func TestWithLength_(t *testing.T) {
	buf := withLength(nil, 3)
	assert.Equal(t, []digit{0, 0, 0}, buf)

	buf[0], buf[1], buf[2] = 1, 2, 3
	buf = withLength(buf, 5)
	assert.Equal(t, []digit{1, 2, 3, 0, 0}, buf)

	buf = withLength(buf, 2)
	assert.Equal(t, []digit{1, 2}, buf)
}
