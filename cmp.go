package bigint

// SPDX-License-Identifier: Apache-2.0

// IsPositive reports whether x is strictly greater than zero.
func (x *Int) IsPositive() bool {
	return !x.neg && len(x.digits) != 0
}

// Min returns whichever of a and b compares lower, without copying: the
// result aliases whichever argument it picks, the same way the original
// C implementation's bigint_min returns a borrowed pointer rather than a
// newly allocated value.
func Min(a, b *Int) *Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns whichever of a and b compares higher, aliasing the winning
// argument the same way Min does.
func Max(a, b *Int) *Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
