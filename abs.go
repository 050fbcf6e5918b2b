package bigint

// SPDX-License-Identifier: Apache-2.0

// Abs sets z to the absolute value of x and returns z.
func (z *Int) Abs(x *Int) *Int {
	mag := make([]digit, len(x.digits))
	copy(mag, x.digits)
	return z.setMag(mag, false)
}
