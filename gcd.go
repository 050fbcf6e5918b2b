package bigint

// SPDX-License-Identifier: Apache-2.0

// isEvenMag reports whether a magnitude represents an even number.
func isEvenMag(a []digit) bool {
	return len(a) == 0 || a[0]&1 == 0
}

// gcdMag computes the greatest common divisor of two magnitudes using the
// binary GCD (Stein's) algorithm: factor out common powers of two, then
// repeatedly strip remaining factors of two from the larger operand and
// replace it with the difference of the two, until they coincide.
func gcdMag(a, b []digit) []digit {
	if len(a) == 0 {
		return append([]digit(nil), b...)
	}
	if len(b) == 0 {
		return append([]digit(nil), a...)
	}

	shift := 0
	for isEvenMag(a) && isEvenMag(b) {
		a = rshMag(a, 1)
		b = rshMag(b, 1)
		shift++
	}

	for isEvenMag(a) {
		a = rshMag(a, 1)
	}

	for len(b) != 0 {
		for isEvenMag(b) {
			b = rshMag(b, 1)
		}
		if cmpMag(a, b) > 0 {
			a, b = b, a
		}
		b = subMag(b, a)
	}

	return lshMag(a, shift)
}

// Gcd sets z to the greatest common divisor of x and y, always non-negative,
// and returns z. Gcd(0, y) is |y|; Gcd(0, 0) is 0.
func (z *Int) Gcd(x, y *Int) *Int {
	return z.setMag(gcdMag(x.digits, y.digits), false)
}
