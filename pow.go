package bigint

// SPDX-License-Identifier: Apache-2.0

// powMag raises magnitude base to magnitude exp by binary exponentiation:
// the exponent is consumed one bit at a time from the low end, squaring
// the base at every step and folding it into the result whenever the
// current bit is set.
func powMag(base, exp []digit) []digit {
	result := []digit{1}
	b := base
	e := exp

	for len(e) != 0 {
		if e[0]&1 != 0 {
			result = mulMag(result, b)
		}
		e = rshMag(e, 1)
		b = mulMag(b, b)
	}

	return normalizeMag(result)
}

// Pow sets z = x**n and returns z. It reports ErrNegativeExponent if n is
// negative. 0**0 is defined as 1; 0**n for positive n is 0. The result is
// negative exactly when x is negative and n is odd.
func (z *Int) Pow(x, n *Int) (*Int, error) {
	if n.IsNegative() {
		return z, ErrNegativeExponent
	}
	if n.IsZero() {
		return z.setMag([]digit{1}, false), nil
	}
	if x.IsZero() {
		return z.setMag(nil, false), nil
	}

	oddExponent := len(n.digits) != 0 && n.digits[0]&1 != 0
	return z.setMag(powMag(x.digits, n.digits), x.neg && oddExponent), nil
}
