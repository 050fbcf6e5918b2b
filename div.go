package bigint

// SPDX-License-Identifier: Apache-2.0

// mulMagDigit multiplies a magnitude by a single digit.
func mulMagDigit(d []digit, m digit) []digit {
	if m == 0 || len(d) == 0 {
		return nil
	}

	res := make([]digit, len(d)+1)
	var carry digit
	for i, di := range d {
		lo, hi := mulAddWW(di, m, 0, carry)
		res[i] = lo
		carry = hi
	}
	res[len(d)] = carry

	return normalizeMag(res)
}

// findQuotientDigit returns the largest f in [0, digitMax] such that
// f*d <= rem. The spec's reference algorithm finds f by repeatedly adding
// d into an accumulator until the first overshoot; that is O(digitMax)
// additions per quotient digit, which is fine for an 8-bit digit but
// intractable at digitBits=64. A binary search over the same [0, digitMax]
// range finds the identical f - the largest multiple of d not exceeding
// rem - in O(digitBits) steps instead, which is the adaptation this
// implementation makes (see DESIGN.md).
func findQuotientDigit(rem, d []digit) digit {
	if cmpMag(rem, d) < 0 {
		return 0
	}

	var lo, hi digit = 1, digitMax
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if cmpMag(mulMagDigit(d, mid), rem) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo
}

// divModMag performs restoring schoolbook long division of magnitude n by
// magnitude d, producing a quotient and remainder such that
// n = q*d + r, 0 <= r < d. The caller is responsible for the fast paths
// in spec section 4.6 and for d != 0; this handles only the general case.
//
// Digits of n are brought down from most- to least-significant, one at a
// time, into a running remainder window - this plays the role the spec's
// reference algorithm gives to "exposing hidden digits" of an intermediate
// buffer by walking a base pointer, expressed here as an ordinary slice
// instead of pointer arithmetic (see DESIGN.md).
func divModMag(n, d []digit) (q, r []digit) {
	quotientDigits := make([]digit, len(n))
	var rem []digit

	for i := len(n) - 1; i >= 0; i-- {
		rem = normalizeMag(append([]digit{n[i]}, rem...))

		f := findQuotientDigit(rem, d)
		if f != 0 {
			rem = subMag(rem, mulMagDigit(d, f))
		}
		quotientDigits[i] = f
	}

	return normalizeMag(quotientDigits), rem
}

// divModMagFast applies the spec's ordered fast paths, falling back to the
// general restoring division when none apply.
func divModMagFast(n, d []digit) (q, r []digit) {
	switch {
	case len(d) == 1 && d[0] == 1:
		return append([]digit(nil), n...), nil
	case cmpMag(n, d) == 0:
		return []digit{1}, nil
	case cmpMag(n, d) < 0:
		return nil, append([]digit(nil), n...)
	case isPow2Mag(d):
		shift := trailingZeroCountMag(d)
		return rshMag(n, shift), subMag(n, lshMag(rshMag(n, shift), shift))
	default:
		return divModMag(n, d)
	}
}

// DivMod sets z to the truncated-toward-zero quotient of x/y and rem to
// the corresponding remainder, returning (z, rem). It reports
// ErrDivideByZero if y is zero.
//
// Sign rules match machine-integer truncating division: the quotient's
// sign is the XOR of the operand signs (positive if the quotient is
// zero), and the remainder's sign is the numerator's sign (positive if
// the remainder is zero).
func (z *Int) DivMod(x, y *Int) (*Int, *Int, error) {
	if y.IsZero() {
		return z, nil, ErrDivideByZero
	}

	qMag, rMag := divModMagFast(x.digits, y.digits)

	quotientNeg := (x.neg != y.neg) && len(qMag) != 0
	remainderNeg := x.neg && len(rMag) != 0

	rem := (&Int{}).setMag(rMag, remainderNeg)
	z.setMag(qMag, quotientNeg)

	return z, rem, nil
}

// Mod sets z to x modulo y (the remainder of DivMod) and returns z. It
// reports ErrDivideByZero if y is zero.
func (z *Int) Mod(x, y *Int) (*Int, error) {
	_, rem, err := new(Int).DivMod(x, y)
	if err != nil {
		return z, err
	}

	z.Set(rem)
	return z, nil
}
