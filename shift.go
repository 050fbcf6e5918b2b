package bigint

// SPDX-License-Identifier: Apache-2.0

// lshMag shifts a magnitude left by n bits. The shift is decomposed into a
// whole-digit displacement and an intra-digit shift; each output digit that
// straddles two input digits combines the low bits of one with the high
// bits of its neighbor.
func lshMag(mag []digit, n int) []digit {
	if len(mag) == 0 || n == 0 {
		res := make([]digit, len(mag))
		copy(res, mag)
		return res
	}

	whole, intra := n/digitBits, n%digitBits
	resLen := len(mag) + whole
	if intra != 0 {
		resLen++
	}
	res := make([]digit, resLen)

	if intra == 0 {
		copy(res[whole:], mag)
		return normalizeMag(res)
	}

	var carry digit
	for i, d := range mag {
		res[i+whole] = (d << intra) | carry
		carry = d >> (digitBits - intra)
	}
	res[len(mag)+whole] = carry

	return normalizeMag(res)
}

// rshMag shifts a magnitude right by n bits, the mirror image of lshMag. If
// n is at least digitBits*len(mag), the result is zero.
func rshMag(mag []digit, n int) []digit {
	whole, intra := n/digitBits, n%digitBits
	if whole >= len(mag) {
		return nil
	}

	src := mag[whole:]
	res := make([]digit, len(src))
	for i := range src {
		lo := src[i]
		if intra != 0 {
			lo >>= intra
		}
		var hi digit
		if intra != 0 && i+1 < len(src) {
			hi = src[i+1] << (digitBits - intra)
		}
		res[i] = lo | hi
	}

	return normalizeMag(res)
}

// Lsh sets z = x << n and returns z. The sign of x is preserved.
func (z *Int) Lsh(x *Int, n uint) *Int {
	return z.setMag(lshMag(x.digits, int(n)), x.neg)
}

// Rsh sets z = x >> n and returns z. The sign of x is preserved; this is an
// arithmetic shift of the magnitude, not a two's-complement shift.
func (z *Int) Rsh(x *Int, n uint) *Int {
	return z.setMag(rshMag(x.digits, int(n)), x.neg)
}

// shiftCount validates a big-integer shift amount: it must be non-negative
// and must fit in a machine uint.
func shiftCount(n *Int) (uint, error) {
	if n.IsNegative() {
		return 0, ErrNegativeShift
	}

	v, err := ToUint[uint](n)
	if err != nil {
		return 0, err
	}

	return v, nil
}

// ShiftLeft sets z = x << n, where n is itself a big integer. It reports a
// Domain error if n is negative, or an OutOfRange error if n does not fit
// in a machine uint.
func (z *Int) ShiftLeft(x, n *Int) (*Int, error) {
	cnt, err := shiftCount(n)
	if err != nil {
		return z, err
	}

	return z.Lsh(x, cnt), nil
}

// ShiftRight sets z = x >> n, where n is itself a big integer. It reports a
// Domain error if n is negative, or an OutOfRange error if n does not fit
// in a machine uint.
func (z *Int) ShiftRight(x, n *Int) (*Int, error) {
	cnt, err := shiftCount(n)
	if err != nil {
		return z, err
	}

	return z.Rsh(x, cnt), nil
}
