package bigint

// SPDX-License-Identifier: Apache-2.0

// digit is one unsigned machine word of the big integer. W = 64 is fixed at
// compile time: there is no native 2W (128-bit) integer type, so every
// operation below that needs one (mulAddWW) synthesizes it from 32-bit
// halves the way math/one28 in the teacher repo synthesizes 128-bit
// arithmetic from pairs of uint64 halves, rather than promoting through an
// unrelated arbitrary-precision type.
type digit = uint64

const (
	digitBits = 64
	// digitMax is the largest value a single digit can hold.
	digitMax digit = ^digit(0)

	lowerMask digit = 0xFF_FF_FF_FF

	// doubleDigitBits is the width the addDD/mulAddWW primitives below
	// actually implement. It must be checked against 2*digitBits at
	// startup (see checkSuperDigitWidth in errors.go): if digitBits is
	// ever widened without updating these primitives to match, every
	// multiplication would silently truncate instead of carrying
	// correctly.
	doubleDigitBits = 128
)

// addWW adds x + y + carryIn, returning the sum and a carry-out of 0 or 1.
// Overflow is detected by the unsigned-wraparound identity: after adding,
// a result smaller than either operand means the addition wrapped around.
func addWW(x, y, carryIn digit) (sum, carryOut digit) {
	sum = x + y
	if sum < x {
		carryOut = 1
	}

	sum2 := sum + carryIn
	if sum2 < sum {
		carryOut++
	}

	return sum2, carryOut
}

// subWW computes x - y - borrowIn, returning the difference and a
// borrow-out of 0 or 1.
func subWW(x, y, borrowIn digit) (diff, borrowOut digit) {
	diff = x - y
	if diff > x {
		borrowOut = 1
	}

	diff2 := diff - borrowIn
	if diff2 > diff {
		borrowOut++
	}

	return diff2, borrowOut
}

// addDD adds two double-width (128-bit) values, each given as an
// (upper, lower) pair of digits, returning the carry out of the top and the
// (upper, lower) pair of the sum. Grounded on math/one28.Add in the teacher
// repo: the carry chain is computed a 32-bit term at a time so that every
// intermediate sum fits in a uint64.
func addDD(upperA, lowerA, upperB, lowerB digit) (carry, upper, lower digit) {
	var (
		alt, alb = (upperA >> 32) & lowerMask, upperA & lowerMask
		allt, allb = (lowerA >> 32) & lowerMask, lowerA & lowerMask
		bht, bhb = (upperB >> 32) & lowerMask, upperB & lowerMask
		blt, blb = (lowerB >> 32) & lowerMask, lowerB & lowerMask

		td      = allb + blb
		tdCarry = td >> 32

		tc      = allt + blt + tdCarry
		tcCarry = tc >> 32

		tb      = alb + bhb + tcCarry
		tbCarry = tb >> 32

		ta = alt + bht + tbCarry
	)

	carry = ta >> 32
	upper = ((ta & lowerMask) << 32) | (tb & lowerMask)
	lower = ((tc & lowerMask) << 32) | (td & lowerMask)

	return
}

// mulWW multiplies two digits, producing the full double-width (128-bit)
// product as an (upper, lower) pair of digits. Grounded on
// math/one28.Mul in the teacher repo: each operand is split into 32-bit
// halves and the four partial products are combined with explicit carry
// detection, since Go has no native 128-bit integer to widen into.
func mulWW(x, y digit) (upper, lower digit) {
	var (
		xl, xh = x & lowerMask, x >> 32
		yl, yh = y & lowerMask, y >> 32

		bd = xl * yl
		bc = xl * yh
		ad = xh * yl
		ac = xh * yh

		add = func(v1, v2, v3, v4 digit) (carry, result digit) {
			sum := v1 + v2 + v3 + v4
			return sum >> 32, sum & lowerMask
		}

		h          = bd & lowerMask
		gCarry, g  = add(0, bd>>32, bc&lowerMask, ad&lowerMask)
		fCarry, f  = add(gCarry, bc>>32, ad>>32, ac&lowerMask)
		e          = fCarry + (ac >> 32)
	)

	lower = (g << 32) | h
	upper = (e << 32) | f

	return
}

// mulAddWW computes x*y + addend + carryIn as a double-width value and
// returns it as a (lower, upper) pair of digits. The product of two digits
// plus two digit-sized addends never exceeds 2^(2*digitBits) - 1, so the
// double-width result never itself overflows: the largest possible value is
// (2^64-1)^2 + 2*(2^64-1) = (2^64-1)*(2^64+1) = 2^128 - 1.
func mulAddWW(x, y, addend, carryIn digit) (lower, upper digit) {
	hi, lo := mulWW(x, y)
	_, hi, lo = addDD(hi, lo, 0, addend)
	_, hi, lo = addDD(hi, lo, 0, carryIn)

	return lo, hi
}
