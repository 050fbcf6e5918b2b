package bigint

// SPDX-License-Identifier: Apache-2.0

// bitLengthMag returns the number of bits needed to represent a normalized
// magnitude, i.e. the position of its highest set bit plus one. Zero has
// bit length 0.
func bitLengthMag(a []digit) int {
	if len(a) == 0 {
		return 0
	}

	return (len(a)-1)*digitBits + (digitBits - leadingZeroCountMag(a))
}

// Log sets z to the floor of the logarithm of x in the given base and
// returns z. It reports ErrLogBase if base is less than 2, and
// ErrLogArgument if x is not positive.
//
// A power-of-two base takes a bit-length fast path; any other base falls
// back to repeated multiplication, counting how many times base divides
// evenly into successively larger powers without exceeding x.
func (z *Int) Log(x, base *Int) (*Int, error) {
	if base.Cmp(FromInt(2)) < 0 {
		return z, ErrLogBase
	}
	if x.Sign() <= 0 {
		return z, ErrLogArgument
	}

	if isPow2Mag(base.digits) {
		k := trailingZeroCountMag(base.digits)
		n := (bitLengthMag(x.digits) - 1) / k
		return z.Set(FromInt(n)), nil
	}

	count := 0
	power := FromInt(1)
	for {
		next := new(Int).Mul(power, base)
		if next.Cmp(x) > 0 {
			break
		}
		power = next
		count++
	}

	return z.Set(FromInt(count)), nil
}
