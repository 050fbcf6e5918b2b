package bigint

// SPDX-License-Identifier: Apache-2.0

// Add sets z = x + y and returns z. Same-signed operands add their
// magnitudes and keep the shared sign; opposite-signed operands subtract
// the smaller magnitude from the larger and take the sign of whichever
// operand had the larger magnitude. Equal magnitudes with opposite signs
// produce zero.
func (z *Int) Add(x, y *Int) *Int {
	if x.neg == y.neg {
		return z.setMag(addMag(x.digits, y.digits), x.neg)
	}

	switch cmpMag(x.digits, y.digits) {
	case 0:
		return z.setMag(nil, false)
	case 1:
		return z.setMag(subMag(x.digits, y.digits), x.neg)
	default:
		return z.setMag(subMag(y.digits, x.digits), y.neg)
	}
}

// Sub sets z = x - y and returns z, computed as x + (-y).
func (z *Int) Sub(x, y *Int) *Int {
	negY := Int{digits: y.digits, neg: !y.neg}
	return z.Add(x, &negY)
}
