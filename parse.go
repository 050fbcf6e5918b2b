package bigint

// SPDX-License-Identifier: Apache-2.0

// digitValue maps an ASCII digit or letter to its numeric value (0-9 for
// '0'-'9', 10-35 for 'a'-'z'/'A'-'Z'), reporting false for anything else.
// Letters above the chosen base are accepted here and rejected later by
// the caller's range check, so that "unknown character" and "digit out of
// range" stay distinguishable errors.
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

func malformed(format string, args ...any) error {
	return newError(MalformedInput, format, args...)
}

// detectBase inspects s starting at pos and returns the numeric base and
// the position of the first mantissa digit, following the spec's prefix
// rules: 0b/0B, 0o/0O, 0x/0X consume a two-character prefix; a bare
// leading '0' with no recognized prefix letter is base 10 if a '.'
// appears later in the string, base 8 otherwise, and the '0' itself is
// left in the digit stream.
func detectBase(s string, pos int) (base, next int) {
	if pos >= len(s) || s[pos] != '0' {
		return 10, pos
	}

	if pos+1 < len(s) {
		switch s[pos+1] {
		case 'b', 'B':
			return 2, pos + 2
		case 'o', 'O':
			return 8, pos + 2
		case 'x', 'X':
			return 16, pos + 2
		}
	}

	for i := pos; i < len(s); i++ {
		if s[i] == '.' {
			return 10, pos
		}
	}
	return 8, pos
}

// Parse converts a textual representation into a big integer, following
// the grammar in Parser: an optional sign, an optional base prefix,
// mantissa digits, and - base 10 only - an optional fractional part and
// exponent.
//
// The second return value is the run of fractional digits left over after
// truncation: non-empty only when the input carries both a '.' and an
// 'e'/'E' whose exponent was not large enough to consume every buffered
// fractional digit (e.g. "3.141e2" parses to 314 with "1" left over).
func Parse(s string) (*Int, string, error) {
	pos := 0
	neg := false
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		neg = s[pos] == '-'
		pos++
	}

	base, pos := detectBase(s, pos)

	result := FromSmall(0)
	baseInt := FromSmall(base)

	var (
		sawDot, sawExp bool
		fracDigits     []int
		exp            int
		sawExpDigit    bool
	)

mantissa:
	for pos < len(s) {
		c := s[pos]

		switch {
		case base == 10 && c == '.':
			if sawDot || sawExp {
				return nil, "", malformed("bigint: malformed input %q: unexpected '.'", s)
			}
			sawDot = true
			pos++

		case base == 10 && (c == 'e' || c == 'E'):
			if sawExp {
				return nil, "", malformed("bigint: malformed input %q: multiple exponents", s)
			}
			sawExp = true
			pos++
			break mantissa

		default:
			v, ok := digitValue(c)
			if !ok {
				return nil, "", malformed("bigint: malformed input %q: unknown character %q", s, c)
			}
			if v >= base {
				return nil, "", malformed("bigint: malformed input %q: digit %q out of range for base %d", s, c, base)
			}

			if sawDot {
				fracDigits = append(fracDigits, v)
			} else {
				result = new(Int).Add(new(Int).Mul(result, baseInt), FromSmall(v))
			}
			pos++
		}
	}

	if sawExp {
		for pos < len(s) {
			v, ok := digitValue(s[pos])
			if !ok || v >= 10 {
				return nil, "", malformed("bigint: malformed input %q: bad exponent digit", s)
			}
			exp = exp*10 + v
			sawExpDigit = true
			pos++
		}
		if !sawExpDigit {
			return nil, "", malformed("bigint: malformed input %q: exponent has no digits", s)
		}
	}

	var leftover string
	ten := FromSmall(10)

	if sawDot && sawExp {
		i := 0
		for exp > 0 && i < len(fracDigits) {
			exp--
			result = new(Int).Add(new(Int).Mul(result, ten), FromSmall(fracDigits[i]))
			i++
		}
		if i < len(fracDigits) {
			buf := make([]byte, len(fracDigits)-i)
			for j, d := range fracDigits[i:] {
				buf[j] = byte('0' + d)
			}
			leftover = string(buf)
		}
	}

	if exp > 0 {
		scale, err := new(Int).Pow(ten, FromInt(exp))
		if err != nil {
			return nil, "", err
		}
		result = new(Int).Mul(result, scale)
	}

	return result.setMag(result.digits, neg), leftover, nil
}
