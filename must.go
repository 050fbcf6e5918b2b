package bigint

// SPDX-License-Identifier: Apache-2.0

import "github.com/bantling/bigint/funcs"

// MustParse is like Parse, but panics instead of returning an error - for
// call sites (constant tables, tests, init-time setup) where the input is
// known to be well-formed, the same role funcs.Must plays for the
// teacher's Must-prefixed conversions.
func MustParse(s string) *Int {
	v, _ := funcs.MustValue2(Parse(s))
	return v
}

// MustFormat is like (*Int).Format, but panics instead of returning an
// error.
func MustFormat(x *Int, base int) string {
	return funcs.MustValue(x.Format(base))
}
