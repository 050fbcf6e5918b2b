// Package bigint implements arbitrary-precision signed integers over a
// sign-magnitude representation.
//
// A value is stored as a slice of 64-bit digits, least-significant digit
// first, plus a sign flag. There is no native 128-bit integer in Go, so
// every primitive that needs a double-width intermediate (the
// multiply-accumulate step of long multiplication chief among them)
// synthesizes one from pairs of 64-bit halves rather than reach for a
// wider builtin type - see digit.go.
package bigint

// SPDX-License-Identifier: Apache-2.0
