package bigint

// SPDX-License-Identifier: Apache-2.0

// smallCacheSize is the number of small non-negative values kept ready-made:
// 0 through 16 inclusive.
const smallCacheSize = 17

var (
	smallCache            []*Int
	smallCacheInitialized bool
)

// Init populates the small-integer cache (values 0 through 16) used by
// FromSmall. It reports a Configuration error if called twice without an
// intervening Teardown. Init and Teardown are not safe to call
// concurrently with each other or with FromSmall; once Init has returned,
// FromSmall may be called freely from multiple goroutines, since every
// cache entry is read-only after construction and FromSmall hands out
// independent copies.
func Init() error {
	checkSuperDigitWidth()

	if smallCacheInitialized {
		return newError(Configuration, "bigint: cache already initialized")
	}

	smallCache = make([]*Int, smallCacheSize)
	for i := range smallCache {
		smallCache[i] = FromInt(i)
	}
	smallCacheInitialized = true

	return nil
}

// Teardown discards the small-integer cache populated by Init. Calling it
// before Init, or more than once, is a harmless no-op.
func Teardown() {
	smallCache = nil
	smallCacheInitialized = false
}

// FromSmall returns an Int with value n. If the cache is initialized and n
// is within its range, the value is copied out of the cache; otherwise it
// is built directly, the same as FromInt. The returned Int is always an
// independent copy, safe for the caller to mutate.
func FromSmall(n int) *Int {
	if smallCacheInitialized && n >= 0 && n < len(smallCache) {
		return smallCache[n].Dup()
	}

	return FromInt(n)
}
