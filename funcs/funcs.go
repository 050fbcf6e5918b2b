package funcs

// SPDX-License-Identifier: Apache-2.0

// ==== Error

// Must panics if the error is non-nil, else returns.
// Useful to wrap calls to functions that return only an error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustValue panics if the error is non-nil, else returns the value of type T.
// Useful to wrap calls to functions that return a value and an error, where the value is only valid if the error is nil.
func MustValue[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}

	return t
}

// MustValue2 panics if the error is non-nil, else returns the values of types T and U.
// Useful to wrap calls to functions that return two values and an error, where the values are only valid if the error is nil.
func MustValue2[T, U any](t T, u U, err error) (T, U) {
	if err != nil {
		panic(err)
	}

	return t, u
}

// ==== TryTo

// TryTo executes tryFn, and if a panic occurs, it executes panicFn.
// If any closers are provided, they are deferred in the provided order before the tryFn, to ensure they get closed even if a panic occurs.
// If any closer returns a non-nil error, any remaining closers are still called, as that is go built in behaviour.
//
// This function simplifies the process of "catching" panics over using reverse order code like the following
// (common in unit tests that want to verify the type of object sent to panic):
//
//	func DoSomeStuff() {
//	  ...
//	  func() {
//	    defer zero or more things that have to be closed before we try to recover from any panic
//	    defer func() {
//	      // Some code that uses recover() to try and deal with a panic
//	    }()
//	    // Some code that may panic, which is handled by above code
//	  }
//	  ...
//	}
func TryTo(tryFn func(), panicFn func(any), closers ...func()) {
	// Defer code that attempts to recover a value - first func deferred is called last, so this func is called after all provided closers
	defer func() {
		if val := recover(); val != nil {
			panicFn(val)
		}
	}()

	// Defer all closers in provided order, so they get called in reverse order as expected
	for _, closerFn := range closers {
		defer closerFn()
	}

	// Execute code that may panic
	tryFn()
}
