package internal

import "github.com/pkg/errors"

// Mesh invariants are checked deep inside the growth loop, where a violation
// means a bug rather than a bad input. Threading errors out of every helper
// for that would add a lot of noise, so the checks panic instead, and the
// public API recovers to convert to an error.

type GrowError struct {
	error
}

// Panic with a GrowError.
func fatalf(format string, args ...interface{}) {
	panic(GrowError{errors.Errorf(format, args...)})
}

// Turn a recovered GrowError back into an error. Any other panic is not ours,
// and is re-raised.
func HandleGrowPanicRecover(r interface{}) error {
	if r != nil {
		if growError, ok := r.(GrowError); ok {
			return growError.error
		}
		panic(r)
	}
	return nil
}
