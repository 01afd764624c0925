package internal

import "github.com/pkg/errors"

// Data problems in a sector are reported as ReconstructionFaults through
// normal returns. Broken invariants inside the pipeline are bugs, and threading
// them up through every stage would only add noise. Instead, we panic, and the
// public API recovers to convert to an error.

type invariantError struct {
	error
}

// Panic with an invariantError.
func fatalf(format string, args ...interface{}) {
	panic(invariantError{errors.Errorf(format, args...)})
}

func HandleReconstructPanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(invariantError); ok {
			return errors.Wrap(err.error, "tessellator invariant violated")
		}
		panic(r)
	}
	return nil
}
