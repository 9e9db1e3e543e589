package analysis

import (
	"errors"
	"fmt"
)

// Error taxonomy for analysis requests. Sub-analysis failures are
// fail-fast: any one of them rejects the whole enclosing request.
var (
	// ErrContextUnavailable means the engine is closed or was never started
	ErrContextUnavailable = errors.New("analysis context unavailable")

	// ErrDecodeFailure means the media could not be decoded
	ErrDecodeFailure = errors.New("media decode failure")

	// ErrTimeout means a frame extraction exceeded its deadline
	ErrTimeout = errors.New("extraction timed out")

	// ErrInvalidParameter means a configuration value failed validation
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAlgorithmFailure means an analysis hit a non-recoverable
	// numeric condition
	ErrAlgorithmFailure = errors.New("internal algorithm failure")
)

// StageError attributes a failure to the analysis stage it occurred in
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// stageOf extracts the stage name from an error chain, empty if untagged
func stageOf(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
