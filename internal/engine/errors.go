package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors forming the caller-facing taxonomy. Callers match
// them with errors.Is; the wrapped cause stays available via Unwrap.
var (
	// ErrInvalidInput marks a rejected request parameter, such as an
	// out-of-range quality score or an empty id.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a missing ProgressRecord, subject, or lesson.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable marks a storage outage. The failed write is
	// atomic: no record is left partially updated.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// GraphInconsistencyError reports bad content data: a dependency cycle
// or dangling prerequisite references. Recommendation requests recover
// from it automatically; it is returned only from content validation
// and import, where the authoring error must reach the operator.
type GraphInconsistencyError struct {
	Problems []string
	Err      error
}

func (e *GraphInconsistencyError) Error() string {
	if len(e.Problems) > 0 {
		return fmt.Sprintf("subject graph inconsistent: %s", strings.Join(e.Problems, "; "))
	}
	return fmt.Sprintf("subject graph inconsistent: %v", e.Err)
}

func (e *GraphInconsistencyError) Unwrap() error { return e.Err }
