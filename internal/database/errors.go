package database

import "errors"

// Store-level errors. Both are terminal; the store never retries.
var (
	// ErrTaskNotFound is returned by existence-guarded operations when
	// the given id has no corresponding row.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNotInBucket is returned by UpdateOrder when a requested id is
	// not a member of the target (date, period) bucket. The wrapping
	// error names the offending id.
	ErrNotInBucket = errors.New("task does not belong to bucket")
)
