package lesson

import "github.com/google/uuid"

// RunIDFunc returns the identifier attached to every log line of one tour run.
type RunIDFunc func() string

// NewRunID returns a time-ordered UUIDv7, so run IDs sort by start time in
// aggregated logs.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// StaticRunID always returns id. Tests use it to get stable log fields.
func StaticRunID(id string) RunIDFunc {
	return func() string { return id }
}
