// Package sweep implements the stale-assignee sweep: inactivity filtering,
// linked-work detection, assignee classification, and the mutation pass.
package sweep

import (
	"time"

	"github.com/hal/stalesweep/internal/model"
)

// Config holds the parameters for one sweep run.
type Config struct {
	Owner string
	Repo  string

	// Threshold is the inactivity duration an issue must strictly exceed
	// before its assignees are considered for removal. Required.
	Threshold time.Duration

	// ExemptUsers are never unassigned, regardless of activity.
	ExemptUsers []string

	// DryRun reports what would change without performing any mutation.
	DryRun bool

	// CallTimeout bounds each individual API call. Zero disables the
	// per-call deadline.
	CallTimeout time.Duration
}

// Result is the outcome of one sweep run. Records is the explicit
// accumulator consumed by the reporter; it is never shared across runs.
type Result struct {
	Records []model.UnassignmentRecord

	Scanned   int // open issues examined
	Qualified int // past the inactivity threshold with assignees
	Guarded   int // exempted by a linked open pull request
	Updated   int // issues actually mutated (or would-be, in dry-run)
	DryRun    bool
}
