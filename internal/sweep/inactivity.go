package sweep

import (
	"fmt"
	"time"

	"github.com/hal/stalesweep/internal/model"
)

// Qualifies reports whether an issue is eligible for further processing:
// it must have at least one assignee and its inactivity must strictly
// exceed the threshold. Equality does not qualify.
func Qualifies(issue model.Issue, now time.Time, threshold time.Duration) bool {
	if len(issue.Assignees) == 0 {
		return false
	}
	return issue.InactiveFor(now) > threshold
}

// humanDuration renders a threshold for the unassignment comment, e.g.
// "30 days", "6 hours", "45 minutes".
func humanDuration(d time.Duration) string {
	day := 24 * time.Hour
	switch {
	case d >= day && d%day == 0:
		return plural(int(d/day), "day")
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/time.Minute), "minute")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
