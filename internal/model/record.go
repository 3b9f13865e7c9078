package model

// UnassignmentRecord captures one user removed from one issue during a run.
// Records are append-only and live only for the duration of the run; the
// reporter groups them by issue for the summary.
type UnassignmentRecord struct {
	User        string `json:"user"`
	Owner       string `json:"owner"`
	Repo        string `json:"repo"`
	IssueNumber int    `json:"issueNumber"`
	IssueURL    string `json:"issueUrl"`
}
