package report

import (
	"bytes"
	"fmt"
	"os"
)

// WriteStepOutputs publishes the summary to the invoking workflow, when one
// is present: a structured output value via the file named by
// GITHUB_OUTPUT, and the Markdown summary via GITHUB_STEP_SUMMARY. Outside
// a workflow (neither variable set) this is a no-op.
func WriteStepOutputs(s Summary) error {
	if path := os.Getenv("GITHUB_OUTPUT"); path != "" {
		// Single-line values: the per-issue lines are comma-joined.
		content := fmt.Sprintf("unassigned=%s\ncount=%d\n", s.Join(", "), s.Removed())
		if err := appendFile(path, []byte(content)); err != nil {
			return fmt.Errorf("failed to write step output: %w", err)
		}
	}

	if path := os.Getenv("GITHUB_STEP_SUMMARY"); path != "" {
		var buf bytes.Buffer
		if err := (&MarkdownFormatter{}).Format(s, &buf); err != nil {
			return err
		}
		if err := appendFile(path, buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write step summary: %w", err)
		}
	}

	return nil
}

func appendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = f.Write(data)
	return err
}
