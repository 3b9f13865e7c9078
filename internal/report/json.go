package report

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats the summary as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format outputs the summary as JSON
func (f *JSONFormatter) Format(s Summary, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(s)
}
