// Package report prints values as indented JSON.
//
// Printable types implement Reporter and return an explicit view of
// themselves; nothing is discovered by walking struct fields.
package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// Reporter is implemented by values that can be printed.
type Reporter interface {
	Report() any
}

// Print writes r's view to w as JSON indented with four spaces.
func Print(w io.Writer, r Reporter) error {
	if r == nil {
		return fmt.Errorf("nothing to print")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.Report()); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
