// Package types defines the data structures shared across htmlindex packages.
package types

type (
	// IndexParams describes one index build.
	IndexParams struct {
		Directory   string   `json:"directory"`
		Extension   string   `json:"extension"`
		Exclude     string   `json:"exclude"`
		Output      string   `json:"output"`
		Title       string   `json:"title,omitempty"`
		Ignore      []string `json:"ignore,omitempty"`
		IncludeDirs bool     `json:"includeDirs,omitempty"`
	}

	// BuildResult contains the result of writing an index document.
	BuildResult struct {
		Path    string   `json:"path"`
		Entries []string `json:"entries"`
		Bytes   int      `json:"bytes"`
	}

	// CheckResult compares an existing index document with the current candidates.
	CheckResult struct {
		Path     string   `json:"path"`
		Listed   []string `json:"listed"`
		Missing  []string `json:"missing"`
		Stale    []string `json:"stale"`
		UpToDate bool     `json:"upToDate"`
	}
)

// Report returns the printable view of the build result.
func (r BuildResult) Report() any {
	entries := r.Entries
	if entries == nil {
		entries = []string{}
	}
	return map[string]any{
		"path":    r.Path,
		"entries": entries,
		"count":   len(entries),
		"bytes":   r.Bytes,
	}
}

// Report returns the printable view of the check result.
func (r CheckResult) Report() any {
	return map[string]any{
		"path":     r.Path,
		"listed":   nonNil(r.Listed),
		"missing":  nonNil(r.Missing),
		"stale":    nonNil(r.Stale),
		"upToDate": r.UpToDate,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
