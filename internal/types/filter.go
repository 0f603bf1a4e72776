package types

// PathFilterConfig contains configuration for the candidate filter.
type PathFilterConfig struct {
	Extension       string   `json:"extension"`
	ReservedNames   []string `json:"reservedNames"`
	IgnoredPatterns []string `json:"ignoredPatterns"`
	IncludeDirs     bool     `json:"includeDirs,omitempty"`
}
