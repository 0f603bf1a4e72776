// Package pathfilter decides which directory entries belong in an index.
package pathfilter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/taigrr/htmlindex/internal/types"
)

// DefaultExtension is used when the config leaves the extension empty.
const DefaultExtension = ".html"

// PathFilter filters directory entries down to index candidates.
type PathFilter struct {
	extension       string
	reservedNames   []string
	ignoredPatterns []string
	includeDirs     bool
}

// New creates a new PathFilter with the given configuration.
// Nothing is ignored unless the config names ignore patterns.
func New(config *types.PathFilterConfig) *PathFilter {
	pf := &PathFilter{
		extension: DefaultExtension,
	}

	if config != nil {
		if config.Extension != "" {
			pf.extension = config.Extension
		}
		for _, name := range config.ReservedNames {
			if name != "" && !slices.Contains(pf.reservedNames, name) {
				pf.reservedNames = append(pf.reservedNames, name)
			}
		}
		pf.ignoredPatterns = append(pf.ignoredPatterns, config.IgnoredPatterns...)
		pf.includeDirs = config.IncludeDirs
	}

	return pf
}

// Validate reports the first malformed ignore pattern, if any.
func (pf *PathFilter) Validate() error {
	for _, pattern := range pf.ignoredPatterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid ignore pattern: %q", pattern)
		}
	}
	return nil
}

// IsCandidate checks if an entry name, as returned by os.ReadDir, belongs in
// the index. The suffix comparison is exact and case-sensitive.
func (pf *PathFilter) IsCandidate(name string, isDir bool) bool {
	if isDir && !pf.includeDirs {
		return false
	}

	if !strings.HasSuffix(name, pf.extension) {
		return false
	}

	if slices.Contains(pf.reservedNames, name) {
		return false
	}

	for _, pattern := range pf.ignoredPatterns {
		// Malformed patterns never match; Validate reports them.
		if matched, _ := doublestar.Match(pattern, name); matched {
			return false
		}
	}

	return true
}
