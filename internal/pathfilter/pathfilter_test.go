package pathfilter

import (
	"testing"

	"github.com/taigrr/htmlindex/internal/types"
)

func TestPathFilter_MatchesExtension(t *testing.T) {
	filter := New(&types.PathFilterConfig{ReservedNames: []string{"index.html"}})

	tests := []struct {
		name string
		want bool
	}{
		{"a.html", true},
		{"b.html", true},
		{"index.html", false},
		{"notes.txt", false},
		{"page.htm", false},
		{"PAGE.HTML", false},
		{"html", false},
		{"archive.html.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsCandidate(tt.name, false); got != tt.want {
				t.Errorf("IsCandidate(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPathFilter_DefaultExtension(t *testing.T) {
	filter := New(nil)
	if !filter.IsCandidate("page.html", false) {
		t.Error("default extension should be .html")
	}
	if !filter.IsCandidate("index.html", false) {
		t.Error("without reserved names index.html should be a candidate")
	}
}

func TestPathFilter_CustomExtension(t *testing.T) {
	filter := New(&types.PathFilterConfig{Extension: ".md"})

	if !filter.IsCandidate("note.md", false) {
		t.Error("IsCandidate(note.md) = false, want true")
	}
	if filter.IsCandidate("page.html", false) {
		t.Error("IsCandidate(page.html) = true, want false")
	}
}

func TestPathFilter_ReservedNames(t *testing.T) {
	filter := New(&types.PathFilterConfig{
		ReservedNames: []string{"index.html", "listing.html", "", "index.html"},
	})

	for _, name := range []string{"index.html", "listing.html"} {
		if filter.IsCandidate(name, false) {
			t.Errorf("IsCandidate(%q) = true, want false", name)
		}
	}
	if len(filter.reservedNames) != 2 {
		t.Errorf("reservedNames = %v, want 2 unique entries", filter.reservedNames)
	}
}

func TestPathFilter_ListsHiddenAndBackupsByDefault(t *testing.T) {
	filter := New(&types.PathFilterConfig{ReservedNames: []string{"index.html"}})

	tests := []string{
		".x.html",
		".draft.html",
		"copy~.html",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			if !filter.IsCandidate(name, false) {
				t.Errorf("IsCandidate(%q) = false, want true", name)
			}
		})
	}
}

func TestPathFilter_CustomIgnorePatterns(t *testing.T) {
	filter := New(&types.PathFilterConfig{
		IgnoredPatterns: []string{"draft-*.html", "{tmp,scratch}.html"},
	})

	tests := []struct {
		name string
		want bool
	}{
		{"draft-one.html", false},
		{"tmp.html", false},
		{"scratch.html", false},
		{"final.html", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsCandidate(tt.name, false); got != tt.want {
				t.Errorf("IsCandidate(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPathFilter_Directories(t *testing.T) {
	t.Run("excluded by default", func(t *testing.T) {
		filter := New(nil)
		if filter.IsCandidate("site.html", true) {
			t.Error("directory should not be a candidate by default")
		}
	})

	t.Run("included when configured", func(t *testing.T) {
		filter := New(&types.PathFilterConfig{IncludeDirs: true})
		if !filter.IsCandidate("site.html", true) {
			t.Error("directory should be a candidate with IncludeDirs")
		}
	})
}

func TestPathFilter_BackslashIsOrdinary(t *testing.T) {
	filter := New(nil)

	if !filter.IsCandidate(`x\y.html`, false) {
		t.Errorf("IsCandidate(%q) = false, want true", `x\y.html`)
	}
	if filter.IsCandidate("", false) {
		t.Error("IsCandidate(\"\") = true, want false")
	}
}

func TestPathFilter_Validate(t *testing.T) {
	if err := New(nil).Validate(); err != nil {
		t.Errorf("Validate() default error = %v", err)
	}

	filter := New(&types.PathFilterConfig{IgnoredPatterns: []string{"[a-"}})
	if err := filter.Validate(); err == nil {
		t.Error("Validate() should reject unterminated class")
	}
}
