package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/taigrr/htmlindex/internal/types"
)

type fnReporter func() any

func (f fnReporter) Report() any { return f() }

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		in   Reporter
		want string
	}{
		{
			name: "flat map",
			in:   fnReporter(func() any { return map[string]any{"a": 1} }),
			want: "{\n    \"a\": 1\n}\n",
		},
		{
			name: "nested list",
			in:   fnReporter(func() any { return map[string]any{"l": []string{"x", "y"}} }),
			want: "{\n    \"l\": [\n        \"x\",\n        \"y\"\n    ]\n}\n",
		},
		{
			name: "html is not escaped",
			in:   fnReporter(func() any { return "<a>" }),
			want: "\"<a>\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Print(&buf, tt.in); err != nil {
				t.Fatalf("Print() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrint_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, nil); err == nil {
		t.Error("Print(nil) should return error")
	}
}

func TestPrint_Unencodable(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, fnReporter(func() any { return func() {} }))
	if err == nil {
		t.Error("Print() should fail for a function value")
	}
}

func TestPrint_BuildResult(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, types.BuildResult{Path: "/tmp/docs/index.html", Bytes: 10})
	if err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"entries": []`) {
		t.Errorf("empty entries should print as [], got %s", out)
	}
	if !strings.Contains(out, `"count": 0`) {
		t.Errorf("output should contain count, got %s", out)
	}
}
