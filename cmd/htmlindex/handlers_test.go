package main

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/taigrr/htmlindex/internal/config"
)

func setupServeConfig(t *testing.T, root string) {
	t.Helper()
	cfg := config.Default()
	cfg.Directory = root
	serveConfig = cfg
	t.Cleanup(func() { serveConfig = nil })
}

func TestHandleBuild(t *testing.T) {
	root := setupTestDir(t, "a.html")
	sub := filepath.Join(root, "guide")
	os.Mkdir(sub, 0o755)
	os.WriteFile(filepath.Join(sub, "intro.html"), []byte("x"), 0o644)
	setupServeConfig(t, root)

	t.Run("root", func(t *testing.T) {
		res, out, err := handleBuild(context.Background(), nil, BuildInput{})
		if err != nil {
			t.Fatalf("handleBuild() error = %v", err)
		}
		if res != nil {
			t.Errorf("result = %+v, want nil", res)
		}
		if !slices.Equal(out.Entries, []string{"a.html"}) {
			t.Errorf("Entries = %v, want [a.html]", out.Entries)
		}
	})

	t.Run("subdirectory with title", func(t *testing.T) {
		_, out, err := handleBuild(context.Background(), nil, BuildInput{Path: "guide", Title: "Guide"})
		if err != nil {
			t.Fatalf("handleBuild() error = %v", err)
		}
		if out.Path != filepath.Join(sub, "index.html") {
			t.Errorf("Path = %q, want %q", out.Path, filepath.Join(sub, "index.html"))
		}
		content, err := os.ReadFile(out.Path)
		if err != nil {
			t.Fatalf("index not written: %v", err)
		}
		if !strings.Contains(string(content), "<h1>Guide</h1>") {
			t.Error("index should use the requested title")
		}
		if !slices.Equal(out.Entries, []string{"intro.html"}) {
			t.Errorf("Entries = %v, want [intro.html]", out.Entries)
		}
	})

	t.Run("traversal rejected", func(t *testing.T) {
		res, _, err := handleBuild(context.Background(), nil, BuildInput{Path: "../"})
		if err == nil {
			t.Fatal("handleBuild() should reject traversal")
		}
		if res == nil || !res.IsError {
			t.Error("result should be marked as error")
		}
	})
}

func TestHandleList(t *testing.T) {
	root := setupTestDir(t, "b.html", "a.html", "c.txt")
	setupServeConfig(t, root)

	_, out, err := handleList(context.Background(), nil, ListInput{})
	if err != nil {
		t.Fatalf("handleList() error = %v", err)
	}
	if !slices.Equal(out.Entries, []string{"a.html", "b.html"}) {
		t.Errorf("Entries = %v, want [a.html b.html]", out.Entries)
	}
	if _, err := os.Stat(filepath.Join(root, "index.html")); !os.IsNotExist(err) {
		t.Error("handleList() should not write the index")
	}

	empty := filepath.Join(root, "empty")
	os.Mkdir(empty, 0o755)
	_, out, err = handleList(context.Background(), nil, ListInput{Path: "empty"})
	if err != nil {
		t.Fatalf("handleList() error = %v", err)
	}
	if out.Entries == nil || len(out.Entries) != 0 {
		t.Errorf("Entries = %#v, want empty non-nil list", out.Entries)
	}
}

func TestHandleCheck(t *testing.T) {
	root := setupTestDir(t, "a.html")
	setupServeConfig(t, root)

	_, out, err := handleCheck(context.Background(), nil, CheckInput{})
	if err != nil {
		t.Fatalf("handleCheck() error = %v", err)
	}
	if out.UpToDate {
		t.Error("UpToDate = true before build")
	}

	if _, _, err := handleBuild(context.Background(), nil, BuildInput{}); err != nil {
		t.Fatalf("handleBuild() error = %v", err)
	}

	_, out, err = handleCheck(context.Background(), nil, CheckInput{})
	if err != nil {
		t.Fatalf("handleCheck() error = %v", err)
	}
	if !out.UpToDate {
		t.Errorf("UpToDate = false after build: %+v", out)
	}

	res, _, err := handleCheck(context.Background(), nil, CheckInput{Path: "missing"})
	if err == nil || res == nil || !res.IsError {
		t.Errorf("handleCheck() on missing dir = %v, %v", res, err)
	}
}
