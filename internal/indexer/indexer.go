// Package indexer builds HTML index documents for a directory.
package indexer

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/taigrr/htmlindex/internal/linkcheck"
	"github.com/taigrr/htmlindex/internal/pathfilter"
	"github.com/taigrr/htmlindex/internal/render"
	"github.com/taigrr/htmlindex/internal/types"
)

// DefaultOutput is the index file name used when none is configured.
const DefaultOutput = "index.html"

// Service builds and checks the index of one directory.
type Service struct {
	params     types.IndexParams
	dirPath    string
	pathFilter *pathfilter.PathFilter
}

// New creates a new Service for the given parameters.
func New(params types.IndexParams) (*Service, error) {
	params = withDefaults(params)

	if strings.TrimSpace(params.Directory) == "" {
		return nil, fmt.Errorf("%w: directory is required", ErrInvalidParams)
	}
	if !isPlainName(params.Output) {
		return nil, fmt.Errorf("%w: output must be a file name, got %q", ErrInvalidParams, params.Output)
	}

	pf := pathfilter.New(&types.PathFilterConfig{
		Extension: params.Extension,
		// The output is always reserved so the index never lists itself.
		ReservedNames:   []string{params.Exclude, params.Output},
		IgnoredPatterns: params.Ignore,
		IncludeDirs:     params.IncludeDirs,
	})
	if err := pf.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	absPath, err := filepath.Abs(params.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory: %s - %w", params.Directory, err)
	}
	return &Service{
		params:     params,
		dirPath:    absPath,
		pathFilter: pf,
	}, nil
}

func withDefaults(params types.IndexParams) types.IndexParams {
	if params.Extension == "" {
		params.Extension = pathfilter.DefaultExtension
	}
	if params.Output == "" {
		params.Output = DefaultOutput
	}
	if params.Exclude == "" {
		params.Exclude = params.Output
	}
	if strings.TrimSpace(params.Title) == "" {
		params.Title = render.DefaultTitle
	}
	return params
}

func isPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// Params returns the effective parameters after defaults were applied.
func (s *Service) Params() types.IndexParams {
	return s.params
}

// OutputPath returns the absolute path of the index document.
func (s *Service) OutputPath() string {
	return filepath.Join(s.dirPath, s.params.Output)
}

// Candidates lists the entries that belong in the index, sorted by name.
// Only the directory itself is read; subdirectories are not descended into.
func (s *Service) Candidates() ([]string, error) {
	entries, err := os.ReadDir(s.dirPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("directory not found: %s: %w", s.params.Directory, err)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("permission denied: %s: %w", s.params.Directory, err)
		}
		return nil, fmt.Errorf("failed to list directory: %s - %w", s.params.Directory, err)
	}

	var names []string
	for _, entry := range entries {
		if s.pathFilter.IsCandidate(entry.Name(), s.isDir(entry)) {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)
	return names, nil
}

// isDir follows symlinks so a link to a directory counts as a directory.
func (s *Service) isDir(entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(s.dirPath, entry.Name()))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Document renders the index document without writing it.
func (s *Service) Document() ([]byte, []string, error) {
	names, err := s.Candidates()
	if err != nil {
		return nil, nil, err
	}
	return render.Document(s.params.Title, names), names, nil
}

// Build renders the index and writes it into the directory, replacing any
// previous index.
func (s *Service) Build() (types.BuildResult, error) {
	doc, names, err := s.Document()
	if err != nil {
		return types.BuildResult{}, err
	}

	outPath := s.OutputPath()
	if err := os.WriteFile(outPath, doc, 0o644); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return types.BuildResult{}, fmt.Errorf("permission denied: %s: %w", outPath, err)
		}
		return types.BuildResult{}, fmt.Errorf("failed to write index: %s - %w", outPath, err)
	}

	return types.BuildResult{
		Path:    outPath,
		Entries: names,
		Bytes:   len(doc),
	}, nil
}

// Check compares the index document on disk with the current candidates.
// A missing index is reported as out of date, not as an error.
func (s *Service) Check() (types.CheckResult, error) {
	names, err := s.Candidates()
	if err != nil {
		return types.CheckResult{}, err
	}

	outPath := s.OutputPath()
	result := types.CheckResult{Path: outPath}

	content, err := os.ReadFile(outPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return types.CheckResult{}, fmt.Errorf("failed to read index: %s - %w", outPath, err)
	}
	exists := err == nil

	if exists {
		result.Listed, err = linkcheck.Links(bytes.NewReader(content))
		if err != nil {
			return types.CheckResult{}, fmt.Errorf("failed to read index: %s - %w", outPath, err)
		}
	}

	result.Missing, result.Stale = linkcheck.Diff(result.Listed, names)
	result.UpToDate = exists && slices.Equal(result.Listed, names)

	return result, nil
}

// ResolveDir resolves a directory relative to root and refuses paths that
// escape it.
func ResolveDir(root, relativePath string) (string, error) {
	rootPath, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")

	absPath, err := filepath.Abs(filepath.Join(rootPath, relativePath))
	if err != nil {
		return "", err
	}

	relPath, err := filepath.Rel(rootPath, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}
