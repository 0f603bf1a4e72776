package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// BuildInput contains parameters for building an index.
	BuildInput struct {
		Path  string `json:"path,omitempty" jsonschema:"Directory relative to the served root (default: root)"`
		Title string `json:"title,omitempty" jsonschema:"Document title and heading (default: configured title)"`
	}

	// BuildOutput contains the result of building an index.
	BuildOutput struct {
		Path    string   `json:"path"`
		Entries []string `json:"entries"`
		Bytes   int      `json:"bytes"`
	}

	// ListInput contains parameters for listing index candidates.
	ListInput struct {
		Path string `json:"path,omitempty" jsonschema:"Directory relative to the served root (default: root)"`
	}

	// ListOutput contains the files an index would link to.
	ListOutput struct {
		Directory string   `json:"directory"`
		Entries   []string `json:"entries"`
	}

	// CheckInput contains parameters for checking an index.
	CheckInput struct {
		Path string `json:"path,omitempty" jsonschema:"Directory relative to the served root (default: root)"`
	}

	// CheckOutput compares the existing index with the directory.
	CheckOutput struct {
		Path     string   `json:"path"`
		UpToDate bool     `json:"upToDate"`
		Missing  []string `json:"missing"`
		Stale    []string `json:"stale"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_index",
		Description: "Write the index document for a directory, linking every file with the configured suffix. Overwrites any existing index.",
	}, handleBuild)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_candidates",
		Description: "List the files the index of a directory would link to, sorted by name, without writing anything.",
	}, handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_index",
		Description: "Compare the existing index document of a directory with its current files. Reports missing and stale entries.",
	}, handleCheck)
}
