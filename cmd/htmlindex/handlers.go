package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/htmlindex/internal/indexer"
)

func serviceFor(path, title string) (*indexer.Service, error) {
	params := serveConfig.Params()

	dir, err := indexer.ResolveDir(params.Directory, path)
	if err != nil {
		return nil, err
	}
	params.Directory = dir
	if title != "" {
		params.Title = title
	}

	return indexer.New(params)
}

func handleBuild(ctx context.Context, req *mcp.CallToolRequest, input BuildInput) (*mcp.CallToolResult, BuildOutput, error) {
	svc, err := serviceFor(input.Path, input.Title)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, BuildOutput{}, err
	}

	result, err := svc.Build()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, BuildOutput{}, err
	}

	return nil, BuildOutput{
		Path:    result.Path,
		Entries: nonNil(result.Entries),
		Bytes:   result.Bytes,
	}, nil
}

func handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	svc, err := serviceFor(input.Path, "")
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	names, err := svc.Candidates()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	return nil, ListOutput{
		Directory: svc.Params().Directory,
		Entries:   nonNil(names),
	}, nil
}

func handleCheck(ctx context.Context, req *mcp.CallToolRequest, input CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
	svc, err := serviceFor(input.Path, "")
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CheckOutput{}, err
	}

	result, err := svc.Check()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CheckOutput{}, err
	}

	return nil, CheckOutput{
		Path:     result.Path,
		UpToDate: result.UpToDate,
		Missing:  nonNil(result.Missing),
		Stale:    nonNil(result.Stale),
	}, nil
}

// nonNil keeps empty lists as [] in tool output.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
