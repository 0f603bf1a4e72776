package main

import (
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/htmlindex/internal/config"
)

var serveConfig *config.Config

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve [directory]",
		Short: "Serve index tools over MCP on stdio",
		Long: `serve runs a Model Context Protocol (MCP) server on stdin/stdout exposing
build_index, list_candidates and check_index. Tool paths are resolved
inside the served directory; paths escaping it are rejected.`,
		Example: `htmlindex serve ./docs`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			serveConfig = cfg

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "htmlindex",
				Version: version,
			}, nil)

			registerTools(server)

			log.Printf("htmlindex %s serving %s over stdio", version, cfg.Directory)
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}

			return nil
		},
	}
}
