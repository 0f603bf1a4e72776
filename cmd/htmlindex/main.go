// Package main implements the htmlindex command.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/htmlindex/internal/indexer"
	"github.com/taigrr/htmlindex/internal/report"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "htmlindex [directory]",
		Short: "Write an index.html linking every HTML file in a directory",
		Long: `htmlindex scans a directory for files with a given suffix and writes a
minimal HTML document linking to each of them. The index is written into
the scanned directory and never lists itself.

Settings come from .htmlindex.yaml or .htmlindex.toml in the working
directory when present; flags override them.`,
		Example: `htmlindex ./docs
htmlindex --ext .htm --title "Site pages" public
htmlindex check ./docs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, args, dryRun)
		},
	}

	opts.bind(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the document instead of writing it")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newWatchCmd(opts))
	cmd.AddCommand(newServeCmd(opts))

	return cmd
}

func runBuild(cmd *cobra.Command, opts *options, args []string, dryRun bool) error {
	cfg, err := opts.resolve(cmd, args)
	if err != nil {
		return err
	}

	svc, err := indexer.New(cfg.Params())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if dryRun {
		doc, _, err := svc.Document()
		if err != nil {
			return err
		}
		_, err = out.Write(doc)
		return err
	}

	result, err := svc.Build()
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return report.Print(out, result)
	}
	fmt.Fprintf(out, "Wrote %s (%d entries)\n", result.Path, len(result.Entries))
	return nil
}
