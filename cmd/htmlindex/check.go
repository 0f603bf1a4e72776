package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/htmlindex/internal/indexer"
	"github.com/taigrr/htmlindex/internal/report"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [directory]",
		Short: "Fail if the index does not match the directory",
		Long: `check reads the existing index document and compares its links with the
files that would be listed now. It exits non-zero when files are missing
from the index, when the index links to files that are gone, or when no
index exists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}

			svc, err := indexer.New(cfg.Params())
			if err != nil {
				return err
			}

			result, err := svc.Check()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				if err := report.Print(out, result); err != nil {
					return err
				}
			} else if result.UpToDate {
				fmt.Fprintf(out, "%s is up to date (%d entries)\n", result.Path, len(result.Listed))
			} else {
				if len(result.Missing) > 0 {
					fmt.Fprintf(out, "missing: %s\n", strings.Join(result.Missing, ", "))
				}
				if len(result.Stale) > 0 {
					fmt.Fprintf(out, "stale: %s\n", strings.Join(result.Stale, ", "))
				}
			}

			if !result.UpToDate {
				return fmt.Errorf("%w: %s", indexer.ErrStale, result.Path)
			}
			return nil
		},
	}
}
