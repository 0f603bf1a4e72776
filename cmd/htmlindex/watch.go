package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/taigrr/htmlindex/internal/indexer"
	"github.com/taigrr/htmlindex/internal/watcher"
)

func newWatchCmd(opts *options) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Rebuild the index whenever the directory changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("debounce") {
				debounce, err = cfg.DebounceDuration()
				if err != nil {
					return err
				}
			}

			svc, err := indexer.New(cfg.Params())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Printf("htmlindex %s watching %s", version, cfg.Directory)
			if err := watcher.New(svc, debounce).Run(ctx); err != nil {
				return err
			}
			log.Println("Stopped watching")
			return nil
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "Quiet period before rebuilding")

	return cmd
}
