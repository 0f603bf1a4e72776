package main

import (
	"github.com/spf13/cobra"
	"github.com/taigrr/htmlindex/internal/config"
)

// options holds the flags shared by every subcommand.
type options struct {
	configPath  string
	extension   string
	exclude     string
	output      string
	title       string
	ignore      []string
	includeDirs bool
	jsonOutput  bool
}

func (o *options) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "Config file (.yaml, .yml or .toml); defaults to ./.htmlindex.{yaml,yml,toml}")
	flags.StringVarP(&o.extension, "ext", "e", "", "File suffix to list (default \".html\")")
	flags.StringVar(&o.exclude, "exclude", "", "File name never listed (default: the output name)")
	flags.StringVarP(&o.output, "output", "o", "", "Index file name written inside the directory (default \"index.html\")")
	flags.StringVarP(&o.title, "title", "t", "", "Document title and heading")
	flags.StringArrayVar(&o.ignore, "ignore", nil, "Glob of names to skip (repeatable)")
	flags.BoolVar(&o.includeDirs, "include-dirs", false, "List subdirectories whose names match the suffix")
	flags.BoolVar(&o.jsonOutput, "json", false, "Print results as JSON")
}

// resolve loads the config file and applies flags and the optional
// directory argument on top of it.
func (o *options) resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Directory = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("ext") {
		cfg.Extension = o.extension
	}
	if flags.Changed("output") {
		cfg.Output = o.output
		if !flags.Changed("exclude") {
			cfg.Exclude = o.output
		}
	}
	if flags.Changed("exclude") {
		cfg.Exclude = o.exclude
	}
	if flags.Changed("title") {
		cfg.Title = o.title
	}
	if flags.Changed("ignore") {
		cfg.Ignore = append(cfg.Ignore, o.ignore...)
	}
	if flags.Changed("include-dirs") {
		cfg.IncludeDirs = o.includeDirs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
