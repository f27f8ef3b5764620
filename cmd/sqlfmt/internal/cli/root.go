// Package cli implements the sqlfmt command tree with cobra, the way
// vippsas-sqlcode/cli/cmd builds its root command and persistent flags.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/freeeve/machparse/planner"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sqlfmt",
		Short:        "sqlfmt",
		SilenceUsage: true,
		Long:         `sqlfmt formats SQL source by reflowing whitespace; it never parses or validates the SQL it reformats.`,
	}

	configPath string
	uppercase  bool
	lowercase  bool
	inline     bool
	debug      bool

	logger = logrus.StandardLogger()
)

// Execute runs the sqlfmt command tree.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a sqlfmt.yaml config file")
	rootCmd.PersistentFlags().BoolVar(&uppercase, "upper", false, "uppercase reserved words")
	rootCmd.PersistentFlags().BoolVar(&lowercase, "lower", false, "lowercase reserved words")
	rootCmd.PersistentFlags().BoolVar(&inline, "inline", false, "render every statement on one line")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "dump the planned token stream instead of formatting")
	return rootCmd.Execute()
}

func resolveOptions() (*planner.Options, error) {
	var opts *planner.Options
	if configPath != "" {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return nil, err
		}
		opts = loaded
	} else {
		opts = planner.NewDefaultOptions()
	}

	if uppercase {
		opts.Case = planner.CaseUpper
	}
	if lowercase {
		opts.Case = planner.CaseLower
	}
	if inline {
		opts.Inline = true
	}
	return opts, nil
}
