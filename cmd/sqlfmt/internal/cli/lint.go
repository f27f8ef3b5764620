package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/freeeve/machparse/diagnostics"
)

var lintCmd = &cobra.Command{
	Use:   "lint [file ...]",
	Short: "Report structural warnings (unbalanced brackets, unterminated literals, dangling fmt:off) without formatting",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return lintReader("<stdin>", os.Stdin)
		}
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			err = lintReader(path, f)
			f.Close()
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func lintReader(name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	warnings := diagnostics.Diagnose(string(data))
	for _, w := range warnings {
		logger.WithField("file", name).Warn(w.Error())
	}
	return nil
}
