package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/freeeve/machparse"
	"github.com/freeeve/machparse/lexer"
	"github.com/freeeve/machparse/planner"
)

var formatCmd = &cobra.Command{
	Use:   "format [file ...]",
	Short: "Format SQL source and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return formatReader(os.Stdin, opts)
		}
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			err = formatReader(f, opts)
			f.Close()
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func formatReader(r io.Reader, opts *planner.Options) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	source := string(data)

	if debug {
		toks := lexer.Tokenize(source)
		planned := planner.Plan(toks, opts)
		repr.Println(planned)
		return nil
	}

	out := machparse.Format(source, machparse.NoParams, opts)
	_, err = fmt.Println(out)
	return err
}
