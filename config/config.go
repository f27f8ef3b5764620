// Package config loads FormatOptions from a YAML file, the way
// vippsas-sqlcode's cli/cmd package loads its own sqlcode.yaml: a plain
// struct with yaml tags, unmarshaled with gopkg.in/yaml.v3 and defaulted
// before use.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/freeeve/machparse/planner"
)

// File is the on-disk shape of a sqlfmt config file (spec §3 FormatOptions,
// renamed to lowercase snake_case keys matching the option names the spec
// itself uses).
type File struct {
	Indent struct {
		Tabs   bool `yaml:"tabs"`
		Spaces int  `yaml:"spaces"`
	} `yaml:"indent"`
	Case                string   `yaml:"case"` // "preserve" | "upper" | "lower"
	IgnoreCaseConvert    []string `yaml:"ignore_case_convert"`
	LinesBetweenQueries  *uint    `yaml:"lines_between_queries"`
	Inline               bool     `yaml:"inline"`
	MaxInlineBlock        *uint   `yaml:"max_inline_block"`
	MaxInlineArguments    *uint   `yaml:"max_inline_arguments"`
	MaxInlineTopLevel     *uint   `yaml:"max_inline_top_level"`
	JoinsAsTopLevel       bool    `yaml:"joins_as_top_level"`
}

// Load reads and parses the YAML file at path into FormatOptions, applying
// spec §3 defaults for every field the file leaves unset.
func Load(path string) (*planner.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return f.toOptions()
}

func (f File) toOptions() (*planner.Options, error) {
	opts := planner.NewDefaultOptions()

	if f.Indent.Tabs {
		opts.Indent = planner.TabsIndent
	} else if f.Indent.Spaces > 0 {
		opts.Indent = planner.Spaces(f.Indent.Spaces)
	}

	switch f.Case {
	case "", "preserve":
		opts.Case = planner.CasePreserve
	case "upper":
		opts.Case = planner.CaseUpper
	case "lower":
		opts.Case = planner.CaseLower
	default:
		return nil, errors.New("config: case must be one of preserve, upper, lower")
	}

	if len(f.IgnoreCaseConvert) > 0 {
		opts.IgnoreCaseConvert = make(map[string]bool, len(f.IgnoreCaseConvert))
		for _, w := range f.IgnoreCaseConvert {
			opts.IgnoreCaseConvert[w] = true
		}
	}

	if f.LinesBetweenQueries != nil {
		opts.LinesBetweenQueries = *f.LinesBetweenQueries
	}
	opts.Inline = f.Inline
	if f.MaxInlineBlock != nil {
		opts.MaxInlineBlock = *f.MaxInlineBlock
	}
	opts.MaxInlineArguments = f.MaxInlineArguments
	opts.MaxInlineTopLevel = f.MaxInlineTopLevel
	opts.JoinsAsTopLevel = f.JoinsAsTopLevel

	return opts, nil
}
