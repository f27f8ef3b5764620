package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/freeeve/machparse/planner"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlfmt.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "")
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := planner.NewDefaultOptions()
	if opts.Indent != def.Indent || opts.Case != def.Case || opts.LinesBetweenQueries != def.LinesBetweenQueries {
		t.Errorf("unset fields should fall back to spec defaults, got %+v", opts)
	}
}

func TestLoadOverridesIndentAndCase(t *testing.T) {
	path := writeConfig(t, `
indent:
  spaces: 4
case: upper
lines_between_queries: 2
joins_as_top_level: true
`)
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Indent != planner.Spaces(4) {
		t.Errorf("indent.spaces = %+v, want Spaces(4)", opts.Indent)
	}
	if opts.Case != planner.CaseUpper {
		t.Errorf("case = %v, want CaseUpper", opts.Case)
	}
	if opts.LinesBetweenQueries != 2 {
		t.Errorf("lines_between_queries = %d, want 2", opts.LinesBetweenQueries)
	}
	if !opts.JoinsAsTopLevel {
		t.Error("joins_as_top_level = false, want true")
	}
}

func TestLoadTabsIndent(t *testing.T) {
	path := writeConfig(t, "indent:\n  tabs: true\n")
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !opts.Indent.Tabs {
		t.Error("expected tabs indent style")
	}
}

func TestLoadIgnoreCaseConvert(t *testing.T) {
	path := writeConfig(t, "case: upper\nignore_case_convert: [select, from]\n")
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !opts.IgnoreCaseConvert["select"] || !opts.IgnoreCaseConvert["from"] {
		t.Errorf("ignore_case_convert not applied, got %v", opts.IgnoreCaseConvert)
	}
}

func TestLoadInvalidCase(t *testing.T) {
	path := writeConfig(t, "case: loud\n")
	if _, err := Load(path); err == nil {
		t.Error("expected an error for an invalid case value")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/sqlfmt.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadMaxInlineOverrides(t *testing.T) {
	path := writeConfig(t, "max_inline_block: 80\nmax_inline_top_level: 120\n")
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.MaxInlineBlock != 80 {
		t.Errorf("max_inline_block = %d, want 80", opts.MaxInlineBlock)
	}
	if opts.MaxInlineTopLevel == nil || *opts.MaxInlineTopLevel != 120 {
		t.Errorf("max_inline_top_level = %v, want 120", opts.MaxInlineTopLevel)
	}
}
