// Package machparse provides a dialect-agnostic SQL pretty-printer.
//
// machparse reformats SQL source text by tokenizing it, planning a
// layout, and re-emitting it with new whitespace — it never builds an
// AST and never validates that the input is syntactically correct SQL.
// Malformed or partial input is formatted best-effort rather than
// rejected (Format never panics and never returns an error).
//
// Basic usage:
//
//	out := machparse.Format("select id,name from users where id=1", machparse.NoParams, nil)
//	fmt.Println(out)
//
// Bound parameters are substituted before layout:
//
//	out := machparse.Format("select * from t where id = ?", machparse.Indexed("42"), nil)
//
// Layout and spacing are controlled by format.Options (nil selects the
// spec defaults: two-space indent, preserved case, columnar top-level
// clauses).
package machparse

import (
	"github.com/freeeve/machparse/format"
	"github.com/freeeve/machparse/lexer"
	"github.com/freeeve/machparse/params"
)

// Options is the FormatOptions record controlling layout and rendering.
type Options = format.Options

// NoParams is the QueryParams "None" variant: placeholders pass through
// unresolved.
var NoParams = params.None

// Indexed builds a QueryParams bound to an ordered list of values,
// consumed by position from ?, ?N, or $N placeholders.
func Indexed(values ...string) params.Params { return params.Indexed(values...) }

// Named starts building a QueryParams bound by name, consumed from
// :name, @name, or {name} placeholders via Set and Build.
func Named() params.NamedParams { return params.Named() }

// Format tokenizes source, resolves p against any placeholders, plans a
// layout, and renders it. opts may be nil to select the package defaults.
func Format(source string, p params.Params, opts *Options) string {
	toks := lexer.Tokenize(source)
	toks = p.Resolve(toks)
	return format.Format(toks, opts)
}

// DefaultOptions returns the spec-default FormatOptions, safe to mutate
// and pass to Format.
func DefaultOptions() *Options { return format.DefaultOptions() }
