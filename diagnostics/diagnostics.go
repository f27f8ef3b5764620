// Package diagnostics reports structural warnings about a SQL source
// string without parsing or validating it: the formatter's no-panic
// contract (spec §4.1, §7) means malformed input must still produce
// output, but a caller may want to know why that output looks odd.
//
// Diagnose never returns an error and never blocks formatting; it is an
// optional companion call, grounded on parser.ParseError's
// Pos+Message+Error() shape with the AST-specific meaning stripped out.
package diagnostics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/freeeve/machparse/lexer"
	"github.com/freeeve/machparse/token"
)

// Warning is a single structural observation about the token stream.
type Warning struct {
	Pos     token.Pos
	Message string
}

func (w Warning) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", w.Pos.Line, w.Pos.Column, w.Message)
}

// Diagnose tokenizes source and reports unterminated literals/comments,
// unbalanced brackets, and dangling fmt:off regions. It performs no
// grammar validation: spec's Non-goals explicitly exclude checking
// whether the input is valid SQL.
func Diagnose(source string) []Warning {
	toks := lexer.Tokenize(source)

	var warnings []Warning
	warnings = append(warnings, checkUnterminated(toks)...)
	warnings = append(warnings, checkBrackets(toks)...)
	warnings = append(warnings, checkFmtOff(toks)...)
	return warnings
}

func checkUnterminated(toks []token.Token) []Warning {
	var out []Warning
	for _, t := range toks {
		switch t.Kind {
		case token.String:
			if len(t.Text) < 2 || !sameQuoteEnds(t.Text) {
				out = append(out, Warning{Pos: t.Pos, Message: "unterminated string literal, extends to end of input"})
			}
		case token.BlockComment:
			if !strings.HasSuffix(t.Text, "*/") {
				out = append(out, Warning{Pos: t.Pos, Message: "unterminated block comment, extends to end of input"})
			}
		case token.DollarQuotedString:
			if !dollarQuoteClosed(t.Text) {
				out = append(out, Warning{Pos: t.Pos, Message: "unterminated dollar-quoted string, extends to end of input"})
			}
		}
	}
	return out
}

func sameQuoteEnds(s string) bool {
	q := s[0]
	if q != '\'' && q != '"' && q != '`' {
		return true // not a recognized quote char; leave to the lexer
	}
	return len(s) >= 2 && s[len(s)-1] == q
}

func dollarQuoteClosed(s string) bool {
	if !strings.HasPrefix(s, "$") {
		return true
	}
	end := strings.Index(s[1:], "$")
	if end < 0 {
		return false
	}
	tag := s[:end+2] // "$tag$"
	return strings.HasSuffix(s, tag) && len(s) > len(tag)
}

func checkBrackets(toks []token.Token) []Warning {
	var out []Warning
	type open struct {
		kind token.Kind
		pos  token.Pos
	}
	var stack []open
	for _, t := range toks {
		switch t.Kind {
		case token.OpenParen, token.OpenBracket:
			stack = append(stack, open{kind: t.Kind, pos: t.Pos})
		case token.CloseParen, token.CloseBracket:
			want := token.OpenParen
			if t.Kind == token.CloseBracket {
				want = token.OpenBracket
			}
			if len(stack) == 0 || stack[len(stack)-1].kind != want {
				out = append(out, Warning{Pos: t.Pos, Message: "unmatched closing bracket"})
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}
	for _, o := range stack {
		sym := "("
		if o.kind == token.OpenBracket {
			sym = "["
		}
		out = append(out, Warning{Pos: o.pos, Message: fmt.Sprintf("unmatched opening %q", sym)})
	}
	return out
}

// fmtOffRe and fmtOnRe match the same directive spellings the emitter
// toggles on (package format).
var fmtOffRe = regexp.MustCompile(`(?i)fmt\s*:\s*off`)
var fmtOnRe = regexp.MustCompile(`(?i)fmt\s*:\s*on`)

func checkFmtOff(toks []token.Token) []Warning {
	var out []Warning
	var pending *token.Pos
	for _, t := range toks {
		if t.Kind != token.LineComment && t.Kind != token.BlockComment {
			continue
		}
		switch {
		case fmtOffRe.MatchString(t.Text):
			pos := t.Pos
			pending = &pos
		case fmtOnRe.MatchString(t.Text):
			pending = nil
		}
	}
	if pending != nil {
		out = append(out, Warning{Pos: *pending, Message: "fmt:off has no matching fmt:on, rest of input passed through verbatim"})
	}
	return out
}
