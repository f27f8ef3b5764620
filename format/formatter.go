// Package format implements the emitter of spec §4.5: it walks the
// layout planner's decisions and renders them to a string, handling
// indentation, case conversion, spacing, fmt:off/fmt:on passthrough, and
// statement separation. It never revisits or overrides a planner
// decision; it only has discretion where the spec explicitly gives it
// some (the spacing table, fmt:off detection, comment rendering).
package format

import (
	"bytes"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/freeeve/machparse/planner"
	"github.com/freeeve/machparse/token"
)

// Options is an alias of planner.Options: the layout planner and the
// emitter share one FormatOptions record (spec §3).
type Options = planner.Options

// DefaultOptions are the FormatOptions defaults from spec §3.
func DefaultOptions() *Options { return planner.NewDefaultOptions() }

var fmtOffRe = regexp.MustCompile(`(?i)fmt\s*:\s*off`)
var fmtOnRe = regexp.MustCompile(`(?i)fmt\s*:\s*on`)

// Emitter renders a planned token stream. Construct one per call to
// Format; it carries state (fmt:off toggling, last-token kind) across
// the whole stream.
type Emitter struct {
	buf  bytes.Buffer
	opts *Options
	off  bool // true while a fmt:off region is active

	lastSignificant     token.Token
	haveLastSignificant bool
	afterUnarySign      bool // previous token was a unary +/- glued to what follows
}

// New creates an Emitter for opts (nil selects DefaultOptions).
func New(opts *Options) *Emitter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Emitter{opts: opts}
}

// String returns the rendered output so far.
func (e *Emitter) String() string { return e.buf.String() }

// Emit renders planned in order, appending to the emitter's internal
// buffer. Call String afterward to read the result.
func (e *Emitter) Emit(planned []planner.PlannedToken) {
	for _, pt := range planned {
		e.emitOne(pt)
	}
}

func (e *Emitter) emitOne(pt planner.PlannedToken) {
	t := pt.Tok

	if t.Kind == token.LineComment || t.Kind == token.BlockComment {
		if fmtOffRe.MatchString(t.Text) {
			e.writeRaw(pt)
			e.off = true
			return
		}
		if fmtOnRe.MatchString(t.Text) {
			e.writeRaw(pt)
			e.off = false
			return
		}
	}

	if e.off {
		e.writeRaw(pt)
		return
	}

	switch t.Kind {
	case token.Whitespace, token.EOF:
		return // the emitter derives all spacing itself outside fmt:off
	}

	switch {
	case pt.NewlineBefore:
		e.newline(pt.BlankLines, pt.Indent)
	case t.Kind == token.Number && e.afterUnarySign:
		// no space between a unary sign and the literal it negates
	case e.haveLastSignificant && needsSpace(e.lastSignificant, t):
		e.buf.WriteByte(' ')
	}

	e.buf.WriteString(e.render(t))

	e.afterUnarySign = isUnarySign(t, e.lastSignificant, e.haveLastSignificant)
	e.lastSignificant = t
	e.haveLastSignificant = true
}

// isUnarySign reports whether t is a +/- operator used as a unary sign
// rather than a binary operator, judged by what precedes it: the start of
// the stream, or any token that cannot itself be the left-hand operand of
// a binary +/- (an opening bracket, comma, semicolon, another operator, or
// a reserved word).
func isUnarySign(t, prev token.Token, havePrev bool) bool {
	if t.Kind != token.Operator || (t.Text != "-" && t.Text != "+") {
		return false
	}
	if !havePrev {
		return true
	}
	switch prev.Kind {
	case token.OpenParen, token.OpenBracket, token.Comma, token.Semicolon, token.Operator:
		return true
	}
	return prev.Kind.IsReserved()
}

// writeRaw writes a token's exact source text unconditionally: used for
// fmt:off passthrough, where the planner's decisions are bypassed and the
// original byte sequence is reproduced verbatim (spec invariant 6).
func (e *Emitter) writeRaw(pt planner.PlannedToken) {
	e.buf.WriteString(pt.Tok.Text)
	if pt.Tok.Kind != token.Whitespace {
		e.lastSignificant = pt.Tok
		e.afterUnarySign = false
		e.haveLastSignificant = true
	}
}

func (e *Emitter) newline(blankLines uint, indent int) {
	e.buf.WriteByte('\n')
	for n := uint(0); n < blankLines; n++ {
		e.buf.WriteByte('\n')
	}
	unit := e.opts.Indent.Unit()
	for n := 0; n < indent; n++ {
		e.buf.WriteString(unit)
	}
	e.haveLastSignificant = false
}

// render applies case conversion (spec §4.5) to a single token's text.
// Only reserved words are eligible; everything else (identifiers, quoted
// identifiers, strings, numbers, operators, punctuation, placeholders)
// passes through untouched.
func (e *Emitter) render(t token.Token) string {
	if e.opts.Case == planner.CasePreserve {
		return t.Text
	}
	if !t.Kind.IsReserved() {
		return t.Text
	}
	if e.opts.IgnoreCaseConvert != nil && e.opts.IgnoreCaseConvert[t.Key] {
		return t.Text
	}
	switch e.opts.Case {
	case planner.CaseUpper:
		return upperCaser.String(t.Text)
	case planner.CaseLower:
		return lowerCaser.String(t.Text)
	default:
		return t.Text
	}
}

var upperCaser = cases.Upper(language.Und)
var lowerCaser = cases.Lower(language.Und)

// needsSpace is the small fixed spacing table of spec §4.5: given the
// previously emitted significant token and the one about to be emitted on
// the same line, decide whether a single space separates them.
func needsSpace(prev, next token.Token) bool {
	switch next.Kind {
	case token.Comma, token.Semicolon, token.CloseParen, token.CloseBracket:
		return false
	}
	switch prev.Kind {
	case token.OpenParen, token.OpenBracket:
		return false
	}
	if isDotOrCast(prev) || isDotOrCast(next) {
		// No space around "." (qualified names) or "::" (casts).
		return false
	}
	if (next.Kind == token.OpenParen || next.Kind == token.OpenBracket) && isGlueWord(prev.Kind) {
		// Glued to a preceding function/type name: no space, e.g.
		// COUNT(*), INT[], arr[1]. A top-level keyword like SELECT or
		// WHERE is never glued to a following paren/bracket.
		return false
	}
	return true
}

// isDotOrCast reports whether t is the "." or "::" operator, which never
// takes surrounding whitespace.
func isDotOrCast(t token.Token) bool {
	return t.Kind == token.Operator && (t.Text == "." || t.Text == "::")
}

// isGlueWord reports whether k is a kind that glues to a directly
// following '(' or '[': a plain identifier or a non-layout reserved word
// (function/type names), but never a top-level or newline-forcing keyword.
func isGlueWord(k token.Kind) bool {
	return k == token.Word || k == token.Reserved
}

// Format is the package-level convenience wrapper: plan then emit.
func Format(toks []token.Token, opts *Options) string {
	opts = optsOrDefault(opts)
	planned := planner.Plan(toks, opts)
	e := New(opts)
	e.Emit(planned)
	return e.String()
}

func optsOrDefault(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}
	return opts
}
