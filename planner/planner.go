// Package planner implements the layout planner of spec §4.4: it walks a
// resolved token stream and decides, for every token, whether a line break
// precedes it and at what indentation level, without touching spacing or
// case — those are the emitter's job (package format).
//
// The algorithm is adapted from parser.Parser's cursor-based recursive
// descent (machparse/parser/parser.go): a single forward index over the
// token slice, structural state tracked on an explicit frame stack instead
// of building an AST node per step.
package planner

import (
	"strings"

	"github.com/freeeve/machparse/token"
)

// PlannedToken pairs a token with the planner's layout decision. Comment
// and whitespace tokens are carried through unchanged so the emitter can
// reproduce a fmt:off region verbatim from PlannedToken.Tok.Text alone,
// bypassing every other field.
type PlannedToken struct {
	Tok           token.Token
	NewlineBefore bool
	BlankLines    uint // extra blank lines before this newline (statement separation)
	Indent        int  // indent level to apply when NewlineBefore is true
}

type frameKind int

const (
	frameRoot frameKind = iota
	frameClause
	frameParen
	frameBracket
)

type frame struct {
	kind        frameKind
	indent      int
	inline      bool
	endIdx      int // exclusive end index; only meaningful for frameClause
	pendingFirst bool
}

// Plan runs the layout algorithm over toks (the full lexer output,
// including Whitespace/comment tokens and a trailing EOF) and returns one
// PlannedToken per input token, in order.
func Plan(toks []token.Token, opts *Options) []PlannedToken {
	opts = opts.effective()

	if opts.Inline {
		return planInline(toks)
	}

	a := analyze(toks, opts)
	p := &planState{toks: toks, opts: opts, analysis: a}
	p.run()
	return p.out
}

// planInline short-circuits every decision to a single line (spec §4.4
// item 6): no newlines are ever inserted, including between statements.
func planInline(toks []token.Token) []PlannedToken {
	out := make([]PlannedToken, len(toks))
	for i, t := range toks {
		out[i] = PlannedToken{Tok: t}
	}
	return out
}

type planState struct {
	toks     []token.Token
	opts     *Options
	analysis *analysis
	out      []PlannedToken
	frames   []frame

	awaitingBetweenAnd bool
	afterSemicolon     bool
}

func (p *planState) top() *frame {
	return &p.frames[len(p.frames)-1]
}

func (p *planState) run() {
	p.frames = []frame{{kind: frameRoot, indent: 0}}
	p.out = make([]PlannedToken, 0, len(p.toks))

	i := 0
	for i < len(p.toks) {
		// Auto-pop any clause frame whose body has ended at this index.
		for p.top().kind == frameClause && i >= p.top().endIdx {
			p.frames = p.frames[:len(p.frames)-1]
		}

		t := p.toks[i]
		switch {
		case t.Kind == token.Whitespace:
			p.out = append(p.out, PlannedToken{Tok: t})
			i++
			continue
		case t.Kind == token.LineComment || t.Kind == token.BlockComment:
			p.emitComment(i)
			i++
			continue
		case t.Kind == token.EOF:
			p.out = append(p.out, PlannedToken{Tok: t})
			i++
			continue
		}

		i = p.emitSignificant(i)
	}
}

// emitComment applies spec §4.5's attach rule: a comment preceded (in the
// raw stream, ignoring nothing) by whitespace containing a newline starts
// its own line at the current indent; otherwise it trails the previous
// token on the same line.
func (p *planState) emitComment(i int) {
	t := p.toks[i]
	leading := i == 0 || p.precededByNewline(i)
	if leading {
		p.out = append(p.out, PlannedToken{Tok: t, NewlineBefore: true, Indent: p.top().indent})
		return
	}
	p.out = append(p.out, PlannedToken{Tok: t})
}

func (p *planState) precededByNewline(i int) bool {
	if i == 0 {
		return true
	}
	prev := p.toks[i-1]
	return prev.Kind == token.Whitespace && strings.Contains(prev.Text, "\n")
}

// emitSignificant handles every non-whitespace, non-comment, non-EOF token
// and returns the index of the next token to process (normally i+1).
func (p *planState) emitSignificant(i int) int {
	t := p.toks[i]
	pt := PlannedToken{Tok: t}

	switch t.Kind {
	case token.ReservedTopLevel:
		p.openClause(i, &pt)
		p.out = append(p.out, pt)
		return i + 1

	case token.ReservedTopLevelNoIndent:
		pt.NewlineBefore = true
		pt.Indent = p.top().indent
		p.applySeparator(&pt)
		p.out = append(p.out, pt)
		return i + 1

	case token.ReservedNewline:
		if p.opts.JoinsAsTopLevel && isJoinKey(t.Key) {
			base := p.top().indent
			if p.top().kind == frameClause {
				base--
				if base < 0 {
					base = 0
				}
			}
			pt.NewlineBefore = true
			pt.Indent = base
			p.out = append(p.out, pt)
			return i + 1
		}
		if t.Key == "and" && p.awaitingBetweenAnd {
			p.awaitingBetweenAnd = false
			pt.NewlineBefore = false
		} else if p.top().inline {
			pt.NewlineBefore = false
		} else {
			pt.NewlineBefore = true
			pt.Indent = p.top().indent
		}
		p.out = append(p.out, pt)
		return i + 1

	case token.Comma:
		p.out = append(p.out, pt)
		if !p.top().inline {
			p.top().pendingFirst = true
		}
		return i + 1

	case token.OpenParen, token.OpenBracket:
		inline := p.analysis.blockInline[i]
		p.out = append(p.out, pt)
		kind := frameParen
		if t.Kind == token.OpenBracket {
			kind = frameBracket
		}
		p.frames = append(p.frames, frame{
			kind:         kind,
			indent:       p.top().indent + 1,
			inline:       inline,
			endIdx:       p.analysis.blockMatch[i],
			pendingFirst: !inline,
		})
		return i + 1

	case token.CloseParen, token.CloseBracket:
		for p.top().kind == frameClause {
			p.frames = p.frames[:len(p.frames)-1]
		}
		wasInline := true
		if p.top().kind == frameParen || p.top().kind == frameBracket {
			wasInline = p.top().inline
			p.frames = p.frames[:len(p.frames)-1]
		}
		if wasInline {
			pt.NewlineBefore = false
		} else {
			pt.NewlineBefore = true
			pt.Indent = p.top().indent
		}
		p.out = append(p.out, pt)
		return i + 1

	case token.Semicolon:
		p.frames = p.frames[:1]
		pt.NewlineBefore = false
		p.out = append(p.out, pt)
		p.afterSemicolon = true
		return i + 1

	default:
		top := p.top()
		if top.pendingFirst && !top.inline {
			pt.NewlineBefore = true
			pt.Indent = top.indent
			top.pendingFirst = false
		}
		p.applySeparator(&pt)
		if t.Key == "between" {
			p.awaitingBetweenAnd = true
		}
		p.out = append(p.out, pt)
		return i + 1
	}
}

// openClause handles ReservedTopLevel: closes the sibling clause already
// open at this depth (done by run()'s auto-pop before we get here), emits
// the keyword itself, and pushes the new clause-body frame.
func (p *planState) openClause(i int, pt *PlannedToken) {
	top := p.top()
	pt.NewlineBefore = len(p.out) > 0
	pt.Indent = top.indent
	p.applySeparator(pt)

	inline := false
	if end, ok := p.analysis.clauseEnd[i]; ok {
		inline = p.analysis.clauseInline[i]
		p.frames = append(p.frames, frame{
			kind:         frameClause,
			indent:       top.indent + 1,
			inline:       inline,
			endIdx:       end,
			pendingFirst: true,
		})
	}
}

// applySeparator converts a pending "new statement" marker into the
// BlankLines count on the next emitted newline-starting token (spec
// LinesBetweenQueries: N blank lines between statements, i.e. N+1 newlines
// including the one NewlineBefore already represents).
func (p *planState) applySeparator(pt *PlannedToken) {
	if p.afterSemicolon && pt.NewlineBefore {
		pt.BlankLines = p.opts.LinesBetweenQueries
		p.afterSemicolon = false
	}
}

func isJoinKey(key string) bool {
	switch key {
	case "join", "inner join", "left join", "right join", "full join",
		"cross join", "natural join", "left outer join", "right outer join",
		"full outer join", "natural left join", "natural right join",
		"natural full join", "straight_join":
		return true
	}
	return false
}
