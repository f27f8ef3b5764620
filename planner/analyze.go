package planner

import (
	"strings"

	"github.com/freeeve/machparse/token"
)

// analysis holds the bounded width-trial decisions computed ahead of the
// single emission pass (spec §4.4: "a bounded lookahead ... decided once,
// memoized, never revisited").
type analysis struct {
	blockMatch  map[int]int  // '(' / '[' index <-> matching close index, both directions
	blockInline map[int]bool // keyed by the open index
	clauseEnd   map[int]int  // ReservedTopLevel index -> exclusive end of its body
	clauseInline map[int]bool
}

// analyze performs one linear scan to find matching bracket pairs and
// top-level clause body boundaries (tolerant of unbalanced input, spec
// §7), then a bounded trial-width scan per block to decide inline vs.
// columnar.
func analyze(toks []token.Token, opts *Options) *analysis {
	a := &analysis{
		blockMatch:   map[int]int{},
		blockInline:  map[int]bool{},
		clauseEnd:    map[int]int{},
		clauseInline: map[int]bool{},
	}

	var parenStack []int
	clauseStack := []int{-1} // clauseStack[depth] = index of active ReservedTopLevel keyword, or -1

	closeClause := func(depth int, at int) {
		if clauseStack[depth] >= 0 {
			a.clauseEnd[clauseStack[depth]] = at
			clauseStack[depth] = -1
		}
	}

	for i, t := range toks {
		switch t.Kind {
		case token.OpenParen, token.OpenBracket:
			parenStack = append(parenStack, i)
			clauseStack = append(clauseStack, -1)
		case token.CloseParen, token.CloseBracket:
			if len(parenStack) == 0 {
				continue
			}
			depth := len(clauseStack) - 1
			closeClause(depth, i)
			clauseStack = clauseStack[:depth]

			open := parenStack[len(parenStack)-1]
			parenStack = parenStack[:len(parenStack)-1]
			a.blockMatch[open] = i
			a.blockMatch[i] = open
		case token.ReservedTopLevel:
			depth := len(clauseStack) - 1
			closeClause(depth, i)
			clauseStack[depth] = i
		case token.ReservedTopLevelNoIndent, token.Semicolon:
			depth := len(clauseStack) - 1
			closeClause(depth, i)
		}
	}
	for depth := len(clauseStack) - 1; depth >= 0; depth-- {
		closeClause(depth, len(toks))
	}

	for open, close := range a.blockMatch {
		if toks[open].Kind != token.OpenParen && toks[open].Kind != token.OpenBracket {
			continue // this map entry is the close->open direction; skip
		}
		a.blockInline[open] = decideBlockInline(toks, open, close, opts)
	}

	for kwIdx, end := range a.clauseEnd {
		a.clauseInline[kwIdx] = decideClauseInline(toks, kwIdx, end, opts)
	}

	return a
}

func decideBlockInline(toks []token.Token, open, close int, opts *Options) bool {
	functionCall := open > 0 && isCallable(toks[open-1].Kind)

	var budget uint
	switch {
	case toks[open].Kind == token.OpenBracket:
		budget = opts.MaxInlineBlock
	case functionCall && opts.MaxInlineArguments != nil:
		budget = *opts.MaxInlineArguments
	default:
		budget = opts.MaxInlineBlock
	}

	width, forced := measureSpan(toks, open+1, close)
	return !forced && width <= budget
}

func decideClauseInline(toks []token.Token, kwIdx, end int, opts *Options) bool {
	if opts.MaxInlineTopLevel == nil {
		return false
	}
	width, forced := measureSpan(toks, kwIdx+1, end)
	return !forced && width <= *opts.MaxInlineTopLevel
}

func isCallable(k token.Kind) bool {
	return k == token.Word || k == token.Reserved
}

// measureSpan approximates the rendered width of toks[start:end] if
// emitted on one line (one token + one separating space each), and
// reports whether the span contains a token that forces a break
// regardless of width: a TopLevelNoIndent keyword, a dollar-quoted
// string, or a block comment spanning multiple lines (spec §4.4 item 3).
func measureSpan(toks []token.Token, start, end int) (width uint, forced bool) {
	for k := start; k < end && k < len(toks); k++ {
		t := toks[k]
		if t.Kind == token.Whitespace {
			continue
		}
		width += uint(len(t.Text)) + 1
		switch {
		case t.Kind == token.ReservedTopLevelNoIndent, t.Kind == token.DollarQuotedString:
			forced = true
		case t.Kind == token.BlockComment && strings.Contains(t.Text, "\n"):
			forced = true
		}
		if forced || width > 1<<20 {
			return width, forced
		}
	}
	return width, forced
}
