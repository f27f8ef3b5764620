// Package params implements the parameter resolver of spec §4.3: it
// substitutes Placeholder tokens with bound values ahead of layout
// planning.
package params

import (
	"strconv"
	"strings"

	"github.com/freeeve/machparse/token"
)

// Params is the tagged QueryParams variant from spec §3: None, Indexed, or
// Named. The zero value is None.
type Params struct {
	indexed []string
	named   map[string]string
	// order preserves insertion order for Named, matching spec's
	// "mapping ... with insertion-order iteration" (iteration order is not
	// actually observable from Resolve, but kept for API parity with
	// dialects that print their bound parameter set back out).
	order []string
	kind  kind
}

type kind int

const (
	kindNone kind = iota
	kindIndexed
	kindNamed
)

// None is the zero-value Params: placeholders pass through unchanged.
var None = Params{}

// Indexed builds a Params bound to an ordered list of values, consumed by
// position (spec §4.3).
func Indexed(values ...string) Params {
	return Params{kind: kindIndexed, indexed: values}
}

// NamedParams builds a Params bound by name. Insertion order of calls to
// Set is preserved in order, though Resolve itself does not depend on it.
type NamedParams struct {
	p *Params
}

// Named starts building a name-bound Params.
func Named() NamedParams {
	return NamedParams{p: &Params{kind: kindNamed, named: map[string]string{}}}
}

// Set binds name to value and returns the receiver for chaining.
func (n NamedParams) Set(name, value string) NamedParams {
	if _, exists := n.p.named[name]; !exists {
		n.p.order = append(n.p.order, name)
	}
	n.p.named[name] = value
	return n
}

// Build finalizes the Named params.
func (n NamedParams) Build() Params {
	return *n.p
}

// Resolve substitutes every Placeholder token in toks with its bound
// value, per spec §4.3. Substituted tokens change Kind to token.String so
// downstream layout treats them as opaque; unresolved placeholders
// (missing name, out-of-range index) are left untouched, never an error.
func (p Params) Resolve(toks []token.Token) []token.Token {
	if p.kind == kindNone {
		return toks
	}

	out := make([]token.Token, len(toks))
	copy(out, toks)

	nextIndex := 1
	for i, t := range out {
		if t.Kind != token.Placeholder {
			continue
		}
		value, ok := p.lookup(t.Text, &nextIndex)
		if !ok {
			continue
		}
		out[i] = token.Token{Kind: token.String, Text: value, Pos: t.Pos}
	}
	return out
}

func (p Params) lookup(text string, nextIndex *int) (string, bool) {
	switch p.kind {
	case kindIndexed:
		return p.lookupIndexed(text, nextIndex)
	case kindNamed:
		return p.lookupNamed(text)
	default:
		return "", false
	}
}

func (p Params) lookupIndexed(text string, nextIndex *int) (string, bool) {
	idx := 0
	switch {
	case text == "?":
		idx = *nextIndex
		*nextIndex++
	case strings.HasPrefix(text, "?"):
		n, err := strconv.Atoi(text[1:])
		if err != nil {
			return "", false
		}
		idx = n
	case strings.HasPrefix(text, "$"):
		n, err := strconv.Atoi(text[1:])
		if err != nil {
			return "", false
		}
		idx = n
	default:
		return "", false
	}
	if idx < 1 || idx > len(p.indexed) {
		return "", false
	}
	return p.indexed[idx-1], true
}

func (p Params) lookupNamed(text string) (string, bool) {
	name := extractName(text)
	if name == "" {
		return "", false
	}
	v, ok := p.named[name]
	return v, ok
}

// extractName pulls the identifier out of a named-placeholder token's raw
// text, stripping the leading sigil and any quoting/bracketing (spec
// §4.1 item 8 / §4.3: ":name", ":\"quoted\"", ":[bracketed]", "@name",
// "@`quoted`", "{name}").
func extractName(text string) string {
	if text == "" {
		return ""
	}
	switch text[0] {
	case ':', '@', '$':
		body := text[1:]
		if len(body) >= 2 {
			if (body[0] == '"' && body[len(body)-1] == '"') ||
				(body[0] == '`' && body[len(body)-1] == '`') ||
				(body[0] == '[' && body[len(body)-1] == ']') {
				return body[1 : len(body)-1]
			}
		}
		return body
	case '{':
		if len(text) >= 2 && text[len(text)-1] == '}' {
			return strings.TrimSpace(text[1 : len(text)-1])
		}
	}
	return ""
}
