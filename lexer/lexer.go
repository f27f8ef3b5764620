// Package lexer implements the SQL lexical classifier and token stream
// described in spec §4.1/§4.2: a priority-ordered set of recognizers that
// partitions a source string into Tokens in O(n) time, plus a stream layer
// that merges multi-word reserved words.
package lexer

import (
	"sync"
	"unicode/utf8"

	"github.com/freeeve/machparse/token"
)

// Lexer is the lexical classifier. It never merges multi-word reserved
// words or resolves placeholders — that is the job of Tokenize and the
// params package, respectively. A Lexer holds no reference to anything
// outside the input string it was given; it is safe to re-tokenize the
// same source any number of times.
type Lexer struct {
	input   string
	start   int // start offset of the token being scanned
	pos     int // current read offset
	line    int // current line (1-indexed)
	linePos int // offset where the current line began
}

var lexerPool = sync.Pool{
	New: func() any { return &Lexer{} },
}

// New creates a Lexer over input.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1}
}

// Get returns a pooled Lexer reset to scan input.
func Get(input string) *Lexer {
	l := lexerPool.Get().(*Lexer)
	l.Reset(input)
	return l
}

// Put returns l to the pool. l must not be used afterward.
func Put(l *Lexer) {
	lexerPool.Put(l)
}

// Reset rewinds l to scan a new input string from the beginning.
func (l *Lexer) Reset(input string) {
	l.input = input
	l.start = 0
	l.pos = 0
	l.line = 1
	l.linePos = 0
}

// Next scans and returns the next Token. At end of input it returns a
// token.EOF token forever after; EOF is never preceded by a gap since
// Tokens partition the source exactly (spec §3 invariant).
func (l *Lexer) Next() token.Token {
	l.start = l.pos
	if l.pos >= len(l.input) {
		return l.make(token.EOF, "")
	}

	ch := l.input[l.pos]

	switch {
	case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
		return l.scanWhitespace()
	case ch == '-':
		return l.scanMinus()
	case ch == '#':
		if l.pos+1 < len(l.input) && l.input[l.pos+1] == '>' {
			return l.scanOperatorOrPunct() // #> / #>>
		}
		return l.scanLineComment(1)
	case ch == '/':
		return l.scanSlashOrOperator()
	case ch == '$':
		return l.scanDollar()
	case ch == 'x' || ch == 'X':
		if l.pos+1 < len(l.input) && l.input[l.pos+1] == '\'' {
			return l.scanBlob()
		}
		return l.scanWord()
	case ch == '\'':
		return l.scanQuoted('\'', token.String)
	case ch == '"':
		return l.scanQuoted('"', token.Word)
	case ch == '`':
		return l.scanQuoted('`', token.Word)
	case ch == '?':
		return l.scanQuestionPlaceholder()
	case ch == ':':
		return l.scanColonPlaceholder()
	case ch == '@':
		return l.scanAtPlaceholder()
	case ch == '{':
		return l.scanBracePlaceholder()
	case isDigit(ch):
		return l.scanNumber()
	case ch == '.':
		if l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]) {
			return l.scanNumber()
		}
		return l.scanOperatorOrPunct()
	case ch == '(':
		l.pos++
		return l.make(token.OpenParen, "(")
	case ch == ')':
		l.pos++
		return l.make(token.CloseParen, ")")
	case ch == '[':
		l.pos++
		return l.make(token.OpenBracket, "[")
	case ch == ']':
		l.pos++
		return l.make(token.CloseBracket, "]")
	case ch == ',':
		l.pos++
		return l.make(token.Comma, ",")
	case ch == ';':
		l.pos++
		return l.make(token.Semicolon, ";")
	case isIdentStartByte(ch):
		return l.scanWord()
	case ch >= 0x80:
		return l.scanUnicodeWord()
	}

	return l.scanOperatorOrPunct()
}

func (l *Lexer) make(kind token.Kind, text string) token.Token {
	tok := token.Token{
		Kind: kind,
		Text: text,
		Pos: token.Pos{
			Offset: l.start,
			Line:   l.line,
			Column: l.start - l.linePos + 1,
		},
	}
	if text == "" && kind != token.EOF {
		tok.Text = l.input[l.start:l.pos]
	}
	return tok
}

func (l *Lexer) advanceLines(s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			l.line++
			l.linePos = l.start + i + 1
		}
	}
}

// --- whitespace, comments ---------------------------------------------

func (l *Lexer) scanWhitespace() token.Token {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			l.pos++
		} else if ch == '\n' {
			l.pos++
			l.line++
			l.linePos = l.pos
		} else {
			break
		}
	}
	return l.make(token.Whitespace, l.input[l.start:l.pos])
}

// scanLineComment scans from the current position, which already points
// at the comment's opening marker; skip is how many marker bytes to
// consume ("--" is 2, "#" is 1) before running to end-of-line.
func (l *Lexer) scanLineComment(skip int) token.Token {
	l.pos += skip
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
	return l.make(token.LineComment, l.input[l.start:l.pos])
}

func (l *Lexer) scanMinus() token.Token {
	if l.pos+1 < len(l.input) && l.input[l.pos+1] == '-' {
		l.pos++
		return l.scanLineComment(1)
	}
	if l.pos+1 < len(l.input) && l.input[l.pos+1] == '>' {
		return l.scanOperatorOrPunct() // -> / ->>
	}
	l.pos++
	return l.make(token.Operator, "-")
}

func (l *Lexer) scanSlashOrOperator() token.Token {
	if l.pos+1 < len(l.input) && l.input[l.pos+1] == '*' {
		l.pos += 2
		for l.pos < len(l.input) {
			if l.input[l.pos] == '*' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '/' {
				l.pos += 2
				text := l.input[l.start:l.pos]
				l.advanceLines(text)
				return l.make(token.BlockComment, text)
			}
			l.pos++
		}
		// Unterminated: extend to EOF, spec §4.1 item 3.
		text := l.input[l.start:l.pos]
		l.advanceLines(text)
		return l.make(token.BlockComment, text)
	}
	l.pos++
	return l.make(token.Operator, "/")
}

// --- dollar-quoted strings and blob literals ---------------------------

func (l *Lexer) scanDollar() token.Token {
	// Positional placeholder $1, $2, ...
	if l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]) {
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
		return l.make(token.Placeholder, l.input[l.start:l.pos])
	}
	// Named placeholder $ident (not followed by a second $, which would
	// start a dollar-quoted string tag).
	savedPos := l.pos
	l.pos++
	if l.pos < len(l.input) && isIdentStartByte(l.input[l.pos]) {
		tagStart := l.pos
		for l.pos < len(l.input) && isTagByte(l.input[l.pos]) {
			l.pos++
		}
		if l.pos < len(l.input) && l.input[l.pos] == '$' {
			tag := l.input[tagStart:l.pos]
			l.pos++ // consume closing $ of the opening delimiter
			return l.scanDollarQuotedBody(tag)
		}
		// Not a dollar-quoted string: it's a named placeholder $name.
		return l.make(token.Placeholder, l.input[l.start:l.pos])
	}
	if l.pos < len(l.input) && l.input[l.pos] == '$' {
		l.pos++ // $$...$$ form, empty tag
		return l.scanDollarQuotedBody("")
	}
	l.pos = savedPos + 1
	return l.make(token.Word, "$")
}

func (l *Lexer) scanDollarQuotedBody(tag string) token.Token {
	endDelim := "$" + tag + "$"
	for l.pos < len(l.input) {
		if l.input[l.pos] == '$' && l.pos+len(endDelim) <= len(l.input) &&
			l.input[l.pos:l.pos+len(endDelim)] == endDelim {
			l.pos += len(endDelim)
			text := l.input[l.start:l.pos]
			l.advanceLines(text)
			return l.make(token.DollarQuotedString, text)
		}
		l.pos++
	}
	// Unterminated: extend to EOF, tolerated per spec §7.
	text := l.input[l.start:l.pos]
	l.advanceLines(text)
	return l.make(token.DollarQuotedString, text)
}

func (l *Lexer) scanBlob() token.Token {
	l.pos += 2 // skip x' / X'
	for l.pos < len(l.input) && l.input[l.pos] != '\'' {
		l.pos++
	}
	if l.pos < len(l.input) {
		l.pos++ // closing quote
	}
	return l.make(token.BlobLiteral, l.input[l.start:l.pos])
}

// --- string and quoted-identifier literals ------------------------------

// scanQuoted scans a '...'-, "..."- or `...`-delimited literal. Doubled
// delimiters are a literal delimiter in all three forms; backslash escapes
// are only recognized inside single quotes (spec §4.1 item 6). The token
// Text always retains the surrounding quotes (it must reproduce the source
// exactly, per spec §3's concatenation invariant) — escape decoding is not
// the tokenizer's job.
func (l *Lexer) scanQuoted(quote byte, kind token.Kind) token.Token {
	l.pos++ // opening quote
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '\\' && quote == '\'' && l.pos+1 < len(l.input) {
			l.pos += 2
			continue
		}
		if ch == quote {
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == quote {
				l.pos += 2
				continue
			}
			l.pos++
			text := l.input[l.start:l.pos]
			l.advanceLines(text)
			return l.make(kind, text)
		}
		l.pos++
	}
	// Unterminated string: extend to EOF, tolerated per spec §7.
	text := l.input[l.start:l.pos]
	l.advanceLines(text)
	return l.make(token.String, text)
}

// --- numbers -------------------------------------------------------------

func (l *Lexer) scanNumber() token.Token {
	if l.input[l.pos] == '0' && l.pos+1 < len(l.input) &&
		(l.input[l.pos+1] == 'x' || l.input[l.pos+1] == 'X') {
		l.pos += 2
		for l.pos < len(l.input) && isHexDigit(l.input[l.pos]) {
			l.pos++
		}
		return l.make(token.Number, l.input[l.start:l.pos])
	}

	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		if !(l.pos+1 < len(l.input) && l.input[l.pos+1] == '.') {
			l.pos++
			for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
				l.pos++
			}
		}
	}
	if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
		save := l.pos
		l.pos++
		if l.pos < len(l.input) && (l.input[l.pos] == '+' || l.input[l.pos] == '-') {
			l.pos++
		}
		if l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
				l.pos++
			}
		} else {
			l.pos = save // not actually an exponent
		}
	}
	// The trailing type specifier (e.g. 10::int, 1u) is deliberately left
	// for the next Next() call to pick up as its own Word token — spec §9.
	return l.make(token.Number, l.input[l.start:l.pos])
}

// --- placeholders ----------------------------------------------------------

func (l *Lexer) scanQuestionPlaceholder() token.Token {
	l.pos++
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	return l.make(token.Placeholder, l.input[l.start:l.pos])
}

func (l *Lexer) scanColonPlaceholder() token.Token {
	if l.pos+1 < len(l.input) && l.input[l.pos+1] == ':' {
		l.pos += 2
		return l.make(token.Operator, "::")
	}
	if l.pos+1 < len(l.input) {
		next := l.input[l.pos+1]
		if isIdentStartByte(next) {
			l.pos++
			for l.pos < len(l.input) && isIdentByte(l.input[l.pos]) {
				l.pos++
			}
			return l.make(token.Placeholder, l.input[l.start:l.pos])
		}
		if next == '"' {
			l.pos++
			return l.continueQuotedPlaceholder('"')
		}
		if next == '[' {
			l.pos++
			return l.continueBracketedPlaceholder()
		}
	}
	l.pos++
	return l.make(token.Operator, ":")
}

func (l *Lexer) continueQuotedPlaceholder(quote byte) token.Token {
	l.pos++ // opening quote
	for l.pos < len(l.input) && l.input[l.pos] != quote {
		l.pos++
	}
	if l.pos < len(l.input) {
		l.pos++
	}
	return l.make(token.Placeholder, l.input[l.start:l.pos])
}

func (l *Lexer) continueBracketedPlaceholder() token.Token {
	l.pos++ // opening [
	for l.pos < len(l.input) && l.input[l.pos] != ']' {
		l.pos++
	}
	if l.pos < len(l.input) {
		l.pos++
	}
	return l.make(token.Placeholder, l.input[l.start:l.pos])
}

func (l *Lexer) scanAtPlaceholder() token.Token {
	if l.pos+1 < len(l.input) {
		next := l.input[l.pos+1]
		if isIdentStartByte(next) {
			l.pos++
			for l.pos < len(l.input) && isIdentByte(l.input[l.pos]) {
				l.pos++
			}
			return l.make(token.Placeholder, l.input[l.start:l.pos])
		}
		if next == '`' {
			l.pos++
			return l.continueQuotedPlaceholder('`')
		}
		if next == '>' {
			return l.scanOperatorOrPunct() // @>
		}
	}
	l.pos++
	return l.make(token.Operator, "@")
}

func (l *Lexer) scanBracePlaceholder() token.Token {
	l.pos++ // opening {
	for l.pos < len(l.input) && l.input[l.pos] != '}' {
		l.pos++
	}
	if l.pos < len(l.input) {
		l.pos++
		return l.make(token.Placeholder, l.input[l.start:l.pos])
	}
	// Unterminated: not actually a placeholder, fall back to opaque text.
	return l.make(token.Word, l.input[l.start:l.pos])
}

// --- operators and punctuation -------------------------------------------

// multiCharOperators is tried longest-first; see spec §4.1 item 9.
var multiCharOperators = []string{
	"<<%", "%>>", "<=", ">=", "<>", "!=", "==", "||", "::", "->>", "->",
	"#>>", "#>", "@>", "<@", "?|", "?&", "~*", "!~*", "!~", "<%", "%>",
}

func (l *Lexer) scanOperatorOrPunct() token.Token {
	rest := l.input[l.pos:]
	for _, op := range multiCharOperators {
		if len(op) <= len(rest) && rest[:len(op)] == op {
			l.pos += len(op)
			return l.make(token.Operator, op)
		}
	}
	if l.pos < len(l.input) {
		ch := l.input[l.pos]
		l.pos++
		return l.make(token.Operator, string(ch))
	}
	return l.make(token.EOF, "")
}

// --- identifiers and keywords ---------------------------------------------

func (l *Lexer) scanWord() token.Token {
	for l.pos < len(l.input) && isIdentByte(l.input[l.pos]) {
		l.pos++
	}
	return l.classifyWord()
}

// scanUnicodeWord handles identifiers starting with a non-ASCII code
// point. The spec requires classifiers to operate on code-point
// boundaries (§4.1, §7); Go strings are already valid UTF-8, so advancing
// by decoded rune width is sufficient to never split one.
func (l *Lexer) scanUnicodeWord() token.Token {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		if size == 1 && !isIdentByte(l.input[l.pos]) {
			break
		}
		l.pos += size
	}
	if l.pos == l.start {
		// No recognizer matched: emit one opaque code point (spec §4.1
		// failure mode) and keep going.
		_, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if size == 0 {
			size = 1
		}
		l.pos += size
	}
	return l.classifyWord()
}

func (l *Lexer) classifyWord() token.Token {
	text := l.input[l.start:l.pos]
	key := toLower(text)
	if kind, ok := token.LookupWord(key); ok {
		tok := l.make(kind, text)
		tok.Key = key
		return tok
	}
	tok := l.make(token.Word, text)
	tok.Key = key
	return tok
}

func toLower(s string) string {
	needsLower := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			needsLower = true
			break
		}
	}
	if !needsLower {
		return s
	}
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 32
		}
		buf[i] = c
	}
	return string(buf)
}

func isDigit(ch byte) bool    { return ch >= '0' && ch <= '9' }
func isHexDigit(ch byte) bool { return isDigit(ch) || (ch|0x20 >= 'a' && ch|0x20 <= 'f') }

func isIdentStartByte(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentByte(ch byte) bool {
	return isIdentStartByte(ch) || isDigit(ch) || ch == '$'
}

func isTagByte(ch byte) bool {
	return isIdentStartByte(ch) || isDigit(ch)
}
