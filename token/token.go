// Package token defines the lexeme kinds produced by the SQL tokenizer
// and the classification of reserved words into layout-relevant classes.
package token

// Kind classifies a single lexeme. Token kinds partition the source: every
// byte of the original input belongs to exactly one token's Text.
type Kind int

const (
	Whitespace Kind = iota
	LineComment
	BlockComment
	String
	Number
	Placeholder
	Word

	// ReservedTopLevel causes a newline before and a new indentation scope:
	// SELECT, FROM, WHERE, GROUP BY, ORDER BY, ...
	ReservedTopLevel
	// ReservedTopLevelNoIndent causes a newline but no indentation change:
	// UNION, EXCEPT, INTERSECT.
	ReservedTopLevelNoIndent
	// ReservedNewline causes a newline before, no indent change: AND, OR,
	// WHEN, JOIN variants (unless joins_as_top_level).
	ReservedNewline
	// Reserved is a plain reserved word with no forced break: AS, DISTINCT,
	// IS, NULL, CASE, END, ...
	Reserved

	Operator
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	Comma
	Semicolon
	DollarQuotedString
	BlobLiteral

	// EOF is emitted once, as the final token of every stream.
	EOF
)

var kindNames = [...]string{
	Whitespace:               "WHITESPACE",
	LineComment:              "LINE_COMMENT",
	BlockComment:             "BLOCK_COMMENT",
	String:                   "STRING",
	Number:                   "NUMBER",
	Placeholder:              "PLACEHOLDER",
	Word:                     "WORD",
	ReservedTopLevel:         "RESERVED_TOP_LEVEL",
	ReservedTopLevelNoIndent: "RESERVED_TOP_LEVEL_NO_INDENT",
	ReservedNewline:          "RESERVED_NEWLINE",
	Reserved:                 "RESERVED",
	Operator:                 "OPERATOR",
	OpenParen:                "OPEN_PAREN",
	CloseParen:               "CLOSE_PAREN",
	OpenBracket:              "OPEN_BRACKET",
	CloseBracket:             "CLOSE_BRACKET",
	Comma:                    "COMMA",
	Semicolon:                "SEMICOLON",
	DollarQuotedString:       "DOLLAR_QUOTED_STRING",
	BlobLiteral:              "BLOB_LITERAL",
	EOF:                      "EOF",
}

// String returns the kind's name, for debugging and test failure messages.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// IsReserved reports whether k is one of the four reserved-word classes.
func (k Kind) IsReserved() bool {
	switch k {
	case ReservedTopLevel, ReservedTopLevelNoIndent, ReservedNewline, Reserved:
		return true
	}
	return false
}

// ForcesBreak reports whether a token of this kind, by itself, forces a
// line break regardless of the layout planner's inline-width trial
// (dollar-quoted strings, the two top-level classes and ReservedNewline).
func (k Kind) ForcesBreak() bool {
	switch k {
	case ReservedTopLevel, ReservedTopLevelNoIndent, ReservedNewline, DollarQuotedString:
		return true
	}
	return false
}

// IsWhitespaceOrComment reports whether the token carries no layout-visible
// text of its own beyond whatever the emitter decides to insert.
func (k Kind) IsWhitespaceOrComment() bool {
	return k == Whitespace || k == LineComment || k == BlockComment
}

// Pos is a position in the source, used by diagnostics.
type Pos struct {
	Offset int // byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// IsValid reports whether p was ever set.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Token is an immutable lexeme: Kind classifies it, Text is the exact
// source substring, Key is the lowercase normalized form used for reserved
// word lookups (empty for non-word kinds).
type Token struct {
	Kind Kind
	Text string
	Key  string
	Pos  Pos
}
