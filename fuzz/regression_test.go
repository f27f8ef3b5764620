package fuzz

import (
	"testing"

	"github.com/freeeve/machparse"
)

// TestFuzzRegressions documents specific inputs that previously caused
// issues. When fuzzing finds a new crash, add a case here with a comment
// explaining it.
func TestFuzzRegressions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		note  string
	}{
		{
			name:  "function with IN keyword inside",
			input: "SELECT A(*IN",
			note:  "Format must not panic on incomplete function with keyword",
		},
		{
			name:  "function with BETWEEN keyword inside",
			input: "SELECT A(*BETWEEN",
			note:  "Format must not panic on incomplete function with keyword",
		},
		{
			name:  "number followed by brackets",
			input: "SELECT 0[[",
			note:  "Lexer must handle [ after number",
		},
		{
			name:  "number followed by brackets and number",
			input: "SELECT 0[[0",
			note:  "Lexer must handle [[ sequence",
		},
		{
			name:  "cast with empty backtick identifier",
			input: "SELECT 0::``",
			note:  "Cast to empty identifier",
		},
		{
			name:  "incomplete cast in function",
			input: "SELECT A(::",
			note:  "Cast operator at unexpected position",
		},
		{
			name:  "double unary minus",
			input: "SELECT - -0",
			note:  "Multiple unary operators",
		},
		{
			name:  "double unary minus no space",
			input: "SELECT --0",
			note:  "Leading -- must lex as a line comment, swallowing the rest of the line",
		},
		{
			name:  "dollar quote with single quotes",
			input: "SELECT $$'''$$",
			note:  "Single quotes inside dollar quotes must not end the string early",
		},
		{
			name:  "dollar quote with backslash",
			input: "SELECT $$\\$$0",
			note:  "Backslash in dollar quote has no special meaning",
		},
		{
			name:  "empty double-quoted identifier star",
			input: `SELECT"".*%0`,
			note:  "Empty quoted identifier with qualified star",
		},
		{
			name:  "empty double-quoted identifier function",
			input: `SELECT""""(0)`,
			note:  "Empty quoted identifier adjacent to a paren",
		},
		{
			name:  "extract with empty quoted field",
			input: `SELECT EXTRACT(""FROM 0)`,
			note:  "Empty field name before FROM inside EXTRACT(...)",
		},
		{
			name:  "exists with empty parens",
			input: "SELECT 00WHERE EXISTS()0000000",
			note:  "Number tokens directly adjacent to keywords",
		},
		{
			name:  "empty input",
			input: "",
			note:  "Empty input formats to the empty string",
		},
		{
			name:  "only whitespace",
			input: "   \t\n\r  ",
			note:  "Whitespace-only input must not panic",
		},
		{
			name:  "only semicolons",
			input: ";;;",
			note:  "A run of empty statements",
		},
		{
			name:  "unclosed string",
			input: "SELECT 'unclosed",
			note:  "Unterminated string literal extends to EOF",
		},
		{
			name:  "unclosed parenthesis",
			input: "SELECT (1 + 2",
			note:  "Missing closing paren: the planner tolerates unbalanced brackets",
		},
		{
			name:  "too many close parens",
			input: "SELECT (1))",
			note:  "Extra closing paren",
		},
		{
			name:  "null bytes",
			input: "SELECT\x00*",
			note:  "Null byte in input",
		},
		{
			name:  "deeply nested",
			input: "SELECT ((((((((((1))))))))))",
			note:  "Deeply nested parentheses",
		},
		{
			name:  "very long identifier",
			input: "SELECT aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa FROM t",
			note:  "Long identifier (100 chars) exercises the inline-width trial",
		},
		{
			name:  "select with parenthesized WITH",
			input: "SELECT(WITH)",
			note:  "A bare reserved word glued to punctuation must not panic",
		},
		{
			name:  "insert with incomplete SET",
			input: "INSERT INTO A SET",
			note:  "Trailing reserved word with nothing after it",
		},
		{
			name:  "trailing operators",
			input: "SELECT * % 0",
			note:  "Trailing operator at end of statement",
		},
		{
			name:  "incomplete qualified table with paren",
			input: "SELECT*FROM A.(use",
			note:  "Qualified name followed directly by an unclosed paren",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Format panicked: %v\nInput: %q\nNote: %s", r, tt.input, tt.note)
				}
			}()
			_ = machparse.Format(tt.input, machparse.NoParams, nil)
		})
	}
}

// TestFuzzIdempotent asserts format(format(s)) == format(s) for
// well-formed SQL. Add cases here when fuzzing finds a non-fixed-point.
func TestFuzzIdempotent(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple select", "SELECT * FROM t"},
		{"select with alias", "SELECT a AS b FROM t"},
		{"join", "SELECT * FROM t1 JOIN t2 ON t1.id = t2.id"},
		{"subquery", "SELECT * FROM (SELECT 1) AS sub"},
		{"cte", "WITH cte AS (SELECT 1) SELECT * FROM cte"},
		{"union", "SELECT 1 UNION SELECT 2"},
		{"parenthesized union", "(SELECT 1) UNION (SELECT 2)"},
		{"case expression", "SELECT CASE WHEN a = 1 THEN 'x' ELSE 'y' END FROM t"},
		{"window function", "SELECT ROW_NUMBER() OVER (ORDER BY id) FROM t"},
		{"multi-level identifier", "SELECT a.b.c.d FROM a.b.c"},
		{"bracket identifier", "SELECT [col] FROM [table]"},
		{"temp table", "SELECT * FROM #temp"},
		{"postgresql cast", "SELECT a::int FROM t"},
		{"array literal", "SELECT ARRAY[1, 2, 3]"},
		{"array with identifier", "SELECT ARRAY[ A]"},
		{"subscript with space", "SELECT arr[ idx ]"},
		{"create index no name", "CREATE INDEX ON A(col)"},
		{"function with keyword name", "SELECT ANY(x) FROM t"},
		{"large type precision", "SELECT 0::A(10000000000000000000)"},
		{"empty backtick in index", "CREATE INDEX ON A(``)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := machparse.Format(tt.input, machparse.NoParams, nil)
			twice := machparse.Format(once, machparse.NoParams, nil)
			if once != twice {
				t.Errorf("not idempotent:\ninput: %s\nfirst:  %s\nsecond: %s", tt.input, once, twice)
			}
		})
	}
}
