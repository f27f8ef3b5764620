// Package fuzz holds the module's fuzz targets, kept separate from
// package machparse so `go test ./...` doesn't pull fuzzing's extra
// build machinery into the main package's normal test run.
package fuzz

import (
	"testing"

	"github.com/freeeve/machparse"
	"github.com/freeeve/machparse/lexer"
)

// FuzzFormat asserts the hard no-panic contract of spec §4.1/§7: Format
// must return a string for any input whatsoever, never panic, and be
// idempotent on its own output.
func FuzzFormat(f *testing.F) {
	seeds := []string{
		// Basic SELECT
		"SELECT * FROM users",
		"SELECT id, name FROM users WHERE status = 'active'",
		"SELECT a.id, b.name FROM a JOIN b ON a.id = b.a_id",
		"SELECT DISTINCT a, b FROM t",
		"SELECT ALL * FROM t",

		// DML
		"INSERT INTO users (id, name) VALUES (1, 'test')",
		"INSERT INTO t (a, b) VALUES (1, 2), (3, 4), (5, 6)",
		"UPDATE users SET name = 'new' WHERE id = 1",
		"DELETE FROM users WHERE id = 1",

		// Subqueries / CTEs
		"SELECT * FROM users WHERE id IN (SELECT user_id FROM orders)",
		"WITH cte AS (SELECT 1) SELECT * FROM cte",
		"WITH RECURSIVE cte AS (SELECT 1 UNION ALL SELECT n+1 FROM cte WHERE n < 10) SELECT * FROM cte",

		// Window functions, CASE
		"SELECT COUNT(*) OVER (PARTITION BY type ORDER BY id) FROM items",
		"SELECT CASE WHEN x = 1 THEN 'a' ELSE 'b' END FROM t",

		// DDL
		"CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR(255))",
		"ALTER TABLE users ADD COLUMN email VARCHAR(255)",
		"DROP TABLE IF EXISTS users CASCADE",
		"CREATE UNIQUE INDEX idx ON t (a)",

		// String/number/comment edge cases (from the lexer's own seed corpus)
		"'string with ''escapes'''",
		"'multi\nline\nstring'",
		`"double quoted"`,
		"`backtick quoted`",
		"$$dollar$$",
		"$tag$content$tag$",
		"-- line comment\nSELECT 1",
		"/* block comment */ SELECT 1",
		"/* nested /* comment */ */",
		"1.5e-10",
		".5",
		"0x1A2B",
		"0b1010",
		"123.456.789",
		":named_param",
		"$1",
		"@variable",
		"?",
		"a->>'b'",
		"a::varchar(100)",
		"a <> b",
		"[identifier]",
		"[with]]bracket]",
		"#temp",
		"",
		"\x00\x01\x02",
		"SELECT\t\n\r *",
		"идентификатор",
		"表名",
		"...",
		"::::",
		";;;;",
		"((()))",
		"[[[",
		"]]]",
		"/**/",
		"--\n",
		"''",

		// Mixed dialects
		"SELECT [column] FROM [table]",
		"SELECT * FROM t LIMIT 10, 20",
		"INSERT INTO t VALUES (1) ON CONFLICT DO NOTHING",
		"SELECT * FROM dual CONNECT BY prior id = parent_id",

		// fmt:off / fmt:on
		"SELECT 1;\n-- fmt:off\nselect   weird  spacing;\n-- fmt:on\nSELECT 2;",

		// Unbalanced / malformed
		"SELECT * FROM (((t",
		"SELECT * FROM t WHERE )",
		"SELECT",
		";",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, sql string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Format panicked on input: %q\npanic: %v", sql, r)
			}
		}()

		once := machparse.Format(sql, machparse.NoParams, nil)
		twice := machparse.Format(once, machparse.NoParams, nil)
		if once != twice {
			t.Errorf("Format not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", sql, once, twice)
		}
	})
}

// FuzzTokenize asserts the lexer's own invariant (spec §3): concatenating
// every returned token's Text must reproduce the input exactly, for any
// input whatsoever.
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"SELECT * FROM users",
		"'string with ''escapes'''",
		"$tag$content$tag$",
		"-- line comment\nSELECT 1",
		"/* nested /* comment */ */",
		"0x1A2B",
		"123.456.789",
		":named_param",
		"a->>'b'",
		"[with]]bracket]",
		"",
		"\x00\x01\x02",
		"идентификатор",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Tokenize panicked on input: %q\npanic: %v", input, r)
			}
		}()

		toks := lexer.Tokenize(input)
		var rebuilt string
		for _, tok := range toks {
			rebuilt += tok.Text
		}
		if rebuilt != input {
			t.Errorf("token concatenation does not reproduce source:\ninput:    %q\nrebuilt:  %q", input, rebuilt)
		}
	})
}
