package token

// singleWordReserved classifies a single normalized (lowercase) word into
// its layout class. This is the dialect-union table of spec §3/§6: the
// union of PostgreSQL, MySQL/MariaDB, SQLite, SQL Server, Oracle,
// ClickHouse and DuckDB reserved words that this formatter recognizes.
// Entries are append-only across versions (removing a classification is a
// breaking change, per spec §6).
var singleWordReserved map[string]Kind

func init() {
	singleWordReserved = map[string]Kind{
		// Top-level clause starters (single word).
		"select":    ReservedTopLevel,
		"from":      ReservedTopLevel,
		"where":     ReservedTopLevel,
		"having":    ReservedTopLevel,
		"limit":     ReservedTopLevel,
		"offset":    ReservedTopLevel,
		"fetch":     ReservedTopLevel,
		"update":    ReservedTopLevel,
		"set":       ReservedTopLevel,
		"values":    ReservedTopLevel,
		"with":      ReservedTopLevel,
		"returning": ReservedTopLevel,
		"window":    ReservedTopLevel,

		// Top-level, no indent.
		"union":     ReservedTopLevelNoIndent,
		"intersect": ReservedTopLevelNoIndent,
		"except":    ReservedTopLevelNoIndent, // spec open question, pinned TopLevelNoIndent
		"minus":     ReservedTopLevelNoIndent, // Oracle set-op spelling of EXCEPT

		// Newline, no indent change.
		"and":   ReservedNewline,
		"or":    ReservedNewline,
		"xor":   ReservedNewline,
		"when":  ReservedNewline,
		"join":  ReservedNewline,
		"inner": ReservedNewline,
		"outer": ReservedNewline,
		"left":  ReservedNewline,
		"right": ReservedNewline,
		"full":  ReservedNewline,
		"cross": ReservedNewline,

		// Plain reserved words: no forced break.
		"as":           Reserved,
		"distinct":     Reserved,
		"all":          Reserved,
		"is":           Reserved,
		"isnull":       Reserved,
		"notnull":      Reserved,
		"null":         Reserved,
		"true":         Reserved,
		"false":        Reserved,
		"unknown":      Reserved,
		"not":          Reserved,
		"in":           Reserved,
		"like":         Reserved,
		"ilike":        Reserved,
		"similar":      Reserved,
		"between":      Reserved,
		"unique":       Reserved,
		"natural":      Reserved,
		"on":           Reserved,
		"using":        Reserved,
		"order":        Reserved, // merges into ReservedTopLevel "ORDER BY"
		"group":        Reserved, // merges into ReservedTopLevel "GROUP BY"
		"by":           Reserved,
		"asc":          Reserved,
		"desc":         Reserved,
		"nulls":        Reserved,
		"first":        Reserved,
		"last":         Reserved,
		"rows":         Reserved,
		"row":          Reserved,
		"only":         Reserved,
		"ties":         Reserved,
		"insert":       Reserved, // merges into ReservedTopLevel "INSERT INTO"
		"into":         Reserved,
		"default":      Reserved,
		"replace":      Reserved,
		"ignore":       Reserved,
		"duplicate":    Reserved,
		"key":          Reserved,
		"delete":       Reserved, // merges into ReservedTopLevel "DELETE FROM"
		"create":       Reserved, // merges into ReservedTopLevel "CREATE TABLE"
		"alter":        Reserved, // merges into ReservedTopLevel "ALTER TABLE"
		"drop":         Reserved, // merges into ReservedTopLevel "DROP TABLE"
		"truncate":     Reserved, // merges into ReservedTopLevel "TRUNCATE TABLE"
		"table":        Reserved,
		"index":        Reserved,
		"view":         Reserved,
		"database":     Reserved,
		"schema":       Reserved,
		"if":           Reserved,
		"exists":       Reserved,
		"temporary":    Reserved,
		"temp":         Reserved,
		"unlogged":     Reserved,
		"primary":      Reserved,
		"foreign":      Reserved,
		"references":   Reserved,
		"constraint":   Reserved,
		"check":        Reserved,
		"cascade":      Reserved,
		"restrict":     Reserved,
		"no":           Reserved,
		"action":       Reserved,
		"deferrable":   Reserved,
		"initially":    Reserved,
		"deferred":     Reserved,
		"immediate":    Reserved,
		"column":       Reserved,
		"add":          Reserved,
		"rename":       Reserved,
		"to":           Reserved,
		"modify":       Reserved,
		"change":       Reserved,
		"case":         Reserved,
		"then":         Reserved,
		"else":         Reserved,
		"end":          Reserved,
		"cast":         Reserved,
		"convert":      Reserved,
		"collate":      Reserved,
		"over":         Reserved,
		"partition":    Reserved, // merges into "PARTITION BY"
		"filter":       Reserved,
		"within":       Reserved,
		"respect":      Reserved,
		"current":      Reserved,
		"unbounded":    Reserved,
		"preceding":    Reserved,
		"following":    Reserved,
		"range":        Reserved,
		"groups":       Reserved,
		"count":        Reserved,
		"coalesce":     Reserved,
		"nullif":       Reserved,
		"greatest":     Reserved,
		"least":        Reserved,
		"any":          Reserved,
		"some":         Reserved,
		"every":        Reserved,
		"lateral":      Reserved,
		"recursive":    Reserved,
		"materialized": Reserved,
		"for":          Reserved, // merges into "FOR UPDATE" / "FOR SHARE"
		"share":        Reserved,
		"nowait":       Reserved,
		"skip":         Reserved,
		"locked":       Reserved,
		"begin":        Reserved,
		"commit":       Reserved,
		"rollback":     Reserved,
		"savepoint":    Reserved,
		"release":      Reserved,
		"transaction":  Reserved,
		"work":         Reserved,
		"isolation":    Reserved,
		"level":        Reserved,
		"read":         Reserved,
		"write":        Reserved,
		"committed":    Reserved,
		"uncommitted":  Reserved,
		"repeatable":   Reserved,
		"serializable": Reserved,
		"snapshot":     Reserved,
		"ordinality":   Reserved,
		"analyze":      Reserved,
		"explain":      Reserved,
		"verbose":      Reserved,
		"format":       Reserved,
		"costs":        Reserved,
		"buffers":      Reserved,
		"timing":       Reserved,
		"vacuum":       Reserved,
		"grant":        Reserved,
		"revoke":       Reserved,
		"privileges":   Reserved,
		"public":       Reserved,
		"role":         Reserved,
		"user":         Reserved,
		"admin":        Reserved,
		"option":       Reserved,
		"granted":      Reserved,
		"interval":     Reserved,
		"extract":      Reserved,
		"substring":    Reserved,
		"trim":         Reserved,
		"leading":      Reserved,
		"trailing":     Reserved,
		"both":         Reserved,
		"position":     Reserved,
		"overlay":      Reserved,
		"placing":      Reserved,
		"symmetric":    Reserved,
		"asymmetric":   Reserved,
		"escape":       Reserved,
		"glob":         Reserved,
		"regexp":       Reserved,
		"rlike":        Reserved,
		"match":        Reserved,
		"against":      Reserved,
		"sounds":       Reserved,

		// SQLite specific.
		"autoincrement": Reserved,
		"rowid":         Reserved,
		"without":       Reserved,

		// MySQL/MariaDB specific.
		"auto_increment": Reserved,
		"engine":         Reserved,
		"charset":        Reserved,
		"character":      Reserved,
		"storage":        Reserved,
		"memory":         Reserved,
		"disk":           Reserved,
		"tablespace":     Reserved,
		"straight_join":  Reserved,
		"high_priority":  Reserved,
		"low_priority":   Reserved,
		"sql_no_cache":   Reserved,
		"force":          Reserved,
		"use":            Reserved,

		// PostgreSQL specific.
		"conflict":     Reserved,
		"do":           Reserved,
		"nothing":      Reserved,
		"overriding":   Reserved,
		"system":       Reserved,
		"value":        Reserved,
		"generated":    Reserved,
		"always":       Reserved,
		"identity":     Reserved,
		"stored":       Reserved,
		"virtual":      Reserved,
		"include":      Reserved,
		"concurrently": Reserved,
		"inherit":      Reserved,
		"inherits":     Reserved,
		"of":           Reserved,
		"owner":        Reserved,
		"owned":        Reserved,
		"sequence":     Reserved,
		"cycle":        Reserved,
		"increment":    Reserved,
		"start":        Reserved, // merges into "START WITH" (Oracle CONNECT BY)
		"cache":        Reserved,
		"restart":      Reserved,

		// SQL Server specific.
		"top":    Reserved,
		"nolock": Reserved,
		"pivot":  Reserved,
		"unpivot": Reserved,
		"apply":  Reserved,
		"merge":  Reserved,
		"output": Reserved,

		// Oracle specific.
		"rownum":    Reserved,
		"sysdate":   Reserved,
		"dual":      Reserved,
		"connect":   Reserved, // merges into "CONNECT BY"
		"prior":     Reserved,
		"siblings":  Reserved,
		"sample":    Reserved,
		"keep":      Reserved,
		"model":     Reserved,

		// ClickHouse / DuckDB extensions (open per spec §9).
		"final":    Reserved,
		"sample_by": Reserved,
		"qualify":  ReservedTopLevel,
		"exclude":  Reserved,
		"rename_kw": Reserved,
	}
}

// phrase describes a greedily-merged multi-word reserved word: its
// component words (already lowercase), the Kind it produces, and the
// canonical uppercase spelling used when a caller asks for a normalized
// display form.
type phrase struct {
	words     []string
	kind      Kind
	canonical string
}

// multiWordPhrases is tried longest-first so that, e.g., "left outer join"
// is matched whole rather than leaving a dangling "outer join".
var multiWordPhrases = []phrase{
	{[]string{"left", "outer", "join"}, ReservedNewline, "LEFT OUTER JOIN"},
	{[]string{"right", "outer", "join"}, ReservedNewline, "RIGHT OUTER JOIN"},
	{[]string{"full", "outer", "join"}, ReservedNewline, "FULL OUTER JOIN"},
	{[]string{"cross", "apply"}, ReservedNewline, "CROSS APPLY"},
	{[]string{"outer", "apply"}, ReservedNewline, "OUTER APPLY"},
	{[]string{"union", "all"}, ReservedTopLevelNoIndent, "UNION ALL"},
	{[]string{"group", "by"}, ReservedTopLevel, "GROUP BY"},
	{[]string{"order", "by"}, ReservedTopLevel, "ORDER BY"},
	{[]string{"partition", "by"}, Reserved, "PARTITION BY"},
	{[]string{"insert", "into"}, ReservedTopLevel, "INSERT INTO"},
	{[]string{"delete", "from"}, ReservedTopLevel, "DELETE FROM"},
	{[]string{"create", "table"}, ReservedTopLevel, "CREATE TABLE"},
	{[]string{"alter", "table"}, ReservedTopLevel, "ALTER TABLE"},
	{[]string{"drop", "table"}, ReservedTopLevel, "DROP TABLE"},
	{[]string{"truncate", "table"}, ReservedTopLevel, "TRUNCATE TABLE"},
	{[]string{"create", "unique", "index"}, ReservedTopLevel, "CREATE UNIQUE INDEX"},
	{[]string{"create", "index"}, ReservedTopLevel, "CREATE INDEX"},
	{[]string{"create", "view"}, ReservedTopLevel, "CREATE VIEW"},
	{[]string{"create", "database"}, ReservedTopLevel, "CREATE DATABASE"},
	{[]string{"create", "schema"}, ReservedTopLevel, "CREATE SCHEMA"},
	{[]string{"create", "sequence"}, ReservedTopLevel, "CREATE SEQUENCE"},
	{[]string{"drop", "index"}, ReservedTopLevel, "DROP INDEX"},
	{[]string{"drop", "view"}, ReservedTopLevel, "DROP VIEW"},
	{[]string{"drop", "database"}, ReservedTopLevel, "DROP DATABASE"},
	{[]string{"drop", "schema"}, ReservedTopLevel, "DROP SCHEMA"},
	{[]string{"drop", "sequence"}, ReservedTopLevel, "DROP SEQUENCE"},
	{[]string{"alter", "index"}, ReservedTopLevel, "ALTER INDEX"},
	{[]string{"alter", "view"}, ReservedTopLevel, "ALTER VIEW"},
	{[]string{"alter", "sequence"}, ReservedTopLevel, "ALTER SEQUENCE"},
	{[]string{"for", "update"}, ReservedTopLevel, "FOR UPDATE"},
	{[]string{"for", "share"}, ReservedTopLevel, "FOR SHARE"},
	{[]string{"for", "no", "key", "update"}, ReservedTopLevel, "FOR NO KEY UPDATE"},
	{[]string{"start", "with"}, Reserved, "START WITH"},
	{[]string{"connect", "by"}, Reserved, "CONNECT BY"},
	{[]string{"nulls", "first"}, Reserved, "NULLS FIRST"},
	{[]string{"nulls", "last"}, Reserved, "NULLS LAST"},
	{[]string{"is", "not"}, Reserved, "IS NOT"},
	{[]string{"not", "in"}, Reserved, "NOT IN"},
	{[]string{"not", "like"}, Reserved, "NOT LIKE"},
	{[]string{"not", "ilike"}, Reserved, "NOT ILIKE"},
	{[]string{"not", "between"}, Reserved, "NOT BETWEEN"},
	{[]string{"not", "exists"}, Reserved, "NOT EXISTS"},
	{[]string{"primary", "key"}, Reserved, "PRIMARY KEY"},
	{[]string{"foreign", "key"}, Reserved, "FOREIGN KEY"},
	{[]string{"on", "delete"}, Reserved, "ON DELETE"},
	{[]string{"on", "update"}, Reserved, "ON UPDATE"},
	{[]string{"within", "group"}, Reserved, "WITHIN GROUP"},
	{[]string{"current", "row"}, Reserved, "CURRENT ROW"},
	// JOIN variants stay ReservedNewline here; joins_as_top_level is
	// applied by the layout planner (planner.isJoinKey), not by this table.
	{[]string{"inner", "join"}, ReservedNewline, "INNER JOIN"},
	{[]string{"left", "join"}, ReservedNewline, "LEFT JOIN"},
	{[]string{"right", "join"}, ReservedNewline, "RIGHT JOIN"},
	{[]string{"full", "join"}, ReservedNewline, "FULL JOIN"},
	{[]string{"cross", "join"}, ReservedNewline, "CROSS JOIN"},
	{[]string{"natural", "join"}, ReservedNewline, "NATURAL JOIN"},
}

func init() {
	// Sort longest-first so MatchPhrase always finds the greediest match.
	for i := 1; i < len(multiWordPhrases); i++ {
		for j := i; j > 0 && len(multiWordPhrases[j-1].words) < len(multiWordPhrases[j].words); j-- {
			multiWordPhrases[j-1], multiWordPhrases[j] = multiWordPhrases[j], multiWordPhrases[j-1]
		}
	}
}

// LookupWord classifies a single normalized (already-lowercased) word.
// It returns (Word, false) if the word is not reserved.
func LookupWord(lower string) (Kind, bool) {
	if kind, ok := singleWordReserved[lower]; ok {
		return kind, true
	}
	return Word, false
}

// MatchPhrase attempts to match a multi-word reserved phrase starting at
// words[0] (all entries already lowercased). It returns the number of
// words consumed, the resulting Kind, and the canonical display text.
// ok is false if no phrase matches, in which case the caller should fall
// back to single-word classification of words[0].
func MatchPhrase(words []string) (consumed int, kind Kind, canonical string, ok bool) {
	for _, p := range multiWordPhrases {
		if len(p.words) > len(words) {
			continue
		}
		match := true
		for i, w := range p.words {
			if words[i] != w {
				match = false
				break
			}
		}
		if match {
			return len(p.words), p.kind, p.canonical, true
		}
	}
	return 0, Word, "", false
}

// IsReservedWord reports whether the normalized word participates in any
// reserved classification, single- or multi-word.
func IsReservedWord(lower string) bool {
	if _, ok := singleWordReserved[lower]; ok {
		return true
	}
	for _, p := range multiWordPhrases {
		if p.words[0] == lower {
			return true
		}
	}
	return false
}
