package planner

import "github.com/freeeve/machparse/token"

// Visitor receives one callback per statement found in a planned token
// stream. It is the planner-level analogue of visitor.Visitor: instead of
// an AST node, callers see the slice of PlannedToken belonging to one
// statement (terminated by a Semicolon, or running to EOF).
type Visitor interface {
	VisitStatement(stmt []PlannedToken)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(stmt []PlannedToken)

func (f VisitorFunc) VisitStatement(stmt []PlannedToken) { f(stmt) }

// Walk splits planned into per-statement slices (boundary: a token.Semicolon,
// inclusive in the preceding statement) and calls v.VisitStatement once per
// statement, in order. A trailing statement with no closing semicolon is
// still visited. Whitespace-only or comment-only "statements" between two
// semicolons are visited too, matching the emitter's own pass over the
// full stream.
func Walk(v Visitor, planned []PlannedToken) {
	start := 0
	for i, pt := range planned {
		if pt.Tok.Kind == token.Semicolon {
			v.VisitStatement(planned[start : i+1])
			start = i + 1
		}
	}
	if start < len(planned) {
		tail := planned[start:]
		if hasSignificant(tail) {
			v.VisitStatement(tail)
		}
	}
}

func hasSignificant(stmt []PlannedToken) bool {
	for _, pt := range stmt {
		if pt.Tok.Kind != token.Whitespace && pt.Tok.Kind != token.EOF {
			return true
		}
	}
	return false
}
