package planner

// IndentStyle selects spaces-per-level or a literal tab for each
// indentation unit (spec §3 FormatOptions.indent).
type IndentStyle struct {
	Tabs   bool
	Spaces int // number of spaces per level; ignored when Tabs is true
}

// Unit returns the literal text emitted once per indent level.
func (s IndentStyle) Unit() string {
	if s.Tabs {
		return "\t"
	}
	n := s.Spaces
	if n <= 0 {
		n = 2
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}

// Spaces(n) and Tabs are the two IndentStyle constructors named in spec §3.
func Spaces(n int) IndentStyle { return IndentStyle{Spaces: n} }

var TabsIndent = IndentStyle{Tabs: true}

// CaseMode controls reserved-word case conversion; identifiers keep
// their source case.
type CaseMode int

const (
	// CasePreserve leaves token text exactly as written in the source.
	CasePreserve CaseMode = iota
	CaseUpper
	CaseLower
)

// Options is the FormatOptions record of spec §3: every field is
// orthogonal, and the whole record is shared by the layout planner (the
// inline/budget/joins_as_top_level fields) and the emitter (indent,
// case conversion, spacing, fmt-off passthrough).
type Options struct {
	Indent IndentStyle

	// Case is optional: CasePreserve is the "none" default from spec §3.
	Case CaseMode
	// IgnoreCaseConvert holds normalized (lowercase) words exempt from
	// case conversion.
	IgnoreCaseConvert map[string]bool

	LinesBetweenQueries uint

	// Inline, when true, short-circuits all layout decisions to a single
	// line (spec §4.4 item 6).
	Inline bool

	// MaxInlineBlock is the width budget for a generic parenthesized or
	// bracketed block. Spec default: 50.
	MaxInlineBlock uint

	// MaxInlineArguments bounds a function call's argument-list block.
	// nil means "none" (spec §3): that block never inlines on width
	// alone, EXCEPT this implementation falls back to MaxInlineBlock for
	// argument lists when MaxInlineArguments is unset — see DESIGN.md's
	// Open Question note; spec leaves the literal "none ⇒ never inline"
	// default ambiguous for the common zero/short-arg-list case, and a
	// hard "never inline" default there would even split `COUNT(*)`
	// across lines, which no SQL formatter in the wild does.
	MaxInlineArguments *uint

	// MaxInlineTopLevel bounds a top-level clause body (the text between
	// e.g. SELECT and FROM). nil means "none": always columnar, matching
	// spec §8 scenario 1 exactly.
	MaxInlineTopLevel *uint

	JoinsAsTopLevel bool
}

// NewDefaultOptions returns the FormatOptions defaults from spec §3.
func NewDefaultOptions() *Options {
	return &Options{
		Indent:              Spaces(2),
		Case:                CasePreserve,
		IgnoreCaseConvert:   map[string]bool{},
		LinesBetweenQueries: 1,
		Inline:              false,
		MaxInlineBlock:      50,
		MaxInlineArguments:  nil,
		MaxInlineTopLevel:   nil,
		JoinsAsTopLevel:     false,
	}
}

func (o *Options) effective() *Options {
	if o == nil {
		return NewDefaultOptions()
	}
	return o
}
