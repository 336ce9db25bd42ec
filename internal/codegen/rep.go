package codegen

// repKind identifies the shape of a code representation node.
type repKind uint8

const (
	repEmpty    repKind = iota
	repToken            // a single token
	repNumber           // a numeric literal token
	repRegExp           // a regular expression literal token
	repSeq              // items in order
	repParen            // ( items )
	repBracket          // [ items ]
	repBrace            // { items }
	repBlock            // { statements }, one per line in pretty mode
	repLines            // statements, one per line in pretty mode
	repIndent           // statements, one per line and indented in pretty mode
	repCommaSep         // items separated by commas
	repSemi             // a required semicolon
	repSemiOp           // an optional semicolon, written only if needed
	repSpace            // a space in pretty mode, nothing otherwise
	repNoIn             // items with 'in' disallowed
	repContainsIn       // items parenthesized where 'in' is disallowed
)

// flags carry facts about the start and end of a rendering up the tree,
// so a parent can decide on parentheses without looking into its children.
type flags uint8

const (
	startsWithCurly flags = 1 << iota
	startsWithFunctionOrClass
	startsWithLet
	startsWithLetSquareBracket
	endsWithMissingElse
)

// startFlags are inherited from the first item of a sequence.
const startFlags = startsWithCurly | startsWithFunctionOrClass | startsWithLet | startsWithLetSquareBracket

// rep is the code representation of a subtree: tokens with explicit
// grouping, independent of spacing and semicolon placement.
type rep struct {
	kind  repKind
	text  string
	items []*rep
	flags flags
}

func (r *rep) has(f flags) bool {
	return r.flags&f != 0
}

// with returns r with f set.
func (r *rep) with(f flags) *rep {
	r.flags |= f
	return r
}

var (
	empty  = &rep{kind: repEmpty}
	semi   = &rep{kind: repSemi}
	semiOp = &rep{kind: repSemiOp}
	space  = &rep{kind: repSpace}
)

func t(text string) *rep {
	return &rep{kind: repToken, text: text}
}

func number(text string) *rep {
	return &rep{kind: repNumber, text: text}
}

func regexp(text string) *rep {
	return &rep{kind: repRegExp, text: text}
}

// seq concatenates reps. The result starts like its first non-empty item
// and ends like its last one.
func seq(items ...*rep) *rep {
	r := &rep{kind: repSeq}
	for _, it := range items {
		if it == nil || it.kind == repEmpty {
			continue
		}
		r.items = append(r.items, it)
	}
	if len(r.items) > 0 {
		r.flags = r.items[0].flags & startFlags
		r.flags |= r.items[len(r.items)-1].flags & endsWithMissingElse
	}
	return r
}

func group(kind repKind, items ...*rep) *rep {
	return &rep{kind: kind, items: items}
}

func paren(items ...*rep) *rep {
	return group(repParen, items...)
}

func bracket(items ...*rep) *rep {
	return group(repBracket, items...)
}

func brace(items ...*rep) *rep {
	return group(repBrace, items...).with(startsWithCurly)
}

func commaSep(items []*rep) *rep {
	return group(repCommaSep, items...)
}

// block renders a braced statement list.
func block(stmts []*rep) *rep {
	return group(repBlock, stmts...).with(startsWithCurly)
}

func lines(stmts []*rep) *rep {
	return group(repLines, stmts...)
}

func indent(stmts []*rep) *rep {
	return group(repIndent, stmts...)
}

func noIn(r *rep) *rep {
	return &rep{kind: repNoIn, items: []*rep{r}, flags: r.flags}
}

func containsIn(r *rep) *rep {
	return &rep{kind: repContainsIn, items: []*rep{r}, flags: r.flags}
}
