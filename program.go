package ujs

import (
	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/astjson"
	"github.com/kolkov/ujs/internal/codegen"
	"github.com/kolkov/ujs/internal/lexer"
	"github.com/kolkov/ujs/internal/token"
)

// Program is a parsed Script or Module. The tree is never modified after
// parsing, so a Program is safe for concurrent use.
type Program struct {
	tree     ast.Program
	goal     Goal
	locs     *ast.Locations  // nil unless parsed with locations
	comments []lexer.Comment // nil for trees not built by the parser
	source   string
}

// NewProgram wraps a tree built by hand or by a transformation. The
// tree has no locations and is not checked; use Validate for that.
func NewProgram(tree ast.Program) *Program {
	p := &Program{tree: tree}
	if _, ok := tree.(*ast.Module); ok {
		p.goal = Module
	}
	return p
}

// Tree returns the root of the syntax tree.
func (p *Program) Tree() ast.Program {
	return p.tree
}

// Goal returns the goal the program was parsed with.
func (p *Program) Goal() Goal {
	return p.goal
}

// Source returns the source text, or "" for programs not built by the
// parser.
func (p *Program) Source() string {
	return p.source
}

// Location returns the source span of n, a node of this program. It
// reports false if the program was parsed without locations.
func (p *Program) Location(n ast.Node) (token.Span, bool) {
	if p.locs == nil {
		return token.Span{}, false
	}
	return p.locs.Get(n)
}

// Locations returns the location table, or nil.
func (p *Program) Locations() *ast.Locations {
	return p.locs
}

// Comments returns the comments of the source in order.
func (p *Program) Comments() []lexer.Comment {
	return p.comments
}

// Generate prints the program compactly, or indented if pretty is set.
func (p *Program) Generate(pretty bool) string {
	return codegen.Generate(p.tree, pretty)
}

// JSON returns the JSON interchange form of the tree. Nodes get a "loc"
// member if the program has locations.
func (p *Program) JSON(indent bool) ([]byte, error) {
	return astjson.EncodeWith(p.tree, astjson.Options{
		Locations: p.locs,
		Indent:    indent,
	})
}

// MarshalJSON implements json.Marshaler.
func (p *Program) MarshalJSON() ([]byte, error) {
	return p.JSON(false)
}

// String returns the compact source form of the program.
func (p *Program) String() string {
	return p.Generate(false)
}
