package parser

import (
	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/lexer"
	"github.com/kolkov/ujs/internal/token"
)

// parseModule parses a Module. Module code is always strict.
func (p *Parser) parseModule() *ast.Module {
	start := token.Position{Line: 1, Column: 1}
	dirs, first, ctx := p.parseDirectives(context{strict: true})
	var items []ast.ModuleItem
	if first != nil {
		items = append(items, first)
	}
	var j jumps
	for p.tok.Type != token.EOF {
		item, ij := p.parseModuleItem(ctx)
		items = append(items, item)
		j = j.concat(ij)
	}
	p.reportJumps(j, true)
	return spanned(p, token.Span{Start: start, End: p.tok.Span.End}, &ast.Module{Directives: dirs, Items: items})
}

// parseModuleItem parses an import, an export or a statement list item.
func (p *Parser) parseModuleItem(ctx context) (ast.ModuleItem, jumps) {
	switch p.tok.Type {
	case token.IMPORT:
		return p.parseImport(ctx), jumps{}
	case token.EXPORT:
		return p.parseExport(ctx), jumps{}
	}
	return p.parseStatementListItem(ctx)
}

// parseImport parses the import declaration forms:
//
//	import "m";
//	import d from "m";
//	import d, * as ns from "m";
//	import d, {a, b as c} from "m";
func (p *Parser) parseImport(ctx context) ast.ImportDeclaration {
	start := p.tok.Span.Start
	p.next()
	if p.tok.Type == token.STRING {
		spec := p.parseModuleSpecifier()
		p.consumeSemicolon()
		return finish(p, start, &ast.Import{ModuleSpecifier: spec})
	}
	var def *ast.BindingIdentifier
	if p.tok.Type == token.IDENT {
		def = p.parseBindingIdentifier(ctx)
		if !p.eat(token.COMMA) {
			spec := p.parseFromClause()
			return finish(p, start, &ast.Import{DefaultBinding: def, ModuleSpecifier: spec})
		}
	}
	switch p.tok.Type {
	case token.MUL:
		p.next()
		p.expectContextual("as")
		ns := p.parseBindingIdentifier(ctx)
		spec := p.parseFromClause()
		return finish(p, start, &ast.ImportNamespace{DefaultBinding: def, NamespaceBinding: ns, ModuleSpecifier: spec})
	case token.LBRACE:
		named := p.parseImportSpecifiers(ctx)
		spec := p.parseFromClause()
		return finish(p, start, &ast.Import{DefaultBinding: def, NamedImports: named, ModuleSpecifier: spec})
	}
	p.unexpected()
	return nil
}

func (p *Parser) parseImportSpecifiers(ctx context) []*ast.ImportSpecifier {
	p.expect(token.LBRACE)
	var specs []*ast.ImportSpecifier
	for p.tok.Type != token.RBRACE {
		start := p.tok.Span.Start
		tok := p.tok
		if !tok.Type.IdentifierName() {
			p.unexpected()
		}
		p.next()
		spec := &ast.ImportSpecifier{}
		if p.isContextual("as") {
			p.next()
			spec.Name = tok.Value
			spec.Binding = p.parseBindingIdentifier(ctx)
		} else {
			if tok.Type != token.IDENT {
				p.failf(tok.Span.Start, errUnexpectedToken, "'"+tok.Value+"'")
			}
			spec.Binding = p.bindingIdentifier(ctx, tok)
		}
		specs = append(specs, finish(p, start, spec))
		if p.tok.Type != token.RBRACE {
			p.expect(token.COMMA)
		}
	}
	p.next()
	return specs
}

// parseFromClause parses 'from' followed by a module specifier and the
// end of the declaration.
func (p *Parser) parseFromClause() string {
	p.expectContextual("from")
	spec := p.parseModuleSpecifier()
	p.consumeSemicolon()
	return spec
}

func (p *Parser) parseModuleSpecifier() string {
	if p.tok.Type != token.STRING {
		p.fail(expectedError(p.tok.Span.Start, "module specifier", p.tokenDesc()))
	}
	spec := p.tok.Value
	p.next()
	return spec
}

// exportName is an entry of an export clause before it is known whether
// the clause re-exports from another module.
type exportName struct {
	tok      lexer.Token
	exported string
	start    token.Position
	end      token.Position
}

// parseExport parses the export declaration forms.
func (p *Parser) parseExport(ctx context) ast.ExportDeclaration {
	start := p.tok.Span.Start
	p.next()
	switch {
	case p.tok.Type == token.MUL:
		p.next()
		spec := p.parseFromClause()
		return finish(p, start, &ast.ExportAllFrom{ModuleSpecifier: spec})
	case p.tok.Type == token.LBRACE:
		return p.parseExportClause(ctx, start)
	case p.tok.Type == token.DEFAULT:
		p.next()
		return finish(p, start, &ast.ExportDefault{Body: p.parseExportDefaultBody(ctx)})
	case p.tok.Type == token.VAR || p.tok.Type == token.CONST || p.isContextual("let"):
		decl := p.parseVariableDeclaration(ctx, false)
		p.consumeSemicolon()
		return finish(p, start, &ast.Export{Declaration: decl})
	case p.tok.Type == token.FUNCTION:
		fn := p.parseFunctionDeclaration(ctx, p.tok.Span.Start, false, false)
		return finish(p, start, &ast.Export{Declaration: fn})
	case p.asyncFunctionFollows():
		fnStart := p.tok.Span.Start
		p.next()
		fn := p.parseFunctionDeclaration(ctx, fnStart, true, false)
		return finish(p, start, &ast.Export{Declaration: fn})
	case p.tok.Type == token.CLASS:
		return finish(p, start, &ast.Export{Declaration: p.parseClassDeclaration(ctx, false)})
	}
	p.unexpected()
	return nil
}

// parseExportClause parses export {a, b as c} with an optional from
// clause. Without one, the local names must be identifier references.
func (p *Parser) parseExportClause(ctx context, start token.Position) ast.ExportDeclaration {
	p.expect(token.LBRACE)
	var names []exportName
	for p.tok.Type != token.RBRACE {
		n := exportName{tok: p.tok, start: p.tok.Span.Start}
		if !p.tok.Type.IdentifierName() {
			p.unexpected()
		}
		p.next()
		if p.isContextual("as") {
			p.next()
			n.exported = p.parseIdentifierName()
		}
		n.end = p.prevEnd
		names = append(names, n)
		if p.tok.Type != token.RBRACE {
			p.expect(token.COMMA)
		}
	}
	p.next()

	if p.isContextual("from") {
		var specs []*ast.ExportFromSpecifier
		for _, n := range names {
			s := &ast.ExportFromSpecifier{Name: n.tok.Value, ExportedName: n.exported}
			specs = append(specs, endAt(p, n, s))
		}
		spec := p.parseFromClause()
		return finish(p, start, &ast.ExportFrom{NamedExports: specs, ModuleSpecifier: spec})
	}
	var specs []*ast.ExportLocalSpecifier
	for _, n := range names {
		if n.tok.Type != token.IDENT {
			p.failf(n.start, errUnexpectedToken, "'"+n.tok.Value+"'")
		}
		p.checkIdentifierReference(ctx, n.tok)
		id := spanned(p, n.tok.Span, &ast.IdentifierExpression{Name: n.tok.Value})
		specs = append(specs, endAt(p, n, &ast.ExportLocalSpecifier{Name: id, ExportedName: n.exported}))
	}
	p.consumeSemicolon()
	return finish(p, start, &ast.ExportLocals{NamedExports: specs})
}

// endAt records the span of an export specifier, which ends at its
// exported name when present.
func endAt[T ast.Node](p *Parser, n exportName, spec T) T {
	if p.locs != nil {
		p.locs.Set(spec, token.Span{Start: n.start, End: n.end})
	}
	return spec
}

// parseExportDefaultBody parses the declaration or expression after
// 'export default'.
func (p *Parser) parseExportDefaultBody(ctx context) ast.ExportDefaultBody {
	start := p.tok.Span.Start
	switch {
	case p.tok.Type == token.FUNCTION:
		return p.parseFunctionDeclaration(ctx, start, false, true)
	case p.asyncFunctionFollows():
		p.next()
		return p.parseFunctionDeclaration(ctx, start, true, true)
	case p.tok.Type == token.CLASS:
		return p.parseClassDeclaration(ctx, true)
	}
	expr := p.parseAssign(ctx)
	p.consumeSemicolon()
	return expr
}
