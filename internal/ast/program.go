package ast

// Script is the root of a program parsed with the Script goal.
type Script struct {
	Directives []*Directive
	Statements []Statement
}

func (*Script) programNode() {}

// Module is the root of a program parsed with the Module goal.
type Module struct {
	Directives []*Directive
	Items      []ModuleItem
}

func (*Module) programNode() {}

// Directive is a prologue string such as "use strict". RawValue is the
// source text between the quotes.
type Directive struct {
	RawValue string
}

// FunctionBody holds the directives and statements of a function.
type FunctionBody struct {
	Directives []*Directive
	Statements []Statement
}

func (*FunctionBody) arrowBodyNode() {}

// FormalParameters is a parameter list with an optional rest binding.
type FormalParameters struct {
	Items []Parameter
	Rest  Binding
}

// ClassElement is a method of a class body.
type ClassElement struct {
	IsStatic bool
	Method   MethodDefinition
}

// HasStrictDirective reports whether the directive list contains a
// "use strict" directive written without escapes or line continuations.
func HasStrictDirective(dirs []*Directive) bool {
	for _, d := range dirs {
		if d.RawValue == "use strict" {
			return true
		}
	}
	return false
}

// ============================================================================
// Imports and exports
// ============================================================================

// Import represents import d, {a as b} from "m". DefaultBinding may be nil.
type Import struct {
	importDecl
	DefaultBinding  *BindingIdentifier
	NamedImports    []*ImportSpecifier
	ModuleSpecifier string
}

// ImportNamespace represents import d, * as ns from "m".
type ImportNamespace struct {
	importDecl
	DefaultBinding   *BindingIdentifier
	NamespaceBinding *BindingIdentifier
	ModuleSpecifier  string
}

// ImportSpecifier is name as binding; Name is "" for the short form.
type ImportSpecifier struct {
	Name    string
	Binding *BindingIdentifier
}

// ExportAllFrom represents export * from "m".
type ExportAllFrom struct {
	exportDecl
	ModuleSpecifier string
}

// ExportFrom represents export {a as b} from "m".
type ExportFrom struct {
	exportDecl
	NamedExports    []*ExportFromSpecifier
	ModuleSpecifier string
}

// ExportLocals represents export {a as b}.
type ExportLocals struct {
	exportDecl
	NamedExports []*ExportLocalSpecifier
}

// Export represents export of a declaration.
type Export struct {
	exportDecl
	Declaration ExportableDeclaration
}

// ExportDefault represents export default.
type ExportDefault struct {
	exportDecl
	Body ExportDefaultBody
}

// ExportFromSpecifier is name as exportedName in a re-export.
type ExportFromSpecifier struct {
	Name         string
	ExportedName string // "" if absent
}

// ExportLocalSpecifier is name as exportedName in a local export.
type ExportLocalSpecifier struct {
	Name         *IdentifierExpression
	ExportedName string // "" if absent
}
