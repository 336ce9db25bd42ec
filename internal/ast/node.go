// Package ast defines the abstract syntax tree for ECMAScript programs.
//
// The tree follows the Shift AST node set for ECMAScript 2017:
//
//   - Nodes carry no source positions; see Locations for the side table
//     that maps nodes to spans.
//   - Every node kind is described by a declarative field table (see
//     Fields), which drives the generic algorithms (Walk, Reduce, Rewrite,
//     Equal, Path navigation) and the JSON interchange form.
//   - Slots that admit several node kinds are typed with small capability
//     interfaces (Expression, Binding, AssignmentTarget, ...) so that the
//     Go type system rules out most ill-formed trees.
//
// Node hierarchy (abridged):
//
//	Node (interface)
//	├── Program - Script, Module
//	├── Statement - BlockStatement, IfStatement, ForStatement, ...
//	├── Expression - IdentifierExpression, BinaryExpression, ...
//	├── Binding - BindingIdentifier, ArrayBinding, ObjectBinding
//	├── AssignmentTarget - AssignmentTargetIdentifier, member targets, patterns
//	├── ObjectProperty - DataProperty, ShorthandProperty, MethodDefinition
//	└── ModuleItem - ImportDeclaration, ExportDeclaration, Statement
package ast

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Type returns the node kind, the "type" discriminator of the
	// interchange form.
	Type() Kind
}

// Program is implemented by Script and Module.
type Program interface {
	Node
	programNode()
}

// Statement is the interface for all statement nodes.
type Statement interface {
	Node
	ModuleItem
	stmtNode()
}

// Expression is the interface for all expression nodes.
type Expression interface {
	Node
	ExpressionSuper
	SpreadElementExpression
	ArrowBody
	ForInit
	ExportDefaultBody
	TemplatePart
	exprNode()
}

// ExpressionSuper is an Expression or Super: the callee of a call and the
// object of a member access.
type ExpressionSuper interface {
	Node
	exprSuperNode()
}

// SpreadElementExpression is an Expression or SpreadElement: an argument
// or an array element.
type SpreadElementExpression interface {
	Node
	spreadNode()
}

// Binding is a binding pattern: BindingIdentifier, ArrayBinding or
// ObjectBinding.
type Binding interface {
	Node
	Parameter
	bindingNode()
}

// Parameter is a Binding or BindingWithDefault.
type Parameter interface {
	Node
	paramNode()
}

// BindingProperty is a property of an ObjectBinding.
type BindingProperty interface {
	Node
	bindingPropertyNode()
}

// AssignmentTarget is a simple or destructuring assignment target.
type AssignmentTarget interface {
	Node
	AssignmentTargetElement
	ForHead
	targetNode()
}

// SimpleAssignmentTarget is an identifier or member assignment target.
type SimpleAssignmentTarget interface {
	AssignmentTarget
	simpleTargetNode()
}

// AssignmentTargetElement is an AssignmentTarget or
// AssignmentTargetWithDefault.
type AssignmentTargetElement interface {
	Node
	targetElementNode()
}

// AssignmentTargetProperty is a property of an ObjectAssignmentTarget.
type AssignmentTargetProperty interface {
	Node
	targetPropertyNode()
}

// PropertyName is a StaticPropertyName or ComputedPropertyName.
type PropertyName interface {
	Node
	propertyNameNode()
}

// ObjectProperty is a member of an ObjectExpression.
type ObjectProperty interface {
	Node
	objectPropertyNode()
}

// MethodDefinition is a Method, Getter or Setter.
type MethodDefinition interface {
	ObjectProperty
	methodNode()
}

// ArrowBody is the body of an arrow function: a FunctionBody or a
// concise Expression.
type ArrowBody interface {
	Node
	arrowBodyNode()
}

// ForInit is the init slot of a ForStatement.
type ForInit interface {
	Node
	forInitNode()
}

// ForHead is the left side of a for-in or for-of statement.
type ForHead interface {
	Node
	forHeadNode()
}

// ModuleItem is a top-level item of a Module.
type ModuleItem interface {
	Node
	moduleItemNode()
}

// ImportDeclaration is an Import or ImportNamespace.
type ImportDeclaration interface {
	ModuleItem
	importNode()
}

// ExportDeclaration is one of the export forms.
type ExportDeclaration interface {
	ModuleItem
	exportNode()
}

// ExportableDeclaration is the declaration of an Export node.
type ExportableDeclaration interface {
	Node
	exportableNode()
}

// ExportDefaultBody is the body of an ExportDefault node.
type ExportDefaultBody interface {
	Node
	exportDefaultNode()
}

// TemplatePart is an element of a TemplateExpression: a TemplateElement
// or an interpolated Expression.
type TemplatePart interface {
	Node
	templatePartNode()
}

// Marker sets embedded by the concrete node types. expr and stmt carry a
// byte so that nodes with no other fields still get distinct addresses.

type expr struct{ _ byte }

func (expr) exprNode()          {}
func (expr) exprSuperNode()     {}
func (expr) spreadNode()        {}
func (expr) arrowBodyNode()     {}
func (expr) forInitNode()       {}
func (expr) exportDefaultNode() {}
func (expr) templatePartNode()  {}

type stmt struct{ _ byte }

func (stmt) stmtNode()       {}
func (stmt) moduleItemNode() {}

type declaration struct{}

func (declaration) exportableNode()    {}
func (declaration) exportDefaultNode() {}

type binding struct{}

func (binding) bindingNode() {}
func (binding) paramNode()   {}

type target struct{}

func (target) targetNode()        {}
func (target) targetElementNode() {}
func (target) forHeadNode()       {}

type simpleTarget struct{ target }

func (simpleTarget) simpleTargetNode() {}

type method struct{}

func (method) objectPropertyNode() {}
func (method) methodNode()         {}

type property struct{}

func (property) objectPropertyNode() {}

type propertyName struct{}

func (propertyName) propertyNameNode() {}

type importDecl struct{}

func (importDecl) moduleItemNode() {}
func (importDecl) importNode()     {}

type exportDecl struct{}

func (exportDecl) moduleItemNode() {}
func (exportDecl) exportNode()     {}
