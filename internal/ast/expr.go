package ast

// ============================================================================
// Literals
// ============================================================================

// LiteralBooleanExpression represents true or false.
type LiteralBooleanExpression struct {
	expr
	Value bool
}

// LiteralInfinityExpression represents a numeric literal too large to be
// represented as a finite double (e.g. 2e308).
type LiteralInfinityExpression struct {
	expr
}

// LiteralNullExpression represents null.
type LiteralNullExpression struct {
	expr
}

// LiteralNumericExpression represents a finite, non-negative numeric literal.
type LiteralNumericExpression struct {
	expr
	Value float64
}

// LiteralRegExpExpression represents a regular expression literal.
type LiteralRegExpExpression struct {
	expr
	Pattern    string
	Global     bool
	IgnoreCase bool
	MultiLine  bool
	Sticky     bool
	Unicode    bool
}

// LiteralStringExpression represents a string literal. Value holds the
// cooked string value.
type LiteralStringExpression struct {
	expr
	Value string
}

// ============================================================================
// Primary expressions
// ============================================================================

// IdentifierExpression represents a reference to a binding.
type IdentifierExpression struct {
	expr
	Name string
}

// ThisExpression represents this.
type ThisExpression struct {
	expr
}

// NewTargetExpression represents new.target.
type NewTargetExpression struct {
	expr
}

// ArrayExpression represents an array literal. Nil elements are holes.
type ArrayExpression struct {
	expr
	Elements []SpreadElementExpression
}

// ObjectExpression represents an object literal.
type ObjectExpression struct {
	expr
	Properties []ObjectProperty
}

// TemplateExpression represents a template literal, optionally tagged.
// Elements alternate between TemplateElement and Expression, starting and
// ending with a TemplateElement.
type TemplateExpression struct {
	expr
	Tag      Expression
	Elements []TemplatePart
}

// ClassExpression represents a class expression. Name may be nil.
type ClassExpression struct {
	expr
	Name     *BindingIdentifier
	Super    Expression
	Elements []*ClassElement
}

// FunctionExpression represents a function expression. Name may be nil.
type FunctionExpression struct {
	expr
	IsAsync     bool
	IsGenerator bool
	Name        *BindingIdentifier
	Params      *FormalParameters
	Body        *FunctionBody
}

// ArrowExpression represents an arrow function.
type ArrowExpression struct {
	expr
	IsAsync bool
	Params  *FormalParameters
	Body    ArrowBody
}

// ============================================================================
// Operations
// ============================================================================

// AssignmentExpression represents target = expression.
type AssignmentExpression struct {
	expr
	Binding    AssignmentTarget
	Expression Expression
}

// CompoundAssignmentExpression represents target op= expression.
type CompoundAssignmentExpression struct {
	expr
	Binding    SimpleAssignmentTarget
	Operator   CompoundAssignmentOperator
	Expression Expression
}

// BinaryExpression represents a binary operation, including the comma
// operator.
type BinaryExpression struct {
	expr
	Left     Expression
	Operator BinaryOperator
	Right    Expression
}

// ConditionalExpression represents test ? consequent : alternate.
type ConditionalExpression struct {
	expr
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

// UnaryExpression represents a prefix unary operation.
type UnaryExpression struct {
	expr
	Operator UnaryOperator
	Operand  Expression
}

// UpdateExpression represents ++ or -- in prefix or postfix position.
type UpdateExpression struct {
	expr
	IsPrefix bool
	Operator UpdateOperator
	Operand  SimpleAssignmentTarget
}

// YieldExpression represents yield with an optional operand.
type YieldExpression struct {
	expr
	Expression Expression
}

// YieldGeneratorExpression represents yield*.
type YieldGeneratorExpression struct {
	expr
	Expression Expression
}

// AwaitExpression represents await.
type AwaitExpression struct {
	expr
	Expression Expression
}

// ============================================================================
// Calls and member access
// ============================================================================

// CallExpression represents callee(arguments).
type CallExpression struct {
	expr
	Callee    ExpressionSuper
	Arguments []SpreadElementExpression
}

// NewExpression represents new callee(arguments).
type NewExpression struct {
	expr
	Callee    Expression
	Arguments []SpreadElementExpression
}

// StaticMemberExpression represents object.property.
type StaticMemberExpression struct {
	expr
	Object   ExpressionSuper
	Property string
}

// ComputedMemberExpression represents object[expression].
type ComputedMemberExpression struct {
	expr
	Object     ExpressionSuper
	Expression Expression
}

// Super represents super as a callee or member object.
type Super struct{ _ byte }

func (*Super) exprSuperNode() {}

// SpreadElement represents ...expression in arguments and array literals.
type SpreadElement struct {
	Expression Expression
}

func (*SpreadElement) spreadNode() {}

// TemplateElement is a raw literal chunk of a template.
type TemplateElement struct {
	RawValue string
}

func (*TemplateElement) templatePartNode() {}
