package ast

// BlockStatement wraps a Block in statement position.
type BlockStatement struct {
	stmt
	Block *Block
}

// Block is a braced statement list.
type Block struct {
	Statements []Statement
}

// BreakStatement represents break with an optional label.
type BreakStatement struct {
	stmt
	Label string // "" if absent
}

// ContinueStatement represents continue with an optional label.
type ContinueStatement struct {
	stmt
	Label string // "" if absent
}

// DebuggerStatement represents debugger.
type DebuggerStatement struct {
	stmt
}

// EmptyStatement represents a lone semicolon.
type EmptyStatement struct {
	stmt
}

// ExpressionStatement represents an expression evaluated for effect.
type ExpressionStatement struct {
	stmt
	Expression Expression
}

// IfStatement represents if/else. Alternate may be nil.
type IfStatement struct {
	stmt
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

// LabeledStatement represents label: body.
type LabeledStatement struct {
	stmt
	Label string
	Body  Statement
}

// ReturnStatement represents return with an optional expression.
type ReturnStatement struct {
	stmt
	Expression Expression
}

// ThrowStatement represents throw.
type ThrowStatement struct {
	stmt
	Expression Expression
}

// WithStatement represents with (object) body.
type WithStatement struct {
	stmt
	Object Expression
	Body   Statement
}

// VariableDeclarationStatement wraps a VariableDeclaration in statement
// position.
type VariableDeclarationStatement struct {
	stmt
	Declaration *VariableDeclaration
}

// VariableDeclaration is a var, let or const declaration list.
type VariableDeclaration struct {
	Kind        VariableDeclarationKind
	Declarators []*VariableDeclarator
}

func (*VariableDeclaration) forInitNode()    {}
func (*VariableDeclaration) forHeadNode()    {}
func (*VariableDeclaration) exportableNode() {}

// VariableDeclarator binds one pattern with an optional initializer.
type VariableDeclarator struct {
	Binding Binding
	Init    Expression
}

// FunctionDeclaration represents a function declaration.
type FunctionDeclaration struct {
	stmt
	declaration
	IsAsync     bool
	IsGenerator bool
	Name        *BindingIdentifier
	Params      *FormalParameters
	Body        *FunctionBody
}

// ClassDeclaration represents a class declaration.
type ClassDeclaration struct {
	stmt
	declaration
	Name     *BindingIdentifier
	Super    Expression
	Elements []*ClassElement
}

// ============================================================================
// Iteration
// ============================================================================

// DoWhileStatement represents do body while (test).
type DoWhileStatement struct {
	stmt
	Body Statement
	Test Expression
}

// WhileStatement represents while (test) body.
type WhileStatement struct {
	stmt
	Test Expression
	Body Statement
}

// ForStatement represents for (init; test; update) body. All three head
// slots may be nil.
type ForStatement struct {
	stmt
	Init   ForInit
	Test   Expression
	Update Expression
	Body   Statement
}

// ForInStatement represents for (left in right) body.
type ForInStatement struct {
	stmt
	Left  ForHead
	Right Expression
	Body  Statement
}

// ForOfStatement represents for (left of right) body.
type ForOfStatement struct {
	stmt
	Left  ForHead
	Right Expression
	Body  Statement
}

// ============================================================================
// Switch and try
// ============================================================================

// SwitchStatement represents a switch without a default clause.
type SwitchStatement struct {
	stmt
	Discriminant Expression
	Cases        []*SwitchCase
}

// SwitchStatementWithDefault represents a switch with exactly one default
// clause, split into the cases before and after it.
type SwitchStatementWithDefault struct {
	stmt
	Discriminant     Expression
	PreDefaultCases  []*SwitchCase
	DefaultCase      *SwitchDefault
	PostDefaultCases []*SwitchCase
}

// SwitchCase is a case clause.
type SwitchCase struct {
	Test       Expression
	Consequent []Statement
}

// SwitchDefault is the default clause.
type SwitchDefault struct {
	Consequent []Statement
}

// TryCatchStatement represents try/catch.
type TryCatchStatement struct {
	stmt
	Body        *Block
	CatchClause *CatchClause
}

// TryFinallyStatement represents try/finally with an optional catch clause.
type TryFinallyStatement struct {
	stmt
	Body        *Block
	CatchClause *CatchClause
	Finalizer   *Block
}

// CatchClause is catch (binding) body.
type CatchClause struct {
	Binding Binding
	Body    *Block
}

// IsIteration reports whether s is a loop statement.
func IsIteration(s Statement) bool {
	switch s.(type) {
	case *DoWhileStatement, *WhileStatement, *ForStatement,
		*ForInStatement, *ForOfStatement:
		return true
	}
	return false
}
