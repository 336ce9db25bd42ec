package semantic

import (
	"math"

	"github.com/kolkov/ujs/internal/ast"
	"github.com/kolkov/ujs/internal/token"
)

// context describes what the enclosing program allows at a node. It is
// passed by value, so entering a construct never leaks into its siblings.
type context struct {
	strict    bool
	module    bool
	generator bool // yield is an operator
	async     bool // await is an operator
	params    bool // inside formal parameters
	function  bool // return is allowed
	superCall bool
	superProp bool
	newTarget bool

	labels    []label
	iteration bool // an unlabeled continue has a target
	breakable bool // an unlabeled break has a target
}

type label struct {
	name      string
	iteration bool
}

// withLabel returns ctx with l added to the label set. The slice is
// copied so that sibling statements do not share it.
func (ctx context) withLabel(l label) context {
	ctx.labels = append(ctx.labels[:len(ctx.labels):len(ctx.labels)], l)
	return ctx
}

func (ctx context) lookupLabel(name string) (label, bool) {
	for _, l := range ctx.labels {
		if l.name == name {
			return l, true
		}
	}
	return label{}, false
}

// loop returns the context of the body of an iteration statement.
func (ctx context) loop() context {
	ctx.iteration = true
	ctx.breakable = true
	return ctx
}

// checker walks a program and accumulates early errors.
type checker struct {
	locs   *ast.Locations
	parsed bool
	errs   ErrorList

	scope   *Scope
	exports map[string]bool
}

// Check validates prog and returns every early error found. The tree may
// have been built by hand. locs, if non-nil, supplies error positions.
func Check(prog ast.Program, locs *ast.Locations) ErrorList {
	return check(prog, locs, false)
}

// CheckParsed is like Check for trees produced by the parser. Rules the
// parser enforces itself (jump targets, return, yield, await, super and
// new.target placement) are not checked again.
func CheckParsed(prog ast.Program, locs *ast.Locations) ErrorList {
	return check(prog, locs, true)
}

func check(prog ast.Program, locs *ast.Locations, parsed bool) ErrorList {
	c := &checker{locs: locs, parsed: parsed}
	switch prog := prog.(type) {
	case *ast.Script:
		c.checkScript(prog)
	case *ast.Module:
		c.checkModule(prog)
	}
	if locs != nil {
		c.errs.Sort()
	}
	return c.errs
}

// errorf records an error at node n.
func (c *checker) errorf(n ast.Node, format string, args ...any) {
	var pos token.Position
	if c.locs != nil {
		if span, ok := c.locs.Get(n); ok {
			pos = span.Start
		}
	}
	c.errs.Add(pos, n, format, args...)
}

// contextErrorf records an error that the parser reports on its own.
func (c *checker) contextErrorf(n ast.Node, format string, args ...any) {
	if !c.parsed {
		c.errorf(n, format, args...)
	}
}

// report records msg for a declaration conflict, if any.
func (c *checker) report(id *ast.BindingIdentifier, msg string) {
	if msg != "" {
		c.errorf(id, msg, id.Name)
	}
}

// checkName checks an identifier. Bindings and assignment targets may
// not be eval or arguments in strict code.
func (c *checker) checkName(n ast.Node, name string, ctx context, binding bool) {
	if msg := identifierError(name, ctx); msg != "" {
		c.errorf(n, msg, name)
		return
	}
	if binding && ctx.strict && token.IsRestrictedWord(name) {
		c.errorf(n, errRestrictedBinding, name)
	}
	switch {
	case ctx.generator && name == "yield":
		c.contextErrorf(n, errYieldIdentifier)
	case ctx.async && name == "await":
		c.contextErrorf(n, errAwaitIdentifier)
	}
}

// visit checks n and its subtree.
func (c *checker) visit(n ast.Node, ctx context) {
	switch n := n.(type) {
	case nil:
		return

	// Scopes and declarations
	case *ast.BlockStatement:
		c.visitBlock(n.Block, ctx)
		return
	case *ast.Block:
		c.visitBlock(n, ctx)
		return
	case *ast.VariableDeclarationStatement:
		c.visitDeclaration(n.Declaration, ctx, false)
		return
	case *ast.CatchClause:
		c.visitCatch(n, ctx)
		return
	case *ast.FunctionDeclaration:
		c.visitFunction(declarationInfo(n), ctx)
		return
	case *ast.FunctionExpression:
		c.visitFunction(expressionInfo(n), ctx)
		return
	case *ast.ArrowExpression:
		c.visitFunction(arrowInfo(n), ctx)
		return
	case *ast.Method, *ast.Getter, *ast.Setter:
		c.visitMethod(n.(ast.MethodDefinition), ctx, false)
		return
	case *ast.ClassDeclaration:
		c.visitClass(n.Name, n.Super, n.Elements, ctx, false)
		return
	case *ast.ClassExpression:
		c.visitClass(n.Name, n.Super, n.Elements, ctx, false)
		return

	// Statements
	case *ast.IfStatement:
		c.visit(n.Test, ctx)
		c.visitBody(n.Consequent, ctx, true)
		if n.Alternate != nil {
			c.visitBody(n.Alternate, ctx, true)
		}
		return
	case *ast.WhileStatement:
		c.visit(n.Test, ctx)
		c.visitBody(n.Body, ctx.loop(), false)
		return
	case *ast.DoWhileStatement:
		c.visitBody(n.Body, ctx.loop(), false)
		c.visit(n.Test, ctx)
		return
	case *ast.ForStatement:
		c.visitFor(n, ctx)
		return
	case *ast.ForInStatement:
		c.visitForInOf("for-in", n.Left, n.Right, n.Body, ctx)
		return
	case *ast.ForOfStatement:
		c.visitForInOf("for-of", n.Left, n.Right, n.Body, ctx)
		return
	case *ast.SwitchStatement:
		c.visit(n.Discriminant, ctx)
		c.visitCases(n.Cases, nil, nil, ctx)
		return
	case *ast.SwitchStatementWithDefault:
		c.visit(n.Discriminant, ctx)
		c.visitCases(n.PreDefaultCases, n.DefaultCase, n.PostDefaultCases, ctx)
		return
	case *ast.LabeledStatement:
		if msg := identifierError(n.Label, ctx); msg != "" {
			c.errorf(n, msg, n.Label)
		}
		if _, ok := ctx.lookupLabel(n.Label); ok {
			c.contextErrorf(n, errDuplicateLabel, n.Label)
		}
		iteration := ast.IsIteration(labelTarget(n.Body))
		c.visitBody(n.Body, ctx.withLabel(label{name: n.Label, iteration: iteration}), true)
		return
	case *ast.WithStatement:
		if ctx.strict {
			c.errorf(n, errStrictWith)
		}
		c.visit(n.Object, ctx)
		c.visitBody(n.Body, ctx, false)
		return
	case *ast.BreakStatement:
		switch {
		case n.Label == "":
			if !ctx.breakable {
				c.contextErrorf(n, errIllegalBreak)
			}
		default:
			if _, ok := ctx.lookupLabel(n.Label); !ok {
				c.contextErrorf(n, errUndefinedLabel, n.Label)
			}
		}
	case *ast.ContinueStatement:
		switch {
		case n.Label == "":
			if !ctx.iteration {
				c.contextErrorf(n, errIllegalContinue)
			}
		default:
			l, ok := ctx.lookupLabel(n.Label)
			if !ok {
				c.contextErrorf(n, errUndefinedLabel, n.Label)
			} else if !l.iteration {
				c.contextErrorf(n, errContinueNotLoop, n.Label)
			}
		}
	case *ast.ReturnStatement:
		if !ctx.function {
			c.contextErrorf(n, errIllegalReturn)
		}

	// Identifiers
	case *ast.IdentifierExpression:
		c.checkName(n, n.Name, ctx, false)
	case *ast.AssignmentTargetIdentifier:
		c.checkName(n, n.Name, ctx, true)
	case *ast.BindingIdentifier:
		c.checkName(n, n.Name, ctx, true)
	case *ast.StaticMemberExpression:
		if !isIdentifierName(n.Property) {
			c.errorf(n, errInvalidProperty, n.Property)
		}
	case *ast.StaticMemberAssignmentTarget:
		if !isIdentifierName(n.Property) {
			c.errorf(n, errInvalidProperty, n.Property)
		}

	// Expressions
	case *ast.UnaryExpression:
		if n.Operator == ast.OpDelete && ctx.strict {
			if _, ok := n.Operand.(*ast.IdentifierExpression); ok {
				c.errorf(n, errStrictDelete)
			}
		}
	case *ast.ObjectExpression:
		c.checkProperties(n)
	case *ast.YieldExpression, *ast.YieldGeneratorExpression:
		if ctx.params {
			c.errorf(n, errParamsExpression, "yield")
		} else if !ctx.generator {
			c.contextErrorf(n, errYieldOutside)
		}
	case *ast.AwaitExpression:
		if ctx.params {
			c.errorf(n, errParamsExpression, "await")
		} else if !ctx.async {
			c.contextErrorf(n, errAwaitOutside)
		}
	case *ast.CallExpression:
		if _, ok := n.Callee.(*ast.Super); ok {
			if !ctx.superCall {
				c.contextErrorf(n, errSuperCall)
			}
			for _, arg := range n.Arguments {
				c.visit(arg, ctx)
			}
			return
		}
	case *ast.Super:
		if !ctx.superProp {
			c.contextErrorf(n, errSuperProperty)
		}
	case *ast.NewTargetExpression:
		if !ctx.newTarget {
			c.contextErrorf(n, errNewTarget)
		}

	// Literals
	case *ast.LiteralNumericExpression:
		if math.IsNaN(n.Value) || math.IsInf(n.Value, 0) || math.Signbit(n.Value) {
			c.errorf(n, errNumericLiteral, n.Value)
		}
	case *ast.LiteralRegExpExpression:
		if err := validateRegExp(n); err != nil {
			c.errorf(n, errInvalidRegExp, n.Pattern, err)
		}
	case *ast.TemplateElement:
		if !validTemplateRaw(n.RawValue) {
			c.errorf(n, errTemplateElement, n.RawValue)
		}
	}

	for _, child := range ast.Children(n) {
		c.visit(child, ctx)
	}
}

// visitBody checks the body of a compound statement, where declarations
// other than var are not allowed. With annexB set, a plain function
// declaration is allowed in sloppy code.
func (c *checker) visitBody(s ast.Statement, ctx context, annexB bool) {
	switch s := s.(type) {
	case *ast.ClassDeclaration:
		c.errorf(s, errLexicalBody)
	case *ast.VariableDeclarationStatement:
		if s.Declaration.Kind != ast.Var {
			c.errorf(s, errLexicalBody)
		}
	case *ast.FunctionDeclaration:
		if !annexB || ctx.strict || s.IsAsync || s.IsGenerator {
			c.errorf(s, errFunctionBody)
		}
	}
	c.visit(s, ctx)
}

// labelTarget strips nested labels from the body of a labeled statement.
func labelTarget(s ast.Statement) ast.Statement {
	for {
		l, ok := s.(*ast.LabeledStatement)
		if !ok {
			return s
		}
		s = l.Body
	}
}
