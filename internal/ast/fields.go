package ast

import (
	"reflect"
	"strings"
)

// Shape describes how a field holds its value.
type Shape uint8

const (
	Scalar      Shape = iota // string, bool, number or operator
	MaybeScalar              // string where "" means absent
	One                      // required child node
	Maybe                    // optional child node, nil when absent
	List                     // sequence of child nodes
	MaybeList                // sequence whose elements may be nil (holes)
)

// IsNode reports whether fields of this shape hold child nodes.
func (s Shape) IsNode() bool { return s >= One }

// IsList reports whether fields of this shape hold sequences.
func (s Shape) IsList() bool { return s == List || s == MaybeList }

// Field describes one field of a node kind.
type Field struct {
	Name  string       // interchange name, e.g. "consequent"
	Shape Shape        // how the value is held
	Elem  reflect.Type // child type for node shapes, value type for scalars

	index int // Go struct field index
}

var (
	tNode                     = reflect.TypeFor[Node]()
	tExpression               = reflect.TypeFor[Expression]()
	tExpressionSuper          = reflect.TypeFor[ExpressionSuper]()
	tSpreadElementExpression  = reflect.TypeFor[SpreadElementExpression]()
	tStatement                = reflect.TypeFor[Statement]()
	tBinding                  = reflect.TypeFor[Binding]()
	tParameter                = reflect.TypeFor[Parameter]()
	tBindingProperty          = reflect.TypeFor[BindingProperty]()
	tAssignmentTarget         = reflect.TypeFor[AssignmentTarget]()
	tSimpleAssignmentTarget   = reflect.TypeFor[SimpleAssignmentTarget]()
	tAssignmentTargetElement  = reflect.TypeFor[AssignmentTargetElement]()
	tAssignmentTargetProperty = reflect.TypeFor[AssignmentTargetProperty]()
	tPropertyName             = reflect.TypeFor[PropertyName]()
	tObjectProperty           = reflect.TypeFor[ObjectProperty]()
	tMethodDefinition         = reflect.TypeFor[MethodDefinition]()
	tArrowBody                = reflect.TypeFor[ArrowBody]()
	tForInit                  = reflect.TypeFor[ForInit]()
	tForHead                  = reflect.TypeFor[ForHead]()
	tModuleItem               = reflect.TypeFor[ModuleItem]()
	tExportableDeclaration    = reflect.TypeFor[ExportableDeclaration]()
	tExportDefaultBody        = reflect.TypeFor[ExportDefaultBody]()
	tTemplatePart             = reflect.TypeFor[TemplatePart]()

	tBindingIdentifier          = reflect.TypeFor[*BindingIdentifier]()
	tAssignmentTargetIdentifier = reflect.TypeFor[*AssignmentTargetIdentifier]()
	tIdentifierExpression       = reflect.TypeFor[*IdentifierExpression]()
	tDirective                  = reflect.TypeFor[*Directive]()
	tFormalParameters           = reflect.TypeFor[*FormalParameters]()
	tFunctionBody               = reflect.TypeFor[*FunctionBody]()
	tBlock                      = reflect.TypeFor[*Block]()
	tCatchClause                = reflect.TypeFor[*CatchClause]()
	tClassElement               = reflect.TypeFor[*ClassElement]()
	tSwitchCase                 = reflect.TypeFor[*SwitchCase]()
	tSwitchDefault              = reflect.TypeFor[*SwitchDefault]()
	tVariableDeclaration        = reflect.TypeFor[*VariableDeclaration]()
	tVariableDeclarator         = reflect.TypeFor[*VariableDeclarator]()
	tImportSpecifier            = reflect.TypeFor[*ImportSpecifier]()
	tExportFromSpecifier        = reflect.TypeFor[*ExportFromSpecifier]()
	tExportLocalSpecifier       = reflect.TypeFor[*ExportLocalSpecifier]()

	tString     = reflect.TypeFor[string]()
	tBool       = reflect.TypeFor[bool]()
	tNumber     = reflect.TypeFor[float64]()
	tBinaryOp   = reflect.TypeFor[BinaryOperator]()
	tUnaryOp    = reflect.TypeFor[UnaryOperator]()
	tUpdateOp   = reflect.TypeFor[UpdateOperator]()
	tCompoundOp = reflect.TypeFor[CompoundAssignmentOperator]()
	tDeclKind   = reflect.TypeFor[VariableDeclarationKind]()
)

func f(name string, shape Shape, elem reflect.Type) Field {
	return Field{Name: name, Shape: shape, Elem: elem}
}

// fieldTable lists the fields of every kind in interchange order. Child
// visiting order in all generic algorithms follows this order.
var fieldTable = [kindEnd][]Field{
	KindArrayAssignmentTarget: {
		f("elements", MaybeList, tAssignmentTargetElement),
		f("rest", Maybe, tAssignmentTarget),
	},
	KindArrayBinding: {
		f("elements", MaybeList, tParameter),
		f("rest", Maybe, tBinding),
	},
	KindArrayExpression: {
		f("elements", MaybeList, tSpreadElementExpression),
	},
	KindArrowExpression: {
		f("isAsync", Scalar, tBool),
		f("params", One, tFormalParameters),
		f("body", One, tArrowBody),
	},
	KindAssignmentExpression: {
		f("binding", One, tAssignmentTarget),
		f("expression", One, tExpression),
	},
	KindAssignmentTargetIdentifier: {
		f("name", Scalar, tString),
	},
	KindAssignmentTargetPropertyIdentifier: {
		f("binding", One, tAssignmentTargetIdentifier),
		f("init", Maybe, tExpression),
	},
	KindAssignmentTargetPropertyProperty: {
		f("name", One, tPropertyName),
		f("binding", One, tAssignmentTargetElement),
	},
	KindAssignmentTargetWithDefault: {
		f("binding", One, tAssignmentTarget),
		f("init", One, tExpression),
	},
	KindAwaitExpression: {
		f("expression", One, tExpression),
	},
	KindBinaryExpression: {
		f("left", One, tExpression),
		f("operator", Scalar, tBinaryOp),
		f("right", One, tExpression),
	},
	KindBindingIdentifier: {
		f("name", Scalar, tString),
	},
	KindBindingPropertyIdentifier: {
		f("binding", One, tBindingIdentifier),
		f("init", Maybe, tExpression),
	},
	KindBindingPropertyProperty: {
		f("name", One, tPropertyName),
		f("binding", One, tParameter),
	},
	KindBindingWithDefault: {
		f("binding", One, tBinding),
		f("init", One, tExpression),
	},
	KindBlock: {
		f("statements", List, tStatement),
	},
	KindBlockStatement: {
		f("block", One, tBlock),
	},
	KindBreakStatement: {
		f("label", MaybeScalar, tString),
	},
	KindCallExpression: {
		f("callee", One, tExpressionSuper),
		f("arguments", List, tSpreadElementExpression),
	},
	KindCatchClause: {
		f("binding", One, tBinding),
		f("body", One, tBlock),
	},
	KindClassDeclaration: {
		f("name", One, tBindingIdentifier),
		f("super", Maybe, tExpression),
		f("elements", List, tClassElement),
	},
	KindClassElement: {
		f("isStatic", Scalar, tBool),
		f("method", One, tMethodDefinition),
	},
	KindClassExpression: {
		f("name", Maybe, tBindingIdentifier),
		f("super", Maybe, tExpression),
		f("elements", List, tClassElement),
	},
	KindCompoundAssignmentExpression: {
		f("binding", One, tSimpleAssignmentTarget),
		f("operator", Scalar, tCompoundOp),
		f("expression", One, tExpression),
	},
	KindComputedMemberAssignmentTarget: {
		f("object", One, tExpressionSuper),
		f("expression", One, tExpression),
	},
	KindComputedMemberExpression: {
		f("object", One, tExpressionSuper),
		f("expression", One, tExpression),
	},
	KindComputedPropertyName: {
		f("expression", One, tExpression),
	},
	KindConditionalExpression: {
		f("test", One, tExpression),
		f("consequent", One, tExpression),
		f("alternate", One, tExpression),
	},
	KindContinueStatement: {
		f("label", MaybeScalar, tString),
	},
	KindDataProperty: {
		f("name", One, tPropertyName),
		f("expression", One, tExpression),
	},
	KindDebuggerStatement: nil,
	KindDirective: {
		f("rawValue", Scalar, tString),
	},
	KindDoWhileStatement: {
		f("body", One, tStatement),
		f("test", One, tExpression),
	},
	KindEmptyStatement: nil,
	KindExport: {
		f("declaration", One, tExportableDeclaration),
	},
	KindExportAllFrom: {
		f("moduleSpecifier", Scalar, tString),
	},
	KindExportDefault: {
		f("body", One, tExportDefaultBody),
	},
	KindExportFrom: {
		f("namedExports", List, tExportFromSpecifier),
		f("moduleSpecifier", Scalar, tString),
	},
	KindExportFromSpecifier: {
		f("name", Scalar, tString),
		f("exportedName", MaybeScalar, tString),
	},
	KindExportLocalSpecifier: {
		f("name", One, tIdentifierExpression),
		f("exportedName", MaybeScalar, tString),
	},
	KindExportLocals: {
		f("namedExports", List, tExportLocalSpecifier),
	},
	KindExpressionStatement: {
		f("expression", One, tExpression),
	},
	KindForInStatement: {
		f("left", One, tForHead),
		f("right", One, tExpression),
		f("body", One, tStatement),
	},
	KindForOfStatement: {
		f("left", One, tForHead),
		f("right", One, tExpression),
		f("body", One, tStatement),
	},
	KindForStatement: {
		f("init", Maybe, tForInit),
		f("test", Maybe, tExpression),
		f("update", Maybe, tExpression),
		f("body", One, tStatement),
	},
	KindFormalParameters: {
		f("items", List, tParameter),
		f("rest", Maybe, tBinding),
	},
	KindFunctionBody: {
		f("directives", List, tDirective),
		f("statements", List, tStatement),
	},
	KindFunctionDeclaration: {
		f("isAsync", Scalar, tBool),
		f("isGenerator", Scalar, tBool),
		f("name", One, tBindingIdentifier),
		f("params", One, tFormalParameters),
		f("body", One, tFunctionBody),
	},
	KindFunctionExpression: {
		f("isAsync", Scalar, tBool),
		f("isGenerator", Scalar, tBool),
		f("name", Maybe, tBindingIdentifier),
		f("params", One, tFormalParameters),
		f("body", One, tFunctionBody),
	},
	KindGetter: {
		f("name", One, tPropertyName),
		f("body", One, tFunctionBody),
	},
	KindIdentifierExpression: {
		f("name", Scalar, tString),
	},
	KindIfStatement: {
		f("test", One, tExpression),
		f("consequent", One, tStatement),
		f("alternate", Maybe, tStatement),
	},
	KindImport: {
		f("defaultBinding", Maybe, tBindingIdentifier),
		f("namedImports", List, tImportSpecifier),
		f("moduleSpecifier", Scalar, tString),
	},
	KindImportNamespace: {
		f("defaultBinding", Maybe, tBindingIdentifier),
		f("namespaceBinding", One, tBindingIdentifier),
		f("moduleSpecifier", Scalar, tString),
	},
	KindImportSpecifier: {
		f("name", MaybeScalar, tString),
		f("binding", One, tBindingIdentifier),
	},
	KindLabeledStatement: {
		f("label", Scalar, tString),
		f("body", One, tStatement),
	},
	KindLiteralBooleanExpression: {
		f("value", Scalar, tBool),
	},
	KindLiteralInfinityExpression: nil,
	KindLiteralNullExpression:     nil,
	KindLiteralNumericExpression: {
		f("value", Scalar, tNumber),
	},
	KindLiteralRegExpExpression: {
		f("pattern", Scalar, tString),
		f("global", Scalar, tBool),
		f("ignoreCase", Scalar, tBool),
		f("multiLine", Scalar, tBool),
		f("sticky", Scalar, tBool),
		f("unicode", Scalar, tBool),
	},
	KindLiteralStringExpression: {
		f("value", Scalar, tString),
	},
	KindMethod: {
		f("isAsync", Scalar, tBool),
		f("isGenerator", Scalar, tBool),
		f("name", One, tPropertyName),
		f("params", One, tFormalParameters),
		f("body", One, tFunctionBody),
	},
	KindModule: {
		f("directives", List, tDirective),
		f("items", List, tModuleItem),
	},
	KindNewExpression: {
		f("callee", One, tExpression),
		f("arguments", List, tSpreadElementExpression),
	},
	KindNewTargetExpression: nil,
	KindObjectAssignmentTarget: {
		f("properties", List, tAssignmentTargetProperty),
	},
	KindObjectBinding: {
		f("properties", List, tBindingProperty),
	},
	KindObjectExpression: {
		f("properties", List, tObjectProperty),
	},
	KindReturnStatement: {
		f("expression", Maybe, tExpression),
	},
	KindScript: {
		f("directives", List, tDirective),
		f("statements", List, tStatement),
	},
	KindSetter: {
		f("name", One, tPropertyName),
		f("param", One, tParameter),
		f("body", One, tFunctionBody),
	},
	KindShorthandProperty: {
		f("name", One, tIdentifierExpression),
	},
	KindSpreadElement: {
		f("expression", One, tExpression),
	},
	KindStaticMemberAssignmentTarget: {
		f("object", One, tExpressionSuper),
		f("property", Scalar, tString),
	},
	KindStaticMemberExpression: {
		f("object", One, tExpressionSuper),
		f("property", Scalar, tString),
	},
	KindStaticPropertyName: {
		f("value", Scalar, tString),
	},
	KindSuper: nil,
	KindSwitchCase: {
		f("test", One, tExpression),
		f("consequent", List, tStatement),
	},
	KindSwitchDefault: {
		f("consequent", List, tStatement),
	},
	KindSwitchStatement: {
		f("discriminant", One, tExpression),
		f("cases", List, tSwitchCase),
	},
	KindSwitchStatementWithDefault: {
		f("discriminant", One, tExpression),
		f("preDefaultCases", List, tSwitchCase),
		f("defaultCase", One, tSwitchDefault),
		f("postDefaultCases", List, tSwitchCase),
	},
	KindTemplateElement: {
		f("rawValue", Scalar, tString),
	},
	KindTemplateExpression: {
		f("tag", Maybe, tExpression),
		f("elements", List, tTemplatePart),
	},
	KindThisExpression: nil,
	KindThrowStatement: {
		f("expression", One, tExpression),
	},
	KindTryCatchStatement: {
		f("body", One, tBlock),
		f("catchClause", One, tCatchClause),
	},
	KindTryFinallyStatement: {
		f("body", One, tBlock),
		f("catchClause", Maybe, tCatchClause),
		f("finalizer", One, tBlock),
	},
	KindUnaryExpression: {
		f("operator", Scalar, tUnaryOp),
		f("operand", One, tExpression),
	},
	KindUpdateExpression: {
		f("isPrefix", Scalar, tBool),
		f("operator", Scalar, tUpdateOp),
		f("operand", One, tSimpleAssignmentTarget),
	},
	KindVariableDeclaration: {
		f("kind", Scalar, tDeclKind),
		f("declarators", List, tVariableDeclarator),
	},
	KindVariableDeclarationStatement: {
		f("declaration", One, tVariableDeclaration),
	},
	KindVariableDeclarator: {
		f("binding", One, tBinding),
		f("init", Maybe, tExpression),
	},
	KindWhileStatement: {
		f("test", One, tExpression),
		f("body", One, tStatement),
	},
	KindWithStatement: {
		f("object", One, tExpression),
		f("body", One, tStatement),
	},
	KindYieldExpression: {
		f("expression", Maybe, tExpression),
	},
	KindYieldGeneratorExpression: {
		f("expression", One, tExpression),
	},
}

// prototypes maps each kind to its Go struct type.
var prototypes [kindEnd]reflect.Type

func init() {
	for _, n := range []Node{
		(*ArrayAssignmentTarget)(nil), (*ArrayBinding)(nil), (*ArrayExpression)(nil),
		(*ArrowExpression)(nil), (*AssignmentExpression)(nil), (*AssignmentTargetIdentifier)(nil),
		(*AssignmentTargetPropertyIdentifier)(nil), (*AssignmentTargetPropertyProperty)(nil),
		(*AssignmentTargetWithDefault)(nil), (*AwaitExpression)(nil), (*BinaryExpression)(nil),
		(*BindingIdentifier)(nil), (*BindingPropertyIdentifier)(nil), (*BindingPropertyProperty)(nil),
		(*BindingWithDefault)(nil), (*Block)(nil), (*BlockStatement)(nil), (*BreakStatement)(nil),
		(*CallExpression)(nil), (*CatchClause)(nil), (*ClassDeclaration)(nil), (*ClassElement)(nil),
		(*ClassExpression)(nil), (*CompoundAssignmentExpression)(nil),
		(*ComputedMemberAssignmentTarget)(nil), (*ComputedMemberExpression)(nil),
		(*ComputedPropertyName)(nil), (*ConditionalExpression)(nil), (*ContinueStatement)(nil),
		(*DataProperty)(nil), (*DebuggerStatement)(nil), (*Directive)(nil), (*DoWhileStatement)(nil),
		(*EmptyStatement)(nil), (*Export)(nil), (*ExportAllFrom)(nil), (*ExportDefault)(nil),
		(*ExportFrom)(nil), (*ExportFromSpecifier)(nil), (*ExportLocalSpecifier)(nil),
		(*ExportLocals)(nil), (*ExpressionStatement)(nil), (*ForInStatement)(nil),
		(*ForOfStatement)(nil), (*ForStatement)(nil), (*FormalParameters)(nil), (*FunctionBody)(nil),
		(*FunctionDeclaration)(nil), (*FunctionExpression)(nil), (*Getter)(nil),
		(*IdentifierExpression)(nil), (*IfStatement)(nil), (*Import)(nil), (*ImportNamespace)(nil),
		(*ImportSpecifier)(nil), (*LabeledStatement)(nil), (*LiteralBooleanExpression)(nil),
		(*LiteralInfinityExpression)(nil), (*LiteralNullExpression)(nil),
		(*LiteralNumericExpression)(nil), (*LiteralRegExpExpression)(nil),
		(*LiteralStringExpression)(nil), (*Method)(nil), (*Module)(nil), (*NewExpression)(nil),
		(*NewTargetExpression)(nil), (*ObjectAssignmentTarget)(nil), (*ObjectBinding)(nil),
		(*ObjectExpression)(nil), (*ReturnStatement)(nil), (*Script)(nil), (*Setter)(nil),
		(*ShorthandProperty)(nil), (*SpreadElement)(nil), (*StaticMemberAssignmentTarget)(nil),
		(*StaticMemberExpression)(nil), (*StaticPropertyName)(nil), (*Super)(nil), (*SwitchCase)(nil),
		(*SwitchDefault)(nil), (*SwitchStatement)(nil), (*SwitchStatementWithDefault)(nil),
		(*TemplateElement)(nil), (*TemplateExpression)(nil), (*ThisExpression)(nil),
		(*ThrowStatement)(nil), (*TryCatchStatement)(nil), (*TryFinallyStatement)(nil),
		(*UnaryExpression)(nil), (*UpdateExpression)(nil), (*VariableDeclaration)(nil),
		(*VariableDeclarationStatement)(nil), (*VariableDeclarator)(nil), (*WhileStatement)(nil),
		(*WithStatement)(nil), (*YieldExpression)(nil), (*YieldGeneratorExpression)(nil),
	} {
		prototypes[n.Type()] = reflect.TypeOf(n).Elem()
	}
	for k := KindInvalid + 1; k < kindEnd; k++ {
		st := prototypes[k]
		if st == nil {
			panic("ast: no prototype for " + k.String())
		}
		for i := range fieldTable[k] {
			fd := &fieldTable[k][i]
			sf, ok := st.FieldByName(strings.ToUpper(fd.Name[:1]) + fd.Name[1:])
			if !ok || len(sf.Index) != 1 {
				panic("ast: " + k.String() + " has no field " + fd.Name)
			}
			want := fd.Elem
			if fd.Shape.IsList() {
				want = reflect.SliceOf(want)
			}
			if sf.Type != want {
				panic("ast: " + k.String() + "." + fd.Name + " has type " + sf.Type.String())
			}
			fd.index = sf.Index[0]
		}
	}
}

// Fields returns the field table of kind k. The result must not be
// modified.
func Fields(k Kind) []Field {
	if k >= kindEnd {
		return nil
	}
	return fieldTable[k]
}

// New returns a zero node of kind k, or nil if k is not a valid kind.
func New(k Kind) Node {
	if k == KindInvalid || k >= kindEnd {
		return nil
	}
	return reflect.New(prototypes[k]).Interface().(Node)
}

// value returns the addressable struct value of n.
func value(n Node) reflect.Value {
	return reflect.ValueOf(n).Elem()
}

// Get returns the Go value of field fd of node n.
func Get(n Node, fd Field) reflect.Value {
	return value(n).Field(fd.index)
}

// nodeOf returns the node held in v, or nil for a nil interface or a nil
// pointer.
func nodeOf(v reflect.Value) Node {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	return v.Interface().(Node)
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
