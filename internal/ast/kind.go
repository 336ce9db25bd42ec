package ast

// Kind identifies the concrete type of a node.
type Kind uint8

// Node kinds, in alphabetical order of their interchange names.
const (
	KindInvalid Kind = iota
	KindArrayAssignmentTarget
	KindArrayBinding
	KindArrayExpression
	KindArrowExpression
	KindAssignmentExpression
	KindAssignmentTargetIdentifier
	KindAssignmentTargetPropertyIdentifier
	KindAssignmentTargetPropertyProperty
	KindAssignmentTargetWithDefault
	KindAwaitExpression
	KindBinaryExpression
	KindBindingIdentifier
	KindBindingPropertyIdentifier
	KindBindingPropertyProperty
	KindBindingWithDefault
	KindBlock
	KindBlockStatement
	KindBreakStatement
	KindCallExpression
	KindCatchClause
	KindClassDeclaration
	KindClassElement
	KindClassExpression
	KindCompoundAssignmentExpression
	KindComputedMemberAssignmentTarget
	KindComputedMemberExpression
	KindComputedPropertyName
	KindConditionalExpression
	KindContinueStatement
	KindDataProperty
	KindDebuggerStatement
	KindDirective
	KindDoWhileStatement
	KindEmptyStatement
	KindExport
	KindExportAllFrom
	KindExportDefault
	KindExportFrom
	KindExportFromSpecifier
	KindExportLocalSpecifier
	KindExportLocals
	KindExpressionStatement
	KindForInStatement
	KindForOfStatement
	KindForStatement
	KindFormalParameters
	KindFunctionBody
	KindFunctionDeclaration
	KindFunctionExpression
	KindGetter
	KindIdentifierExpression
	KindIfStatement
	KindImport
	KindImportNamespace
	KindImportSpecifier
	KindLabeledStatement
	KindLiteralBooleanExpression
	KindLiteralInfinityExpression
	KindLiteralNullExpression
	KindLiteralNumericExpression
	KindLiteralRegExpExpression
	KindLiteralStringExpression
	KindMethod
	KindModule
	KindNewExpression
	KindNewTargetExpression
	KindObjectAssignmentTarget
	KindObjectBinding
	KindObjectExpression
	KindReturnStatement
	KindScript
	KindSetter
	KindShorthandProperty
	KindSpreadElement
	KindStaticMemberAssignmentTarget
	KindStaticMemberExpression
	KindStaticPropertyName
	KindSuper
	KindSwitchCase
	KindSwitchDefault
	KindSwitchStatement
	KindSwitchStatementWithDefault
	KindTemplateElement
	KindTemplateExpression
	KindThisExpression
	KindThrowStatement
	KindTryCatchStatement
	KindTryFinallyStatement
	KindUnaryExpression
	KindUpdateExpression
	KindVariableDeclaration
	KindVariableDeclarationStatement
	KindVariableDeclarator
	KindWhileStatement
	KindWithStatement
	KindYieldExpression
	KindYieldGeneratorExpression
	kindEnd
)

var kindNames = [...]string{
	KindInvalid:                            "Invalid",
	KindArrayAssignmentTarget:              "ArrayAssignmentTarget",
	KindArrayBinding:                       "ArrayBinding",
	KindArrayExpression:                    "ArrayExpression",
	KindArrowExpression:                    "ArrowExpression",
	KindAssignmentExpression:               "AssignmentExpression",
	KindAssignmentTargetIdentifier:         "AssignmentTargetIdentifier",
	KindAssignmentTargetPropertyIdentifier: "AssignmentTargetPropertyIdentifier",
	KindAssignmentTargetPropertyProperty:   "AssignmentTargetPropertyProperty",
	KindAssignmentTargetWithDefault:        "AssignmentTargetWithDefault",
	KindAwaitExpression:                    "AwaitExpression",
	KindBinaryExpression:                   "BinaryExpression",
	KindBindingIdentifier:                  "BindingIdentifier",
	KindBindingPropertyIdentifier:          "BindingPropertyIdentifier",
	KindBindingPropertyProperty:            "BindingPropertyProperty",
	KindBindingWithDefault:                 "BindingWithDefault",
	KindBlock:                              "Block",
	KindBlockStatement:                     "BlockStatement",
	KindBreakStatement:                     "BreakStatement",
	KindCallExpression:                     "CallExpression",
	KindCatchClause:                        "CatchClause",
	KindClassDeclaration:                   "ClassDeclaration",
	KindClassElement:                       "ClassElement",
	KindClassExpression:                    "ClassExpression",
	KindCompoundAssignmentExpression:       "CompoundAssignmentExpression",
	KindComputedMemberAssignmentTarget:     "ComputedMemberAssignmentTarget",
	KindComputedMemberExpression:           "ComputedMemberExpression",
	KindComputedPropertyName:               "ComputedPropertyName",
	KindConditionalExpression:              "ConditionalExpression",
	KindContinueStatement:                  "ContinueStatement",
	KindDataProperty:                       "DataProperty",
	KindDebuggerStatement:                  "DebuggerStatement",
	KindDirective:                          "Directive",
	KindDoWhileStatement:                   "DoWhileStatement",
	KindEmptyStatement:                     "EmptyStatement",
	KindExport:                             "Export",
	KindExportAllFrom:                      "ExportAllFrom",
	KindExportDefault:                      "ExportDefault",
	KindExportFrom:                         "ExportFrom",
	KindExportFromSpecifier:                "ExportFromSpecifier",
	KindExportLocalSpecifier:               "ExportLocalSpecifier",
	KindExportLocals:                       "ExportLocals",
	KindExpressionStatement:                "ExpressionStatement",
	KindForInStatement:                     "ForInStatement",
	KindForOfStatement:                     "ForOfStatement",
	KindForStatement:                       "ForStatement",
	KindFormalParameters:                   "FormalParameters",
	KindFunctionBody:                       "FunctionBody",
	KindFunctionDeclaration:                "FunctionDeclaration",
	KindFunctionExpression:                 "FunctionExpression",
	KindGetter:                             "Getter",
	KindIdentifierExpression:               "IdentifierExpression",
	KindIfStatement:                        "IfStatement",
	KindImport:                             "Import",
	KindImportNamespace:                    "ImportNamespace",
	KindImportSpecifier:                    "ImportSpecifier",
	KindLabeledStatement:                   "LabeledStatement",
	KindLiteralBooleanExpression:           "LiteralBooleanExpression",
	KindLiteralInfinityExpression:          "LiteralInfinityExpression",
	KindLiteralNullExpression:              "LiteralNullExpression",
	KindLiteralNumericExpression:           "LiteralNumericExpression",
	KindLiteralRegExpExpression:            "LiteralRegExpExpression",
	KindLiteralStringExpression:            "LiteralStringExpression",
	KindMethod:                             "Method",
	KindModule:                             "Module",
	KindNewExpression:                      "NewExpression",
	KindNewTargetExpression:                "NewTargetExpression",
	KindObjectAssignmentTarget:             "ObjectAssignmentTarget",
	KindObjectBinding:                      "ObjectBinding",
	KindObjectExpression:                   "ObjectExpression",
	KindReturnStatement:                    "ReturnStatement",
	KindScript:                             "Script",
	KindSetter:                             "Setter",
	KindShorthandProperty:                  "ShorthandProperty",
	KindSpreadElement:                      "SpreadElement",
	KindStaticMemberAssignmentTarget:       "StaticMemberAssignmentTarget",
	KindStaticMemberExpression:             "StaticMemberExpression",
	KindStaticPropertyName:                 "StaticPropertyName",
	KindSuper:                              "Super",
	KindSwitchCase:                         "SwitchCase",
	KindSwitchDefault:                      "SwitchDefault",
	KindSwitchStatement:                    "SwitchStatement",
	KindSwitchStatementWithDefault:         "SwitchStatementWithDefault",
	KindTemplateElement:                    "TemplateElement",
	KindTemplateExpression:                 "TemplateExpression",
	KindThisExpression:                     "ThisExpression",
	KindThrowStatement:                     "ThrowStatement",
	KindTryCatchStatement:                  "TryCatchStatement",
	KindTryFinallyStatement:                "TryFinallyStatement",
	KindUnaryExpression:                    "UnaryExpression",
	KindUpdateExpression:                   "UpdateExpression",
	KindVariableDeclaration:                "VariableDeclaration",
	KindVariableDeclarationStatement:       "VariableDeclarationStatement",
	KindVariableDeclarator:                 "VariableDeclarator",
	KindWhileStatement:                     "WhileStatement",
	KindWithStatement:                      "WithStatement",
	KindYieldExpression:                    "YieldExpression",
	KindYieldGeneratorExpression:           "YieldGeneratorExpression",
}

// String returns the interchange name of the kind.
func (k Kind) String() string {
	if k < kindEnd {
		return kindNames[k]
	}
	return "Invalid"
}

// LookupKind returns the kind with the given interchange name.
func LookupKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindEnd)
	for k := KindInvalid + 1; k < kindEnd; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

func (*ArrayAssignmentTarget) Type() Kind { return KindArrayAssignmentTarget }
func (*ArrayBinding) Type() Kind { return KindArrayBinding }
func (*ArrayExpression) Type() Kind { return KindArrayExpression }
func (*ArrowExpression) Type() Kind { return KindArrowExpression }
func (*AssignmentExpression) Type() Kind { return KindAssignmentExpression }
func (*AssignmentTargetIdentifier) Type() Kind { return KindAssignmentTargetIdentifier }
func (*AssignmentTargetPropertyIdentifier) Type() Kind { return KindAssignmentTargetPropertyIdentifier }
func (*AssignmentTargetPropertyProperty) Type() Kind { return KindAssignmentTargetPropertyProperty }
func (*AssignmentTargetWithDefault) Type() Kind { return KindAssignmentTargetWithDefault }
func (*AwaitExpression) Type() Kind { return KindAwaitExpression }
func (*BinaryExpression) Type() Kind { return KindBinaryExpression }
func (*BindingIdentifier) Type() Kind { return KindBindingIdentifier }
func (*BindingPropertyIdentifier) Type() Kind { return KindBindingPropertyIdentifier }
func (*BindingPropertyProperty) Type() Kind { return KindBindingPropertyProperty }
func (*BindingWithDefault) Type() Kind { return KindBindingWithDefault }
func (*Block) Type() Kind { return KindBlock }
func (*BlockStatement) Type() Kind { return KindBlockStatement }
func (*BreakStatement) Type() Kind { return KindBreakStatement }
func (*CallExpression) Type() Kind { return KindCallExpression }
func (*CatchClause) Type() Kind { return KindCatchClause }
func (*ClassDeclaration) Type() Kind { return KindClassDeclaration }
func (*ClassElement) Type() Kind { return KindClassElement }
func (*ClassExpression) Type() Kind { return KindClassExpression }
func (*CompoundAssignmentExpression) Type() Kind { return KindCompoundAssignmentExpression }
func (*ComputedMemberAssignmentTarget) Type() Kind { return KindComputedMemberAssignmentTarget }
func (*ComputedMemberExpression) Type() Kind { return KindComputedMemberExpression }
func (*ComputedPropertyName) Type() Kind { return KindComputedPropertyName }
func (*ConditionalExpression) Type() Kind { return KindConditionalExpression }
func (*ContinueStatement) Type() Kind { return KindContinueStatement }
func (*DataProperty) Type() Kind { return KindDataProperty }
func (*DebuggerStatement) Type() Kind { return KindDebuggerStatement }
func (*Directive) Type() Kind { return KindDirective }
func (*DoWhileStatement) Type() Kind { return KindDoWhileStatement }
func (*EmptyStatement) Type() Kind { return KindEmptyStatement }
func (*Export) Type() Kind { return KindExport }
func (*ExportAllFrom) Type() Kind { return KindExportAllFrom }
func (*ExportDefault) Type() Kind { return KindExportDefault }
func (*ExportFrom) Type() Kind { return KindExportFrom }
func (*ExportFromSpecifier) Type() Kind { return KindExportFromSpecifier }
func (*ExportLocalSpecifier) Type() Kind { return KindExportLocalSpecifier }
func (*ExportLocals) Type() Kind { return KindExportLocals }
func (*ExpressionStatement) Type() Kind { return KindExpressionStatement }
func (*ForInStatement) Type() Kind { return KindForInStatement }
func (*ForOfStatement) Type() Kind { return KindForOfStatement }
func (*ForStatement) Type() Kind { return KindForStatement }
func (*FormalParameters) Type() Kind { return KindFormalParameters }
func (*FunctionBody) Type() Kind { return KindFunctionBody }
func (*FunctionDeclaration) Type() Kind { return KindFunctionDeclaration }
func (*FunctionExpression) Type() Kind { return KindFunctionExpression }
func (*Getter) Type() Kind { return KindGetter }
func (*IdentifierExpression) Type() Kind { return KindIdentifierExpression }
func (*IfStatement) Type() Kind { return KindIfStatement }
func (*Import) Type() Kind { return KindImport }
func (*ImportNamespace) Type() Kind { return KindImportNamespace }
func (*ImportSpecifier) Type() Kind { return KindImportSpecifier }
func (*LabeledStatement) Type() Kind { return KindLabeledStatement }
func (*LiteralBooleanExpression) Type() Kind { return KindLiteralBooleanExpression }
func (*LiteralInfinityExpression) Type() Kind { return KindLiteralInfinityExpression }
func (*LiteralNullExpression) Type() Kind { return KindLiteralNullExpression }
func (*LiteralNumericExpression) Type() Kind { return KindLiteralNumericExpression }
func (*LiteralRegExpExpression) Type() Kind { return KindLiteralRegExpExpression }
func (*LiteralStringExpression) Type() Kind { return KindLiteralStringExpression }
func (*Method) Type() Kind { return KindMethod }
func (*Module) Type() Kind { return KindModule }
func (*NewExpression) Type() Kind { return KindNewExpression }
func (*NewTargetExpression) Type() Kind { return KindNewTargetExpression }
func (*ObjectAssignmentTarget) Type() Kind { return KindObjectAssignmentTarget }
func (*ObjectBinding) Type() Kind { return KindObjectBinding }
func (*ObjectExpression) Type() Kind { return KindObjectExpression }
func (*ReturnStatement) Type() Kind { return KindReturnStatement }
func (*Script) Type() Kind { return KindScript }
func (*Setter) Type() Kind { return KindSetter }
func (*ShorthandProperty) Type() Kind { return KindShorthandProperty }
func (*SpreadElement) Type() Kind { return KindSpreadElement }
func (*StaticMemberAssignmentTarget) Type() Kind { return KindStaticMemberAssignmentTarget }
func (*StaticMemberExpression) Type() Kind { return KindStaticMemberExpression }
func (*StaticPropertyName) Type() Kind { return KindStaticPropertyName }
func (*Super) Type() Kind { return KindSuper }
func (*SwitchCase) Type() Kind { return KindSwitchCase }
func (*SwitchDefault) Type() Kind { return KindSwitchDefault }
func (*SwitchStatement) Type() Kind { return KindSwitchStatement }
func (*SwitchStatementWithDefault) Type() Kind { return KindSwitchStatementWithDefault }
func (*TemplateElement) Type() Kind { return KindTemplateElement }
func (*TemplateExpression) Type() Kind { return KindTemplateExpression }
func (*ThisExpression) Type() Kind { return KindThisExpression }
func (*ThrowStatement) Type() Kind { return KindThrowStatement }
func (*TryCatchStatement) Type() Kind { return KindTryCatchStatement }
func (*TryFinallyStatement) Type() Kind { return KindTryFinallyStatement }
func (*UnaryExpression) Type() Kind { return KindUnaryExpression }
func (*UpdateExpression) Type() Kind { return KindUpdateExpression }
func (*VariableDeclaration) Type() Kind { return KindVariableDeclaration }
func (*VariableDeclarationStatement) Type() Kind { return KindVariableDeclarationStatement }
func (*VariableDeclarator) Type() Kind { return KindVariableDeclarator }
func (*WhileStatement) Type() Kind { return KindWhileStatement }
func (*WithStatement) Type() Kind { return KindWithStatement }
func (*YieldExpression) Type() Kind { return KindYieldExpression }
func (*YieldGeneratorExpression) Type() Kind { return KindYieldGeneratorExpression }
