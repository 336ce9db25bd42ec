package ast

import "fmt"

// Precedence orders expression forms from loosest to tightest binding.
// The parser and the code generator share this order.
type Precedence uint8

const (
	PrecSequence Precedence = iota
	PrecAssignment // also yield and arrow functions
	PrecConditional
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitwiseOr
	PrecBitwiseXor
	PrecBitwiseAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecExponential
	PrecPrefix
	PrecPostfix
	PrecNew
	PrecCall
	PrecMember
	PrecPrimary
)

// BinaryOperator is the operator of a BinaryExpression.
type BinaryOperator uint8

const (
	OpComma BinaryOperator = iota
	OpLogicalOr
	OpLogicalAnd
	OpBitOr
	OpBitXor
	OpBitAnd
	OpEqual
	OpNotEqual
	OpStrictEqual
	OpStrictNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpIn
	OpInstanceof
	OpShl
	OpSar
	OpShr
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
	OpExp
	binaryOpEnd
)

var binaryOps = [...]struct {
	text string
	prec Precedence
}{
	OpComma:          {",", PrecSequence},
	OpLogicalOr:      {"||", PrecLogicalOr},
	OpLogicalAnd:     {"&&", PrecLogicalAnd},
	OpBitOr:          {"|", PrecBitwiseOr},
	OpBitXor:         {"^", PrecBitwiseXor},
	OpBitAnd:         {"&", PrecBitwiseAnd},
	OpEqual:          {"==", PrecEquality},
	OpNotEqual:       {"!=", PrecEquality},
	OpStrictEqual:    {"===", PrecEquality},
	OpStrictNotEqual: {"!==", PrecEquality},
	OpLessThan:       {"<", PrecRelational},
	OpLessOrEqual:    {"<=", PrecRelational},
	OpGreaterThan:    {">", PrecRelational},
	OpGreaterOrEqual: {">=", PrecRelational},
	OpIn:             {"in", PrecRelational},
	OpInstanceof:     {"instanceof", PrecRelational},
	OpShl:            {"<<", PrecShift},
	OpSar:            {">>", PrecShift},
	OpShr:            {">>>", PrecShift},
	OpAdd:            {"+", PrecAdditive},
	OpSub:            {"-", PrecAdditive},
	OpMul:            {"*", PrecMultiplicative},
	OpDiv:            {"/", PrecMultiplicative},
	OpRem:            {"%", PrecMultiplicative},
	OpExp:            {"**", PrecExponential},
}

func (op BinaryOperator) String() string {
	if op < binaryOpEnd {
		return binaryOps[op].text
	}
	return fmt.Sprintf("BinaryOperator(%d)", uint8(op))
}

// Precedence returns the binding strength of the operator.
func (op BinaryOperator) Precedence() Precedence {
	if op < binaryOpEnd {
		return binaryOps[op].prec
	}
	return PrecSequence
}

// RightAssociative reports whether a chain of op groups to the right.
// Only ** does.
func (op BinaryOperator) RightAssociative() bool {
	return op == OpExp
}

func (op BinaryOperator) MarshalText() ([]byte, error) {
	if op >= binaryOpEnd {
		return nil, fmt.Errorf("invalid binary operator %d", uint8(op))
	}
	return []byte(op.String()), nil
}

func (op *BinaryOperator) UnmarshalText(b []byte) error {
	for i := BinaryOperator(0); i < binaryOpEnd; i++ {
		if binaryOps[i].text == string(b) {
			*op = i
			return nil
		}
	}
	return fmt.Errorf("unknown binary operator %q", b)
}

// UnaryOperator is the operator of a UnaryExpression.
type UnaryOperator uint8

const (
	OpPlus UnaryOperator = iota
	OpMinus
	OpNot
	OpBitNot
	OpTypeof
	OpVoid
	OpDelete
	unaryOpEnd
)

var unaryOps = [...]string{
	OpPlus:   "+",
	OpMinus:  "-",
	OpNot:    "!",
	OpBitNot: "~",
	OpTypeof: "typeof",
	OpVoid:   "void",
	OpDelete: "delete",
}

func (op UnaryOperator) String() string {
	if op < unaryOpEnd {
		return unaryOps[op]
	}
	return fmt.Sprintf("UnaryOperator(%d)", uint8(op))
}

func (op UnaryOperator) MarshalText() ([]byte, error) {
	if op >= unaryOpEnd {
		return nil, fmt.Errorf("invalid unary operator %d", uint8(op))
	}
	return []byte(unaryOps[op]), nil
}

func (op *UnaryOperator) UnmarshalText(b []byte) error {
	i, ok := lookupText(unaryOps[:], string(b))
	if !ok {
		return fmt.Errorf("unknown unary operator %q", b)
	}
	*op = UnaryOperator(i)
	return nil
}

// UpdateOperator is the operator of an UpdateExpression.
type UpdateOperator uint8

const (
	OpIncrement UpdateOperator = iota
	OpDecrement
	updateOpEnd
)

var updateOps = [...]string{
	OpIncrement: "++",
	OpDecrement: "--",
}

func (op UpdateOperator) String() string {
	if op < updateOpEnd {
		return updateOps[op]
	}
	return fmt.Sprintf("UpdateOperator(%d)", uint8(op))
}

func (op UpdateOperator) MarshalText() ([]byte, error) {
	if op >= updateOpEnd {
		return nil, fmt.Errorf("invalid update operator %d", uint8(op))
	}
	return []byte(updateOps[op]), nil
}

func (op *UpdateOperator) UnmarshalText(b []byte) error {
	i, ok := lookupText(updateOps[:], string(b))
	if !ok {
		return fmt.Errorf("unknown update operator %q", b)
	}
	*op = UpdateOperator(i)
	return nil
}

// CompoundAssignmentOperator is the operator of a
// CompoundAssignmentExpression.
type CompoundAssignmentOperator uint8

const (
	OpAssignAdd CompoundAssignmentOperator = iota
	OpAssignSub
	OpAssignMul
	OpAssignDiv
	OpAssignRem
	OpAssignExp
	OpAssignShl
	OpAssignSar
	OpAssignShr
	OpAssignBitOr
	OpAssignBitXor
	OpAssignBitAnd
	compoundOpEnd
)

var compoundOps = [...]string{
	OpAssignAdd:    "+=",
	OpAssignSub:    "-=",
	OpAssignMul:    "*=",
	OpAssignDiv:    "/=",
	OpAssignRem:    "%=",
	OpAssignExp:    "**=",
	OpAssignShl:    "<<=",
	OpAssignSar:    ">>=",
	OpAssignShr:    ">>>=",
	OpAssignBitOr:  "|=",
	OpAssignBitXor: "^=",
	OpAssignBitAnd: "&=",
}

func (op CompoundAssignmentOperator) String() string {
	if op < compoundOpEnd {
		return compoundOps[op]
	}
	return fmt.Sprintf("CompoundAssignmentOperator(%d)", uint8(op))
}

func (op CompoundAssignmentOperator) MarshalText() ([]byte, error) {
	if op >= compoundOpEnd {
		return nil, fmt.Errorf("invalid compound assignment operator %d", uint8(op))
	}
	return []byte(compoundOps[op]), nil
}

func (op *CompoundAssignmentOperator) UnmarshalText(b []byte) error {
	i, ok := lookupText(compoundOps[:], string(b))
	if !ok {
		return fmt.Errorf("unknown compound assignment operator %q", b)
	}
	*op = CompoundAssignmentOperator(i)
	return nil
}

// VariableDeclarationKind is var, let or const.
type VariableDeclarationKind uint8

const (
	Var VariableDeclarationKind = iota
	Let
	Const
	declKindEnd
)

var declKinds = [...]string{
	Var:   "var",
	Let:   "let",
	Const: "const",
}

func (k VariableDeclarationKind) String() string {
	if k < declKindEnd {
		return declKinds[k]
	}
	return fmt.Sprintf("VariableDeclarationKind(%d)", uint8(k))
}

func (k VariableDeclarationKind) MarshalText() ([]byte, error) {
	if k >= declKindEnd {
		return nil, fmt.Errorf("invalid declaration kind %d", uint8(k))
	}
	return []byte(declKinds[k]), nil
}

func (k *VariableDeclarationKind) UnmarshalText(b []byte) error {
	i, ok := lookupText(declKinds[:], string(b))
	if !ok {
		return fmt.Errorf("unknown declaration kind %q", b)
	}
	*k = VariableDeclarationKind(i)
	return nil
}

func lookupText(table []string, s string) (int, bool) {
	for i, t := range table {
		if t == s {
			return i, true
		}
	}
	return 0, false
}
