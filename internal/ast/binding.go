package ast

// ============================================================================
// Binding patterns
// ============================================================================

// BindingIdentifier introduces a name.
type BindingIdentifier struct {
	binding
	Name string
}

// BindingWithDefault is a parameter or element with an initializer.
type BindingWithDefault struct {
	Binding Binding
	Init    Expression
}

func (*BindingWithDefault) paramNode() {}

// ArrayBinding is an array destructuring pattern. Nil elements are holes.
type ArrayBinding struct {
	binding
	Elements []Parameter
	Rest     Binding
}

// ObjectBinding is an object destructuring pattern.
type ObjectBinding struct {
	binding
	Properties []BindingProperty
}

// BindingPropertyIdentifier is the shorthand property {a = init}.
type BindingPropertyIdentifier struct {
	Binding *BindingIdentifier
	Init    Expression
}

func (*BindingPropertyIdentifier) bindingPropertyNode() {}

// BindingPropertyProperty is the long form property {name: binding}.
type BindingPropertyProperty struct {
	Name    PropertyName
	Binding Parameter
}

func (*BindingPropertyProperty) bindingPropertyNode() {}

// ============================================================================
// Assignment targets
// ============================================================================

// AssignmentTargetIdentifier is an identifier on the left of an
// assignment.
type AssignmentTargetIdentifier struct {
	simpleTarget
	Name string
}

// StaticMemberAssignmentTarget is object.property as a target.
type StaticMemberAssignmentTarget struct {
	simpleTarget
	Object   ExpressionSuper
	Property string
}

// ComputedMemberAssignmentTarget is object[expression] as a target.
type ComputedMemberAssignmentTarget struct {
	simpleTarget
	Object     ExpressionSuper
	Expression Expression
}

// ArrayAssignmentTarget is an array destructuring assignment target. Nil
// elements are holes.
type ArrayAssignmentTarget struct {
	target
	Elements []AssignmentTargetElement
	Rest     AssignmentTarget
}

// ObjectAssignmentTarget is an object destructuring assignment target.
type ObjectAssignmentTarget struct {
	target
	Properties []AssignmentTargetProperty
}

// AssignmentTargetWithDefault is an element with an initializer.
type AssignmentTargetWithDefault struct {
	Binding AssignmentTarget
	Init    Expression
}

func (*AssignmentTargetWithDefault) targetElementNode() {}

// AssignmentTargetPropertyIdentifier is the shorthand {a = init}.
type AssignmentTargetPropertyIdentifier struct {
	Binding *AssignmentTargetIdentifier
	Init    Expression
}

func (*AssignmentTargetPropertyIdentifier) targetPropertyNode() {}

// AssignmentTargetPropertyProperty is the long form {name: target}.
type AssignmentTargetPropertyProperty struct {
	Name    PropertyName
	Binding AssignmentTargetElement
}

func (*AssignmentTargetPropertyProperty) targetPropertyNode() {}

// ============================================================================
// Object members
// ============================================================================

// DataProperty is name: expression.
type DataProperty struct {
	property
	Name       PropertyName
	Expression Expression
}

// ShorthandProperty is {a}.
type ShorthandProperty struct {
	property
	Name *IdentifierExpression
}

// Method is a method definition, possibly async or a generator.
type Method struct {
	method
	IsAsync     bool
	IsGenerator bool
	Name        PropertyName
	Params      *FormalParameters
	Body        *FunctionBody
}

// Getter is get name() {}.
type Getter struct {
	method
	Name PropertyName
	Body *FunctionBody
}

// Setter is set name(param) {}.
type Setter struct {
	method
	Name  PropertyName
	Param Parameter
	Body  *FunctionBody
}

// StaticPropertyName is an identifier, string or numeric property name.
// Value is its string value.
type StaticPropertyName struct {
	propertyName
	Value string
}

// ComputedPropertyName is [expression].
type ComputedPropertyName struct {
	propertyName
	Expression Expression
}

// MethodName returns the property name of a method definition.
func MethodName(m MethodDefinition) PropertyName {
	switch m := m.(type) {
	case *Method:
		return m.Name
	case *Getter:
		return m.Name
	case *Setter:
		return m.Name
	}
	return nil
}
