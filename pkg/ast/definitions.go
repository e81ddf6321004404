package ast

// Type expressions

type SimpleTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Name *Identifier `json:"name"`
}

func NewSimpleTypeExpression(name *Identifier) *SimpleTypeExpression {
	return &SimpleTypeExpression{nodeImpl: newNodeImpl(NodeSimpleTypeExpression), Name: name}
}

type GenericTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Base *Identifier      `json:"base"`
	Args []TypeExpression `json:"args"`
}

func NewGenericTypeExpression(base *Identifier, args []TypeExpression) *GenericTypeExpression {
	return &GenericTypeExpression{nodeImpl: newNodeImpl(NodeGenericTypeExpression), Base: base, Args: args}
}

// OptionalTypeExpression is the postfix ? form, e.g. Int?.
type OptionalTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Inner TypeExpression `json:"inner"`
}

func NewOptionalTypeExpression(inner TypeExpression) *OptionalTypeExpression {
	return &OptionalTypeExpression{nodeImpl: newNodeImpl(NodeOptionalTypeExpression), Inner: inner}
}

type TupleTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Elements []TypeExpression `json:"elements"`
}

func NewTupleTypeExpression(elements []TypeExpression) *TupleTypeExpression {
	return &TupleTypeExpression{nodeImpl: newNodeImpl(NodeTupleTypeExpression), Elements: elements}
}

type FunctionTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	ParamTypes []TypeExpression `json:"paramTypes"`
	ReturnType TypeExpression   `json:"returnType"`
}

func NewFunctionTypeExpression(paramTypes []TypeExpression, returnType TypeExpression) *FunctionTypeExpression {
	return &FunctionTypeExpression{nodeImpl: newNodeImpl(NodeFunctionTypeExpression), ParamTypes: paramTypes, ReturnType: returnType}
}

type UnionTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Members []TypeExpression `json:"members"`
}

func NewUnionTypeExpression(members []TypeExpression) *UnionTypeExpression {
	return &UnionTypeExpression{nodeImpl: newNodeImpl(NodeUnionTypeExpression), Members: members}
}

// Definitions

type FunctionParameter struct {
	nodeImpl

	Name      *Identifier    `json:"name"`
	ParamType TypeExpression `json:"paramType,omitempty"`
	Variadic  bool           `json:"variadic,omitempty"`
}

func NewFunctionParameter(name *Identifier, paramType TypeExpression, variadic bool) *FunctionParameter {
	return &FunctionParameter{nodeImpl: newNodeImpl(NodeFunctionParameter), Name: name, ParamType: paramType, Variadic: variadic}
}

// FunctionDefinition is a named top-level or impl-scoped function.
// Requires and Ensures hold the contract clause expressions in source
// order.
type FunctionDefinition struct {
	nodeImpl
	statementMarker

	ID         *Identifier          `json:"id"`
	Params     []*FunctionParameter `json:"params"`
	ReturnType TypeExpression       `json:"returnType,omitempty"`
	Requires   []Expression         `json:"requires,omitempty"`
	Ensures    []Expression         `json:"ensures,omitempty"`
	Body       *BlockExpression     `json:"body"`
}

func NewFunctionDefinition(id *Identifier, params []*FunctionParameter, returnType TypeExpression, body *BlockExpression) *FunctionDefinition {
	return &FunctionDefinition{nodeImpl: newNodeImpl(NodeFunctionDefinition), ID: id, Params: params, ReturnType: returnType, Body: body}
}

// FunctionSignature is a bodiless function header, used by trait
// declarations.
type FunctionSignature struct {
	nodeImpl

	Name       *Identifier          `json:"name"`
	Params     []*FunctionParameter `json:"params"`
	ReturnType TypeExpression       `json:"returnType,omitempty"`
}

func NewFunctionSignature(name *Identifier, params []*FunctionParameter, returnType TypeExpression) *FunctionSignature {
	return &FunctionSignature{nodeImpl: newNodeImpl(NodeFunctionSignature), Name: name, Params: params, ReturnType: returnType}
}

type StructFieldDefinition struct {
	nodeImpl

	Name      *Identifier    `json:"name"`
	FieldType TypeExpression `json:"fieldType"`
}

func NewStructFieldDefinition(name *Identifier, fieldType TypeExpression) *StructFieldDefinition {
	return &StructFieldDefinition{nodeImpl: newNodeImpl(NodeStructFieldDefinition), Name: name, FieldType: fieldType}
}

type StructDefinition struct {
	nodeImpl
	statementMarker

	ID     *Identifier              `json:"id"`
	Fields []*StructFieldDefinition `json:"fields"`
}

func NewStructDefinition(id *Identifier, fields []*StructFieldDefinition) *StructDefinition {
	return &StructDefinition{nodeImpl: newNodeImpl(NodeStructDefinition), ID: id, Fields: fields}
}

// UnionVariant is one tag of a tagged union. Payload lists the
// positional payload types and may be empty.
type UnionVariant struct {
	nodeImpl

	Name    *Identifier      `json:"name"`
	Payload []TypeExpression `json:"payload,omitempty"`
}

func NewUnionVariant(name *Identifier, payload []TypeExpression) *UnionVariant {
	return &UnionVariant{nodeImpl: newNodeImpl(NodeUnionVariant), Name: name, Payload: payload}
}

type UnionDefinition struct {
	nodeImpl
	statementMarker

	ID       *Identifier     `json:"id"`
	Variants []*UnionVariant `json:"variants"`
}

func NewUnionDefinition(id *Identifier, variants []*UnionVariant) *UnionDefinition {
	return &UnionDefinition{nodeImpl: newNodeImpl(NodeUnionDefinition), ID: id, Variants: variants}
}

type AliasDefinition struct {
	nodeImpl
	statementMarker

	ID     *Identifier    `json:"id"`
	Target TypeExpression `json:"target"`
}

func NewAliasDefinition(id *Identifier, target TypeExpression) *AliasDefinition {
	return &AliasDefinition{nodeImpl: newNodeImpl(NodeAliasDefinition), ID: id, Target: target}
}

type TraitDefinition struct {
	nodeImpl
	statementMarker

	ID         *Identifier          `json:"id"`
	Signatures []*FunctionSignature `json:"signatures"`
}

func NewTraitDefinition(id *Identifier, signatures []*FunctionSignature) *TraitDefinition {
	return &TraitDefinition{nodeImpl: newNodeImpl(NodeTraitDefinition), ID: id, Signatures: signatures}
}

// ImplDefinition attaches methods and invariant clauses to a named
// type.
type ImplDefinition struct {
	nodeImpl
	statementMarker

	Target     *Identifier           `json:"target"`
	Invariants []Expression          `json:"invariants,omitempty"`
	Methods    []*FunctionDefinition `json:"methods"`
}

func NewImplDefinition(target *Identifier, invariants []Expression, methods []*FunctionDefinition) *ImplDefinition {
	return &ImplDefinition{nodeImpl: newNodeImpl(NodeImplDefinition), Target: target, Invariants: invariants, Methods: methods}
}
