package ast

type NodeType string

const (
	NodeIdentifier             NodeType = "Identifier"
	NodeIntegerLiteral         NodeType = "IntegerLiteral"
	NodeFloatLiteral           NodeType = "FloatLiteral"
	NodeStringLiteral          NodeType = "StringLiteral"
	NodeBooleanLiteral         NodeType = "BooleanLiteral"
	NodeUnitLiteral            NodeType = "UnitLiteral"
	NodeArrayLiteral           NodeType = "ArrayLiteral"
	NodeMapEntry               NodeType = "MapEntry"
	NodeMapLiteral             NodeType = "MapLiteral"
	NodeTupleLiteral           NodeType = "TupleLiteral"
	NodeLambdaExpression       NodeType = "LambdaExpression"
	NodeUnaryExpression        NodeType = "UnaryExpression"
	NodeBinaryExpression       NodeType = "BinaryExpression"
	NodeAssignmentExpression   NodeType = "AssignmentExpression"
	NodeCallExpression         NodeType = "CallExpression"
	NodeMemberAccessExpression NodeType = "MemberAccessExpression"
	NodeIndexExpression        NodeType = "IndexExpression"
	NodeStructFieldInitializer NodeType = "StructFieldInitializer"
	NodeStructLiteral          NodeType = "StructLiteral"
	NodeMatchClause            NodeType = "MatchClause"
	NodeMatchExpression        NodeType = "MatchExpression"
	NodeBlockExpression        NodeType = "BlockExpression"
	NodeIfExpression           NodeType = "IfExpression"
	NodeWhileLoop              NodeType = "WhileLoop"
	NodeForLoop                NodeType = "ForLoop"
	NodeLetStatement           NodeType = "LetStatement"
	NodeReturnStatement        NodeType = "ReturnStatement"
	NodeImportSelector         NodeType = "ImportSelector"
	NodeImportStatement        NodeType = "ImportStatement"
	NodeModule                 NodeType = "Module"
	NodeWildcardPattern        NodeType = "WildcardPattern"
	NodeLiteralPattern         NodeType = "LiteralPattern"
	NodeTuplePattern           NodeType = "TuplePattern"
	NodeVariantPattern         NodeType = "VariantPattern"
	NodeSimpleTypeExpression   NodeType = "SimpleTypeExpression"
	NodeGenericTypeExpression  NodeType = "GenericTypeExpression"
	NodeOptionalTypeExpression NodeType = "OptionalTypeExpression"
	NodeTupleTypeExpression    NodeType = "TupleTypeExpression"
	NodeFunctionTypeExpression NodeType = "FunctionTypeExpression"
	NodeUnionTypeExpression    NodeType = "UnionTypeExpression"
	NodeFunctionParameter      NodeType = "FunctionParameter"
	NodeFunctionDefinition     NodeType = "FunctionDefinition"
	NodeFunctionSignature      NodeType = "FunctionSignature"
	NodeStructFieldDefinition  NodeType = "StructFieldDefinition"
	NodeStructDefinition       NodeType = "StructDefinition"
	NodeUnionVariant           NodeType = "UnionVariant"
	NodeUnionDefinition        NodeType = "UnionDefinition"
	NodeAliasDefinition        NodeType = "AliasDefinition"
	NodeTraitDefinition        NodeType = "TraitDefinition"
	NodeImplDefinition         NodeType = "ImplDefinition"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Pattern interface {
	Node
	patternNode()
}

type patternMarker struct{}

func (patternMarker) patternNode() {}

type TypeExpression interface {
	Node
	typeExpressionNode()
}

type typeExpressionMarker struct{}

func (typeExpressionMarker) typeExpressionNode() {}

type Literal interface {
	Expression
	literalNode()
}

type literalMarker struct{}

func (literalMarker) literalNode() {}

// AssignmentTarget is satisfied by nodes that may appear on the left
// of an assignment.
type AssignmentTarget interface {
	Node
	assignmentTargetNode()
}

type assignmentTargetMarker struct{}

func (assignmentTargetMarker) assignmentTargetNode() {}

// Module

type Module struct {
	nodeImpl

	Statements []Statement `json:"statements"`
}

func NewModule(statements []Statement) *Module {
	return &Module{nodeImpl: newNodeImpl(NodeModule), Statements: statements}
}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker
	patternMarker
	assignmentTargetMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type FloatLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value float64 `json:"value"`
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

// UnitLiteral is the empty value ().
type UnitLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker
}

func NewUnitLiteral() *UnitLiteral {
	return &UnitLiteral{nodeImpl: newNodeImpl(NodeUnitLiteral)}
}

type ArrayLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Elements []Expression `json:"elements"`
}

func NewArrayLiteral(elements []Expression) *ArrayLiteral {
	return &ArrayLiteral{nodeImpl: newNodeImpl(NodeArrayLiteral), Elements: elements}
}

type MapEntry struct {
	nodeImpl

	Key   Expression `json:"key"`
	Value Expression `json:"value"`
}

func NewMapEntry(key, value Expression) *MapEntry {
	return &MapEntry{nodeImpl: newNodeImpl(NodeMapEntry), Key: key, Value: value}
}

type MapLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Entries []*MapEntry `json:"entries"`
}

func NewMapLiteral(entries []*MapEntry) *MapLiteral {
	return &MapLiteral{nodeImpl: newNodeImpl(NodeMapLiteral), Entries: entries}
}

type TupleLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Elements []Expression `json:"elements"`
}

func NewTupleLiteral(elements []Expression) *TupleLiteral {
	return &TupleLiteral{nodeImpl: newNodeImpl(NodeTupleLiteral), Elements: elements}
}

// Expressions

// LambdaExpression is an anonymous function. Body is a single
// expression, possibly a BlockExpression.
type LambdaExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Params     []*FunctionParameter `json:"params"`
	ReturnType TypeExpression       `json:"returnType,omitempty"`
	Body       Expression           `json:"body"`
}

func NewLambdaExpression(params []*FunctionParameter, returnType TypeExpression, body Expression) *LambdaExpression {
	return &LambdaExpression{nodeImpl: newNodeImpl(NodeLambdaExpression), Params: params, ReturnType: returnType, Body: body}
}

type UnaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator string     `json:"operator"`
	Operand  Expression `json:"operand"`
}

func NewUnaryExpression(operator string, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

type AssignmentExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Target AssignmentTarget `json:"target"`
	Value  Expression       `json:"value"`
}

func NewAssignmentExpression(target AssignmentTarget, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Target: target, Value: value}
}

type CallExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Callee Expression   `json:"callee"`
	Args   []Expression `json:"args"`
}

func NewCallExpression(callee Expression, args []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Callee: callee, Args: args}
}

// MemberAccessExpression selects a named field or method, or a
// positional tuple component when Member is an IntegerLiteral.
type MemberAccessExpression struct {
	nodeImpl
	expressionMarker
	statementMarker
	assignmentTargetMarker

	Object Expression `json:"object"`
	Member Expression `json:"member"`
}

func NewMemberAccessExpression(object, member Expression) *MemberAccessExpression {
	return &MemberAccessExpression{nodeImpl: newNodeImpl(NodeMemberAccessExpression), Object: object, Member: member}
}

type IndexExpression struct {
	nodeImpl
	expressionMarker
	statementMarker
	assignmentTargetMarker

	Object Expression `json:"object"`
	Index  Expression `json:"index"`
}

func NewIndexExpression(object, index Expression) *IndexExpression {
	return &IndexExpression{nodeImpl: newNodeImpl(NodeIndexExpression), Object: object, Index: index}
}

type StructFieldInitializer struct {
	nodeImpl

	Name  *Identifier `json:"name"`
	Value Expression  `json:"value"`
}

func NewStructFieldInitializer(name *Identifier, value Expression) *StructFieldInitializer {
	return &StructFieldInitializer{nodeImpl: newNodeImpl(NodeStructFieldInitializer), Name: name, Value: value}
}

type StructLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name   *Identifier               `json:"name"`
	Fields []*StructFieldInitializer `json:"fields"`
}

func NewStructLiteral(name *Identifier, fields []*StructFieldInitializer) *StructLiteral {
	return &StructLiteral{nodeImpl: newNodeImpl(NodeStructLiteral), Name: name, Fields: fields}
}

type MatchClause struct {
	nodeImpl

	Pattern Pattern    `json:"pattern"`
	Body    Expression `json:"body"`
}

func NewMatchClause(pattern Pattern, body Expression) *MatchClause {
	return &MatchClause{nodeImpl: newNodeImpl(NodeMatchClause), Pattern: pattern, Body: body}
}

type MatchExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Subject Expression     `json:"subject"`
	Clauses []*MatchClause `json:"clauses"`
}

func NewMatchExpression(subject Expression, clauses []*MatchClause) *MatchExpression {
	return &MatchExpression{nodeImpl: newNodeImpl(NodeMatchExpression), Subject: subject, Clauses: clauses}
}

// BlockExpression is a brace-delimited statement sequence whose value
// is the value of its trailing expression.
type BlockExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlockExpression(statements []Statement) *BlockExpression {
	return &BlockExpression{nodeImpl: newNodeImpl(NodeBlockExpression), Statements: statements}
}

// IfExpression branches on Cond. Else is nil, a *BlockExpression, or
// another *IfExpression for else-if chains.
type IfExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Cond Expression       `json:"cond"`
	Then *BlockExpression `json:"then"`
	Else Expression       `json:"else,omitempty"`
}

func NewIfExpression(cond Expression, then *BlockExpression, els Expression) *IfExpression {
	return &IfExpression{nodeImpl: newNodeImpl(NodeIfExpression), Cond: cond, Then: then, Else: els}
}

type WhileLoop struct {
	nodeImpl
	expressionMarker
	statementMarker

	Cond Expression       `json:"cond"`
	Body *BlockExpression `json:"body"`
}

func NewWhileLoop(cond Expression, body *BlockExpression) *WhileLoop {
	return &WhileLoop{nodeImpl: newNodeImpl(NodeWhileLoop), Cond: cond, Body: body}
}

type ForLoop struct {
	nodeImpl
	expressionMarker
	statementMarker

	Binding  *Identifier      `json:"binding"`
	Iterable Expression       `json:"iterable"`
	Body     *BlockExpression `json:"body"`
}

func NewForLoop(binding *Identifier, iterable Expression, body *BlockExpression) *ForLoop {
	return &ForLoop{nodeImpl: newNodeImpl(NodeForLoop), Binding: binding, Iterable: iterable, Body: body}
}

// Statements

// LetStatement introduces bindings. Annotation may be nil.
type LetStatement struct {
	nodeImpl
	statementMarker

	Pattern    Pattern        `json:"pattern"`
	Annotation TypeExpression `json:"annotation,omitempty"`
	Value      Expression     `json:"value"`
}

func NewLetStatement(pattern Pattern, annotation TypeExpression, value Expression) *LetStatement {
	return &LetStatement{nodeImpl: newNodeImpl(NodeLetStatement), Pattern: pattern, Annotation: annotation, Value: value}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value,omitempty"`
}

func NewReturnStatement(value Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}

type ImportSelector struct {
	nodeImpl

	Name  *Identifier `json:"name"`
	Alias *Identifier `json:"alias,omitempty"`
}

func NewImportSelector(name, alias *Identifier) *ImportSelector {
	return &ImportSelector{nodeImpl: newNodeImpl(NodeImportSelector), Name: name, Alias: alias}
}

// ImportStatement pulls names from another module. Path is the raw
// specifier; Alias and Selectors are independent options.
type ImportStatement struct {
	nodeImpl
	statementMarker

	Path      string            `json:"path"`
	Alias     *Identifier       `json:"alias,omitempty"`
	Selectors []*ImportSelector `json:"selectors,omitempty"`
}

func NewImportStatement(path string, alias *Identifier, selectors []*ImportSelector) *ImportStatement {
	return &ImportStatement{nodeImpl: newNodeImpl(NodeImportStatement), Path: path, Alias: alias, Selectors: selectors}
}

// Patterns

type WildcardPattern struct {
	nodeImpl
	patternMarker
}

func NewWildcardPattern() *WildcardPattern {
	return &WildcardPattern{nodeImpl: newNodeImpl(NodeWildcardPattern)}
}

type LiteralPattern struct {
	nodeImpl
	patternMarker

	Value Literal `json:"value"`
}

func NewLiteralPattern(value Literal) *LiteralPattern {
	return &LiteralPattern{nodeImpl: newNodeImpl(NodeLiteralPattern), Value: value}
}

type TuplePattern struct {
	nodeImpl
	patternMarker

	Elements []Pattern `json:"elements"`
}

func NewTuplePattern(elements []Pattern) *TuplePattern {
	return &TuplePattern{nodeImpl: newNodeImpl(NodeTuplePattern), Elements: elements}
}

// VariantPattern matches one tagged union variant and destructures
// its payload positionally.
type VariantPattern struct {
	nodeImpl
	patternMarker

	Name     *Identifier `json:"name"`
	Elements []Pattern   `json:"elements,omitempty"`
}

func NewVariantPattern(name *Identifier, elements []Pattern) *VariantPattern {
	return &VariantPattern{nodeImpl: newNodeImpl(NodeVariantPattern), Name: name, Elements: elements}
}
