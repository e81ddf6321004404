package ast

// Compact constructors for building trees in tests. These stay out of
// production code paths; the parser uses the New* constructors
// directly.

func Mod(statements ...Statement) *Module {
	return NewModule(statements)
}

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Flt(value float64) *FloatLiteral {
	return NewFloatLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Unit() *UnitLiteral {
	return NewUnitLiteral()
}

func Arr(elements ...Expression) *ArrayLiteral {
	return NewArrayLiteral(elements)
}

func Entry(key, value Expression) *MapEntry {
	return NewMapEntry(key, value)
}

func MapLit(entries ...*MapEntry) *MapLiteral {
	return NewMapLiteral(entries)
}

func Tup(elements ...Expression) *TupleLiteral {
	return NewTupleLiteral(elements)
}

func Block(statements ...Statement) *BlockExpression {
	return NewBlockExpression(statements)
}

func Call(callee Expression, args ...Expression) *CallExpression {
	return NewCallExpression(callee, args)
}

func CallN(name string, args ...Expression) *CallExpression {
	return NewCallExpression(NewIdentifier(name), args)
}

func Member(object Expression, member string) *MemberAccessExpression {
	return NewMemberAccessExpression(object, NewIdentifier(member))
}

// Pos selects a positional tuple component.
func Pos(object Expression, index int64) *MemberAccessExpression {
	return NewMemberAccessExpression(object, NewIntegerLiteral(index))
}

func Idx(object, index Expression) *IndexExpression {
	return NewIndexExpression(object, index)
}

func Bin(operator string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Un(operator string, operand Expression) *UnaryExpression {
	return NewUnaryExpression(operator, operand)
}

func Assign(target AssignmentTarget, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(target, value)
}

func Lam(params []*FunctionParameter, body Expression) *LambdaExpression {
	return NewLambdaExpression(params, nil, body)
}

func LamT(params []*FunctionParameter, returnType TypeExpression, body Expression) *LambdaExpression {
	return NewLambdaExpression(params, returnType, body)
}

func Params(params ...*FunctionParameter) []*FunctionParameter {
	return params
}

func P(name string) *FunctionParameter {
	return NewFunctionParameter(NewIdentifier(name), nil, false)
}

func PT(name string, paramType TypeExpression) *FunctionParameter {
	return NewFunctionParameter(NewIdentifier(name), paramType, false)
}

func Fn(name string, params []*FunctionParameter, returnType TypeExpression, body ...Statement) *FunctionDefinition {
	return NewFunctionDefinition(NewIdentifier(name), params, returnType, NewBlockExpression(body))
}

func Sig(name string, params []*FunctionParameter, returnType TypeExpression) *FunctionSignature {
	return NewFunctionSignature(NewIdentifier(name), params, returnType)
}

func Let(name string, value Expression) *LetStatement {
	return NewLetStatement(NewIdentifier(name), nil, value)
}

func LetT(name string, annotation TypeExpression, value Expression) *LetStatement {
	return NewLetStatement(NewIdentifier(name), annotation, value)
}

func LetPat(pattern Pattern, value Expression) *LetStatement {
	return NewLetStatement(pattern, nil, value)
}

func Ret(value Expression) *ReturnStatement {
	return NewReturnStatement(value)
}

func If(cond Expression, then *BlockExpression) *IfExpression {
	return NewIfExpression(cond, then, nil)
}

func IfElse(cond Expression, then *BlockExpression, els Expression) *IfExpression {
	return NewIfExpression(cond, then, els)
}

func While(cond Expression, body *BlockExpression) *WhileLoop {
	return NewWhileLoop(cond, body)
}

func For(binding string, iterable Expression, body *BlockExpression) *ForLoop {
	return NewForLoop(NewIdentifier(binding), iterable, body)
}

func Match(subject Expression, clauses ...*MatchClause) *MatchExpression {
	return NewMatchExpression(subject, clauses)
}

func Clause(pattern Pattern, body Expression) *MatchClause {
	return NewMatchClause(pattern, body)
}

func Wld() *WildcardPattern {
	return NewWildcardPattern()
}

func LitPat(value Literal) *LiteralPattern {
	return NewLiteralPattern(value)
}

func TupPat(elements ...Pattern) *TuplePattern {
	return NewTuplePattern(elements)
}

func VarPat(name string, elements ...Pattern) *VariantPattern {
	return NewVariantPattern(NewIdentifier(name), elements)
}

func Ty(name string) *SimpleTypeExpression {
	return NewSimpleTypeExpression(NewIdentifier(name))
}

func TyGen(base string, args ...TypeExpression) *GenericTypeExpression {
	return NewGenericTypeExpression(NewIdentifier(base), args)
}

func TyOpt(inner TypeExpression) *OptionalTypeExpression {
	return NewOptionalTypeExpression(inner)
}

func TyTup(elements ...TypeExpression) *TupleTypeExpression {
	return NewTupleTypeExpression(elements)
}

func TyFn(paramTypes []TypeExpression, returnType TypeExpression) *FunctionTypeExpression {
	return NewFunctionTypeExpression(paramTypes, returnType)
}

func TyUnion(members ...TypeExpression) *UnionTypeExpression {
	return NewUnionTypeExpression(members)
}

func StructD(name string, fields ...*StructFieldDefinition) *StructDefinition {
	return NewStructDefinition(NewIdentifier(name), fields)
}

func FldD(name string, fieldType TypeExpression) *StructFieldDefinition {
	return NewStructFieldDefinition(NewIdentifier(name), fieldType)
}

func UnionD(name string, variants ...*UnionVariant) *UnionDefinition {
	return NewUnionDefinition(NewIdentifier(name), variants)
}

func Variant(name string, payload ...TypeExpression) *UnionVariant {
	return NewUnionVariant(NewIdentifier(name), payload)
}

func Alias(name string, target TypeExpression) *AliasDefinition {
	return NewAliasDefinition(NewIdentifier(name), target)
}

func Trait(name string, signatures ...*FunctionSignature) *TraitDefinition {
	return NewTraitDefinition(NewIdentifier(name), signatures)
}

func Impl(target string, methods ...*FunctionDefinition) *ImplDefinition {
	return NewImplDefinition(NewIdentifier(target), nil, methods)
}

func SLit(name string, fields ...*StructFieldInitializer) *StructLiteral {
	return NewStructLiteral(NewIdentifier(name), fields)
}

func FInit(name string, value Expression) *StructFieldInitializer {
	return NewStructFieldInitializer(NewIdentifier(name), value)
}

func Imp(path string, selectors ...*ImportSelector) *ImportStatement {
	return NewImportStatement(path, nil, selectors)
}

func ImpAlias(path, alias string) *ImportStatement {
	return NewImportStatement(path, NewIdentifier(alias), nil)
}

func Sel(name string) *ImportSelector {
	return NewImportSelector(NewIdentifier(name), nil)
}

func SelAs(name, alias string) *ImportSelector {
	return NewImportSelector(NewIdentifier(name), NewIdentifier(alias))
}
