package parser

import (
	"errors"
	"strings"
	"testing"

	"quill/frontend-go/pkg/ast"
)

func parseModule(t *testing.T, src string) *ast.Module {
	t.Helper()
	mod, err := ParseSource(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return mod
}

func parseOne(t *testing.T, src string) ast.Statement {
	t.Helper()
	mod := parseModule(t, src)
	if len(mod.Statements) != 1 {
		t.Fatalf("%q parsed to %d statements, want 1", src, len(mod.Statements))
	}
	return mod.Statements[0]
}

func wantParseError(t *testing.T, src, substr string) *Error {
	t.Helper()
	_, err := ParseSource(src)
	if err == nil {
		t.Fatalf("%q parsed, want an error containing %q", src, substr)
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Fatalf("error %q does not contain %q", err.Error(), substr)
	}
	return perr
}

func TestLetForms(t *testing.T) {
	stmt := parseOne(t, `let speed: Float = 3.5`)
	let, ok := stmt.(*ast.LetStatement)
	if !ok {
		t.Fatalf("statement is %T", stmt)
	}
	if id, ok := let.Pattern.(*ast.Identifier); !ok || id.Name != "speed" {
		t.Fatalf("pattern = %+v", let.Pattern)
	}
	ann, ok := let.Annotation.(*ast.SimpleTypeExpression)
	if !ok || ann.Name.Name != "Float" {
		t.Fatalf("annotation = %+v", let.Annotation)
	}
	if lit, ok := let.Value.(*ast.FloatLiteral); !ok || lit.Value != 3.5 {
		t.Fatalf("value = %+v", let.Value)
	}

	stmt = parseOne(t, `let (a, _, b) = triple`)
	let = stmt.(*ast.LetStatement)
	tup, ok := let.Pattern.(*ast.TuplePattern)
	if !ok || len(tup.Elements) != 3 {
		t.Fatalf("pattern = %+v", let.Pattern)
	}
	if _, ok := tup.Elements[0].(*ast.Identifier); !ok {
		t.Fatalf("element 0 = %T", tup.Elements[0])
	}
	if _, ok := tup.Elements[1].(*ast.WildcardPattern); !ok {
		t.Fatalf("element 1 = %T", tup.Elements[1])
	}
}

func TestFunctionDefinition(t *testing.T) {
	src := `
fn clamp(v: Float, lo: Float, hi: Float) -> Float
  requires lo <= hi
  ensures result >= lo
{
  if v < lo { lo } else if v > hi { hi } else { v }
}
`
	fn, ok := parseOne(t, src).(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("statement is not a function definition")
	}
	if fn.ID.Name != "clamp" || len(fn.Params) != 3 {
		t.Fatalf("header = %s/%d params", fn.ID.Name, len(fn.Params))
	}
	for i, param := range fn.Params {
		pt, ok := param.ParamType.(*ast.SimpleTypeExpression)
		if !ok || pt.Name.Name != "Float" {
			t.Fatalf("param %d type = %+v", i, param.ParamType)
		}
	}
	if rt, ok := fn.ReturnType.(*ast.SimpleTypeExpression); !ok || rt.Name.Name != "Float" {
		t.Fatalf("return type = %+v", fn.ReturnType)
	}
	if len(fn.Requires) != 1 || len(fn.Ensures) != 1 {
		t.Fatalf("contracts = %d requires, %d ensures", len(fn.Requires), len(fn.Ensures))
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("body has %d statements", len(fn.Body.Statements))
	}
	if _, ok := fn.Body.Statements[0].(*ast.IfExpression); !ok {
		t.Fatalf("body statement is %T", fn.Body.Statements[0])
	}
}

func TestVariadicParameters(t *testing.T) {
	fn := parseOne(t, `fn sum(base: Int, ns: Int...) -> Int { base }`).(*ast.FunctionDefinition)
	if fn.Params[0].Variadic {
		t.Fatalf("base should not be variadic")
	}
	last := fn.Params[1]
	if !last.Variadic {
		t.Fatalf("ns should be variadic: %+v", last)
	}
	if pt, ok := last.ParamType.(*ast.SimpleTypeExpression); !ok || pt.Name.Name != "Int" {
		t.Fatalf("variadic param type = %+v", last.ParamType)
	}

	// The untyped form puts the ellipsis right after the name.
	fn = parseOne(t, `fn tail(xs...) -> Int { 0 }`).(*ast.FunctionDefinition)
	if !fn.Params[0].Variadic || fn.Params[0].ParamType != nil {
		t.Fatalf("untyped variadic = %+v", fn.Params[0])
	}
}

func TestStructDefinition(t *testing.T) {
	def := parseOne(t, `struct Point { x: Float, y: Float }`).(*ast.StructDefinition)
	if def.ID.Name != "Point" || len(def.Fields) != 2 {
		t.Fatalf("struct = %+v", def)
	}
	if def.Fields[1].Name.Name != "y" {
		t.Fatalf("field 1 = %+v", def.Fields[1])
	}
}

func TestUnionDefinition(t *testing.T) {
	def := parseOne(t, `union Shape { Circle(Float), Rect(Float, Float), Empty }`).(*ast.UnionDefinition)
	if def.ID.Name != "Shape" || len(def.Variants) != 3 {
		t.Fatalf("union = %+v", def)
	}
	payloads := []int{1, 2, 0}
	for i, want := range payloads {
		if len(def.Variants[i].Payload) != want {
			t.Fatalf("variant %s has %d payload types, want %d",
				def.Variants[i].Name.Name, len(def.Variants[i].Payload), want)
		}
	}
}

func TestTraitAndImpl(t *testing.T) {
	trait := parseOne(t, `
trait Measurable {
  fn area(self) -> Float
  fn label(self) -> String
}
`).(*ast.TraitDefinition)
	if trait.ID.Name != "Measurable" || len(trait.Signatures) != 2 {
		t.Fatalf("trait = %+v", trait)
	}
	if trait.Signatures[0].Name.Name != "area" || len(trait.Signatures[0].Params) != 1 {
		t.Fatalf("signature 0 = %+v", trait.Signatures[0])
	}

	impl := parseOne(t, `
impl Circle {
  invariant self.radius >= 0.0

  fn area(self) -> Float {
    3.14 * self.radius * self.radius
  }
}
`).(*ast.ImplDefinition)
	if impl.Target.Name != "Circle" {
		t.Fatalf("impl target = %+v", impl.Target)
	}
	if len(impl.Invariants) != 1 || len(impl.Methods) != 1 {
		t.Fatalf("impl = %d invariants, %d methods", len(impl.Invariants), len(impl.Methods))
	}
	if impl.Methods[0].ID.Name != "area" {
		t.Fatalf("method = %+v", impl.Methods[0].ID)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	root := parseOne(t, `1 + 2 * 3`).(*ast.BinaryExpression)
	if root.Operator != "+" {
		t.Fatalf("root operator = %q", root.Operator)
	}
	right, ok := root.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("right = %+v", root.Right)
	}

	root = parseOne(t, `a || b && c == d`).(*ast.BinaryExpression)
	if root.Operator != "||" {
		t.Fatalf("root operator = %q", root.Operator)
	}
	and := root.Right.(*ast.BinaryExpression)
	if and.Operator != "&&" {
		t.Fatalf("right operator = %q", and.Operator)
	}
	if eq := and.Right.(*ast.BinaryExpression); eq.Operator != "==" {
		t.Fatalf("inner operator = %q", eq.Operator)
	}

	// Same precedence associates left.
	root = parseOne(t, `10 - 4 - 3`).(*ast.BinaryExpression)
	left := root.Left.(*ast.BinaryExpression)
	if left.Operator != "-" {
		t.Fatalf("left = %+v", root.Left)
	}
	if lit := left.Left.(*ast.IntegerLiteral); lit.Value != 10 {
		t.Fatalf("leftmost literal = %+v", left.Left)
	}

	// Unary binds tighter than *.
	mul := parseOne(t, `-x * y`).(*ast.BinaryExpression)
	if mul.Operator != "*" {
		t.Fatalf("root = %+v", mul)
	}
	if _, ok := mul.Left.(*ast.UnaryExpression); !ok {
		t.Fatalf("left = %T", mul.Left)
	}
}

func TestAssignment(t *testing.T) {
	assign := parseOne(t, `count = count + 1`).(*ast.AssignmentExpression)
	if id, ok := assign.Target.(*ast.Identifier); !ok || id.Name != "count" {
		t.Fatalf("target = %+v", assign.Target)
	}
	if _, ok := assign.Value.(*ast.BinaryExpression); !ok {
		t.Fatalf("value = %T", assign.Value)
	}

	assign = parseOne(t, `p.x = 2.0`).(*ast.AssignmentExpression)
	if _, ok := assign.Target.(*ast.MemberAccessExpression); !ok {
		t.Fatalf("target = %T", assign.Target)
	}

	assign = parseOne(t, `cells[0] = 9`).(*ast.AssignmentExpression)
	if _, ok := assign.Target.(*ast.IndexExpression); !ok {
		t.Fatalf("target = %T", assign.Target)
	}

	// Assignment nests to the right.
	assign = parseOne(t, `a = b = 3`).(*ast.AssignmentExpression)
	if _, ok := assign.Value.(*ast.AssignmentExpression); !ok {
		t.Fatalf("value = %T", assign.Value)
	}

	wantParseError(t, `1 = 2`, "invalid assignment target")
}

func TestPostfixChains(t *testing.T) {
	access := parseOne(t, `rows[0].name`).(*ast.MemberAccessExpression)
	if _, ok := access.Object.(*ast.IndexExpression); !ok {
		t.Fatalf("object = %T", access.Object)
	}
	if member, ok := access.Member.(*ast.Identifier); !ok || member.Name != "name" {
		t.Fatalf("member = %+v", access.Member)
	}

	tuple := parseOne(t, `pair.0`).(*ast.MemberAccessExpression)
	if lit, ok := tuple.Member.(*ast.IntegerLiteral); !ok || lit.Value != 0 {
		t.Fatalf("tuple member = %+v", tuple.Member)
	}

	call := parseOne(t, `f(g(1), 2)`).(*ast.CallExpression)
	if len(call.Args) != 2 {
		t.Fatalf("call has %d args", len(call.Args))
	}
	if _, ok := call.Args[0].(*ast.CallExpression); !ok {
		t.Fatalf("arg 0 = %T", call.Args[0])
	}
}

func TestCallMustStartOnSameLine(t *testing.T) {
	mod := parseModule(t, "f\n(1)")
	if len(mod.Statements) != 2 {
		t.Fatalf("got %d statements, want the call split in two", len(mod.Statements))
	}
	if _, ok := mod.Statements[0].(*ast.Identifier); !ok {
		t.Fatalf("statement 0 = %T", mod.Statements[0])
	}
}

func TestLambdas(t *testing.T) {
	lam := parseOne(t, `|x: Int| -> Int x * 2`).(*ast.LambdaExpression)
	if len(lam.Params) != 1 {
		t.Fatalf("params = %+v", lam.Params)
	}
	if pt, ok := lam.Params[0].ParamType.(*ast.SimpleTypeExpression); !ok || pt.Name.Name != "Int" {
		t.Fatalf("param type = %+v", lam.Params[0].ParamType)
	}
	if rt, ok := lam.ReturnType.(*ast.SimpleTypeExpression); !ok || rt.Name.Name != "Int" {
		t.Fatalf("return type = %+v", lam.ReturnType)
	}
	if _, ok := lam.Body.(*ast.BinaryExpression); !ok {
		t.Fatalf("body = %T", lam.Body)
	}

	lam = parseOne(t, `|a, b| a + b`).(*ast.LambdaExpression)
	if len(lam.Params) != 2 || lam.Params[0].ParamType != nil {
		t.Fatalf("params = %+v", lam.Params)
	}

	// || is one token yet still opens an empty parameter list.
	lam = parseOne(t, `|| 42`).(*ast.LambdaExpression)
	if len(lam.Params) != 0 {
		t.Fatalf("params = %+v", lam.Params)
	}
	if lit, ok := lam.Body.(*ast.IntegerLiteral); !ok || lit.Value != 42 {
		t.Fatalf("body = %+v", lam.Body)
	}
}

func TestCollectionLiterals(t *testing.T) {
	arr := parseOne(t, `[1, 2, 3]`).(*ast.ArrayLiteral)
	if len(arr.Elements) != 3 {
		t.Fatalf("array = %+v", arr)
	}

	m := parseOne(t, `#{"a": 1, "b": 2}`).(*ast.MapLiteral)
	if len(m.Entries) != 2 {
		t.Fatalf("map = %+v", m)
	}
	if key, ok := m.Entries[0].Key.(*ast.StringLiteral); !ok || key.Value != "a" {
		t.Fatalf("key 0 = %+v", m.Entries[0].Key)
	}

	tup := parseOne(t, `(1, "two")`).(*ast.TupleLiteral)
	if len(tup.Elements) != 2 {
		t.Fatalf("tuple = %+v", tup)
	}

	if _, ok := parseOne(t, `()`).(*ast.UnitLiteral); !ok {
		t.Fatalf("() did not parse to a unit literal")
	}

	// One parenthesized expression is grouping, not a tuple.
	if lit, ok := parseOne(t, `(7)`).(*ast.IntegerLiteral); !ok || lit.Value != 7 {
		t.Fatalf("(7) = %+v", lit)
	}
}

func TestIfElseChain(t *testing.T) {
	ifExpr := parseOne(t, `if a { 1 } else if b { 2 } else { 3 }`).(*ast.IfExpression)
	if _, ok := ifExpr.Cond.(*ast.Identifier); !ok {
		t.Fatalf("cond = %T", ifExpr.Cond)
	}
	chained, ok := ifExpr.Else.(*ast.IfExpression)
	if !ok {
		t.Fatalf("else = %T, want a nested if", ifExpr.Else)
	}
	if _, ok := chained.Else.(*ast.BlockExpression); !ok {
		t.Fatalf("final else = %T", chained.Else)
	}
}

func TestHeadersSuppressStructLiterals(t *testing.T) {
	loop := parseOne(t, `while count < limit { count = count + 1 }`).(*ast.WhileLoop)
	if _, ok := loop.Cond.(*ast.BinaryExpression); !ok {
		t.Fatalf("cond = %T", loop.Cond)
	}
	if len(loop.Body.Statements) != 1 {
		t.Fatalf("body = %+v", loop.Body)
	}

	forLoop := parseOne(t, `for item in items { item }`).(*ast.ForLoop)
	if forLoop.Binding.Name != "item" {
		t.Fatalf("binding = %+v", forLoop.Binding)
	}
	if _, ok := forLoop.Iterable.(*ast.Identifier); !ok {
		t.Fatalf("iterable = %T", forLoop.Iterable)
	}

	// Inside header parens the suppression lifts again.
	call := parseOne(t, `while check(Flag { on: true }) { 0 }`).(*ast.WhileLoop)
	inner := call.Cond.(*ast.CallExpression)
	if _, ok := inner.Args[0].(*ast.StructLiteral); !ok {
		t.Fatalf("arg = %T", inner.Args[0])
	}
}

func TestStructLiteralRequiresSameLineBrace(t *testing.T) {
	lit := parseOne(t, `Point { x: 1.0, y: 2.0 }`).(*ast.StructLiteral)
	if lit.Name.Name != "Point" || len(lit.Fields) != 2 {
		t.Fatalf("literal = %+v", lit)
	}

	mod := parseModule(t, "Point\n{ x }")
	if len(mod.Statements) != 2 {
		t.Fatalf("got %d statements, want identifier then block", len(mod.Statements))
	}
	if _, ok := mod.Statements[1].(*ast.BlockExpression); !ok {
		t.Fatalf("statement 1 = %T", mod.Statements[1])
	}
}

func TestMatchClauses(t *testing.T) {
	src := `
match shape {
  Circle(r) => r * r,
  Rect(w, h) => w * h,
  0 => 0.0,
  other => other,
  _ => 1.0
}
`
	m := parseOne(t, src).(*ast.MatchExpression)
	if len(m.Clauses) != 5 {
		t.Fatalf("got %d clauses", len(m.Clauses))
	}
	variant, ok := m.Clauses[0].Pattern.(*ast.VariantPattern)
	if !ok || variant.Name.Name != "Circle" || len(variant.Elements) != 1 {
		t.Fatalf("clause 0 pattern = %+v", m.Clauses[0].Pattern)
	}
	rect := m.Clauses[1].Pattern.(*ast.VariantPattern)
	if len(rect.Elements) != 2 {
		t.Fatalf("clause 1 pattern = %+v", rect)
	}
	if _, ok := m.Clauses[2].Pattern.(*ast.LiteralPattern); !ok {
		t.Fatalf("clause 2 pattern = %T", m.Clauses[2].Pattern)
	}
	if _, ok := m.Clauses[3].Pattern.(*ast.Identifier); !ok {
		t.Fatalf("clause 3 pattern = %T", m.Clauses[3].Pattern)
	}
	if _, ok := m.Clauses[4].Pattern.(*ast.WildcardPattern); !ok {
		t.Fatalf("clause 4 pattern = %T", m.Clauses[4].Pattern)
	}
}

func TestImportForms(t *testing.T) {
	imp := parseOne(t, `import "std/strings"`).(*ast.ImportStatement)
	if imp.Path != "std/strings" || imp.Alias != nil || imp.Selectors != nil {
		t.Fatalf("plain import = %+v", imp)
	}

	imp = parseOne(t, `import "./geo.quill" as geo`).(*ast.ImportStatement)
	if imp.Alias == nil || imp.Alias.Name != "geo" {
		t.Fatalf("aliased import = %+v", imp)
	}

	imp = parseOne(t, `import "geometry" { area as a, perimeter }`).(*ast.ImportStatement)
	if len(imp.Selectors) != 2 {
		t.Fatalf("selector import = %+v", imp)
	}
	if imp.Selectors[0].Alias == nil || imp.Selectors[0].Alias.Name != "a" {
		t.Fatalf("selector 0 = %+v", imp.Selectors[0])
	}
	if imp.Selectors[1].Alias != nil {
		t.Fatalf("selector 1 = %+v", imp.Selectors[1])
	}
}

func TestTypeExpressions(t *testing.T) {
	target := func(src string) ast.TypeExpression {
		return parseOne(t, src).(*ast.AliasDefinition).Target
	}

	maybe := target(`alias MaybeInt = Int?`)
	opt, ok := maybe.(*ast.OptionalTypeExpression)
	if !ok {
		t.Fatalf("Int? = %T", maybe)
	}
	if inner, ok := opt.Inner.(*ast.SimpleTypeExpression); !ok || inner.Name.Name != "Int" {
		t.Fatalf("inner = %+v", opt.Inner)
	}

	grid, ok := target(`alias Grid = Array<Array<Float>>`).(*ast.GenericTypeExpression)
	if !ok || grid.Base.Name != "Array" || len(grid.Args) != 1 {
		t.Fatalf("generic = %+v", grid)
	}
	if _, ok := grid.Args[0].(*ast.GenericTypeExpression); !ok {
		t.Fatalf("nested arg = %T", grid.Args[0])
	}

	pair, ok := target(`alias Pair = (Int, String)`).(*ast.TupleTypeExpression)
	if !ok || len(pair.Elements) != 2 {
		t.Fatalf("tuple type = %+v", pair)
	}

	op, ok := target(`alias Op = fn(Int, Int) -> Int`).(*ast.FunctionTypeExpression)
	if !ok || len(op.ParamTypes) != 2 {
		t.Fatalf("function type = %+v", op)
	}

	id, ok := target(`alias Id = Int | String`).(*ast.UnionTypeExpression)
	if !ok || len(id.Members) != 2 {
		t.Fatalf("union type = %+v", id)
	}

	if unit, ok := target(`alias Nothing = ()`).(*ast.SimpleTypeExpression); !ok || unit.Name.Name != "Unit" {
		t.Fatalf("() type = %+v", unit)
	}
}

func TestReturnForms(t *testing.T) {
	fn := parseOne(t, `fn f() -> Int { return 3 }`).(*ast.FunctionDefinition)
	ret := fn.Body.Statements[0].(*ast.ReturnStatement)
	if lit, ok := ret.Value.(*ast.IntegerLiteral); !ok || lit.Value != 3 {
		t.Fatalf("return value = %+v", ret.Value)
	}

	fn = parseOne(t, `fn g() { return }`).(*ast.FunctionDefinition)
	if fn.Body.Statements[0].(*ast.ReturnStatement).Value != nil {
		t.Fatalf("bare return should carry no value")
	}

	// A value on the next line belongs to the next statement.
	fn = parseOne(t, "fn h() {\n  return\n  7\n}").(*ast.FunctionDefinition)
	if len(fn.Body.Statements) != 2 {
		t.Fatalf("body = %+v", fn.Body.Statements)
	}
	if fn.Body.Statements[0].(*ast.ReturnStatement).Value != nil {
		t.Fatalf("return grabbed the next line")
	}
}

func TestSemicolonsAreOptional(t *testing.T) {
	mod := parseModule(t, `let a = 1; let b = 2;;`)
	if len(mod.Statements) != 2 {
		t.Fatalf("got %d statements", len(mod.Statements))
	}

	fn := parseOne(t, `fn f() -> Int { let a = 1; a }`).(*ast.FunctionDefinition)
	if len(fn.Body.Statements) != 2 {
		t.Fatalf("body = %+v", fn.Body.Statements)
	}
}

func TestParseErrors(t *testing.T) {
	perr := wantParseError(t, `fn broken(`, "end of input")
	if perr.Line != 1 || perr.Col <= 1 {
		t.Fatalf("error position = %d:%d", perr.Line, perr.Col)
	}
	if !strings.HasPrefix(perr.Error(), "parser: ") {
		t.Fatalf("error string = %q", perr.Error())
	}

	wantParseError(t, `let 3 = x`, "expected binding pattern")
	wantParseError(t, `struct S { x }`, "expected ':'")
	wantParseError(t, `match v { x => }`, "unexpected '}'")
	wantParseError(t, "let x = @", "illegal input")
}
