package typechecker

import (
	"quill/frontend-go/pkg/ast"
)

// ParseFunc parses an imported file's source. The checker calls it
// while extracting declarations from imports; the embedding tool
// wires in the real parser so this package stays front-end agnostic.
type ParseFunc func(source, path string) (*ast.Module, error)

// Checker infers and validates types for one module per Check call.
// It never rejects a program outright: findings accumulate as
// diagnostics and every unknown degrades to Any. A single Checker may
// check many modules; the import extraction cache spans its lifetime.
type Checker struct {
	source string
	file   string
	strict bool
	parse  ParseFunc
	roots  map[string]string

	decls       *Declarations
	global      *Environment
	diags       []Diagnostic
	returnStack []returnContext
	ensuresDepth int
	lastType     Type

	moduleCache map[string]*Declarations
	resolving   map[string]bool
}

type returnContext struct {
	name     string
	declared Type
}

func New() *Checker {
	return &Checker{
		moduleCache: map[string]*Declarations{},
		resolving:   map[string]bool{},
	}
}

// SetSource provides the original text used for diagnostic line
// attribution. Without it every diagnostic reports line 0.
func (c *Checker) SetSource(source string) { c.source = source }

// SetFile sets the path relative imports resolve against. Without it
// relative imports bind their names as Any.
func (c *Checker) SetFile(path string) { c.file = path }

// SetStrictLint enables the advisory annotation-coverage warnings.
func (c *Checker) SetStrictLint(strict bool) { c.strict = strict }

// SetParseSource wires in the parser used on imported files.
func (c *Checker) SetParseSource(parse ParseFunc) { c.parse = parse }

// SetSearchRoots maps the first segment of bare import specifiers to
// directories, e.g. "geometry" -> a fetched dependency's checkout.
func (c *Checker) SetSearchRoots(roots map[string]string) { c.roots = roots }

// Check runs declaration collection and then a single inference walk
// over mod, returning diagnostics in emission order. The tree is not
// modified and a failed check is still a completed one.
func (c *Checker) Check(mod *ast.Module) []Diagnostic {
	c.decls = newDeclarations()
	c.global = NewEnvironment(nil)
	c.diags = []Diagnostic{}
	c.returnStack = nil
	c.lastType = nil
	c.collectDeclarations(mod)
	for i, stmt := range mod.Statements {
		if i == len(mod.Statements)-1 {
			if expr, ok := stmt.(ast.Expression); ok {
				c.lastType = c.checkExpression(c.global, expr)
				break
			}
		}
		c.checkStatement(c.global, stmt)
	}
	return c.diags
}

// TrailingType reports the type inferred for the module's final
// statement when that statement is an expression, nil otherwise. The
// repl uses it to echo a type for each submitted line.
func (c *Checker) TrailingType() Type { return c.lastType }

func (c *Checker) checkStatement(env *Environment, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		c.checkLet(env, s)
	case *ast.FunctionDefinition:
		c.checkFunctionDefinition(env, s, "")
	case *ast.ReturnStatement:
		c.checkReturn(env, s)
	case *ast.ImplDefinition:
		c.checkImplDefinition(env, s)
	case *ast.ImportStatement, *ast.StructDefinition, *ast.UnionDefinition, *ast.AliasDefinition, *ast.TraitDefinition:
		// Applied and indexed during collection; nothing to infer here.
	case ast.Expression:
		c.checkExpression(env, s)
	}
}

func (c *Checker) checkLet(env *Environment, s *ast.LetStatement) {
	valueType := c.checkExpression(env, s.Value)
	if s.Annotation == nil {
		c.bindPattern(env, s.Pattern, valueType, false)
		return
	}
	declared := c.resolveTypeExpression(s.Annotation)
	if !compatible(valueType, declared) {
		name := firstPatternName(s.Pattern)
		c.errorWithHint(s,
			"change the annotation or the initializer",
			"typechecker: '%s' declared as %s but initialized with %s",
			name, declared.Name(), valueType.Name())
	}
	// The annotation wins over the inferred type either way.
	c.bindPattern(env, s.Pattern, declared, true)
}

// bindPattern introduces a let binding. A destructuring pattern binds
// each of its names as Any; only a whole-name binding carries the
// value's type.
func (c *Checker) bindPattern(env *Environment, pat ast.Pattern, t Type, annotated bool) {
	switch p := pat.(type) {
	case *ast.Identifier:
		if annotated {
			env.DefineAnnotated(p.Name, t)
		} else {
			env.Define(p.Name, t)
		}
	case *ast.WildcardPattern:
	case *ast.TuplePattern:
		for _, el := range p.Elements {
			c.bindPattern(env, el, AnyType{}, false)
		}
	}
}

// checkReturn validates a return against the innermost declared
// return type and yields the returned value's type.
func (c *Checker) checkReturn(env *Environment, s *ast.ReturnStatement) Type {
	var valueType Type = UnitType{}
	if s.Value != nil {
		valueType = c.checkExpression(env, s.Value)
	}
	if len(c.returnStack) == 0 {
		return valueType
	}
	ctx := c.returnStack[len(c.returnStack)-1]
	if ctx.declared == nil || isAny(ctx.declared) {
		return valueType
	}
	if !compatible(valueType, ctx.declared) {
		c.errorf(s, "typechecker: function '%s' declares return type %s but returns %s",
			ctx.name, ctx.declared.Name(), valueType.Name())
	}
	return valueType
}

// checkFunctionDefinition checks one function or, when selfType is
// set, one method of impl selfType.
func (c *Checker) checkFunctionDefinition(env *Environment, fn *ast.FunctionDefinition, selfType string) {
	fnEnv := env.Extend()
	if selfType != "" {
		fnEnv.Define("self", NamedType{TypeName: selfType})
	}
	for _, p := range fn.Params {
		if selfType != "" && p.Name.Name == "self" {
			continue
		}
		var pt Type = AnyType{}
		annotated := p.ParamType != nil
		if annotated {
			pt = c.resolveTypeExpression(p.ParamType)
		} else if c.strict {
			c.warnWithHint(p, "add a type annotation",
				"typechecker: parameter '%s' of function '%s' has no type annotation",
				p.Name.Name, fn.ID.Name)
		}
		if p.Variadic {
			pt = ArrayType{Element: pt}
			annotated = true
		}
		if annotated {
			fnEnv.DefineAnnotated(p.Name.Name, pt)
		} else {
			fnEnv.Define(p.Name.Name, pt)
		}
	}
	var declared Type
	if fn.ReturnType != nil {
		declared = c.resolveTypeExpression(fn.ReturnType)
	} else if c.strict {
		c.warnWithHint(fn, "declare the return type",
			"typechecker: function '%s' has no declared return type", fn.ID.Name)
	}
	c.checkContracts(fnEnv, fn, declared)
	if fn.Body == nil {
		return
	}
	c.returnStack = append(c.returnStack, returnContext{name: fn.ID.Name, declared: declared})
	bodyType := c.checkBlock(fnEnv, fn.Body)
	c.returnStack = c.returnStack[:len(c.returnStack)-1]
	if declared == nil || isAny(declared) {
		return
	}
	// A trailing return was already validated at its own site.
	if n := len(fn.Body.Statements); n > 0 {
		if _, ok := fn.Body.Statements[n-1].(*ast.ReturnStatement); ok {
			return
		}
	}
	if !compatible(bodyType, declared) {
		c.errorf(fn, "typechecker: function '%s' declares return type %s but its body produces %s",
			fn.ID.Name, declared.Name(), bodyType.Name())
	}
}

// checkBlock checks statements in a child scope. The block's type is
// its trailing expression's, or the returned value's when the block
// ends in a return, or Unit.
func (c *Checker) checkBlock(env *Environment, block *ast.BlockExpression) Type {
	blockEnv := env.Extend()
	var result Type = UnitType{}
	for i, stmt := range block.Statements {
		if i == len(block.Statements)-1 {
			if ret, ok := stmt.(*ast.ReturnStatement); ok {
				result = c.checkReturn(blockEnv, ret)
				break
			}
			if expr, ok := stmt.(ast.Expression); ok {
				result = c.checkExpression(blockEnv, expr)
				break
			}
		}
		c.checkStatement(blockEnv, stmt)
	}
	return result
}

func (c *Checker) checkImplDefinition(env *Environment, impl *ast.ImplDefinition) {
	target := impl.Target.Name
	if len(impl.Invariants) > 0 {
		c.checkInvariants(env, impl)
	}
	for _, m := range impl.Methods {
		c.checkFunctionDefinition(env, m, target)
	}
}

// checkCondition warns on conditions that are neither Bool nor Any.
// This is advisory: inference carried on assuming the author meant a
// truthiness test.
func (c *Checker) checkCondition(env *Environment, cond ast.Expression) {
	t := c.checkExpression(env, cond)
	if !compatible(t, BoolType{}) {
		c.warnf(cond, "typechecker: condition is %s, expected Bool", t.Name())
	}
}
