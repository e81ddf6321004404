package typechecker

import (
	"quill/frontend-go/pkg/ast"
)

// checkExpression infers the type of expr, reporting diagnostics as a
// side effect. It always produces a type; Any is the answer when
// nothing better is known.
func (c *Checker) checkExpression(env *Environment, expr ast.Expression) Type {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return IntType{}
	case *ast.FloatLiteral:
		return FloatType{}
	case *ast.StringLiteral:
		return StringType{}
	case *ast.BooleanLiteral:
		return BoolType{}
	case *ast.UnitLiteral:
		return UnitType{}
	case *ast.Identifier:
		return c.checkIdentifier(env, e)
	case *ast.ArrayLiteral:
		return c.checkArrayLiteral(env, e)
	case *ast.MapLiteral:
		return c.checkMapLiteral(env, e)
	case *ast.TupleLiteral:
		elems := make([]Type, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = c.checkExpression(env, el)
		}
		return TupleType{Elements: elems}
	case *ast.LambdaExpression:
		return c.checkLambda(env, e)
	case *ast.UnaryExpression:
		return c.checkUnary(env, e)
	case *ast.BinaryExpression:
		return c.checkBinary(env, e)
	case *ast.AssignmentExpression:
		return c.checkAssignment(env, e)
	case *ast.CallExpression:
		return c.checkCall(env, e)
	case *ast.MemberAccessExpression:
		return c.checkMemberAccess(env, e)
	case *ast.IndexExpression:
		return c.checkIndex(env, e)
	case *ast.StructLiteral:
		return c.checkStructLiteral(env, e)
	case *ast.MatchExpression:
		return c.checkMatch(env, e)
	case *ast.BlockExpression:
		return c.checkBlock(env, e)
	case *ast.IfExpression:
		return c.checkIf(env, e)
	case *ast.WhileLoop:
		c.checkCondition(env, e.Cond)
		c.checkBlock(env, e.Body)
		return UnitType{}
	case *ast.ForLoop:
		return c.checkFor(env, e)
	}
	return AnyType{}
}

// checkIdentifier resolves a name against, in order, the scope chain,
// the function table, and the variant table. Unknown names are Any,
// not errors: the program may be mid-edit or rely on dynamic code.
func (c *Checker) checkIdentifier(env *Environment, id *ast.Identifier) Type {
	if b, ok := env.Lookup(id.Name); ok {
		return b.Type
	}
	if sig, ok := c.decls.Functions[id.Name]; ok {
		return sig.Type()
	}
	if ref, ok := c.decls.variantNamed(id.Name); ok {
		if len(ref.Variant.Payload) == 0 {
			return NamedType{TypeName: ref.Union.Name}
		}
		return FunctionType{Params: ref.Variant.Payload, Return: NamedType{TypeName: ref.Union.Name}}
	}
	return AnyType{}
}

func (c *Checker) checkArrayLiteral(env *Environment, arr *ast.ArrayLiteral) Type {
	if len(arr.Elements) == 0 {
		return ArrayType{Element: AnyType{}}
	}
	elem := c.checkExpression(env, arr.Elements[0])
	for _, el := range arr.Elements[1:] {
		elem = unionType(elem, c.checkExpression(env, el))
	}
	return ArrayType{Element: elem}
}

func (c *Checker) checkMapLiteral(env *Environment, m *ast.MapLiteral) Type {
	if len(m.Entries) == 0 {
		return MapType{Key: AnyType{}, Value: AnyType{}}
	}
	key := c.checkExpression(env, m.Entries[0].Key)
	value := c.checkExpression(env, m.Entries[0].Value)
	for _, entry := range m.Entries[1:] {
		key = unionType(key, c.checkExpression(env, entry.Key))
		value = unionType(value, c.checkExpression(env, entry.Value))
	}
	return MapType{Key: key, Value: value}
}

func (c *Checker) checkLambda(env *Environment, lam *ast.LambdaExpression) Type {
	lamEnv := env.Extend()
	params := make([]Type, len(lam.Params))
	for i, p := range lam.Params {
		var pt Type = AnyType{}
		if p.ParamType != nil {
			pt = c.resolveTypeExpression(p.ParamType)
			lamEnv.DefineAnnotated(p.Name.Name, pt)
		} else {
			lamEnv.Define(p.Name.Name, pt)
		}
		params[i] = pt
	}
	var declared Type
	if lam.ReturnType != nil {
		declared = c.resolveTypeExpression(lam.ReturnType)
	}
	bodyType := c.checkExpression(lamEnv, lam.Body)
	if declared != nil {
		if !isAny(declared) && !compatible(bodyType, declared) {
			c.errorf(lam, "typechecker: lambda declares return type %s but its body produces %s",
				declared.Name(), bodyType.Name())
		}
		return FunctionType{Params: params, Return: declared}
	}
	return FunctionType{Params: params, Return: bodyType}
}

func (c *Checker) checkIf(env *Environment, e *ast.IfExpression) Type {
	c.checkCondition(env, e.Cond)
	thenType := c.checkBlock(env, e.Then)
	if e.Else == nil {
		return UnitType{}
	}
	elseType := c.checkExpression(env, e.Else)
	return unionType(thenType, elseType)
}

func (c *Checker) checkFor(env *Environment, f *ast.ForLoop) Type {
	iterType := c.checkExpression(env, f.Iterable)
	var elem Type = AnyType{}
	switch it := iterType.(type) {
	case ArrayType:
		elem = it.Element
	case StringType:
		elem = StringType{}
	case MapType:
		elem = it.Key
	}
	bodyEnv := env.Extend()
	bodyEnv.Define(f.Binding.Name, elem)
	c.checkBlock(bodyEnv, f.Body)
	return UnitType{}
}

// checkCall dispatches on the callee: method-call syntax, the
// contract-only old marker, locally bound callables, declared
// functions, variant constructors, then the builtin catalogue. A
// callee nobody knows checks its arguments and yields Any.
func (c *Checker) checkCall(env *Environment, call *ast.CallExpression) Type {
	if member, ok := call.Callee.(*ast.MemberAccessExpression); ok {
		return c.checkMethodCall(env, member, call)
	}
	if ident, ok := call.Callee.(*ast.Identifier); ok {
		if ident.Name == "old" && c.ensuresDepth > 0 && len(call.Args) == 1 {
			return c.checkExpression(env, call.Args[0])
		}
		if b, ok := env.Lookup(ident.Name); ok {
			return c.checkCallOf(env, call, ident.Name, b.Type)
		}
		if sig, ok := c.decls.Functions[ident.Name]; ok {
			return c.checkArgsAgainst(env, call, sig, call.Args)
		}
		if ref, ok := c.decls.variantNamed(ident.Name); ok {
			return c.checkVariantConstruction(env, call, ref)
		}
		if transform, ok := builtinOps[ident.Name]; ok && len(call.Args) > 0 {
			types := c.checkArgTypes(env, call.Args)
			return transform(types[0], types[1:])
		}
	}
	calleeType := c.checkExpression(env, call.Callee)
	return c.checkCallOf(env, call, "", calleeType)
}

// checkCallOf checks a call through a value of callable (or unknown)
// type rather than a declared signature.
func (c *Checker) checkCallOf(env *Environment, call *ast.CallExpression, name string, calleeType Type) Type {
	fn, ok := calleeType.(FunctionType)
	if !ok {
		// Calling Any, or a non-callable the runtime will reject.
		c.checkArgTypes(env, call.Args)
		return AnyType{}
	}
	sig := &FunctionSig{Name: name, Return: fn.Return, Variadic: fn.Variadic}
	for _, p := range fn.Params {
		sig.Params = append(sig.Params, ParamSig{Type: p})
	}
	return c.checkArgsAgainst(env, call, sig, call.Args)
}

func (c *Checker) checkArgTypes(env *Environment, args []ast.Expression) []Type {
	types := make([]Type, len(args))
	for i, a := range args {
		types[i] = c.checkExpression(env, a)
	}
	return types
}

// checkArgsAgainst validates arity and per-argument compatibility for
// a known signature. The declared return type comes back even when
// the call is wrong, keeping inference useful downstream.
func (c *Checker) checkArgsAgainst(env *Environment, call *ast.CallExpression, sig *FunctionSig, args []ast.Expression) Type {
	name := sig.Name
	fixed := len(sig.Params)
	if sig.Variadic {
		fixed--
		if len(args) < fixed {
			if name != "" {
				c.errorf(call, "typechecker: function '%s' expects at least %d argument(s), got %d",
					name, fixed, len(args))
			} else {
				c.errorf(call, "typechecker: call expects at least %d argument(s), got %d",
					fixed, len(args))
			}
		}
	} else if len(args) != fixed {
		if name != "" {
			c.errorf(call, "typechecker: function '%s' expects %d argument(s), got %d",
				name, fixed, len(args))
		} else {
			c.errorf(call, "typechecker: call expects %d argument(s), got %d",
				fixed, len(args))
		}
	}
	argTypes := c.checkArgTypes(env, args)
	for i, at := range argTypes {
		// Positions past a variadic prefix are inferred but not
		// validated; the bundle parameter types the body instead.
		if i >= fixed {
			break
		}
		expected := sig.Params[i].Type
		if expected == nil || isAny(expected) {
			continue
		}
		if !compatible(at, expected) {
			target := "'" + name + "'"
			if name == "" {
				target = "call"
			}
			c.errorf(args[i], "typechecker: argument %d to %s is %s, expected %s",
				i+1, target, at.Name(), expected.Name())
		}
	}
	if sig.Return == nil {
		return AnyType{}
	}
	return sig.Return
}

// checkVariantConstruction validates a union variant call against its
// declared payload. The result is the owning union's type whatever
// went wrong.
func (c *Checker) checkVariantConstruction(env *Environment, call *ast.CallExpression, ref *variantRef) Type {
	payload := ref.Variant.Payload
	if len(call.Args) != len(payload) {
		c.errorf(call, "typechecker: variant '%s' expects %d payload value(s), got %d",
			ref.Variant.Name, len(payload), len(call.Args))
	}
	argTypes := c.checkArgTypes(env, call.Args)
	for i, at := range argTypes {
		if i >= len(payload) {
			break
		}
		if !compatible(at, payload[i]) {
			c.errorf(call.Args[i], "typechecker: payload %d of variant '%s' is %s, expected %s",
				i+1, ref.Variant.Name, at.Name(), payload[i].Name())
		}
	}
	return NamedType{TypeName: ref.Union.Name}
}

// checkStructLiteral cross-checks provided fields against the struct
// declaration. Omitted fields are not reported; construction with
// defaults is a runtime concern.
func (c *Checker) checkStructLiteral(env *Environment, lit *ast.StructLiteral) Type {
	name := lit.Name.Name
	if resolved, ok := c.resolveTypeName(name).(NamedType); ok {
		name = resolved.TypeName
	}
	info, known := c.decls.Structs[name]
	for _, init := range lit.Fields {
		valueType := c.checkExpression(env, init.Value)
		if !known {
			continue
		}
		declared, ok := info.FieldType(init.Name.Name)
		if !ok {
			c.errorf(init, "typechecker: struct '%s' has no field '%s'", info.Name, init.Name.Name)
			continue
		}
		if !compatible(valueType, declared) {
			c.errorf(init, "typechecker: field '%s' of struct '%s' is %s, expected %s",
				init.Name.Name, info.Name, valueType.Name(), declared.Name())
		}
	}
	return NamedType{TypeName: name}
}
