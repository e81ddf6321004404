package typechecker

import (
	"quill/frontend-go/pkg/ast"
)

// checkMemberAccess projects a member out of a value: struct fields,
// tuple components by position, methods as bound callables, and the
// keys/values views of a map. Anything unknown is Any.
func (c *Checker) checkMemberAccess(env *Environment, m *ast.MemberAccessExpression) Type {
	objectType := c.checkExpression(env, m.Object)
	if idx, ok := m.Member.(*ast.IntegerLiteral); ok {
		if tup, ok := objectType.(TupleType); ok {
			if idx.Value >= 0 && int(idx.Value) < len(tup.Elements) {
				return tup.Elements[idx.Value]
			}
		}
		return AnyType{}
	}
	member, ok := m.Member.(*ast.Identifier)
	if !ok {
		return AnyType{}
	}
	switch obj := objectType.(type) {
	case NamedType:
		return c.namedMember(m, obj.TypeName, member.Name)
	case MapType:
		switch member.Name {
		case "keys":
			return ArrayType{Element: obj.Key}
		case "values":
			return ArrayType{Element: obj.Value}
		}
	}
	return AnyType{}
}

// namedMember looks up a field, then a method, on a declared type.
// On a type the module never declared everything is Any; on a known
// one a missing member is a hard finding.
func (c *Checker) namedMember(node ast.Node, typeName, member string) Type {
	info, knownStruct := c.decls.Structs[typeName]
	if knownStruct {
		if ft, ok := info.FieldType(member); ok {
			return ft
		}
	}
	if sig, ok := c.decls.methodSig(typeName, member); ok {
		return sig.Type()
	}
	_, knownUnion := c.decls.Unions[typeName]
	if knownStruct || knownUnion {
		c.errorf(node, "typechecker: type '%s' has no member '%s'", typeName, member)
	}
	return AnyType{}
}

// checkMethodCall handles recv.name(args): the builtin catalogue
// first, then declared methods, then any callable member.
func (c *Checker) checkMethodCall(env *Environment, member *ast.MemberAccessExpression, call *ast.CallExpression) Type {
	name, ok := member.Member.(*ast.Identifier)
	if !ok {
		// A positional component may still hold a callable.
		return c.checkCallOf(env, call, "", c.checkMemberAccess(env, member))
	}
	recv := c.checkExpression(env, member.Object)
	if named, isNamed := recv.(NamedType); isNamed {
		if sig, ok := c.decls.methodSig(named.TypeName, name.Name); ok {
			return c.checkArgsAgainst(env, call, sig, call.Args)
		}
	}
	if transform, ok := builtinOps[name.Name]; ok {
		return transform(recv, c.checkArgTypes(env, call.Args))
	}
	memberType := c.namedMemberOrAny(env, member, recv, name.Name)
	return c.checkCallOf(env, call, name.Name, memberType)
}

// namedMemberOrAny projects a member for a call without re-checking
// the receiver expression.
func (c *Checker) namedMemberOrAny(env *Environment, m *ast.MemberAccessExpression, recv Type, member string) Type {
	if named, ok := recv.(NamedType); ok {
		return c.namedMember(m, named.TypeName, member)
	}
	return AnyType{}
}

// checkIndex types container[index]. Index type mismatches stay
// quiet; only the projected element type matters here.
func (c *Checker) checkIndex(env *Environment, idx *ast.IndexExpression) Type {
	objectType := c.checkExpression(env, idx.Object)
	c.checkExpression(env, idx.Index)
	switch obj := objectType.(type) {
	case ArrayType:
		return obj.Element
	case MapType:
		return obj.Value
	case StringType:
		return StringType{}
	case TupleType:
		if lit, ok := idx.Index.(*ast.IntegerLiteral); ok {
			if lit.Value >= 0 && int(lit.Value) < len(obj.Elements) {
				return obj.Elements[lit.Value]
			}
		}
	}
	return AnyType{}
}
