package typechecker

import (
	"quill/frontend-go/pkg/ast"
)

// Contract clauses are checked, never evaluated. Each must type as
// Bool (or Any); ensures clauses additionally see a result binding of
// the declared return type and may snapshot entry state with old(e).

func boolish(t Type) bool {
	if isAny(t) {
		return true
	}
	_, ok := t.(BoolType)
	return ok
}

func (c *Checker) checkContracts(fnEnv *Environment, fn *ast.FunctionDefinition, declared Type) {
	for _, clause := range fn.Requires {
		t := c.checkExpression(fnEnv, clause)
		if !boolish(t) {
			c.errorf(clause, "typechecker: requires clause of function '%s' is %s, expected Bool",
				fn.ID.Name, t.Name())
		}
	}
	if len(fn.Ensures) == 0 {
		return
	}
	ensEnv := fnEnv.Extend()
	result := declared
	if result == nil {
		result = AnyType{}
	}
	ensEnv.Define("result", result)
	c.ensuresDepth++
	for _, clause := range fn.Ensures {
		t := c.checkExpression(ensEnv, clause)
		if !boolish(t) {
			c.errorf(clause, "typechecker: ensures clause of function '%s' is %s, expected Bool",
				fn.ID.Name, t.Name())
		}
	}
	c.ensuresDepth--
}

// checkInvariants validates an impl's invariant clauses with the
// target's fields in scope alongside self, the way the clauses read
// in source.
func (c *Checker) checkInvariants(env *Environment, impl *ast.ImplDefinition) {
	target := impl.Target.Name
	invEnv := env.Extend()
	invEnv.Define("self", NamedType{TypeName: target})
	if info, ok := c.decls.Structs[target]; ok {
		for _, f := range info.Fields {
			invEnv.Define(f.Name, f.Type)
		}
	}
	for _, clause := range impl.Invariants {
		t := c.checkExpression(invEnv, clause)
		if !boolish(t) {
			c.errorf(clause, "typechecker: invariant clause of impl '%s' is %s, expected Bool",
				target, t.Name())
		}
	}
}
