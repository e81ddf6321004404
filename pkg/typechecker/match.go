package typechecker

import (
	"quill/frontend-go/pkg/ast"
)

// checkMatch types a match as the union of its arm types. Each arm
// checks in a child scope holding whatever its pattern bound.
func (c *Checker) checkMatch(env *Environment, m *ast.MatchExpression) Type {
	subjectType := c.checkExpression(env, m.Subject)
	var result Type
	for _, clause := range m.Clauses {
		armEnv := env.Extend()
		c.bindMatchPattern(armEnv, clause.Pattern, subjectType)
		armType := c.checkExpression(armEnv, clause.Body)
		if result == nil {
			result = armType
		} else {
			result = unionType(result, armType)
		}
	}
	if result == nil {
		return UnitType{}
	}
	return result
}

// bindMatchPattern introduces pattern bindings, narrowing where the
// pattern reveals structure: a variant pattern binds its payload
// types, a tuple pattern binds componentwise against a tuple subject.
// A bare name is a nullary variant when one is declared, otherwise a
// binding that carries the subject's type into the arm.
func (c *Checker) bindMatchPattern(env *Environment, pat ast.Pattern, subject Type) {
	switch p := pat.(type) {
	case *ast.WildcardPattern:
	case *ast.LiteralPattern:
	case *ast.Identifier:
		if ref, ok := c.decls.variantNamed(p.Name); ok && len(ref.Variant.Payload) == 0 {
			return
		}
		env.Define(p.Name, subject)
	case *ast.TuplePattern:
		tup, ok := subject.(TupleType)
		if ok && len(tup.Elements) == len(p.Elements) {
			for i, el := range p.Elements {
				c.bindMatchPattern(env, el, tup.Elements[i])
			}
			return
		}
		for _, el := range p.Elements {
			c.bindMatchPattern(env, el, AnyType{})
		}
	case *ast.VariantPattern:
		ref, ok := c.decls.variantNamed(p.Name.Name)
		if !ok {
			for _, el := range p.Elements {
				c.bindMatchPattern(env, el, AnyType{})
			}
			return
		}
		payload := ref.Variant.Payload
		if len(p.Elements) != len(payload) {
			c.errorf(p, "typechecker: variant '%s' expects %d payload value(s), got %d",
				p.Name.Name, len(payload), len(p.Elements))
			for _, el := range p.Elements {
				c.bindMatchPattern(env, el, AnyType{})
			}
			return
		}
		for i, el := range p.Elements {
			c.bindMatchPattern(env, el, payload[i])
		}
	}
}
