package typechecker

import (
	"quill/frontend-go/pkg/ast"
)

// checkBinary types an operator application. Operand mismatches do
// not produce diagnostics: the result degrades to Any and surfaces
// later if it collides with a declaration. Comparisons and logical
// operators are Bool regardless of their operands.
func (c *Checker) checkBinary(env *Environment, b *ast.BinaryExpression) Type {
	left := c.checkExpression(env, b.Left)
	right := c.checkExpression(env, b.Right)
	switch b.Operator {
	case "+", "-", "*", "/", "%":
		return arithmeticType(b.Operator, left, right)
	case "==", "!=", "<", "<=", ">", ">=", "&&", "||":
		return BoolType{}
	}
	return AnyType{}
}

// arithmeticType is the operator truth table: Int only when both
// sides are Int, Float when a Float meets a numeric, String for +
// when either side is a String, and Any past the edge of the table.
func arithmeticType(op string, left, right Type) Type {
	if isAny(left) || isAny(right) {
		return AnyType{}
	}
	if op == "+" && (isString(left) || isString(right)) {
		return StringType{}
	}
	if isInt(left) && isInt(right) {
		return IntType{}
	}
	if isNumeric(left) && isNumeric(right) {
		return FloatType{}
	}
	return AnyType{}
}

func (c *Checker) checkUnary(env *Environment, u *ast.UnaryExpression) Type {
	operand := c.checkExpression(env, u.Operand)
	switch u.Operator {
	case "-":
		if isNumeric(operand) {
			return operand
		}
		return AnyType{}
	case "!":
		return BoolType{}
	}
	return AnyType{}
}

// checkAssignment types an assignment and re-binds or validates the
// target. Only annotation-backed targets can make it an error; an
// unannotated name simply flows to the new type.
func (c *Checker) checkAssignment(env *Environment, a *ast.AssignmentExpression) Type {
	valueType := c.checkExpression(env, a.Value)
	switch target := a.Target.(type) {
	case *ast.Identifier:
		binding, ok := env.Lookup(target.Name)
		if !ok {
			// First assignment introduces the name, script style.
			env.Define(target.Name, valueType)
			break
		}
		if binding.Annotated && !isAny(binding.Type) && !compatible(valueType, binding.Type) {
			c.errorf(a, "typechecker: cannot assign %s to '%s' declared as %s",
				valueType.Name(), target.Name, binding.Type.Name())
			break
		}
		env.Rebind(target.Name, valueType)
	case *ast.MemberAccessExpression:
		fieldType := c.checkMemberAccess(env, target)
		if !isAny(fieldType) && !compatible(valueType, fieldType) {
			c.errorf(a, "typechecker: cannot assign %s to a member of type %s",
				valueType.Name(), fieldType.Name())
		}
	case *ast.IndexExpression:
		// Element types may be wholly inferred, so mismatches here
		// stay silent; the container keeps its type.
		c.checkIndex(env, target)
	}
	return valueType
}
