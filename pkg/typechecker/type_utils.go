package typechecker

func isAny(t Type) bool {
	_, ok := t.(AnyType)
	return ok
}

func isNever(t Type) bool {
	_, ok := t.(NeverType)
	return ok
}

func isInt(t Type) bool {
	_, ok := t.(IntType)
	return ok
}

func isFloat(t Type) bool {
	_, ok := t.(FloatType)
	return ok
}

func isString(t Type) bool {
	_, ok := t.(StringType)
	return ok
}

func isNumeric(t Type) bool { return isInt(t) || isFloat(t) }

// sameType reports structural equality. Rendered names are canonical
// for every type shape, so comparing them is exact.
func sameType(a, b Type) bool { return a.Name() == b.Name() }

// compatible reports whether a value of type actual may stand in for
// expected. Any accepts and provides everything, Never provides
// everything, Int and Float accept each other, containers recurse
// covariantly, and union membership is checked per member.
func compatible(actual, expected Type) bool {
	if isAny(actual) || isAny(expected) {
		return true
	}
	if isNever(actual) {
		return true
	}
	if u, ok := actual.(UnionType); ok {
		if _, alsoUnion := expected.(UnionType); !alsoUnion {
			for _, m := range u.Members {
				if !compatible(m, expected) {
					return false
				}
			}
			return true
		}
	}
	switch exp := expected.(type) {
	case UnitType:
		_, ok := actual.(UnitType)
		return ok
	case IntType:
		return isNumeric(actual)
	case FloatType:
		return isNumeric(actual)
	case BoolType:
		_, ok := actual.(BoolType)
		return ok
	case StringType:
		return isString(actual)
	case NeverType:
		return isNever(actual)
	case ArrayType:
		act, ok := actual.(ArrayType)
		return ok && compatible(act.Element, exp.Element)
	case MapType:
		act, ok := actual.(MapType)
		return ok && compatible(act.Key, exp.Key) && compatible(act.Value, exp.Value)
	case OptionalType:
		if act, ok := actual.(OptionalType); ok {
			return compatible(act.Inner, exp.Inner)
		}
		// A plain value coerces into the optional that wraps it.
		return compatible(actual, exp.Inner)
	case TupleType:
		act, ok := actual.(TupleType)
		if !ok || len(act.Elements) != len(exp.Elements) {
			return false
		}
		for i := range exp.Elements {
			if !compatible(act.Elements[i], exp.Elements[i]) {
				return false
			}
		}
		return true
	case FunctionType:
		act, ok := actual.(FunctionType)
		if !ok || len(act.Params) != len(exp.Params) {
			return false
		}
		for i := range exp.Params {
			if !compatible(exp.Params[i], act.Params[i]) {
				return false
			}
		}
		actRet, expRet := act.Return, exp.Return
		if actRet == nil {
			actRet = UnitType{}
		}
		if expRet == nil {
			expRet = UnitType{}
		}
		return compatible(actRet, expRet)
	case NamedType:
		act, ok := actual.(NamedType)
		return ok && act.TypeName == exp.TypeName
	case GenericType:
		act, ok := actual.(GenericType)
		if !ok || act.Base != exp.Base || len(act.Args) != len(exp.Args) {
			return false
		}
		for i := range exp.Args {
			if !compatible(act.Args[i], exp.Args[i]) {
				return false
			}
		}
		return true
	case UnionType:
		if act, ok := actual.(UnionType); ok {
			for _, m := range act.Members {
				if !compatible(m, expected) {
					return false
				}
			}
			return true
		}
		for _, m := range exp.Members {
			if compatible(actual, m) {
				return true
			}
		}
		return false
	}
	return false
}

// unionType merges the types of two control-flow branches. An Any or
// Never operand defers to the other side; identical operands collapse;
// anything else forms a union.
func unionType(a, b Type) Type {
	if isAny(a) || isNever(a) {
		return b
	}
	if isAny(b) || isNever(b) {
		return a
	}
	if sameType(a, b) {
		return a
	}
	return makeUnion(a, b)
}

// makeUnion flattens nested unions and dedupes members, collapsing a
// single survivor back to a plain type.
func makeUnion(types ...Type) Type {
	var members []Type
	seen := map[string]bool{}
	var add func(t Type)
	add = func(t Type) {
		if u, ok := t.(UnionType); ok {
			for _, m := range u.Members {
				add(m)
			}
			return
		}
		name := t.Name()
		if seen[name] {
			return
		}
		seen[name] = true
		members = append(members, t)
	}
	for _, t := range types {
		add(t)
	}
	if len(members) == 1 {
		return members[0]
	}
	return UnionType{Members: members}
}
