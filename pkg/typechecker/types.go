package typechecker

import (
	"fmt"
	"strings"
)

// Type is the checker's view of a quill type. Name returns the
// source-syntax rendering used in diagnostics.
type Type interface {
	Name() string
}

// UnitType is the type of (), of loops, and of blocks whose last
// statement is not an expression.
type UnitType struct{}

func (UnitType) Name() string { return "Unit" }

type IntType struct{}

func (IntType) Name() string { return "Int" }

type FloatType struct{}

func (FloatType) Name() string { return "Float" }

type BoolType struct{}

func (BoolType) Name() string { return "Bool" }

type StringType struct{}

func (StringType) Name() string { return "String" }

// AnyType is the gradual top type. Every type is compatible with Any
// in both directions, so untyped code flows through without noise.
type AnyType struct{}

func (AnyType) Name() string { return "Any" }

// NeverType is the bottom type for code paths that cannot produce a
// value. It satisfies every expected type.
type NeverType struct{}

func (NeverType) Name() string { return "Never" }

type ArrayType struct {
	Element Type
}

func (a ArrayType) Name() string { return fmt.Sprintf("Array<%s>", a.Element.Name()) }

type MapType struct {
	Key   Type
	Value Type
}

func (m MapType) Name() string { return fmt.Sprintf("Map<%s, %s>", m.Key.Name(), m.Value.Name()) }

type OptionalType struct {
	Inner Type
}

func (o OptionalType) Name() string {
	if _, ok := o.Inner.(UnionType); ok {
		return "(" + o.Inner.Name() + ")?"
	}
	return o.Inner.Name() + "?"
}

type TupleType struct {
	Elements []Type
}

func (t TupleType) Name() string {
	parts := make([]string, len(t.Elements))
	for i, el := range t.Elements {
		parts[i] = el.Name()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

type FunctionType struct {
	Params   []Type
	Return   Type
	Variadic bool
}

func (f FunctionType) Name() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Name()
	}
	if f.Variadic && len(parts) > 0 {
		parts[len(parts)-1] += "..."
	}
	ret := "Unit"
	if f.Return != nil {
		ret = f.Return.Name()
	}
	return fmt.Sprintf("fn(%s) -> %s", strings.Join(parts, ", "), ret)
}

// NamedType refers to a struct, union, trait, or unresolved type by
// name. Unknown names stay nominal rather than erroring, so partially
// written programs still check.
type NamedType struct {
	TypeName string
}

func (n NamedType) Name() string { return n.TypeName }

// GenericType is a named type applied to arguments, e.g. a
// user-declared Result<Int, String>. Array, Map and Option never
// appear here; resolution specializes them.
type GenericType struct {
	Base string
	Args []Type
}

func (g GenericType) Name() string {
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.Name()
	}
	return fmt.Sprintf("%s<%s>", g.Base, strings.Join(parts, ", "))
}

// UnionType holds at least two distinct member types. Construction
// goes through makeUnion, which flattens and dedupes.
type UnionType struct {
	Members []Type
}

func (u UnionType) Name() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.Name()
	}
	return strings.Join(parts, " | ")
}
