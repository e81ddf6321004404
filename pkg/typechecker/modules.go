package typechecker

// builtinModules holds the signature tables for the standard import
// specifiers. These resolve without touching the filesystem, so the
// checker knows the standard surface even in an unsaved buffer.
var builtinModules = map[string]map[string]*FunctionSig{
	"std/math": {
		"sqrt":  sig1("sqrt", "x", FloatType{}, FloatType{}),
		"abs":   sig1("abs", "x", FloatType{}, FloatType{}),
		"floor": sig1("floor", "x", FloatType{}, IntType{}),
		"ceil":  sig1("ceil", "x", FloatType{}, IntType{}),
		"pow":   sig2("pow", "base", FloatType{}, "exp", FloatType{}, FloatType{}),
		"min":   sig2("min", "a", FloatType{}, "b", FloatType{}, FloatType{}),
		"max":   sig2("max", "a", FloatType{}, "b", FloatType{}, FloatType{}),
	},
	"std/io": {
		"print": {
			Name:     "print",
			Params:   []ParamSig{{Name: "values", Type: AnyType{}}},
			Return:   UnitType{},
			Variadic: true,
		},
		"println": {
			Name:     "println",
			Params:   []ParamSig{{Name: "values", Type: AnyType{}}},
			Return:   UnitType{},
			Variadic: true,
		},
		"read_line":  {Name: "read_line", Params: []ParamSig{}, Return: StringType{}},
		"read_file":  sig1("read_file", "path", StringType{}, StringType{}),
		"write_file": sig2("write_file", "path", StringType{}, "content", StringType{}, BoolType{}),
	},
	"std/strings": {
		"upper":    sig1("upper", "s", StringType{}, StringType{}),
		"lower":    sig1("lower", "s", StringType{}, StringType{}),
		"trim":     sig1("trim", "s", StringType{}, StringType{}),
		"split":    sig2("split", "s", StringType{}, "sep", StringType{}, ArrayType{Element: StringType{}}),
		"join":     sig2("join", "parts", ArrayType{Element: StringType{}}, "sep", StringType{}, StringType{}),
		"contains": sig2("contains", "s", StringType{}, "sub", StringType{}, BoolType{}),
		"replace": {
			Name: "replace",
			Params: []ParamSig{
				{Name: "s", Type: StringType{}},
				{Name: "from", Type: StringType{}},
				{Name: "to", Type: StringType{}},
			},
			Return: StringType{},
		},
	},
	"std/list": {
		"range":  sig2("range", "from", IntType{}, "to", IntType{}, ArrayType{Element: IntType{}}),
		"repeat": sig2("repeat", "value", AnyType{}, "count", IntType{}, ArrayType{Element: AnyType{}}),
		"sum":    sig1("sum", "values", ArrayType{Element: FloatType{}}, FloatType{}),
		"zip": sig2("zip",
			"left", ArrayType{Element: AnyType{}},
			"right", ArrayType{Element: AnyType{}},
			ArrayType{Element: TupleType{Elements: []Type{AnyType{}, AnyType{}}}}),
	},
}

func sig1(name, p string, pt, ret Type) *FunctionSig {
	return &FunctionSig{Name: name, Params: []ParamSig{{Name: p, Type: pt}}, Return: ret}
}

func sig2(name, p1 string, t1 Type, p2 string, t2 Type, ret Type) *FunctionSig {
	return &FunctionSig{
		Name:   name,
		Params: []ParamSig{{Name: p1, Type: t1}, {Name: p2, Type: t2}},
		Return: ret,
	}
}
