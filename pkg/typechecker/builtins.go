package typechecker

// builtinTransform computes a builtin operation's result type from
// the receiver type and the remaining argument types. Both spellings
// route here: xs.sort() and sort(xs) see the same receiver.
type builtinTransform func(recv Type, args []Type) Type

// builtinOps is the catalogue of container and string operations the
// checker understands structurally. User declarations shadow these;
// call dispatch consults the scope chain and function table first.
var builtinOps = map[string]builtinTransform{
	"unwrap":    unwrapOp,
	"filter":    containerPreserving,
	"sort":      containerPreserving,
	"reverse":   containerPreserving,
	"slice":     containerPreserving,
	"concat":    containerPreserving,
	"push":      containerPreserving,
	"first":     elementOf,
	"last":      elementOf,
	"pop":       elementOf,
	"map":       mapOp,
	"transform": mapOp,
	"flatten":   flattenOp,
	"keys":      keysOp,
	"values":    valuesOp,
	"get":       getOp,
	"contains":  func(Type, []Type) Type { return BoolType{} },
	"len":       func(Type, []Type) Type { return IntType{} },
	"join":      func(Type, []Type) Type { return StringType{} },
}

// unwrapOp peels one optional layer, or the first type argument of a
// generic carrier like a Result.
func unwrapOp(recv Type, _ []Type) Type {
	switch t := recv.(type) {
	case OptionalType:
		return t.Inner
	case GenericType:
		if len(t.Args) > 0 {
			return t.Args[0]
		}
	}
	return AnyType{}
}

// containerPreserving keeps the receiver's container type intact, the
// shape of filter, sort and friends.
func containerPreserving(recv Type, _ []Type) Type {
	if _, ok := recv.(ArrayType); ok {
		return recv
	}
	if isString(recv) {
		return recv
	}
	return AnyType{}
}

func elementOf(recv Type, _ []Type) Type {
	switch t := recv.(type) {
	case ArrayType:
		return t.Element
	case StringType:
		return StringType{}
	}
	return AnyType{}
}

// mapOp projects the callback's return type into a fresh array. An
// untyped callback keeps the elements Any.
func mapOp(recv Type, args []Type) Type {
	if _, ok := recv.(ArrayType); !ok && !isAny(recv) {
		return AnyType{}
	}
	if len(args) > 0 {
		if fn, ok := args[0].(FunctionType); ok && fn.Return != nil {
			return ArrayType{Element: fn.Return}
		}
	}
	return ArrayType{Element: AnyType{}}
}

func flattenOp(recv Type, _ []Type) Type {
	arr, ok := recv.(ArrayType)
	if !ok {
		return AnyType{}
	}
	if inner, ok := arr.Element.(ArrayType); ok {
		return ArrayType{Element: inner.Element}
	}
	if isAny(arr.Element) {
		return ArrayType{Element: AnyType{}}
	}
	return arr
}

func keysOp(recv Type, _ []Type) Type {
	if m, ok := recv.(MapType); ok {
		return ArrayType{Element: m.Key}
	}
	return ArrayType{Element: AnyType{}}
}

func valuesOp(recv Type, _ []Type) Type {
	if m, ok := recv.(MapType); ok {
		return ArrayType{Element: m.Value}
	}
	return ArrayType{Element: AnyType{}}
}

func getOp(recv Type, _ []Type) Type {
	if m, ok := recv.(MapType); ok {
		return OptionalType{Inner: m.Value}
	}
	return AnyType{}
}
