package typechecker

import (
	"quill/frontend-go/pkg/ast"
)

// ParamSig is one parameter of a registered signature. A nil Type
// means the parameter was written without an annotation.
type ParamSig struct {
	Name string
	Type Type
}

// FunctionSig is a callable's registered signature. Return is nil
// when no return type was declared.
type FunctionSig struct {
	Name     string
	Params   []ParamSig
	Return   Type
	Variadic bool
}

// Type renders the signature as a value type, substituting Any for
// unannotated positions.
func (s *FunctionSig) Type() FunctionType {
	params := make([]Type, len(s.Params))
	for i, p := range s.Params {
		if p.Type != nil {
			params[i] = p.Type
		} else {
			params[i] = AnyType{}
		}
	}
	ret := s.Return
	if ret == nil {
		ret = AnyType{}
	}
	return FunctionType{Params: params, Return: ret, Variadic: s.Variadic}
}

type FieldInfo struct {
	Name string
	Type Type
}

type StructInfo struct {
	Name   string
	Fields []FieldInfo
}

func (s *StructInfo) FieldType(name string) (Type, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

type VariantInfo struct {
	Name    string
	Payload []Type
}

type UnionInfo struct {
	Name     string
	Variants []VariantInfo
}

func (u *UnionInfo) Variant(name string) (*VariantInfo, bool) {
	for i := range u.Variants {
		if u.Variants[i].Name == name {
			return &u.Variants[i], true
		}
	}
	return nil, false
}

// variantRef pairs a variant with the union that declares it, for
// resolving a bare variant name to its owner.
type variantRef struct {
	Union   *UnionInfo
	Variant *VariantInfo
}

// Declarations is the forward-reference index built before inference
// runs. Extraction of imported modules produces the same structure.
type Declarations struct {
	Functions map[string]*FunctionSig
	Structs   map[string]*StructInfo
	Unions    map[string]*UnionInfo
	Aliases   map[string]Type
	Methods   map[string]map[string]*FunctionSig

	variants  map[string]*variantRef
	declNodes map[string]ast.Node
}

func newDeclarations() *Declarations {
	return &Declarations{
		Functions: map[string]*FunctionSig{},
		Structs:   map[string]*StructInfo{},
		Unions:    map[string]*UnionInfo{},
		Aliases:   map[string]Type{},
		Methods:   map[string]map[string]*FunctionSig{},
		variants:  map[string]*variantRef{},
		declNodes: map[string]ast.Node{},
	}
}

func (d *Declarations) variantNamed(name string) (*variantRef, bool) {
	ref, ok := d.variants[name]
	return ref, ok
}

func (d *Declarations) methodSig(typeName, method string) (*FunctionSig, bool) {
	table, ok := d.Methods[typeName]
	if !ok {
		return nil, false
	}
	sig, ok := table[method]
	return sig, ok
}

// collectDeclarations indexes every top-level declaration so later
// statements can reference earlier and later ones alike. Names are
// claimed first and imports applied second, so local declarations
// shadow imported ones and signatures lower down may use both local
// and imported type names.
func (c *Checker) collectDeclarations(mod *ast.Module) {
	for _, stmt := range mod.Statements {
		c.registerDeclName(stmt)
	}
	for _, stmt := range mod.Statements {
		if imp, ok := stmt.(*ast.ImportStatement); ok {
			c.applyImport(c.global, imp)
		}
	}
	for _, stmt := range mod.Statements {
		c.fillDeclaration(stmt)
	}
}

// declare claims name in the shared declaration namespace, reporting
// a duplicate against the later site.
func (c *Checker) declare(name string, node ast.Node) bool {
	if _, taken := c.decls.declNodes[name]; taken {
		c.errorf(node, "typechecker: duplicate declaration '%s'", name)
		return false
	}
	c.decls.declNodes[name] = node
	return true
}

func (c *Checker) registerDeclName(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.FunctionDefinition:
		if c.declare(s.ID.Name, s) {
			c.decls.Functions[s.ID.Name] = &FunctionSig{Name: s.ID.Name}
		}
	case *ast.StructDefinition:
		if c.declare(s.ID.Name, s) {
			c.decls.Structs[s.ID.Name] = &StructInfo{Name: s.ID.Name}
		}
	case *ast.UnionDefinition:
		if c.declare(s.ID.Name, s) {
			c.decls.Unions[s.ID.Name] = &UnionInfo{Name: s.ID.Name}
		}
	case *ast.AliasDefinition:
		c.declare(s.ID.Name, s)
	}
}

func (c *Checker) fillDeclaration(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.FunctionDefinition:
		if sig, ok := c.decls.Functions[s.ID.Name]; ok && sig.Params == nil {
			*sig = c.signatureOf(s.ID.Name, s.Params, s.ReturnType, false)
		}
	case *ast.StructDefinition:
		info, ok := c.decls.Structs[s.ID.Name]
		if !ok || info.Fields != nil {
			return
		}
		info.Fields = []FieldInfo{}
		for _, f := range s.Fields {
			info.Fields = append(info.Fields, FieldInfo{
				Name: f.Name.Name,
				Type: c.resolveTypeExpression(f.FieldType),
			})
		}
	case *ast.UnionDefinition:
		info, ok := c.decls.Unions[s.ID.Name]
		if !ok || info.Variants != nil {
			return
		}
		info.Variants = []VariantInfo{}
		for _, v := range s.Variants {
			payload := make([]Type, len(v.Payload))
			for i, p := range v.Payload {
				payload[i] = c.resolveTypeExpression(p)
			}
			info.Variants = append(info.Variants, VariantInfo{Name: v.Name.Name, Payload: payload})
		}
		for i := range info.Variants {
			v := &info.Variants[i]
			if _, taken := c.decls.variants[v.Name]; taken {
				c.errorf(s, "typechecker: duplicate variant '%s'", v.Name)
				continue
			}
			c.decls.variants[v.Name] = &variantRef{Union: info, Variant: v}
		}
	case *ast.AliasDefinition:
		// Aliases resolve eagerly, so an alias of an alias must come
		// after its target.
		c.decls.Aliases[s.ID.Name] = c.resolveTypeExpression(s.Target)
	case *ast.ImplDefinition:
		c.fillImplMethods(s)
	}
}

// fillImplMethods registers method signatures under the impl target,
// dropping a leading self parameter from the callable shape.
func (c *Checker) fillImplMethods(impl *ast.ImplDefinition) {
	target := impl.Target.Name
	table := c.decls.Methods[target]
	if table == nil {
		table = map[string]*FunctionSig{}
		c.decls.Methods[target] = table
	}
	for _, m := range impl.Methods {
		if _, taken := table[m.ID.Name]; taken {
			c.errorf(m, "typechecker: duplicate method '%s' on '%s'", m.ID.Name, target)
			continue
		}
		sig := c.signatureOf(m.ID.Name, m.Params, m.ReturnType, true)
		table[m.ID.Name] = &sig
	}
}

func (c *Checker) signatureOf(name string, params []*ast.FunctionParameter, ret ast.TypeExpression, dropSelf bool) FunctionSig {
	sig := FunctionSig{Name: name, Params: []ParamSig{}}
	for i, p := range params {
		if dropSelf && i == 0 && p.Name.Name == "self" {
			continue
		}
		var pt Type
		if p.ParamType != nil {
			pt = c.resolveTypeExpression(p.ParamType)
		}
		sig.Params = append(sig.Params, ParamSig{Name: p.Name.Name, Type: pt})
		if p.Variadic {
			sig.Variadic = true
		}
	}
	if ret != nil {
		sig.Return = c.resolveTypeExpression(ret)
	}
	return sig
}

// resolveTypeExpression maps annotation syntax to checker types. A
// nil annotation and any unknown name both come back usable, never as
// an error; resolution problems are the program author's to notice
// elsewhere.
func (c *Checker) resolveTypeExpression(expr ast.TypeExpression) Type {
	if expr == nil {
		return AnyType{}
	}
	switch t := expr.(type) {
	case *ast.SimpleTypeExpression:
		return c.resolveTypeName(t.Name.Name)
	case *ast.GenericTypeExpression:
		args := make([]Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = c.resolveTypeExpression(a)
		}
		switch t.Base.Name {
		case "Array":
			if len(args) == 1 {
				return ArrayType{Element: args[0]}
			}
		case "Map":
			if len(args) == 2 {
				return MapType{Key: args[0], Value: args[1]}
			}
		case "Option":
			if len(args) == 1 {
				return OptionalType{Inner: args[0]}
			}
		}
		return GenericType{Base: t.Base.Name, Args: args}
	case *ast.OptionalTypeExpression:
		return OptionalType{Inner: c.resolveTypeExpression(t.Inner)}
	case *ast.TupleTypeExpression:
		elems := make([]Type, len(t.Elements))
		for i, el := range t.Elements {
			elems[i] = c.resolveTypeExpression(el)
		}
		return TupleType{Elements: elems}
	case *ast.FunctionTypeExpression:
		params := make([]Type, len(t.ParamTypes))
		for i, p := range t.ParamTypes {
			params[i] = c.resolveTypeExpression(p)
		}
		var ret Type = UnitType{}
		if t.ReturnType != nil {
			ret = c.resolveTypeExpression(t.ReturnType)
		}
		return FunctionType{Params: params, Return: ret}
	case *ast.UnionTypeExpression:
		members := make([]Type, len(t.Members))
		for i, m := range t.Members {
			members[i] = c.resolveTypeExpression(m)
		}
		return makeUnion(members...)
	}
	return AnyType{}
}

func (c *Checker) resolveTypeName(name string) Type {
	switch name {
	case "Unit":
		return UnitType{}
	case "Int":
		return IntType{}
	case "Float":
		return FloatType{}
	case "Bool":
		return BoolType{}
	case "String":
		return StringType{}
	case "Any":
		return AnyType{}
	case "Never":
		return NeverType{}
	}
	if target, ok := c.decls.Aliases[name]; ok {
		return target
	}
	return NamedType{TypeName: name}
}
