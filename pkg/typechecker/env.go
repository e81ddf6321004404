package typechecker

// Binding is one scope entry. Annotated marks names introduced with
// an explicit type annotation; assignments to those are enforced
// instead of re-typing the name.
type Binding struct {
	Type      Type
	Annotated bool
}

// Environment is a lexical scope frame linked to its parent.
type Environment struct {
	parent  *Environment
	symbols map[string]Binding
}

func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, symbols: map[string]Binding{}}
}

func (e *Environment) Extend() *Environment { return NewEnvironment(e) }

func (e *Environment) Define(name string, t Type) {
	e.symbols[name] = Binding{Type: t}
}

func (e *Environment) DefineAnnotated(name string, t Type) {
	e.symbols[name] = Binding{Type: t, Annotated: true}
}

// Lookup walks the scope chain from innermost out.
func (e *Environment) Lookup(name string) (Binding, bool) {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.symbols[name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// Rebind retypes name in the frame that defines it, leaving annotated
// bindings untouched. It reports whether the name was in scope.
func (e *Environment) Rebind(name string, t Type) bool {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.symbols[name]; ok {
			if !b.Annotated {
				env.symbols[name] = Binding{Type: t}
			}
			return true
		}
	}
	return false
}
