package typechecker

import (
	"os"
	"path/filepath"
	"strings"

	"quill/frontend-go/pkg/ast"
)

const sourceExtension = ".quill"

// applyImport resolves one import statement and binds the names it
// introduces. Resolution failures are never diagnostics: a specifier
// that cannot be found, read, or parsed binds its names as Any and
// the rest of the module checks normally.
func (c *Checker) applyImport(env *Environment, imp *ast.ImportStatement) {
	if table, ok := builtinModules[imp.Path]; ok {
		c.bindBuiltinImport(env, imp, table)
		return
	}
	exports := c.extractImport(imp.Path)
	if imp.Alias != nil {
		// Namespace members resolve dynamically through the alias.
		env.Define(imp.Alias.Name, AnyType{})
	}
	if len(imp.Selectors) == 0 {
		if imp.Alias == nil && exports != nil {
			c.mergeExports(env, exports)
		}
		return
	}
	for _, sel := range imp.Selectors {
		bound := sel.Name.Name
		if sel.Alias != nil {
			bound = sel.Alias.Name
		}
		if exports == nil {
			env.Define(bound, AnyType{})
			continue
		}
		c.bindExport(env, exports, sel.Name.Name, bound)
	}
}

func (c *Checker) bindBuiltinImport(env *Environment, imp *ast.ImportStatement, table map[string]*FunctionSig) {
	if imp.Alias != nil {
		env.Define(imp.Alias.Name, AnyType{})
	}
	if len(imp.Selectors) == 0 {
		if imp.Alias == nil {
			for name, sig := range table {
				env.Define(name, sig.Type())
			}
		}
		return
	}
	for _, sel := range imp.Selectors {
		bound := sel.Name.Name
		if sel.Alias != nil {
			bound = sel.Alias.Name
		}
		if sig, ok := table[sel.Name.Name]; ok {
			env.Define(bound, sig.Type())
		} else {
			env.Define(bound, AnyType{})
		}
	}
}

// extractImport maps a specifier to the exporting file's declaration
// table, or nil when the import cannot resolve.
func (c *Checker) extractImport(spec string) *Declarations {
	path := c.resolveImportPath(spec)
	if path == "" {
		return nil
	}
	return c.extractModule(path)
}

// resolveImportPath turns a specifier into a file path: relative
// specifiers resolve against the current file, bare ones against the
// search roots keyed by their first segment. The source extension is
// appended when missing; a bare root alone means its lib file.
func (c *Checker) resolveImportPath(spec string) string {
	if strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") {
		if c.file == "" {
			return ""
		}
		p := filepath.Join(filepath.Dir(c.file), spec)
		if filepath.Ext(p) == "" {
			p += sourceExtension
		}
		return filepath.Clean(p)
	}
	first, rest, _ := strings.Cut(spec, "/")
	root, ok := c.roots[first]
	if !ok {
		return ""
	}
	if rest == "" {
		rest = "lib"
	}
	p := filepath.Join(root, rest)
	if filepath.Ext(p) == "" {
		p += sourceExtension
	}
	return p
}

// extractModule parses path and collects its declarations without
// running inference over its bodies. Successful extractions are
// cached for the checker's lifetime; a path already being extracted
// short-circuits to nil, which breaks import cycles by letting the
// back edge degrade to Any.
func (c *Checker) extractModule(path string) *Declarations {
	if cached, ok := c.moduleCache[path]; ok {
		return cached
	}
	if c.resolving[path] || c.parse == nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	mod, err := c.parse(string(data), path)
	if err != nil {
		return nil
	}
	c.resolving[path] = true
	defer delete(c.resolving, path)

	sub := &Checker{
		file:        path,
		parse:       c.parse,
		roots:       c.roots,
		decls:       newDeclarations(),
		global:      NewEnvironment(nil),
		moduleCache: c.moduleCache,
		resolving:   c.resolving,
	}
	sub.collectDeclarations(mod)
	c.moduleCache[path] = sub.decls
	return sub.decls
}

// mergeExports pulls a whole export table into the current module for
// a bare import. Local declarations shadow imported ones.
func (c *Checker) mergeExports(env *Environment, exports *Declarations) {
	for name, sig := range exports.Functions {
		if _, taken := c.decls.Functions[name]; taken {
			continue
		}
		c.decls.Functions[name] = sig
		if _, bound := env.Lookup(name); !bound {
			env.Define(name, sig.Type())
		}
	}
	for name, info := range exports.Structs {
		if _, taken := c.decls.Structs[name]; !taken {
			c.decls.Structs[name] = info
		}
	}
	for name, info := range exports.Unions {
		if _, taken := c.decls.Unions[name]; !taken {
			c.decls.Unions[name] = info
		}
	}
	for name, target := range exports.Aliases {
		if _, taken := c.decls.Aliases[name]; !taken {
			c.decls.Aliases[name] = target
		}
	}
	for name, ref := range exports.variants {
		if _, taken := c.decls.variants[name]; !taken {
			c.decls.variants[name] = ref
		}
	}
	for typeName, methods := range exports.Methods {
		table := c.decls.Methods[typeName]
		if table == nil {
			table = map[string]*FunctionSig{}
			c.decls.Methods[typeName] = table
		}
		for name, sig := range methods {
			if _, taken := table[name]; !taken {
				table[name] = sig
			}
		}
	}
}

// bindExport brings one selected name across, under its alias when
// one was given. A name the exporting module does not declare binds
// as Any.
func (c *Checker) bindExport(env *Environment, exports *Declarations, srcName, boundName string) {
	if sig, ok := exports.Functions[srcName]; ok {
		if _, taken := c.decls.Functions[boundName]; !taken {
			bound := *sig
			bound.Name = boundName
			c.decls.Functions[boundName] = &bound
		}
		env.Define(boundName, sig.Type())
		return
	}
	if info, ok := exports.Structs[srcName]; ok {
		// Nominal identity follows the declaring name; an alias is
		// just another way to write it.
		if _, taken := c.decls.Structs[srcName]; !taken {
			c.decls.Structs[srcName] = info
			if methods, ok := exports.Methods[srcName]; ok {
				c.decls.Methods[srcName] = methods
			}
		}
		if boundName != srcName {
			c.decls.Aliases[boundName] = NamedType{TypeName: srcName}
		}
		return
	}
	if info, ok := exports.Unions[srcName]; ok {
		if _, taken := c.decls.Unions[srcName]; !taken {
			c.decls.Unions[srcName] = info
			for i := range info.Variants {
				v := &info.Variants[i]
				if _, taken := c.decls.variants[v.Name]; !taken {
					c.decls.variants[v.Name] = &variantRef{Union: info, Variant: v}
				}
			}
		}
		if boundName != srcName {
			c.decls.Aliases[boundName] = NamedType{TypeName: srcName}
		}
		return
	}
	if target, ok := exports.Aliases[srcName]; ok {
		if _, taken := c.decls.Aliases[boundName]; !taken {
			c.decls.Aliases[boundName] = target
		}
		return
	}
	env.Define(boundName, AnyType{})
}
