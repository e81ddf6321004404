package typechecker

import (
	"fmt"
	"strconv"
	"strings"

	"quill/frontend-go/pkg/ast"
)

type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
)

// Diagnostic is a single checker finding. Line is 1-indexed into the
// source given to SetSource; 0 means the line could not be attributed.
// Hint, when set, suggests a fix.
type Diagnostic struct {
	Severity DiagnosticSeverity `json:"severity"`
	Message  string             `json:"message"`
	Line     int                `json:"line"`
	Hint     string             `json:"hint,omitempty"`
}

func (c *Checker) errorf(node ast.Node, format string, args ...any) {
	c.report(SeverityError, node, "", format, args...)
}

func (c *Checker) errorWithHint(node ast.Node, hint, format string, args ...any) {
	c.report(SeverityError, node, hint, format, args...)
}

func (c *Checker) warnf(node ast.Node, format string, args ...any) {
	c.report(SeverityWarning, node, "", format, args...)
}

func (c *Checker) warnWithHint(node ast.Node, hint, format string, args ...any) {
	c.report(SeverityWarning, node, hint, format, args...)
}

func (c *Checker) report(severity DiagnosticSeverity, node ast.Node, hint, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
		Line:     c.lineOf(node),
		Hint:     hint,
	})
}

// lineOf attributes node to a source line by scanning for a
// distinctive snippet of its text. The first occurrence wins, so an
// identical earlier snippet can misattribute; that is accepted, the
// result is a line hint rather than a span.
func (c *Checker) lineOf(node ast.Node) int {
	if c.source == "" || node == nil {
		return 0
	}
	needle := searchNeedle(node)
	if needle == "" {
		return 0
	}
	idx := strings.Index(c.source, needle)
	if idx < 0 {
		return 0
	}
	return 1 + strings.Count(c.source[:idx], "\n")
}

// searchNeedle picks the snippet used to locate node in the source.
// Composite nodes defer to their most identifying child.
func searchNeedle(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.IntegerLiteral:
		return strconv.FormatInt(n.Value, 10)
	case *ast.FloatLiteral:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *ast.StringLiteral:
		return `"` + n.Value + `"`
	case *ast.BooleanLiteral:
		return strconv.FormatBool(n.Value)
	case *ast.FunctionDefinition:
		return "fn " + n.ID.Name
	case *ast.FunctionParameter:
		return n.Name.Name
	case *ast.StructDefinition:
		return "struct " + n.ID.Name
	case *ast.UnionDefinition:
		return "union " + n.ID.Name
	case *ast.AliasDefinition:
		return "alias " + n.ID.Name
	case *ast.TraitDefinition:
		return "trait " + n.ID.Name
	case *ast.ImplDefinition:
		return "impl " + n.Target.Name
	case *ast.ImportStatement:
		return `"` + n.Path + `"`
	case *ast.LetStatement:
		if name := firstPatternName(n.Pattern); name != "" {
			return "let " + name
		}
		return "let"
	case *ast.ReturnStatement:
		return "return"
	case *ast.CallExpression:
		return searchNeedle(n.Callee)
	case *ast.MemberAccessExpression:
		return searchNeedle(n.Member)
	case *ast.IndexExpression:
		return searchNeedle(n.Object)
	case *ast.BinaryExpression:
		return searchNeedle(n.Left)
	case *ast.UnaryExpression:
		return searchNeedle(n.Operand)
	case *ast.AssignmentExpression:
		if t, ok := n.Target.(ast.Node); ok {
			return searchNeedle(t)
		}
	case *ast.StructLiteral:
		return n.Name.Name
	case *ast.StructFieldInitializer:
		return n.Name.Name
	case *ast.ArrayLiteral:
		if len(n.Elements) > 0 {
			return searchNeedle(n.Elements[0])
		}
		return "["
	case *ast.TupleLiteral:
		if len(n.Elements) > 0 {
			return searchNeedle(n.Elements[0])
		}
	case *ast.MapLiteral:
		return "#{"
	case *ast.LambdaExpression:
		if len(n.Params) > 0 {
			return n.Params[0].Name.Name
		}
		return searchNeedle(n.Body)
	case *ast.IfExpression:
		return searchNeedle(n.Cond)
	case *ast.WhileLoop:
		return searchNeedle(n.Cond)
	case *ast.ForLoop:
		return "for " + n.Binding.Name
	case *ast.MatchExpression:
		return searchNeedle(n.Subject)
	case *ast.BlockExpression:
		if len(n.Statements) > 0 {
			return searchNeedle(n.Statements[0])
		}
	case *ast.VariantPattern:
		return n.Name.Name
	case *ast.UnionVariant:
		return n.Name.Name
	}
	return ""
}

func firstPatternName(pat ast.Pattern) string {
	switch p := pat.(type) {
	case *ast.Identifier:
		return p.Name
	case *ast.TuplePattern:
		for _, el := range p.Elements {
			if name := firstPatternName(el); name != "" {
				return name
			}
		}
	}
	return ""
}
