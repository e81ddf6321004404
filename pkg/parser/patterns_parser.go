package parser

import (
	"strconv"

	"quill/frontend-go/pkg/ast"
	"quill/frontend-go/pkg/lexer"
)

// parseBindingPattern accepts the patterns allowed on the left of a
// let: a name, _, or a tuple of binding patterns.
func (p *Parser) parseBindingPattern() (ast.Pattern, error) {
	switch p.cur.Kind {
	case lexer.Ident:
		name := p.cur.Lexeme
		p.next()
		if name == "_" {
			return ast.NewWildcardPattern(), nil
		}
		return ast.NewIdentifier(name), nil
	case lexer.LParen:
		p.next()
		var elements []ast.Pattern
		for !p.at(lexer.RParen) {
			element, err := p.parseBindingPattern()
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
			if !p.accept(lexer.Comma) {
				break
			}
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return ast.NewTuplePattern(elements), nil
	default:
		return nil, p.errorf("expected binding pattern, got %s", p.describe(p.cur))
	}
}

// parsePattern accepts match-clause patterns: wildcards, literals,
// bindings, tuples, and union variants with positional sub-patterns.
// A bare name doubles as a nullary variant pattern; the checker
// resolves which one it is.
func (p *Parser) parsePattern() (ast.Pattern, error) {
	switch p.cur.Kind {
	case lexer.Ident:
		name := p.cur.Lexeme
		line := p.cur.Line
		p.next()
		if name == "_" {
			return ast.NewWildcardPattern(), nil
		}
		if p.at(lexer.LParen) && p.cur.Line == line {
			p.next()
			var elements []ast.Pattern
			for !p.at(lexer.RParen) {
				element, err := p.parsePattern()
				if err != nil {
					return nil, err
				}
				elements = append(elements, element)
				if !p.accept(lexer.Comma) {
					break
				}
			}
			if _, err := p.expect(lexer.RParen); err != nil {
				return nil, err
			}
			return ast.NewVariantPattern(ast.NewIdentifier(name), elements), nil
		}
		return ast.NewIdentifier(name), nil

	case lexer.IntLit:
		value, err := strconv.ParseInt(p.cur.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid integer literal %q", p.cur.Lexeme)
		}
		p.next()
		return ast.NewLiteralPattern(ast.NewIntegerLiteral(value)), nil

	case lexer.FloatLit:
		value, err := strconv.ParseFloat(p.cur.Lexeme, 64)
		if err != nil {
			return nil, p.errorf("invalid float literal %q", p.cur.Lexeme)
		}
		p.next()
		return ast.NewLiteralPattern(ast.NewFloatLiteral(value)), nil

	case lexer.StringLit:
		value := p.cur.Lexeme
		p.next()
		return ast.NewLiteralPattern(ast.NewStringLiteral(value)), nil

	case lexer.KwTrue:
		p.next()
		return ast.NewLiteralPattern(ast.NewBooleanLiteral(true)), nil

	case lexer.KwFalse:
		p.next()
		return ast.NewLiteralPattern(ast.NewBooleanLiteral(false)), nil

	case lexer.LParen:
		p.next()
		var elements []ast.Pattern
		for !p.at(lexer.RParen) {
			element, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
			if !p.accept(lexer.Comma) {
				break
			}
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return ast.NewTuplePattern(elements), nil

	default:
		return nil, p.errorf("expected pattern, got %s", p.describe(p.cur))
	}
}
