package parser

import (
	"quill/frontend-go/pkg/ast"
	"quill/frontend-go/pkg/lexer"
)

func (p *Parser) parseTypeExpression() (ast.TypeExpression, error) {
	return p.parseUnionType()
}

func (p *Parser) parseUnionType() (ast.TypeExpression, error) {
	first, err := p.parsePostfixType()
	if err != nil {
		return nil, err
	}
	if p.noUnion || !p.at(lexer.Pipe) {
		return first, nil
	}
	members := []ast.TypeExpression{first}
	for p.accept(lexer.Pipe) {
		member, err := p.parsePostfixType()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return ast.NewUnionTypeExpression(members), nil
}

func (p *Parser) parsePostfixType() (ast.TypeExpression, error) {
	inner, err := p.parsePrimaryType()
	if err != nil {
		return nil, err
	}
	for p.accept(lexer.Question) {
		inner = ast.NewOptionalTypeExpression(inner)
	}
	return inner, nil
}

func (p *Parser) parsePrimaryType() (ast.TypeExpression, error) {
	switch p.cur.Kind {
	case lexer.Ident:
		name := ast.NewIdentifier(p.cur.Lexeme)
		p.next()
		if !p.accept(lexer.Lt) {
			return ast.NewSimpleTypeExpression(name), nil
		}
		var args []ast.TypeExpression
		for !p.at(lexer.Gt) {
			arg, err := p.parseTypeExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.accept(lexer.Comma) {
				break
			}
		}
		if _, err := p.expect(lexer.Gt); err != nil {
			return nil, err
		}
		return ast.NewGenericTypeExpression(name, args), nil

	case lexer.KwFn:
		p.next()
		if _, err := p.expect(lexer.LParen); err != nil {
			return nil, err
		}
		var paramTypes []ast.TypeExpression
		for !p.at(lexer.RParen) {
			paramType, err := p.parseTypeExpression()
			if err != nil {
				return nil, err
			}
			paramTypes = append(paramTypes, paramType)
			if !p.accept(lexer.Comma) {
				break
			}
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Arrow); err != nil {
			return nil, err
		}
		returnType, err := p.parsePostfixType()
		if err != nil {
			return nil, err
		}
		return ast.NewFunctionTypeExpression(paramTypes, returnType), nil

	case lexer.LParen:
		p.next()
		saved := p.noUnion
		p.noUnion = false
		defer func() { p.noUnion = saved }()
		if p.accept(lexer.RParen) {
			return ast.NewSimpleTypeExpression(ast.NewIdentifier("Unit")), nil
		}
		var elements []ast.TypeExpression
		for !p.at(lexer.RParen) {
			element, err := p.parseTypeExpression()
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
		if len(elements) == 1 {
			return elements[0], nil
		}
		return ast.NewTupleTypeExpression(elements), nil

	default:
		return nil, p.errorf("expected type, got %s", p.describe(p.cur))
	}
}
