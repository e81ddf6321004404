package parser

import (
	"quill/frontend-go/pkg/ast"
	"quill/frontend-go/pkg/lexer"
)

func (p *Parser) parseFunction() (*ast.FunctionDefinition, error) {
	p.next()
	nameTok, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	var returnType ast.TypeExpression
	if p.accept(lexer.Arrow) {
		returnType, err = p.parseTypeExpression()
		if err != nil {
			return nil, err
		}
	}
	fn := ast.NewFunctionDefinition(ast.NewIdentifier(nameTok.Lexeme), params, returnType, nil)
	for {
		if p.accept(lexer.KwRequires) {
			clause, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			fn.Requires = append(fn.Requires, clause)
			continue
		}
		if p.accept(lexer.KwEnsures) {
			clause, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			fn.Ensures = append(fn.Ensures, clause)
			continue
		}
		break
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

func (p *Parser) parseParameterList() ([]*ast.FunctionParameter, error) {
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	var params []*ast.FunctionParameter
	for !p.at(lexer.RParen) {
		nameTok, err := p.expect(lexer.Ident)
		if err != nil {
			return nil, err
		}
		param := ast.NewFunctionParameter(ast.NewIdentifier(nameTok.Lexeme), nil, false)
		if p.accept(lexer.Ellipsis) {
			param.Variadic = true
		} else if p.accept(lexer.Colon) {
			paramType, err := p.parseTypeExpression()
			if err != nil {
				return nil, err
			}
			param.ParamType = paramType
			if p.accept(lexer.Ellipsis) {
				param.Variadic = true
			}
		}
		params = append(params, param)
		if !p.accept(lexer.Comma) {
			break
		}
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseStructDefinition() (ast.Statement, error) {
	p.next()
	nameTok, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	var fields []*ast.StructFieldDefinition
	for !p.at(lexer.RBrace) {
		fieldTok, err := p.expect(lexer.Ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Colon); err != nil {
			return nil, err
		}
		fieldType, err := p.parseTypeExpression()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.NewStructFieldDefinition(ast.NewIdentifier(fieldTok.Lexeme), fieldType))
		if !p.accept(lexer.Comma) {
			break
		}
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	return ast.NewStructDefinition(ast.NewIdentifier(nameTok.Lexeme), fields), nil
}

func (p *Parser) parseUnionDefinition() (ast.Statement, error) {
	p.next()
	nameTok, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	var variants []*ast.UnionVariant
	for !p.at(lexer.RBrace) {
		variantTok, err := p.expect(lexer.Ident)
		if err != nil {
			return nil, err
		}
		var payload []ast.TypeExpression
		if p.accept(lexer.LParen) {
			for !p.at(lexer.RParen) {
				payloadType, err := p.parseTypeExpression()
				if err != nil {
					return nil, err
				}
				payload = append(payload, payloadType)
				if !p.accept(lexer.Comma) {
					break
				}
			}
			if _, err := p.expect(lexer.RParen); err != nil {
				return nil, err
			}
		}
		variants = append(variants, ast.NewUnionVariant(ast.NewIdentifier(variantTok.Lexeme), payload))
		if !p.accept(lexer.Comma) {
			break
		}
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	return ast.NewUnionDefinition(ast.NewIdentifier(nameTok.Lexeme), variants), nil
}

func (p *Parser) parseAliasDefinition() (ast.Statement, error) {
	p.next()
	nameTok, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Assign); err != nil {
		return nil, err
	}
	target, err := p.parseTypeExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewAliasDefinition(ast.NewIdentifier(nameTok.Lexeme), target), nil
}

func (p *Parser) parseTraitDefinition() (ast.Statement, error) {
	p.next()
	nameTok, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	var signatures []*ast.FunctionSignature
	for p.at(lexer.KwFn) {
		p.next()
		sigTok, err := p.expect(lexer.Ident)
		if err != nil {
			return nil, err
		}
		params, err := p.parseParameterList()
		if err != nil {
			return nil, err
		}
		var returnType ast.TypeExpression
		if p.accept(lexer.Arrow) {
			returnType, err = p.parseTypeExpression()
			if err != nil {
				return nil, err
			}
		}
		signatures = append(signatures, ast.NewFunctionSignature(ast.NewIdentifier(sigTok.Lexeme), params, returnType))
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	return ast.NewTraitDefinition(ast.NewIdentifier(nameTok.Lexeme), signatures), nil
}

func (p *Parser) parseImplDefinition() (ast.Statement, error) {
	p.next()
	targetTok, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	impl := ast.NewImplDefinition(ast.NewIdentifier(targetTok.Lexeme), nil, nil)
	for {
		if p.accept(lexer.KwInvariant) {
			clause, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			impl.Invariants = append(impl.Invariants, clause)
			continue
		}
		if p.at(lexer.KwFn) {
			method, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			impl.Methods = append(impl.Methods, method)
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	return impl, nil
}
