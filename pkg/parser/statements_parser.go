package parser

import (
	"quill/frontend-go/pkg/ast"
	"quill/frontend-go/pkg/lexer"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Kind {
	case lexer.KwLet:
		return p.parseLet()
	case lexer.KwFn:
		return p.parseFunction()
	case lexer.KwStruct:
		return p.parseStructDefinition()
	case lexer.KwUnion:
		return p.parseUnionDefinition()
	case lexer.KwAlias:
		return p.parseAliasDefinition()
	case lexer.KwTrait:
		return p.parseTraitDefinition()
	case lexer.KwImpl:
		return p.parseImplDefinition()
	case lexer.KwImport:
		return p.parseImport()
	case lexer.KwReturn:
		return p.parseReturn()
	default:
		return p.parseExpression()
	}
}

func (p *Parser) parseLet() (ast.Statement, error) {
	p.next()
	pattern, err := p.parseBindingPattern()
	if err != nil {
		return nil, err
	}
	var annotation ast.TypeExpression
	if p.accept(lexer.Colon) {
		annotation, err = p.parseTypeExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.Assign); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewLetStatement(pattern, annotation, value), nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	line := p.cur.Line
	p.next()
	if p.at(lexer.RBrace) || p.at(lexer.EOF) || p.at(lexer.Semicolon) || p.cur.Line > line {
		return ast.NewReturnStatement(nil), nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewReturnStatement(value), nil
}

func (p *Parser) parseImport() (ast.Statement, error) {
	p.next()
	pathTok, err := p.expect(lexer.StringLit)
	if err != nil {
		return nil, err
	}
	var alias *ast.Identifier
	if p.accept(lexer.KwAs) {
		aliasTok, err := p.expect(lexer.Ident)
		if err != nil {
			return nil, err
		}
		alias = ast.NewIdentifier(aliasTok.Lexeme)
	}
	var selectors []*ast.ImportSelector
	if p.accept(lexer.LBrace) {
		for !p.at(lexer.RBrace) {
			nameTok, err := p.expect(lexer.Ident)
			if err != nil {
				return nil, err
			}
			var selAlias *ast.Identifier
			if p.accept(lexer.KwAs) {
				aliasTok, err := p.expect(lexer.Ident)
				if err != nil {
					return nil, err
				}
				selAlias = ast.NewIdentifier(aliasTok.Lexeme)
			}
			selectors = append(selectors, ast.NewImportSelector(ast.NewIdentifier(nameTok.Lexeme), selAlias))
			if !p.accept(lexer.Comma) {
				break
			}
		}
		if _, err := p.expect(lexer.RBrace); err != nil {
			return nil, err
		}
	}
	return ast.NewImportStatement(pathTok.Lexeme, alias, selectors), nil
}

func (p *Parser) parseBlock() (*ast.BlockExpression, error) {
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	saved := p.noStruct
	p.noStruct = false
	var statements []ast.Statement
	for !p.at(lexer.RBrace) && !p.at(lexer.EOF) {
		if p.accept(lexer.Semicolon) {
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	p.noStruct = saved
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	return ast.NewBlockExpression(statements), nil
}
