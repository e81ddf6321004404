package parser

import (
	"strconv"

	"quill/frontend-go/pkg/ast"
	"quill/frontend-go/pkg/lexer"
)

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.Expression, error) {
	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.Assign) {
		return left, nil
	}
	target, ok := left.(ast.AssignmentTarget)
	if !ok {
		return nil, p.errorf("invalid assignment target")
	}
	p.next()
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return ast.NewAssignmentExpression(target, value), nil
}

var binaryPrecedence = map[lexer.Kind]int{
	lexer.OrOr:    1,
	lexer.AndAnd:  2,
	lexer.Eq:      3,
	lexer.NotEq:   3,
	lexer.Lt:      4,
	lexer.LtEq:    4,
	lexer.Gt:      4,
	lexer.GtEq:    4,
	lexer.Plus:    5,
	lexer.Minus:   5,
	lexer.Star:    6,
	lexer.Slash:   6,
	lexer.Percent: 6,
}

func (p *Parser) parseBinary(minPrec int) (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := binaryPrecedence[p.cur.Kind]
		if !ok || prec < minPrec {
			return left, nil
		}
		op := p.cur.Lexeme
		p.next()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.at(lexer.Minus) || p.at(lexer.Bang) {
		op := p.cur.Lexeme
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(op, operand), nil
	}
	return p.parsePostfix()
}

// parsePostfix handles calls, indexing, and member access. A ( or [
// on a new line starts a fresh statement rather than continuing the
// expression; member chains may continue across lines.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at(lexer.LParen) && p.cur.Line == p.lastLine:
			p.next()
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = ast.NewCallExpression(expr, args)
		case p.at(lexer.LBracket) && p.cur.Line == p.lastLine:
			p.next()
			saved := p.noStruct
			p.noStruct = false
			index, err := p.parseExpression()
			p.noStruct = saved
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBracket); err != nil {
				return nil, err
			}
			expr = ast.NewIndexExpression(expr, index)
		case p.at(lexer.Dot):
			p.next()
			switch p.cur.Kind {
			case lexer.Ident:
				expr = ast.NewMemberAccessExpression(expr, ast.NewIdentifier(p.cur.Lexeme))
				p.next()
			case lexer.IntLit:
				value, err := strconv.ParseInt(p.cur.Lexeme, 10, 64)
				if err != nil {
					return nil, p.errorf("invalid tuple index %q", p.cur.Lexeme)
				}
				expr = ast.NewMemberAccessExpression(expr, ast.NewIntegerLiteral(value))
				p.next()
			default:
				return nil, p.errorf("expected member name, got %s", p.describe(p.cur))
			}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArguments() ([]ast.Expression, error) {
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()
	var args []ast.Expression
	for !p.at(lexer.RParen) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.accept(lexer.Comma) {
			break
		}
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.cur.Kind {
	case lexer.IntLit:
		value, err := strconv.ParseInt(p.cur.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid integer literal %q", p.cur.Lexeme)
		}
		p.next()
		return ast.NewIntegerLiteral(value), nil

	case lexer.FloatLit:
		value, err := strconv.ParseFloat(p.cur.Lexeme, 64)
		if err != nil {
			return nil, p.errorf("invalid float literal %q", p.cur.Lexeme)
		}
		p.next()
		return ast.NewFloatLiteral(value), nil

	case lexer.StringLit:
		value := p.cur.Lexeme
		p.next()
		return ast.NewStringLiteral(value), nil

	case lexer.KwTrue:
		p.next()
		return ast.NewBooleanLiteral(true), nil

	case lexer.KwFalse:
		p.next()
		return ast.NewBooleanLiteral(false), nil

	case lexer.Ident:
		name := ast.NewIdentifier(p.cur.Lexeme)
		p.next()
		if p.at(lexer.LBrace) && !p.noStruct && p.cur.Line == p.lastLine {
			return p.parseStructLiteral(name)
		}
		return name, nil

	case lexer.LParen:
		return p.parseParenExpression()

	case lexer.LBracket:
		return p.parseArrayLiteral()

	case lexer.MapStart:
		return p.parseMapLiteral()

	case lexer.LBrace:
		return p.parseBlock()

	case lexer.Pipe, lexer.OrOr:
		return p.parseLambda()

	case lexer.KwIf:
		return p.parseIf()

	case lexer.KwWhile:
		return p.parseWhile()

	case lexer.KwFor:
		return p.parseFor()

	case lexer.KwMatch:
		return p.parseMatch()

	default:
		return nil, p.errorf("unexpected %s", p.describe(p.cur))
	}
}

func (p *Parser) parseParenExpression() (ast.Expression, error) {
	p.next()
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()
	if p.accept(lexer.RParen) {
		return ast.NewUnitLiteral(), nil
	}
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.accept(lexer.Comma) {
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return first, nil
	}
	elements := []ast.Expression{first}
	for !p.at(lexer.RParen) {
		element, err := p.parseExpression()
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
	return ast.NewTupleLiteral(elements), nil
}

func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	p.next()
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()
	var elements []ast.Expression
	for !p.at(lexer.RBracket) {
		element, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
		if !p.accept(lexer.Comma) {
			break
		}
	}
	if _, err := p.expect(lexer.RBracket); err != nil {
		return nil, err
	}
	return ast.NewArrayLiteral(elements), nil
}

func (p *Parser) parseMapLiteral() (ast.Expression, error) {
	p.next()
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()
	var entries []*ast.MapEntry
	for !p.at(lexer.RBrace) {
		key, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Colon); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.NewMapEntry(key, value))
		if !p.accept(lexer.Comma) {
			break
		}
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	return ast.NewMapLiteral(entries), nil
}

func (p *Parser) parseStructLiteral(name *ast.Identifier) (ast.Expression, error) {
	p.next()
	var fields []*ast.StructFieldInitializer
	for !p.at(lexer.RBrace) {
		fieldTok, err := p.expect(lexer.Ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Colon); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.NewStructFieldInitializer(ast.NewIdentifier(fieldTok.Lexeme), value))
		if !p.accept(lexer.Comma) {
			break
		}
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	return ast.NewStructLiteral(name, fields), nil
}

// parseLambda parses |x, y| body and the empty-parameter form || body.
func (p *Parser) parseLambda() (ast.Expression, error) {
	var params []*ast.FunctionParameter
	if p.at(lexer.OrOr) {
		p.next()
	} else {
		p.next()
		for !p.at(lexer.Pipe) {
			nameTok, err := p.expect(lexer.Ident)
			if err != nil {
				return nil, err
			}
			param := ast.NewFunctionParameter(ast.NewIdentifier(nameTok.Lexeme), nil, false)
			if p.accept(lexer.Colon) {
				saved := p.noUnion
				p.noUnion = true
				paramType, err := p.parseTypeExpression()
				p.noUnion = saved
				if err != nil {
					return nil, err
				}
				param.ParamType = paramType
			}
			params = append(params, param)
			if !p.accept(lexer.Comma) {
				break
			}
		}
		if _, err := p.expect(lexer.Pipe); err != nil {
			return nil, err
		}
	}
	var returnType ast.TypeExpression
	if p.accept(lexer.Arrow) {
		var err error
		returnType, err = p.parseTypeExpression()
		if err != nil {
			return nil, err
		}
	}
	var body ast.Expression
	var err error
	if p.at(lexer.LBrace) {
		body, err = p.parseBlock()
	} else {
		body, err = p.parseExpression()
	}
	if err != nil {
		return nil, err
	}
	return ast.NewLambdaExpression(params, returnType, body), nil
}

func (p *Parser) parseHeaderExpression() (ast.Expression, error) {
	saved := p.noStruct
	p.noStruct = true
	expr, err := p.parseExpression()
	p.noStruct = saved
	return expr, err
}

func (p *Parser) parseIf() (ast.Expression, error) {
	p.next()
	cond, err := p.parseHeaderExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var els ast.Expression
	if p.accept(lexer.KwElse) {
		if p.at(lexer.KwIf) {
			els, err = p.parseIf()
		} else {
			els, err = p.parseBlock()
		}
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfExpression(cond, then, els), nil
}

func (p *Parser) parseWhile() (ast.Expression, error) {
	p.next()
	cond, err := p.parseHeaderExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileLoop(cond, body), nil
}

func (p *Parser) parseFor() (ast.Expression, error) {
	p.next()
	nameTok, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KwIn); err != nil {
		return nil, err
	}
	iterable, err := p.parseHeaderExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewForLoop(ast.NewIdentifier(nameTok.Lexeme), iterable, body), nil
}

func (p *Parser) parseMatch() (ast.Expression, error) {
	p.next()
	subject, err := p.parseHeaderExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	var clauses []*ast.MatchClause
	for !p.at(lexer.RBrace) {
		pattern, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.FatArrow); err != nil {
			return nil, err
		}
		var body ast.Expression
		if p.at(lexer.LBrace) {
			body, err = p.parseBlock()
		} else {
			body, err = p.parseExpression()
		}
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, ast.NewMatchClause(pattern, body))
		if !p.accept(lexer.Comma) {
			break
		}
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	return ast.NewMatchExpression(subject, clauses), nil
}
