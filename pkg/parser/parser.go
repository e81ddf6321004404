package parser

import (
	"fmt"

	"quill/frontend-go/pkg/ast"
	"quill/frontend-go/pkg/lexer"
)

// Error is a parse failure at a source position. Line and Col are
// 1-indexed.
type Error struct {
	Line    int
	Col     int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parser: %d:%d: %s", e.Line, e.Col, e.Message)
}

// Parser is a hand-written recursive-descent parser with one token of
// lookahead. noStruct suppresses struct literals while parsing the
// header expression of if/while/for/match, where a trailing { belongs
// to the construct's block. noUnion suppresses | union types inside
// lambda parameter lists, where | closes the list instead.
type Parser struct {
	lex      *lexer.Lexer
	cur      lexer.Token
	peek     lexer.Token
	lastLine int
	noStruct bool
	noUnion  bool
}

func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src), lastLine: 1}
	p.cur = p.lex.Next()
	p.peek = p.lex.Next()
	return p
}

// ParseSource parses one quill source file into a module tree.
func ParseSource(src string) (*ast.Module, error) {
	return New(src).ParseModule()
}

func (p *Parser) ParseModule() (*ast.Module, error) {
	var statements []ast.Statement
	for !p.at(lexer.EOF) {
		if p.accept(lexer.Semicolon) {
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return ast.NewModule(statements), nil
}

func (p *Parser) next() {
	p.lastLine = p.cur.Line
	p.cur = p.peek
	p.peek = p.lex.Next()
}

func (p *Parser) at(kind lexer.Kind) bool {
	return p.cur.Kind == kind
}

func (p *Parser) accept(kind lexer.Kind) bool {
	if p.cur.Kind == kind {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(kind lexer.Kind) (lexer.Token, error) {
	if p.cur.Kind != kind {
		return lexer.Token{}, p.errorf("expected %s, got %s", kind, p.describe(p.cur))
	}
	tok := p.cur
	p.next()
	return tok, nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &Error{Line: p.cur.Line, Col: p.cur.Col, Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) describe(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.Ident:
		return fmt.Sprintf("identifier %q", tok.Lexeme)
	case lexer.Illegal:
		return fmt.Sprintf("illegal input %q", tok.Lexeme)
	default:
		return tok.Kind.String()
	}
}
