package lexer

// Lexer produces tokens from quill source text. Comments run from #
// to end of line, except that #{ opens a map literal.
type Lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '#' && l.peekAt(1) != '{':
			for l.pos < len(l.src) && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Next returns the next token. After the input is exhausted it keeps
// returning EOF tokens.
func (l *Lexer) Next() Token {
	l.skipSpace()
	line, col := l.line, l.col
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Line: line, Col: col}
	}

	ch := l.peek()
	switch {
	case isLetter(ch):
		start := l.pos
		for l.pos < len(l.src) && (isLetter(l.peek()) || isDigit(l.peek())) {
			l.advance()
		}
		word := l.src[start:l.pos]
		if kind, ok := keywords[word]; ok {
			return Token{Kind: kind, Lexeme: word, Line: line, Col: col}
		}
		return Token{Kind: Ident, Lexeme: word, Line: line, Col: col}

	case isDigit(ch):
		start := l.pos
		for l.pos < len(l.src) && isDigit(l.peek()) {
			l.advance()
		}
		kind := IntLit
		if l.peek() == '.' && isDigit(l.peekAt(1)) {
			kind = FloatLit
			l.advance()
			for l.pos < len(l.src) && isDigit(l.peek()) {
				l.advance()
			}
		}
		return Token{Kind: kind, Lexeme: l.src[start:l.pos], Line: line, Col: col}

	case ch == '"':
		return l.scanString(line, col)
	}

	two := ""
	if l.pos+1 < len(l.src) {
		two = l.src[l.pos : l.pos+2]
	}
	switch two {
	case "->":
		l.advance()
		l.advance()
		return Token{Kind: Arrow, Lexeme: two, Line: line, Col: col}
	case "=>":
		l.advance()
		l.advance()
		return Token{Kind: FatArrow, Lexeme: two, Line: line, Col: col}
	case "==":
		l.advance()
		l.advance()
		return Token{Kind: Eq, Lexeme: two, Line: line, Col: col}
	case "!=":
		l.advance()
		l.advance()
		return Token{Kind: NotEq, Lexeme: two, Line: line, Col: col}
	case "<=":
		l.advance()
		l.advance()
		return Token{Kind: LtEq, Lexeme: two, Line: line, Col: col}
	case ">=":
		l.advance()
		l.advance()
		return Token{Kind: GtEq, Lexeme: two, Line: line, Col: col}
	case "&&":
		l.advance()
		l.advance()
		return Token{Kind: AndAnd, Lexeme: two, Line: line, Col: col}
	case "||":
		l.advance()
		l.advance()
		return Token{Kind: OrOr, Lexeme: two, Line: line, Col: col}
	case "#{":
		l.advance()
		l.advance()
		return Token{Kind: MapStart, Lexeme: two, Line: line, Col: col}
	}

	if ch == '.' && l.peekAt(1) == '.' && l.peekAt(2) == '.' {
		l.advance()
		l.advance()
		l.advance()
		return Token{Kind: Ellipsis, Lexeme: "...", Line: line, Col: col}
	}

	l.advance()
	single := map[byte]Kind{
		'(': LParen,
		')': RParen,
		'{': LBrace,
		'}': RBrace,
		'[': LBracket,
		']': RBracket,
		',': Comma,
		':': Colon,
		';': Semicolon,
		'.': Dot,
		'?': Question,
		'|': Pipe,
		'=': Assign,
		'+': Plus,
		'-': Minus,
		'*': Star,
		'/': Slash,
		'%': Percent,
		'!': Bang,
		'<': Lt,
		'>': Gt,
	}
	if kind, ok := single[ch]; ok {
		return Token{Kind: kind, Lexeme: string(ch), Line: line, Col: col}
	}
	return Token{Kind: Illegal, Lexeme: string(ch), Line: line, Col: col}
}

func (l *Lexer) scanString(line, col int) Token {
	l.advance()
	var out []byte
	for l.pos < len(l.src) {
		ch := l.advance()
		switch ch {
		case '"':
			return Token{Kind: StringLit, Lexeme: string(out), Line: line, Col: col}
		case '\\':
			if l.pos >= len(l.src) {
				return Token{Kind: Illegal, Lexeme: "unterminated string", Line: line, Col: col}
			}
			esc := l.advance()
			switch esc {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			default:
				out = append(out, esc)
			}
		default:
			out = append(out, ch)
		}
	}
	return Token{Kind: Illegal, Lexeme: "unterminated string", Line: line, Col: col}
}
