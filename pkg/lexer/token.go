package lexer

// Kind classifies a token.
type Kind int

const (
	EOF Kind = iota
	Illegal

	Ident
	IntLit
	FloatLit
	StringLit

	KwLet
	KwFn
	KwStruct
	KwUnion
	KwAlias
	KwTrait
	KwImpl
	KwImport
	KwAs
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwFor
	KwIn
	KwMatch
	KwRequires
	KwEnsures
	KwInvariant
	KwTrue
	KwFalse

	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	MapStart
	Comma
	Colon
	Semicolon
	Dot
	Question
	Pipe
	Arrow
	FatArrow
	Ellipsis
	Assign
	Plus
	Minus
	Star
	Slash
	Percent
	Bang
	Eq
	NotEq
	Lt
	LtEq
	Gt
	GtEq
	AndAnd
	OrOr
)

var keywords = map[string]Kind{
	"let":       KwLet,
	"fn":        KwFn,
	"struct":    KwStruct,
	"union":     KwUnion,
	"alias":     KwAlias,
	"trait":     KwTrait,
	"impl":      KwImpl,
	"import":    KwImport,
	"as":        KwAs,
	"return":    KwReturn,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"for":       KwFor,
	"in":        KwIn,
	"match":     KwMatch,
	"requires":  KwRequires,
	"ensures":   KwEnsures,
	"invariant": KwInvariant,
	"true":      KwTrue,
	"false":     KwFalse,
}

var kindNames = map[Kind]string{
	EOF:         "end of input",
	Illegal:     "illegal token",
	Ident:       "identifier",
	IntLit:      "integer literal",
	FloatLit:    "float literal",
	StringLit:   "string literal",
	KwLet:       "'let'",
	KwFn:        "'fn'",
	KwStruct:    "'struct'",
	KwUnion:     "'union'",
	KwAlias:     "'alias'",
	KwTrait:     "'trait'",
	KwImpl:      "'impl'",
	KwImport:    "'import'",
	KwAs:        "'as'",
	KwReturn:    "'return'",
	KwIf:        "'if'",
	KwElse:      "'else'",
	KwWhile:     "'while'",
	KwFor:       "'for'",
	KwIn:        "'in'",
	KwMatch:     "'match'",
	KwRequires:  "'requires'",
	KwEnsures:   "'ensures'",
	KwInvariant: "'invariant'",
	KwTrue:      "'true'",
	KwFalse:     "'false'",
	LParen:      "'('",
	RParen:      "')'",
	LBrace:      "'{'",
	RBrace:      "'}'",
	LBracket:    "'['",
	RBracket:    "']'",
	MapStart:    "'#{'",
	Comma:       "','",
	Colon:       "':'",
	Semicolon:   "';'",
	Dot:         "'.'",
	Question:    "'?'",
	Pipe:        "'|'",
	Arrow:       "'->'",
	FatArrow:    "'=>'",
	Ellipsis:    "'...'",
	Assign:      "'='",
	Plus:        "'+'",
	Minus:       "'-'",
	Star:        "'*'",
	Slash:       "'/'",
	Percent:     "'%'",
	Bang:        "'!'",
	Eq:          "'=='",
	NotEq:       "'!='",
	Lt:          "'<'",
	LtEq:        "'<='",
	Gt:          "'>'",
	GtEq:        "'>='",
	AndAnd:      "'&&'",
	OrOr:        "'||'",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown token"
}

// Token is one lexeme with its starting position. Line and Col are
// 1-indexed.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Col    int
}
