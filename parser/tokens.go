package parser

// TokenType classifies a lexeme. The set is closed: the lexer never emits a
// type outside these five.
type TokenType int

const (
	KEYWORD TokenType = iota
	IDENTIFIER
	INTEGER
	FLOAT
	SYMBOL
)

func (t TokenType) String() string {
	switch t {
	case KEYWORD:
		return "KEYWORD"
	case IDENTIFIER:
		return "IDENTIFIER"
	case INTEGER:
		return "INTEGER"
	case FLOAT:
		return "FLOAT"
	case SYMBOL:
		return "SYMBOL"
	}
	return "UNKNOWN"
}

// Token is an immutable (type, lexeme) pair. Col is the 1-based rune column
// where the lexeme starts in its line.
type Token struct {
	Type TokenType
	Text string
	Col  int
}

// The operator/punctuation set recognized by the lexer. Only a subset of
// these ('+' through '=') may appear as binary operators in expressions;
// see isOperator.
var symbols = map[rune]bool{
	'+': true, '-': true, '*': true, '/': true, '^': true,
	'<': true, '>': true, '=': true, ';': true,
}

// DefaultKeywords returns the base reserved word set. Callers may extend a
// lexer's set via NewLexerWithKeywords but the base set is always included.
func DefaultKeywords() map[string]bool {
	return map[string]bool{
		"if":    true,
		"else":  true,
		"print": true,
	}
}

// IsOperator reports whether tok is a SYMBOL usable as a binary operator.
// The statement terminator ';' is tokenized as a SYMBOL but is not an
// operator.
func IsOperator(tok Token) bool {
	if tok.Type != SYMBOL {
		return false
	}
	switch tok.Text {
	case "+", "-", "*", "/", "^", "<", ">", "=":
		return true
	}
	return false
}
