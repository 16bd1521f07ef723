package parser

import (
	"bytes"
	"unicode"
)

const eof = rune(0)

// Lexer scans one statement line into tokens. It is a single left-to-right
// pass with maximal munch: at each position the longest run matching a
// recognized shape is consumed, with keyword classification taking precedence
// over identifier, and float over integer.
type Lexer struct {
	runes    []rune
	pos      int          // index of the next unread rune
	buf      bytes.Buffer // scratch for the lexeme being scanned
	keywords map[string]bool
}

// NewLexer creates a lexer over a single line using the default keyword set.
func NewLexer(line string) *Lexer {
	return NewLexerWithKeywords(line, nil)
}

// NewLexerWithKeywords creates a lexer whose keyword set is the default set
// plus the given extras. Keyword matching is exact and case-sensitive.
func NewLexerWithKeywords(line string, extras []string) *Lexer {
	kws := DefaultKeywords()
	for _, kw := range extras {
		if kw != "" {
			kws[kw] = true
		}
	}
	return &Lexer{runes: []rune(line), keywords: kws}
}

// Tokenize scans a line with the default keyword set. On the first defect it
// returns a *LexicalError and no tokens.
func Tokenize(line string) ([]Token, error) {
	return NewLexer(line).Tokenize()
}

// Tokenize consumes the entire line. Either every character is accounted for
// by the returned tokens (plus skipped whitespace), or the first defect is
// returned with no tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return tokens, nil
		}
		tokens = append(tokens, *tok)
	}
}

func (l *Lexer) peek() rune {
	return l.peekN(0)
}

func (l *Lexer) peekN(n int) rune {
	if l.pos+n >= len(l.runes) {
		return eof
	}
	return l.runes[l.pos+n]
}

func (l *Lexer) read() rune {
	r := l.peek()
	if r != eof {
		l.pos++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for r := l.peek(); r != eof && unicode.IsSpace(r); r = l.peek() {
		l.read()
	}
}

// col is the 1-based rune column of the next unread rune.
func (l *Lexer) col() int {
	return l.pos + 1
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Next returns the next token, nil at end of line, or a *LexicalError.
func (l *Lexer) Next() (*Token, error) {
	l.skipWhitespace()
	startCol := l.col()

	r := l.peek()
	switch {
	case r == eof:
		return nil, nil

	case isIdentStart(r):
		text := l.scanIdentifier()
		if l.keywords[text] {
			return &Token{Type: KEYWORD, Text: text, Col: startCol}, nil
		}
		return &Token{Type: IDENTIFIER, Text: text, Col: startCol}, nil

	case unicode.IsDigit(r) || (r == '.' && unicode.IsDigit(l.peekN(1))):
		return l.scanNumber(startCol)

	case r == '-' && isIdentStart(l.peekN(1)):
		// A '-' glued to the start of an identifier-like run is not an
		// operator; it is a malformed identifier ("-var" and friends).
		l.buf.Reset()
		l.buf.WriteRune(l.read())
		l.buf.WriteString(l.scanIdentifier())
		return nil, &LexicalError{Kind: MalformedIdentifier, Lexeme: l.buf.String(), Col: startCol}

	case symbols[r]:
		l.read()
		return &Token{Type: SYMBOL, Text: string(r), Col: startCol}, nil

	default:
		// Unknown character. If it leads an identifier-like run ("@name")
		// report the whole run as a malformed identifier, otherwise just
		// the character itself.
		l.read()
		if rest := l.scanIdentifier(); rest != "" {
			return nil, &LexicalError{Kind: MalformedIdentifier, Lexeme: string(r) + rest, Col: startCol}
		}
		return nil, &LexicalError{Kind: UnrecognizedChar, Lexeme: string(r), Col: startCol}
	}
}

// scanIdentifier consumes the maximal identifier run at the cursor.
func (l *Lexer) scanIdentifier() string {
	var out bytes.Buffer
	for r := l.peek(); r != eof && isIdentPart(r); r = l.peek() {
		out.WriteRune(l.read())
	}
	return out.String()
}

// scanNumber consumes a maximal numeric run. Accepted float forms are
// "d.d", ".d" and "d." (exactly one decimal point). A second decimal point
// or a glued exponent marker makes the run a malformed number; any other
// glued identifier continuation makes it a malformed identifier.
func (l *Lexer) scanNumber(startCol int) (*Token, error) {
	l.buf.Reset()
	hasDecimal := false
	for r := l.peek(); r != eof; r = l.peek() {
		if unicode.IsDigit(r) {
			l.buf.WriteRune(l.read())
		} else if r == '.' && !hasDecimal {
			hasDecimal = true
			l.buf.WriteRune(l.read())
		} else {
			break
		}
	}

	next := l.peek()
	switch {
	case next == '.':
		// Two or more decimal points in one run ("1.2.3").
		l.consumeNumericRun()
		return nil, &LexicalError{Kind: MalformedNumber, Lexeme: l.buf.String(), Col: startCol}
	case next == 'e' || next == 'E':
		// The grammar has no exponent form; "1e" and "1e5" alike are
		// rejected as numbers, not split into number + identifier.
		l.consumeNumericRun()
		return nil, &LexicalError{Kind: MalformedNumber, Lexeme: l.buf.String(), Col: startCol}
	case isIdentPart(next):
		// A digit-led run containing letters ("2xi") can never become an
		// identifier.
		l.consumeNumericRun()
		return nil, &LexicalError{Kind: MalformedIdentifier, Lexeme: l.buf.String(), Col: startCol}
	}

	typ := INTEGER
	if hasDecimal {
		typ = FLOAT
	}
	return &Token{Type: typ, Text: l.buf.String(), Col: startCol}, nil
}

// consumeNumericRun drains the rest of a malformed numeric/identifier run
// into buf so the defect message carries the whole offending lexeme.
func (l *Lexer) consumeNumericRun() {
	for r := l.peek(); r != eof && (isIdentPart(r) || r == '.'); r = l.peek() {
		l.buf.WriteRune(l.read())
	}
}
