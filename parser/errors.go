package parser

import "fmt"

// LexicalErrorKind enumerates the ways a lexeme can be malformed.
type LexicalErrorKind int

const (
	MalformedIdentifier LexicalErrorKind = iota
	MalformedNumber
	UnrecognizedChar
)

func (k LexicalErrorKind) String() string {
	switch k {
	case MalformedIdentifier:
		return "malformed identifier"
	case MalformedNumber:
		return "malformed number"
	case UnrecognizedChar:
		return "unrecognized character"
	}
	return "lexical error"
}

// LexicalError is the terminal result of tokenizing a line that contains a
// lexeme outside every recognized shape. Col is the 1-based rune column of
// the offending lexeme.
type LexicalError struct {
	Kind   LexicalErrorKind
	Lexeme string
	Col    int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s '%s' at col %d", e.Kind, e.Lexeme, e.Col)
}

// SyntaxErrorKind enumerates the structural defects the parser reports.
type SyntaxErrorKind int

const (
	ElseWithoutIf SyntaxErrorKind = iota
	MissingOperand
	UnexpectedToken
	TrailingTokens
	EmptyStatement
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case ElseWithoutIf:
		return "else without if"
	case MissingOperand:
		return "missing operand"
	case UnexpectedToken:
		return "unexpected token"
	case TrailingTokens:
		return "trailing tokens after statement"
	case EmptyStatement:
		return "empty statement"
	}
	return "syntax error"
}

// SyntaxError is the terminal result of a failed descent. Got is the lexeme
// at the cursor when the defect was detected ("" at end of stream); Detail
// optionally names what was expected.
type SyntaxError struct {
	Kind   SyntaxErrorKind
	Got    string
	Detail string
}

func (e *SyntaxError) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Got != "" {
		msg = fmt.Sprintf("%s (at '%s')", msg, e.Got)
	}
	return msg
}
