package parser

import (
	"fmt"
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// LLParser validates a token stream against the statement grammar by
// recursive descent with single-token lookahead. It builds no tree; its only
// state is the cursor, and its only output is acceptance or the first
// *SyntaxError encountered.
type LLParser struct {
	tokens []Token
	pos    int
}

func NewLLParser(tokens []Token) *LLParser {
	return &LLParser{tokens: tokens}
}

// Parse validates tokens as exactly one statement spanning the whole stream.
func Parse(tokens []Token) error {
	return NewLLParser(tokens).Parse()
}

// Parse accepts only if the entire token stream is consumed by a single
// well-formed derivation from the statement production. Leftover tokens
// after the statement closes are a structural defect.
func (p *LLParser) Parse() error {
	if len(p.tokens) == 0 {
		return &SyntaxError{Kind: EmptyStatement}
	}
	if err := p.parseStatement(); err != nil {
		return err
	}
	if tok, ok := p.peek(); ok {
		return &SyntaxError{Kind: TrailingTokens, Got: tok.Text}
	}
	return nil
}

func (p *LLParser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *LLParser) advance() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *LLParser) errorUnexpected(got string, wanted ...TokenType) *SyntaxError {
	names := gfn.Map(wanted, func(t TokenType) string { return t.String() })
	return &SyntaxError{
		Kind:   UnexpectedToken,
		Got:    got,
		Detail: fmt.Sprintf("expected one of [%s]", strings.Join(names, ", ")),
	}
}

// statement := if_statement | simple_statement
func (p *LLParser) parseStatement() error {
	tok, ok := p.peek()
	if !ok {
		return &SyntaxError{Kind: UnexpectedToken, Detail: "expected a statement, found end of line"}
	}
	switch tok.Type {
	case KEYWORD:
		switch tok.Text {
		case "if":
			return p.parseIfStatement()
		case "else":
			return &SyntaxError{Kind: ElseWithoutIf, Got: tok.Text}
		case "print":
			return p.parsePrintStatement()
		default:
			// Configured keywords stand alone as simple statements.
			p.advance()
			return nil
		}
	case IDENTIFIER, INTEGER, FLOAT:
		return p.parseExpression()
	case SYMBOL:
		if IsOperator(tok) {
			return &SyntaxError{Kind: MissingOperand, Got: tok.Text}
		}
		return p.errorUnexpected(tok.Text, KEYWORD, IDENTIFIER, INTEGER, FLOAT)
	}
	return p.errorUnexpected(tok.Text, KEYWORD, IDENTIFIER, INTEGER, FLOAT)
}

// if_statement := "if" condition statement ("else" statement)?
//
// There is no "then" keyword. After the required statement a single token of
// lookahead decides the optional else-branch; an "else" seen anywhere else
// is reported by parseStatement as else-without-if.
func (p *LLParser) parseIfStatement() error {
	p.advance() // "if"
	if err := p.parseCondition(); err != nil {
		return err
	}
	if err := p.parseStatement(); err != nil {
		return err
	}
	if tok, ok := p.peek(); ok && tok.Type == KEYWORD && tok.Text == "else" {
		p.advance()
		return p.parseStatement()
	}
	return nil
}

// condition := expression
func (p *LLParser) parseCondition() error {
	return p.parseExpression()
}

// "print" takes an optional expression argument.
func (p *LLParser) parsePrintStatement() error {
	p.advance() // "print"
	if tok, ok := p.peek(); ok && p.canStartFactor(tok) {
		return p.parseExpression()
	}
	return nil
}

// expression := term (op term)*
func (p *LLParser) parseExpression() error {
	if err := p.parseTerm(); err != nil {
		return err
	}
	// expression and term share one operator set, so in practice the term
	// chain below consumes every operator; the loop here mirrors the
	// production anyway.
	for tok, ok := p.peek(); ok && IsOperator(tok); tok, ok = p.peek() {
		p.advance()
		if err := p.parseTerm(); err != nil {
			return err
		}
	}
	return nil
}

// term := factor (op factor)*   (left-associative chain)
func (p *LLParser) parseTerm() error {
	if err := p.parseFactor(); err != nil {
		return err
	}
	for tok, ok := p.peek(); ok && IsOperator(tok); tok, ok = p.peek() {
		p.advance()
		if err := p.parseFactor(); err != nil {
			return err
		}
	}
	return nil
}

func (p *LLParser) canStartFactor(tok Token) bool {
	switch tok.Type {
	case IDENTIFIER, INTEGER, FLOAT:
		return true
	case KEYWORD:
		return tok.Text == "if"
	}
	return false
}

// factor := identifier | number | if_statement
func (p *LLParser) parseFactor() error {
	tok, ok := p.peek()
	if !ok {
		return &SyntaxError{Kind: MissingOperand, Detail: "expected an operand, found end of line"}
	}
	switch {
	case tok.Type == IDENTIFIER || tok.Type == INTEGER || tok.Type == FLOAT:
		p.advance()
		return nil
	case tok.Type == KEYWORD && tok.Text == "if":
		// A full conditional may sit in operand position.
		return p.parseIfStatement()
	case IsOperator(tok):
		return &SyntaxError{Kind: MissingOperand, Got: tok.Text}
	}
	return p.errorUnexpected(tok.Text, IDENTIFIER, INTEGER, FLOAT)
}
