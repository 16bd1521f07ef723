package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minilang/minic/parser"
)

// Phase identifies which stage of the front end rejected a line.
type Phase string

const (
	PhaseNone    Phase = ""
	PhaseLexical Phase = "lexical"
	PhaseSyntax  Phase = "syntax"
)

// LineResult is the outcome of running one statement line through the front
// end: either the full token classification list, or the first defect.
type LineResult struct {
	LineNo int // 1-based input line number
	Input  string
	Tokens []parser.Token
	Err    error
}

func (r *LineResult) Ok() bool {
	return r.Err == nil
}

// Phase classifies the defect, if any, as lexical or syntactic.
func (r *LineResult) Phase() Phase {
	var lexErr *parser.LexicalError
	var synErr *parser.SyntaxError
	switch {
	case r.Err == nil:
		return PhaseNone
	case errors.As(r.Err, &lexErr):
		return PhaseLexical
	case errors.As(r.Err, &synErr):
		return PhaseSyntax
	}
	return PhaseSyntax
}

// Verdict renders the one-word result the original batch output used.
func (r *LineResult) Verdict() string {
	switch r.Phase() {
	case PhaseLexical:
		return "Lexical Error"
	case PhaseSyntax:
		return "Syntax Error"
	}
	return "No Error"
}

// Records renders one classification record per token, in input order.
func (r *LineResult) Records() []string {
	out := make([]string, 0, len(r.Tokens))
	for _, tok := range r.Tokens {
		out = append(out, fmt.Sprintf("Token Type: %s, Token Value: %s", tok.Type, tok.Text))
	}
	return out
}

// Analyzer sequences the lexical and syntax analyzers over statement lines.
// Lines are processed independently; a defect on one line never affects
// another. The zero value is usable.
type Analyzer struct {
	// ExtraKeywords extends the lexer's reserved word set beyond the
	// built-in one.
	ExtraKeywords []string

	logger *slog.Logger
}

func NewAnalyzer(extraKeywords ...string) *Analyzer {
	return &Analyzer{ExtraKeywords: extraKeywords}
}

// SetLogger enables per-line debug tracing.
func (a *Analyzer) SetLogger(logger *slog.Logger) {
	a.logger = logger
}

// AnalyzeLine runs tokenize-then-parse over a single statement line. A
// whitespace-only line is trivially accepted with zero tokens. On a lexical
// defect the parser is never invoked and no tokens are reported.
func (a *Analyzer) AnalyzeLine(lineNo int, line string) LineResult {
	result := LineResult{LineNo: lineNo, Input: line}
	if strings.TrimSpace(line) == "" {
		return result
	}

	tokens, err := parser.NewLexerWithKeywords(line, a.ExtraKeywords).Tokenize()
	if err != nil {
		result.Err = fmt.Errorf("line %d: %w", lineNo, err)
		a.trace(lineNo, "tokenize failed", err)
		return result
	}

	if err := parser.Parse(tokens); err != nil {
		result.Err = fmt.Errorf("line %d: %w", lineNo, err)
		a.trace(lineNo, "parse failed", err)
		return result
	}

	result.Tokens = tokens
	a.trace(lineNo, "accepted", nil)
	return result
}

// AnalyzeReader processes every line of r in input order. The returned error
// reports only read failures; per-line defects live in the results.
func (a *Analyzer) AnalyzeReader(r io.Reader) ([]LineResult, error) {
	var results []LineResult
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		results = append(results, a.AnalyzeLine(lineNo, scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return results, fmt.Errorf("reading input: %w", err)
	}
	return results, nil
}

// AnalyzeFile reads path through fs and analyzes it line by line.
func (a *Analyzer) AnalyzeFile(fs FileSystem, path string) ([]LineResult, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return a.AnalyzeReader(bytes.NewReader(data))
}

func (a *Analyzer) trace(lineNo int, msg string, err error) {
	if a.logger == nil {
		return
	}
	if err != nil {
		a.logger.Debug(msg, "line", lineNo, "err", err)
	} else {
		a.logger.Debug(msg, "line", lineNo)
	}
}
