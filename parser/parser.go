// Package parser implements the two-stage front end: a byte-level lexer and
// a recursive-descent parser producing model.Model values.
package parser

import (
	"strconv"
	"strings"

	"github.com/lispet/lispet/model"
)

// Parser consumes the token sequence produced by the lexer and builds nested
// pair structures. It keeps one token of lookahead and a stack of currently
// open grouping tokens for mismatched-delimiter detection.
type Parser struct {
	source string
	tokens []Token

	pos  int
	open []Token
}

// New initializes a Parser over the given source buffer
func New(source string) *Parser {
	return &Parser{source: source}
}

// Parse scans and parses source into its sequence of top-level forms. The
// first fault, lexical or structural, aborts the whole parse; the returned
// error is always a *ParseError.
func Parse(source string) ([]model.Model, error) {
	return New(source).Parse()
}

// Parse runs the top-level loop: one expression at a time until the cursor
// reaches the EOF token, then a single unmatched-delimiter check.
func (p *Parser) Parse() ([]model.Model, error) {
	tokens, err := NewLexer(p.source).Collect()
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	p.pos = 0
	p.open = p.open[:0]

	program := []model.Model{}
	for !p.peek().Is(TokenEOF) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		program = append(program, expr)
	}

	if len(p.open) > 0 {
		// point at the earliest unbalanced construct, not the last
		return nil, errUnmatchedParen(p.open[0].Location())
	}

	return program, nil
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

// next consumes and returns the lookahead. The cursor never moves past the
// EOF token.
func (p *Parser) next() Token {
	tok := p.tokens[p.pos]
	if !tok.Is(TokenEOF) {
		p.pos++
	}
	return tok
}

// expect is the sole point where token-kind mismatches become errors.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.peek()
	if tok.Is(tt) {
		return p.next(), nil
	}
	if tok.Is(TokenEOF) {
		return Token{}, errUnexpectedEOF(tt.String(), tok.Location())
	}
	return Token{}, errUnexpectedToken(tt.String(), tok.Type(), tok.Location())
}

func (p *Parser) parseExpression() (model.Model, error) {
	tok := p.peek()

	switch tok.Type() {
	case TokenNumber:
		return p.parseNumber()
	case TokenString:
		return p.parseString()
	case TokenSymbol:
		return p.parseSymbol()
	case TokenOpenParen:
		return p.parseList()
	case TokenQuote:
		return p.parseQuote()
	case TokenEOF:
		return nil, errUnexpectedEOF("expression", tok.Location())
	}

	return nil, errUnexpectedToken("expression", tok.Type(), tok.Location())
}

func (p *Parser) parseNumber() (model.Model, error) {
	tok := p.next()
	text := tok.Text(p.source)

	if strings.Contains(text, ".") {
		f64, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, errInvalidNumber(text, tok.Location())
		}
		return model.Float(f64), nil
	}

	i64, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, errInvalidNumber(text, tok.Location())
	}
	return model.Int(i64), nil
}

func (p *Parser) parseString() (model.Model, error) {
	tok := p.next()
	text := tok.Text(p.source)

	// unreachable given the lexer contract, which always spans both quotes
	if len(text) < 2 {
		return nil, errUnterminatedString(tok.Location())
	}

	return model.String(text[1 : len(text)-1]), nil
}

// parseSymbol maps the literal texts #t, #f and null onto their values;
// every other symbol text is a Symbol. Exact match, case-sensitive.
func (p *Parser) parseSymbol() (model.Model, error) {
	tok := p.next()

	switch tok.Text(p.source) {
	case "#t":
		return model.Bool(true), nil
	case "#f":
		return model.Bool(false), nil
	case "null":
		return model.Null{}, nil
	}

	return model.Symbol(tok.Text(p.source)), nil
}

func (p *Parser) parseList() (model.Model, error) {
	open, err := p.expect(TokenOpenParen)
	if err != nil {
		return nil, err
	}
	p.open = append(p.open, open)

	items := []model.Model{}
	for !p.peek().Is(TokenCloseParen) && !p.peek().Is(TokenEOF) {
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if p.peek().Is(TokenEOF) {
		// leave the opener on the stack so the post-loop check reports
		// the earliest unmatched one
		return model.List(items...), nil
	}

	if _, err := p.expect(TokenCloseParen); err != nil {
		return nil, err
	}
	p.open = p.open[:len(p.open)-1]

	return model.List(items...), nil
}

// parseQuote desugars 'x into the two-element list (quote x).
func (p *Parser) parseQuote() (model.Model, error) {
	if _, err := p.expect(TokenQuote); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return model.List(model.Symbol("quote"), expr), nil
}
