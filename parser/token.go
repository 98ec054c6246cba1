package parser

import (
	"fmt"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid      TokenType = iota
	TokenOpenParen              // Open parenthesis: "("
	TokenCloseParen             // Close parenthesis: ")"
	TokenOpenBracket            // Open square bracket: "["
	TokenCloseBracket           // Close square bracket: "]"
	TokenOpenBrace              // Open curly brace: "{"
	TokenCloseBrace             // Close curly brace: "}"
	TokenQuote                  // Quote mark: "'"
	TokenSymbol                 // Identifiers and punctuation words
	TokenString                 // String literal, including both quotes
	TokenNumber                 // Integer or floating point literal
	TokenEOF                    // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:      "invalid",
	TokenOpenParen:    "open_paren",
	TokenCloseParen:   "close_paren",
	TokenOpenBracket:  "open_bracket",
	TokenCloseBracket: "close_bracket",
	TokenOpenBrace:    "open_brace",
	TokenCloseBrace:   "close_brace",
	TokenQuote:        "quote",
	TokenSymbol:       "symbol",
	TokenString:       "string",
	TokenNumber:       "number",
	TokenEOF:          "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// Location is a start/end line-column range. Lines and columns are 1-based;
// the end is the position just after the last consumed byte.
type Location struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.StartLine, l.StartColumn)
}

// Token represents a known sequence of bytes (lexical unit). Tokens do not
// own source text; they carry a byte span that is resolved lazily against
// the original buffer.
type Token struct {
	tt TokenType

	start int
	end   int

	loc Location
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, start, end int, loc Location) Token {
	return Token{
		tt:    tt,
		start: start,
		end:   end,
		loc:   loc,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// Span returns the [start, end) byte range of the lexical unit
func (t Token) Span() (int, int) {
	return t.start, t.end
}

// Location returns the source range of the lexical unit
func (t Token) Location() Location {
	return t.loc
}

// Text resolves the token's span against the source it was scanned from
func (t Token) Text(source string) string {
	return source[t.start:t.end]
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v [%d %d] %v)", t.tt, t.start, t.end, t.loc)
}
