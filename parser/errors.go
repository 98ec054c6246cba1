package parser

import (
	"fmt"
)

// ErrorKind identifies the failure class of a ParseError
type ErrorKind uint8

// List of failure classes
const (
	ErrUnexpectedToken    ErrorKind = iota // grammar mismatch
	ErrUnexpectedEOF                       // input ended mid-construct
	ErrInvalidNumber                       // lexically numeric but fails to convert
	ErrUnterminatedString                  // string literal never closed
	ErrUnmatchedParen                      // grouping never closed
	ErrInvalidToken                        // byte not part of any recognized lexeme
)

// ParseError is the single error type returned by Parse. Every value carries
// a Location sufficient to point a caret at the offending source region.
type ParseError struct {
	Kind ErrorKind
	Loc  Location

	// Expected describes what the grammar wanted (ErrUnexpectedToken,
	// ErrUnexpectedEOF).
	Expected string

	// Found is the lookahead kind that did not match (ErrUnexpectedToken).
	Found TokenType

	// Text is the offending lexeme (ErrInvalidNumber).
	Text string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		return fmt.Sprintf("expected %s, found %s at %v", e.Expected, e.Found, e.Loc)
	case ErrUnexpectedEOF:
		return fmt.Sprintf("expected %s, found end of input at %v", e.Expected, e.Loc)
	case ErrInvalidNumber:
		return fmt.Sprintf("invalid number %q at %v", e.Text, e.Loc)
	case ErrUnterminatedString:
		return fmt.Sprintf("unterminated string at %v", e.Loc)
	case ErrUnmatchedParen:
		return fmt.Sprintf("unmatched opening delimiter at %v", e.Loc)
	case ErrInvalidToken:
		return fmt.Sprintf("invalid token at %v", e.Loc)
	}
	return fmt.Sprintf("parse error at %v", e.Loc)
}

// Location returns the source range the error points at
func (e *ParseError) Location() Location {
	return e.Loc
}

func errUnexpectedToken(expected string, found TokenType, loc Location) *ParseError {
	return &ParseError{Kind: ErrUnexpectedToken, Expected: expected, Found: found, Loc: loc}
}

func errUnexpectedEOF(expected string, loc Location) *ParseError {
	return &ParseError{Kind: ErrUnexpectedEOF, Expected: expected, Loc: loc}
}

func errInvalidNumber(text string, loc Location) *ParseError {
	return &ParseError{Kind: ErrInvalidNumber, Text: text, Loc: loc}
}

func errUnterminatedString(loc Location) *ParseError {
	return &ParseError{Kind: ErrUnterminatedString, Loc: loc}
}

func errUnmatchedParen(loc Location) *ParseError {
	return &ParseError{Kind: ErrUnmatchedParen, Loc: loc}
}

func errInvalidToken(loc Location) *ParseError {
	return &ParseError{Kind: ErrInvalidToken, Loc: loc}
}
