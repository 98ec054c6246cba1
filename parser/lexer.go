package parser

// symbolChars is the fixed set of bytes allowed in a symbol: ASCII letters,
// digits, and a small amount of punctuation.
var symbolChars = func() [256]bool {
	var t [256]bool
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	for _, c := range []byte("_?!=<>-+*/%&|~#") {
		t[c] = true
	}
	return t
}()

func isSymbolChar(b byte) bool {
	return symbolChars[b]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Lexer scans a source buffer into a flat token sequence. It keeps a single
// forward cursor and never backtracks.
type Lexer struct {
	source string

	start   int // first byte of the token being scanned
	current int // cursor, one past the last consumed byte

	line   int // 1-based position of the cursor
	column int

	startLine   int // position of start
	startColumn int
}

// NewLexer initializes a Lexer over the given source buffer
func NewLexer(source string) *Lexer {
	return &Lexer{
		source:      source,
		line:        1,
		column:      1,
		startLine:   1,
		startColumn: 1,
	}
}

// Collect scans the whole source and returns the complete token sequence,
// terminated by exactly one EOF token. The first lexical fault aborts the
// scan; no partial sequence is returned.
func (lx *Lexer) Collect() ([]Token, error) {
	tokens := []Token{}
	for {
		tok, err := lx.scan()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}

func (lx *Lexer) eof() bool {
	return lx.current >= len(lx.source)
}

func (lx *Lexer) peek() byte {
	if lx.eof() {
		return 0
	}
	return lx.source[lx.current]
}

func (lx *Lexer) advance() byte {
	b := lx.source[lx.current]
	lx.current++
	if b == '\n' {
		lx.line++
		lx.column = 1
	} else {
		lx.column++
	}
	return b
}

// mark pins the start of the next token at the cursor
func (lx *Lexer) mark() {
	lx.start = lx.current
	lx.startLine = lx.line
	lx.startColumn = lx.column
}

func (lx *Lexer) location() Location {
	return Location{
		StartLine:   lx.startLine,
		StartColumn: lx.startColumn,
		EndLine:     lx.line,
		EndColumn:   lx.column,
	}
}

func (lx *Lexer) emit(tt TokenType) Token {
	return NewToken(tt, lx.start, lx.current, lx.location())
}

func (lx *Lexer) scan() (Token, error) {
	for !lx.eof() {
		b := lx.peek()
		if isWhitespace(b) {
			lx.advance()
			continue
		}
		if b == ';' {
			lx.skipComment()
			continue
		}
		break
	}

	lx.mark()

	if lx.eof() {
		return lx.emit(TokenEOF), nil
	}

	b := lx.advance()
	switch {
	case b == '(':
		return lx.emit(TokenOpenParen), nil
	case b == ')':
		return lx.emit(TokenCloseParen), nil
	case b == '[':
		return lx.emit(TokenOpenBracket), nil
	case b == ']':
		return lx.emit(TokenCloseBracket), nil
	case b == '{':
		return lx.emit(TokenOpenBrace), nil
	case b == '}':
		return lx.emit(TokenCloseBrace), nil
	case b == '\'':
		return lx.emit(TokenQuote), nil
	case b == '"':
		return lx.scanString()
	case isDigit(b):
		return lx.scanNumber(), nil
	case isSymbolChar(b):
		return lx.scanSymbol(), nil
	}

	return Token{}, errInvalidToken(lx.location())
}

// skipComment discards everything up to and including the next newline.
// Comments never materialize as tokens.
func (lx *Lexer) skipComment() {
	for !lx.eof() {
		if lx.advance() == '\n' {
			return
		}
	}
}

// scanString consumes bytes verbatim until the closing quote. There is no
// escape processing. The token's span includes both quotes; the parser
// strips them.
func (lx *Lexer) scanString() (Token, error) {
	for !lx.eof() && lx.peek() != '"' {
		lx.advance()
	}
	if lx.eof() {
		return Token{}, errUnterminatedString(lx.location())
	}
	lx.advance()
	return lx.emit(TokenString), nil
}

// scanNumber consumes a maximal digit run, optionally followed by a single
// "." and another maximal digit run. Signs and exponents are not part of
// this grammar.
func (lx *Lexer) scanNumber() Token {
	for isDigit(lx.peek()) {
		lx.advance()
	}
	if lx.peek() == '.' {
		lx.advance()
		for isDigit(lx.peek()) {
			lx.advance()
		}
	}
	return lx.emit(TokenNumber)
}

func (lx *Lexer) scanSymbol() Token {
	for isSymbolChar(lx.peek()) {
		lx.advance()
	}
	return lx.emit(TokenSymbol)
}
