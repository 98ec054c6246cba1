package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lispet/lispet/model"
)

func TestParsePrograms(t *testing.T) {
	testCases := []struct {
		In  string
		Out []model.Model
	}{
		{
			In:  ``,
			Out: []model.Model{},
		},
		{
			In:  `123`,
			Out: []model.Model{model.Int(123)},
		},
		{
			In:  `1.5`,
			Out: []model.Model{model.Float(1.5)},
		},
		{
			In:  `"Hello, World!"`,
			Out: []model.Model{model.String("Hello, World!")},
		},
		{
			In:  `""`,
			Out: []model.Model{model.String("")},
		},
		{
			In:  `#t #f null`,
			Out: []model.Model{model.Bool(true), model.Bool(false), model.Null{}},
		},
		{
			In:  `()`,
			Out: []model.Model{model.Null{}},
		},
		{
			In: `(1 2 3)`,
			Out: []model.Model{
				model.List(model.Int(1), model.Int(2), model.Int(3)),
			},
		},
		{
			In: `'x`,
			Out: []model.Model{
				model.List(model.Symbol("quote"), model.Symbol("x")),
			},
		},
		{
			In: `''x`,
			Out: []model.Model{
				model.List(
					model.Symbol("quote"),
					model.List(model.Symbol("quote"), model.Symbol("x")),
				),
			},
		},
		{
			In: `'()`,
			Out: []model.Model{
				model.List(model.Symbol("quote"), model.Null{}),
			},
		},
		{
			In: `(add 1 (mul 2 3))`,
			Out: []model.Model{
				model.List(
					model.Symbol("add"),
					model.Int(1),
					model.List(model.Symbol("mul"), model.Int(2), model.Int(3)),
				),
			},
		},
		{
			In: `(define (square x) (* x x))`,
			Out: []model.Model{
				model.List(
					model.Symbol("define"),
					model.List(model.Symbol("square"), model.Symbol("x")),
					model.List(model.Symbol("*"), model.Symbol("x"), model.Symbol("x")),
				),
			},
		},
		{
			In:  "; leading comment\n42",
			Out: []model.Model{model.Int(42)},
		},
		{
			In: "(if #t ; branch\n  1\n  2)",
			Out: []model.Model{
				model.List(model.Symbol("if"), model.Bool(true), model.Int(1), model.Int(2)),
			},
		},
		{
			In:  `1 "two" three`,
			Out: []model.Model{model.Int(1), model.String("two"), model.Symbol("three")},
		},
		{
			// quote is only sugar; the spelled-out form parses the same
			In: `(quote x)`,
			Out: []model.Model{
				model.List(model.Symbol("quote"), model.Symbol("x")),
			},
		},
	}

	for i := range testCases {
		program, err := Parse(testCases[i].In)
		require.NoError(t, err, "case %d: %q", i, testCases[i].In)

		if diff := cmp.Diff(testCases[i].Out, program); diff != "" {
			t.Errorf("case %d: %q: unexpected tree (-want +got):\n%s", i, testCases[i].In, diff)
		}
	}
}

func TestEmptyListIsNull(t *testing.T) {
	program, err := Parse(`()`)
	require.NoError(t, err)
	require.Len(t, program, 1)

	assert.IsType(t, model.Null{}, program[0])
}

func TestListShape(t *testing.T) {
	program, err := Parse(`(1 2 3)`)
	require.NoError(t, err)
	require.Len(t, program, 1)

	// exactly three pairs terminated by one Null, source order preserved
	p1, ok := program[0].(*model.Pair)
	require.True(t, ok)
	assert.Equal(t, model.Int(1), p1.Car)

	p2, ok := p1.Cdr.(*model.Pair)
	require.True(t, ok)
	assert.Equal(t, model.Int(2), p2.Car)

	p3, ok := p2.Cdr.(*model.Pair)
	require.True(t, ok)
	assert.Equal(t, model.Int(3), p3.Car)

	assert.Equal(t, model.Null{}, p3.Cdr)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Kind ErrorKind
		Line int
		Col  int
	}{
		{
			In:   `(1 2`,
			Kind: ErrUnmatchedParen,
			Line: 1, Col: 1,
		},
		{
			In:   `  (1 2`,
			Kind: ErrUnmatchedParen,
			Line: 1, Col: 3,
		},
		{
			// earliest unmatched opener, not the innermost
			In:   `((3)`,
			Kind: ErrUnmatchedParen,
			Line: 1, Col: 1,
		},
		{
			In:   "(a\n  (b\n",
			Kind: ErrUnmatchedParen,
			Line: 1, Col: 1,
		},
		{
			In:   `'(1 2`,
			Kind: ErrUnmatchedParen,
			Line: 1, Col: 2,
		},
		{
			In:   `)`,
			Kind: ErrUnexpectedToken,
			Line: 1, Col: 1,
		},
		{
			In:   `]`,
			Kind: ErrUnexpectedToken,
			Line: 1, Col: 1,
		},
		{
			// brackets lex but the grammar does not use them
			In:   `[1 2]`,
			Kind: ErrUnexpectedToken,
			Line: 1, Col: 1,
		},
		{
			In:   `{`,
			Kind: ErrUnexpectedToken,
			Line: 1, Col: 1,
		},
		{
			In:   `(1 })`,
			Kind: ErrUnexpectedToken,
			Line: 1, Col: 4,
		},
		{
			In:   `'`,
			Kind: ErrUnexpectedEOF,
			Line: 1, Col: 2,
		},
		{
			In:   `(a '`,
			Kind: ErrUnexpectedEOF,
			Line: 1, Col: 5,
		},
		{
			In:   `99999999999999999999`,
			Kind: ErrInvalidNumber,
			Line: 1, Col: 1,
		},
		{
			In:   `"abc`,
			Kind: ErrUnterminatedString,
			Line: 1, Col: 1,
		},
		{
			In:   `@`,
			Kind: ErrInvalidToken,
			Line: 1, Col: 1,
		},
		{
			// a second dot cannot extend a number
			In:   `1.5.5`,
			Kind: ErrInvalidToken,
			Line: 1, Col: 4,
		},
	}

	for i := range testCases {
		program, err := Parse(testCases[i].In)
		assert.Nil(t, program, "case %d: %q", i, testCases[i].In)
		require.Error(t, err, "case %d: %q", i, testCases[i].In)

		var perr *ParseError
		require.ErrorAs(t, err, &perr, "case %d: %q", i, testCases[i].In)

		assert.Equal(t, testCases[i].Kind, perr.Kind, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Line, perr.Loc.StartLine, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Col, perr.Loc.StartColumn, "case %d: %q", i, testCases[i].In)
	}
}

func TestErrorPayloads(t *testing.T) {
	{
		_, err := Parse(`)`)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "expression", perr.Expected)
		assert.Equal(t, TokenCloseParen, perr.Found)
	}

	{
		_, err := Parse(`99999999999999999999`)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "99999999999999999999", perr.Text)
	}
}

func TestReparseIsStable(t *testing.T) {
	testCases := []string{
		`(add 1 (mul 2 3))`,
		`'(a b c) "text" 1.25 #f`,
		"; comment\n(x null ())",
	}

	for _, in := range testCases {
		first, err := Parse(in)
		require.NoError(t, err)

		second, err := Parse(in)
		require.NoError(t, err)

		require.Len(t, second, len(first))
		for i := range first {
			assert.True(t, model.Equal(first[i], second[i]), "input %q, form %d", in, i)
		}
	}
}

func TestCommentTransparency(t *testing.T) {
	plain, err := Parse(`42`)
	require.NoError(t, err)

	commented, err := Parse("; comment\n42")
	require.NoError(t, err)

	if diff := cmp.Diff(plain, commented); diff != "" {
		t.Errorf("comments changed the parse (-plain +commented):\n%s", diff)
	}
}
