// Package lispet turns raw source text into a sequence of cons-cell based
// model values. It is a front end only: what to do with the parsed forms is
// the caller's business.
package lispet

import (
	"github.com/lispet/lispet/model"
	"github.com/lispet/lispet/parser"
)

// Parse returns the ordered sequence of top-level forms in source. On
// malformed input it returns a *parser.ParseError anchored to the offending
// source region.
func Parse(source string) ([]model.Model, error) {
	return parser.Parse(source)
}
