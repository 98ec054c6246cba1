// Package model defines the cons-cell based syntax tree produced by the
// parser. A Model value is one of Int, Float, String, Bool, Null, Symbol or
// *Pair; lists are right-nested chains of pairs terminated by Null.
package model

// Model is the closed set of syntax tree values. The only implementations
// live in this package.
type Model interface {
	model()

	String() string
}

// Int is a machine integer literal.
type Int int64

// Float is a floating point literal.
type Float float64

// String is a string literal with the delimiting quotes stripped.
type String string

// Bool is a boolean literal (#t or #f).
type Bool bool

// Null is the empty list. It is both the value of "()" and the terminator of
// every proper list.
type Null struct{}

// Symbol is an identifier.
type Symbol string

// Pair is a cons cell. Car and Cdr are owned exclusively by the pair; the
// structure is always a tree, never a graph.
type Pair struct {
	Car Model
	Cdr Model
}

func (Int) model()    {}
func (Float) model()  {}
func (String) model() {}
func (Bool) model()   {}
func (Null) model()   {}
func (Symbol) model() {}
func (*Pair) model()  {}

// Cons returns a pair of car and cdr.
func Cons(car, cdr Model) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

// List folds its arguments right to left into a proper list. List() is Null.
func List(items ...Model) Model {
	var list Model = Null{}
	for i := len(items) - 1; i >= 0; i-- {
		list = Cons(items[i], list)
	}
	return list
}

// Elements flattens a proper list into a slice. It returns false when m is
// neither Null nor a chain of pairs terminated by Null.
func Elements(m Model) ([]Model, bool) {
	var items []Model
	for {
		switch v := m.(type) {
		case Null:
			return items, true
		case *Pair:
			items = append(items, v.Car)
			m = v.Cdr
		default:
			return nil, false
		}
	}
}

// Equal reports structural equality of two Model trees.
func Equal(a, b Model) bool {
	switch va := a.(type) {
	case Int:
		vb, ok := b.(Int)
		return ok && va == vb
	case Float:
		vb, ok := b.(Float)
		return ok && va == vb
	case String:
		vb, ok := b.(String)
		return ok && va == vb
	case Bool:
		vb, ok := b.(Bool)
		return ok && va == vb
	case Null:
		_, ok := b.(Null)
		return ok
	case Symbol:
		vb, ok := b.(Symbol)
		return ok && va == vb
	case *Pair:
		vb, ok := b.(*Pair)
		return ok && Equal(va.Car, vb.Car) && Equal(va.Cdr, vb.Cdr)
	}
	return false
}
