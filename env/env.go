// Package env provides a scoped bindings table over model values. It is the
// first consumer of the parser's output: an evaluator resolves symbols
// against a chain of these scopes.
package env

import (
	"github.com/lispet/lispet/model"
)

// Env is one lexical scope. Lookups that miss fall through to the parent.
type Env struct {
	parent   *Env
	bindings map[string]model.Model
}

// New creates a root scope
func New() *Env {
	return &Env{
		bindings: make(map[string]model.Model),
	}
}

// NewChild creates a scope nested inside parent
func NewChild(parent *Env) *Env {
	return &Env{
		parent:   parent,
		bindings: make(map[string]model.Model),
	}
}

// Get resolves name through the scope chain, innermost scope first.
func (e *Env) Get(name string) (model.Model, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if v, ok := scope.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name in this scope, shadowing any outer binding.
func (e *Env) Set(name string, value model.Model) {
	e.bindings[name] = value
}

// Assign rebinds the nearest existing binding of name. It returns false when
// name is unbound in the whole chain.
func (e *Env) Assign(name string, value model.Model) bool {
	for scope := e; scope != nil; scope = scope.parent {
		if _, ok := scope.bindings[name]; ok {
			scope.bindings[name] = value
			return true
		}
	}
	return false
}

// Parent returns the enclosing scope, or nil for the root.
func (e *Env) Parent() *Env {
	return e.parent
}
