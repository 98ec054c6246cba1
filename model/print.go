package model

import (
	"math"
	"strconv"
	"strings"
)

// The String methods render a value back into surface syntax. Rendering a
// parsed tree and re-parsing it yields a structurally equal tree.

func (v Int) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v Float) String() string {
	f64 := float64(v)
	if math.IsInf(f64, 0) || math.IsNaN(f64) {
		// not reachable from the grammar, only from the constructor
		return strconv.FormatFloat(f64, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f64, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		// keep floats lexically distinct from ints
		s += ".0"
	}
	return s
}

// String content is rendered verbatim between quotes: the grammar has no
// escape sequences, so any escaping here would re-parse to different bytes.
// Parsed string content never contains a quote byte.
func (v String) String() string {
	return `"` + string(v) + `"`
}

func (v Bool) String() string {
	if v {
		return "#t"
	}
	return "#f"
}

func (Null) String() string {
	return "()"
}

func (v Symbol) String() string {
	return string(v)
}

func (p *Pair) String() string {
	if items, ok := Elements(p); ok {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, item.String())
		}
		return "(" + strings.Join(parts, " ") + ")"
	}

	// improper list, dotted notation
	return "(" + p.Car.String() + " . " + p.Cdr.String() + ")"
}
