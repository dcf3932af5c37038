// Package notation holds the shared symbol tables that both pkg/parser and
// pkg/writer key off of: a Notation (Polish or Standard) crossed with a
// CharSet (the terminal glyphs for a target medium).
//
// Each lexical category (atomic, predicate, constant, variable) has a fixed
// finite alphabet of single-character glyphs. A lexical item's Index selects
// a letter via index % len(alphabet); index / len(alphabet) ("overflow") and
// the item's own Subscript are both rendered as trailing digit runs so that
// write/parse round-trips losslessly recover both numbers: a letter, an
// optional overflow digit run, and (separated so it cannot be confused with
// the overflow run) an optional subscript digit run introduced by a
// dedicated subscript marker character.
package notation

// Notation selects the surface grammar: Polish (prefix, no parens) or
// Standard (infix, parens around binary operators).
type Notation int

const (
	Polish Notation = iota
	Standard
)

func (n Notation) String() string {
	if n == Polish {
		return "polish"
	}
	return "standard"
}

// CharSet selects the terminal glyph table for a Notation.
type CharSet int

const (
	ASCII CharSet = iota
	Unicode
	HTML
	LaTeX
)

func (c CharSet) String() string {
	switch c {
	case ASCII:
		return "ascii"
	case Unicode:
		return "unicode"
	case HTML:
		return "html"
	case LaTeX:
		return "latex"
	default:
		return "charset(?)"
	}
}

// Alphabets. Atomic, predicate, constant and variable identifiers each draw
// from a small fixed letter set; see the package doc comment for how
// index/subscript map onto letter+digits.
var (
	AtomicLetters    = []rune{'a', 'b', 'c', 'd', 'e'}
	PredicateLetters = []rune{'F', 'G', 'H', 'O'}
	ConstantLetters  = []rune{'m', 'n', 'o', 's'}
	VariableLetters  = []rune{'x', 'y', 'z', 'w'}
)

// SubscriptMarker separates the overflow digit run (index / len(alphabet))
// from the explicit subscript digit run in ASCII/Standard text, since both
// are otherwise indistinguishable digit sequences.
const SubscriptMarker = '_'

// Letter returns the glyph and overflow count for a given index into an
// alphabet.
func Letter(alphabet []rune, index int) (rune, int) {
	n := len(alphabet)
	i := index % n
	if i < 0 {
		i += n
	}
	return alphabet[i], index / n
}

// IndexOf returns the alphabet position of r, or -1 if not present.
func IndexOf(alphabet []rune, r rune) int {
	for i, a := range alphabet {
		if a == r {
			return i
		}
	}
	return -1
}
