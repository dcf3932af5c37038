// Package writer renders lexicon.Sentence values back to text under a
// RenderSet (notation, charset). It is the inverse of pkg/parser: for every
// (notation, charset=ascii) pairing that shares symbols with a parse table,
// parse(write(s)) == s.
package writer

import (
	"strconv"
	"strings"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/notation"
)

// RenderSet names a (notation, charset) target.
type RenderSet struct {
	Notation notation.Notation
	CharSet  notation.CharSet
}

// ASCIIStandard and ASCIIPolish are the two RenderSets the parser can
// losslessly invert.
var (
	ASCIIStandard = RenderSet{Notation: notation.Standard, CharSet: notation.ASCII}
	ASCIIPolish   = RenderSet{Notation: notation.Polish, CharSet: notation.ASCII}
)

// Write renders s under rs.
func Write(s lexicon.Sentence, rs RenderSet) string {
	w := &writer{rs: rs}
	w.writeSentence(s)
	return w.b.String()
}

type writer struct {
	b  strings.Builder
	rs RenderSet
}

func (w *writer) writeSentence(s lexicon.Sentence) {
	switch t := s.(type) {
	case lexicon.Atomic:
		w.writeIndexed(notation.AtomicLetters, t.Index, t.Subscript)
	case lexicon.Predicated:
		w.writeIndexed(notation.PredicateLetters, t.Pred.Index, t.Pred.Subscript)
		for _, param := range t.Params {
			w.writeParameter(param)
		}
	case lexicon.Quantified:
		w.b.WriteString(notation.QuantifierSymbol(w.rs.Notation, w.rs.CharSet, t.Quant))
		w.writeParameter(t.Var)
		w.writeSentence(t.Body)
	case lexicon.Operated:
		w.writeOperated(t)
	}
}

func (w *writer) writeOperated(o lexicon.Operated) {
	sym := notation.OperatorSymbol(w.rs.Notation, w.rs.CharSet, o.Op)
	if w.rs.Notation == notation.Polish || o.Op.Arity() == 1 {
		w.b.WriteString(sym)
		for _, operand := range o.Operands {
			w.writeSentence(operand)
		}
		return
	}
	// Standard notation, binary: parenthesize.
	w.b.WriteByte('(')
	w.writeSentence(o.Operands[0])
	w.b.WriteString(sym)
	w.writeSentence(o.Operands[1])
	w.b.WriteByte(')')
}

func (w *writer) writeParameter(p lexicon.Parameter) {
	switch t := p.(type) {
	case lexicon.Constant:
		w.writeIndexed(notation.ConstantLetters, t.Index, t.Subscript)
	case lexicon.Variable:
		w.writeIndexed(notation.VariableLetters, t.Index, t.Subscript)
	}
}

func (w *writer) writeIndexed(alphabet []rune, index, subscript int) {
	letter, overflow := notation.Letter(alphabet, index)
	w.b.WriteRune(letter)
	if overflow > 0 {
		w.b.WriteString(strconv.Itoa(overflow))
	}
	if subscript > 0 {
		w.b.WriteRune(notation.SubscriptMarker)
		w.b.WriteString(strconv.Itoa(subscript))
	}
}
