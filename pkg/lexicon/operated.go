package lexicon

import (
	"fmt"
	"strings"
)

// Operated applies Op to an ordered tuple of operands. Invariant:
// len(Operands) == Op.Arity().
type Operated struct {
	Op       Operator
	Operands []Sentence
}

// NewOperated validates len(operands) == op.Arity() and constructs the
// sentence.
func NewOperated(op Operator, operands []Sentence) (Operated, error) {
	if len(operands) != op.Arity() {
		return Operated{}, fmt.Errorf("operator %s has arity %d, got %d operands", op, op.Arity(), len(operands))
	}
	cp := make([]Sentence, len(operands))
	copy(cp, operands)
	return Operated{Op: op, Operands: cp}, nil
}

func (Operated) sentenceNode() {}

func (o Operated) SortTuple() []int {
	out := []int{rankOperated, int(o.Op)}
	for _, operand := range o.Operands {
		out = append(out, operand.SortTuple()...)
	}
	return out
}

func (o Operated) String() string {
	names := map[Operator]string{
		Assertion: "*", Negation: "~", Conjunction: "&", Disjunction: "V",
		MaterialConditional: "⊃", MaterialBiconditional: "≡",
		Conditional: ">", Biconditional: "<>",
		Possibility: "◇", Necessity: "□",
	}
	sym := names[o.Op]
	var b strings.Builder
	if o.Op.Arity() == 1 {
		b.WriteString(sym)
		b.WriteString(o.Operands[0].String())
		return b.String()
	}
	b.WriteByte('(')
	b.WriteString(o.Operands[0].String())
	b.WriteByte(' ')
	b.WriteString(sym)
	b.WriteByte(' ')
	b.WriteString(o.Operands[1].String())
	b.WriteByte(')')
	return b.String()
}
