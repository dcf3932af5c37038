package notation

import "github.com/owings1/pytableaux/pkg/lexicon"

// OperatorSymbol returns the glyph for op under the given notation/charset.
// Polish symbols are notation-invariant prefix glyphs; Standard uses the
// conventional infix/prefix glyphs students of the subject expect.
func OperatorSymbol(n Notation, c CharSet, op lexicon.Operator) string {
	if n == Polish {
		return polishOperatorSymbols[c][op]
	}
	return standardOperatorSymbols[c][op]
}

// QuantifierSymbol returns the glyph for q under the given notation/charset.
func QuantifierSymbol(n Notation, c CharSet, q lexicon.Quantifier) string {
	if n == Polish {
		return polishQuantifierSymbols[c][q]
	}
	return standardQuantifierSymbols[c][q]
}

var polishOperatorSymbols = map[CharSet]map[lexicon.Operator]string{
	ASCII: {
		lexicon.Assertion: "T", lexicon.Negation: "N", lexicon.Conjunction: "K",
		lexicon.Disjunction: "A", lexicon.MaterialConditional: "C", lexicon.MaterialBiconditional: "E",
		lexicon.Conditional: "U", lexicon.Biconditional: "B",
		lexicon.Possibility: "M", lexicon.Necessity: "L",
	},
}

var standardOperatorSymbols = map[CharSet]map[lexicon.Operator]string{
	ASCII: {
		lexicon.Assertion: "*", lexicon.Negation: "~", lexicon.Conjunction: "&",
		lexicon.Disjunction: "V", lexicon.MaterialConditional: ">", lexicon.MaterialBiconditional: "#",
		lexicon.Conditional: "$", lexicon.Biconditional: "%",
		lexicon.Possibility: "P", lexicon.Necessity: "N",
	},
	Unicode: {
		lexicon.Assertion: "○", lexicon.Negation: "¬", lexicon.Conjunction: "∧",
		lexicon.Disjunction: "∨", lexicon.MaterialConditional: "⊃", lexicon.MaterialBiconditional: "≡",
		lexicon.Conditional: "→", lexicon.Biconditional: "↔",
		lexicon.Possibility: "◇", lexicon.Necessity: "□",
	},
	HTML: {
		lexicon.Assertion: "&#9675;", lexicon.Negation: "&not;", lexicon.Conjunction: "&and;",
		lexicon.Disjunction: "&or;", lexicon.MaterialConditional: "&sup;", lexicon.MaterialBiconditional: "&equiv;",
		lexicon.Conditional: "&rarr;", lexicon.Biconditional: "&harr;",
		lexicon.Possibility: "&#9671;", lexicon.Necessity: "&#9633;",
	},
	LaTeX: {
		lexicon.Assertion: `\circ`, lexicon.Negation: `\lnot`, lexicon.Conjunction: `\land`,
		lexicon.Disjunction: `\lor`, lexicon.MaterialConditional: `\supset`, lexicon.MaterialBiconditional: `\equiv`,
		lexicon.Conditional: `\rightarrow`, lexicon.Biconditional: `\leftrightarrow`,
		lexicon.Possibility: `\Diamond`, lexicon.Necessity: `\Box`,
	},
}

var polishQuantifierSymbols = map[CharSet]map[lexicon.Quantifier]string{
	ASCII: {lexicon.Existential: "X", lexicon.Universal: "V"},
}

// ReverseOperators returns, for every charset table of n, a rune->Operator
// map suitable for lexing. Single-rune symbols only (multi-rune glyphs like
// HTML entities or LaTeX macros are write-only).
func ReverseOperators(n Notation) map[rune]lexicon.Operator {
	tables := polishOperatorSymbols
	if n == Standard {
		tables = standardOperatorSymbols
	}
	out := map[rune]lexicon.Operator{}
	for _, table := range tables {
		for op, sym := range table {
			r := []rune(sym)
			if len(r) == 1 {
				out[r[0]] = op
			}
		}
	}
	return out
}

// ReverseQuantifiers returns a rune->Quantifier map for lexing, analogous to
// ReverseOperators.
func ReverseQuantifiers(n Notation) map[rune]lexicon.Quantifier {
	tables := polishQuantifierSymbols
	if n == Standard {
		tables = standardQuantifierSymbols
	}
	out := map[rune]lexicon.Quantifier{}
	for _, table := range tables {
		for q, sym := range table {
			r := []rune(sym)
			if len(r) == 1 {
				out[r[0]] = q
			}
		}
	}
	return out
}

var standardQuantifierSymbols = map[CharSet]map[lexicon.Quantifier]string{
	ASCII:   {lexicon.Existential: "E", lexicon.Universal: "A"},
	Unicode: {lexicon.Existential: "∃", lexicon.Universal: "∀"},
	HTML:    {lexicon.Existential: "&exist;", lexicon.Universal: "&forall;"},
	LaTeX:   {lexicon.Existential: `\exists`, lexicon.Universal: `\forall`},
}
