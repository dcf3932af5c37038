// Package parser implements table-driven recursive-descent parsers for the
// Polish and Standard notations, producing pkg/lexicon Sentence values.
// parser.go holds the shared driver; parser_polish.go and
// parser_standard.go each implement one grammar.
package parser

import (
	"fmt"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/notation"
	"github.com/owings1/pytableaux/pkg/predstore"
)

// Parser parses a single sentence string under a fixed notation and
// predicate-store context.
type Parser struct {
	sc       *scanner
	notation notation.Notation
	store    *predstore.Store
	revOps   map[rune]lexicon.Operator
	revQuant map[rune]lexicon.Quantifier
}

// New constructs a Parser for input under notation n, resolving predicate
// symbols against store (system predicates are always resolvable).
func New(input string, n notation.Notation, store *predstore.Store) *Parser {
	if store == nil {
		store = predstore.New()
	}
	return &Parser{
		sc:       newScanner(input),
		notation: n,
		store:    store,
		revOps:   notation.ReverseOperators(n),
		revQuant: notation.ReverseQuantifiers(n),
	}
}

// Parse parses the full input as one sentence. It is an error for trailing
// non-whitespace input to remain, or for the result to contain a free
// variable.
func (p *Parser) Parse() (lexicon.Sentence, error) {
	p.sc.skipSpace()
	var (
		s   lexicon.Sentence
		err error
	)
	if p.notation == notation.Polish {
		s, err = p.parsePolish()
	} else {
		s, err = p.parseStandard()
	}
	if err != nil {
		return nil, err
	}
	p.sc.skipSpace()
	if !p.sc.eof() {
		return nil, &ParseError{Pos: p.sc.position(), Message: fmt.Sprintf(ErrExtraInput, string(p.sc.runes[p.sc.pos:]))}
	}
	if free := lexicon.FreeVariables(s); len(free) > 0 {
		return nil, &ParseError{Pos: p.sc.position(), Message: fmt.Sprintf(ErrFreeVariable, free[0].String())}
	}
	return s, nil
}

// Parse is a package-level convenience wrapping New(...).Parse().
func Parse(input string, n notation.Notation, store *predstore.Store) (lexicon.Sentence, error) {
	return New(input, n, store).Parse()
}
