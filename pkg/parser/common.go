package parser

import (
	"fmt"

	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/notation"
)

// readIndexed reads letter+overflow+subscript for one of the fixed
// alphabets (see pkg/notation doc comment) and returns the decoded
// (index, subscript). ok is false if the current rune is not in alphabet.
func (p *Parser) readIndexed(alphabet []rune) (index, subscript int, ok bool) {
	r := p.sc.peek()
	pos := notation.IndexOf(alphabet, r)
	if pos < 0 {
		return 0, 0, false
	}
	p.sc.advance()
	overflow, _ := p.sc.readDigits()
	sub, _ := p.sc.readSubscriptMarker()
	return pos + overflow*len(alphabet), sub, true
}

func (p *Parser) parseParameter() (lexicon.Parameter, error) {
	if idx, sub, ok := p.readIndexed(notation.ConstantLetters); ok {
		return lexicon.Constant{Index: idx, Subscript: sub}, nil
	}
	if idx, sub, ok := p.readIndexed(notation.VariableLetters); ok {
		return lexicon.Variable{Index: idx, Subscript: sub}, nil
	}
	return nil, &ParseError{Pos: p.sc.position(), Message: fmt.Sprintf(ErrUnexpectedChar, describeRune(p.sc.peek(), p.sc.eof()), "a constant or variable")}
}

func (p *Parser) parsePredicate() (lexicon.Predicate, bool, error) {
	idx, sub, ok := p.readIndexed(notation.PredicateLetters)
	if !ok {
		return lexicon.Predicate{}, false, nil
	}
	pred, found := p.store.Get(idx, sub)
	if !found {
		return lexicon.Predicate{}, true, &ParseError{Pos: p.sc.position(), Message: fmt.Sprintf(ErrUnknownPredicate, idx, sub)}
	}
	return pred, true, nil
}

func (p *Parser) parsePredicated() (lexicon.Predicated, error) {
	pred, ok, err := p.parsePredicate()
	if err != nil {
		return lexicon.Predicated{}, err
	}
	if !ok {
		return lexicon.Predicated{}, &ParseError{Pos: p.sc.position(), Message: fmt.Sprintf(ErrUnexpectedChar, describeRune(p.sc.peek(), p.sc.eof()), "a predicate")}
	}
	params := make([]lexicon.Parameter, 0, pred.Arity)
	for i := 0; i < pred.Arity; i++ {
		param, err := p.parseParameter()
		if err != nil {
			return lexicon.Predicated{}, err
		}
		params = append(params, param)
	}
	s, err := lexicon.NewPredicated(pred, params)
	if err != nil {
		return lexicon.Predicated{}, &ParseError{Pos: p.sc.position(), Message: err.Error()}
	}
	return s, nil
}

func (p *Parser) tryAtomic() (lexicon.Atomic, bool) {
	idx, sub, ok := p.readIndexed(notation.AtomicLetters)
	if !ok {
		return lexicon.Atomic{}, false
	}
	return lexicon.Atomic{Index: idx, Subscript: sub}, true
}

func describeRune(r rune, eof bool) string {
	if eof {
		return "<EOF>"
	}
	return string(r)
}
