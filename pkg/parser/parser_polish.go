package parser

import (
	"fmt"

	"github.com/owings1/pytableaux/pkg/lexicon"
)

// parsePolish implements the Polish grammar: prefix, no parens;
// an operator symbol immediately precedes its operands; a quantifier symbol
// immediately precedes its bound variable then its scope.
//
//	sentence  → operator-sentence | quantifier-sentence | predicated | atomic
//	operator-sentence  → OP sentence [sentence]        ; second operand iff arity 2
//	quantifier-sentence → QUANT variable sentence
func (p *Parser) parsePolish() (lexicon.Sentence, error) {
	p.sc.skipSpace()
	r := p.sc.peek()

	if op, ok := p.revOps[r]; ok {
		p.sc.advance()
		operands := make([]lexicon.Sentence, op.Arity())
		for i := range operands {
			p.sc.skipSpace()
			operand, err := p.parsePolish()
			if err != nil {
				return nil, err
			}
			operands[i] = operand
		}
		s, err := lexicon.NewOperated(op, operands)
		if err != nil {
			return nil, &ParseError{Pos: p.sc.position(), Message: err.Error()}
		}
		return s, nil
	}

	if q, ok := p.revQuant[r]; ok {
		p.sc.advance()
		p.sc.skipSpace()
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		v, ok := param.(lexicon.Variable)
		if !ok {
			return nil, &ParseError{Pos: p.sc.position(), Message: fmt.Sprintf(ErrUnexpectedChar, param, "a variable")}
		}
		p.sc.skipSpace()
		body, err := p.parsePolish()
		if err != nil {
			return nil, err
		}
		s, err := lexicon.NewQuantified(q, v, body)
		if err != nil {
			return nil, &ParseError{Pos: p.sc.position(), Message: err.Error()}
		}
		return s, nil
	}

	if atom, ok := p.tryAtomic(); ok {
		return atom, nil
	}

	s, err := p.parsePredicated()
	if err != nil {
		return nil, err
	}
	return s, nil
}
