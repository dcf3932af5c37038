package parser

import (
	"fmt"

	"github.com/owings1/pytableaux/pkg/lexicon"
)

// parseStandard implements the Standard grammar: infix with
// parentheses mandatory around binary operators; unary operators prefix;
// quantifiers prefix, binding one variable followed by a sentence.
//
//	sentence   → unary | binary | quantified | predicated | atomic
//	unary      → UNARYOP sentence
//	binary     → "(" sentence BINARYOP sentence ")"
//	quantified → QUANT variable sentence
func (p *Parser) parseStandard() (lexicon.Sentence, error) {
	p.sc.skipSpace()
	r := p.sc.peek()

	if r == '(' {
		p.sc.advance()
		p.sc.skipSpace()
		left, err := p.parseStandard()
		if err != nil {
			return nil, err
		}
		p.sc.skipSpace()
		opr := p.sc.peek()
		op, ok := p.revOps[opr]
		if !ok || op.Arity() != 2 {
			return nil, &ParseError{Pos: p.sc.position(), Message: fmt.Sprintf(ErrUnexpectedChar, describeRune(opr, p.sc.eof()), "a binary operator")}
		}
		p.sc.advance()
		p.sc.skipSpace()
		right, err := p.parseStandard()
		if err != nil {
			return nil, err
		}
		p.sc.skipSpace()
		if p.sc.peek() != ')' {
			return nil, &ParseError{Pos: p.sc.position(), Message: fmt.Sprintf(ErrUnexpectedChar, describeRune(p.sc.peek(), p.sc.eof()), "')'")}
		}
		p.sc.advance()
		s, err := lexicon.NewOperated(op, []lexicon.Sentence{left, right})
		if err != nil {
			return nil, &ParseError{Pos: p.sc.position(), Message: err.Error()}
		}
		return s, nil
	}

	if op, ok := p.revOps[r]; ok && op.Arity() == 1 {
		p.sc.advance()
		operand, err := p.parseStandard()
		if err != nil {
			return nil, err
		}
		s, err := lexicon.NewOperated(op, []lexicon.Sentence{operand})
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
		body, err := p.parseStandard()
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
