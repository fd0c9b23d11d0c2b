// Package parser implements the recursive-descent wrapper that turns a lazy
// token stream (package lexer) into the raw FOL AST (package ast). It is a
// straightforward grammar walk, not intellectually novel (§1 of the
// specification), but is built to the exact token/AST contract the formula
// compiler depends on.
package parser

import (
	"errors"
	"fmt"

	"github.com/fol-prover/resolver/ast"
	"github.com/fol-prover/resolver/term"
)

// ErrUnexpectedToken is returned when the token stream does not match the
// grammar at the current position, including premature end of input.
var ErrUnexpectedToken = errors.New("parser: unexpected token")

// TokenSource is the lazy forward token iterator the parser consumes; the
// *lexer.Lexer type satisfies this interface.
type TokenSource interface {
	Next() (tok ast.Token, ok bool, err error)
}

// Parse consumes tokens from src and returns the parsed formula.
//
//	formula := symbol | '(' expr ')'
//	expr    := QUANT symbol formula
//	         | BINOP formula formula
//	         | 'NOT' formula
//	         | 'CONTR'
//	         | PRED_SYM term*
func Parse(src TokenSource) (ast.Formula, error) {
	p := &parser{src: src, scope: make(map[string]int)}
	f, err := p.formula()
	if err != nil {
		return nil, err
	}
	if extra, ok, err := p.src.Next(); err != nil {
		return nil, fmt.Errorf("parser: lex error: %w", err)
	} else if ok {
		return nil, fmt.Errorf("%w: trailing input after formula, starting with %v", ErrUnexpectedToken, extra.Kind)
	}
	return f, nil
}

type parser struct {
	src     TokenSource
	lookbuf []ast.Token
	// scope counts, per name, how many enclosing quantifiers currently bind
	// it. A bare symbol encountered in term position is a Var iff its count
	// is > 0; otherwise it is a zero-arity App (a constant). A counting
	// multiset (rather than a simple set) is required because nested or
	// sibling quantifiers may reuse the same source name before
	// standardization renames everything apart.
	scope map[string]int
}

func (p *parser) next() (ast.Token, error) {
	if len(p.lookbuf) > 0 {
		tok := p.lookbuf[0]
		p.lookbuf = p.lookbuf[1:]
		return tok, nil
	}
	tok, ok, err := p.src.Next()
	if err != nil {
		return ast.Token{}, fmt.Errorf("parser: lex error: %w", err)
	}
	if !ok {
		return ast.Token{}, fmt.Errorf("%w: premature end of input", ErrUnexpectedToken)
	}
	return tok, nil
}

func (p *parser) expect(kind ast.TokenKind) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != kind {
		return fmt.Errorf("%w: expected %v, got %v", ErrUnexpectedToken, kind, tok.Kind)
	}
	return nil
}

// formula parses `symbol | '(' expr ')'` when used as a bare nullary
// predicate position, falling back to the parenthesized form otherwise.
func (p *parser) formula() (ast.Formula, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == ast.Symbol {
		return ast.Pred{Sym: tok.Text}, nil
	}
	if tok.Kind != ast.LParen {
		return nil, fmt.Errorf("%w: expected '(' or symbol, got %v", ErrUnexpectedToken, tok.Kind)
	}
	f, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(ast.RParen); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *parser) expr() (ast.Formula, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case ast.Forall, ast.Exists:
		v, err := p.symbol()
		if err != nil {
			return nil, err
		}
		p.scope[v]++
		sub, err := p.formula()
		p.scope[v]--
		if err != nil {
			return nil, err
		}
		if tok.Kind == ast.Forall {
			return ast.Forall{Var: v, Formula: sub}, nil
		}
		return ast.Exists{Var: v, Formula: sub}, nil
	case ast.And, ast.Or, ast.Implies:
		left, err := p.formula()
		if err != nil {
			return nil, err
		}
		right, err := p.formula()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case ast.And:
			return ast.And{Left: left, Right: right}, nil
		case ast.Or:
			return ast.Or{Left: left, Right: right}, nil
		default:
			return ast.Implies{Left: left, Right: right}, nil
		}
	case ast.Not:
		sub, err := p.formula()
		if err != nil {
			return nil, err
		}
		return ast.Not{Formula: sub}, nil
	case ast.Contr:
		return ast.Contradiction{}, nil
	case ast.Symbol:
		args, err := p.terms()
		if err != nil {
			return nil, err
		}
		return ast.Pred{Sym: tok.Text, Args: args}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v in expression position", ErrUnexpectedToken, tok.Kind)
	}
}

func (p *parser) symbol() (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	if tok.Kind != ast.Symbol {
		return "", fmt.Errorf("%w: expected symbol, got %v", ErrUnexpectedToken, tok.Kind)
	}
	return tok.Text, nil
}

// terms parses zero or more `term` elements up to the closing ')' belonging
// to the enclosing predicate application. The closing paren is not consumed
// here; the caller's formula() does that.
func (p *parser) terms() ([]term.Term, error) {
	var out []term.Term
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == ast.RParen {
			p.lookbuf = append(p.lookbuf, tok)
			return out, nil
		}
		t, err := p.termFrom(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
}

// termFrom parses a single `term` given its already-consumed first token.
//
//	term := symbol | '(' fun_sym term* ')'
func (p *parser) termFrom(first ast.Token) (term.Term, error) {
	if first.Kind == ast.Symbol {
		if p.scope[first.Text] > 0 {
			return term.NewVar(first.Text), nil
		}
		return term.NewConst(first.Text), nil
	}
	if first.Kind != ast.LParen {
		return nil, fmt.Errorf("%w: expected term, got %v", ErrUnexpectedToken, first.Kind)
	}
	fun, err := p.symbol()
	if err != nil {
		return nil, err
	}
	args, err := p.terms()
	if err != nil {
		return nil, err
	}
	if err := p.expect(ast.RParen); err != nil {
		return nil, err
	}
	return term.NewApp(fun, args...), nil
}
