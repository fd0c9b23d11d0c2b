// Package lexer tokenizes a raw S-expression source string into the lazy
// token sequence consumed by package parser. It is a thin forward-only
// scanner; it performs no lookahead beyond the current keyword candidate.
package lexer

import (
	"errors"

	"github.com/fol-prover/resolver/ast"
)

// ErrInvalidToken is returned by Next when the input contains a character, or
// character sequence, that cannot begin any token in the grammar.
var ErrInvalidToken = errors.New("lexer: invalid token")

var keywords = []struct {
	text string
	kind ast.TokenKind
}{
	// Longest-first within a shared leading letter so a greedy exact-match
	// scan below never mistakes one reserved word for a prefix of another.
	{"FORALL", ast.Forall},
	{"EXISTS", ast.Exists},
	{"IMPLIES", ast.Implies},
	{"CONTR", ast.Contr},
	{"AND", ast.And},
	{"OR", ast.Or},
	{"NOT", ast.Not},
}

// Lexer is a lazy forward iterator over tokens. Call Next repeatedly until it
// reports ok=false.
type Lexer struct {
	src   string
	index int
}

// New constructs a Lexer over the given source text.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next token. ok is false once the source is exhausted; err
// is non-nil if the source contains an unrecognized character sequence.
func (l *Lexer) Next() (tok ast.Token, ok bool, err error) {
	l.skipWhitespace()
	if l.index >= len(l.src) {
		return ast.Token{}, false, nil
	}

	c := l.src[l.index]
	switch {
	case c == '(':
		l.index++
		return ast.Token{Kind: ast.LParen}, true, nil
	case c == ')':
		l.index++
		return ast.Token{Kind: ast.RParen}, true, nil
	case isUpper(c):
		if kind, width, matched := matchKeyword(l.src[l.index:]); matched {
			l.index += width
			return ast.Token{Kind: kind}, true, nil
		}
		// A capitalized name such as the "P" in "(P a)" lexes as a symbol
		// with its leading letter folded to lowercase; any other uppercase
		// run that is not a reserved word (e.g. "XOR") is rejected.
		if l.index+1 < len(l.src) && isUpper(l.src[l.index+1]) {
			return ast.Token{}, false, ErrInvalidToken
		}
		start := l.index
		l.index++
		for l.index < len(l.src) && (isLower(l.src[l.index]) || isDigit(l.src[l.index])) {
			l.index++
		}
		return ast.Token{Kind: ast.Symbol, Text: string(rune(c-'A'+'a')) + l.src[start+1:l.index]}, true, nil
	case isLower(c) || isDigit(c):
		start := l.index
		for l.index < len(l.src) && (isLower(l.src[l.index]) || isDigit(l.src[l.index])) {
			l.index++
		}
		return ast.Token{Kind: ast.Symbol, Text: l.src[start:l.index]}, true, nil
	default:
		return ast.Token{}, false, ErrInvalidToken
	}
}

// matchKeyword finds the reserved word that src begins with, returning its
// token kind and byte width. Reserved words are case-sensitive and exact:
// a deviation like "forall" never reaches here (lowercase is scanned as a
// symbol), and a near-miss like "FOR" is rejected.
func matchKeyword(src string) (ast.TokenKind, int, bool) {
	for _, kw := range keywords {
		n := len(kw.text)
		if len(src) >= n && src[:n] == kw.text {
			return kw.kind, n, true
		}
	}
	return 0, 0, false
}

func (l *Lexer) skipWhitespace() {
	for l.index < len(l.src) && isSpace(l.src[l.index]) {
		l.index++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Tokens drains the lexer into a slice, for callers (and tests) that prefer a
// materialized token stream over incremental Next calls.
func Tokens(src string) ([]ast.Token, error) {
	l := New(src)
	var out []ast.Token
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, tok)
	}
	return out, nil
}
