package parser

import (
	"github.com/fol-prover/resolver/ast"
	"github.com/fol-prover/resolver/lexer"
)

// ParseString lexes and parses a complete S-expression source string in one
// call; it is the entry point callers outside this package normally use.
func ParseString(src string) (ast.Formula, error) {
	return Parse(lexer.New(src))
}
