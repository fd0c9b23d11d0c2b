package solver

import (
	"fmt"

	"github.com/fol-prover/resolver/ast"
	"github.com/fol-prover/resolver/parser"
)

// parseAll parses every S-expression string in a set into a Formula,
// returning the first parse error (with its originating index) so the
// caller can log which formula was malformed and skip the whole set.
func parseAll(exprs []string) ([]ast.Formula, error) {
	out := make([]ast.Formula, 0, len(exprs))
	for i, src := range exprs {
		f, err := parser.ParseString(src)
		if err != nil {
			return nil, fmt.Errorf("formula %d: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}
