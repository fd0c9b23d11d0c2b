// Package batchio handles the JSON wire format for fol-prover batches and
// results (§4.10). Reading walks the input document path-wise with
// tidwall/gjson rather than unmarshaling into a Go struct first, and writing
// builds the output document incrementally with tidwall/sjson — the same
// schema-free "poke one field" style those two libraries exist for.
package batchio

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrMalformedBatch is returned when the input document does not have the
// shape {"sets": [[string,...],...], "budget_seconds": number}.
var ErrMalformedBatch = errors.New("batchio: malformed batch document")

// Batch is the library-facing decoded form of a batch document. It is what
// solver.FindInconsistent ultimately consumes, once ReadBatch has resolved
// it from raw JSON.
type Batch struct {
	Sets          [][]string `json:"sets"`
	BudgetSeconds float64    `json:"budget_seconds"`
}

// Result is the library-facing form of a result document.
type Result struct {
	Inconsistent []int `json:"inconsistent"`
}

// ReadBatch parses a batch document from raw JSON bytes using gjson,
// validating its shape without requiring every field to round-trip through
// encoding/json's stricter struct tags.
func ReadBatch(data []byte) (Batch, error) {
	root := gjson.ParseBytes(data)
	if !root.Exists() || !root.IsObject() {
		return Batch{}, fmt.Errorf("%w: root is not a JSON object", ErrMalformedBatch)
	}

	setsVal := root.Get("sets")
	if !setsVal.IsArray() {
		return Batch{}, fmt.Errorf("%w: \"sets\" is not an array", ErrMalformedBatch)
	}

	var batch Batch
	var err error
	setsVal.ForEach(func(_, set gjson.Result) bool {
		if !set.IsArray() {
			err = fmt.Errorf("%w: each set must be an array of strings", ErrMalformedBatch)
			return false
		}
		var exprs []string
		set.ForEach(func(_, expr gjson.Result) bool {
			if expr.Type != gjson.String {
				err = fmt.Errorf("%w: each formula must be a string", ErrMalformedBatch)
				return false
			}
			exprs = append(exprs, expr.String())
			return true
		})
		if err != nil {
			return false
		}
		batch.Sets = append(batch.Sets, exprs)
		return true
	})
	if err != nil {
		return Batch{}, err
	}

	budget := root.Get("budget_seconds")
	if budget.Exists() {
		batch.BudgetSeconds = budget.Float()
	}
	return batch, nil
}

// WriteResult encodes a Result into the wire format {"inconsistent":[...]},
// building the JSON document incrementally with sjson instead of a one-shot
// encoding/json.Marshal of Result.
func WriteResult(result Result) ([]byte, error) {
	doc := `{"inconsistent":[]}`
	var err error
	for _, index := range result.Inconsistent {
		doc, err = sjson.Set(doc, "inconsistent.-1", index)
		if err != nil {
			return nil, fmt.Errorf("batchio: building result document: %w", err)
		}
	}
	return []byte(doc), nil
}
