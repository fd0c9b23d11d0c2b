package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRunSimpleContradictionBatch(t *testing.T) {
	in := strings.NewReader(`{"sets":[["(P a)","(NOT (P a))"],["(Q b)"]],"budget_seconds":2}`)
	var out, errOut bytes.Buffer

	code := run([]string{"-log-level=error"}, in, &out, &errOut)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, errOut.String())
	}

	var result struct {
		Inconsistent []int `json:"inconsistent"`
	}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("stdout is not valid JSON result: %v (%s)", err, out.String())
	}
	if len(result.Inconsistent) != 1 || result.Inconsistent[0] != 0 {
		t.Fatalf("expected set 0 to be inconsistent, got %v", result.Inconsistent)
	}
}

func TestRunMalformedBatchExitsNonZero(t *testing.T) {
	in := strings.NewReader(`not json`)
	var out, errOut bytes.Buffer

	code := run(nil, in, &out, &errOut)
	if code == 0 {
		t.Fatal("expected non-zero exit code for malformed batch input")
	}
}

func TestRunEmptySetsProducesEmptyResult(t *testing.T) {
	in := strings.NewReader(`{"sets":[],"budget_seconds":1}`)
	var out, errOut bytes.Buffer

	code := run([]string{"-log-level=error"}, in, &out, &errOut)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	var result struct {
		Inconsistent []int `json:"inconsistent"`
	}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("stdout is not valid JSON: %v", err)
	}
	if len(result.Inconsistent) != 0 {
		t.Fatalf("expected no inconsistent sets, got %v", result.Inconsistent)
	}
}
