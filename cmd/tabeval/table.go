// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/tabeval/tabeval"
)

// double is the built-in function under test.
func double(n int64) int64 { return n + n }

// demoTable is evaluated if no case table is given.
var demoTable = tabeval.Table[int64]{
	{Input: 0, Expected: 0},
	{Input: 1, Expected: 2},
	{Input: 21, Expected: 42},
	{Input: -100, Expected: -200},
}

// mismatchCase is authored wrong on purpose; the demo appends it on
// request to also show a mismatch report.
var mismatchCase = tabeval.Case[int64]{Input: 5, Expected: 11}

// caseRecord mirrors one entry of a JSON case table.
type caseRecord struct {
	Input    int64 `json:"input"`
	Expected int64 `json:"expected"`
}

// loadTable reads and parses the JSON case table at given path.
func loadTable(path string) (tabeval.Table[int64], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessage(err, "load case table")
	}
	return parseTable(data)
}

// parseTable unmarshals a JSON array of {"input", "expected"} pairs
// preserving its order.
func parseTable(data []byte) (tabeval.Table[int64], error) {
	rr := []caseRecord{}
	if err := json.Unmarshal(data, &rr); err != nil {
		return nil, errors.WithMessage(err, "parse case table")
	}
	tt := make(tabeval.Table[int64], 0, len(rr))
	for _, r := range rr {
		tt = append(tt, tabeval.Case[int64]{
			Input: r.Input, Expected: r.Expected})
	}
	return tt, nil
}
