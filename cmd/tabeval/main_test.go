// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/slukits/gounit"
	"github.com/tabeval/tabeval"
)

type Loader struct{ gounit.Suite }

func (s *Loader) SetUp(t *gounit.T) { t.Parallel() }

func (s *Loader) Parses_a_json_case_table_in_order(t *gounit.T) {
	tt, err := parseTable([]byte(
		`[{"input": 21, "expected": 42}, {"input": 0, "expected": 0}]`))
	t.FatalOn(err)
	t.Eq(2, len(tt))
	t.Eq(int64(21), tt[0].Input)
	t.Eq(int64(42), tt[0].Expected)
	t.Eq(int64(0), tt[1].Input)
}

func (s *Loader) Parses_an_empty_table(t *gounit.T) {
	tt, err := parseTable([]byte(`[]`))
	t.FatalOn(err)
	t.Eq(0, len(tt))
}

func (s *Loader) Fails_parsing_malformed_json(t *gounit.T) {
	_, err := parseTable([]byte(`{"input": 1}`))
	t.Err(err)
	t.Contains(err.Error(), "parse case table")
}

func (s *Loader) Loads_a_table_file(t *gounit.T) {
	tt, err := loadTable("testdata/table.json")
	t.FatalOn(err)
	t.Eq(3, len(tt))
	t.True(tabeval.Run(tt, double).Passed())
}

func (s *Loader) Fails_loading_a_missing_file(t *gounit.T) {
	_, err := loadTable("testdata/missing.json")
	t.Err(err)
	t.Contains(err.Error(), "load case table")
}

func TestLoader(t *testing.T) {
	t.Parallel()
	gounit.Run(&Loader{}, t)
}

type Demo struct{ gounit.Suite }

func (s *Demo) SetUp(t *gounit.T) { t.Parallel() }

func (s *Demo) Doubles(t *gounit.T) {
	t.Eq(int64(42), double(21))
	t.Eq(int64(-200), double(-100))
	t.Eq(int64(0), double(0))
}

func (s *Demo) Table_passes(t *gounit.T) {
	oo := tabeval.Run(demoTable, double)
	t.Eq(len(demoTable), oo.Len())
	t.True(oo.Passed())
}

func (s *Demo) Reports_the_authored_mismatch_on_request(t *gounit.T) {
	oo := tabeval.Run(append(demoTable, mismatchCase), double)
	t.Eq(len(demoTable)+1, oo.Len())
	t.Eq(1, oo.LenFailed())
	t.True(!oo.Passed())
	t.Eq(int64(10), oo[oo.Len()-1].Actual)
}

func TestDemo(t *testing.T) {
	t.Parallel()
	gounit.Run(&Demo{}, t)
}
