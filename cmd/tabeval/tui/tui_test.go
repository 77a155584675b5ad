// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"testing"

	"github.com/slukits/gounit"
	"github.com/tabeval/tabeval"
	"github.com/tabeval/tabeval/testdata/fx"
)

type Render struct{ gounit.Suite }

func (s *Render) SetUp(t *gounit.T) { t.Parallel() }

func (s *Render) Lays_out_case_lines_and_a_summary(t *gounit.T) {
	oo := tabeval.Run(tabeval.Table[int]{
		{Input: 1, Expected: 2},
		{Input: 5, Expected: 11},
	}, fx.Double[int])
	ll, _ := render(oo)
	t.Eq(4, len(ll))
	t.Eq("1: got 2", ll[0])
	t.Eq("5: got 10; want 11", ll[1])
	t.Eq("", ll[2])
	t.Contains(ll[3], "2/1 cases")
}

func (s *Render) Flags_failing_case_lines(t *gounit.T) {
	oo := tabeval.Run(tabeval.Table[int]{
		{Input: 1, Expected: 2},
		{Input: 5, Expected: 11},
	}, fx.Double[int])
	_, failed := render(oo)
	t.True(!failed.Has(0))
	t.True(failed.Has(1))
}

func TestRender(t *testing.T) {
	t.Parallel()
	gounit.Run(&Render{}, t)
}
