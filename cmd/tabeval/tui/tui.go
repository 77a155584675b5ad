// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tui shows a table evaluation's report in a terminal ui.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/slukits/ints"
	"github.com/slukits/lines"
	"github.com/tabeval/tabeval"
	"github.com/tabeval/tabeval/pkg/report"
	"golang.org/x/exp/constraints"
)

// view is the lines-component displaying the report: one line per
// case followed by the summary.  Failing case lines are highlighted.
type view struct {
	lines.Component
	ll     []string
	failed *ints.Set
}

func (v *view) OnInit(e *lines.Env) {
	v.FF.Set(lines.Scrollable)
	for idx, content := range v.ll {
		fmt.Fprint(v.wrt(idx, e), content)
	}
}

func (v *view) wrt(idx int, e *lines.Env) io.Writer {
	if v.failed.Has(idx) {
		return e.BG(lines.Red).FG(lines.White).LL(idx)
	}
	return e.LL(idx)
}

// OnContext scrolls the report down.  If at bottom it is scrolled to
// the top.
func (v *view) OnContext(e *lines.Env, x, y int) {
	v.scroll()
}

// OnRune scrolls the report down iff given rune is the space rune.
// If at bottom it is scrolled to the top.
func (v *view) OnRune(e *lines.Env, rn rune) {
	if rn != ' ' {
		return
	}
	v.scroll()
}

func (v *view) scroll() {
	if v.Scroll.IsAtBottom() {
		v.Scroll.ToTop()
		return
	}
	v.Scroll.Down()
}

// render lays the report out as display lines along with the set of
// line indices holding failing cases.
func render[N constraints.Integer](
	oo tabeval.Outcomes[N],
) ([]string, *ints.Set) {
	ll, failed := []string{}, &ints.Set{}
	oo.For(func(_ int, o tabeval.Outcome[N]) {
		if !o.Passed {
			failed.Add(len(ll))
		}
		ll = append(ll, o.String())
	})
	ll = append(ll, "",
		strings.TrimSuffix(report.Summary(oo), "\n"))
	return ll, failed
}

// Show displays given outcomes in a terminal ui blocking until the
// user quits with 'q', ctrl-c or ctrl-d.
func Show[N constraints.Integer](oo tabeval.Outcomes[N]) {
	ll, failed := render(oo)
	lines.Term(&view{ll: ll, failed: failed}).WaitForQuit()
}
