// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tabeval evaluates a pure, single-argument integer function
// against an ordered table of declared (input, expected) cases and
// returns for each case an outcome record stating what the function
// actually returned and whether it matched.  Evaluation is strictly
// separated from presentation: the runner produces data, reporting
// sinks (see pkg/report) render it.
//
// A table is authored literally by the caller:
//
//	tt := tabeval.Table[int]{
//	    {Input: 0, Expected: 0},
//	    {Input: 1, Expected: 2},
//	    {Input: -100, Expected: -200},
//	}
//
//	oo := tabeval.Run(tt, func(n int) int { return n + n })
//	if !oo.Passed() {
//	    oo.ForFailed(func(idx int, o tabeval.Outcome[int]) {
//	        fmt.Println(o.Reason())
//	    })
//	}
//
// Run evaluates the table in order, one synchronous invocation per
// case, and never aborts early: a case whose invocation panics is
// recorded as failed with the captured reason while the remaining
// cases are still evaluated.  Hence a single run yields the maximal
// diagnostic information about the function under test.  The outcome
// sequence preserves table order which makes runs with the same table
// and function reproducible.
//
// The function under test is expected to be pure, total and
// deterministic; tabeval neither enforces nor needs this but all
// guarantees about reproducible outcome sequences rest on it.
//
// The cmd/tabeval command wraps the library for the console: it loads
// a JSON case table, evaluates it and renders the outcomes either as
// plain text, as a structured JSON report or in a terminal ui.
package tabeval
