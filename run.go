// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tabeval

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// An Outcome records the evaluation of one case: the case's input and
// expected value, the value the function under test actually returned
// and whether the two matched.  If the invocation itself failed, i.e.
// panicked, Err holds the captured reason, Passed is false and Actual
// is the zero value.  Start and End frame the invocation.
//
// Outcomes are owned by their creating run; Run never retains or
// shares them.
type Outcome[N constraints.Integer] struct {
	Input    N
	Expected N
	Actual   N

	// Passed is true iff the invocation returned and its return value
	// equals Expected.
	Passed bool

	// Err is non-nil iff the invocation failed to produce a value.
	Err error

	Start time.Time
	End   time.Time
}

// Duration reports the time the evaluation of an outcome's case took.
func (o Outcome[N]) Duration() time.Duration { return o.End.Sub(o.Start) }

// String represents an outcome as a single report line.
func (o Outcome[N]) String() string { return o.report() }

// Outcomes is the ordered result of evaluating a table: one outcome
// per case, in table order.
type Outcomes[N constraints.Integer] []Outcome[N]

// Passed is true iff every single outcome passed.  In particular an
// empty outcome sequence, i.e. the evaluation of an empty table, is a
// passing run.
func (oo Outcomes[N]) Passed() bool {
	for _, o := range oo {
		if o.Passed {
			continue
		}
		return false
	}
	return true
}

// Len reports the number of evaluated cases.
func (oo Outcomes[N]) Len() int { return len(oo) }

// LenFailed reports the number of failed cases, counting mismatches
// and failed invocations alike.
func (oo Outcomes[N]) LenFailed() int {
	n := 0
	for _, o := range oo {
		if o.Passed {
			continue
		}
		n++
	}
	return n
}

// Duration reports the accumulated evaluation time of all cases.
func (oo Outcomes[N]) Duration() time.Duration {
	var d time.Duration
	for _, o := range oo {
		d += o.Duration()
	}
	return d
}

// For calls back for each outcome in table order.
func (oo Outcomes[N]) For(cb func(idx int, o Outcome[N])) {
	for i, o := range oo {
		cb(i, o)
	}
}

// ForFailed calls back, in table order, for each outcome which did
// not pass.
func (oo Outcomes[N]) ForFailed(cb func(idx int, o Outcome[N])) {
	for i, o := range oo {
		if o.Passed {
			continue
		}
		cb(i, o)
	}
}

// Run evaluates given table in order against given function under
// test and returns one outcome per case.  Run is a stateless, fully
// synchronous single pass; it is fail-soft per case: a case whose
// invocation panics is recorded as failed with the captured reason
// while all remaining cases are still evaluated.  A nil table is the
// empty table yielding an empty, passing outcome sequence.  A nil fn
// is a precondition violation and panics immediately.
func Run[N constraints.Integer](tt Table[N], fn Func[N]) Outcomes[N] {
	if fn == nil {
		panic("tabeval: run: function under test must not be nil")
	}
	oo := make(Outcomes[N], 0, len(tt))
	for _, c := range tt {
		oo = append(oo, evaluate(c, fn))
	}
	return oo
}

// evaluate invokes the function under test for one case converting a
// potential panic of the invocation into a failed outcome.
func evaluate[N constraints.Integer](c Case[N], fn Func[N]) (o Outcome[N]) {
	o.Input, o.Expected = c.Input, c.Expected
	o.Start = time.Now()
	defer func() {
		o.End = time.Now()
		if r := recover(); r != nil {
			o.Passed = false
			o.Err = errors.Errorf(
				"invoke function under test: %v", r)
		}
	}()
	o.Actual = fn(c.Input)
	o.Passed = o.Actual == c.Expected
	return o
}
