// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package report renders the outcome sequences produced by tabeval's
// runner.  Sinks are presentation only: they consume outcomes after
// the evaluation finished and never influence it.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/tabeval/tabeval"
	"golang.org/x/exp/constraints"
)

// A Sink consumes the outcomes of a table evaluation and renders
// them.  A sink must not modify received outcomes.
type Sink[N constraints.Integer] interface {
	Report(tabeval.Outcomes[N]) error
}

// Writer renders outcomes as plain text to a wrapped io.Writer: one
// "pass"/"fail" line per case followed by a summary line.  Its zero
// value is not ready to use, W must be set.
type Writer[N constraints.Integer] struct {

	// W receives the rendered report.
	W io.Writer

	// FailedOnly suppresses the per-case lines of passing cases.
	FailedOnly bool
}

// Report writes one line per outcome and a closing summary to the
// wrapped writer.  The first error of an underlying write is
// returned.
func (w *Writer[N]) Report(oo tabeval.Outcomes[N]) (err error) {
	oo.For(func(_ int, o tabeval.Outcome[N]) {
		if err != nil || (w.FailedOnly && o.Passed) {
			return
		}
		_, err = fmt.Fprintf(w.W, "%s %s\n", verdict(o), o)
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w.W, Summary(oo))
	return err
}

func verdict[N constraints.Integer](o tabeval.Outcome[N]) string {
	if o.Passed {
		return "pass"
	}
	return "fail"
}

// Summary formats the aggregate of an outcome sequence: evaluated and
// failed case counts, the accumulated evaluation time and the overall
// verdict.
func Summary[N constraints.Integer](oo tabeval.Outcomes[N]) string {
	verdict := "passed"
	if !oo.Passed() {
		verdict = "failed"
	}
	return fmt.Sprintf("%d/%d cases %s: %s\n",
		oo.Len(), oo.LenFailed(),
		oo.Duration().Round(time.Microsecond), verdict)
}
