// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/tabeval/tabeval"
	"golang.org/x/exp/constraints"
)

// Meta describes one table evaluation in a JSON report.
type Meta struct {
	RunID     string  `json:"run_id"`
	Timestamp string  `json:"timestamp"`
	Duration  string  `json:"duration"`
	Seconds   float64 `json:"duration_seconds"`
	Cases     int     `json:"cases"`
	Failed    int     `json:"failed"`
	Passed    bool    `json:"passed"`
}

// Record is the JSON representation of one outcome.
type Record[N constraints.Integer] struct {
	Input    N      `json:"input"`
	Expected N      `json:"expected"`
	Actual   N      `json:"actual"`
	Passed   bool   `json:"passed"`
	Reason   string `json:"reason,omitempty"`
}

// Document is the complete JSON report of a table evaluation.
type Document[N constraints.Integer] struct {
	Meta  Meta        `json:"meta"`
	Cases []Record[N] `json:"cases"`
}

// JSON renders outcomes as a structured test report to a wrapped
// io.Writer.  Each report carries a fresh run id and a timestamp in
// its meta data, hence JSON reports of two identical runs differ only
// there.
type JSON[N constraints.Integer] struct {

	// W receives the encoded report.
	W io.Writer

	// Indent pretty-prints the report.
	Indent bool
}

// Report encodes given outcomes with their meta data to the wrapped
// writer.
func (j *JSON[N]) Report(oo tabeval.Outcomes[N]) error {
	doc := Document[N]{
		Meta: Meta{
			RunID:     uuid.NewString(),
			Timestamp: time.Now().Format(time.RFC3339),
			Duration:  oo.Duration().String(),
			Seconds:   oo.Duration().Seconds(),
			Cases:     oo.Len(),
			Failed:    oo.LenFailed(),
			Passed:    oo.Passed(),
		},
		Cases: make([]Record[N], 0, oo.Len()),
	}
	oo.For(func(_ int, o tabeval.Outcome[N]) {
		doc.Cases = append(doc.Cases, Record[N]{
			Input:    o.Input,
			Expected: o.Expected,
			Actual:   o.Actual,
			Passed:   o.Passed,
			Reason:   o.Reason(),
		})
	})
	enc := json.NewEncoder(j.W)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}
