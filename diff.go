// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tabeval

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Reason explains why an outcome did not pass.  For a failed
// invocation it is the captured failure; for a value mismatch it is a
// diff of the string representations of expected and actual value.
// For a passed outcome Reason is the empty string.
func (o Outcome[N]) Reason() string {
	if o.Passed {
		return ""
	}
	if o.Err != nil {
		return o.Err.Error()
	}
	return cmp.Diff(
		fmt.Sprintf("%v", o.Expected), fmt.Sprintf("%v", o.Actual))
}

// report formats an outcome as a single line suited for per-case
// reporting.
func (o Outcome[N]) report() string {
	switch {
	case o.Err != nil:
		return fmt.Sprintf("%v: %v", o.Input, o.Err)
	case !o.Passed:
		return fmt.Sprintf(
			"%v: got %v; want %v", o.Input, o.Actual, o.Expected)
	}
	return fmt.Sprintf("%v: got %v", o.Input, o.Actual)
}
