// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tabeval

import "golang.org/x/exp/constraints"

// A Case declares for one input of a function under test the value the
// function is expected to return.  Expected is authored data: it is
// assumed, not verified, to be the mathematically correct result for
// Input.
type Case[N constraints.Integer] struct {
	Input    N
	Expected N
}

// A Table is an ordered sequence of cases.  The order is irrelevant
// for the correctness of an evaluation but fixed to keep reporting
// reproducible.  Inputs need not be unique.  A nil Table is the empty
// table.  A Table is consumed read-only by Run, i.e. the same Table
// instance may be evaluated arbitrarily often.
type Table[N constraints.Integer] []Case[N]

// A Func is the function under test: a pure, total, deterministic
// mapping of one integer to one integer without observable side
// effects.  tabeval can not enforce these properties; a Func which
// violates them merely voids the reproducibility of outcome
// sequences.  Overflow behavior is the Func's own business.
type Func[N constraints.Integer] func(N) N
