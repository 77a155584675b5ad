// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fx provides functions under test for tabeval's tests.
package fx

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Double is the reference function under test returning twice its
// input for the full domain of N, overflow aside.
func Double[N constraints.Integer](n N) N { return n + n }

// Panicking returns a doubling function under test whose invocation
// fails, i.e. panics, for given input on.
func Panicking[N constraints.Integer](on N) func(N) N {
	return func(n N) N {
		if n == on {
			panic(fmt.Sprintf("fx: no value for input %v", on))
		}
		return n + n
	}
}
