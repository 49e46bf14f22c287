//
// cego - a PUCT/MCTS chess engine driven over the CEGO line protocol
//
// MIT License
//
// Copyright (c) 2020-2026 The cego authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package assert lets internal invariants be checked without paying for it
// in release builds. DEBUG is a compile-time constant so the Go compiler
// eliminates any `if assert.DEBUG { assert.Assert(...) }` block entirely
// when it is false.
package assert

import "fmt"

// DEBUG gates invariant checks. Flip to true locally to enable them;
// ship with it false.
const DEBUG = false

// Assert panics with msg if test is false. Callers must still guard calls
// with `if assert.DEBUG` since Go evaluates call arguments eagerly even
// when this function body is a no-op.
func Assert(test bool, msg string, a ...interface{}) {
	if !DEBUG {
		return
	}
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
