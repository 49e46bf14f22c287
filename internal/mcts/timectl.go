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

package mcts

import "time"

// safetyMargin is the small fixed reserve subtracted from the remaining
// clock so a move is never allocated every last tick of it (spec 4.5).
const safetyMargin = 100 * time.Millisecond

// AllocateBudget computes this move's time allocation from the remaining
// clock and increment: budget = min(T/moveHorizon + I*f, T-safetyMargin),
// clamped to [minTime, maxTime].
func AllocateBudget(remaining, increment time.Duration, moveHorizonPlies int, f float64, minTime, maxTime time.Duration) time.Duration {
	if moveHorizonPlies < 1 {
		moveHorizonPlies = 1
	}
	estimate := time.Duration(float64(remaining)/float64(moveHorizonPlies) + float64(increment)*f)
	ceiling := remaining - safetyMargin
	if ceiling < 0 {
		ceiling = 0
	}
	budget := estimate
	if budget > ceiling {
		budget = ceiling
	}
	if budget < minTime {
		budget = minTime
	}
	if maxTime > 0 && budget > maxTime {
		budget = maxTime
	}
	if budget < 0 {
		budget = 0
	}
	return budget
}
