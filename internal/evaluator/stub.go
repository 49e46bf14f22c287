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

package evaluator

import (
	"fmt"

	"github.com/cego-engine/cego/internal/encoder"
)

// UniformStub is the minimum Network required to test search logic
// independent of any real model (spec 9, "polymorphism over evaluators").
// It returns an empty policy for every tensor, which the Adapter's
// floor-and-renormalize step turns into a uniform prior over whatever
// moves are actually legal in each board, plus a fixed value.
type UniformStub struct {
	Value float64
}

// EvaluateBatch implements Network.
func (s UniformStub) EvaluateBatch(tensors []encoder.Tensor) ([]RawEvaluation, error) {
	out := make([]RawEvaluation, len(tensors))
	for i := range tensors {
		out[i] = RawEvaluation{Value: s.Value}
	}
	return out, nil
}

// FailingStub always returns an error, used to exercise the engine's
// EvaluatorFailure / forfeit path (spec section 7).
type FailingStub struct {
	Err error
}

// EvaluateBatch implements Network.
func (s FailingStub) EvaluateBatch(tensors []encoder.Tensor) ([]RawEvaluation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return nil, fmt.Errorf("evaluator: stub induced to fail")
}
