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

package config

// evalConfiguration configures the batching adapter in front of the
// external neural-network evaluator (the CEGO-domain equivalent of the
// teacher's hand-crafted evalConfiguration).
type evalConfiguration struct {
	// MaxBatchSize is loaded from the config file and shown in the config
	// dump; the evaluator adapter does not read it and does not cap batch
	// sizes. Batches are sized by Mcts.BatchSize.
	MaxBatchSize int

	// MaxBatchWaitMs is loaded and dumped like MaxBatchSize; the adapter
	// does not read it and never waits. The batcher's wait is bounded by
	// Mcts.BatchMaxWaitMs.
	MaxBatchWaitMs int

	// HistoryPlies is the number of historical positions folded into the
	// feature-plane encoding (spec plane stack depth).
	HistoryPlies int

	// NormalizeHalfmoveClock controls whether the half-move-clock plane is
	// divided by 100 (true) or left as a raw integer count (false).
	NormalizeHalfmoveClock bool
}

func init() {
	Settings.Eval.MaxBatchSize = 16
	Settings.Eval.MaxBatchWaitMs = 5
	Settings.Eval.HistoryPlies = 7
	Settings.Eval.NormalizeHalfmoveClock = false
}
