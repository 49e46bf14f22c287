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

// mctsConfiguration holds the tunables of the PUCT/MCTS search, the
// CEGO-domain equivalent of the teacher's alpha-beta searchConfiguration.
type mctsConfiguration struct {
	// Workers is the number of parallel tree workers (0 == runtime.NumCPU()).
	Workers int

	// CPuct is the PUCT exploration constant (Q_i + U_i formula).
	CPuct float64

	// VirtualLoss is added to a node's N/W on descent and reversed on backup,
	// discouraging other workers from re-visiting the same path.
	VirtualLoss int

	// DirichletAlpha/DirichletEpsilon mix Dirichlet noise into the root
	// policy prior to encourage exploration in self-play.
	DirichletAlpha   float64
	DirichletEpsilon float64

	// MoveHorizonPlies and TimeFactor drive time allocation: each move gets
	// the remaining time divided by MoveHorizonPlies plus TimeFactor times
	// the increment.
	MoveHorizonPlies int
	TimeFactor       float64

	// MinTimeMs/MaxTimeMs bound the per-move time allocation regardless of
	// the time-control-derived estimate.
	MinTimeMs int
	MaxTimeMs int

	// BatchSize is the number of leaves collected before an evaluator call.
	BatchSize int

	// UseReroot keeps the subtree rooted at the played move across plies
	// instead of discarding the whole tree.
	UseReroot bool

	// UseRootNoise mixes Dirichlet(DirichletAlpha) noise into the root
	// priors (self-play exploration). Off for tournament play.
	UseRootNoise bool

	// BatchMaxWaitMs bounds how long the evaluator batcher waits to fill a
	// batch before flushing whatever it has collected.
	BatchMaxWaitMs int
}

func init() {
	Settings.Mcts.Workers = 0
	Settings.Mcts.CPuct = 2.0
	Settings.Mcts.VirtualLoss = 3
	Settings.Mcts.DirichletAlpha = 0.3
	Settings.Mcts.DirichletEpsilon = 0.25
	Settings.Mcts.MoveHorizonPlies = 30
	Settings.Mcts.TimeFactor = 0.8
	Settings.Mcts.MinTimeMs = 50
	Settings.Mcts.MaxTimeMs = 60000
	Settings.Mcts.BatchSize = 8
	Settings.Mcts.UseReroot = true
	Settings.Mcts.UseRootNoise = false
	Settings.Mcts.BatchMaxWaitMs = 5
}
