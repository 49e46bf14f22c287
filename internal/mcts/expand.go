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

import (
	"github.com/cego-engine/cego/internal/evaluator"
	"github.com/cego-engine/cego/internal/movegen"
	"github.com/cego-engine/cego/internal/position"
)

// installExpansion builds node's child list from pos's legal moves in
// enumeration order, pulls each child's prior from eval, and publishes the
// expanded state (spec 4.5 expansion).
func installExpansion(node *Node, pos *position.Position, eval evaluator.Evaluation) {
	legal := movegen.LegalMoves(pos)
	children := make([]*Node, len(legal))
	priors := make([]float64, len(legal))
	for i, m := range legal {
		children[i] = newNode(node, m)
		priors[i] = eval.Priors[m]
	}
	node.finishExpand(children, priors, eval.Value)
}
