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

import "math"

// selectChild picks node's child maximizing Q_i + U_i, where
// U_i = cPuct * P_i * sqrt(N) / (1 + n_i) (spec 4.5). Ties go to the
// lower child index because the loop only replaces the incumbent on a
// strictly greater score, and children are walked in the fixed order
// they were created at expansion (the legal-move enumeration order).
func selectChild(node *Node, cPuct float64) *Node {
	children := node.children
	if len(children) == 0 {
		return nil
	}
	sqrtN := math.Sqrt(float64(node.N()))

	best := children[0]
	bestScore := math.Inf(-1)
	for i, c := range children {
		n := float64(c.N())
		q := 0.0
		if n > 0 {
			// c.W() is backed up in c's own side-to-move perspective; the
			// selecting node is one ply shallower, so its value is the
			// negation of its child's.
			q = -c.W() / n
		}
		u := cPuct * node.priors[i] * sqrtN / (1 + n)
		score := q + u
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// selectMoveAtEnd picks the root child to actually play: highest visit
// count, ties broken by highest Q then lowest move index (spec 4.5).
func selectMoveAtEnd(root *Node) *Node {
	children := root.children
	if len(children) == 0 {
		return nil
	}
	best := children[0]
	for _, c := range children[1:] {
		switch {
		case c.N() > best.N():
			best = c
		case c.N() == best.N() && -c.Q() > -best.Q():
			best = c
		case c.N() == best.N() && c.Q() == best.Q() && c.Move() < best.Move():
			best = c
		}
	}
	return best
}
