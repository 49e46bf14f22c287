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

// backup walks path from leaf (path[len-1]) up to path[0], the root's
// immediate child, flipping the value's sign at every ply (spec 4.5). Each
// node's N was already incremented, and its W provisionally debited by
// vLoss, when the worker descended into it; backup here corrects W to the
// real value by adding back vLoss plus the signed value in one delta, and
// releases the node's outstanding virtual-loss reservation. root never
// receives virtual loss (nothing ever "descends into" it), so it only
// gets a plain visit-count and value update.
func backup(path []*Node, root *Node, leafValue float64, vLoss float64) {
	value := leafValue
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		n.addW(vLoss + value)
		n.addVL(-1)
		value = -value
	}
	root.addN(1)
	root.addW(value)
}
