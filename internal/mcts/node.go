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

// Package mcts runs a parallel, PUCT-guided Monte Carlo Tree Search over
// positions produced by internal/position and internal/movegen, consuming
// priors and values from internal/evaluator (spec section 4.5).
package mcts

import (
	"math"
	"sync/atomic"

	. "github.com/cego-engine/cego/internal/types"
)

// expansionState is a node's place in the unexpanded -> expanding ->
// expanded state machine (spec section 3 / 4.5).
type expansionState int32

const (
	stateUnexpanded expansionState = iota
	stateExpanding
	stateExpanded
)

// Node is one search-tree node. Parent is a strong Go pointer rather than
// the weak reference the spec allows: the whole tree (or the retained
// subtree on reroot) is released together, so a parent<->child pointer
// cycle never outlives the tree and the garbage collector reclaims it in
// one pass once the root reference is dropped.
//
// N, wBits and vl are mutated by any worker goroutine and are only ever
// touched through sync/atomic; children, priors and value are written
// exactly once, by whichever worker wins the unexpanded->expanding race,
// strictly before the expanded state becomes visible, so later readers
// observe them safely through the state store/load pair.
type Node struct {
	parent *Node
	move   Move // move from parent that produced this node; MoveNone at root

	state expansionState // atomic

	children []*Node
	priors   []float64 // priors[i] is children[i]'s prior P, set once at expansion

	n     int64  // atomic: visit count N
	wBits uint64 // atomic: bits of W, the total backed-up action value
	vl    int64  // atomic: count of outstanding (not yet backed-up) virtual-loss reservations

	terminalKnown int32   // atomic: 0/1, best-effort cache guard
	terminal      bool
	value         float64 // terminal value, or the expansion-time evaluator value
}

// newNode allocates a child reached from parent by move.
func newNode(parent *Node, move Move) *Node {
	return &Node{parent: parent, move: move}
}

// NewRoot allocates a tree root with no incoming move.
func NewRoot() *Node {
	return &Node{move: MoveNone}
}

// Move is the move from this node's parent that produced it.
func (nd *Node) Move() Move { return nd.move }

// Children returns the node's child list. Only valid once State() ==
// expanded (terminal nodes have no children).
func (nd *Node) Children() []*Node { return nd.children }

// Parent is nd's parent, or nil at the root.
func (nd *Node) Parent() *Node { return nd.parent }

// N is the node's current visit count.
func (nd *Node) N() int64 { return atomic.LoadInt64(&nd.n) }

// W is the node's current total backed-up action value.
func (nd *Node) W() float64 { return math.Float64frombits(atomic.LoadUint64(&nd.wBits)) }

// Q is the node's action value, 0 for an unvisited node.
func (nd *Node) Q() float64 {
	n := nd.N()
	if n == 0 {
		return 0
	}
	return nd.W() / float64(n)
}

// VL is the node's count of outstanding virtual-loss reservations.
func (nd *Node) VL() int64 { return atomic.LoadInt64(&nd.vl) }

// IsTerminal reports whether this node has been classified as terminal.
// It only reflects a cached classification; callers on the hot path
// re-derive terminality from the live position instead of trusting this.
func (nd *Node) IsTerminal() bool { return atomic.LoadInt32(&nd.terminalKnown) == 1 && nd.terminal }

// loadState loads the node's expansion state.
func (nd *Node) loadState() expansionState {
	return expansionState(atomic.LoadInt32((*int32)(&nd.state)))
}

// tryStartExpand attempts the unexpanded->expanding transition. Exactly
// one caller across all workers wins it for a given node.
func (nd *Node) tryStartExpand() bool {
	return atomic.CompareAndSwapInt32((*int32)(&nd.state), int32(stateUnexpanded), int32(stateExpanding))
}

// finishExpand installs children/priors/value and publishes the expanded
// state. Must only be called by the winner of tryStartExpand.
func (nd *Node) finishExpand(children []*Node, priors []float64, value float64) {
	nd.children = children
	nd.priors = priors
	nd.value = value
	atomic.StoreInt32((*int32)(&nd.state), int32(stateExpanded))
}

// markTerminal best-effort caches a terminal classification computed by
// whichever worker gets there first; losers of the CAS simply keep using
// their own freshly computed value, since Classify is a pure function of
// the position and every worker agrees on the answer.
func (nd *Node) markTerminal(value float64) {
	if atomic.CompareAndSwapInt32(&nd.terminalKnown, 0, 1) {
		nd.terminal = true
		nd.value = value
		atomic.StoreInt32((*int32)(&nd.state), int32(stateExpanded))
	}
}

// addN atomically adds delta to N.
func (nd *Node) addN(delta int64) { atomic.AddInt64(&nd.n, delta) }

// addVL atomically adds delta to VL.
func (nd *Node) addVL(delta int64) { atomic.AddInt64(&nd.vl, delta) }

// addW atomically adds delta to W via a compare-and-swap loop; Go 1.18
// has no atomic float64, so W is stored as the bit pattern of a float64
// and updated with the same lock-free retry idiom sync/atomic itself uses
// internally for typed wrappers.
func (nd *Node) addW(delta float64) {
	for {
		old := atomic.LoadUint64(&nd.wBits)
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if atomic.CompareAndSwapUint64(&nd.wBits, old, next) {
			return
		}
	}
}
