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

package movegen

import "github.com/cego-engine/cego/internal/position"

// TerminalKind classifies why a position has no further play, per spec
// section 4.2.
type TerminalKind int

const (
	// NotTerminal means legal play continues.
	NotTerminal TerminalKind = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	ThreefoldRepetition
	InsufficientMaterial
)

// Classify determines whether pos is terminal and, if so, its kind and the
// terminal value from the side-to-move's own perspective (mate -1,
// stalemate/50-move/repetition 0).
func Classify(pos *position.Position) (kind TerminalKind, value float64, terminal bool) {
	if !HasLegalMove(pos) {
		if pos.HasCheck() {
			return Checkmate, -1, true
		}
		return Stalemate, 0, true
	}
	if pos.CheckRepetitions(3) {
		return ThreefoldRepetition, 0, true
	}
	if pos.HalfMoveClock() >= 100 {
		return FiftyMoveRule, 0, true
	}
	if pos.HasInsufficientMaterial() {
		return InsufficientMaterial, 0, true
	}
	return NotTerminal, 0, false
}
