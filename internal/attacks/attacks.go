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

// Package attacks provides pure, allocation-light functions over raw board
// state (occupancy + per-color/per-piece bitboards) for attacker detection,
// checkers and pins. It has no knowledge of Position so movegen and position
// can both depend on it without an import cycle.
package attacks

import (
	. "github.com/cego-engine/cego/internal/types"
)

// Boardset is the minimal board snapshot every function here operates on.
type Boardset = [ColorLength][PtLength]Bitboard

func ownAll(set *Boardset, c Color) Bitboard {
	return set[c][King] | set[c][Pawn] | set[c][Knight] | set[c][Bishop] | set[c][Rook] | set[c][Queen]
}

func squareBb(sq Square) Bitboard {
	var bb Bitboard
	bb.PushSquare(sq)
	return bb
}

// AttacksTo returns every piece of either color attacking sq given occupied.
func AttacksTo(occupied Bitboard, set *Boardset, sq Square) Bitboard {
	attackers := BbZero
	attackers |= GetPawnAttacks(White, sq) & set[Black][Pawn]
	attackers |= GetPawnAttacks(Black, sq) & set[White][Pawn]
	attackers |= GetPseudoAttacks(Knight, sq) & (set[White][Knight] | set[Black][Knight])
	attackers |= GetPseudoAttacks(King, sq) & (set[White][King] | set[Black][King])
	bishopsQueens := set[White][Bishop] | set[Black][Bishop] | set[White][Queen] | set[Black][Queen]
	attackers |= GetAttacksBb(Bishop, sq, occupied) & bishopsQueens
	rooksQueens := set[White][Rook] | set[Black][Rook] | set[White][Queen] | set[Black][Queen]
	attackers |= GetAttacksBb(Rook, sq, occupied) & rooksQueens
	return attackers
}

// IsSquareAttackedBy reports whether sq is attacked by any piece of color by.
func IsSquareAttackedBy(occupied Bitboard, set *Boardset, sq Square, by Color) bool {
	if GetPawnAttacks(by.Flip(), sq)&set[by][Pawn] != BbZero {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&set[by][Knight] != BbZero {
		return true
	}
	if GetPseudoAttacks(King, sq)&set[by][King] != BbZero {
		return true
	}
	bishopsQueens := set[by][Bishop] | set[by][Queen]
	if GetAttacksBb(Bishop, sq, occupied)&bishopsQueens != BbZero {
		return true
	}
	rooksQueens := set[by][Rook] | set[by][Queen]
	if GetAttacksBb(Rook, sq, occupied)&rooksQueens != BbZero {
		return true
	}
	return false
}

// CheckersBb returns the enemy pieces currently giving check to the king of
// kingColor standing on kingSq.
func CheckersBb(occupied Bitboard, set *Boardset, kingSq Square, kingColor Color) Bitboard {
	enemy := kingColor.Flip()
	checkers := BbZero
	checkers |= GetPawnAttacks(kingColor, kingSq) & set[enemy][Pawn]
	checkers |= GetPseudoAttacks(Knight, kingSq) & set[enemy][Knight]
	checkers |= GetAttacksBb(Bishop, kingSq, occupied) & (set[enemy][Bishop] | set[enemy][Queen])
	checkers |= GetAttacksBb(Rook, kingSq, occupied) & (set[enemy][Rook] | set[enemy][Queen])
	return checkers
}

// CheckMask returns the set of squares a response to the current checkers may
// land on: the checker(s) themselves and, for a single sliding checker, the
// ray of squares between the checker and the king (blockable squares). Double
// check yields BbZero (no square resolves both checks other than moving the
// king, which callers must special-case). No check yields BbAll (unrestricted).
func CheckMask(occupied Bitboard, set *Boardset, kingSq Square, kingColor Color) Bitboard {
	checkers := CheckersBb(occupied, set, kingSq, kingColor)
	switch checkers.PopCount() {
	case 0:
		return BbAll
	case 1:
		checkerSq := checkers.Lsb()
		mask := checkers
		enemy := kingColor.Flip()
		isSlider := (set[enemy][Bishop]|set[enemy][Rook]|set[enemy][Queen]).Has(checkerSq)
		if isSlider {
			mask |= Intermediate(kingSq, checkerSq)
		}
		return mask
	default:
		return BbZero
	}
}

// PinnedPiece describes one of the side-to-move's pieces that is pinned to
// its king, and the set of squares it may still legally move to or capture
// on (the ray between king and pinner, inclusive of the pinner).
type PinnedPiece struct {
	Square    Square
	AllowedTo Bitboard
}

// PinnedPieces returns every piece of kingColor pinned against its own king.
func PinnedPieces(occupied Bitboard, set *Boardset, kingSq Square, kingColor Color) []PinnedPiece {
	enemy := kingColor.Flip()
	var pinned []PinnedPiece

	candidates := (set[enemy][Bishop] | set[enemy][Queen]) & GetPseudoAttacks(Bishop, kingSq)
	candidates |= (set[enemy][Rook] | set[enemy][Queen]) & GetPseudoAttacks(Rook, kingSq)

	own := ownAll(set, kingColor)

	for candidates != BbZero {
		pinnerSq := candidates.Lsb()
		candidates = candidates.PopLsb()
		between := Intermediate(kingSq, pinnerSq)
		blockers := between & occupied
		if blockers.PopCount() != 1 {
			continue
		}
		blockerSq := blockers.Lsb()
		if !own.Has(blockerSq) {
			continue
		}
		allowed := between | squareBb(pinnerSq)
		pinned = append(pinned, PinnedPiece{Square: blockerSq, AllowedTo: allowed})
	}
	return pinned
}
