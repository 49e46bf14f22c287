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

// Package movegen generates fully legal moves directly (not pseudo-legal
// filtered by make/unmake) using a check-mask plus pin-ray algorithm, and
// exposes the long-algebraic move parse/emit CEGO needs on the wire.
package movegen

import (
	"github.com/cego-engine/cego/internal/attacks"
	myLogging "github.com/cego-engine/cego/internal/logging"
	"github.com/cego-engine/cego/internal/position"
	. "github.com/cego-engine/cego/internal/types"
)

var log = myLogging.GetLog("movegen")

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// LegalMoves enumerates every fully legal move available to the side to
// move in pos. The order is deterministic given the position (piece-type
// major, from-square minor), which is what makes PUCT child-index tie
// breaking (spec 4.5) reproducible.
func LegalMoves(pos *position.Position) []Move {
	us := pos.NextPlayer()
	them := us.Flip()
	set := pos.BoardSet()
	occ := pos.OccupiedAll()
	kingSq := pos.KingSquare(us)
	ownBb := pos.OccupiedBy(us)
	theirBb := pos.OccupiedBy(them)

	checkers := attacks.CheckersBb(occ, set, kingSq, us)
	checkMask := attacks.CheckMask(occ, set, kingSq, us)
	doubleCheck := checkers.PopCount() >= 2

	moves := make([]Move, 0, 48)
	moves = genKingMoves(pos, us, kingSq, ownBb, occ, &moves)

	if doubleCheck {
		return moves
	}

	pinned := attacks.PinnedPieces(occ, set, kingSq, us)
	allowedFor := func(sq Square) Bitboard {
		for _, pp := range pinned {
			if pp.Square == sq {
				return pp.AllowedTo & checkMask
			}
		}
		return checkMask
	}

	moves = genPawnMoves(pos, us, them, ownBb, theirBb, occ, checkMask, allowedFor, &moves)
	moves = genPieceMoves(pos, us, Knight, ownBb, occ, allowedFor, &moves)
	moves = genPieceMoves(pos, us, Bishop, ownBb, occ, allowedFor, &moves)
	moves = genPieceMoves(pos, us, Rook, ownBb, occ, allowedFor, &moves)
	moves = genPieceMoves(pos, us, Queen, ownBb, occ, allowedFor, &moves)
	moves = genCastling(pos, us, kingSq, occ, checkers, &moves)
	return moves
}

func genKingMoves(pos *position.Position, us Color, kingSq Square, ownBb, occ Bitboard, moves *[]Move) []Move {
	them := us.Flip()
	set := pos.BoardSet()
	occWithoutKing := occ &^ kingSq.Bb()
	targets := GetPseudoAttacks(King, kingSq) &^ ownBb
	for targets != BbZero {
		to := targets.Lsb()
		targets = targets.PopLsb()
		if !attacks.IsSquareAttackedBy(occWithoutKing, set, to, them) {
			*moves = append(*moves, CreateMove(kingSq, to, Normal, PtNone))
		}
	}
	return *moves
}

func genPieceMoves(pos *position.Position, us Color, pt PieceType, ownBb, occ Bitboard, allowedFor func(Square) Bitboard, moves *[]Move) []Move {
	pieces := pos.PieceBb(us, pt)
	for pieces != BbZero {
		from := pieces.Lsb()
		pieces = pieces.PopLsb()
		var attacked Bitboard
		if pt == Knight {
			attacked = GetPseudoAttacks(Knight, from)
		} else {
			attacked = GetAttacksBb(pt, from, occ)
		}
		targets := attacked &^ ownBb & allowedFor(from)
		for targets != BbZero {
			to := targets.Lsb()
			targets = targets.PopLsb()
			*moves = append(*moves, CreateMove(from, to, Normal, PtNone))
		}
	}
	return *moves
}

func genPawnMoves(pos *position.Position, us, them Color, ownBb, theirBb, occ Bitboard, checkMask Bitboard, allowedFor func(Square) Bitboard, moves *[]Move) []Move {
	pawns := pos.PieceBb(us, Pawn)
	push := us.MoveDirection()
	promRank := us.PromotionRankBb()
	startRank := Rank2Bb
	if us == Black {
		startRank = Rank7Bb
	}

	emitPawn := func(from, to Square) {
		if to.Bb()&promRank != BbZero {
			for _, pt := range promotionPieces {
				*moves = append(*moves, CreateMove(from, to, Promotion, pt))
			}
			return
		}
		*moves = append(*moves, CreateMove(from, to, Normal, PtNone))
	}

	for bb := pawns; bb != BbZero; {
		from := bb.Lsb()
		bb = bb.PopLsb()
		allowed := allowedFor(from)

		one := from.To(push)
		oneEmpty := one.IsValid() && occ&one.Bb() == BbZero
		if oneEmpty && one.Bb()&allowed != BbZero {
			emitPawn(from, one)
		}

		// double push: only from the pawn's own starting rank, through an
		// empty intermediate square, landing on an empty square.
		if from.Bb()&startRank != BbZero && oneEmpty {
			two := one.To(push)
			if two.IsValid() && occ&two.Bb() == BbZero && two.Bb()&allowed != BbZero {
				*moves = append(*moves, CreateMove(from, two, Normal, PtNone))
			}
		}

		captures := GetPawnAttacks(us, from) & theirBb & allowed
		for captures != BbZero {
			to := captures.Lsb()
			captures = captures.PopLsb()
			emitPawn(from, to)
		}
	}

	genEnPassant(pos, us, them, pawns, occ, checkMask, moves)
	return *moves
}

// genEnPassant applies the extra legality check spec 4.2(6) requires: the
// capturing and captured pawns are both removed from occupancy and the
// king must still not be in check, which catches the horizontal-pin case
// a single pinned-piece ray cannot (two pawns vanish from the same rank).
func genEnPassant(pos *position.Position, us, them Color, pawns, occ, checkMask Bitboard, moves *[]Move) {
	epSq := pos.EnPassantSquare()
	if epSq == SqNone {
		return
	}
	kingSq := pos.KingSquare(us)
	set := pos.BoardSet()
	capturedSq := epSq.To(them.MoveDirection())

	candidates := GetPawnAttacks(them, epSq) & pawns
	for candidates != BbZero {
		from := candidates.Lsb()
		candidates = candidates.PopLsb()

		if checkMask != BbAll && checkMask&epSq.Bb() == BbZero && checkMask&capturedSq.Bb() == BbZero {
			continue
		}

		occAfter := occ
		occAfter &^= from.Bb()
		occAfter &^= capturedSq.Bb()
		occAfter |= epSq.Bb()

		var setAfter attacks.Boardset = *set
		setAfter[us][Pawn] &^= from.Bb()
		setAfter[us][Pawn] |= epSq.Bb()
		setAfter[them][Pawn] &^= capturedSq.Bb()

		if attacks.IsSquareAttackedBy(occAfter, &setAfter, kingSq, them) {
			continue
		}
		*moves = append(*moves, CreateMove(from, epSq, EnPassant, PtNone))
	}
}

func genCastling(pos *position.Position, us Color, kingSq Square, occ Bitboard, checkers Bitboard, moves *[]Move) []Move {
	if checkers != BbZero {
		return *moves
	}
	them := us.Flip()
	set := pos.BoardSet()
	cr := pos.CastlingRights()

	try := func(right CastlingRights, kingTo, rookFrom Square, betweenKingRook Bitboard, kingPath [2]Square) {
		if !cr.Has(right) {
			return
		}
		if occ&betweenKingRook != BbZero {
			return
		}
		for _, sq := range kingPath {
			if attacks.IsSquareAttackedBy(occ, set, sq, them) {
				return
			}
		}
		*moves = append(*moves, CreateMove(kingSq, kingTo, Castling, PtNone))
	}

	switch us {
	case White:
		try(CastlingWhiteOO, SqG1, SqH1, SqF1.Bb()|SqG1.Bb(), [2]Square{SqF1, SqG1})
		try(CastlingWhiteOOO, SqC1, SqA1, SqB1.Bb()|SqC1.Bb()|SqD1.Bb(), [2]Square{SqD1, SqC1})
	case Black:
		try(CastlingBlackOO, SqG8, SqH8, SqF8.Bb()|SqG8.Bb(), [2]Square{SqF8, SqG8})
		try(CastlingBlackOOO, SqC8, SqA8, SqB8.Bb()|SqC8.Bb()|SqD8.Bb(), [2]Square{SqD8, SqC8})
	}
	return *moves
}

// HasLegalMove reports whether the side to move has at least one legal
// move by generating the full legal move list — used by the MCTS engine's
// terminal classification (spec 4.2).
func HasLegalMove(pos *position.Position) bool {
	return len(LegalMoves(pos)) > 0
}
