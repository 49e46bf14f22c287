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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/cego-engine/cego/internal/types"
)

func TestNewPositionIsStandardStartingPosition(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.nextPlayer)
	assert.Equal(t, CastlingAny, p.castlingRights)
	assert.Equal(t, SqNone, p.enPassantSquare)
	assert.Equal(t, 0, p.halfMoveClock)
	assert.Equal(t, 1, p.moveNumber)
	assert.Equal(t, StartFen, p.StringFen())
}

func TestNewPositionFenRoundTrips(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14"
	p, err := NewPositionFen(fen)
	require.NoError(t, err)
	assert.Equal(t, fen, p.StringFen())
	assert.Equal(t, Black, p.nextPlayer)
	assert.Equal(t, SqE3, p.enPassantSquare)
}

func TestNewPositionFenRejectsMissingKing(t *testing.T) {
	_, err := NewPositionFen("8/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Error(t, err)
}

func TestNewPositionFenRejectsPawnOnBackRank(t *testing.T) {
	_, err := NewPositionFen("4k3/8/8/8/8/8/8/P3K3 w - - 0 1")
	assert.Error(t, err)
}

func TestNewPositionFenRejectsMalformedPiecePlacement(t *testing.T) {
	_, err := NewPositionFen("not-a-fen w - - 0 1")
	assert.Error(t, err)
}

func TestNewPositionFenRejectsInconsistentCastlingRights(t *testing.T) {
	_, err := NewPositionFen("4k3/8/8/8/8/8/8/4K3 w KQ - 0 1")
	assert.Error(t, err)
}

func TestNewPositionFenRejectsOpponentAlreadyInCheck(t *testing.T) {
	// black is not to move, yet stands in check from the rook on h8: no
	// legal sequence of moves reaches this position.
	_, err := NewPositionFen("6kR/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Error(t, err)
}

func TestDoMoveUndoMoveRestoresZobristKeyAndBoard(t *testing.T) {
	p := NewPosition()
	before := p.ZobristKey()
	beforeFen := p.StringFen()

	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	p.DoMove(m)
	assert.NotEqual(t, before, p.ZobristKey())
	assert.Equal(t, Black, p.nextPlayer)

	p.UndoMove()
	assert.Equal(t, before, p.ZobristKey())
	assert.Equal(t, beforeFen, p.StringFen())
}

func TestZobristKeyMatchesFreshComputation(t *testing.T) {
	p := NewPosition()
	p.DoMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	p.DoMove(CreateMove(SqE7, SqE5, Normal, PtNone))
	p.DoMove(CreateMove(SqG1, SqF3, Normal, PtNone))

	recomputed := p.computeZobristKey()
	assert.Equal(t, recomputed, p.zobristKey, "incremental Zobrist updates must match a from-scratch recomputation")
}

func TestDoMoveCastlingMovesBothKingAndRook(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	p.DoMove(CreateMove(SqE1, SqG1, Castling, PtNone))
	assert.Equal(t, WhiteKing, p.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqF1))
	assert.Equal(t, PieceNone, p.PieceAt(SqE1))
	assert.Equal(t, PieceNone, p.PieceAt(SqH1))

	p.UndoMove()
	assert.Equal(t, WhiteKing, p.PieceAt(SqE1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqH1))
}

func TestDoMoveEnPassantRemovesCapturedPawn(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	p.DoMove(CreateMove(SqE5, SqD6, EnPassant, PtNone))
	assert.Equal(t, WhitePawn, p.PieceAt(SqD6))
	assert.Equal(t, PieceNone, p.PieceAt(SqD5), "the captured pawn disappears, not just the destination square")
	assert.Equal(t, PieceNone, p.PieceAt(SqE5))

	p.UndoMove()
	assert.Equal(t, BlackPawn, p.PieceAt(SqD5))
	assert.Equal(t, WhitePawn, p.PieceAt(SqE5))
}

func TestDoMovePromotionReplacesPawnWithChosenPiece(t *testing.T) {
	p, err := NewPositionFen("4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	p.DoMove(CreateMove(SqE7, SqE8, Promotion, Queen))
	assert.Equal(t, WhiteQueen, p.PieceAt(SqE8))

	p.UndoMove()
	assert.Equal(t, WhitePawn, p.PieceAt(SqE7))
	assert.Equal(t, PieceNone, p.PieceAt(SqE8))
}

func TestCheckRepetitionsCountsIdenticalPositions(t *testing.T) {
	p := NewPosition()
	assert.False(t, p.CheckRepetitions(3))

	shuffle := func() {
		p.DoMove(CreateMove(SqG1, SqF3, Normal, PtNone))
		p.DoMove(CreateMove(SqG8, SqF6, Normal, PtNone))
		p.DoMove(CreateMove(SqF3, SqG1, Normal, PtNone))
		p.DoMove(CreateMove(SqF6, SqG8, Normal, PtNone))
	}
	shuffle()
	assert.True(t, p.CheckRepetitions(2))
	shuffle()
	assert.True(t, p.CheckRepetitions(3))
}

func TestHasInsufficientMaterialBareKings(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialSingleMinorPiece(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/8/4KN2 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialFalseWithRook(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialFalseWithTwoKnightsEachSide(t *testing.T) {
	p, err := NewPositionFen("2n1k1n1/8/8/8/8/8/8/2N1K1N1 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasInsufficientMaterial(), "two knights on each side is not treated as a dead draw")
}

func TestHistoryReturnsMostRecentSnapshotsOldestFirst(t *testing.T) {
	p := NewPosition()
	p.DoMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	p.DoMove(CreateMove(SqE7, SqE5, Normal, PtNone))
	p.DoMove(CreateMove(SqG1, SqF3, Normal, PtNone))

	hist := p.History(2)
	require.Len(t, hist, 2)
	assert.Equal(t, White, hist[0].NextPlayer)
	assert.Equal(t, Black, hist[1].NextPlayer)
}

func TestHistoryClampsToAvailableSnapshots(t *testing.T) {
	p := NewPosition()
	hist := p.History(7)
	assert.Len(t, hist, 1, "a fresh position only has its own snapshot")
}

func TestLastMoveNoneAtRoot(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, MoveNone, p.LastMove())

	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	p.DoMove(m)
	assert.Equal(t, m, p.LastMove())
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	p := NewPosition()
	c := p.Clone()

	c.DoMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	assert.NotEqual(t, p.ZobristKey(), c.ZobristKey())
	assert.Equal(t, StartFen, p.StringFen(), "mutating the clone must not affect the original")
}
