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

package attacks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cego-engine/cego/internal/attacks"
	"github.com/cego-engine/cego/internal/position"
	. "github.com/cego-engine/cego/internal/types"
)

func boardOf(t *testing.T, fen string) (*attacks.Boardset, Bitboard) {
	t.Helper()
	pos, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	return pos.BoardSet(), pos.OccupiedAll()
}

func TestAttacksToFindsAllAttackersOfCenterSquare(t *testing.T) {
	set, occ := boardOf(t, "4k3/8/1n6/8/2B1P3/8/8/4K3 w - - 0 1")
	attackers := attacks.AttacksTo(occ, set, SqD5)
	assert.True(t, attackers.Has(SqB6), "the knight on b6 attacks d5")
	assert.True(t, attackers.Has(SqE4), "the pawn on e4 attacks d5")
	assert.True(t, attackers.Has(SqC4), "the bishop on c4 attacks d5 along the diagonal")
}

func TestIsSquareAttackedByRespectsOccupancy(t *testing.T) {
	set, occ := boardOf(t, "k7/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.True(t, attacks.IsSquareAttackedBy(occ, set, SqE8, White), "the rook on e2 x-rays the full e-file up to e8")

	setBlocked, occBlocked := boardOf(t, "k7/8/8/8/4P3/8/4R3/4K3 w - - 0 1")
	assert.False(t, attacks.IsSquareAttackedBy(occBlocked, setBlocked, SqE8, White), "the pawn on e4 blocks the rook's ray to e8")
}

func TestCheckersBbEmptyWhenKingIsSafe(t *testing.T) {
	set, occ := boardOf(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, BbZero, attacks.CheckersBb(occ, set, SqE1, White))
}

func TestCheckersBbFindsSingleSlidingChecker(t *testing.T) {
	set, occ := boardOf(t, "4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	checkers := attacks.CheckersBb(occ, set, SqE1, White)
	assert.Equal(t, 1, checkers.PopCount())
	assert.True(t, checkers.Has(SqH1))
}

func TestCheckMaskUnrestrictedWhenNotInCheck(t *testing.T) {
	set, occ := boardOf(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, BbAll, attacks.CheckMask(occ, set, SqE1, White))
}

func TestCheckMaskIncludesInterveningSquaresForSlidingChecker(t *testing.T) {
	set, occ := boardOf(t, "4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	mask := attacks.CheckMask(occ, set, SqE1, White)
	assert.True(t, mask.Has(SqH1), "capturing the checker resolves check")
	assert.True(t, mask.Has(SqF1), "blocking on the ray resolves check")
	assert.True(t, mask.Has(SqG1), "blocking on the ray resolves check")
	assert.False(t, mask.Has(SqA1), "a1 is off the checking ray and does not resolve check")
}

func TestCheckMaskZeroOnDoubleCheck(t *testing.T) {
	set, occ := boardOf(t, "4k3/8/8/8/8/3n4/8/4K2r w - - 0 1")
	mask := attacks.CheckMask(occ, set, SqE1, White)
	assert.Equal(t, BbZero, mask, "no single destination square resolves a double check")
}

func TestPinnedPiecesFindsPinnedRookAgainstKing(t *testing.T) {
	set, occ := boardOf(t, "k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	pinned := attacks.PinnedPieces(occ, set, SqE1, White)
	require.Len(t, pinned, 1)
	assert.Equal(t, SqE2, pinned[0].Square)
	assert.True(t, pinned[0].AllowedTo.Has(SqE8), "the pinned rook may still capture the pinner")
	assert.True(t, pinned[0].AllowedTo.Has(SqE5), "the pinned rook may still block along the pin ray")
	assert.False(t, pinned[0].AllowedTo.Has(SqD2), "the pinned rook cannot leave the pin ray")
}

func TestPinnedPiecesEmptyWhenNoPinExists(t *testing.T) {
	set, occ := boardOf(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Empty(t, attacks.PinnedPieces(occ, set, SqE1, White))
}

func TestPinnedPiecesIgnoresCandidateBlockedByMultiplePieces(t *testing.T) {
	set, occ := boardOf(t, "k3r3/8/8/8/8/4N3/4R3/4K3 w - - 0 1")
	assert.Empty(t, attacks.PinnedPieces(occ, set, SqE1, White), "two own pieces on the ray means neither is pinned")
}
