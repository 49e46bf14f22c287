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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPopHas(t *testing.T) {
	var bb Bitboard
	bb.PushSquare(SqE4)
	assert.True(t, bb.Has(SqE4))
	assert.Equal(t, 1, bb.PopCount())
	bb.PopSquare(SqE4)
	assert.False(t, bb.Has(SqE4))
	assert.Equal(t, 0, bb.PopCount())
}

func TestBitboardLsbMsbPopLsb(t *testing.T) {
	var bb Bitboard
	bb.PushSquare(SqB1)
	bb.PushSquare(SqD4)
	bb.PushSquare(SqH8)
	assert.Equal(t, SqB1, bb.Lsb())
	assert.Equal(t, SqH8, bb.Msb())

	rest := bb.PopLsb()
	assert.False(t, rest.Has(SqB1))
	assert.True(t, rest.Has(SqD4))
	assert.True(t, rest.Has(SqH8))
}

func TestBitboardShiftDiscardsFileWrap(t *testing.T) {
	var fileH Bitboard
	fileH.PushSquare(SqH4)
	assert.Equal(t, BbZero, fileH.ShiftBitboard(East), "shifting off the H file must not wrap to file A")

	var fileA Bitboard
	fileA.PushSquare(SqA4)
	assert.Equal(t, BbZero, fileA.ShiftBitboard(West), "shifting off the A file must not wrap to file H")

	var center Bitboard
	center.PushSquare(SqE4)
	assert.True(t, center.ShiftBitboard(North).Has(SqE5))
	assert.True(t, center.ShiftBitboard(South).Has(SqE3))
}

func TestGetPseudoAttacksKnightCorner(t *testing.T) {
	attacks := GetPseudoAttacks(Knight, SqA1)
	assert.Equal(t, 2, attacks.PopCount())
	assert.True(t, attacks.Has(SqB3))
	assert.True(t, attacks.Has(SqC2))
}

func TestGetPseudoAttacksKingCenter(t *testing.T) {
	attacks := GetPseudoAttacks(King, SqE4)
	assert.Equal(t, 8, attacks.PopCount())
}

func TestGetPawnAttacks(t *testing.T) {
	white := GetPawnAttacks(White, SqE4)
	assert.True(t, white.Has(SqD5))
	assert.True(t, white.Has(SqF5))
	assert.Equal(t, 2, white.PopCount())

	black := GetPawnAttacks(Black, SqE4)
	assert.True(t, black.Has(SqD3))
	assert.True(t, black.Has(SqF3))
}

func TestGetAttacksBbRookBlockedByOccupancy(t *testing.T) {
	var occ Bitboard
	occ.PushSquare(SqE4)
	occ.PushSquare(SqE6)
	attacks := GetAttacksBb(Rook, SqE4, occ)
	assert.True(t, attacks.Has(SqE5))
	assert.True(t, attacks.Has(SqE6), "a rook attacks the first blocker square itself")
	assert.False(t, attacks.Has(SqE7), "a rook's attack ray stops at the first blocker")
	assert.True(t, attacks.Has(SqA4))
	assert.True(t, attacks.Has(SqH4))
}

func TestGetAttacksBbBishopBlockedByOccupancy(t *testing.T) {
	var occ Bitboard
	occ.PushSquare(SqE4)
	occ.PushSquare(SqG6)
	attacks := GetAttacksBb(Bishop, SqE4, occ)
	assert.True(t, attacks.Has(SqF5))
	assert.True(t, attacks.Has(SqG6))
	assert.False(t, attacks.Has(SqH7))
}

func TestGetAttacksBbQueenCombinesRookAndBishop(t *testing.T) {
	queen := GetAttacksBb(Queen, SqD4, BbZero)
	rook := GetAttacksBb(Rook, SqD4, BbZero)
	bishop := GetAttacksBb(Bishop, SqD4, BbZero)
	assert.Equal(t, rook|bishop, queen)
}

func TestGetAttacksBbPanicsOnPawn(t *testing.T) {
	assert.Panics(t, func() {
		GetAttacksBb(Pawn, SqE4, BbZero)
	})
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqA1, SqA1))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH1))
	assert.Equal(t, 7, SquareDistance(SqA1, SqA8))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
}

func TestIntermediateOnlyOnSharedLine(t *testing.T) {
	between := Intermediate(SqA1, SqA4)
	assert.True(t, between.Has(SqA2))
	assert.True(t, between.Has(SqA3))
	assert.Equal(t, 2, between.PopCount())
	assert.Equal(t, BbZero, Intermediate(SqA1, SqB3), "squares off any shared rank/file/diagonal have no intermediate")
}

func TestBitboardStringHasSixtyFourCells(t *testing.T) {
	var bb Bitboard
	bb.PushSquare(SqE4)
	s := bb.String()
	assert.Len(t, s, 64)
}
