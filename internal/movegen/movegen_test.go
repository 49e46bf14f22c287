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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cego-engine/cego/internal/position"
)

func TestPerftStartingPosition(t *testing.T) {
	pos := position.NewPosition()
	want := []uint64{1, 20, 400, 8902, 197281}
	for depth, n := range want {
		assert.Equal(t, n, Perft(pos, depth), "perft depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	want := []uint64{1, 48, 2039, 97862}
	for depth, n := range want {
		assert.Equal(t, n, Perft(pos, depth), "perft depth %d", depth)
	}
}

func TestDoubleCheckRestrictsToKingMoves(t *testing.T) {
	// The knight on d3 and the rook on h1 both check the white king; the
	// white rook on a1 has pseudo-legal moves, but every legal move must
	// move the king.
	pos, err := position.NewPositionFen("4k3/8/8/8/8/3n4/8/R3K2r w - - 0 1")
	require.NoError(t, err)
	for _, m := range LegalMoves(pos) {
		assert.Equal(t, pos.KingSquare(pos.NextPlayer()), m.From(), "double check must only allow king moves")
	}
}

func TestEnPassantExposingKingIsIllegal(t *testing.T) {
	pos, err := position.NewPositionFen("8/8/8/k2Pp2Q/8/8/8/4K3 w - e6 0 1")
	require.NoError(t, err)
	for _, m := range LegalMoves(pos) {
		assert.NotEqual(t, "d5e6", EmitLan(m), "d5e6 exposes the king on the 5th rank and must be illegal")
	}
}

func TestMateInOneOnBackRank(t *testing.T) {
	pos, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	found := false
	for _, m := range LegalMoves(pos) {
		if EmitLan(m) == "f7g7" || EmitLan(m) == "f7h7" {
			pos.DoMove(m)
			kind, value, terminal := Classify(pos)
			if terminal && kind == Checkmate && value == -1 {
				found = true
			}
			pos.UndoMove()
		}
	}
	assert.True(t, found, "one of f7g7/f7h7 must be a mating move")
}

func TestStalemateClassification(t *testing.T) {
	pos, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	kind, value, terminal := Classify(pos)
	require.True(t, terminal)
	assert.Equal(t, Stalemate, kind)
	assert.Equal(t, 0.0, value)
}

func TestParseLanRoundTrip(t *testing.T) {
	pos := position.NewPosition()
	for _, m := range LegalMoves(pos) {
		text := EmitLan(m)
		parsed, err := ParseLan(pos, text)
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseLanRejectsIllegalMove(t *testing.T) {
	pos := position.NewPosition()
	_, err := ParseLan(pos, "e2e5")
	assert.Error(t, err)
}

func TestThreefoldRepetitionOnlyOnThirdOccurrence(t *testing.T) {
	pos := position.NewPosition()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	// reuses the same four-move shuffle to return to the start position.
	for round := 0; round < 2; round++ {
		for _, lan := range shuffle {
			m, err := ParseLan(pos, lan)
			require.NoError(t, err)
			pos.DoMove(m)
		}
		_, _, terminal := Classify(pos)
		if round == 0 {
			assert.False(t, terminal, "second occurrence must not be terminal")
		} else {
			kind, value, terminal2 := Classify(pos)
			assert.True(t, terminal2)
			assert.Equal(t, ThreefoldRepetition, kind)
			assert.Equal(t, 0.0, value)
		}
	}
}
