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

package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cego-engine/cego/internal/position"
)

func TestEncodeStartingPositionShape(t *testing.T) {
	pos := position.NewPosition()
	tensor := EncodeWith(pos, 7, false)
	assert.Len(t, tensor.Planes, 7*PlanesPerPosition)
}

func TestEncodePadsMissingHistoryWithZeroPresence(t *testing.T) {
	pos := position.NewPosition()
	tensor := EncodeWith(pos, 7, false)
	// only one real position exists; the first 6 blocks are padding.
	for block := 0; block < 6; block++ {
		presence := tensor.Planes[block*PlanesPerPosition+PlanesPerPosition-1]
		assert.Equal(t, 0.0, presence[0][0], "padding block %d must have a zero presence plane", block)
	}
	lastBlock := 6
	presence := tensor.Planes[lastBlock*PlanesPerPosition+PlanesPerPosition-1]
	assert.Equal(t, 1.0, presence[0][0], "real position block must have presence 1.0")
}

func TestEncodeSideToMovePlane(t *testing.T) {
	pos, err := position.NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	tensor := EncodeWith(pos, 1, false)
	sideToMove := tensor.Planes[17]
	assert.Equal(t, 0.0, sideToMove[0][0], "black to move must encode as 0.0")
}

func TestEncodePiecePlanesMatchBoard(t *testing.T) {
	pos := position.NewPosition()
	tensor := EncodeWith(pos, 1, false)
	whiteKingPlane := tensor.Planes[0]
	assert.Equal(t, 1.0, whiteKingPlane[0][4], "white king starts on e1")
	blackPawnPlane := tensor.Planes[7]
	for f := 0; f < 8; f++ {
		assert.Equal(t, 1.0, blackPawnPlane[6][f], "black pawns start on rank 7")
	}
}
