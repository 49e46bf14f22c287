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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cego-engine/cego/internal/movegen"
	"github.com/cego-engine/cego/internal/position"
)

func TestAdapterProducesUniformPriorsFromEmptyPolicy(t *testing.T) {
	pos := position.NewPosition()
	adapter := NewAdapter(UniformStub{Value: 0})
	evals, err := adapter.EvaluateBatch([]*position.Position{pos})
	require.NoError(t, err)
	require.Len(t, evals, 1)

	legal := movegen.LegalMoves(pos)
	require.Len(t, evals[0].Priors, len(legal))

	var sum float64
	for _, p := range evals[0].Priors {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	first := evals[0].Priors[legal[0]]
	for _, m := range legal {
		assert.InDelta(t, first, evals[0].Priors[m], 1e-9, "uniform stub must yield equal priors for every legal move")
	}
}

func TestAdapterPropagatesNetworkError(t *testing.T) {
	pos := position.NewPosition()
	adapter := NewAdapter(FailingStub{})
	_, err := adapter.EvaluateBatch([]*position.Position{pos})
	assert.Error(t, err)
}

func TestAdapterBatchesMultipleBoards(t *testing.T) {
	a := position.NewPosition()
	b, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	adapter := NewAdapter(UniformStub{Value: 0.5})
	evals, err := adapter.EvaluateBatch([]*position.Position{a, b})
	require.NoError(t, err)
	require.Len(t, evals, 2)
	assert.Len(t, evals[0].Priors, len(movegen.LegalMoves(a)))
	assert.Len(t, evals[1].Priors, len(movegen.LegalMoves(b)))
}

func TestMoveIndexIsInjective(t *testing.T) {
	pos := position.NewPosition()
	seen := make(map[int]bool)
	for _, m := range movegen.LegalMoves(pos) {
		idx := MoveIndex(m)
		assert.False(t, seen[idx], "move index collision for %s", m.StringLan())
		seen[idx] = true
	}
}
