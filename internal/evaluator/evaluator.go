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

// Package evaluator adapts the external neural network — a pure function
// evaluate(feature planes) -> (policy over all conceivable moves, scalar
// value) — into per-position, legal-move-restricted priors for the MCTS
// engine (spec section 4.4). The network itself is out of scope; this
// package only batches, restricts and renormalizes.
package evaluator

import (
	"github.com/cego-engine/cego/internal/encoder"
	myLogging "github.com/cego-engine/cego/internal/logging"
	"github.com/cego-engine/cego/internal/movegen"
	"github.com/cego-engine/cego/internal/position"
	. "github.com/cego-engine/cego/internal/types"
)

var log = myLogging.GetLog("evaluator")

// priorFloor is the small uniform probability a legal move receives if the
// network assigns it zero mass, so renormalization never divides by zero
// and no legal move is permanently unreachable (spec 4.4).
const priorFloor = 1e-3

// MoveIndex maps a move onto this engine's fixed enumeration of the move
// space: origin square, target square, and a promotion slot (none, queen,
// rook, bishop, knight). Whatever ordering a trained weight file actually
// uses is a property of that weight file (spec 9c); this is simply a
// stable, total, deterministic convention a real adapter's RawEvaluation
// indices are defined against.
func MoveIndex(m Move) int {
	return int(m.From())*64*5 + int(m.To())*5 + promoSlot(m)
}

func promoSlot(m Move) int {
	if m.MoveType() != Promotion {
		return 0
	}
	switch m.PromotionType() {
	case Queen:
		return 1
	case Rook:
		return 2
	case Bishop:
		return 3
	case Knight:
		return 4
	default:
		return 0
	}
}

// RawEvaluation is exactly what the network produces: a sparse policy over
// MoveIndex space (missing entries are zero mass) and a scalar value in
// [-1, 1] from the side-to-move's perspective.
type RawEvaluation struct {
	Policy map[int]float64
	Value  float64
}

// Network is the capability surface the MCTS engine treats the neural
// network through. Implementations may be a real model binding, a remote
// RPC client, or — for tests — a deterministic stub (see stub.go).
type Network interface {
	EvaluateBatch(tensors []encoder.Tensor) ([]RawEvaluation, error)
}

// Evaluation is the per-position result the MCTS engine consumes: a prior
// probability for every legal move (summing to 1) and the position's
// value from the side to move's perspective.
type Evaluation struct {
	Priors map[Move]float64
	Value  float64
}

// Adapter batches boards into Network calls and restricts+renormalizes the
// returned policy to each board's own legal moves.
type Adapter struct {
	net Network
}

// NewAdapter wraps net as the MCTS engine's evaluator.
func NewAdapter(net Network) *Adapter {
	return &Adapter{net: net}
}

// EvaluateBatch encodes every board, evaluates them in a single Network
// call, and returns one Evaluation per board with its policy restricted to
// its own legal moves.
func (a *Adapter) EvaluateBatch(boards []*position.Position) ([]Evaluation, error) {
	if len(boards) == 0 {
		return nil, nil
	}
	tensors := make([]encoder.Tensor, len(boards))
	legalMoves := make([][]Move, len(boards))
	for i, b := range boards {
		tensors[i] = encoder.Encode(b)
		legalMoves[i] = movegen.LegalMoves(b)
	}

	raw, err := a.net.EvaluateBatch(tensors)
	if err != nil {
		log.Warningf("evaluator: network call failed: %v", err)
		return nil, err
	}
	if len(raw) != len(boards) {
		log.Warningf("evaluator: network returned %d results for %d boards", len(raw), len(boards))
	}

	out := make([]Evaluation, len(boards))
	for i := range boards {
		var rawEval RawEvaluation
		if i < len(raw) {
			rawEval = raw[i]
		}
		out[i] = restrict(rawEval, legalMoves[i])
	}
	return out, nil
}

// restrict projects a raw network policy onto legal, flooring any legal
// move that received zero mass and renormalizing the result to sum to 1.
func restrict(raw RawEvaluation, legal []Move) Evaluation {
	priors := make(map[Move]float64, len(legal))
	var sum float64
	for _, m := range legal {
		p := raw.Policy[MoveIndex(m)]
		if p <= 0 {
			p = priorFloor
		}
		priors[m] = p
		sum += p
	}
	if sum > 0 {
		for m := range priors {
			priors[m] /= sum
		}
	}
	return Evaluation{Priors: priors, Value: raw.Value}
}
