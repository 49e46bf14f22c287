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

// Package encoder converts a Position's recent history into the fixed
// feature-plane tensor the neural evaluator consumes (spec section 4.3).
package encoder

import (
	"github.com/cego-engine/cego/internal/config"
	"github.com/cego-engine/cego/internal/position"
	. "github.com/cego-engine/cego/internal/types"
)

// BoardSize is the width/height of every plane.
const BoardSize = 8

// PlanesPerPosition is the number of planes contributed by a single
// historical position: 12 piece planes, en-passant, 4 castling rights,
// side to move, halfmove clock and a presence mask.
const PlanesPerPosition = 20

// pieceOrder fixes the per-color piece-type ordering used to fill planes
// 1-12, matching Position's own piecesBb[Color][PieceType] layout.
var pieceOrder = [6]PieceType{King, Pawn, Knight, Bishop, Rook, Queen}

// Plane is one BoardSize x BoardSize layer, indexed [rank][file].
type Plane [BoardSize][BoardSize]float64

// Tensor is the full feature stack: HistoryPlies blocks of
// PlanesPerPosition planes each, oldest position first and the current
// position last, concatenated along the channel axis.
type Tensor struct {
	Planes []Plane
}

// Encode builds the feature tensor for pos using the configured history
// depth and halfmove-clock normalization (internal/config's Eval section).
func Encode(pos *position.Position) Tensor {
	return EncodeWith(pos, config.Settings.Eval.HistoryPlies, config.Settings.Eval.NormalizeHalfmoveClock)
}

// EncodeWith builds the feature tensor with an explicit history depth and
// halfmove-clock normalization choice, independent of global config — used
// by tests and by callers serving a weight file with a known convention.
func EncodeWith(pos *position.Position, historyPlies int, normalizeHalfmove bool) Tensor {
	if historyPlies <= 0 {
		historyPlies = 1
	}
	snaps := pos.History(historyPlies)
	pad := historyPlies - len(snaps)

	t := Tensor{Planes: make([]Plane, 0, historyPlies*PlanesPerPosition)}
	for i := 0; i < pad; i++ {
		t.Planes = append(t.Planes, emptyBlock()...)
	}
	for _, snap := range snaps {
		t.Planes = append(t.Planes, encodeSnapshot(snap, normalizeHalfmove)...)
	}
	return t
}

func emptyBlock() []Plane {
	block := make([]Plane, PlanesPerPosition)
	return block
}

func encodeSnapshot(snap position.Snapshot, normalizeHalfmove bool) []Plane {
	block := make([]Plane, 0, PlanesPerPosition)

	for c := White; int(c) < ColorLength; c++ {
		for _, pt := range pieceOrder {
			block = append(block, bitboardPlane(snap.PiecesBb[c][pt]))
		}
	}

	var epPlane Plane
	if snap.EnPassantSquare != SqNone {
		epPlane[snap.EnPassantSquare.RankOf()][snap.EnPassantSquare.FileOf()] = 1.0
	}
	block = append(block, epPlane)

	block = append(block, boolPlane(snap.CastlingRights.Has(CastlingWhiteOO)))
	block = append(block, boolPlane(snap.CastlingRights.Has(CastlingWhiteOOO)))
	block = append(block, boolPlane(snap.CastlingRights.Has(CastlingBlackOO)))
	block = append(block, boolPlane(snap.CastlingRights.Has(CastlingBlackOOO)))

	block = append(block, boolPlane(snap.NextPlayer == White))

	halfmove := float64(snap.HalfMoveClock)
	if normalizeHalfmove {
		halfmove /= 100.0
	}
	block = append(block, constPlane(halfmove))

	block = append(block, constPlane(1.0)) // presence mask: this slot holds a real position

	return block
}

func bitboardPlane(bb Bitboard) Plane {
	var p Plane
	for bb != BbZero {
		sq := bb.Lsb()
		bb = bb.PopLsb()
		p[sq.RankOf()][sq.FileOf()] = 1.0
	}
	return p
}

func boolPlane(v bool) Plane {
	if v {
		return constPlane(1.0)
	}
	return constPlane(0.0)
}

func constPlane(v float64) Plane {
	var p Plane
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			p[r][f] = v
		}
	}
	return p
}
