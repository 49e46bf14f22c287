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
	"fmt"
	"strings"
)

// Square is a LERF-indexed board square, a1=0 .. h8=63.
type Square uint8

// Square constants in little-endian rank-file order.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = int(SqNone)
)

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < Square(SqLength)
}

// Bb returns the single-bit bitboard for this square.
func (sq Square) Bb() Bitboard {
	return maskOne(sq)
}

// FileOf returns the file the square sits on.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank the square sits on.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf builds a square from a file and a rank.
func SquareOf(f File, r Rank) Square {
	return Square(uint8(r)<<3 | uint8(f))
}

// MakeSquare parses a two character algebraic square name, e.g. "e4".
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := strings.IndexByte(fileLabels, s[0])
	r := strings.IndexByte(rankLabels, s[1])
	if f < 0 || r < 0 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

// sqTo is precomputed in init() and handles off-board wrap detection
// for each of the eight ray directions.
var sqTo [SqLength][8]Square

// directionDelta holds the file/rank step for each entry of Directions.
var directionDelta = [8][2]int{
	{0, 1},   // North
	{1, 0},   // East
	{0, -1},  // South
	{-1, 0},  // West
	{1, 1},   // Northeast
	{1, -1},  // Southeast
	{-1, -1}, // Southwest
	{-1, 1},  // Northwest
}

// To returns the square reached from sq by moving one step in direction d,
// or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	for i, dir := range Directions {
		if dir == d {
			return sqTo[sq][i]
		}
	}
	return SqNone
}

func init() {
	for s := SqA1; s < Square(SqLength); s++ {
		f, r := int(s.FileOf()), int(s.RankOf())
		for i := range Directions {
			nf := f + directionDelta[i][0]
			nr := r + directionDelta[i][1]
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				sqTo[s][i] = SqNone
				continue
			}
			sqTo[s][i] = SquareOf(File(nf), Rank(nr))
		}
	}
}

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", sq.FileOf().String(), sq.RankOf().String())
}
