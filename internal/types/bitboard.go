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
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, LERF-indexed (a1 == bit 0).
//
// Sliding-piece attacks (bishop/rook/queen) are looked up through fancy
// magic bitboards (see magic.go); FrankyGo's older rotated-bitboard
// lookup tables (RotateR90/L90/R45/L45 plus the per-rotation movesRank/
// movesFile/movesDiagUp/movesDiagDown tables) are not carried over here:
// they are legacy machinery superseded by GetAttacksBb, and nothing in
// this engine ever needs a rotated board.
type Bitboard uint64

// Constants.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
	BbOne  Bitboard = 0x1

	FileABb Bitboard = 0x0101010101010101
	FileBBb          = FileABb << 1
	FileCBb          = FileABb << 2
	FileDBb          = FileABb << 3
	FileEBb          = FileABb << 4
	FileFBb          = FileABb << 5
	FileGBb          = FileABb << 6
	FileHBb          = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb          = Rank1Bb << (8 * 1)
	Rank3Bb          = Rank1Bb << (8 * 2)
	Rank4Bb          = Rank1Bb << (8 * 3)
	Rank5Bb          = Rank1Bb << (8 * 4)
	Rank6Bb          = Rank1Bb << (8 * 5)
	Rank7Bb          = Rank1Bb << (8 * 6)
	Rank8Bb          = Rank1Bb << (8 * 7)

	CenterFiles = FileDBb | FileEBb
	CenterRanks = Rank4Bb | Rank5Bb
)

var (
	sqBb          [SqLength]Bitboard
	sqToFileBb    [SqLength]Bitboard
	sqToRankBb    [SqLength]Bitboard
	squareDist    [SqLength][SqLength]int
	pawnAttacks   [2][SqLength]Bitboard
	pseudoAttacks [PtLength][SqLength]Bitboard
	rays          [8][SqLength]Bitboard
	intermediate  [SqLength][SqLength]Bitboard
	squaresBbC    [2]Bitboard
	castlingRightsOf [SqLength]CastlingRights
	rookTable     []Bitboard
	rookMagics    [64]Magic
	bishopTable   []Bitboard
	bishopMagics  [64]Magic
)

var rookDirections = [4]Direction{North, East, South, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

func init() {
	for s := SqA1; s < Square(SqLength); s++ {
		sqBb[s] = BbOne << s
		sqToFileBb[s] = fileBbOf(s.FileOf())
		sqToRankBb[s] = rankBbOf(s.RankOf())
	}
	for s1 := SqA1; s1 < Square(SqLength); s1++ {
		for s2 := SqA1; s2 < Square(SqLength); s2++ {
			fd := fileDist(s1.FileOf(), s2.FileOf())
			rd := rankDist(s1.RankOf(), s2.RankOf())
			if fd > rd {
				squareDist[s1][s2] = fd
			} else {
				squareDist[s1][s2] = rd
			}
		}
	}
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)
	for s := SqA1; s < Square(SqLength); s++ {
		pseudoAttacks[Rook][s] = slidingAttack(&rookDirections, s, BbZero)
		pseudoAttacks[Bishop][s] = slidingAttack(&bishopDirections, s, BbZero)
		pseudoAttacks[Queen][s] = pseudoAttacks[Rook][s] | pseudoAttacks[Bishop][s]
		for _, d := range Directions {
			pseudoAttacks[King][s] |= maskOne(s.To(d))
		}
		pseudoAttacks[Knight][s] = knightAttacksOf(s)
		pawnAttacks[White][s] = pawnAttacksOf(White, s)
		pawnAttacks[Black][s] = pawnAttacksOf(Black, s)
	}
	for i, d := range Directions {
		for s := SqA1; s < Square(SqLength); s++ {
			dirs := [4]Direction{d, d, d, d}
			rays[i][s] = slidingAttack(&dirs, s, BbZero)
		}
	}
	for s1 := SqA1; s1 < Square(SqLength); s1++ {
		for i := range Directions {
			r := rays[i][s1]
			for r != BbZero {
				s2 := r.Lsb()
				r = r.PopLsb()
				intermediate[s1][s2] = rays[i][s1] &^ rays[i][s2] &^ maskOne(s2)
			}
		}
	}
	squaresBbC[White] = BbZero
	squaresBbC[Black] = BbZero
	for s := SqA1; s < Square(SqLength); s++ {
		if (int(s.FileOf())+int(s.RankOf()))%2 == 0 {
			squaresBbC[Black].PushSquare(s)
		} else {
			squaresBbC[White].PushSquare(s)
		}
	}
	castlingRightsOf[SqE1] = CastlingWhite
	castlingRightsOf[SqA1] = CastlingWhiteOOO
	castlingRightsOf[SqH1] = CastlingWhiteOO
	castlingRightsOf[SqE8] = CastlingBlack
	castlingRightsOf[SqA8] = CastlingBlackOOO
	castlingRightsOf[SqH8] = CastlingBlackOO
}

func maskOne(sq Square) Bitboard {
	if sq == SqNone {
		return BbZero
	}
	return sqBb[sq]
}

func fileBbOf(f File) Bitboard {
	return FileABb << uint(f)
}

func rankBbOf(r Rank) Bitboard {
	return Rank1Bb << (8 * uint(r))
}

func fileDist(f1, f2 File) int {
	d := int(f1) - int(f2)
	if d < 0 {
		return -d
	}
	return d
}

func rankDist(r1, r2 Rank) int {
	d := int(r1) - int(r2)
	if d < 0 {
		return -d
	}
	return d
}

func knightAttacksOf(sq Square) Bitboard {
	deltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	f, r := int(sq.FileOf()), int(sq.RankOf())
	var bb Bitboard
	for _, d := range deltas {
		nf, nr := f+d[0], r+d[1]
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		bb.PushSquare(SquareOf(File(nf), Rank(nr)))
	}
	return bb
}

func pawnAttacksOf(c Color, sq Square) Bitboard {
	var dirs [2]Direction
	if c == White {
		dirs = [2]Direction{Northeast, Northwest}
	} else {
		dirs = [2]Direction{Southeast, Southwest}
	}
	var bb Bitboard
	for _, d := range dirs {
		bb |= maskOne(sq.To(d))
	}
	return bb
}

// PushSquare sets the bit for sq.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sqBb[sq]
}

// PopSquare clears the bit for sq.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sqBb[sq]
}

// Has reports whether sq's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// Lsb returns the least significant set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set square, or SqNone if empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns b with its least significant bit cleared.
func (b Bitboard) PopLsb() Bitboard {
	return b & (b - 1)
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftBitboard shifts all set squares one step in direction d, discarding
// squares that would wrap around a file edge.
func (b Bitboard) ShiftBitboard(d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	case Northwest:
		return (b &^ FileABb) << 7
	default:
		return BbZero
	}
}

// String renders the bitboard as 64 '1'/'0' characters, a1 first.
func (b Bitboard) String() string {
	var os strings.Builder
	for i := Square(0); i < Square(SqLength); i++ {
		if b.Has(i) {
			os.WriteByte('1')
		} else {
			os.WriteByte('0')
		}
	}
	return os.String()
}

// StringBoard renders the bitboard as an 8x8 ASCII board, rank 8 on top.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	for r := Rank8; ; r-- {
		os.WriteString(r.String())
		os.WriteString(" |")
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				os.WriteString(" X |")
			} else {
				os.WriteString(" . |")
			}
		}
		os.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

// SquareDistance returns Chebyshev distance between two squares.
func SquareDistance(s1, s2 Square) int {
	return squareDist[s1][s2]
}

// Intermediate returns the squares strictly between s1 and s2 if they sit
// on a common rank, file or diagonal; BbZero otherwise.
func Intermediate(s1, s2 Square) Bitboard {
	return intermediate[s1][s2]
}

// SquaresBb returns all squares of the given square color (not piece color).
func SquaresBb(c Color) Bitboard {
	return squaresBbC[c]
}

// GetCastlingRights returns the castling right(s) lost when sq's piece moves
// or is captured (rook/king home squares); CastlingNone elsewhere.
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRightsOf[sq]
}

// GetPawnAttacks returns the pawn-capture squares for a pawn of color c on sq.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetPseudoAttacks returns the attack set for a piece type on an empty board
// (sliding pieces included, ignoring occupancy).
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetAttacksBb returns the attack set for a piece type on sq given the
// current board occupancy. Panics for Pawn (use GetPawnAttacks) and PtNone.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].attacks(occupied)
	case Rook:
		return rookMagics[sq].attacks(occupied)
	case Queen:
		return bishopMagics[sq].attacks(occupied) | rookMagics[sq].attacks(occupied)
	case Knight, King:
		return pseudoAttacks[pt][sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb: invalid piece type %d", pt))
	}
}
