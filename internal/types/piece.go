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

// Piece is a colored piece kind, or PieceNone for an empty square.
type Piece int8

const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength       = 16
)

// MakePiece builds a colored piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<3 | uint8(pt))
}

// ColorOf returns the color of a piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type, stripping color.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// gamePhaseValue weighs each piece type's contribution to a game phase
// count, as returned by GamePhaseValue.
var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns the phase weight of this piece's type.
func (p Piece) GamePhaseValue() int {
	return gamePhaseValue[p.TypeOf()]
}

var pieceTypeValue = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}

// ValueOf returns the material value of this piece's type.
func (p Piece) ValueOf() Value {
	return pieceTypeValue[p.TypeOf()]
}

const pieceToChar = " KPNBRQ- kpnbrq-"

// PieceFromChar parses a single FEN piece letter into a Piece.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	for i := 0; i < PieceLength; i++ {
		if pieceToChar[i] == s[0] {
			return Piece(i)
		}
	}
	return PieceNone
}

var pieceToString = " KPNBRQ- kpnbrq-"

// String returns the FEN letter for the piece (" " for PieceNone).
func (p Piece) String() string {
	return string(pieceToString[p])
}

// Char is an alias of String kept for symmetry with PieceType.Char.
func (p Piece) Char() byte {
	return pieceToChar[p]
}

var pieceToUniChar = []rune{
	' ', '♔', '♙', '♘', '♗', '♖', '♕', ' ', ' ',
	'♚', '♟', '♞', '♝', '♜', '♛', ' ',
}

// UniChar returns a Unicode chess glyph for the piece.
func (p Piece) UniChar() rune {
	return pieceToUniChar[p]
}
