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
	"fmt"
	"regexp"

	"github.com/cego-engine/cego/internal/position"
	. "github.com/cego-engine/cego/internal/types"
)

// InvalidMoveError reports a long-algebraic string that is either
// malformed or not legal in the position it was parsed against.
type InvalidMoveError struct {
	Text string
	Pos  string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("movegen: %q is not a legal move in position %q", e.Text, e.Pos)
}

var regexLan = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([qrbn]?)$`)

// ParseLan parses a CEGO long-algebraic move string against pos and
// returns the matching legal Move, or InvalidMoveError if the string is
// malformed or not legal in this position.
func ParseLan(pos *position.Position, text string) (Move, error) {
	m := regexLan.FindStringSubmatch(text)
	if m == nil {
		return MoveNone, &InvalidMoveError{Text: text, Pos: pos.StringFen()}
	}
	from := MakeSquare(m[1])
	to := MakeSquare(m[2])
	var promo PieceType = PtNone
	if m[3] != "" {
		switch m[3] {
		case "q":
			promo = Queen
		case "r":
			promo = Rook
		case "b":
			promo = Bishop
		case "n":
			promo = Knight
		}
	}
	for _, legal := range LegalMoves(pos) {
		if legal.From() != from || legal.To() != to {
			continue
		}
		if legal.MoveType() == Promotion && legal.PromotionType() != promo {
			continue
		}
		if legal.MoveType() != Promotion && promo != PtNone {
			continue
		}
		return legal, nil
	}
	return MoveNone, &InvalidMoveError{Text: text, Pos: pos.StringFen()}
}

// EmitLan renders m in CEGO long-algebraic notation. It is the exact
// inverse of ParseLan for any move returned by LegalMoves.
func EmitLan(m Move) string {
	return m.StringLan()
}
