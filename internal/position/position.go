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

// Package position implements the mutable board representation: bitboards
// plus a mailbox array, Zobrist hashing, FEN parsing/printing and
// incremental make/unmake.
package position

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cego-engine/cego/internal/assert"
	"github.com/cego-engine/cego/internal/attacks"
	myLogging "github.com/cego-engine/cego/internal/logging"
	. "github.com/cego-engine/cego/internal/types"
)

var log = myLogging.GetLog("position")

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory is the length of the fixed do/undo history array. MCTS
// workers descend on their own clone of the root position, so this is far
// beyond any realistic path depth plus the real game's move count.
const maxHistory = 1024

// historyState captures everything DoMove needs to reverse a move plus the
// pre-move check flag, used by UndoMove.
type historyState struct {
	zobristKey      Key
	move            Move
	fromPiece       Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	hasCheckFlag    int8 // -1 unknown, 0 false, 1 true
}

// boardSnapshot is a compact copy of the position after some ply, retained
// only so the feature encoder can look back across recent plies without
// needing to replay undo on the live search position.
type boardSnapshot struct {
	piecesBb        [ColorLength][PtLength]Bitboard
	castlingRights  CastlingRights
	enPassantSquare Square
	nextPlayer      Color
	halfMoveClock   int
}

// Position is the full mutable board state: bitboards, a mailbox array and
// the Zobrist key, together with enough history to undo moves and to supply
// the feature encoder's historical planes.
type Position struct {
	piecesBb    [ColorLength][PtLength]Bitboard
	occupiedBb  [ColorLength]Bitboard
	occupiedAll Bitboard
	board       [SqLength]Piece

	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color
	moveNumber      int

	zobristKey Key
	kingSquare [ColorLength]Square

	hasCheckFlag int8 // -1 unknown, 0 false, 1 true

	historyCounter int
	history        [maxHistory]historyState
	snapshots      []boardSnapshot
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFen parses fen into a new Position, running the structural
// validations required before the board is accepted.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.setupBoard(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// Clone deep-copies the position, including its history and encoder
// snapshot ring, so the copy can be mutated independently.
func (p *Position) Clone() *Position {
	c := *p
	c.snapshots = make([]boardSnapshot, len(p.snapshots))
	copy(c.snapshots, p.snapshots)
	return &c
}

var (
	regexFenPos           = regexp.MustCompile(`^([pnbrqkPNBRQK1-8]+/){7}[pnbrqkPNBRQK1-8]+$`)
	regexWorB             = regexp.MustCompile(`^([wb])$`)
	regexCastlingRights   = regexp.MustCompile(`^(KQ?k?q?|Qk?q?|kq?|q|-)$`)
	regexEnPassant = regexp.MustCompile(`^([a-h][36]|-)$`)
)

// setupBoard parses a FEN string into the receiver, rejecting any FEN that
// does not describe a structurally valid chess position: wrong piece
// counts, missing kings, pawns on the back ranks, castling rights that do
// not match where the king/rooks actually stand, a malformed en-passant
// square, or the side not to move already standing in check.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("position: fen %q has fewer than 4 fields", fen)
	}

	if !regexFenPos.MatchString(fields[0]) {
		return fmt.Errorf("position: fen %q has malformed piece placement", fen)
	}
	if !regexWorB.MatchString(fields[1]) {
		return fmt.Errorf("position: fen %q has malformed side to move", fen)
	}
	if !regexCastlingRights.MatchString(fields[2]) {
		return fmt.Errorf("position: fen %q has malformed castling availability", fen)
	}
	if !regexEnPassant.MatchString(fields[3]) {
		return fmt.Errorf("position: fen %q has malformed en passant square", fen)
	}

	halfMoveClock := 0
	moveNumber := 1
	if len(fields) >= 6 {
		var err error
		halfMoveClock, err = strconv.Atoi(fields[4])
		if err != nil {
			return fmt.Errorf("position: fen %q has malformed half move clock: %w", fen, err)
		}
		moveNumber, err = strconv.Atoi(fields[5])
		if err != nil {
			return fmt.Errorf("position: fen %q has malformed move number: %w", fen, err)
		}
	}

	*p = Position{}
	p.enPassantSquare = SqNone

	ranks := strings.Split(fields[0], "/")
	for i := 0; i < 8; i++ {
		rank := Rank(7 - i)
		file := FileA
		for _, c := range ranks[i] {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			pc := PieceFromChar(string(c))
			if pc == PieceNone || int(file) >= FileLength {
				return fmt.Errorf("position: fen %q has malformed rank %q", fen, ranks[i])
			}
			sq := SquareOf(file, rank)
			if pc.TypeOf() == Pawn && (rank == Rank1 || rank == Rank8) {
				return fmt.Errorf("position: fen %q has a pawn on the back rank", fen)
			}
			p.putPiece(pc, sq)
			file++
		}
		if int(file) != FileLength {
			return fmt.Errorf("position: fen %q has a rank that does not sum to 8 files", fen)
		}
	}

	if p.piecesBb[White][King].PopCount() != 1 || p.piecesBb[Black][King].PopCount() != 1 {
		return fmt.Errorf("position: fen %q must have exactly one king per side", fen)
	}

	switch fields[1] {
	case "w":
		p.nextPlayer = White
	case "b":
		p.nextPlayer = Black
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.castlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.castlingRights.Add(CastlingBlackOO)
			case 'q':
				p.castlingRights.Add(CastlingBlackOOO)
			}
		}
	}
	if err := p.validateCastlingRights(); err != nil {
		return err
	}

	if fields[3] != "-" {
		p.enPassantSquare = MakeSquare(fields[3])
	}

	p.halfMoveClock = halfMoveClock
	p.moveNumber = moveNumber

	p.zobristKey = p.computeZobristKey()
	p.hasCheckFlag = -1

	if attacks.IsSquareAttackedBy(p.occupiedAll, &p.piecesBb, p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer) {
		return fmt.Errorf("position: fen %q has the side not to move in check", fen)
	}

	p.pushSnapshot()
	log.Debugf("parsed position: %s", p.StringFen())
	return nil
}

// validateCastlingRights rejects a FEN whose castling-availability field is
// inconsistent with where the kings and rooks actually stand.
func (p *Position) validateCastlingRights() error {
	check := func(has CastlingRights, king Square, rook Square, rookPt Piece) error {
		if !p.castlingRights.Has(has) {
			return nil
		}
		if p.kingSquare[rookPt.ColorOf()] != king || p.board[rook] != rookPt {
			return fmt.Errorf("position: castling right %s is not consistent with king/rook placement", has.String())
		}
		return nil
	}
	if err := check(CastlingWhiteOO, SqE1, SqH1, WhiteRook); err != nil {
		return err
	}
	if err := check(CastlingWhiteOOO, SqE1, SqA1, WhiteRook); err != nil {
		return err
	}
	if err := check(CastlingBlackOO, SqE8, SqH8, BlackRook); err != nil {
		return err
	}
	if err := check(CastlingBlackOOO, SqE8, SqA8, BlackRook); err != nil {
		return err
	}
	return nil
}

func (p *Position) computeZobristKey() Key {
	var key Key
	for sq := SqA1; sq < Square(SqLength); sq++ {
		if p.board[sq] != PieceNone {
			key ^= zobristBase.pieces[p.board[sq]][sq]
		}
	}
	key ^= zobristBase.castlingRights[p.castlingRights]
	if p.enPassantSquare != SqNone {
		key ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
	}
	if p.nextPlayer == Black {
		key ^= zobristBase.nextPlayer
	}
	return key
}

// --- mutators -------------------------------------------------------------

func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c].PushSquare(sq)
	p.occupiedAll.PushSquare(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c].PopSquare(sq)
	p.occupiedAll.PopSquare(sq)
	return pc
}

func (p *Position) movePiece(from, to Square) {
	pc := p.removePiece(from)
	p.putPiece(pc, to)
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

// DoMove applies m to the position, recording enough state on the history
// ring to reverse it with UndoMove.
func (p *Position) DoMove(m Move) {
	assertIsValidMove(m)

	from, to := m.From(), m.To()
	us := p.nextPlayer
	fromPiece := p.board[from]
	capturedPiece := PieceNone

	h := &p.history[p.historyCounter]
	h.zobristKey = p.zobristKey
	h.move = m
	h.fromPiece = fromPiece
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.hasCheckFlag = p.hasCheckFlag
	p.historyCounter++

	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	p.clearEnPassant()

	switch m.MoveType() {
	case Castling:
		capturedPiece = p.doCastlingMove(from, to)
	case EnPassant:
		capturedPiece = p.doEnPassantMove(from, to, us)
	case Promotion:
		capturedPiece = p.doPromotionMove(from, to, m.PromotionType(), us)
	default:
		capturedPiece = p.doNormalMove(from, to, us)
	}
	h.capturedPiece = capturedPiece

	if fromPiece.TypeOf() == Pawn || capturedPiece != PieceNone {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if fromPiece.TypeOf() == Pawn && SquareDistance(from, to) == 2 {
		epTarget := from.To(us.MoveDirection())
		if GetPawnAttacks(us, epTarget)&p.piecesBb[us.Flip()][Pawn] != BbZero {
			p.enPassantSquare = epTarget
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	p.updateCastlingRights(from, to)
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]

	if us == Black {
		p.moveNumber++
	}
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
	p.hasCheckFlag = -1

	p.pushSnapshot()
}

func (p *Position) doNormalMove(from, to Square, us Color) Piece {
	var captured Piece
	if p.board[to] != PieceNone {
		captured = p.removePiece(to)
		p.zobristKey ^= zobristBase.pieces[captured][to]
	}
	pc := p.board[from]
	p.zobristKey ^= zobristBase.pieces[pc][from]
	p.movePiece(from, to)
	p.zobristKey ^= zobristBase.pieces[pc][to]
	return captured
}

func (p *Position) doCastlingMove(from, to Square) Piece {
	pc := p.board[from]
	p.zobristKey ^= zobristBase.pieces[pc][from]
	p.movePiece(from, to)
	p.zobristKey ^= zobristBase.pieces[pc][to]

	var rookFrom, rookTo Square
	switch to {
	case SqG1:
		rookFrom, rookTo = SqH1, SqF1
	case SqC1:
		rookFrom, rookTo = SqA1, SqD1
	case SqG8:
		rookFrom, rookTo = SqH8, SqF8
	case SqC8:
		rookFrom, rookTo = SqA8, SqD8
	}
	rook := p.board[rookFrom]
	p.zobristKey ^= zobristBase.pieces[rook][rookFrom]
	p.movePiece(rookFrom, rookTo)
	p.zobristKey ^= zobristBase.pieces[rook][rookTo]
	return PieceNone
}

func (p *Position) doEnPassantMove(from, to Square, us Color) Piece {
	capSq := to.To(us.Flip().MoveDirection())
	captured := p.removePiece(capSq)
	p.zobristKey ^= zobristBase.pieces[captured][capSq]

	pc := p.board[from]
	p.zobristKey ^= zobristBase.pieces[pc][from]
	p.movePiece(from, to)
	p.zobristKey ^= zobristBase.pieces[pc][to]
	return captured
}

func (p *Position) doPromotionMove(from, to Square, promType PieceType, us Color) Piece {
	var captured Piece
	if p.board[to] != PieceNone {
		captured = p.removePiece(to)
		p.zobristKey ^= zobristBase.pieces[captured][to]
	}
	pawn := p.removePiece(from)
	p.zobristKey ^= zobristBase.pieces[pawn][from]
	promoted := MakePiece(us, promType)
	p.putPiece(promoted, to)
	p.zobristKey ^= zobristBase.pieces[promoted][to]
	return captured
}

func (p *Position) updateCastlingRights(from, to Square) {
	lose := GetCastlingRights(from) | GetCastlingRights(to)
	if lose != CastlingNone {
		p.castlingRights.Remove(lose)
	}
}

// UndoMove reverses the most recently applied move.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "position: UndoMove called with empty history")
	}
	p.historyCounter--
	h := &p.history[p.historyCounter]

	p.nextPlayer = p.nextPlayer.Flip()
	if p.nextPlayer == Black {
		p.moveNumber--
	}

	m := h.move
	from, to := m.From(), m.To()

	switch m.MoveType() {
	case Castling:
		p.movePiece(to, from)
		var rookFrom, rookTo Square
		switch to {
		case SqG1:
			rookFrom, rookTo = SqH1, SqF1
		case SqC1:
			rookFrom, rookTo = SqA1, SqD1
		case SqG8:
			rookFrom, rookTo = SqH8, SqF8
		case SqC8:
			rookFrom, rookTo = SqA8, SqD8
		}
		p.movePiece(rookTo, rookFrom)
	case EnPassant:
		p.movePiece(to, from)
		capSq := to.To(p.nextPlayer.Flip().MoveDirection())
		p.putPiece(h.capturedPiece, capSq)
	case Promotion:
		p.removePiece(to)
		p.putPiece(h.fromPiece, from)
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, to)
		}
	default:
		p.movePiece(to, from)
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, to)
		}
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.hasCheckFlag = h.hasCheckFlag
	p.zobristKey = h.zobristKey

	p.popSnapshot()
}

func (p *Position) pushSnapshot() {
	p.snapshots = append(p.snapshots, boardSnapshot{
		piecesBb:        p.piecesBb,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		nextPlayer:      p.nextPlayer,
		halfMoveClock:   p.halfMoveClock,
	})
}

func (p *Position) popSnapshot() {
	if len(p.snapshots) > 0 {
		p.snapshots = p.snapshots[:len(p.snapshots)-1]
	}
}

func assertIsValidMove(m Move) {
	if assert.DEBUG {
		assert.Assert(m.IsValid(), "position: DoMove called with an invalid move %s", m.String())
	}
}

// --- queries ----------------------------------------------------------

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return attacks.IsSquareAttackedBy(p.occupiedAll, &p.piecesBb, sq, by)
}

// HasCheck reports whether the side to move is in check, caching the
// result until the next DoMove/UndoMove.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag == -1 {
		if p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip()) {
			p.hasCheckFlag = 1
		} else {
			p.hasCheckFlag = 0
		}
	}
	return p.hasCheckFlag == 1
}

// GivesCheck reports whether making m would put the opponent in check.
func (p *Position) GivesCheck(m Move) bool {
	p.DoMove(m)
	gives := p.HasCheck()
	p.UndoMove()
	return gives
}

// IsCapturingMove reports whether m captures a piece (including en passant).
func (p *Position) IsCapturingMove(m Move) bool {
	return m.MoveType() == EnPassant || p.board[m.To()] != PieceNone
}

// CheckRepetitions reports whether the current position has occurred at
// least count times, the current occurrence included, in this position's
// own history (looked up by Zobrist key, restarted at every irreversible
// halfMoveClock reset).
func (p *Position) CheckRepetitions(count int) bool {
	repetitions := 1
	limit := p.historyCounter - p.halfMoveClock
	if limit < 0 {
		limit = 0
	}
	for i := p.historyCounter - 2; i >= limit; i -= 2 {
		if p.history[i].zobristKey == p.zobristKey {
			repetitions++
			if repetitions >= count {
				return true
			}
		}
	}
	return false
}

// HasInsufficientMaterial reports whether neither side has mating material:
// K vs K, a single knight or bishop against a lone king, or K+B vs K+B with
// both bishops on squares of the same color, with no pawns, rooks or queens
// left on the board for either side.
func (p *Position) HasInsufficientMaterial() bool {
	if p.piecesBb[White][Pawn] != BbZero || p.piecesBb[Black][Pawn] != BbZero {
		return false
	}
	if p.piecesBb[White][Rook] != BbZero || p.piecesBb[Black][Rook] != BbZero {
		return false
	}
	if p.piecesBb[White][Queen] != BbZero || p.piecesBb[Black][Queen] != BbZero {
		return false
	}
	minorCount := func(c Color) int {
		return p.piecesBb[c][Knight].PopCount() + p.piecesBb[c][Bishop].PopCount()
	}
	wm, bm := minorCount(White), minorCount(Black)
	if wm == 0 && bm == 0 {
		return true
	}
	if wm+bm == 1 {
		return true
	}
	if wm == 1 && bm == 1 &&
		p.piecesBb[White][Bishop].PopCount() == 1 && p.piecesBb[Black][Bishop].PopCount() == 1 {
		wSq := p.piecesBb[White][Bishop].Lsb()
		bSq := p.piecesBb[Black][Bishop].Lsb()
		return SquaresBb(White).Has(wSq) == SquaresBb(White).Has(bSq)
	}
	return false
}

// --- getters ------------------------------------------------------------

func (p *Position) NextPlayer() Color             { return p.nextPlayer }
func (p *Position) ZobristKey() Key               { return p.zobristKey }
func (p *Position) PieceAt(sq Square) Piece       { return p.board[sq] }
func (p *Position) OccupiedAll() Bitboard         { return p.occupiedAll }
func (p *Position) OccupiedBy(c Color) Bitboard   { return p.occupiedBb[c] }
func (p *Position) PieceBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// BoardSet exposes the raw per-color/per-piece bitboard array so the
// attacks and movegen packages can query it without copying.
func (p *Position) BoardSet() *attacks.Boardset {
	return &p.piecesBb
}
func (p *Position) EnPassantSquare() Square           { return p.enPassantSquare }
func (p *Position) CastlingRights() CastlingRights    { return p.castlingRights }
func (p *Position) HalfMoveClock() int                { return p.halfMoveClock }
func (p *Position) MoveNumber() int                   { return p.moveNumber }
func (p *Position) KingSquare(c Color) Square          { return p.kingSquare[c] }
func (p *Position) PlyCount() int                      { return p.historyCounter }

// Snapshot is a read-only view of one historical ply, used by the feature
// encoder to build its per-ply planes without touching the live position.
type Snapshot struct {
	PiecesBb        [ColorLength][PtLength]Bitboard
	CastlingRights  CastlingRights
	EnPassantSquare Square
	NextPlayer      Color
	HalfMoveClock   int
}

// History returns up to n of the most recent snapshots, oldest first and
// the current position last. Fewer than n are returned near the start of
// a game; callers pad the remainder themselves.
func (p *Position) History(n int) []Snapshot {
	total := len(p.snapshots)
	if n > total {
		n = total
	}
	out := make([]Snapshot, n)
	for i := 0; i < n; i++ {
		s := p.snapshots[total-n+i]
		out[i] = Snapshot{
			PiecesBb:        s.piecesBb,
			CastlingRights:  s.castlingRights,
			EnPassantSquare: s.enPassantSquare,
			NextPlayer:      s.nextPlayer,
			HalfMoveClock:   s.halfMoveClock,
		}
	}
	return out
}

// LastMove returns the most recently applied move, or MoveNone at the root.
func (p *Position) LastMove() Move {
	if p.historyCounter == 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// --- printing -------------------------------------------------------------

// StringFen renders the position as a FEN string.
func (p *Position) StringFen() string {
	var b strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := SquareOf(File(f), Rank(r))
			pc := p.board[sq]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteByte(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.nextPlayer.String())
	b.WriteByte(' ')
	b.WriteString(p.castlingRights.String())
	b.WriteByte(' ')
	if p.enPassantSquare == SqNone {
		b.WriteByte('-')
	} else {
		b.WriteString(p.enPassantSquare.String())
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.moveNumber))
	return b.String()
}

// StringBoard renders an 8x8 ASCII board for logging/debugging.
func (p *Position) StringBoard() string {
	var b strings.Builder
	for r := 7; r >= 0; r-- {
		b.WriteString(strconv.Itoa(r + 1))
		b.WriteString("  ")
		for f := 0; f < 8; f++ {
			sq := SquareOf(File(f), Rank(r))
			pc := p.board[sq]
			if pc == PieceNone {
				b.WriteByte('-')
			} else {
				b.WriteByte(pc.Char())
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a b c d e f g h\n")
	return b.String()
}

func (p *Position) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %x", p.StringBoard(), p.StringFen(), uint64(p.zobristKey))
}
