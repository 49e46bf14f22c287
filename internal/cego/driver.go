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

// Package cego drives the MCTS engine over the CEGO line protocol: a
// small, strict ASCII state machine read from stdin and written to
// stdout (spec section 4.6/6). Following the teacher's uci.UciHandler
// split, the line-by-line state transitions (HandleFirst/HandleNext) are
// separated from the blocking I/O loop (Run) so they can be driven
// directly in tests without a real stdin/stdout pipe.
package cego

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	myLogging "github.com/cego-engine/cego/internal/logging"
	"github.com/cego-engine/cego/internal/mcts"
	"github.com/cego-engine/cego/internal/movegen"
	"github.com/cego-engine/cego/internal/position"
)

var log = myLogging.GetLog("cego")

// driverState is the CEGO state machine's current phase (spec 4.6).
type driverState int

const (
	stateStart driverState = iota
	stateAwaitingFirst
	stateAwaitingNext
)

// Outcome reports what a single protocol step decided.
type Outcome int

const (
	// OutcomeContinue means processing should keep reading lines.
	OutcomeContinue Outcome = iota
	// OutcomeForfeit means "forfeit\n" was written; exit code 0 (spec 6).
	OutcomeForfeit
	// OutcomeFatal means a hard-fail condition was hit; exit nonzero,
	// and — per the canonicalized revision 1 this driver follows — no
	// "error\n" line is ever written (spec 9a).
	OutcomeFatal
)

// Driver is one CEGO session: one authoritative board plus the time
// controls learned from the first message.
type Driver struct {
	engine *mcts.Engine
	cfg    mcts.Config

	reader *bufio.Reader
	writer *bufio.Writer

	state   driverState
	pos     *position.Position
	yourInc time.Duration
}

// NewDriver builds a Driver around engine/cfg reading r and writing w.
// Production use wires r/w to os.Stdin/os.Stdout; tests wire a
// strings.Reader/bytes.Buffer pair to drive HandleFirst/HandleNext
// directly.
func NewDriver(engine *mcts.Engine, cfg mcts.Config, r io.Reader, w io.Writer) *Driver {
	return &Driver{
		engine: engine,
		cfg:    cfg,
		reader: bufio.NewReader(r),
		writer: bufio.NewWriter(w),
		state:  stateStart,
	}
}

// Run is the production entry point: it emits "ready", then loops reading
// and dispatching lines until a forfeit, a fatal protocol violation, or
// the input stream closes (which is itself a fatal violation — a
// well-formed session only ever ends via "forfeit\n"). It returns the
// process exit code the caller (cmd/cego) should use.
func (d *Driver) Run() int {
	d.writeLine("ready")
	d.state = stateAwaitingFirst
	for {
		line, err := d.readLine()
		if err != nil {
			log.Errorf("cego: input closed before a terminated line: %v", err)
			d.writer.Flush()
			return 1
		}

		var outcome Outcome
		switch d.state {
		case stateAwaitingFirst:
			outcome = d.HandleFirst(line)
		case stateAwaitingNext:
			outcome = d.HandleNext(line)
		default:
			outcome = OutcomeFatal
		}

		d.writer.Flush()
		switch outcome {
		case OutcomeForfeit:
			return 0
		case OutcomeFatal:
			return 1
		}
	}
}

// readLine reads one line, failing unless it was properly terminated by
// \n (with an optional preceding \r for CRLF streams) before the stream
// ended (spec 4.6: "line not terminated by \n ... the engine terminates
// its process").
func (d *Driver) readLine() (string, error) {
	line, err := d.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// HandleFirst processes the AwaitingFirst line:
// "<your_time> <your_inc> <opp_time> <opp_inc> <fen>".
func (d *Driver) HandleFirst(line string) Outcome {
	tokens := strings.Split(line, " ")
	if len(tokens) != 10 || anyEmpty(tokens) {
		log.Errorf("cego: malformed first-move line: %q", line)
		return OutcomeFatal
	}

	yourTime, err1 := parseNanos(tokens[0])
	yourInc, err2 := parseNanos(tokens[1])
	_, err3 := parseNanos(tokens[2]) // opp_time: not needed for our own allocation
	_, err4 := parseNanos(tokens[3]) // opp_inc: ditto
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		log.Errorf("cego: malformed time field in first-move line: %q", line)
		return OutcomeFatal
	}

	fen := strings.Join(tokens[4:], " ")
	pos, err := position.NewPositionFen(fen)
	if err != nil {
		log.Errorf("cego: invalid FEN %q: %v", fen, err)
		return OutcomeFatal
	}

	d.pos = pos
	d.yourInc = yourInc
	d.state = stateAwaitingNext
	return d.searchAndRespond(yourTime)
}

// HandleNext processes an AwaitingNext line:
// "<your_time> <opp_time> <opp_move>".
func (d *Driver) HandleNext(line string) Outcome {
	if d.pos == nil {
		log.Errorf("cego: subsequent-move line received before a first-move line")
		return OutcomeFatal
	}

	tokens := strings.Split(line, " ")
	if len(tokens) != 3 || anyEmpty(tokens) {
		log.Errorf("cego: malformed subsequent-move line: %q", line)
		return OutcomeFatal
	}

	yourTime, err1 := parseNanos(tokens[0])
	_, err2 := parseNanos(tokens[1]) // opp_time: unused
	if err1 != nil || err2 != nil {
		log.Errorf("cego: malformed time field in subsequent-move line: %q", line)
		return OutcomeFatal
	}

	move, err := movegen.ParseLan(d.pos, tokens[2])
	if err != nil {
		log.Errorf("cego: invalid opponent move %q: %v", tokens[2], err)
		return OutcomeFatal
	}
	d.pos.DoMove(move)

	return d.searchAndRespond(yourTime)
}

// searchAndRespond runs the engine for the time budget derived from
// yourTime/d.yourInc and emits the chosen move, or forfeits if the
// position is already terminal or the engine cannot produce a move
// (spec 4.5 failure semantics, spec 7 EvaluatorFailure).
func (d *Driver) searchAndRespond(yourTime time.Duration) Outcome {
	if _, _, terminal := movegen.Classify(d.pos); terminal {
		d.writeLine("forfeit")
		return OutcomeForfeit
	}

	budget := mcts.AllocateBudget(yourTime, d.yourInc, d.cfg.MoveHorizonPlies, d.cfg.TimeFactor, d.cfg.MinTime, d.cfg.MaxTime)
	move, err := d.engine.Search(d.pos, budget)
	if err != nil {
		log.Errorf("cego: search failed, forfeiting: %v", err)
		d.writeLine("forfeit")
		return OutcomeForfeit
	}

	d.pos.DoMove(move)
	d.writeLine(move.StringLan())
	return OutcomeContinue
}

func (d *Driver) writeLine(s string) {
	fmt.Fprintf(d.writer, "%s\n", s)
}

func parseNanos(tok string) (time.Duration, error) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("cego: %q is not a non-negative integer nanosecond count", tok)
	}
	return time.Duration(n), nil
}

func anyEmpty(tokens []string) bool {
	for _, t := range tokens {
		if t == "" {
			return true
		}
	}
	return false
}
