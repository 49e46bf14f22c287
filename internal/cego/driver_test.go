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

package cego

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cego-engine/cego/internal/evaluator"
	"github.com/cego-engine/cego/internal/mcts"
	"github.com/cego-engine/cego/internal/movegen"
	"github.com/cego-engine/cego/internal/position"
)

func testEngine(value float64) *mcts.Engine {
	adapter := evaluator.NewAdapter(evaluator.UniformStub{Value: value})
	cfg := mcts.Config{
		Workers:          1,
		CPuct:            2.0,
		VirtualLoss:      3,
		DirichletAlpha:   0.3,
		DirichletEpsilon: 0.25,
		UseRootNoise:     false,
		BatchSize:        8,
		BatchMaxWait:     time.Millisecond,
		MoveHorizonPlies: 30,
		TimeFactor:       0.8,
		MinTime:          50 * time.Millisecond,
		MaxTime:          2 * time.Second,
	}
	return mcts.NewSeeded(adapter, cfg, 1)
}

func newTestDriver(engine *mcts.Engine, out *bytes.Buffer) *Driver {
	return NewDriver(engine, mcts.Config{MoveHorizonPlies: 30, TimeFactor: 0.8, MinTime: 50 * time.Millisecond, MaxTime: 2 * time.Second}, strings.NewReader(""), out)
}

func TestStartupHandshakeWritesReadyBeforeReadingInput(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(testEngine(0), mcts.Config{}, strings.NewReader(""), &out)
	d.Run()
	assert.Equal(t, "ready\n", out.String())
}

func TestFirstMoveEcho(t *testing.T) {
	var out bytes.Buffer
	d := newTestDriver(testEngine(0), &out)

	line := "30000000000 1000000000 30000000000 1000000000 rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	outcome := d.HandleFirst(line)
	require.Equal(t, OutcomeContinue, outcome)

	move := strings.TrimSuffix(out.String(), "\n")
	_, err := movegen.ParseLan(position.NewPosition(), move)
	assert.NoError(t, err, "engine must emit a legal opening move")
}

func TestMateDetection(t *testing.T) {
	var out bytes.Buffer
	d := newTestDriver(testEngine(0), &out)
	pos, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	d.pos = pos
	d.state = stateAwaitingNext

	outcome := d.searchAndRespond(500 * time.Millisecond)
	require.Equal(t, OutcomeContinue, outcome)
	move := strings.TrimSuffix(out.String(), "\n")
	assert.True(t, move == "f7g7" || move == "f7h7", "expected a mating move, got %s", move)
}

func TestStalemateGuardForfeits(t *testing.T) {
	var out bytes.Buffer
	d := newTestDriver(testEngine(0), &out)
	pos, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	d.pos = pos
	d.state = stateAwaitingNext

	outcome := d.searchAndRespond(500 * time.Millisecond)
	assert.Equal(t, OutcomeForfeit, outcome)
	assert.Equal(t, "forfeit\n", out.String())
}

func TestForfeitPathOnFatalEvaluatorFailure(t *testing.T) {
	var out bytes.Buffer
	adapter := evaluator.NewAdapter(evaluator.FailingStub{})
	engine := mcts.NewSeeded(adapter, mcts.Config{Workers: 1, BatchSize: 1, BatchMaxWait: time.Millisecond}, 1)
	d := newTestDriver(engine, &out)
	d.pos = position.NewPosition()
	d.state = stateAwaitingNext

	outcome := d.searchAndRespond(500 * time.Millisecond)
	assert.Equal(t, OutcomeForfeit, outcome)
	assert.Equal(t, "forfeit\n", out.String())
}

func TestMalformedFirstLineIsFatal(t *testing.T) {
	var out bytes.Buffer
	d := newTestDriver(testEngine(0), &out)
	outcome := d.HandleFirst("not a valid line")
	assert.Equal(t, OutcomeFatal, outcome)
}

func TestSubsequentLineWithIllegalMoveIsFatal(t *testing.T) {
	var out bytes.Buffer
	d := newTestDriver(testEngine(0), &out)
	d.pos = position.NewPosition()
	d.state = stateAwaitingNext

	outcome := d.HandleNext("30000000000 30000000000 e2e5")
	assert.Equal(t, OutcomeFatal, outcome)
}

func TestRepetitionTerminalForfeits(t *testing.T) {
	var out bytes.Buffer
	d := newTestDriver(testEngine(0), &out)
	pos := position.NewPosition()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, lan := range shuffle {
		m, err := movegen.ParseLan(pos, lan)
		require.NoError(t, err)
		pos.DoMove(m)
	}
	d.pos = pos
	d.state = stateAwaitingNext

	outcome := d.searchAndRespond(500 * time.Millisecond)
	assert.Equal(t, OutcomeForfeit, outcome)
}
