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

package mcts

import (
	"errors"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/cego-engine/cego/internal/config"
	"github.com/cego-engine/cego/internal/evaluator"
	myLogging "github.com/cego-engine/cego/internal/logging"
	"github.com/cego-engine/cego/internal/movegen"
	"github.com/cego-engine/cego/internal/position"
	. "github.com/cego-engine/cego/internal/types"
)

var log = myLogging.GetLog("mcts")

// ErrEmptyRootMoves is returned when Search is handed a terminal position.
// Terminal positions are not searchable (spec 4.5); the caller should
// never reach this, so seeing it is an InternalInvariantViolation (spec
// 7) that the CEGO driver surfaces as a forfeit.
var ErrEmptyRootMoves = errors.New("mcts: search invoked on a terminal or move-less root")

// ErrEvaluatorFatal is returned when the evaluator cannot produce even
// the root's own evaluation (spec 7 EvaluatorFailure, fatal case).
var ErrEvaluatorFatal = errors.New("mcts: evaluator failed during root expansion")

// errSearchBusy guards against re-entrant Search calls on one Engine.
var errSearchBusy = errors.New("mcts: search already in progress on this engine")

// Config holds the tunables of one Engine, read once from
// internal/config's Mcts section (or built directly by tests).
type Config struct {
	Workers          int
	CPuct            float64
	VirtualLoss      float64
	DirichletAlpha   float64
	DirichletEpsilon float64
	UseRootNoise     bool
	BatchSize        int
	BatchMaxWait     time.Duration
	MoveHorizonPlies int
	TimeFactor       float64
	MinTime          time.Duration
	MaxTime          time.Duration

	// UseReroot enables tree reuse across successive Search calls on the
	// same Engine (spec 4.5/9): the subtree reached by the engine's own
	// chosen move is retained and, if the next root matches one of its
	// children, resumed instead of discarded.
	UseReroot bool
}

// ConfigFromSettings builds a Config from internal/config.Settings.Mcts.
func ConfigFromSettings() Config {
	m := config.Settings.Mcts
	workers := m.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return Config{
		Workers:          workers,
		CPuct:            m.CPuct,
		VirtualLoss:      float64(m.VirtualLoss),
		DirichletAlpha:   m.DirichletAlpha,
		DirichletEpsilon: m.DirichletEpsilon,
		UseRootNoise:     m.UseRootNoise,
		BatchSize:        m.BatchSize,
		BatchMaxWait:     time.Duration(m.BatchMaxWaitMs) * time.Millisecond,
		MoveHorizonPlies: m.MoveHorizonPlies,
		TimeFactor:       m.TimeFactor,
		MinTime:          time.Duration(m.MinTimeMs) * time.Millisecond,
		MaxTime:          time.Duration(m.MaxTimeMs) * time.Millisecond,
		UseReroot:        m.UseReroot,
	}
}

// Engine runs PUCT/MCTS searches against one evaluator.Adapter. It is
// safe to share across successive Search calls (each one builds a fresh
// tree unless UseReroot carries over the subtree kept in reuse) but not to
// call Search on concurrently; the
// teacher's Search.StartSearch/IsSearching semaphore handoff is the model
// followed here for that single-flight guarantee.
type Engine struct {
	cfg     Config
	adapter *evaluator.Adapter
	rng     *rand.Rand
	running *semaphore.Weighted

	// reuse is the subtree rooted at the position this engine last chose
	// to play, retained so the next Search can reroot into it instead of
	// rebuilding from scratch (spec 4.5/9: tree reuse is an optimization,
	// never required for correctness). nil once UseReroot is off or once
	// a reroot attempt fails to find a matching child.
	reuse *Node
}

// New builds an Engine whose noise source uses the fixed seed 0xC390.
func New(adapter *evaluator.Adapter, cfg Config) *Engine {
	return NewSeeded(adapter, cfg, 0xC390)
}

// NewSeeded builds an Engine whose Dirichlet noise stream is pinned to
// seed, so identical (root, evaluator, seed) inputs reproduce identical
// single-threaded search outcomes (spec 8).
func NewSeeded(adapter *evaluator.Adapter, cfg Config, seed int64) *Engine {
	return &Engine{
		cfg:     cfg,
		adapter: adapter,
		rng:     rand.New(rand.NewSource(seed)),
		running: semaphore.NewWeighted(1),
	}
}

// IsSearching reports whether a Search call is currently in flight.
func (e *Engine) IsSearching() bool {
	if e.running.TryAcquire(1) {
		e.running.Release(1)
		return false
	}
	return true
}

// Search runs PUCT/MCTS from root for up to budget and returns the chosen
// move (spec 4.5's search(root_board, game_history, time_budget_ns,
// your_increment_ns) -> Move; game_history is carried inside root's own
// snapshot ring, and the increment only matters to time allocation, done
// by the caller via AllocateBudget before budget is passed in here).
func (e *Engine) Search(root *position.Position, budget time.Duration) (Move, error) {
	if !e.running.TryAcquire(1) {
		return MoveNone, errSearchBusy
	}
	defer e.running.Release(1)

	if _, _, terminal := movegen.Classify(root); terminal {
		return MoveNone, ErrEmptyRootMoves
	}

	rootNode := e.tryReroot(root)
	reused := rootNode != nil
	if !reused {
		rootNode = NewRoot()
	}

	b := newBatcher(e.adapter, e.cfg.BatchSize, e.cfg.BatchMaxWait)
	defer b.close()

	if !reused {
		rootEval, err := b.evaluate(root)
		if err != nil {
			log.Errorf("mcts: root evaluation failed, forfeiting: %v", err)
			return MoveNone, ErrEvaluatorFatal
		}
		installExpansion(rootNode, root, rootEval)
	}
	if e.cfg.UseRootNoise {
		mixRootNoise(rootNode.priors, e.rng, e.cfg.DirichletAlpha, e.cfg.DirichletEpsilon)
	}

	deadline := time.Now().Add(budget)
	var degraded int32

	workers := e.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			e.runWorker(rootNode, root, b, deadline, &degraded)
		}()
	}
	wg.Wait()

	best := selectMoveAtEnd(rootNode)
	if best == nil {
		legal := movegen.LegalMoves(root)
		if len(legal) == 0 {
			return MoveNone, ErrEmptyRootMoves
		}
		return legal[0], nil
	}

	if e.cfg.UseReroot {
		best.parent = nil
		e.reuse = best
	} else {
		e.reuse = nil
	}
	return best.Move(), nil
}

// tryReroot attempts to find the node within the previous search's
// retained subtree that corresponds to root, so this search can resume
// from accumulated statistics instead of an empty tree. e.reuse holds the
// node for the position after this engine's own last chosen move; the
// move that got from there to root is whatever the caller applied in
// between, which root.LastMove() reports directly. Returns nil (and
// clears e.reuse) on any mismatch, leaving the caller to build a fresh
// root — tree reuse is an optimization, never required for correctness.
func (e *Engine) tryReroot(root *position.Position) *Node {
	parent := e.reuse
	e.reuse = nil
	if parent == nil || parent.loadState() != stateExpanded {
		return nil
	}
	oppMove := root.LastMove()
	if oppMove == MoveNone {
		return nil
	}
	for _, c := range parent.children {
		if c.move == oppMove {
			c.parent = nil
			return c
		}
	}
	return nil
}

// runWorker repeatedly runs simulations from root until the deadline
// passes or the search has been degraded by a non-fatal evaluator error
// (spec 5: workers poll the deadline between iterations).
func (e *Engine) runWorker(root *Node, rootPos *position.Position, b *batcher, deadline time.Time, degraded *int32) {
	for {
		if time.Now().After(deadline) || atomic.LoadInt32(degraded) != 0 {
			return
		}
		e.simulate(root, rootPos, b, degraded)
	}
}

// simulate runs one selection/expansion/backup cycle.
func (e *Engine) simulate(root *Node, rootPos *position.Position, b *batcher, degraded *int32) {
	pos := rootPos.Clone()
	node := root
	path := make([]*Node, 0, 64)

	for {
		if _, value, terminal := movegen.Classify(pos); terminal {
			node.markTerminal(value)
			backup(path, root, value, e.cfg.VirtualLoss)
			return
		}

		switch node.loadState() {
		case stateUnexpanded:
			if !node.tryStartExpand() {
				runtime.Gosched()
				continue
			}
			eval, err := b.evaluate(pos)
			if err != nil {
				log.Warningf("mcts: evaluator failed mid-search, finishing with best-so-far: %v", err)
				node.finishExpand(nil, nil, 0)
				backup(path, root, 0, e.cfg.VirtualLoss)
				atomic.StoreInt32(degraded, 1)
				return
			}
			installExpansion(node, pos, eval)
			backup(path, root, eval.Value, e.cfg.VirtualLoss)
			return
		case stateExpanding:
			runtime.Gosched()
			continue
		default: // expanded
			child := selectChild(node, e.cfg.CPuct)
			if child == nil {
				return
			}
			child.addN(1)
			child.addW(-e.cfg.VirtualLoss)
			child.addVL(1)
			pos.DoMove(child.move)
			path = append(path, child)
			node = child
		}
	}
}
