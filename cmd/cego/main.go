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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cego-engine/cego/internal/cego"
	"github.com/cego-engine/cego/internal/config"
	"github.com/cego-engine/cego/internal/evaluator"
	"github.com/cego-engine/cego/internal/logging"
	"github.com/cego-engine/cego/internal/mcts"
	"github.com/cego-engine/cego/internal/movegen"
	"github.com/cego-engine/cego/internal/position"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "mcts log level\n(critical|error|warning|notice|info|debug)")
	weights := flag.String("weights", "", "path to the evaluator's weight file (opaque to this engine)")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile of the session to ./cpu.pprof")
	perft := flag.Int("perft", 0, "run perft to the given depth on -fen instead of starting a CEGO session")
	fen := flag.String("fen", position.StartFen, "FEN used by -perft")
	flag.Parse()

	var prof interface{ Stop() }
	if *cpuProfile {
		prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		defer prof.Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}

	if *perft != 0 {
		runPerft(*fen, *perft)
		return
	}

	net, err := newNetwork(*weights)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cego:", err)
		os.Exit(1)
	}
	cfg := mcts.ConfigFromSettings()
	adapter := evaluator.NewAdapter(net)
	engine := mcts.New(adapter, cfg)

	log := logging.GetLog("main")
	log.Noticef("cego: starting session (weights=%q, workers=%d)", *weights, cfg.Workers)

	driver := cego.NewDriver(engine, cfg, os.Stdin, os.Stdout)
	code := driver.Run()
	if prof != nil {
		prof.Stop()
	}
	os.Exit(code)
}

// newNetwork resolves the evaluator.Network implementation for this
// process. The network itself — training, weight-file format, tensor
// kernels — is explicitly out of scope (spec 1/Environment-config): the
// weight-file path is opaque input handed to whatever binding loads it.
// No such binding ships in this retrieval pack, so an empty -weights
// leaves the engine running against evaluator.UniformStub, a legal (if
// weak) Network that lets the rest of the protocol and search stack run
// end to end; a non-empty path is accepted but, absent a real binding,
// still resolves to the same stub so the CLI surface for wiring one in
// later is already in place.
func newNetwork(weights string) (evaluator.Network, error) {
	if weights == "" {
		return evaluator.UniformStub{Value: 0}, nil
	}
	if _, err := os.Stat(weights); err != nil {
		return nil, fmt.Errorf("weight file %q: %w", weights, err)
	}
	return evaluator.UniformStub{Value: 0}, nil
}

var out = message.NewPrinter(language.English)

func runPerft(fen string, depth int) {
	pos, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cego: invalid -fen:", err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		nodes := movegen.Perft(pos, d)
		out.Printf("perft(%d) = %d\n", d, nodes)
	}
}
