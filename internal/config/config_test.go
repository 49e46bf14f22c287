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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMctsDefaults checks the package-level defaults an un-configured engine
// runs with, before any config.toml or CLI flag is applied.
func TestMctsDefaults(t *testing.T) {
	assert.Equal(t, 0, Settings.Mcts.Workers, "0 means runtime.NumCPU() at the call site")
	assert.Equal(t, 2.0, Settings.Mcts.CPuct)
	assert.Equal(t, 3, Settings.Mcts.VirtualLoss)
	assert.True(t, Settings.Mcts.UseReroot)
	assert.False(t, Settings.Mcts.UseRootNoise)
	assert.Equal(t, 8, Settings.Mcts.BatchSize)
}

func TestEvalDefaults(t *testing.T) {
	assert.Equal(t, 16, Settings.Eval.MaxBatchSize)
	assert.Equal(t, 7, Settings.Eval.HistoryPlies)
	assert.False(t, Settings.Eval.NormalizeHalfmoveClock)
}

func TestDriverDefaults(t *testing.T) {
	assert.True(t, Settings.Driver.StrictProtocol, "the only CEGO revision this engine speaks hard-fails on malformed input")
}

func TestLogLevelsCoversEveryGoLoggingLevel(t *testing.T) {
	want := []string{"off", "critical", "error", "warning", "notice", "info", "debug"}
	for _, name := range want {
		_, ok := LogLevels[name]
		assert.True(t, ok, "missing log level %q", name)
	}
	assert.Equal(t, -1, LogLevels["off"])
	assert.Equal(t, 5, LogLevels["debug"])
}

// TestSetupAppliesConfigFile exercises Setup's TOML load path. Setup is
// idempotent for the lifetime of the process (the package-level
// `initialized` flag), so this must be the only test in the package that
// calls it, and it must run before anything else observes Settings.Log.
func TestSetupAppliesConfigFile(t *testing.T) {
	dir := t.TempDir()
	confPath := filepath.Join(dir, "config.toml")
	toml := `
[Log]
LogLvl = "debug"
SearchLogLvl = "warning"

[Mcts]
Workers = 4
CPuct = 1.5
`
	require.NoError(t, os.WriteFile(confPath, []byte(toml), 0o644))

	ConfFile = confPath
	Setup()

	assert.Equal(t, LogLevels["debug"], LogLevel)
	assert.Equal(t, LogLevels["warning"], SearchLogLevel)
	assert.Equal(t, 4, Settings.Mcts.Workers)
	assert.Equal(t, 1.5, Settings.Mcts.CPuct)
}
