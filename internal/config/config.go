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

// Package config holds globally available configuration, either set by
// defaults, read from a TOML file or overridden by command line flags.
package config

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile is the path to the config file to load, relative to the
	// working directory unless absolute.
	ConfFile = "./config.toml"

	// LogLevel is the general engine log level, 0 (critical) .. 5 (debug).
	// Setup and the -loglvl flag set it; nothing passes it to the logging
	// backend.
	LogLevel = 4

	// SearchLogLevel is the log level configured for the mcts package.
	// Setup and the -searchloglvl flag set it; nothing passes it to the
	// logging backend.
	SearchLogLevel = 4

	// Settings is the global configuration, populated by Setup.
	Settings conf

	initialized bool
)

// LogLevels maps config-file log level names to go-logging numeric levels.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type conf struct {
	Log    logConfiguration
	Mcts   mctsConfiguration
	Eval   evalConfiguration
	Driver driverConfiguration
}

type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
}

// Setup reads the configured TOML file (if it exists) and sets
// LogLevel/SearchLogLevel from its [Log] section, overwriting any value
// they held before this call; command-line overrides are applied by the
// caller after Setup returns.
func Setup() {
	if initialized {
		return
	}
	if _, err := os.Stat(ConfFile); err == nil {
		if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
			log.Println("config file found but could not be parsed, using defaults (", err, ")")
		}
	}
	setupLogLvl()
	initialized = true
}

func setupLogLvl() {
	if Settings.Log.LogLvl != "" {
		if lvl, ok := LogLevels[Settings.Log.LogLvl]; ok {
			LogLevel = lvl
		}
	}
	if Settings.Log.SearchLogLvl != "" {
		if lvl, ok := LogLevels[Settings.Log.SearchLogLvl]; ok {
			SearchLogLevel = lvl
		}
	}
}

// String prints the current configuration, mirroring the teacher's
// reflection-based dump so it can be logged at startup for diagnostics.
func (c *conf) String() string {
	var b strings.Builder
	dump := func(title string, v interface{}) {
		b.WriteString(title)
		b.WriteString(":\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			b.WriteString(fmt.Sprintf("%-2d: %-24s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
		}
	}
	dump("Mcts Config", &c.Mcts)
	dump("Eval Config", &c.Eval)
	dump("Driver Config", &c.Driver)
	return b.String()
}
