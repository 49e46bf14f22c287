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

// Package logging hands out one process-wide *logging.Logger per caller
// package, all sharing a single stderr backend.
//
// Stderr rather than stdout: the CEGO driver's stdout is the wire
// protocol itself, parsed line by line by a mediator, so any diagnostic
// log line landing there would corrupt the session.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var (
	backendFormatter logging.Backend
	initialized      bool
)

const logFormat = `%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`

func ensureBackend() {
	if initialized {
		return
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(logFormat)
	backendFormatter = logging.NewBackendFormatter(backend, format)
	logging.SetBackend(backendFormatter)
	initialized = true
}

// GetLog returns the named logger, creating the shared backend on first use.
func GetLog(name string) *logging.Logger {
	ensureBackend()
	log := logging.MustGetLogger(name)
	return log
}

// SetLevel sets the global log level for all loggers sharing the backend.
func SetLevel(level logging.Level) {
	ensureBackend()
	logging.SetLevel(level, "")
}
