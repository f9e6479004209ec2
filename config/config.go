/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config reads the TOML configuration cmd/bbbench uses to tune
// logging verbosity and benchmark parameters. Nothing on the attack-
// generation query path (bbattack.BishopAttacks/RookAttacks/QueenAttacks)
// reads from this package.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Ravenslofty/bbattack/util"
)

// globally available config values
var (
	// LogLevel defines the general log level set by default or given by the config file
	LogLevel = 2

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Log       logConfiguration
	Benchmark benchmarkConfiguration
}

// Setup reads config.toml (resolved via util.ResolveFile against the
// working directory, the executable's directory, and the user's home
// directory, in that order) and applies its values over the package
// defaults. It is idempotent: a second call is a no-op. A missing or
// unparsable config file is not fatal — this package only tunes logging
// and benchmark parameters, never attack-generation correctness: a missing
// file is skipped silently, a parse error is printed to stdout, and each
// setupXxx then fills in defaults for any value still unset.
func Setup() {
	if initialized {
		return
	}

	path, err := util.ResolveFile("config.toml")
	if err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			fmt.Println("config: could not parse config.toml:", err)
		}
	}

	// setup log level after reading from configuration file if necessary
	setupLogLvl()

	// setup benchmark config after reading from configuration file if necessary
	setupBenchmark()

	initialized = true
}


