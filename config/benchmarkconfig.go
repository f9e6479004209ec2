/*
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

package config

// benchmarkConfiguration tunes cmd/bbbench. Every field has a built-in
// default (set in init below) that a config.toml may override.
type benchmarkConfiguration struct {
	Duration          string
	SampleOccupancies int
	Seed              int64
	ResultsCSV        string
}

func init() {
	Settings.Benchmark.Duration = "2s"
	Settings.Benchmark.SampleOccupancies = 64
	Settings.Benchmark.Seed = 1
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupBenchmark() {
	if Settings.Benchmark.Duration == "" {
		Settings.Benchmark.Duration = "2s"
	}
	if Settings.Benchmark.SampleOccupancies <= 0 {
		Settings.Benchmark.SampleOccupancies = 64
	}
	if Settings.Benchmark.Seed == 0 {
		Settings.Benchmark.Seed = 1
	}
}
