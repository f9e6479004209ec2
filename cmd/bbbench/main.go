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

// Command bbbench drives the compiled-in attack-generation back-end at
// saturation and reports its throughput. The answer a back-end computes
// is fixed by the oracle; the only thing worth measuring is how fast it
// gets there, so this is the library's actual product demo.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	bb "github.com/Ravenslofty/bbattack"
	"github.com/Ravenslofty/bbattack/config"
	"github.com/Ravenslofty/bbattack/logging"
	"github.com/Ravenslofty/bbattack/util"
)

var log = logging.GetLog("bbbench")

// sample is one (occupancy, square) query the benchmark corpus replays.
type sample struct {
	Occ bb.Bitboard
	Sq  bb.Square
}

// corpus builds the occupancies replayed for every square: the empty board,
// the full board, a single bit on every other square in turn, and n more
// drawn uniformly at random from r (2 + 63 + n samples per square). These are the same occupancy
// families spec.md §8's "Exhaustive square coverage" property exercises
// for correctness; reused here, they exercise throughput instead.
func corpus(r *rand.Rand, n int) []sample {
	var out []sample
	for sq := bb.Square(0); sq < bb.SqLength; sq++ {
		out = append(out, sample{bb.BbZero, sq}, sample{bb.BbAll, sq})
		for other := bb.Square(0); other < bb.SqLength; other++ {
			if other != sq {
				out = append(out, sample{bb.SquareBb(other), sq})
			}
		}
		for i := 0; i < n; i++ {
			out = append(out, sample{bb.Bitboard(r.Uint64()), sq})
		}
	}
	return out
}

func run(ctx context.Context, samples []sample, duration time.Duration) (uint64, time.Duration) {
	workers := runtime.GOMAXPROCS(0)
	counts := make([]uint64, workers)

	deadline, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	g, gctx := errgroup.WithContext(deadline)
	start := time.Now()
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			var n uint64
			for i := 0; ; i++ {
				if i&0xFFF == 0 {
					select {
					case <-gctx.Done():
						counts[w] = n
						return nil
					default:
					}
				}
				s := samples[(i+w)%len(samples)]
				_ = bb.QueenAttacks(s.Occ, s.Sq)
				n++
			}
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	var total uint64
	for _, c := range counts {
		total += c
	}
	return total, elapsed
}

// recordResult appends one CSV row to path, writing a header first if the
// file is being created. path's directory (if any) is created via
// util.ResolveCreateFolder; the file itself is located with
// util.ResolveFile, whose not-found error (carrying the original,
// uncleaned path) is the cue to create a fresh file at the working-
// directory candidate instead of failing.
func recordResult(path string, samples int, duration time.Duration, total uint64, elapsed time.Duration) error {
	if dir := filepath.Dir(path); dir != "." {
		if created, err := util.ResolveCreateFolder(dir); err == nil {
			path = filepath.Join(created, filepath.Base(path))
		}
	}

	resolved, err := util.ResolveFile(path)
	isNew := err != nil
	if isNew && !filepath.IsAbs(resolved) {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return wdErr
		}
		resolved = filepath.Join(wd, resolved)
	}

	f, err := os.OpenFile(resolved, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if isNew {
		if _, err := f.WriteString("timestamp,backend,samples,duration,attacks,attacks_per_sec\n"); err != nil {
			return err
		}
	}

	rate := float64(total) / elapsed.Seconds()
	_, err = fmt.Fprintf(f, "%s,%s,%d,%s,%d,%.0f\n",
		time.Now().Format(time.RFC3339), bb.BackendName, samples, duration, total, rate)
	return err
}

func main() {
	cpuProfile := flag.Bool("cpuprofile", false, "capture a CPU profile of the benchmark run")
	flag.Parse()

	config.Setup()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	bb.InitTables()

	d, err := time.ParseDuration(config.Settings.Benchmark.Duration)
	if err != nil {
		d = 2 * time.Second
	}

	r := rand.New(rand.NewSource(config.Settings.Benchmark.Seed))
	samples := corpus(r, config.Settings.Benchmark.SampleOccupancies)

	log.Infof("benchmarking back-end %q over %d samples for %s", bb.BackendName, len(samples), d)
	total, elapsed := run(context.Background(), samples, d)

	rate := float64(total) / elapsed.Seconds()
	log.Infof("%s", logging.Printer.Sprintf("%s: %d attacks in %s (%.0f attacks/sec)", bb.BackendName, total, elapsed, rate))
	fmt.Println(logging.Printer.Sprintf("%s: %.0f attacks/sec", bb.BackendName, rate))

	if csvPath := config.Settings.Benchmark.ResultsCSV; csvPath != "" {
		if err := recordResult(csvPath, len(samples), d, total, elapsed); err != nil {
			log.Errorf("could not record results to %q: %v", csvPath, err)
		}
	}
}
