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

package main

import (
	"context"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bb "github.com/Ravenslofty/bbattack"
)

func init() {
	bb.InitTables()
}

func TestCorpusIncludesEmptyAndFullAndSingleBitOccupancies(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	samples := corpus(r, 4)

	var sawEmpty, sawFull bool
	singleBitSquares := make(map[bb.Square]bool)
	for _, s := range samples {
		switch s.Occ {
		case bb.BbZero:
			sawEmpty = true
		case bb.BbAll:
			sawFull = true
		}
		if s.Occ.PopCount() == 1 {
			singleBitSquares[s.Occ.Lsb()] = true
		}
	}
	assert.True(t, sawEmpty)
	assert.True(t, sawFull)
	assert.Equal(t, 64, len(singleBitSquares), "every square should appear as a single-bit occupancy somewhere in the corpus")
}

func TestRunCompletesWithPositiveThroughput(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	samples := corpus(r, 2)

	total, elapsed := run(context.Background(), samples, 50*time.Millisecond)
	assert.True(t, total > 0)
	assert.True(t, elapsed > 0)
}

func TestRecordResultCreatesFileWithHeaderThenAppends(t *testing.T) {
	dir, err := ioutil.TempDir("", "bbbench-results")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	require.NoError(t, recordResult("results.csv", 128, time.Second, 1000, time.Second))
	require.NoError(t, recordResult("results.csv", 128, time.Second, 2000, time.Second))

	data, err := ioutil.ReadFile(filepath.Join(dir, "results.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "timestamp,backend,samples,duration,attacks,attacks_per_sec", lines[0])
	assert.True(t, strings.Contains(lines[1], ",1000,"))
	assert.True(t, strings.Contains(lines[2], ",2000,"))
}

func TestRecordResultCreatesMissingDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "bbbench-results")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	require.NoError(t, recordResult(filepath.Join("results", "bench.csv"), 64, time.Second, 42, time.Second))

	info, err := os.Stat(filepath.Join(dir, "results", "bench.csv"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
