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

package bbattack

import (
	"time"

	"github.com/Ravenslofty/bbattack/assert"
	"github.com/Ravenslofty/bbattack/logging"
)

var log = logging.GetLog("bbattack")

// The switch back-end (build tag bbattack_switch) has no source in this
// tree until it is generated: run
//
//	go run ./cmd/bbswitchgen > backend_switch_generated.go
//
// which emits the per-square exhaustive switch tables cmd/bbswitchgen/main.go
// describes. Until that file exists, building with bbattack_switch fails
// with missing initTables/bishopAttacks/rookAttacks definitions, by design.

// BackendName identifies the attack-generation back-end compiled into this
// build. Each back-end file sets it from an init() guarded by its own
// build tag, so exactly one assignment survives compilation.
var BackendName = "unset"

// InitTables populates all precomputed state required by the compiled-in
// back-end. It must complete before any call to BishopAttacks, RookAttacks
// or QueenAttacks; callers are responsible for establishing a
// happens-before from this call to any query, and must not call InitTables
// concurrently with itself. It is idempotent and a no-op for back-ends
// that need no precomputed tables.
func InitTables() {
	start := time.Now()
	initTables()
	log.Infof("initialized %s attack tables in %s", BackendName, time.Since(start))
}

// BishopAttacks returns the bitboard of squares attacked by a bishop on sq
// given the occupancy occ. sq must be in [0, 64); InitTables must have
// returned before the first call.
func BishopAttacks(occ Bitboard, sq Square) Bitboard {
	if assert.DEBUG {
		assert.Assert(sq.IsValid(), "bbattack: square out of range: %d", sq)
	}
	return bishopAttacks(occ, sq)
}

// RookAttacks returns the bitboard of squares attacked by a rook on sq
// given the occupancy occ. sq must be in [0, 64); InitTables must have
// returned before the first call.
func RookAttacks(occ Bitboard, sq Square) Bitboard {
	if assert.DEBUG {
		assert.Assert(sq.IsValid(), "bbattack: square out of range: %d", sq)
	}
	return rookAttacks(occ, sq)
}

// QueenAttacks is the union of BishopAttacks and RookAttacks from sq.
func QueenAttacks(occ Bitboard, sq Square) Bitboard {
	return BishopAttacks(occ, sq) | RookAttacks(occ, sq)
}
