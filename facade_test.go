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

// These tests exercise whichever back-end the build tags select (the
// default, Kogge-Stone, when none are given — see the package doc
// comment in geometry.go). Cross-algorithm agreement (spec.md §8) is
// verified by running `go test` once per back-end build tag; a single
// test binary only ever has one back-end linked in.
package bbattack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func init() {
	InitTables()
}

func occupancySuite(sq Square) []Bitboard {
	occs := []Bitboard{BbZero, BbAll}
	for other := Square(0); other < SqLength; other++ {
		if other != sq {
			occs = append(occs, SquareBb(other))
		}
	}

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 64; i++ {
		occs = append(occs, Bitboard(r.Uint64()))
	}
	for i := 0; i < 64; i++ {
		occs = append(occs, Bitboard(r.Uint64())&Bitboard(r.Uint64())&Bitboard(r.Uint64()))
	}

	mask := RelevantBishopMask(sq) | RelevantRookMask(sq)
	sub := Bitboard(0)
	for {
		occs = append(occs, sub)
		sub = (sub - mask) & mask
		if sub == 0 {
			break
		}
	}
	return occs
}

func TestExhaustiveSquareCoverageAgainstOracle(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		for _, occ := range occupancySuite(sq) {
			assert.Equal(t, NaiveBishopAttacks(occ, sq), BishopAttacks(occ, sq), "bishop sq=%d occ=%s", sq, occ)
			assert.Equal(t, NaiveRookAttacks(occ, sq), RookAttacks(occ, sq), "rook sq=%d occ=%s", sq, occ)
		}
	}
}

func TestIrrelevanceOfEdgeOccupancy(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for sq := Square(0); sq < SqLength; sq++ {
		occ := Bitboard(r.Uint64())
		assert.Equal(t, BishopAttacks(occ, sq), BishopAttacks(occ&RelevantBishopMask(sq), sq))
		assert.Equal(t, RookAttacks(occ, sq), RookAttacks(occ&RelevantRookMask(sq), sq))
	}
}

func TestSelfExclusion(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for sq := Square(0); sq < SqLength; sq++ {
		occ := Bitboard(r.Uint64())
		assert.False(t, BishopAttacks(occ, sq).Has(sq))
		assert.False(t, RookAttacks(occ, sq).Has(sq))
	}
}

func TestBlockerTruncation(t *testing.T) {
	sq := SqD4 // square 27
	occ := SquareBb(SqE4) // e4, bit 28: blocks the east ray
	attacks := RookAttacks(occ, sq)
	// east ray from d4 stops at e4 inclusive; the rest of the rook's rays
	// run to the board edge unobstructed.
	assert.True(t, attacks.Has(SqE4))
	assert.False(t, attacks.Has(SqF4))
	assert.True(t, attacks.Has(SqA4))
	assert.True(t, attacks.Has(SqD1))
	assert.True(t, attacks.Has(SqD8))
}

func TestUnionIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for sq := Square(0); sq < SqLength; sq++ {
		occ := Bitboard(r.Uint64())
		bishop := BishopAttacks(occ, sq)
		rook := RookAttacks(occ, sq)
		queen := QueenAttacks(occ, sq)
		assert.Equal(t, bishop|rook, queen)
		assert.Zero(t, bishop&rook, "bishop and rook attack sets must be disjoint")
	}
}

// Concrete scenarios, spec.md §8.

func TestScenarioRookA1EmptyBoard(t *testing.T) {
	assert.Equal(t, Bitboard(0x01010101010101FE), RookAttacks(BbZero, SqA1))
}

func TestScenarioRookD4BlockedE4(t *testing.T) {
	assert.Equal(t, Bitboard(0x0808080817080808), RookAttacks(SquareBb(SqE4), SqD4))
}

func TestScenarioBishopD4EmptyBoard(t *testing.T) {
	assert.Equal(t, Bitboard(0x8041221400142241), BishopAttacks(BbZero, SqD4))
}

func TestScenarioBishopE5BlockedF6C3(t *testing.T) {
	occ := SquareBb(SqF6) | SquareBb(SqC3)
	attacks := BishopAttacks(occ, SqE5)
	assert.True(t, attacks.Has(SqF6))
	assert.False(t, attacks.Has(SqG7))
	assert.True(t, attacks.Has(SqC3))
	assert.False(t, attacks.Has(SqB2))
	assert.False(t, attacks.Has(SqA1))
	assert.True(t, attacks.Has(SqH2))
}

func TestScenarioQueenE4EmptyBoard(t *testing.T) {
	queen := QueenAttacks(BbZero, SqE4)
	assert.Equal(t, RookAttacks(BbZero, SqE4)|BishopAttacks(BbZero, SqE4), queen)
	assert.NotZero(t, queen)
}

func TestScenarioSaturatedBoardIsKingMoves(t *testing.T) {
	kingMoves := map[Square]int{
		SqA1: 3, SqH1: 3, SqA8: 3, SqH8: 3,
		SqD4: 8, SqE5: 8,
		SqA4: 5, SqD1: 5,
	}
	for sq, want := range kingMoves {
		got := (BishopAttacks(BbAll, sq) | RookAttacks(BbAll, sq)).PopCount()
		assert.Equal(t, want, got, "sq=%s", sq)
	}
}

func TestQueenAttacksDoesNotPanicForEverySquare(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		assert.NotPanics(t, func() {
			QueenAttacks(BbAll^SquareBb(sq), sq)
		})
	}
}
