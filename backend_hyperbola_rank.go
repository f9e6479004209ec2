//go:build bbattack_hyperbola_rank

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

import "math/bits"

// hyperbolaRankLines holds, for every square, the full line of squares
// sharing its diagonal, antidiagonal, file and rank (the square itself
// excluded). Unlike backend_hyperbola.go, this variant reverses a rank's
// occupancy with a true 64-bit bit reversal instead of falling back to a
// precomputed table, so it needs the rank's own line mask too.
var hyperbolaRankLines [64]struct {
	Diag, AntiDiag, File, Rank Bitboard
}

func init() {
	BackendName = "hyperbola-rank"
}

func initTables() {
	for sq := Square(0); sq < SqLength; sq++ {
		hyperbolaRankLines[sq].Diag = GenMask(sq, Northeast, false) | GenMask(sq, Southwest, false)
		hyperbolaRankLines[sq].AntiDiag = GenMask(sq, Northwest, false) | GenMask(sq, Southeast, false)
		hyperbolaRankLines[sq].File = GenMask(sq, North, false) | GenMask(sq, South, false)
		hyperbolaRankLines[sq].Rank = GenMask(sq, East, false) | GenMask(sq, West, false)
	}
}

// hyperbolaByte is the diagonal/antidiagonal/file line attack, reversed at
// byte granularity; see backend_hyperbola.go for the full derivation.
func hyperbolaByte(occ, mask Bitboard, sq Square) Bitboard {
	o := occ & mask
	r := ByteReverse(o)
	forward := o - SquareBb(sq)
	reverse := ByteReverse(r - SquareBb(Square(uint8(sq)^56)))
	return (forward ^ reverse) & mask
}

// hyperbolaBit is the same trick applied to a rank: a rank's bits all live
// in a single byte, so byte reversal only moves that byte to the mirrored
// rank without reversing the order of its squares, and the occupancy must
// be reversed bit by bit instead.
func hyperbolaBit(occ, mask Bitboard, sq Square) Bitboard {
	o := occ & mask
	r := Bitboard(bits.Reverse64(uint64(o)))
	forward := o - SquareBb(sq)
	reverse := Bitboard(bits.Reverse64(uint64(r) - uint64(SquareBb(Square(uint8(sq)^63)))))
	return (forward ^ reverse) & mask
}

func bishopAttacks(occ Bitboard, sq Square) Bitboard {
	return hyperbolaByte(occ, hyperbolaRankLines[sq].Diag, sq) |
		hyperbolaByte(occ, hyperbolaRankLines[sq].AntiDiag, sq)
}

func rookAttacks(occ Bitboard, sq Square) Bitboard {
	return hyperbolaBit(occ, hyperbolaRankLines[sq].Rank, sq) |
		hyperbolaByte(occ, hyperbolaRankLines[sq].File, sq)
}
