//go:build bbattack_classical

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

// classicalAttacks[sq][d] is the full ray mask from sq in direction d,
// including the board-edge square the ray terminates on.
var classicalAttacks [64][8]Bitboard

func init() {
	BackendName = "classical"
}

func initTables() {
	for sq := Square(0); sq < SqLength; sq++ {
		for d := North; d <= Northwest; d++ {
			classicalAttacks[sq][d] = GenMask(sq, d, false)
		}
	}
}

// classical looks up the full ray mask from sq in direction d, then trims
// it back to the first blocker: the first occupied square along the ray
// is found with a single bit scan (forward for a left-shifting direction,
// backward for a right-shifting one), and the ray mask rooted at that
// blocker is subtracted out, since everything from the blocker onward is
// beyond the slide. A sentinel bit (63 for forward scans, 0 for backward
// ones) keeps the scan well-defined when there is no blocker at all: the
// ray mask at that sentinel square is always empty, so subtracting it is
// a no-op.
func classical(occ Bitboard, sq Square, d Direction) Bitboard {
	attacks := classicalAttacks[sq][d]
	blocker := attacks & occ
	if dirShift[d] > 0 {
		first := (blocker | SquareBb(SqH8)).Lsb()
		return attacks &^ classicalAttacks[first][d]
	}
	first := (blocker | SquareBb(SqA1)).Msb()
	return attacks &^ classicalAttacks[first][d]
}

func bishopAttacks(occ Bitboard, sq Square) Bitboard {
	return classical(occ, sq, Northeast) |
		classical(occ, sq, Southeast) |
		classical(occ, sq, Southwest) |
		classical(occ, sq, Northwest)
}

func rookAttacks(occ Bitboard, sq Square) Bitboard {
	return classical(occ, sq, North) |
		classical(occ, sq, East) |
		classical(occ, sq, South) |
		classical(occ, sq, West)
}
