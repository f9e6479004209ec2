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

// NaiveAttacks walks every ray in dirs one square at a time, unioning each
// stepped-on square into the result and stopping a ray as soon as it
// unions an occupied square. It is the reference oracle every back-end
// must agree with; it is also how the Magic and Switch back-ends compute
// the true attack set for each table slot during initialization. It is
// never used on the query hot path.
func NaiveAttacks(occ Bitboard, sq Square, dirs [4]Direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		s := sq
		for OnBoard(s, d) {
			s = Square(int(s) + int(dirShift[d]))
			attacks |= SquareBb(s)
			if occ.Has(s) {
				break
			}
		}
	}
	return attacks
}

// NaiveBishopAttacks is NaiveAttacks restricted to the bishop's diagonals.
func NaiveBishopAttacks(occ Bitboard, sq Square) Bitboard {
	return NaiveAttacks(occ, sq, BishopDirs)
}

// NaiveRookAttacks is NaiveAttacks restricted to the rook's files and ranks.
func NaiveRookAttacks(occ Bitboard, sq Square) Bitboard {
	return NaiveAttacks(occ, sq, RookDirs)
}

// NaiveQueenAttacks is the union of NaiveBishopAttacks and NaiveRookAttacks.
func NaiveQueenAttacks(occ Bitboard, sq Square) Bitboard {
	return NaiveBishopAttacks(occ, sq) | NaiveRookAttacks(occ, sq)
}
