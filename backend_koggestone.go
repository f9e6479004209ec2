//go:build !bbattack_dumb7fill && !bbattack_classical && !bbattack_hyperbola && !bbattack_hyperbola_rank && !bbattack_obstruction && !bbattack_sbamg && !bbattack_magic && !bbattack_switch

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

// Kogge-Stone is the default back-end: a parallel-prefix fill that doubles
// its reach each round (1, 2, 4 squares) instead of Dumb7Fill's seven
// single-square steps, trading a little code complexity for fewer
// dependent shifts per query.
func init() {
	BackendName = "kogge-stone"
}

func initTables() {
	// No precomputed state; every query recomputes its fill from scratch.
}

// koggeStone floods fill along d, doubling the reach each round (shifts of
// 1, 2, then 4 squares), and stops propagating through occupied squares by masking
// against empty. It returns only the squares landed on one step beyond the
// final fill, i.e. the attack set (not including the sliding piece's own
// square).
func koggeStone(empty Bitboard, fill Bitboard, d Direction) Bitboard {
	shift := dirShift[d]
	mask := dirWrapMask[d]
	empty &= mask
	fill |= empty & Shift(fill, shift)
	empty &= Shift(empty, shift)
	fill |= empty & Shift(fill, shift*2)
	empty &= Shift(empty, shift*2)
	fill |= empty & Shift(fill, shift*4)
	return mask & Shift(fill, shift)
}

func bishopAttacks(occ Bitboard, sq Square) Bitboard {
	empty := ^occ
	bishop := SquareBb(sq)
	return koggeStone(empty, bishop, Northeast) |
		koggeStone(empty, bishop, Northwest) |
		koggeStone(empty, bishop, Southeast) |
		koggeStone(empty, bishop, Southwest)
}

func rookAttacks(occ Bitboard, sq Square) Bitboard {
	empty := ^occ
	rook := SquareBb(sq)
	return koggeStone(empty, rook, North) |
		koggeStone(empty, rook, South) |
		koggeStone(empty, rook, East) |
		koggeStone(empty, rook, West)
}
