//go:build bbattack_dumb7fill

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

// Dumb7Fill floods fill one square at a time along d for up to seven
// steps (the longest possible ray on an 8x8 board), unrolled so the
// compiler can keep every intermediate value in a register.
func init() {
	BackendName = "dumb7fill"
}

func initTables() {
	// No precomputed state; every query recomputes its fill from scratch.
}

func dumb7Fill(empty Bitboard, fill Bitboard, d Direction) Bitboard {
	shift := dirShift[d]
	mask := dirWrapMask[d]
	flood := fill
	empty &= mask
	fill = Shift(fill, shift) & empty
	flood |= fill
	fill = Shift(fill, shift) & empty
	flood |= fill
	fill = Shift(fill, shift) & empty
	flood |= fill
	fill = Shift(fill, shift) & empty
	flood |= fill
	fill = Shift(fill, shift) & empty
	flood |= fill
	fill = Shift(fill, shift) & empty
	flood |= fill
	fill = Shift(fill, shift) & empty
	flood |= fill
	return Shift(flood, shift) & mask
}

func bishopAttacks(occ Bitboard, sq Square) Bitboard {
	empty := ^occ
	bishop := SquareBb(sq)
	return dumb7Fill(empty, bishop, Northeast) |
		dumb7Fill(empty, bishop, Northwest) |
		dumb7Fill(empty, bishop, Southeast) |
		dumb7Fill(empty, bishop, Southwest)
}

func rookAttacks(occ Bitboard, sq Square) Bitboard {
	empty := ^occ
	rook := SquareBb(sq)
	return dumb7Fill(empty, rook, North) |
		dumb7Fill(empty, rook, South) |
		dumb7Fill(empty, rook, East) |
		dumb7Fill(empty, rook, West)
}
