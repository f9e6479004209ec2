//go:build bbattack_sbamg

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

// sbamgMasks[sq][line] holds, for one of the four lines through sq:
//
//   - Lower: every square with a lower index than sq, regardless of line
//     (a plain bit run, the same for all four lines).
//   - Line: the full ray through sq in both directions (edges included).
//   - Outer: just the two edge squares the ray terminates on, plus bit 0
//     as a sentinel so a later scan of the fused line ANDed with Lower
//     (see sbamg) always finds a set
//     bit even when sq has no real occupied square below it.
var sbamgMasks [64][4]struct {
	Lower, Line, Outer Bitboard
}

func init() {
	BackendName = "sbamg"
}

// sbamgLowerMask returns every bit below sq, or just bit 0 when sq is 0
// (where "every bit below" would otherwise be empty and break the
// guaranteed-nonempty-scan invariant Outer relies on).
func sbamgLowerMask(sq Square) Bitboard {
	if sq == SqA1 {
		return BbOne
	}
	return SquareBb(sq) - 1
}

// sbamgOuterBit isolates the single edge square a ray in direction d
// terminates on: the full ray minus the ray with its outer edge excluded.
func sbamgOuterBit(sq Square, d Direction) Bitboard {
	return GenMask(sq, d, false) &^ GenMask(sq, d, true)
}

func initTables() {
	for sq := Square(0); sq < SqLength; sq++ {
		lower := sbamgLowerMask(sq)

		sbamgMasks[sq][lineRank].Lower = lower
		sbamgMasks[sq][lineRank].Line = GenMask(sq, East, false) | GenMask(sq, West, false)
		sbamgMasks[sq][lineRank].Outer = sbamgOuterBit(sq, East) | sbamgOuterBit(sq, West) | BbOne

		sbamgMasks[sq][lineFile].Lower = lower
		sbamgMasks[sq][lineFile].Line = GenMask(sq, North, false) | GenMask(sq, South, false)
		sbamgMasks[sq][lineFile].Outer = sbamgOuterBit(sq, North) | sbamgOuterBit(sq, South) | BbOne

		sbamgMasks[sq][lineDiagonal].Lower = lower
		sbamgMasks[sq][lineDiagonal].Line = GenMask(sq, Northeast, false) | GenMask(sq, Southwest, false)
		sbamgMasks[sq][lineDiagonal].Outer = sbamgOuterBit(sq, Northeast) | sbamgOuterBit(sq, Southwest) | BbOne

		sbamgMasks[sq][lineAntidiagonal].Lower = lower
		sbamgMasks[sq][lineAntidiagonal].Line = GenMask(sq, Northwest, false) | GenMask(sq, Southeast, false)
		sbamgMasks[sq][lineAntidiagonal].Outer = sbamgOuterBit(sq, Northwest) | sbamgOuterBit(sq, Southeast) | BbOne
	}
}

// sbamg ("subtract blocker and mask, generalized") computes the attacked
// squares along one line by fusing occupancy into the line mask (with the
// Outer sentinel bits guaranteeing at least one set bit below sq), finding
// the nearest blocker below sq, and subtracting a 2-bit "blocker" pattern
// straddling it: the subtraction borrows through every empty square above
// that blocker, and XORing against the pre-subtraction line isolates
// exactly the bits that changed, i.e. the attacked squares.
func sbamg(occ Bitboard, sq Square, line int) Bitboard {
	m := &sbamgMasks[sq][line]
	l := (occ & m.Line) | m.Outer

	msb := uint(63 - bits.LeadingZeros64(uint64(l&m.Lower)))
	blocker := Bitboard(3) << msb

	return (l ^ (l - blocker)) & m.Line
}

func bishopAttacks(occ Bitboard, sq Square) Bitboard {
	return sbamg(occ, sq, lineDiagonal) | sbamg(occ, sq, lineAntidiagonal)
}

func rookAttacks(occ Bitboard, sq Square) Bitboard {
	return sbamg(occ, sq, lineRank) | sbamg(occ, sq, lineFile)
}
