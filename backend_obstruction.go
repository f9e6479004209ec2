//go:build bbattack_obstruction

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

// obstructionMasks[sq][line] splits the full ray through sq along one of
// the four lines (rank, file, diagonal, antidiagonal) into the half
// running toward increasing square indices (Upper) and the half running
// toward decreasing indices (Lower).
var obstructionMasks [64][4]struct {
	Upper, Lower Bitboard
}

func init() {
	BackendName = "obstruction"
}

func initTables() {
	for sq := Square(0); sq < SqLength; sq++ {
		obstructionMasks[sq][lineRank].Upper = GenMask(sq, East, false)
		obstructionMasks[sq][lineRank].Lower = GenMask(sq, West, false)

		obstructionMasks[sq][lineFile].Upper = GenMask(sq, North, false)
		obstructionMasks[sq][lineFile].Lower = GenMask(sq, South, false)

		obstructionMasks[sq][lineDiagonal].Upper = GenMask(sq, Northeast, false)
		obstructionMasks[sq][lineDiagonal].Lower = GenMask(sq, Southwest, false)

		obstructionMasks[sq][lineAntidiagonal].Upper = GenMask(sq, Northwest, false)
		obstructionMasks[sq][lineAntidiagonal].Lower = GenMask(sq, Southeast, false)
	}
}

// obstruction computes the attacked squares along one line by isolating
// the nearest blocker in each half of the line (the lowest set bit of the
// upper half, the highest set bit of the lower half) and filling between
// them: highestLow is a run of 1s from that lower blocker upward, and
// 2*lowestHigh carries a single bit one place past the upper blocker,
// stopping the fill there. ANDing the sum against the full line recovers
// exactly the squares between (and including) the two nearest blockers.
func obstruction(occ Bitboard, sq Square, line int) Bitboard {
	m := &obstructionMasks[sq][line]
	upper := uint64(m.Upper) & uint64(occ)
	lower := uint64(m.Lower) & uint64(occ)

	highestLow := ^uint64(0) << uint(63-bits.LeadingZeros64(lower|1))
	lowestHigh := upper & (-upper)
	diff := 2*lowestHigh + highestLow

	return (m.Upper | m.Lower) & Bitboard(diff)
}

func bishopAttacks(occ Bitboard, sq Square) Bitboard {
	return obstruction(occ, sq, lineDiagonal) | obstruction(occ, sq, lineAntidiagonal)
}

func rookAttacks(occ Bitboard, sq Square) Bitboard {
	return obstruction(occ, sq, lineRank) | obstruction(occ, sq, lineFile)
}
