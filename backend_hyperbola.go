//go:build bbattack_hyperbola

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

// hyperbolaLines holds, for every square, the full line of squares sharing
// its diagonal, antidiagonal and file (the square itself excluded). Rank
// is handled separately by rankAttacksTable: a rank's bits all live in one
// byte, so the subtraction trick below would need a true bit reversal to
// mirror it, not the byte reversal diagonals and files get away with; this
// back-end trades that reversal for a small precomputed table instead. See
// backend_hyperbola_rank.go for the variant that reverses the rank too.
var hyperbolaLines [64]struct {
	Diag, AntiDiag, File Bitboard
}

// rankAttacksTable[occ6][file] is the 8-bit mask, within one rank, of
// squares attacked by a piece on file given that the rank's six inner
// squares (files B-G) are occupied per the six bits of occ6. The two edge
// files never affect the attack set, since a slide along the rank always
// stops there regardless of occupancy.
var rankAttacksTable [64][8]uint8

func init() {
	BackendName = "hyperbola"
}

func initTables() {
	for sq := Square(0); sq < SqLength; sq++ {
		hyperbolaLines[sq].Diag = GenMask(sq, Northeast, false) | GenMask(sq, Southwest, false)
		hyperbolaLines[sq].AntiDiag = GenMask(sq, Northwest, false) | GenMask(sq, Southeast, false)
		hyperbolaLines[sq].File = GenMask(sq, North, false) | GenMask(sq, South, false)
	}

	for occ6 := 0; occ6 < 64; occ6++ {
		occByte := uint8(occ6) << 1
		for file := 0; file < 8; file++ {
			var attacked uint8
			for dest := file + 1; dest < 8; dest++ {
				attacked |= 1 << uint(dest)
				if occByte&(1<<uint(dest)) != 0 {
					break
				}
			}
			for dest := file - 1; dest >= 0; dest-- {
				attacked |= 1 << uint(dest)
				if occByte&(1<<uint(dest)) != 0 {
					break
				}
			}
			rankAttacksTable[occ6][file] = attacked
		}
	}
}

// hyperbola computes the attack set along one line through sq using the
// subtraction trick: subtracting the slider's own bit from the masked
// occupancy borrows through every empty square up to (and including) the
// first blocker in the increasing-index direction. Byte-reversing the
// occupancy and subtracting the bit at sq^56 does the same borrow in
// byte-reversed space, which (after reversing back) gives the decreasing-
// index direction; XORing the two isolates exactly the attacked squares.
// sq^56 is the mirror of sq under ByteReverse (it flips only the square's
// byte/rank index, leaving its position within the byte unchanged), so
// ByteReverse(SquareBb(sq)) == SquareBb(sq^56) exactly.
func hyperbola(occ, mask Bitboard, sq Square) Bitboard {
	o := occ & mask
	r := ByteReverse(o)
	forward := o - SquareBb(sq)
	reverse := ByteReverse(r - SquareBb(Square(uint8(sq)^56)))
	return (forward ^ reverse) & mask
}

func fileAttacks(occ Bitboard, sq Square) Bitboard {
	return hyperbola(occ, hyperbolaLines[sq].File, sq)
}

func rankLineAttacks(occ Bitboard, sq Square) Bitboard {
	rank := int(sq.Rank())
	file := int(sq.File())
	occ6 := uint8((uint64(occ) >> uint(8*rank+1)) & 0x3F)
	return Bitboard(rankAttacksTable[occ6][file]) << uint(8*rank)
}

func bishopAttacks(occ Bitboard, sq Square) Bitboard {
	return hyperbola(occ, hyperbolaLines[sq].Diag, sq) |
		hyperbola(occ, hyperbolaLines[sq].AntiDiag, sq)
}

func rookAttacks(occ Bitboard, sq Square) Bitboard {
	return rankLineAttacks(occ, sq) | fileAttacks(occ, sq)
}
