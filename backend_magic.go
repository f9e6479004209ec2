//go:build bbattack_magic

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

// magicTableSize is the shared bishop+rook table size; every per-square
// offset plus that square's index range fits inside it.
const magicTableSize = 89524

// Fixed shifts: a classic fancy-magic scheme gives every square its own
// shift sized to its relevant-occupancy bit count. This back-end instead
// fixes the shift at the worst case across all squares (9 relevant bits
// for a bishop, 12 for a rook), trading unused table entries on squares
// with fewer relevant bits for one shared, branch-free lookup.
const (
	bishopShift = 55
	rookShift   = 52
)

var (
	bishopRelevantMask [64]Bitboard
	rookRelevantMask   [64]Bitboard
	magicTable         [magicTableSize]Bitboard
)

func init() {
	BackendName = "magic"
}

func initTables() {
	for sq := Square(0); sq < SqLength; sq++ {
		mask := RelevantBishopMask(sq)
		bishopRelevantMask[sq] = mask
		b := Bitboard(0)
		for {
			idx := bishopMagicOffset[sq] + int((uint64(b)*bishopMagicNumber[sq])>>bishopShift)
			magicTable[idx] = NaiveBishopAttacks(b, sq)
			b = (b - mask) & mask
			if b == 0 {
				break
			}
		}
	}

	for sq := Square(0); sq < SqLength; sq++ {
		mask := RelevantRookMask(sq)
		rookRelevantMask[sq] = mask
		b := Bitboard(0)
		for {
			idx := rookMagicOffset[sq] + int((uint64(b)*rookMagicNumber[sq])>>rookShift)
			magicTable[idx] = NaiveRookAttacks(b, sq)
			b = (b - mask) & mask
			if b == 0 {
				break
			}
		}
	}
}

func bishopAttacks(occ Bitboard, sq Square) Bitboard {
	b := occ & bishopRelevantMask[sq]
	idx := bishopMagicOffset[sq] + int((uint64(b)*bishopMagicNumber[sq])>>bishopShift)
	return magicTable[idx]
}

func rookAttacks(occ Bitboard, sq Square) Bitboard {
	b := occ & rookRelevantMask[sq]
	idx := rookMagicOffset[sq] + int((uint64(b)*rookMagicNumber[sq])>>rookShift)
	return magicTable[idx]
}
