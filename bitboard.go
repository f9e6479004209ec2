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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit word whose bit i denotes square i. A set bit means
// "occupied" for an occupancy board and "attacked" for a result board.
type Bitboard uint64

//noinspection GoUnusedConst
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb Bitboard = Rank1Bb << (8 * 1)
	Rank3Bb Bitboard = Rank1Bb << (8 * 2)
	Rank4Bb Bitboard = Rank1Bb << (8 * 3)
	Rank5Bb Bitboard = Rank1Bb << (8 * 4)
	Rank6Bb Bitboard = Rank1Bb << (8 * 5)
	Rank7Bb Bitboard = Rank1Bb << (8 * 6)
	Rank8Bb Bitboard = Rank1Bb << (8 * 7)
)

// SquareBb returns the singleton bitboard for sq.
func SquareBb(sq Square) Bitboard {
	return Bitboard(uint64(1) << sq)
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&SquareBb(sq) != 0
}

// With returns b with sq set.
func (b Bitboard) With(sq Square) Bitboard {
	return b | SquareBb(sq)
}

// Without returns b with sq cleared.
func (b Bitboard) Without(sq Square) Bitboard {
	return b &^ SquareBb(sq)
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit, or SqNone if b
// is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit, or SqNone if b
// is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb removes and returns the least significant set bit of *b.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// String renders b as a 64-character bit string, bit 63 first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// Board renders b as an 8x8 ASCII board, rank 8 at the top.
func (b Bitboard) Board() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		sb.WriteString("|")
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString(" X |")
			} else {
				sb.WriteString("   |")
			}
		}
		fmt.Fprintf(&sb, " %s\n+---+---+---+---+---+---+---+---+\n", r)
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
