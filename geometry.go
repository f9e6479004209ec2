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

// Package bbattack computes the set of squares attacked by a sliding piece
// (bishop, rook, queen) on an 8x8 board, given an occupancy bitboard of
// blocking pieces. It is deliberately narrow: move legality, check
// detection, board representation beyond the occupancy word, and search
// are the concern of a calling chess engine, not of this package.
//
// Exactly one attack-generation back-end is compiled in, selected with a
// build tag (see the backend_*.go files). Kogge-Stone is the default.
package bbattack

import "math/bits"

// Direction is one of the eight cardinal/diagonal ray directions a sliding
// piece can move along. Its value is an index into the per-direction
// tables below (dirShift, dirWrapMask, ...), not the shift amount itself;
// see dirShift for that.
type Direction int8

//noinspection GoUnusedConst
const (
	North Direction = iota
	South
	East
	West
	Northeast
	Southeast
	Southwest
	Northwest
)

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	case Northwest:
		return "NW"
	default:
		return "?"
	}
}

// dirShift is the signed bit-shift amount associated with each direction.
var dirShift = [8]int{North: 8, South: -8, East: 1, West: -1, Northeast: 9, Southeast: -7, Southwest: -9, Northwest: 7}

// dirWrapMask clears the file a shifted bitboard wraps a bit into. A left
// shift (East, Northeast, Southeast) carries a file-H bit into file A of
// the next rank; masking file A out after the shift removes it again
// instead of letting it re-enter play on the wrong file. Right shifts
// wrap the opposite way and mask file H. North/South never wrap a file.
var dirWrapMask = [8]Bitboard{
	North:     BbAll,
	South:     BbAll,
	East:      ^FileABb,
	West:      ^FileHBb,
	Northeast: ^FileABb,
	Southeast: ^FileABb,
	Southwest: ^FileHBb,
	Northwest: ^FileHBb,
}

// Shift moves every set bit of b by n squares, where a positive n is a
// left shift (toward higher square indices) and a negative n is a right
// shift by |n|. Go's native >> and << both require a non-negative operand,
// so callers that hold a signed direction shift use this instead of
// choosing the operator themselves.
func Shift(b Bitboard, n int) Bitboard {
	if n >= 0 {
		return b << uint(n)
	}
	return b >> uint(-n)
}

// OnBoard reports whether stepping one square from sq in direction d stays
// on the board. Bit arithmetic alone would silently wrap a East step from
// file H into file A of the next rank (and the mirror case for West); this
// catches both that wraparound and stepping off the top or bottom edge.
func OnBoard(sq Square, d Direction) bool {
	if !sq.IsValid() {
		return false
	}
	switch d {
	case East, Northeast, Southeast:
		if sq.File() == FileH {
			return false
		}
	case West, Southwest, Northwest:
		if sq.File() == FileA {
			return false
		}
	}
	dest := int(sq) + int(dirShift[d])
	return dest >= 0 && dest < SqLength
}

// ByteReverse reverses the byte order of a 64-bit word. Hyperbola
// Quintessence uses it to simulate walking a ray in reverse without a
// second pass over the board.
func ByteReverse(b Bitboard) Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}
