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

// BishopDirs and RookDirs group the four rays each piece slides along.
var (
	BishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}
	RookDirs   = [4]Direction{North, South, East, West}
)

// dirInnerMask drops the last rank/file a ray in direction d could reach,
// i.e. the board edge the ray travels toward. Used to turn a full ray mask
// into a "relevant occupancy" mask: whether the very edge square is
// occupied never changes the attack set, since the slide already stops
// there.
var dirInnerMask = [8]Bitboard{
	North:     ^Rank8Bb,
	South:     ^Rank1Bb,
	East:      ^FileHBb,
	West:      ^FileABb,
	Northeast: ^Rank8Bb & ^FileHBb,
	Southeast: ^Rank1Bb & ^FileHBb,
	Southwest: ^Rank1Bb & ^FileABb,
	Northwest: ^Rank8Bb & ^FileABb,
}

// GenMask returns the bitboard of every square strictly along the ray from
// sq in direction d, up to and including the board edge. sq itself is
// never included. If excludeOuter is set, the ray's terminal edge square is
// also dropped, since a piece stops there regardless of whether it is
// occupied. GenMask is only ever called during table initialization.
func GenMask(sq Square, d Direction, excludeOuter bool) Bitboard {
	mask := BbZero
	cur := sq
	for OnBoard(cur, d) {
		cur = Square(int(cur) + int(dirShift[d]))
		mask |= SquareBb(cur)
	}
	if excludeOuter {
		mask &= dirInnerMask[d]
	}
	return mask
}

// RelevantBishopMask is the union of GenMask(sq, d, true) over the four
// bishop directions: every square that can affect a bishop's attack set
// from sq, excluding the diagonals' terminal edge squares.
func RelevantBishopMask(sq Square) Bitboard {
	var m Bitboard
	for _, d := range BishopDirs {
		m |= GenMask(sq, d, true)
	}
	return m
}

// RelevantRookMask is the rook equivalent of RelevantBishopMask.
func RelevantRookMask(sq Square) Bitboard {
	var m Bitboard
	for _, d := range RookDirs {
		m |= GenMask(sq, d, true)
	}
	return m
}

// The four lines a queen's move decomposes into. Several back-ends keep
// one [4]-shaped table per square indexed by one of these.
const (
	lineRank = iota
	lineFile
	lineDiagonal
	lineAntidiagonal
)
