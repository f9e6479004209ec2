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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenMaskNeverIncludesOrigin(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		for _, d := range append(append([]Direction{}, BishopDirs[:]...), RookDirs[:]...) {
			assert.False(t, GenMask(sq, d, false).Has(sq))
			assert.False(t, GenMask(sq, d, true).Has(sq))
		}
	}
}

func TestGenMaskExcludeOuterDropsTerminalSquare(t *testing.T) {
	// North from a1 to the edge is the whole a-file above a1; excluding the
	// outer square drops a8.
	full := GenMask(SqA1, North, false)
	inner := GenMask(SqA1, North, true)
	assert.True(t, full.Has(SqA8))
	assert.False(t, inner.Has(SqA8))
	assert.Equal(t, full.Without(SqA8), inner)
}

func TestGenMaskCornerHasNoRayLength(t *testing.T) {
	// a1 has no squares to the west or south.
	assert.Zero(t, GenMask(SqA1, West, false))
	assert.Zero(t, GenMask(SqA1, South, false))
}

func TestRelevantMasksExcludeBoardEdge(t *testing.T) {
	m := RelevantRookMask(SqA1)
	assert.False(t, m.Has(SqA8), "rook relevant mask excludes the far edge of the file ray")
	assert.False(t, m.Has(SqH1), "rook relevant mask excludes the far edge of the rank ray")

	b := RelevantBishopMask(SqD4)
	assert.False(t, b.Has(SqA1), "bishop relevant mask excludes the diagonal's board edge")
	assert.False(t, b.Has(SqG1))
	assert.False(t, b.Has(SqA7))
	assert.False(t, b.Has(SqH8))
}

func TestRelevantMasksNeverIncludeOrigin(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		assert.False(t, RelevantBishopMask(sq).Has(sq))
		assert.False(t, RelevantRookMask(sq).Has(sq))
	}
}

func TestRelevantRookMaskPopCountMatchesKnownTable(t *testing.T) {
	// standard magic-bitboard relevant-occupancy bit counts for rooks.
	assert.Equal(t, 12, RelevantRookMask(SqA1).PopCount())
	assert.Equal(t, 12, RelevantRookMask(SqH8).PopCount())
	assert.Equal(t, 11, RelevantRookMask(SqD1).PopCount())
	assert.Equal(t, 10, RelevantRookMask(SqD4).PopCount())
}

func TestRelevantBishopMaskPopCountMatchesKnownTable(t *testing.T) {
	assert.Equal(t, 6, RelevantBishopMask(SqA1).PopCount())
	assert.Equal(t, 6, RelevantBishopMask(SqH8).PopCount())
	assert.Equal(t, 9, RelevantBishopMask(SqD4).PopCount())
	assert.Equal(t, 5, RelevantBishopMask(SqD1).PopCount())
}
