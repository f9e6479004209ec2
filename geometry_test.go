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

func TestOnBoardRejectsFileWraparound(t *testing.T) {
	assert.False(t, OnBoard(SqH1, East))
	assert.False(t, OnBoard(SqH1, Northeast))
	assert.False(t, OnBoard(SqH1, Southeast))
	assert.False(t, OnBoard(SqA1, West))
	assert.False(t, OnBoard(SqA1, Northwest))
	assert.False(t, OnBoard(SqA1, Southwest))
}

func TestOnBoardRejectsRankOverflow(t *testing.T) {
	assert.False(t, OnBoard(SqA8, North))
	assert.False(t, OnBoard(SqA1, South))
}

func TestOnBoardAcceptsInteriorSteps(t *testing.T) {
	for d := North; d <= Northwest; d++ {
		assert.True(t, OnBoard(SqD4, d), "direction %s from d4", d)
	}
}

func TestOnBoardRejectsInvalidSquare(t *testing.T) {
	assert.False(t, OnBoard(SqNone, North))
}

func TestByteReverseIsInvolution(t *testing.T) {
	for _, b := range []Bitboard{BbZero, BbAll, SquareBb(SqA1), SquareBb(SqH8), 0x0102040810204080} {
		assert.Equal(t, b, ByteReverse(ByteReverse(b)))
	}
}

func TestByteReverseFlipsRanksNotFiles(t *testing.T) {
	// the a-file, byte-reversed, stays the a-file: ByteReverse flips the
	// byte (rank) index but leaves bit position within the byte (file)
	// untouched.
	assert.Equal(t, FileABb, ByteReverse(FileABb))
}

func TestDirWrapMaskClearsWrapFile(t *testing.T) {
	assert.Equal(t, ^FileABb, dirWrapMask[East])
	assert.Equal(t, ^FileABb, dirWrapMask[Northeast])
	assert.Equal(t, ^FileABb, dirWrapMask[Southeast])
	assert.Equal(t, ^FileHBb, dirWrapMask[West])
	assert.Equal(t, ^FileHBb, dirWrapMask[Southwest])
	assert.Equal(t, ^FileHBb, dirWrapMask[Northwest])
	assert.Equal(t, BbAll, dirWrapMask[North])
	assert.Equal(t, BbAll, dirWrapMask[South])
}

func TestShiftMatchesDirectionSign(t *testing.T) {
	b := SquareBb(SqD4)
	assert.Equal(t, b<<8, Shift(b, 8))
	assert.Equal(t, b>>8, Shift(b, -8))
	assert.Equal(t, b, Shift(b, 0))
}

func TestDirectionStringIsStable(t *testing.T) {
	want := map[Direction]string{
		North: "N", South: "S", East: "E", West: "W",
		Northeast: "NE", Southeast: "SE", Southwest: "SW", Northwest: "NW",
	}
	for d, s := range want {
		assert.Equal(t, s, d.String())
	}
	assert.Equal(t, "?", Direction(100).String())
}
