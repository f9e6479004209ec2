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

// Command bbswitchgen emits the Go source for the "switch" attack back-end:
// one function per square, each an exhaustive switch over every subset of
// that square's relevant-occupancy mask mapping directly to its precomputed
// attack set. There is no table, no arithmetic and no bit-twiddling trick
// left at runtime, only a jump to a returned constant; the price is a
// source file holding on the order of 64 * 2^9 bishop cases and
// 64 * 2^12 rook cases.
//
// Run it and redirect its output into the tree to regenerate the back-end:
//
//	go run ./cmd/bbswitchgen > backend_switch_generated.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"

	bb "github.com/Ravenslofty/bbattack"
)

func snoobSubsets(mask bb.Bitboard) []bb.Bitboard {
	subsets := []bb.Bitboard{0}
	b := bb.Bitboard(0)
	for {
		b = (b - mask) & mask
		if b == 0 {
			break
		}
		subsets = append(subsets, b)
	}
	return subsets
}

func writeSquareFunc(buf *bytes.Buffer, name string, sq bb.Square, mask bb.Bitboard, naive func(bb.Bitboard, bb.Square) bb.Bitboard) {
	fmt.Fprintf(buf, "func %s%d(occ Bitboard) Bitboard {\n", name, sq)
	fmt.Fprintf(buf, "switch occ & Bitboard(%#x) {\n", uint64(mask))
	for _, b := range snoobSubsets(mask) {
		fmt.Fprintf(buf, "case %#x: return %#x\n", uint64(b), uint64(naive(b, sq)))
	}
	buf.WriteString("default: panic(\"bbattack: unreachable switch-table occupancy\")\n")
	buf.WriteString("}\n}\n\n")
}

func writeDispatch(buf *bytes.Buffer, exported, name string) {
	fmt.Fprintf(buf, "func %s(occ Bitboard, sq Square) Bitboard {\n", exported)
	buf.WriteString("switch sq {\n")
	for sq := 0; sq < 64; sq++ {
		fmt.Fprintf(buf, "case %d: return %s%d(occ)\n", sq, name, sq)
	}
	buf.WriteString("default: panic(\"bbattack: square out of range\")\n")
	buf.WriteString("}\n}\n\n")
}

func main() {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by cmd/bbswitchgen. DO NOT EDIT.\n\n")
	buf.WriteString("//go:build bbattack_switch\n\n")
	buf.WriteString("package bbattack\n\n")
	buf.WriteString("func init() {\n\tBackendName = \"switch\"\n}\n\n")
	buf.WriteString("func initTables() {}\n\n")

	for sq := bb.Square(0); sq < bb.SqLength; sq++ {
		writeSquareFunc(&buf, "bishopSwitch", sq, bb.RelevantBishopMask(sq), bb.NaiveBishopAttacks)
	}
	writeDispatch(&buf, "bishopAttacks", "bishopSwitch")

	for sq := bb.Square(0); sq < bb.SqLength; sq++ {
		writeSquareFunc(&buf, "rookSwitch", sq, bb.RelevantRookMask(sq), bb.NaiveRookAttacks)
	}
	writeDispatch(&buf, "rookAttacks", "rookSwitch")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, "bbswitchgen: generated invalid Go source:", err)
		os.Stdout.Write(buf.Bytes())
		os.Exit(1)
	}
	os.Stdout.Write(formatted)
}
