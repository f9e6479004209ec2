//go:build cgo

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

/*
#include <stdint.h>
*/
import "C"

// BBAttackInitTables is the C-linkage entry point for InitTables, named
// after the original bbattack.h symbol this package's façade is modeled
// on. It is built whenever cgo is enabled (the go tool's default when a C
// compiler is available) and is left out of CGO_ENABLED=0 builds; pure-Go
// callers should use InitTables directly.
//
//export BBAttackInitTables
func BBAttackInitTables() {
	InitTables()
}

// BBAttackBishopAttacks is the C-linkage entry point for BishopAttacks.
//
//export BBAttackBishopAttacks
func BBAttackBishopAttacks(occupancy C.uint64_t, square C.uint32_t) C.uint64_t {
	return C.uint64_t(BishopAttacks(Bitboard(occupancy), Square(square)))
}

// BBAttackRookAttacks is the C-linkage entry point for RookAttacks.
//
//export BBAttackRookAttacks
func BBAttackRookAttacks(occupancy C.uint64_t, square C.uint32_t) C.uint64_t {
	return C.uint64_t(RookAttacks(Bitboard(occupancy), Square(square)))
}
