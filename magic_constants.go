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

// Magic numbers and table offsets below are the ones credited to Volker
// Annuss on the talkchess forum: fixed shifts of 55 (bishop) and 52
// (rook), sharing one 89524-entry table. They are reproduced bit-exact
// rather than re-derived, since an unlucky re-search could silently
// produce a different (if still valid) magic with different offsets.

var bishopMagicNumber = [64]uint64{
	0x404040404040, 0xa060401007fc, 0x401020200000, 0x806004000000,
	0x440200000000, 0x80100800000, 0x104104004000, 0x20020820080,
	0x40100202004, 0x20080200802, 0x10040080200, 0x8060040000,
	0x4402000000, 0x21c100b200, 0x400410080, 0x3f7f05fffc0,
	0x4228040808010, 0x200040404040, 0x400080808080, 0x200200801000,
	0x240080840000, 0x18000c03fff8, 0xa5840208020, 0x58408404010,
	0x2022000408020, 0x402000408080, 0x804000810100, 0x100403c0403ff,
	0x78402a8802000, 0x101000804400, 0x80800104100, 0x400480101008,
	0x1010102004040, 0x808090402020, 0x7fefe08810010, 0x3ff0f833fc080,
	0x7fe08019003042, 0x202040008040, 0x1004008381008, 0x802003700808,
	0x208200400080, 0x104100200040, 0x3ffdf7f833fc0, 0x8840450020,
	0x20040100100, 0x7fffdd80140028, 0x202020200040, 0x1004010039004,
	0x40041008000, 0x3ffefe0c02200, 0x1010806000, 0x08403000,
	0x100202000, 0x40100200800, 0x404040404000, 0x6020601803f4,
	0x3ffdfdfc28048, 0x820820020, 0x10108060, 0x00084030,
	0x01002020, 0x40408020, 0x4040404040, 0x404040404040,
}

var rookMagicNumber = [64]uint64{
	0x280077ffebfffe, 0x2004010201097fff, 0x10020010053fff, 0x30002ff71ffffa,
	0x7fd00441ffffd003, 0x4001d9e03ffff7, 0x4000888847ffff, 0x6800fbff75fffd,
	0x28010113ffff, 0x20040201fcffff, 0x7fe80042ffffe8, 0x1800217fffe8,
	0x1800073fffe8, 0x7fe8009effffe8, 0x1800602fffe8, 0x30002fffffa0,
	0x300018010bffff, 0x3000c0085fffb, 0x4000802010008, 0x2002004002002,
	0x2002020010002, 0x1002020008001, 0x4040008001, 0x802000200040,
	0x40200010080010, 0x80010040010, 0x4010008020008, 0x40020200200,
	0x10020020020, 0x10020200080, 0x8020200040, 0x200020004081,
	0xfffd1800300030, 0x7fff7fbfd40020, 0x3fffbd00180018, 0x1fffde80180018,
	0xfffe0bfe80018, 0x1000080202001, 0x3fffbff980180, 0x1fffdff9000e0,
	0xfffeebfeffd800, 0x7ffff7ffc01400, 0x408104200204, 0x1ffff01fc03000,
	0xfffe7f8bfe800, 0x8001002020, 0x3fff85fffa804, 0x1fffd75ffa802,
	0xffffec00280028, 0x7fff75ff7fbfd8, 0x3fff863fbf7fd8, 0x1fffbfdfd7ffd8,
	0xffff810280028, 0x7ffd7f7feffd8, 0x3fffc0c480048, 0x1ffffafd7ffd8,
	0xffffe4ffdfa3ba, 0x7fffef7ff3d3da, 0x3fffbfdfeff7fa, 0x1fffeff7fbfc22,
	0x20408001001, 0x7fffeffff77fd, 0x3ffffbf7dfeec, 0x1ffff9dffa333,
}

var bishopMagicOffset = [64]int{
	33104, 4094, 24764, 13882, 23090, 32640, 11558, 32912,
	13674, 6109, 26494, 17919, 25757, 17338, 16983, 16659,
	13610, 2224, 60405, 7983, 17, 34321, 33216, 17127,
	6397, 22169, 42727, 155, 8601, 21101, 29885, 29340,
	19785, 12258, 50451, 1712, 78475, 7855, 13642, 8156,
	4348, 28794, 22578, 50315, 85452, 32816, 13930, 17967,
	33200, 32456, 7762, 7794, 22761, 14918, 11620, 15925,
	32528, 12196, 32720, 26781, 19817, 24732, 25468, 10186,
}

var rookMagicOffset = [64]int{
	41305, 14326, 24477, 8223, 49795, 60546, 28543, 79282,
	6457, 4125, 81021, 42341, 14139, 19465, 9514, 71090,
	75419, 33476, 27117, 85964, 54915, 36544, 71854, 37996,
	30398, 55939, 53891, 56963, 77451, 12319, 88500, 51405,
	72878, 676, 83122, 22206, 75186, 681, 36453, 20369,
	1981, 13343, 10650, 57987, 26302, 58357, 40546, 0,
	14967, 80361, 40905, 58347, 20381, 81868, 59381, 84404,
	45811, 62898, 45796, 66994, 67204, 32448, 62946, 17005,
}
