// This file is part of uBot.
//
// uBot is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uBot is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uBot.  If not, see <https://www.gnu.org/licenses/>.

// Package bytecode describes the byte representation of a turtle program.
//
// A program is a sequence of bytes. Most bytes are move commands, chosen so
// that the program is printable:
//
//	F  forward          B  backward
//	L  left (90°)       R  right (90°)
//	l  left (45°)       r  right (45°)
//	P  pause
//
// Blocks are delimited by boundary bytes. Operands are stored with the
// digit-offset encoding (value + 48) so that small values print as digits:
//
//	( body * n )        loop body repeated n times
//	{ body | id }       definition of function id (1 to 3)
//	~ id ~              call of function id
//
// The encoding is modulo 256 so every loop count between 0 and 255 survives
// the round trip through a single byte. Counts of 208 and above are therefore
// not printable digits and may even have the same value as a boundary byte.
// For this reason a program must be walked forward from the start of an
// instruction, skipping operands, to find block boundaries. The Decode()
// function does this for a whole program and Scan() for a single block.
package bytecode
