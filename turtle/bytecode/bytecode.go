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

package bytecode

// Move commands.
const (
	Forward   byte = 'F'
	Backward  byte = 'B'
	Left      byte = 'L'
	Right     byte = 'R'
	HalfLeft  byte = 'l'
	HalfRight byte = 'r'
	Pause     byte = 'P'
)

// Block boundaries and markers.
const (
	LoopStart      byte = '('
	LoopCounter    byte = '*'
	LoopEnd        byte = ')'
	FunctionStart  byte = '{'
	FunctionReturn byte = '|'
	FunctionEnd    byte = '}'
	Call           byte = '~'
)

// DigitOffset is added to operand values before they are stored.
const DigitOffset = 48

// Digit encodes a value as an operand byte.
func Digit(v int) byte {
	return byte(v + DigitOffset)
}

// Value decodes an operand byte.
func Value(b byte) int {
	return int(b - DigitOffset)
}

// the pairs of boundary bytes. the call tag is paired with itself
var boundaries = [...][2]byte{
	{LoopStart, LoopEnd},
	{FunctionStart, FunctionEnd},
	{Call, Call},
}

// Opposite returns the partner of a boundary byte. The second return value
// is false if the byte is not a boundary.
func Opposite(b byte) (byte, bool) {
	for _, p := range boundaries {
		if b == p[0] {
			return p[1], true
		}
		if b == p[1] {
			return p[0], true
		}
	}
	return 0, false
}

// IsTag returns true if the byte is a boundary that is paired with itself.
func IsTag(b byte) bool {
	o, ok := Opposite(b)
	return ok && o == b
}

// Length returns the number of bytes in the instruction at the offset,
// including operands. The length is capped by the end of the program.
func Length(program []byte, at int) int {
	var l int
	switch program[at] {
	case LoopCounter, FunctionReturn:
		l = 2
	case Call:
		l = 3
	default:
		l = 1
	}
	if at+l > len(program) {
		l = len(program) - at
	}
	return l
}

// Scan looks forward from the block opening instruction at the offset and
// returns the offset of the target byte at the same nesting level. Returns -1
// if the target cannot be found before the end of the program.
func Scan(program []byte, at int, target byte) int {
	depth := 0
	for p := at + Length(program, at); p < len(program); p += Length(program, p) {
		b := program[p]
		if depth == 0 && b == target {
			return p
		}
		switch b {
		case LoopStart, FunctionStart:
			depth++
		case LoopEnd, FunctionEnd:
			depth--
			if depth < 0 {
				return -1
			}
		}
	}
	return -1
}
