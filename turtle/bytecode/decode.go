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

import (
	"fmt"
	"io"
	"strings"
)

// Instruction is a single decoded instruction.
type Instruction struct {
	Offset int
	Len    int
	Op     byte

	// the decoded operand. -1 if the instruction has no operand or if the
	// operand is missing
	Operand int

	// index of the partner instruction in the decoded list for block
	// boundaries. -1 if the instruction is not a boundary or if the boundary
	// is unmatched
	Partner int

	// nesting level of the instruction. the boundaries of a block are at the
	// same level as the block itself
	Depth int
}

// Decode walks the program and returns the list of instructions.
func Decode(program []byte) []Instruction {
	var ins []Instruction
	var open []int

	for p := 0; p < len(program); {
		in := Instruction{
			Offset:  p,
			Len:     Length(program, p),
			Op:      program[p],
			Operand: -1,
			Partner: -1,
			Depth:   len(open),
		}

		switch in.Op {
		case LoopCounter, FunctionReturn:
			if in.Len == 2 {
				in.Operand = Value(program[p+1])
			}
			if len(open) > 0 {
				in.Depth--
			}
		case Call:
			if in.Len == 3 {
				in.Operand = Value(program[p+1])
			}
		case LoopStart, FunctionStart:
			open = append(open, len(ins))
		case LoopEnd, FunctionEnd:
			if len(open) > 0 {
				o := open[len(open)-1]
				if c, _ := Opposite(ins[o].Op); c == in.Op {
					open = open[:len(open)-1]
					in.Partner = o
					in.Depth = ins[o].Depth
					ins[o].Partner = len(ins)
				}
			}
		}

		ins = append(ins, in)
		p += in.Len
	}

	return ins
}

var mnemonics = map[byte]string{
	Forward:        "forward",
	Backward:       "backward",
	Left:           "left",
	Right:          "right",
	HalfLeft:       "half left",
	HalfRight:      "half right",
	Pause:          "pause",
	LoopStart:      "loop",
	LoopCounter:    "repeat",
	LoopEnd:        "end loop",
	FunctionStart:  "function",
	FunctionReturn: "return",
	FunctionEnd:    "end function",
	Call:           "call",
}

// String returns the mnemonic and operand of the instruction.
func (in Instruction) String() string {
	m, ok := mnemonics[in.Op]
	if !ok {
		return fmt.Sprintf("unknown (%#02x)", in.Op)
	}
	switch in.Op {
	case LoopCounter:
		if in.Operand < 0 {
			return fmt.Sprintf("%s (missing count)", m)
		}
		return fmt.Sprintf("%s %d times", m, in.Operand)
	case FunctionReturn, Call:
		if in.Operand < 0 {
			return fmt.Sprintf("%s (missing id)", m)
		}
		return fmt.Sprintf("%s F%d", m, in.Operand)
	}
	return m
}

// Disassemble writes a listing of the program to the io.Writer. Blocks are
// indented by their nesting level and unmatched boundaries are flagged.
func Disassemble(w io.Writer, program []byte) error {
	for _, in := range Decode(program) {
		var raw strings.Builder
		for _, b := range program[in.Offset : in.Offset+in.Len] {
			if b >= 0x20 && b < 0x7f {
				raw.WriteByte(b)
			} else {
				raw.WriteByte('.')
			}
		}

		s := in.String()
		if _, ok := Opposite(in.Op); ok && !IsTag(in.Op) && in.Partner < 0 {
			s = fmt.Sprintf("%s (unmatched)", s)
		}

		_, err := fmt.Fprintf(w, "%04d  %s%-4s %s\n", in.Offset, strings.Repeat("  ", in.Depth), raw.String(), s)
		if err != nil {
			return err
		}
	}
	return nil
}
