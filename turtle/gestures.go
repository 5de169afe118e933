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

package turtle

import (
	"github.com/jetsetilly/ubot/hardware/buzzer"
	"github.com/jetsetilly/ubot/logger"
	"github.com/jetsetilly/ubot/turtle/bytecode"
)

// limits of the loop counter. the upper limit is the largest count that fits
// in an operand byte
const (
	minLoopCount = 0
	maxLoopCount = 255
)

// loop counts above this are only played back if LoopChecking is 2
const checkLimit = 20

func (t *Turtle) loop(boundary byte) {
	switch boundary {
	case bytecode.LoopStart:
		t.enterBlock(loopBeginMapping, 0)
		t.loopCounter = 0
		t.write(bytecode.LoopStart)

	case bytecode.LoopCounter:
		// a loop with an empty body is removed
		if t.pointer-t.blockStart < 2 {
			t.exitBlock(true)
			return
		}
		t.mapping = loopCounterMapping
		t.beep(buzzer.InputNeeded)
		t.write(bytecode.LoopCounter)

	case bytecode.LoopEnd:
		// a loop that repeats zero times is removed
		if t.loopCounter == 0 {
			t.exitBlock(true)
			t.beep(buzzer.Boundary)
			return
		}
		t.exitBlock(false)
		t.write(bytecode.Digit(t.loopCounter), bytecode.LoopEnd)
	}
}

func (t *Turtle) modifyCounter(delta int) {
	n := t.loopCounter + delta
	switch {
	case n < minLoopCount:
		t.loopCounter = minLoopCount
		t.beep(buzzer.Boundary)
	case n > maxLoopCount:
		t.loopCounter = maxLoopCount
		t.beep(buzzer.Boundary)
	case delta == 0:
		t.loopCounter = 0
		t.beep(buzzer.Deleted)
	default:
		t.loopCounter = n
		t.beep(buzzer.InAndDecrease)
	}
}

// checkCounter plays the loop counter as a number of beeps
func (t *Turtle) checkCounter() {
	lc := t.prefs.LoopChecking.Value()
	if lc == 2 || (lc == 1 && t.loopCounter <= checkLimit) {
		t.beep(buzzer.Attention)
		if err := buzzer.MidiBeep(t.bz, 64, 100, 500, t.loopCounter); err != nil {
			logger.Log(t, "turtle", err.Error())
		}
	} else {
		t.beep(buzzer.TooLong)
	}
	t.rest(1000)
}

// function calls, starts or ends the definition of a function. if onlyCall is
// true the function is called even if it has not yet been defined, so long
// as it is not being defined
func (t *Turtle) function(id int, onlyCall bool) {
	slot := &t.functions[id-1]

	switch {
	case slot.State == Defined || (onlyCall && slot.State != UnderDefinition):
		t.beep(buzzer.Processed)
		t.write(bytecode.Call, bytecode.Digit(id), bytecode.Call)

	case slot.State == UnderDefinition:
		// the definition can only end from the function's own block. not
		// from a loop inside it
		if t.innermostFunction() != id {
			t.beep(buzzer.Boundary)
			return
		}

		offset := len(t.program) + t.blockStart
		if t.pointer-t.blockStart < 2 {
			t.exitBlock(true)
			return
		}
		t.exitBlock(false)
		*slot = FunctionSlot{State: Defined, Offset: offset}
		t.write(bytecode.FunctionReturn, bytecode.Digit(id), bytecode.FunctionEnd)

	default:
		t.enterBlock(functionMapping, id)
		*slot = FunctionSlot{State: UnderDefinition}
		t.write(bytecode.FunctionStart)
	}
}

func (t *Turtle) undo(blockLevel bool) {
	lower := 0
	if blockLevel {
		lower = t.blockStart + 1
	}

	if t.pointer <= lower {
		if blockLevel || len(t.parts) == 0 {
			t.beep(buzzer.Boundary)
			return
		}

		// move the most recently added part of the program back into the
		// command buffer
		start := t.parts[len(t.parts)-1]
		t.parts = t.parts[:len(t.parts)-1]
		t.command = append(t.command[:0], t.program[start:]...)
		t.pointer = len(t.command)
		t.program = t.program[:start]
		t.beep(buzzer.Loaded)

		logger.Logf(t, "turtle", "loaded %d bytes back from the program", t.pointer)
		return
	}

	ins := bytecode.Decode(t.command[:t.pointer])
	last := ins[len(ins)-1]
	to := last.Offset
	boundary := false

	switch last.Op {
	case bytecode.LoopEnd, bytecode.FunctionEnd:
		if last.Partner >= 0 {
			to = ins[last.Partner].Offset
			boundary = true
		}
		if last.Op == bytecode.FunctionEnd && len(ins) > 1 {
			if ret := ins[len(ins)-2]; ret.Op == bytecode.FunctionReturn && ret.Operand >= 1 && ret.Operand <= NumFunctions {
				t.functions[ret.Operand-1] = FunctionSlot{}
			}
		}
	}

	if to < lower {
		to = lower
	}
	t.pointer = to

	t.beep(buzzer.Undone)
	if boundary {
		t.beep(buzzer.Deleted)
	}
	if t.pointer == lower {
		t.beep(buzzer.Boundary)
	}
}

func (t *Turtle) erase(blockLevel bool) {
	if blockLevel {
		t.exitBlock(true)
		return
	}

	t.beep(buzzer.Deleted)

	if t.pointer != 0 {
		t.pointer = 0
		for i := range t.functions {
			if t.functions[i].State != Undefined && t.functions[i].Offset >= len(t.program) {
				t.functions[i] = FunctionSlot{}
			}
		}
		return
	}

	t.program = t.program[:0]
	t.parts = t.parts[:0]
	t.functions = [NumFunctions]FunctionSlot{}
	t.beep(buzzer.Boundary)

	logger.Log(t, "turtle", "program deleted")
}

// add the command buffer to the program
func (t *Turtle) add() {
	if t.pointer == 0 {
		t.beep(buzzer.Boundary)
		return
	}

	t.parts = append(t.parts, len(t.program))
	t.program = append(t.program, t.command[:t.pointer]...)
	t.pointer = 0
	t.beep(buzzer.Completed)

	logger.Logf(t, "turtle", "program is %d bytes in %d parts", len(t.program), len(t.parts))
}
