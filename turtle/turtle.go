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
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/ubot/curated"
	"github.com/jetsetilly/ubot/hardware/buzzer"
	"github.com/jetsetilly/ubot/hardware/motor"
	"github.com/jetsetilly/ubot/hardware/turtlehat"
	"github.com/jetsetilly/ubot/logger"
	"github.com/jetsetilly/ubot/turtle/bytecode"
)

// NumFunctions is the number of function slots.
const NumFunctions = 3

// SlotState is the state of a function slot.
type SlotState int

// List of valid SlotState values.
const (
	Undefined SlotState = iota
	UnderDefinition
	Defined
)

func (s SlotState) String() string {
	switch s {
	case Undefined:
		return "undefined"
	case UnderDefinition:
		return "under definition"
	case Defined:
		return "defined"
	}
	return "unknown"
}

// FunctionSlot records where a function is defined. The offset is the
// position of the opening boundary in the program that is played, which is
// the committed program followed by the command buffer.
type FunctionSlot struct {
	State  SlotState
	Offset int
}

// an open block
type frame struct {
	// block start of the enclosing block
	start int

	// mapping of the enclosing block
	mapping *Mapping

	// function id if this block is a function definition. zero otherwise
	function int
}

// Turtle is the interpreter.
type Turtle struct {
	prefs *Preferences
	motor motor.Motor
	bz    buzzer.Buzzer

	// commands not yet added to the program. bytes at and beyond the pointer
	// are stale and will be overwritten
	command []byte
	pointer int

	// the committed program and the offset of each part that was added to it
	program []byte
	parts   []int

	loopCounter int
	functions   [NumFunctions]FunctionSlot

	// the open blocks, innermost last, and the position of the opening
	// boundary of the innermost block
	blocks     []frame
	blockStart int

	mapping *Mapping

	// id of the run that is playing or waiting to be played. zero when
	// nothing is running. halt is the id of a run that has been asked to stop
	// and nextRun is only used by Press()
	run     atomic.Int64
	halt    atomic.Int64
	nextRun int64

	// run requests waiting to be played by Serve() or RunPending()
	pending chan execution
}

// NewTurtle is the preferred method of initialisation for the Turtle type.
func NewTurtle(prefs *Preferences, mtr motor.Motor, bz buzzer.Buzzer) *Turtle {
	t := &Turtle{
		prefs:   prefs,
		motor:   mtr,
		bz:      bz,
		mapping: defaultMapping,
		pending: make(chan execution, 1),
	}
	t.bz.SetIdleProfile(buzzer.IdleNormal)
	return t
}

// AllowLogging implements the logger.Permission interface.
func (t *Turtle) AllowLogging() bool {
	return t.prefs.Log.Get().(bool)
}

func (t *Turtle) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("mapping: %s\n", t.mapping))
	s.WriteString(fmt.Sprintf("program: %q\n", t.program))
	s.WriteString(fmt.Sprintf("command: %q\n", t.command[:t.pointer]))
	for i, f := range t.functions {
		if f.State == Undefined {
			continue
		}
		s.WriteString(fmt.Sprintf("F%d: %s at %d\n", i+1, f.State, f.Offset))
	}
	return s.String()
}

// Command returns a copy of the command buffer up to the pointer.
func (t *Turtle) Command() []byte {
	return append([]byte{}, t.command[:t.pointer]...)
}

// Program returns a copy of the committed program.
func (t *Turtle) Program() []byte {
	return append([]byte{}, t.program...)
}

// ToPlay returns the committed program followed by the command buffer.
func (t *Turtle) ToPlay() []byte {
	p := make([]byte, 0, len(t.program)+t.pointer)
	p = append(p, t.program...)
	return append(p, t.command[:t.pointer]...)
}

// Pointer returns the write position in the command buffer.
func (t *Turtle) Pointer() int {
	return t.pointer
}

// Functions returns a copy of the function slots.
func (t *Turtle) Functions() [NumFunctions]FunctionSlot {
	return t.functions
}

// Mapping returns the current mapping.
func (t *Turtle) Mapping() *Mapping {
	return t.mapping
}

// BlockDepth returns the number of open blocks.
func (t *Turtle) BlockDepth() int {
	return len(t.blocks)
}

// LoopCounter returns the count of the loop being authored.
func (t *Turtle) LoopCounter() int {
	return t.loopCounter
}

// Running returns true if a program is being played or is waiting to be
// played.
func (t *Turtle) Running() bool {
	return t.run.Load() != 0
}

// Press handles a validated button code. It satisfies the turtlehat.Sink
// interface.
//
// If a program is running it is stopped and the code is otherwise ignored.
func (t *Turtle) Press(code turtlehat.ButtonCode) {
	if code == turtlehat.NoButton {
		return
	}

	if t.Running() {
		t.Stop()
		return
	}

	a, ok := t.mapping.actions[code]
	if !ok {
		return
	}

	switch a.gesture {
	case gestureMove:
		t.beep(buzzer.Processed)
		t.write(byte(a.arg))
	case gestureLoop:
		t.loop(byte(a.arg))
	case gestureFunction:
		t.function(a.arg, a.flag)
	case gestureAdd:
		t.add()
	case gestureStartStop:
		t.start(a.flag)
	case gestureUndo:
		t.undo(a.flag)
	case gestureDelete:
		t.erase(a.flag)
	case gestureCounter:
		t.modifyCounter(a.arg)
	case gestureCheckCounter:
		t.checkCounter()
	case gestureCustom:
		t.beep(buzzer.Loaded)
	}
}

// write bytes at the pointer. stale bytes are overwritten
func (t *Turtle) write(b ...byte) {
	for _, c := range b {
		if t.pointer < len(t.command) {
			t.command[t.pointer] = c
		} else {
			t.command = append(t.command, c)
		}
		t.pointer++
	}
}

func (t *Turtle) beep(key buzzer.Key) {
	if err := buzzer.KeyBeep(t.bz, key); err != nil {
		logger.Log(t, "turtle", err.Error())
	}
}

func (t *Turtle) rest(ms int) {
	if err := t.bz.Rest(ms); err != nil {
		logger.Log(t, "turtle", err.Error())
	}
}

// Load replaces the committed program. Any command buffer, open blocks and
// function slots are forgotten. Function slots are set for every complete
// function definition in the program.
func (t *Turtle) Load(program []byte) error {
	if t.Running() {
		return curated.Errorf(Busy)
	}

	t.command = t.command[:0]
	t.pointer = 0
	t.program = append(t.program[:0], program...)
	t.parts = t.parts[:0]
	if len(t.program) > 0 {
		t.parts = append(t.parts, 0)
	}
	t.blocks = t.blocks[:0]
	t.blockStart = 0
	t.loopCounter = 0
	t.mapping = defaultMapping
	t.functions = [NumFunctions]FunctionSlot{}
	t.bz.SetIdleProfile(buzzer.IdleNormal)

	ins := bytecode.Decode(t.program)
	for i, in := range ins {
		if in.Op != bytecode.FunctionEnd || in.Partner < 0 || i == 0 {
			continue
		}
		ret := ins[i-1]
		if ret.Op != bytecode.FunctionReturn || ret.Operand < 1 || ret.Operand > NumFunctions {
			continue
		}
		t.functions[ret.Operand-1] = FunctionSlot{
			State:  Defined,
			Offset: ins[in.Partner].Offset,
		}
	}

	return nil
}
