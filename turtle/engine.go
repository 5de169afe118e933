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
	"context"

	"github.com/jetsetilly/ubot/curated"
	"github.com/jetsetilly/ubot/hardware/buzzer"
	"github.com/jetsetilly/ubot/hardware/motor"
	"github.com/jetsetilly/ubot/logger"
	"github.com/jetsetilly/ubot/turtle/bytecode"
)

// the maximum number of loops and calls that can be active at once
const maxDepth = 255

// a request to play a program
type execution struct {
	id        int64
	program   []byte
	start     int
	functions [NumFunctions]FunctionSlot
}

// an active loop or function call
type activation struct {
	// for a loop this is the offset of the opening boundary. for a call it
	// is the offset of the closing call tag
	address int

	loop  bool
	count int
}

// start hands a snapshot of the program to the goroutine running Serve().
// If blockLevel is true only the innermost block is played.
func (t *Turtle) start(blockLevel bool) {
	t.beep(buzzer.Processed)

	ex := execution{
		program:   t.ToPlay(),
		functions: t.functions,
	}
	if t.pointer > 0 {
		ex.start = len(t.program)
	}
	if blockLevel {
		ex.start += t.blockStart + 1
	}

	t.nextRun++
	ex.id = t.nextRun
	t.run.Store(ex.id)

	// only the most recent request is interesting
	select {
	case <-t.pending:
	default:
	}
	t.pending <- ex
}

// Stop the program that is running, if any. The program stops at the next
// instruction and Running() returns true until it has done so.
func (t *Turtle) Stop() {
	t.halt.Store(t.run.Load())
}

// Serve plays programs as they are requested. It returns when the context is
// done.
func (t *Turtle) Serve(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ex := <-t.pending:
			t.execute(ctx, ex)
		}
	}
}

// RunPending plays a requested program, if there is one, and returns when it
// has finished. Returns false if there was no request.
func (t *Turtle) RunPending(ctx context.Context) bool {
	select {
	case ex := <-t.pending:
		t.execute(ctx, ex)
		return true
	default:
		return false
	}
}

func (t *Turtle) execute(ctx context.Context, ex execution) {
	defer t.run.CompareAndSwap(ex.id, 0)

	// stopped before it started
	if t.run.Load() != ex.id || t.halt.Load() == ex.id {
		return
	}

	logger.Logf(t, "turtle", "playing %d bytes from offset %d", len(ex.program)-ex.start, ex.start)

	completed, err := t.play(ctx, ex)
	if err != nil {
		logger.Log(t, "turtle", err.Error())
		return
	}

	if !completed {
		logger.Log(t, "turtle", "stopped")
		if ctx.Err() == nil {
			t.beep(buzzer.Processed)
		}
		return
	}

	logger.Log(t, "turtle", "finished")
	if key := t.prefs.EndSignal.String(); key != "" {
		t.beep(buzzer.Key(key))
	}
}

// play the program. returns true if the end of the program was reached and
// false if the program was stopped. errors are returned for malformed
// programs, in which case the program ends immediately
func (t *Turtle) play(ctx context.Context, ex execution) (bool, error) {
	prg := ex.program
	var stack []activation

	push := func(a activation, p int) error {
		if len(stack) >= maxDepth {
			return curated.Errorf(MalformedProgram, "too many nested loops or calls", p)
		}
		stack = append(stack, a)
		return nil
	}

	p := ex.start
	for {
		if t.halt.Load() == ex.id || ctx.Err() != nil {
			return false, nil
		}

		if p >= len(prg) {
			return true, nil
		}

		checkCount := false

		switch prg[p] {
		case bytecode.LoopStart:
			q := bytecode.Scan(prg, p, bytecode.LoopCounter)
			if q < 0 || q+1 >= len(prg) {
				return false, curated.Errorf(MalformedProgram, "loop without count", p)
			}
			if err := push(activation{address: p, loop: true, count: bytecode.Value(prg[q+1])}, p); err != nil {
				return false, err
			}
			p = q
			checkCount = true

		case bytecode.LoopCounter:
			if len(stack) == 0 || !stack[len(stack)-1].loop {
				return false, curated.Errorf(MalformedProgram, "count without loop", p)
			}
			stack[len(stack)-1].count--
			checkCount = true

		case bytecode.FunctionStart:
			// definitions are only played when called
			q := bytecode.Scan(prg, p, bytecode.FunctionEnd)
			if q < 0 {
				return false, curated.Errorf(MalformedProgram, "function without end", p)
			}
			p = q

		case bytecode.FunctionReturn:
			if len(stack) == 0 || stack[len(stack)-1].loop {
				return false, curated.Errorf(MalformedProgram, "return without call", p)
			}
			p = stack[len(stack)-1].address
			stack = stack[:len(stack)-1]

		case bytecode.Call:
			if p+2 >= len(prg) || prg[p+2] != bytecode.Call {
				return false, curated.Errorf(MalformedProgram, "incomplete call", p)
			}
			id := bytecode.Value(prg[p+1])
			if id < 1 || id > NumFunctions || ex.functions[id-1].State != Defined {
				return false, curated.Errorf(UndefinedFunction, id, p)
			}
			if err := push(activation{address: p + 2}, p); err != nil {
				return false, err
			}
			p = ex.functions[id-1].Offset

		default:
			t.move(prg[p])
		}

		if checkCount {
			top := stack[len(stack)-1]
			if top.count > 0 {
				p = top.address
			} else {
				stack = stack[:len(stack)-1]

				// skip the count operand. the increment below moves past the
				// closing boundary
				p += 2
			}
		}

		p++
	}
}

// Move the robot as though the move byte was being played. Unrecognised bytes
// only cause a rest.
func (t *Turtle) Move(b byte) {
	t.move(b)
}

func (t *Turtle) move(b byte) {
	ml := t.prefs.MoveLength.Value()
	tl := t.prefs.TurnLength.Value()

	var err error
	switch b {
	case bytecode.Forward:
		err = t.motor.Move(motor.Forward, ml)
	case bytecode.Backward:
		err = t.motor.Move(motor.Backward, ml)
	case bytecode.Left:
		err = t.motor.Move(motor.Left, tl)
	case bytecode.HalfLeft:
		err = t.motor.Move(motor.Left, tl/2)
	case bytecode.Right:
		err = t.motor.Move(motor.Right, tl)
	case bytecode.HalfRight:
		err = t.motor.Move(motor.Right, tl/2)
	case bytecode.Pause:
		err = t.motor.Move(motor.Stop, ml)
	}
	if err != nil {
		logger.Logf(t, "turtle", "motor: %v", err)
	}

	if err := t.motor.Rest(t.prefs.BreathLength.Value()); err != nil {
		logger.Logf(t, "turtle", "motor: %v", err)
	}
}
