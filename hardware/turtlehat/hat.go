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

package turtlehat

import (
	"slices"

	"github.com/jetsetilly/ubot/curated"
)

// Clock is the clock line of the decade counter. The counter advances on the
// rising edge.
type Clock interface {
	On()
	Off()
}

// Input is the line shared by all buttons.
type Input interface {
	Value() bool
}

// Discharger is implemented by input lines that need to be pulled low before
// a reading can be trusted. Some board revisions have no pull-down resistor
// on the input line.
type Discharger interface {
	Discharge()
}

// Params control the validation of button codes.
type Params struct {
	// number of identical sweeps needed for a code to be accepted
	PressLength int

	// number of other sweeps tolerated in the history
	MaxError int

	// number of consecutive validations of the same code before the code is
	// repeated
	FirstRepeat int
}

// Sentinel error returned by NewHAT().
const BadParams = "turtlehat: bad params: %v"

// HAT is the decoder for the control board. It is not safe to use from more
// than one goroutine.
type HAT struct {
	clk Clock
	inp Input

	params Params

	// the position of the decade counter. the counter starts at position
	// zero when the board is powered
	position int

	// circular buffer of sweep results
	history    []ButtonCode
	historyIdx int

	// the most recent validated code and how many times in a row it has been
	// seen
	last      ButtonCode
	lastCount int
}

// NewHAT is the preferred method of initialisation for the HAT type.
func NewHAT(clk Clock, inp Input, params Params) (*HAT, error) {
	if params.PressLength < 1 {
		return nil, curated.Errorf(BadParams, "press length must be at least 1")
	}
	if params.MaxError < 0 {
		return nil, curated.Errorf(BadParams, "max error must not be negative")
	}

	hat := &HAT{
		clk:     clk,
		inp:     inp,
		params:  params,
		history: make([]ButtonCode, params.PressLength+params.MaxError),
	}

	return hat, nil
}

// Position returns the current position of the decade counter.
func (hat *HAT) Position() int {
	return hat.position
}

func (hat *HAT) advance() {
	hat.clk.On()
	hat.clk.Off()
	hat.position++
	if hat.position >= NumButtons {
		hat.position = 0
	}
}

func (hat *HAT) read() bool {
	if d, ok := hat.inp.(Discharger); ok && hat.inp.Value() {
		d.Discharge()
	}
	return hat.inp.Value()
}

// Sweep reads every button once and returns the raw code.
//
// After the sweep the counter is moved on to the lowest position that is
// pressed (relative to the current position). The next sweep then starts by
// reading a pressed button, which means a code is reported the same way
// whichever position the counter happened to be at when the button was
// pressed.
func (hat *HAT) Sweep() ButtonCode {
	var code ButtonCode
	for range NumButtons {
		if hat.read() {
			code |= 1 << hat.position
		}
		hat.advance()
	}

	if code != NoButton {
		for code&(1<<hat.position) == 0 {
			hat.advance()
		}
	}

	return code
}

// Pressed sweeps the board, adds the result to the history and returns the
// code that dominates the history. Returns NoButton if no code dominates.
func (hat *HAT) Pressed() ButtonCode {
	hat.history[hat.historyIdx] = hat.Sweep()
	hat.historyIdx++
	if hat.historyIdx >= len(hat.history) {
		hat.historyIdx = 0
	}

	// entries that belong to a code without enough sightings are errors.
	// every distinct code is counted once
	errorCount := 0
	for i, c := range hat.history {
		if slices.Contains(hat.history[:i], c) {
			continue
		}

		n := 0
		for _, d := range hat.history {
			if d == c {
				n++
			}
		}
		if n >= hat.params.PressLength {
			return c
		}

		errorCount += n
		if errorCount > hat.params.MaxError {
			return NoButton
		}
	}

	return NoButton
}

// Log records a validated code. Consecutive validations of the same code are
// counted.
func (hat *HAT) Log(code ButtonCode) {
	if code == hat.last {
		hat.lastCount++
	} else {
		hat.last = code
		hat.lastCount = 1
	}
}

// Validated sweeps the board and returns the code that should be acted on, if
// any. A held code is returned on the first validation and then on every
// validation after FirstRepeat validations.
func (hat *HAT) Validated() ButtonCode {
	code := hat.Pressed()
	hat.Log(code)

	if hat.lastCount == 1 || hat.lastCount > hat.params.FirstRepeat {
		return code
	}
	return NoButton
}
