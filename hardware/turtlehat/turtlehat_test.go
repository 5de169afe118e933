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

package turtlehat_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/ubot/curated"
	"github.com/jetsetilly/ubot/hardware/turtlehat"
	"github.com/jetsetilly/ubot/test"
)

func newHAT(t *testing.T, params turtlehat.Params) (*turtlehat.HAT, *turtlehat.Board) {
	t.Helper()
	var brd turtlehat.Board
	hat, err := turtlehat.NewHAT(&brd, &brd, params)
	test.DemandSuccess(t, err)
	return hat, &brd
}

func TestButtonCode(t *testing.T) {
	test.ExpectEquality(t, turtlehat.Forward.String(), "forward")
	test.ExpectEquality(t, turtlehat.F2.String(), "F2")
	test.ExpectEquality(t, (turtlehat.Forward | turtlehat.Left).String(), "forward+left")
	test.ExpectEquality(t, turtlehat.ButtonCode(2048).String(), "invalid(2048)")

	c, err := turtlehat.ParseButtonCode("Start/Stop")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, turtlehat.StartStop)

	c, err = turtlehat.ParseButtonCode(" 129 ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, turtlehat.Forward|turtlehat.Left)

	_, err = turtlehat.ParseButtonCode("1024")
	test.ExpectFailure(t, err)
	_, err = turtlehat.ParseButtonCode("jump")
	test.ExpectFailure(t, err)
}

func TestBadParams(t *testing.T) {
	var brd turtlehat.Board
	_, err := turtlehat.NewHAT(&brd, &brd, turtlehat.Params{})
	test.ExpectSuccess(t, curated.Is(err, turtlehat.BadParams))
	_, err = turtlehat.NewHAT(&brd, &brd, turtlehat.Params{PressLength: 1, MaxError: -1})
	test.ExpectSuccess(t, curated.Is(err, turtlehat.BadParams))
}

func TestSweep(t *testing.T) {
	hat, brd := newHAT(t, turtlehat.Params{PressLength: 5, MaxError: 1})

	test.ExpectEquality(t, hat.Sweep(), turtlehat.NoButton)
	test.ExpectEquality(t, hat.Position(), 0)

	brd.Hold(turtlehat.Forward)
	test.ExpectEquality(t, brd.Held(), turtlehat.Forward)
	test.ExpectEquality(t, hat.Sweep(), turtlehat.Forward)
	test.ExpectEquality(t, hat.Position(), 0)

	// the counter comes to rest on the pressed button
	brd.Hold(turtlehat.Right)
	test.ExpectEquality(t, hat.Sweep(), turtlehat.Right)
	test.ExpectEquality(t, hat.Position(), 4)
	test.ExpectEquality(t, hat.Sweep(), turtlehat.Right)
	test.ExpectEquality(t, hat.Position(), 4)

	// chords
	brd.Hold(turtlehat.F1)
	test.ExpectEquality(t, hat.Sweep(), turtlehat.F1)
	test.ExpectEquality(t, hat.Position(), 1)

	brd.Hold(turtlehat.Mapping)
	test.ExpectEquality(t, hat.Sweep(), turtlehat.Mapping)

	// the simulated counter and the software counter agree
	test.ExpectEquality(t, brd.Position(), hat.Position())

	brd.Hold(turtlehat.NoButton)
	test.ExpectEquality(t, brd.Held(), turtlehat.NoButton)
	test.ExpectEquality(t, hat.Sweep(), turtlehat.NoButton)
}

// dischargingInput is an Input line that needs discharging after a high
// reading
type dischargingInput struct {
	t          *testing.T
	brd        *turtlehat.Board
	last       bool
	reads      int
	discharges int
}

func (d *dischargingInput) Value() bool {
	d.last = d.brd.Value()
	d.reads++
	return d.last
}

func (d *dischargingInput) Discharge() {
	if !d.last {
		d.t.Errorf("discharge after a low reading (position %d)", d.brd.Position())
	}
	d.discharges++
}

func TestDischarge(t *testing.T) {
	var brd turtlehat.Board
	inp := &dischargingInput{t: t, brd: &brd}
	hat, err := turtlehat.NewHAT(&brd, inp, turtlehat.Params{PressLength: 5, MaxError: 1})
	test.DemandSuccess(t, err)

	// nothing held. the line is never high so it is read once per position
	test.ExpectEquality(t, hat.Sweep(), turtlehat.NoButton)
	test.ExpectEquality(t, inp.discharges, 0)
	test.ExpectEquality(t, inp.reads, turtlehat.NumButtons)

	// two buttons held. the line is discharged once for each and read again
	inp.reads = 0
	brd.Hold(turtlehat.Forward | turtlehat.Right)
	test.ExpectEquality(t, hat.Sweep(), turtlehat.Forward|turtlehat.Right)
	test.ExpectEquality(t, inp.discharges, 2)
	test.ExpectEquality(t, inp.reads, turtlehat.NumButtons+2)
}

func TestPressed(t *testing.T) {
	hat, brd := newHAT(t, turtlehat.Params{PressLength: 5, MaxError: 1})

	brd.Hold(turtlehat.Forward)
	for i := range 4 {
		test.ExpectEquality(t, hat.Pressed(), turtlehat.NoButton, i)
	}
	test.ExpectEquality(t, hat.Pressed(), turtlehat.Forward)
	test.ExpectEquality(t, hat.Pressed(), turtlehat.Forward)

	// a single glitch is tolerated
	brd.Hold(turtlehat.Undo)
	test.ExpectEquality(t, hat.Pressed(), turtlehat.Forward)

	// two are not
	test.ExpectEquality(t, hat.Pressed(), turtlehat.NoButton)
}

func TestPressedNoise(t *testing.T) {
	hat, brd := newHAT(t, turtlehat.Params{PressLength: 3, MaxError: 2})

	// every third sweep sees an extra button. there are exactly ten readings
	// per sweep
	var reads int
	brd.Noise = func(position int) bool {
		n := reads
		reads++
		return position == 9 && (n/10)%3 == 0
	}

	brd.Hold(turtlehat.Left)
	var got []turtlehat.ButtonCode
	for range 8 {
		got = append(got, hat.Pressed())
	}
	test.ExpectEquality(t, got[len(got)-1], turtlehat.Left)
	test.ExpectEquality(t, got[len(got)-2], turtlehat.Left)
}

func TestValidated(t *testing.T) {
	hat, brd := newHAT(t, turtlehat.Params{PressLength: 5, MaxError: 1, FirstRepeat: 3})

	brd.Hold(turtlehat.Forward)
	var got []turtlehat.ButtonCode
	for range 10 {
		got = append(got, hat.Validated())
	}

	F := turtlehat.Forward
	N := turtlehat.NoButton
	expected := []turtlehat.ButtonCode{N, N, N, N, F, N, N, F, F, F}
	for i := range expected {
		test.ExpectEquality(t, got[i], expected[i], i)
	}

	// release and press again. the code is emitted once on confirmation
	brd.Hold(turtlehat.NoButton)
	for range 6 {
		hat.Validated()
	}
	brd.Hold(turtlehat.Forward)
	got = got[:0]
	for range 7 {
		got = append(got, hat.Validated())
	}
	expected = []turtlehat.ButtonCode{N, N, N, N, F, N, N}
	for i := range expected {
		test.ExpectEquality(t, got[i], expected[i], i)
	}
}

type collector struct {
	codes []turtlehat.ButtonCode
}

func (c *collector) Press(code turtlehat.ButtonCode) {
	c.codes = append(c.codes, code)
}

func TestPoller(t *testing.T) {
	hat, brd := newHAT(t, turtlehat.Params{PressLength: 2, MaxError: 0, FirstRepeat: 100})

	var c collector
	p := turtlehat.NewPoller(hat, time.Millisecond, &c)

	brd.Hold(turtlehat.StartStop)
	for range 5 {
		p.Tick()
	}
	test.DemandEquality(t, len(c.codes), 1)
	test.ExpectEquality(t, c.codes[0], turtlehat.StartStop)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Run(ctx)
	test.ExpectSuccess(t, errors.Is(err, context.DeadlineExceeded))
}
