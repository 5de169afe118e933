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

// Package motor defines the drive surface of the robot. The two wheels are
// driven together so the only thing the interpreter can ask for is a
// direction and a duration.
package motor

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/ubot/curated"
)

// InvalidDirection is returned by Move() for a Direction outside the list of
// valid values.
const InvalidDirection = "motor: invalid direction (%d)"

// Direction of travel.
type Direction int

// List of valid Direction values.
const (
	Stop Direction = iota
	Forward
	Left
	Right
	Backward
)

func (d Direction) String() string {
	switch d {
	case Stop:
		return "stop"
	case Forward:
		return "forward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Backward:
		return "backward"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Motor is the interface to the drive hardware. Calls block for the duration
// (in milliseconds).
type Motor interface {
	Move(dir Direction, duration int) error
	Rest(duration int) error
}

// Entry is a single call recorded by the Journal. A Rest() call is recorded
// with the Stop direction.
type Entry struct {
	Direction Direction
	Duration  int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %d", e.Direction, e.Duration)
}

// Journal implements the Motor interface by recording every call. It is safe
// to use from more than one goroutine.
type Journal struct {
	crit    sync.Mutex
	entries []Entry

	// if Fail is not nil it is returned by every call. the call is still
	// recorded
	Fail error

	// called after every call is recorded. the journal is not locked
	OnCall func(e Entry)
}

func (j *Journal) record(e Entry) error {
	j.crit.Lock()
	j.entries = append(j.entries, e)
	j.crit.Unlock()

	if j.OnCall != nil {
		j.OnCall(e)
	}
	return j.Fail
}

// Move implements the Motor interface.
func (j *Journal) Move(dir Direction, duration int) error {
	return j.record(Entry{Direction: dir, Duration: duration})
}

// Rest implements the Motor interface.
func (j *Journal) Rest(duration int) error {
	return j.record(Entry{Direction: Stop, Duration: duration})
}

// Entries returns a copy of the recorded calls.
func (j *Journal) Entries() []Entry {
	j.crit.Lock()
	defer j.crit.Unlock()
	return append([]Entry(nil), j.entries...)
}

// Moves returns the recorded calls, excluding rests.
func (j *Journal) Moves() []Entry {
	j.crit.Lock()
	defer j.crit.Unlock()
	var m []Entry
	for _, e := range j.entries {
		if e.Direction != Stop {
			m = append(m, e)
		}
	}
	return m
}

// Clear forgets all recorded calls.
func (j *Journal) Clear() {
	j.crit.Lock()
	defer j.crit.Unlock()
	j.entries = j.entries[:0]
}

// Simulated implements the Motor interface by writing a line for every call
// and waiting for the duration.
type Simulated struct {
	ctx    context.Context
	output io.Writer

	// durations are divided by speed. a speed of zero means no waiting
	speed float64
}

// NewSimulated is the preferred method of initialisation for the Simulated
// type. The output can be nil. Waiting ends early if the context is done, in
// which case the context error is returned.
func NewSimulated(ctx context.Context, output io.Writer, speed float64) *Simulated {
	return &Simulated{
		ctx:    ctx,
		output: output,
		speed:  speed,
	}
}

func (sim *Simulated) wait(duration int) error {
	if sim.speed <= 0 {
		return nil
	}

	t := time.NewTimer(time.Duration(float64(duration)/sim.speed) * time.Millisecond)
	defer t.Stop()

	select {
	case <-t.C:
	case <-sim.ctx.Done():
		return sim.ctx.Err()
	}
	return nil
}

// Move implements the Motor interface.
func (sim *Simulated) Move(dir Direction, duration int) error {
	if dir < Stop || dir > Backward {
		return curated.Errorf(InvalidDirection, int(dir))
	}
	if sim.output != nil {
		fmt.Fprintf(sim.output, "%-8s %4dms\n", dir, duration)
	}
	return sim.wait(duration)
}

// Rest implements the Motor interface.
func (sim *Simulated) Rest(duration int) error {
	return sim.wait(duration)
}
