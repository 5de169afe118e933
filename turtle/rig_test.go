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

package turtle_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/ubot/hardware/buzzer"
	"github.com/jetsetilly/ubot/hardware/motor"
	"github.com/jetsetilly/ubot/hardware/turtlehat"
	"github.com/jetsetilly/ubot/test"
	"github.com/jetsetilly/ubot/turtle"
)

type rig struct {
	t     *testing.T
	prefs *turtle.Preferences
	trt   *turtle.Turtle
	mtr   *motor.Journal
	bz    *buzzer.Journal
}

func newRig(t *testing.T) *rig {
	t.Helper()

	p, err := turtle.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Log.Set(false))

	r := &rig{
		t:     t,
		prefs: p,
		mtr:   &motor.Journal{},
		bz:    &buzzer.Journal{},
	}
	r.trt = turtle.NewTurtle(p, r.mtr, r.bz)
	return r
}

func (r *rig) press(codes ...turtlehat.ButtonCode) {
	for _, c := range codes {
		r.trt.Press(c)
	}
}

// press start/stop and play the program
func (r *rig) play() {
	r.t.Helper()
	r.mtr.Clear()
	r.trt.Press(turtlehat.StartStop)
	test.ExpectSuccess(r.t, r.trt.RunPending(context.Background()))
	test.ExpectFailure(r.t, r.trt.Running())
}

func (r *rig) expectCommand(s string) {
	r.t.Helper()
	test.ExpectEquality(r.t, string(r.trt.Command()), s)
	test.ExpectEquality(r.t, r.trt.Pointer(), len(s))
}

func (r *rig) expectKeys(keys ...buzzer.Key) {
	r.t.Helper()
	got := r.bz.Keys()
	if !test.ExpectEquality(r.t, len(got), len(keys)) {
		r.t.Logf("keys: %v", got)
		return
	}
	for i := range keys {
		test.ExpectEquality(r.t, got[i], keys[i], i)
	}
}

func (r *rig) lastKey() buzzer.Key {
	keys := r.bz.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[len(keys)-1]
}

// the moves made by the motor in the form "FRL...". rests between moves are
// not included
func (r *rig) moves() string {
	var s []byte
	for _, e := range r.mtr.Entries() {
		switch e.Direction {
		case motor.Stop:
			if e.Duration == r.prefs.MoveLength.Value() {
				s = append(s, 'P')
			}
		case motor.Forward:
			s = append(s, 'F')
		case motor.Backward:
			s = append(s, 'B')
		case motor.Left:
			if e.Duration < r.prefs.TurnLength.Value() {
				s = append(s, 'l')
			} else {
				s = append(s, 'L')
			}
		case motor.Right:
			if e.Duration < r.prefs.TurnLength.Value() {
				s = append(s, 'r')
			} else {
				s = append(s, 'R')
			}
		}
	}
	return string(s)
}
