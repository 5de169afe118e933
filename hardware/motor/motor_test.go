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

package motor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/ubot/curated"
	"github.com/jetsetilly/ubot/hardware/motor"
	"github.com/jetsetilly/ubot/test"
)

func TestJournal(t *testing.T) {
	var calls int
	j := motor.Journal{
		OnCall: func(_ motor.Entry) { calls++ },
	}

	test.ExpectSuccess(t, j.Move(motor.Forward, 890))
	test.ExpectSuccess(t, j.Rest(500))
	test.ExpectSuccess(t, j.Move(motor.Left, 359))

	e := j.Entries()
	test.DemandEquality(t, len(e), 3)
	test.ExpectEquality(t, e[0].String(), "forward 890")
	test.ExpectEquality(t, e[1].String(), "stop 500")
	test.ExpectEquality(t, len(j.Moves()), 2)
	test.ExpectEquality(t, calls, 3)

	j.Fail = errors.New("stalled")
	test.ExpectFailure(t, j.Move(motor.Backward, 1))
	test.ExpectEquality(t, len(j.Entries()), 4)

	j.Clear()
	test.ExpectEquality(t, len(j.Entries()), 0)
}

func TestSimulated(t *testing.T) {
	var w test.CompareWriter
	sim := motor.NewSimulated(context.Background(), &w, 0)
	test.ExpectSuccess(t, sim.Move(motor.Right, 359))
	test.ExpectSuccess(t, sim.Rest(500))
	test.ExpectEquality(t, w.String(), "right     359ms\n")

	err := sim.Move(motor.Direction(9), 1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, motor.InvalidDirection))
	test.ExpectEquality(t, w.String(), "right     359ms\n")
}

func TestSimulatedCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := motor.NewSimulated(ctx, nil, 1)
	start := time.Now()
	err := sim.Move(motor.Forward, 10000)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectSuccess(t, time.Since(start) < time.Second)
}
