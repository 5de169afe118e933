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
	"github.com/jetsetilly/ubot/hardware/turtlehat"
	"github.com/jetsetilly/ubot/turtle/bytecode"
)

// the gestures that a button can be mapped to
type gesture int

const (
	// emit a move byte
	gestureMove gesture = iota

	// open, count or close a loop. the argument is the loop boundary byte
	gestureLoop

	// call, define or end the definition of a function. the argument is the
	// function id
	gestureFunction

	gestureAdd
	gestureStartStop
	gestureUndo
	gestureDelete

	// change the loop counter by the argument. zero resets the counter
	gestureCounter

	gestureCheckCounter
	gestureCustom
)

type action struct {
	gesture gesture
	arg     int

	// the meaning of the flag depends on the gesture. for gestureFunction it
	// means the function can only be called, for gestureStartStop,
	// gestureUndo and gestureDelete it means the gesture applies to the
	// current block only
	flag bool
}

// Mapping of button codes to gestures.
type Mapping struct {
	name    string
	actions map[turtlehat.ButtonCode]action
}

func (m *Mapping) String() string {
	return m.name
}

func move(b byte) action {
	return action{gesture: gestureMove, arg: int(b)}
}

// moves are the same in every mapping except the loop counter
func withMoves(actions map[turtlehat.ButtonCode]action) map[turtlehat.ButtonCode]action {
	actions[turtlehat.Forward] = move(bytecode.Forward)
	actions[turtlehat.Pause] = move(bytecode.Pause)
	actions[turtlehat.Right] = move(bytecode.Right)
	actions[turtlehat.Backward] = move(bytecode.Backward)
	actions[turtlehat.Left] = move(bytecode.Left)
	return actions
}

var defaultMapping = &Mapping{
	name: "default",
	actions: withMoves(map[turtlehat.ButtonCode]action{
		turtlehat.Repeat:    {gesture: gestureLoop, arg: int(bytecode.LoopStart)},
		turtlehat.F1:        {gesture: gestureFunction, arg: 1},
		turtlehat.Add:       {gesture: gestureAdd},
		turtlehat.F2:        {gesture: gestureFunction, arg: 2},
		turtlehat.F3:        {gesture: gestureFunction, arg: 3},
		turtlehat.StartStop: {gesture: gestureStartStop},
		turtlehat.Undo:      {gesture: gestureUndo},
		turtlehat.Delete:    {gesture: gestureDelete},
		turtlehat.Mapping:   {gesture: gestureCustom},
	}),
}

var loopBeginMapping = &Mapping{
	name: "loop begin",
	actions: withMoves(map[turtlehat.ButtonCode]action{
		turtlehat.Repeat:    {gesture: gestureLoop, arg: int(bytecode.LoopCounter)},
		turtlehat.F1:        {gesture: gestureFunction, arg: 1, flag: true},
		turtlehat.F2:        {gesture: gestureFunction, arg: 2, flag: true},
		turtlehat.F3:        {gesture: gestureFunction, arg: 3, flag: true},
		turtlehat.StartStop: {gesture: gestureStartStop, flag: true},
		turtlehat.Undo:      {gesture: gestureUndo, flag: true},
		turtlehat.Delete:    {gesture: gestureDelete, flag: true},
	}),
}

var loopCounterMapping = &Mapping{
	name: "loop counter",
	actions: map[turtlehat.ButtonCode]action{
		turtlehat.Forward:   {gesture: gestureCounter, arg: 1},
		turtlehat.Repeat:    {gesture: gestureLoop, arg: int(bytecode.LoopEnd)},
		turtlehat.Right:     {gesture: gestureCounter, arg: 1},
		turtlehat.Backward:  {gesture: gestureCounter, arg: -1},
		turtlehat.StartStop: {gesture: gestureCheckCounter},
		turtlehat.Left:      {gesture: gestureCounter, arg: -1},
		turtlehat.Delete:    {gesture: gestureCounter, arg: 0},
	},
}

var functionMapping = &Mapping{
	name: "function",
	actions: withMoves(map[turtlehat.ButtonCode]action{
		turtlehat.Repeat:    {gesture: gestureLoop, arg: int(bytecode.LoopStart)},
		turtlehat.F1:        {gesture: gestureFunction, arg: 1, flag: true},
		turtlehat.F2:        {gesture: gestureFunction, arg: 2, flag: true},
		turtlehat.F3:        {gesture: gestureFunction, arg: 3, flag: true},
		turtlehat.StartStop: {gesture: gestureStartStop, flag: true},
		turtlehat.Undo:      {gesture: gestureUndo, flag: true},
		turtlehat.Delete:    {gesture: gestureDelete, flag: true},
	}),
}
